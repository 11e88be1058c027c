package services

import "halaqa_go/models"

// StatusCounts are one student's totals over a filtered record set.
type StatusCounts struct {
	Memorized int `json:"memorized"`
	Reviewed  int `json:"reviewed"`
	Absent    int `json:"absent"`
	Excused   int `json:"excused"`
}

// StudentStats is one display row: roster identity plus counts.
type StudentStats struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	StatusCounts
}

// Aggregate reduces a filtered record set to per-student counters. Every
// rostered student appears, zero-initialized, even with no activity in
// range; record entries for ids no longer on the roster are skipped.
func Aggregate(filtered models.RecordStore, students []models.Student) map[int64]StatusCounts {
	counts := make(map[int64]StatusCounts, len(students))
	for _, st := range students {
		counts[st.ID] = StatusCounts{}
	}

	for _, record := range filtered {
		for id, set := range record {
			c, known := counts[id]
			if !known {
				continue
			}
			if set.Memorized {
				c.Memorized++
			}
			if set.Reviewed {
				c.Reviewed++
			}
			if set.Absent {
				c.Absent++
			}
			if set.Excused {
				c.Excused++
			}
			counts[id] = c
		}
	}
	return counts
}

// AggregateRows returns the aggregation as display rows in roster order.
func AggregateRows(filtered models.RecordStore, students []models.Student) []StudentStats {
	counts := Aggregate(filtered, students)
	rows := make([]StudentStats, len(students))
	for i, st := range students {
		rows[i] = StudentStats{
			StudentID:    st.ID,
			Name:         st.Name,
			StatusCounts: counts[st.ID],
		}
	}
	return rows
}
