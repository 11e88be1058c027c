package models

// Status names a single attendance flag for one student on one day.
type Status string

const (
	StatusMemorized Status = "memorized"
	StatusReviewed  Status = "reviewed"
	StatusAbsent    Status = "absent"
	StatusExcused   Status = "excused"
)

// ValidStatus reports whether s is one of the four attendance flags.
func ValidStatus(s Status) bool {
	switch s {
	case StatusMemorized, StatusReviewed, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// StatusSet holds the four attendance flags for one student on one day.
// Absent and excused are exclusive with each other and with the two
// activity flags; Apply is the only mutation path and keeps that invariant.
type StatusSet struct {
	Memorized bool `json:"memorized"`
	Reviewed  bool `json:"reviewed"`
	Absent    bool `json:"absent"`
	Excused   bool `json:"excused"`
}

// Apply sets one flag as a single atomic transition over the whole set.
// Setting absent or excused clears the other three flags; setting
// memorized or reviewed clears absent and excused.
func (s *StatusSet) Apply(status Status, value bool) {
	switch status {
	case StatusAbsent, StatusExcused:
		*s = StatusSet{}
		if status == StatusAbsent {
			s.Absent = value
		} else {
			s.Excused = value
		}
	case StatusMemorized:
		s.Absent = false
		s.Excused = false
		s.Memorized = value
	case StatusReviewed:
		s.Absent = false
		s.Excused = false
		s.Reviewed = value
	}
}

// Suspension is a date-bounded override pausing memorization and/or
// review tracking for one student. EndDate nil means open-ended.
// Dates are canonical YYYY-MM-DD keys, so string order is date order.
type Suspension struct {
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
	StopSave   bool    `json:"stop_save"`
	StopReview bool    `json:"stop_review"`
}

// Covers reports whether dateKey falls inside the suspension window.
func (s *Suspension) Covers(dateKey string) bool {
	if s == nil {
		return false
	}
	if dateKey < s.StartDate {
		return false
	}
	return s.EndDate == nil || dateKey <= *s.EndDate
}

// Student is one member of the circle roster.
type Student struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Suspension *Suspension `json:"suspension,omitempty"`
}

// DailyRecord maps student id to that student's status set for one day.
type DailyRecord map[int64]StatusSet

// Clone returns an independent copy of the record.
func (r DailyRecord) Clone() DailyRecord {
	out := make(DailyRecord, len(r))
	for id, set := range r {
		out[id] = set
	}
	return out
}

// RecordStore maps a date key (YYYY-MM-DD) to that day's record.
type RecordStore map[string]DailyRecord

// Clone returns an independent deep copy of the store.
func (rs RecordStore) Clone() RecordStore {
	out := make(RecordStore, len(rs))
	for key, record := range rs {
		out[key] = record.Clone()
	}
	return out
}

// SiteSettings carries the circle identity shown in reports.
type SiteSettings struct {
	ClassName   string `json:"className"`
	TeacherName string `json:"teacherName"`
}

// DefaultSettings returns the first-run circle identity.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		ClassName:   "حلقة زيد بن الدثنة",
		TeacherName: "الأستاذ خالد البيضي",
	}
}

// Snapshot is the full persisted state: the only shape exchanged with
// the persistence layer, and it must round-trip unchanged.
type Snapshot struct {
	Students     []Student    `json:"students"`
	DailyRecords RecordStore  `json:"dailyRecords"`
	SiteSettings SiteSettings `json:"siteSettings"`
}

// Clone returns an independent deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Students:     make([]Student, len(s.Students)),
		DailyRecords: s.DailyRecords.Clone(),
		SiteSettings: s.SiteSettings,
	}
	for i, st := range s.Students {
		if st.Suspension != nil {
			susp := *st.Suspension
			if susp.EndDate != nil {
				end := *susp.EndDate
				susp.EndDate = &end
			}
			st.Suspension = &susp
		}
		out.Students[i] = st
	}
	return out
}
