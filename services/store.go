package services

import (
	"strings"
	"sync"
	"time"

	"halaqa_go/models"
	"halaqa_go/utils"

	"github.com/sirupsen/logrus"
)

// Persister is the persistence collaborator: a single snapshot in, a
// single snapshot out. Load returning (nil, nil) means first run.
type Persister interface {
	Load() (*models.Snapshot, error)
	Save(snapshot *models.Snapshot) error
}

// ChangeListener is called after every applied mutation.
type ChangeListener func(event string)

// AttendanceStore owns the roster, the daily records and the site
// settings, and is their sole mutator. Every operation either validates
// and fully applies or fails and leaves state untouched; after each
// applied mutation the snapshot is persisted and listeners are notified.
//
// The mutex exists because Fiber serves requests concurrently; the
// semantics stay those of a single sequential operator.
type AttendanceStore struct {
	mu        sync.RWMutex
	students  []models.Student
	records   models.RecordStore
	settings  models.SiteSettings
	lastID    int64
	persister Persister
	listeners []ChangeListener
}

// NewAttendanceStore builds a store from the persisted snapshot. A
// missing or unreadable snapshot is non-fatal: the store starts empty
// with default settings and keeps running in memory.
func NewAttendanceStore(p Persister) *AttendanceStore {
	s := &AttendanceStore{
		records:   models.RecordStore{},
		settings:  models.DefaultSettings(),
		persister: p,
	}
	if p == nil {
		return s
	}
	snapshot, err := p.Load()
	if err != nil {
		logrus.WithError(err).Warn("Could not load snapshot, starting with empty state (in-memory only)")
		return s
	}
	if snapshot != nil {
		s.applySnapshot(snapshot)
	}
	return s
}

// Subscribe registers a listener invoked after every mutation.
func (s *AttendanceStore) Subscribe(fn ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AddStudent appends a new student with a fresh id. The id is derived
// from the creation timestamp in milliseconds and kept strictly
// increasing across rapid additions.
func (s *AttendanceStore) AddStudent(name string) (models.Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Student{}, models.NewValidationError("student name is required")
	}

	s.mu.Lock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	student := models.Student{ID: id, Name: name}
	s.students = append(s.students, student)
	s.mu.Unlock()

	s.afterMutation("student-added")
	return student, nil
}

// RenameStudent updates a student's name.
func (s *AttendanceStore) RenameStudent(id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.NewValidationError("student name is required")
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.NewStudentNotFound(id)
	}
	s.students[idx].Name = newName
	s.mu.Unlock()

	s.afterMutation("student-renamed")
	return nil
}

// DeleteStudent removes a student and purges their entry from every day
// in the record store.
func (s *AttendanceStore) DeleteStudent(id int64) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.NewStudentNotFound(id)
	}
	s.students = append(s.students[:idx], s.students[idx+1:]...)
	for _, record := range s.records {
		delete(record, id)
	}
	s.mu.Unlock()

	s.afterMutation("student-deleted")
	return nil
}

// SetSuspension replaces the student's suspension wholesale. Start is
// required; end, when present, must not precede start.
func (s *AttendanceStore) SetSuspension(id int64, start string, end *string, stopSave, stopReview bool) error {
	if strings.TrimSpace(start) == "" {
		return models.NewValidationError("suspension start date is required")
	}
	if _, err := utils.ParseDateKey(start); err != nil {
		return models.NewValidationError("invalid suspension start date %q", start)
	}
	if end != nil {
		if _, err := utils.ParseDateKey(*end); err != nil {
			return models.NewValidationError("invalid suspension end date %q", *end)
		}
		if *end < start {
			return models.NewValidationError("suspension end date precedes start date")
		}
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.NewStudentNotFound(id)
	}
	s.students[idx].Suspension = &models.Suspension{
		StartDate:  start,
		EndDate:    end,
		StopSave:   stopSave,
		StopReview: stopReview,
	}
	s.mu.Unlock()

	s.afterMutation("suspension-set")
	return nil
}

// ClearSuspension removes the student's suspension; clearing a student
// without one is a no-op.
func (s *AttendanceStore) ClearSuspension(id int64) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.NewStudentNotFound(id)
	}
	s.students[idx].Suspension = nil
	s.mu.Unlock()

	s.afterMutation("suspension-cleared")
	return nil
}

// SetStatus applies one flag for one student on one day as an atomic
// transition over the whole status set, creating the day and the
// student's entry as needed.
func (s *AttendanceStore) SetStatus(dateKey string, studentID int64, status models.Status, value bool) error {
	if !models.ValidStatus(status) {
		return models.NewValidationError("unknown status %q", status)
	}
	if _, err := utils.ParseDateKey(dateKey); err != nil {
		return models.NewValidationError("invalid date %q", dateKey)
	}

	s.mu.Lock()
	if s.indexOf(studentID) < 0 {
		s.mu.Unlock()
		return models.NewStudentNotFound(studentID)
	}
	record, ok := s.records[dateKey]
	if !ok {
		record = models.DailyRecord{}
		s.records[dateKey] = record
	}
	set := record[studentID]
	set.Apply(status, value)
	record[studentID] = set
	s.mu.Unlock()

	s.afterMutation("status-changed")
	return nil
}

// UpdateSettings overwrites each field only when a non-blank value is
// given; blank or absent values preserve the previous setting.
func (s *AttendanceStore) UpdateSettings(className, teacherName *string) models.SiteSettings {
	s.mu.Lock()
	if className != nil && strings.TrimSpace(*className) != "" {
		s.settings.ClassName = strings.TrimSpace(*className)
	}
	if teacherName != nil && strings.TrimSpace(*teacherName) != "" {
		s.settings.TeacherName = strings.TrimSpace(*teacherName)
	}
	updated := s.settings
	s.mu.Unlock()

	s.afterMutation("settings-updated")
	return updated
}

// Students returns a copy of the roster in display order.
func (s *AttendanceStore) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Settings returns the current site settings.
func (s *AttendanceStore) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Records returns a deep copy of the whole record store.
func (s *AttendanceStore) Records() models.RecordStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Clone()
}

// DayRecord returns a copy of one day's record; missing days come back
// as an empty record, matching the no-entry-means-all-false default.
func (s *AttendanceStore) DayRecord(dateKey string) models.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.records[dateKey]; ok {
		return record.Clone()
	}
	return models.DailyRecord{}
}

// Snapshot exports a deep copy of the full persisted state.
func (s *AttendanceStore) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ImportSnapshot replaces the full state with the given snapshot.
func (s *AttendanceStore) ImportSnapshot(snapshot *models.Snapshot) error {
	if snapshot == nil {
		return models.NewValidationError("snapshot is required")
	}
	s.mu.Lock()
	s.applySnapshot(snapshot.Clone())
	s.mu.Unlock()

	s.afterMutation("snapshot-imported")
	return nil
}

func (s *AttendanceStore) applySnapshot(snapshot *models.Snapshot) {
	s.students = snapshot.Students
	if s.students == nil {
		s.students = []models.Student{}
	}
	s.records = snapshot.DailyRecords
	if s.records == nil {
		s.records = models.RecordStore{}
	}
	s.settings = snapshot.SiteSettings
	if s.settings == (models.SiteSettings{}) {
		s.settings = models.DefaultSettings()
	}
	for _, st := range s.students {
		if st.ID > s.lastID {
			s.lastID = st.ID
		}
	}
}

func (s *AttendanceStore) snapshotLocked() *models.Snapshot {
	snapshot := &models.Snapshot{
		Students:     s.students,
		DailyRecords: s.records,
		SiteSettings: s.settings,
	}
	return snapshot.Clone()
}

func (s *AttendanceStore) indexOf(id int64) int {
	for i, st := range s.students {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// afterMutation persists the new snapshot and notifies listeners. A
// persistence failure degrades to in-memory operation with a warning;
// the mutation itself stands.
func (s *AttendanceStore) afterMutation(event string) {
	s.mu.RLock()
	snapshot := s.snapshotLocked()
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	if s.persister != nil {
		if err := s.persister.Save(snapshot); err != nil {
			logrus.WithError(err).WithField("event", event).Warn("Could not persist snapshot, continuing in memory")
		}
	}
	for _, fn := range listeners {
		fn(event)
	}
}
