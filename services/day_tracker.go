package services

import (
	"sync"
	"time"

	"halaqa_go/utils"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Broadcaster pushes an event to every connected page.
type Broadcaster interface {
	Broadcast(message interface{})
}

// DayChangedMessage tells the page the live day has rolled over so the
// view following "today" can re-derive itself.
type DayChangedMessage struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// DayTracker watches for the calendar day rolling over while the view
// follows the live day. The tick runs every minute and does nothing at
// all when the day is unchanged.
type DayTracker struct {
	mu      sync.Mutex
	current string
	cron    *cron.Cron
	hub     Broadcaster
}

// NewDayTracker starts tracking from the current local day.
func NewDayTracker(hub Broadcaster) *DayTracker {
	return &DayTracker{
		current: utils.DateKey(time.Now()),
		cron:    cron.New(),
		hub:     hub,
	}
}

// Start schedules the minute tick.
func (dt *DayTracker) Start() {
	if _, err := dt.cron.AddFunc("@every 1m", dt.tick); err != nil {
		logrus.WithError(err).Error("Could not schedule day tracker")
		return
	}
	dt.cron.Start()
	logrus.WithField("day", dt.CurrentDay()).Info("Day tracker started")
}

// Stop halts the tick.
func (dt *DayTracker) Stop() {
	dt.cron.Stop()
}

// CurrentDay returns the tracked live day's date key.
func (dt *DayTracker) CurrentDay() string {
	dt.mu.Lock()
	defer dt.mu.Unlock()
	return dt.current
}

func (dt *DayTracker) tick() {
	key := utils.DateKey(time.Now())

	dt.mu.Lock()
	changed := key != dt.current
	if changed {
		dt.current = key
	}
	dt.mu.Unlock()

	if !changed {
		return
	}
	logrus.WithField("day", key).Info("Calendar day rolled over")
	if dt.hub != nil {
		dt.hub.Broadcast(DayChangedMessage{Type: "day-changed", Date: key})
	}
}

// CanEditDay is the single editable-day policy: a day is editable iff it
// is not after the live day. Backfilling history stays allowed, future
// days stay locked.
func CanEditDay(dateKey string, today time.Time) bool {
	return dateKey <= utils.DateKey(today)
}
