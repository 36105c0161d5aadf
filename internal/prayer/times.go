// Package prayer computes daily prayer times for a coordinate using the
// Muslim World League calculation method with the Shafi madhab.
package prayer

import (
	"errors"
	"fmt"
	"time"

	"github.com/mnadev/adhango/pkg/calc"
	"github.com/mnadev/adhango/pkg/data"
	"github.com/mnadev/adhango/pkg/util"

	"github.com/deenlife/deenlife/internal/models"
)

// ErrCalculation means the solar calculation produced no usable times
// for the given coordinate and date.
var ErrCalculation = errors.New("prayer time calculation failed")

// Event is one named time in the daily cycle.
type Event struct {
	Name string
	Time time.Time
}

// Times holds a single day's calculated events.
type Times struct {
	Date    time.Time
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

// Ordered returns the day's events in chronological order. Sunrise is
// included for display even though it is not a prayer.
func (t Times) Ordered() []Event {
	return []Event{
		{Name: "Fajr", Time: t.Fajr},
		{Name: "Sunrise", Time: t.Sunrise},
		{Name: "Dhuhr", Time: t.Dhuhr},
		{Name: "Asr", Time: t.Asr},
		{Name: "Maghrib", Time: t.Maghrib},
		{Name: "Isha", Time: t.Isha},
	}
}

// Next returns the first event of this day strictly after now. The
// second return value is false when the day is exhausted, which means
// the caller should look at the next day's Fajr.
func (t Times) Next(now time.Time) (Event, bool) {
	for _, ev := range t.Ordered() {
		if ev.Time.After(now) {
			return ev, true
		}
	}
	return Event{}, false
}

// Calculate computes the times for the calendar day containing date,
// interpreted in date's location.
func Calculate(coords models.Coordinates, date time.Time) (Times, error) {
	c, err := util.NewCoordinates(coords.Latitude, coords.Longitude)
	if err != nil {
		return Times{}, fmt.Errorf("%w: %v", ErrCalculation, err)
	}

	params := calc.GetMethodParameters(calc.MUSLIM_WORLD_LEAGUE)
	params.Madhab = calc.SHAFI_HANBALI_MALIKI

	pt, err := calc.NewPrayerTimes(c, data.NewDateComponents(date), params)
	if err != nil {
		return Times{}, fmt.Errorf("%w: %v", ErrCalculation, err)
	}
	if err := pt.SetTimeZone(date.Location().String()); err != nil {
		return Times{}, fmt.Errorf("%w: %v", ErrCalculation, err)
	}
	if pt.Fajr.IsZero() {
		return Times{}, ErrCalculation
	}

	return Times{
		Date:    date,
		Fajr:    pt.Fajr,
		Sunrise: pt.Sunrise,
		Dhuhr:   pt.Dhuhr,
		Asr:     pt.Asr,
		Maghrib: pt.Maghrib,
		Isha:    pt.Isha,
	}, nil
}

// Schedule pairs a coordinate with the times for one day and answers
// the "what comes next" question across the day boundary.
type Schedule struct {
	Coords models.Coordinates
	Times  Times
}

// NewSchedule calculates the schedule for the day containing now.
func NewSchedule(coords models.Coordinates, now time.Time) (*Schedule, error) {
	t, err := Calculate(coords, now)
	if err != nil {
		return nil, err
	}
	return &Schedule{Coords: coords, Times: t}, nil
}

// NextPrayer returns the upcoming event relative to now. After Isha it
// recalculates the following day and returns its Fajr.
func (s *Schedule) NextPrayer(now time.Time) (Event, error) {
	if ev, ok := s.Times.Next(now); ok {
		return ev, nil
	}
	tomorrow, err := Calculate(s.Coords, now.AddDate(0, 0, 1))
	if err != nil {
		return Event{}, err
	}
	return Event{Name: "Fajr", Time: tomorrow.Fajr}, nil
}
