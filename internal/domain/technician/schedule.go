package technician

import (
	"time"

	"github.com/restoservice/repair-admin/internal/httperr"
	"github.com/restoservice/repair-admin/internal/models"
)

// ValidateSchedule checks the HH:MM bounds and the daysOff weekday
// range before a schedule is stored.
func ValidateSchedule(s *models.Schedule) error {
	if s == nil {
		return nil
	}

	start, err := time.Parse("15:04", s.Start)
	if err != nil {
		return httperr.ErrBusiness("invalid_schedule_time")
	}
	end, err := time.Parse("15:04", s.End)
	if err != nil {
		return httperr.ErrBusiness("invalid_schedule_time")
	}
	if !end.After(start) {
		return httperr.ErrBusiness("invalid_schedule_range")
	}

	for _, d := range s.DaysOff {
		if d < 0 || d > 6 {
			return httperr.ErrBusiness("invalid_day_off")
		}
	}

	return nil
}

// OnShift reports whether the technician's schedule covers the given
// local time. A technician without a schedule counts as on shift.
func OnShift(t *models.Technician, at time.Time) bool {
	s := t.Schedule
	if s == nil {
		return true
	}

	weekday := int(at.Weekday())
	for _, off := range s.DaysOff {
		if off == weekday {
			return false
		}
	}

	parseHM := func(hm string) time.Time {
		p, _ := time.Parse("15:04", hm)
		return time.Date(
			at.Year(), at.Month(), at.Day(),
			p.Hour(), p.Minute(), 0, 0,
			at.Location(),
		)
	}

	start := parseHM(s.Start)
	end := parseHM(s.End)

	return !at.Before(start) && at.Before(end)
}
