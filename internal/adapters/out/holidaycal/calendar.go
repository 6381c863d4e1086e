// Package holidaycal provides the public holiday calendar for
// Schleswig-Holstein, where all restaurant locations operate. Delivery date
// calculation skips the days it reports.
package holidaycal

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
)

// SchleswigHolsteinCalendar answers holiday lookups for the state of
// Schleswig-Holstein. Lookups are precomputed by rickar/cal per year and
// safe for concurrent use.
type SchleswigHolsteinCalendar struct {
	calendar *cal.Calendar
}

// NewSchleswigHolsteinCalendar creates a calendar with the public holidays
// observed in Schleswig-Holstein.
func NewSchleswigHolsteinCalendar() *SchleswigHolsteinCalendar {
	c := &cal.Calendar{Name: "Schleswig-Holstein"}
	c.AddHoliday(
		de.Neujahr,
		de.Karfreitag,
		de.Ostermontag,
		de.TagderArbeit,
		de.ChristiHimmelfahrt,
		de.Pfingstmontag,
		de.DeutschenEinheit,
		de.Reformationstag,
		de.Weihnachtstag,
		de.ZweiterWeihnachtsfeiertag,
	)
	return &SchleswigHolsteinCalendar{calendar: c}
}

// IsHoliday reports whether the given day is a public holiday.
func (c *SchleswigHolsteinCalendar) IsHoliday(day time.Time) bool {
	actual, observed, _ := c.calendar.IsHoliday(day)
	return actual || observed
}
