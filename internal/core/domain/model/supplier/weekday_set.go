package supplier

import "time"

// WeekdaySet is the set of weekdays on which a supplier accepts deliveries.
// It is derived from the supplier's delivery-day rules.
type WeekdaySet map[time.Weekday]struct{}

// NewWeekdaySet builds a set from the given weekdays. Duplicates collapse.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	set := make(WeekdaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether day is a delivery day.
func (s WeekdaySet) Contains(day time.Weekday) bool {
	_, ok := s[day]
	return ok
}

// IsEmpty reports whether no delivery day is configured.
func (s WeekdaySet) IsEmpty() bool {
	return len(s) == 0
}
