// file: internals/features/timetable/templates/schedule/slots.go
package schedule

import (
	"fmt"
)

/* =======================================================
   Slot kinds — what role a time range plays in the day.
   Separate from the pedagogical type of the subject that
   happens to occupy a Class slot.
   ======================================================= */

type SlotKind string

const (
	KindClass    SlotKind = "class"
	KindInterval SlotKind = "interval"
	KindLunch    SlotKind = "lunch"
)

// TimeSlot is one bell-time row of a single day's schedule.
type TimeSlot struct {
	Kind  SlotKind
	Start LocalTime
	End   LocalTime
}

// Label renders "HH:MM - HH:MM".
func (s TimeSlot) Label() string { return RangeLabel(s.Start, s.End) }

/* =======================================================
   Bell-schedule generation parameters.

   Persisted per template so a stored grid can always be
   reconstructed without guessing break windows from gaps.
   ======================================================= */

type BellParams struct {
	DayStart        LocalTime
	DayEnd          LocalTime
	ClassMinutes    int
	IntervalStart   LocalTime
	IntervalMinutes int
	LunchStart      LocalTime
	LunchMinutes    int
}

// DefaultBellParams mirrors the institution's standard day:
// 09:00–16:15, 60-minute classes, 15-minute interval, 45-minute lunch.
func DefaultBellParams() BellParams {
	return BellParams{
		DayStart:        MustClock("09:00"),
		DayEnd:          MustClock("16:15"),
		ClassMinutes:    60,
		IntervalStart:   MustClock("11:00"),
		IntervalMinutes: 15,
		LunchStart:      MustClock("13:00"),
		LunchMinutes:    45,
	}
}

func (p BellParams) IntervalEnd() LocalTime { return p.IntervalStart.Add(p.IntervalMinutes) }
func (p BellParams) LunchEnd() LocalTime    { return p.LunchStart.Add(p.LunchMinutes) }

// Validate enforces one mental model for slot-generation validity: every
// caller goes through the same checks, whether the quick inline controls
// or the full configuration dialog triggered the recompute.
func (p BellParams) Validate() error {
	if !p.DayStart.Before(p.DayEnd) {
		return fmt.Errorf("day start %s must be before day end %s", p.DayStart, p.DayEnd)
	}
	if p.ClassMinutes <= 0 {
		return fmt.Errorf("class duration must be positive, got %d", p.ClassMinutes)
	}
	if p.IntervalMinutes <= 0 || p.LunchMinutes <= 0 {
		return fmt.Errorf("interval/lunch durations must be positive")
	}
	if p.IntervalStart.Before(p.DayStart) || p.IntervalEnd().After(p.DayEnd) {
		return fmt.Errorf("interval window %s is outside day bounds",
			RangeLabel(p.IntervalStart, p.IntervalEnd()))
	}
	if p.LunchStart.Before(p.DayStart) || p.LunchEnd().After(p.DayEnd) {
		return fmt.Errorf("lunch window %s is outside day bounds",
			RangeLabel(p.LunchStart, p.LunchEnd()))
	}
	if overlaps(p.IntervalStart, p.IntervalEnd(), p.LunchStart, p.LunchEnd()) {
		return fmt.Errorf("interval and lunch windows overlap")
	}
	return nil
}

func overlaps(aStart, aEnd, bStart, bEnd LocalTime) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// GenerateSlots produces the ordered bell schedule for a single day.
// Pure function of its parameters: identical inputs yield an identical
// slot list. Class slots fill every remaining minute between day bounds
// at ClassMinutes granularity; a class slot running into a break is cut
// short so the list has no gaps and no overlaps. Interval and Lunch each
// appear exactly once.
func GenerateSlots(p BellParams) ([]TimeSlot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	type window struct {
		kind  SlotKind
		start LocalTime
		end   LocalTime
	}
	breaks := []window{
		{KindInterval, p.IntervalStart, p.IntervalEnd()},
		{KindLunch, p.LunchStart, p.LunchEnd()},
	}
	if breaks[1].start.Before(breaks[0].start) {
		breaks[0], breaks[1] = breaks[1], breaks[0]
	}

	var slots []TimeSlot
	cursor := p.DayStart
	for cursor.Before(p.DayEnd) {
		emitted := false
		for _, b := range breaks {
			if cursor == b.start {
				slots = append(slots, TimeSlot{Kind: b.kind, Start: b.start, End: b.end})
				cursor = b.end
				emitted = true
				break
			}
		}
		if emitted {
			continue
		}

		end := cursor.Add(p.ClassMinutes)
		for _, b := range breaks {
			if cursor.Before(b.start) && b.start.Before(end) {
				end = b.start // cut the class short at the break
				break
			}
		}
		if p.DayEnd.Before(end) {
			end = p.DayEnd
		}
		slots = append(slots, TimeSlot{Kind: KindClass, Start: cursor, End: end})
		cursor = end
	}
	return slots, nil
}
