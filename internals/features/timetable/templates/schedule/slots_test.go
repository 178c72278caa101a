// file: internals/features/timetable/templates/schedule/slots_test.go
package schedule

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("ParseClock = %d:%d, want 9:30", got.Hour(), got.Minute())
	}
	if got.String() != "09:30" {
		t.Fatalf("String = %q, want 09:30", got.String())
	}

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) accepted invalid input", bad)
		}
	}
}

func TestGenerateSlotsDefaultDay(t *testing.T) {
	slots, err := GenerateSlots(DefaultBellParams())
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	want := []struct {
		kind  SlotKind
		label string
	}{
		{KindClass, "09:00 - 10:00"},
		{KindClass, "10:00 - 11:00"},
		{KindInterval, "11:00 - 11:15"},
		{KindClass, "11:15 - 12:15"},
		{KindClass, "12:15 - 13:00"},
		{KindLunch, "13:00 - 13:45"},
		{KindClass, "13:45 - 14:45"},
		{KindClass, "14:45 - 15:45"},
		{KindClass, "15:45 - 16:15"},
	}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(slots), len(want), slots)
	}
	for i, w := range want {
		if slots[i].Kind != w.kind || slots[i].Label() != w.label {
			t.Errorf("slot %d = %s %q, want %s %q", i, slots[i].Kind, slots[i].Label(), w.kind, w.label)
		}
	}
}

func TestGenerateSlotsContiguous(t *testing.T) {
	p := DefaultBellParams()
	slots, err := GenerateSlots(p)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	if slots[0].Start != p.DayStart {
		t.Errorf("first slot starts at %s, want %s", slots[0].Start, p.DayStart)
	}
	if slots[len(slots)-1].End != p.DayEnd {
		t.Errorf("last slot ends at %s, want %s", slots[len(slots)-1].End, p.DayEnd)
	}

	intervals, lunches := 0, 0
	for i, s := range slots {
		if !s.Start.Before(s.End) {
			t.Errorf("slot %d has empty or inverted range %s", i, s.Label())
		}
		if i > 0 && slots[i-1].End != s.Start {
			t.Errorf("gap or overlap between slot %d and %d: %s then %s",
				i-1, i, slots[i-1].Label(), s.Label())
		}
		switch s.Kind {
		case KindInterval:
			intervals++
		case KindLunch:
			lunches++
		}
	}
	if intervals != 1 || lunches != 1 {
		t.Errorf("got %d intervals and %d lunches, want exactly 1 of each", intervals, lunches)
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	p := DefaultBellParams()
	a, err := GenerateSlots(p)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	b, err := GenerateSlots(p)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("non-deterministic slot count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateSlotsLunchBeforeInterval(t *testing.T) {
	// Break order in the params must not matter.
	p := BellParams{
		DayStart:        MustClock("08:00"),
		DayEnd:          MustClock("14:00"),
		ClassMinutes:    60,
		IntervalStart:   MustClock("12:00"),
		IntervalMinutes: 15,
		LunchStart:      MustClock("10:00"),
		LunchMinutes:    30,
	}
	slots, err := GenerateSlots(p)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}
	var kinds []SlotKind
	for _, s := range slots {
		kinds = append(kinds, s.Kind)
	}
	// 08-09, 09-10, lunch 10-10:30, 10:30-11:30, 11:30-12 (cut), interval, 12:15-13:15, 13:15-14
	wantKinds := []SlotKind{
		KindClass, KindClass, KindLunch, KindClass, KindClass,
		KindInterval, KindClass, KindClass,
	}
	if len(kinds) != len(wantKinds) {
		t.Fatalf("got kinds %v, want %v", kinds, wantKinds)
	}
	for i := range kinds {
		if kinds[i] != wantKinds[i] {
			t.Fatalf("got kinds %v, want %v", kinds, wantKinds)
		}
	}
}

func TestBellParamsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BellParams)
	}{
		{"day start after end", func(p *BellParams) { p.DayStart = MustClock("17:00") }},
		{"zero class minutes", func(p *BellParams) { p.ClassMinutes = 0 }},
		{"negative interval", func(p *BellParams) { p.IntervalMinutes = -5 }},
		{"interval before day start", func(p *BellParams) { p.IntervalStart = MustClock("08:00") }},
		{"lunch past day end", func(p *BellParams) { p.LunchStart = MustClock("16:00") }},
		{"overlapping breaks", func(p *BellParams) {
			p.IntervalStart = MustClock("13:15")
			p.IntervalMinutes = 15
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultBellParams()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Errorf("Validate accepted invalid params %+v", p)
			}
			if _, err := GenerateSlots(p); err == nil {
				t.Errorf("GenerateSlots accepted invalid params %+v", p)
			}
		})
	}

	if err := DefaultBellParams().Validate(); err != nil {
		t.Errorf("default params rejected: %v", err)
	}
}
