// file: internals/features/timetable/templates/dto/wire.go
package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campushub_backend/internals/features/timetable/templates/schedule"
)

/* =========================================================
   Wire shape of the persisted grid.

   Slot keys stay camelCase for compatibility with the admin
   front-end that predates this service. `kind` carries the
   slot's temporal role (class/interval/lunch) and `type` the
   subject's pedagogical type — the two are no longer folded
   into one string tag.
   ========================================================= */

type WireSlot struct {
	Time        string  `json:"time"` // "HH:MM - HH:MM"
	Kind        string  `json:"kind"` // class|interval|lunch
	Type        string  `json:"type"` // Core|Lab|Elective|""
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	SubjectCode string  `json:"subjectCode"`
	FacultyID   *string `json:"facultyId"`
}

type WireDay struct {
	Day   string     `json:"day"`
	Slots []WireSlot `json:"slots"`
}

/* =========================================================
   Encode / decode between the domain grid and JSONB.
   ========================================================= */

func EncodeWeek(week []schedule.DaySchedule) (datatypes.JSON, error) {
	days := make([]WireDay, 0, len(week))
	for _, d := range week {
		wd := WireDay{Day: string(d.Day), Slots: make([]WireSlot, 0, len(d.Slots))}
		for _, a := range d.Slots {
			ws := WireSlot{
				Time:        a.Slot.Label(),
				Kind:        string(a.Slot.Kind),
				Type:        string(a.SubjectType),
				StartTime:   a.Slot.Start.String(),
				EndTime:     a.Slot.End.String(),
				SubjectCode: a.SubjectCode,
			}
			if a.FacultyID != nil {
				s := a.FacultyID.String()
				ws.FacultyID = &s
			}
			wd.Slots = append(wd.Slots, ws)
		}
		days = append(days, wd)
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func DecodeWeek(raw datatypes.JSON) ([]schedule.DaySchedule, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var days []WireDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode day grid: %w", err)
	}
	return DecodeWireDays(days)
}

// DecodeWireDays converts already-parsed wire days into the domain grid.
func DecodeWireDays(days []WireDay) ([]schedule.DaySchedule, error) {
	week := make([]schedule.DaySchedule, 0, len(days))
	for _, wd := range days {
		day := schedule.Weekday(wd.Day)
		if !schedule.ValidWeekday(day) {
			return nil, fmt.Errorf("unknown day %q in stored grid", wd.Day)
		}
		ds := schedule.DaySchedule{Day: day, Slots: make([]schedule.SlotAssignment, 0, len(wd.Slots))}
		for _, ws := range wd.Slots {
			start, err := schedule.ParseClock(ws.StartTime)
			if err != nil {
				return nil, err
			}
			end, err := schedule.ParseClock(ws.EndTime)
			if err != nil {
				return nil, err
			}
			a := schedule.SlotAssignment{
				Slot: schedule.TimeSlot{
					Kind:  schedule.SlotKind(strings.ToLower(ws.Kind)),
					Start: start,
					End:   end,
				},
				SubjectCode: ws.SubjectCode,
				SubjectType: schedule.SubjectType(ws.Type),
			}
			if ws.FacultyID != nil && strings.TrimSpace(*ws.FacultyID) != "" {
				id, err := uuid.Parse(strings.TrimSpace(*ws.FacultyID))
				if err != nil {
					return nil, fmt.Errorf("invalid facultyId %q in stored grid", *ws.FacultyID)
				}
				a.FacultyID = &id
			}
			ds.Slots = append(ds.Slots, a)
		}
		week = append(week, ds)
	}
	return week, nil
}
