package kernel

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// TimeSlot is a named delivery/meal window. Slots are unordered: the numeric values
// only identify them.
type TimeSlot int

const (
	UnknownSlot TimeSlot = iota
	Sahur
	Morning
	Noon
	Afternoon
	FastBreaking
	Evening
	NightSnack
	LateNight
)

type slotNames struct {
	name  string
	label string
}

func getSlotNames() map[TimeSlot]slotNames {
	return map[TimeSlot]slotNames{
		Sahur:        {"Sahur", "Sahur"},
		Morning:      {"Morning", "Pagi"},
		Noon:         {"Noon", "Siang"},
		Afternoon:    {"Afternoon", "Sore"},
		FastBreaking: {"FastBreaking", "Buka Puasa"},
		Evening:      {"Evening", "Malam"},
		NightSnack:   {"NightSnack", "Snack malam"},
		LateNight:    {"LateNight", "Tengah Malam"},
	}
}

// AllTimeSlots lists every valid slot.
func AllTimeSlots() []TimeSlot {
	return []TimeSlot{Sahur, Morning, Noon, Afternoon, FastBreaking, Evening, NightSnack, LateNight}
}

// ParseTimeSlot accepts the English name or the form label of a slot, ignoring case.
func ParseTimeSlot(s string) (TimeSlot, error) {
	needle := strings.TrimSpace(s)
	for slot, names := range getSlotNames() {
		if strings.EqualFold(needle, names.name) || strings.EqualFold(needle, names.label) {
			return slot, nil
		}
	}
	return UnknownSlot, errs.NewValueIsInvalidErrorWithCause("timeSlot", fmt.Errorf("%q is not a time slot", s))
}

func (s TimeSlot) Validate() error {
	if _, ok := getSlotNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("timeSlot", fmt.Errorf("%d is not a valid time slot", int(s)))
	}
	return nil
}

func (s TimeSlot) String() string {
	if names, ok := getSlotNames()[s]; ok {
		return names.name
	}
	return "Unknown"
}

// Label is the Indonesian form label of the slot.
func (s TimeSlot) Label() string {
	if names, ok := getSlotNames()[s]; ok {
		return names.label
	}
	return ""
}

func (s TimeSlot) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *TimeSlot) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
