package person

import "fmt"

// TimeOfDay selects a greeting phrase. The zero value is the generic
// greeting used when no time is given.
type TimeOfDay int

const (
	TimeGeneric TimeOfDay = iota
	TimeMorning
	TimeAfternoon
	TimeEvening
	TimeNight
)

// Greeting returns the canned phrase for the time of day.
// Unknown values fall back to the generic greeting.
func (t TimeOfDay) Greeting() string {
	switch t {
	case TimeMorning:
		return "Good morning"
	case TimeAfternoon:
		return "Good afternoon"
	case TimeEvening:
		return "Good evening"
	case TimeNight:
		return "Good night"
	default:
		return "Hello"
	}
}

// String returns the lowercase label accepted by ParseTimeOfDay.
func (t TimeOfDay) String() string {
	switch t {
	case TimeMorning:
		return "morning"
	case TimeAfternoon:
		return "afternoon"
	case TimeEvening:
		return "evening"
	case TimeNight:
		return "night"
	default:
		return "generic"
	}
}

// ParseTimeOfDay maps a label to its TimeOfDay variant.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	switch s {
	case "generic", "":
		return TimeGeneric, nil
	case "morning":
		return TimeMorning, nil
	case "afternoon":
		return TimeAfternoon, nil
	case "evening":
		return TimeEvening, nil
	case "night":
		return TimeNight, nil
	default:
		return TimeGeneric, fmt.Errorf("unknown time of day %q", s)
	}
}
