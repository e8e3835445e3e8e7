package autopay

import (
	"fmt"
	"strings"
)

// Frequency is how often a scheduled payment recurs.
type Frequency int

const (
	Daily Frequency = iota + 1
	Weekly
	Monthly
	Quarterly
	Yearly
)

var frequencyNames = map[Frequency]string{
	Daily:     "DAILY",
	Weekly:    "WEEKLY",
	Monthly:   "MONTHLY",
	Quarterly: "QUARTERLY",
	Yearly:    "YEARLY",
}

// Frequencies returns every supported frequency, shortest period first.
func Frequencies() []Frequency {
	return []Frequency{Daily, Weekly, Monthly, Quarterly, Yearly}
}

// PerYear is the number of payments a frequency produces in a year.
func (f Frequency) PerYear() int64 {
	switch f {
	case Daily:
		return 365
	case Weekly:
		return 52
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case Yearly:
		return 1
	default:
		return 0
	}
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

// ParseFrequency accepts a case-insensitive frequency name.
func ParseFrequency(raw string) (Frequency, error) {
	want := strings.ToUpper(strings.TrimSpace(raw))
	for f, name := range frequencyNames {
		if name == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, raw)
}

func (f Frequency) MarshalText() ([]byte, error) {
	if _, ok := frequencyNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFrequency, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
