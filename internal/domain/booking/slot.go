package booking

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Slot struct {
	SalonID string
	Fecha   string
	Hora    string
}

func (s Slot) Key() string {
	return fmt.Sprintf("slot:%s:%s:%s", s.SalonID, s.Fecha, s.Hora)
}

// NormalizeDate validates a YYYY-MM-DD date and returns it canonically.
func NormalizeDate(raw string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidInput
	}
	return t.Format(DateLayout), nil
}

// NormalizeTime validates an HH:MM time of day and zero-pads it ("9:05" → "09:05").
func NormalizeTime(raw string) (string, error) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidInput
	}
	return t.Format(TimeLayout), nil
}
