package booking

import (
	"errors"
	"reflect"
	"strings"
)

var ErrEmptySlot = errors.New("time slot is required")

// Slot is the requested dining time. It is carried as an opaque string; the
// booking system does not schedule against it.
type Slot string

func NewSlot(value string) (Slot, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrEmptySlot
	}
	return Slot(trimmed), nil
}

func (s Slot) String() string {
	return string(s)
}

// Info is the open key/value payload attached to a booking (seating
// preferences, pre-orders and the like).
type Info map[string]any

// Merge overlays other onto a copy of the receiver: existing keys are
// overwritten, all others preserved. It reports whether anything changed.
func (i Info) Merge(other Info) (Info, bool) {
	if len(other) == 0 {
		return i, false
	}

	merged := make(Info, len(i)+len(other))
	for k, v := range i {
		merged[k] = v
	}

	changed := false
	for k, v := range other {
		if prev, ok := merged[k]; !ok || !reflect.DeepEqual(prev, v) {
			changed = true
		}
		merged[k] = v
	}
	return merged, changed
}
