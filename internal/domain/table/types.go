package table

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBlocked   Status = "BLOCKED"
	StatusOccupied  Status = "OCCUPIED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusBlocked, StatusOccupied:
		return true
	default:
		return false
	}
}

// IsSettable reports whether the status may be assigned through the update
// path. OCCUPIED is only reachable through Occupy.
func (s Status) IsSettable() bool {
	switch s {
	case StatusAvailable, StatusBlocked:
		return true
	default:
		return false
	}
}
