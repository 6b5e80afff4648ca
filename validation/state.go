// Package validation holds the per-field validators behind the card entry
// field. Every validator is a total function: malformed input is reported
// as Invalid, never as an error.
package validation

// State is how far a field's current text is from a complete value.
type State int

const (
	// Invalid means no continuation of the input can become valid.
	Invalid State = iota
	// Incomplete means the input is a valid prefix of some valid value.
	Incomplete
	// Valid means the field is complete and correct.
	Valid
)

func (s State) String() string {
	switch s {
	case Invalid:
		return "invalid"
	case Incomplete:
		return "incomplete"
	case Valid:
		return "valid"
	default:
		return "unknown"
	}
}

// MarshalText lets states appear by name in JSON and logs.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
