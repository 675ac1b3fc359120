package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number is a JSON number that also accepts numeric strings ("12.5").
// Decoding never fails: a value of the wrong type is recorded as present
// but invalid, so validation can report a per-field issue instead of
// rejecting the whole body.
type Number struct {
	Value   float64
	Present bool
	Valid   bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Present = true

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value = f
		n.Valid = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil {
			n.Value = f
			n.Valid = true
		}
		return nil
	}

	return nil
}

// IsInt reports whether the number has no fractional part.
func (n Number) IsInt() bool {
	return n.Value == float64(int64(n.Value))
}

// String is a JSON string with the same tolerant decoding as Number.
type String struct {
	Value   string
	Present bool
	Valid   bool
}

func (s *String) UnmarshalJSON(data []byte) error {
	s.Present = true

	var v string
	if err := json.Unmarshal(data, &v); err == nil {
		s.Value = v
		s.Valid = true
	}

	return nil
}
