package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a numeric value as entered by a user.
// It decodes from a JSON number or a JSON string and keeps the raw text, so a
// document written by an older client round-trips without loss.
type Amount string

// Float returns the numeric value and whether the amount is a valid finite number.
// Empty, non-numeric, NaN and infinite values are not valid.
func (a Amount) Float() (float64, bool) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOr returns the numeric value, or fallback when the amount is not a valid number.
func (a Amount) FloatOr(fallback float64) float64 {
	if f, ok := a.Float(); ok {
		return f
	}
	return fallback
}

// UnmarshalJSON accepts a number, a string or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// MarshalJSON writes valid numbers as JSON numbers and anything else as the raw string.
func (a Amount) MarshalJSON() ([]byte, error) {
	if f, ok := a.Float(); ok {
		return json.Marshal(f)
	}
	if a == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}
