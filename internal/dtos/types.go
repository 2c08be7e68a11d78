package dtos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a salary figure. Browsers post form values as strings, so both
// JSON numbers and numeric strings are accepted; an empty string is zero.
type Amount int64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	if s == "" {
		*a = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	*a = Amount(n)
	return nil
}

// Value returns the amount as a nullable column value; nil and zero both
// mean "not supplied".
func (a *Amount) Value() *int64 {
	if a == nil || *a == 0 {
		return nil
	}
	v := int64(*a)
	return &v
}

// Text is a string that also accepts a JSON number, for fields such as
// phone numbers that some clients send unquoted.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}
