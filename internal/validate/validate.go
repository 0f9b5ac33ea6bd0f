package validate

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// FieldError is one violated rule, in the shape clients receive inside the
// "errors" array.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}

// Errors collects violated rules in the order they were checked.
type Errors []FieldError

func (e *Errors) Add(path, msg string) {
	*e = append(*e, FieldError{Msg: msg, Path: path})
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like a well-formed address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Amount parses a JSON body field that must be a positive number. Numeric
// strings are accepted the same way express-style validators treat them.
// The returned Errors is empty when the value is usable.
func Amount(path string, raw json.RawMessage) (float64, Errors) {
	var errs Errors

	if len(raw) == 0 || string(raw) == "null" {
		errs.Add(path, "Amount can't be empty.")
		return 0, errs
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			errs.Add(path, "Invalid amount")
			return 0, errs
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			errs.Add(path, "Invalid amount")
			return 0, errs
		}
		v = parsed
	}

	if v <= 0 {
		errs.Add(path, "Amount must be greater than 0")
		return 0, errs
	}

	return v, nil
}
