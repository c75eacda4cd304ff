package dto

import (
	"encoding/json"
	"strings"
)

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FlexNumber is a numeric form field on the wire. Browser forms send numbers
// as strings, cleared fields as "" or null, and JSON-aware clients send bare
// numbers; FlexNumber swallows all of them without ever failing the body
// parse. The actual parse-or-zero conversion happens at the application
// boundary (gst.ParseOrZero), so garbage simply computes as zero.
type FlexNumber string

// UnmarshalJSON accepts a JSON number, a quoted string, or null.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*n = ""
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*n = ""
			return nil
		}
		*n = FlexNumber(str)
		return nil
	}
	*n = FlexNumber(s)
	return nil
}

func (n FlexNumber) String() string { return string(n) }
