package forms

import (
	"encoding/json"
	"strings"
)

// Checkbox is a bool that also accepts the values HTML forms
// send for a ticked box ("y", "on").
type Checkbox bool

func (c *Checkbox) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "y", "yes", "on", "true", "1":
		*c = true
	default:
		*c = false
	}
	return nil
}

func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return c.UnmarshalText([]byte(s))
}
