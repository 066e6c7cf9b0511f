package language

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the language as its tag name, e.g. "English".
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a language from its tag name or ISO code.
// "Unknown" decodes to the Unknown sentinel.
func (l *Language) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	if name == "Unknown" || name == "" {
		*l = Unknown
		return nil
	}
	parsed, err := Parse(name)
	if err != nil {
		return fmt.Errorf("unmarshaling language: %w", err)
	}
	*l = parsed
	return nil
}
