package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError is returned when the model's text response is not valid JSON.
// Raw carries the unmodified response for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vision: parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseModelJSON strips markdown code fences from the model's response and
// unmarshals the remainder into v.
func parseModelJSON(text string, v any) error {
	cleaned := stripFences(text)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return &ParseError{Raw: text, Err: err}
	}
	return nil
}

// stripFences removes ```json / ``` markers the model sometimes wraps its
// output in despite being told not to.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
