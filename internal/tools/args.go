package tools

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
)

var validate = validator.New()

// ArgumentError marks a tool invocation whose arguments could not be decoded
// or failed validation. It produces a distinct envelope so the model can
// correct its parameters instead of retrying the same call.
type ArgumentError struct {
	Tool string
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// decodeArgs maps loosely typed tool arguments onto a typed parameter struct
// and validates it. The round-trip through JSON keeps the coercion rules
// identical to the wire format the model produced.
func decodeArgs(name string, args map[string]any, dest any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return &ArgumentError{Tool: name, Err: err}
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &ArgumentError{Tool: name, Err: err}
	}
	if err := validate.Struct(dest); err != nil {
		return &ArgumentError{Tool: name, Err: err}
	}
	return nil
}

// normalizeLimit applies the shared default and cap for result counts.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 50 {
		return 50
	}
	return limit
}
