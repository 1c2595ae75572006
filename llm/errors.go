package llm

import (
	"encoding/json"
	"fmt"
)

// ErrInvalidResponse indicates the model returned content that is not
// valid JSON or does not conform to the requested schema. The caller
// falls back to the rule-based composer on this error.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the model backend is down or
// unreachable. The caller falls back to the rule-based composer.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model backend unavailable: %v", e.Err)
	}
	return "model backend unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
