package lexicon

import "fmt"

// ConfigurationError reports a malformed or missing lexicon document. It
// always names the offending file and, when known, the field, so the caller
// can show an actionable message.
type ConfigurationError struct {
	File    string
	Field   string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error in %s", e.File)
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field %s)", msg, e.Field)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// UnknownProfileError reports a resolution request for a profile id that is
// not loaded. Recoverable: callers fall back to the core-only keyword set.
type UnknownProfileError struct {
	ProfileID string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", e.ProfileID)
}
