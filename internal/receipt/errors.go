package receipt

import "fmt"

// UpstreamError indicates a failure talking to the completion service:
// a non-2xx status, a transport error, or an empty completion.
type UpstreamError struct {
	Status string // upstream status description, empty for transport failures
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("completion service error (%s): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("completion service unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError indicates the completion text held no parseable JSON object.
type ParseError struct {
	Raw string // completion text fragment, for operator diagnosis
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("extracting JSON from completion: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
