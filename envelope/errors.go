package envelope

import (
	"fmt"

	"github.com/streamguard/ingest-sdk/types"
)

// MalformedEnvelopeError indicates an inbound notification is missing a
// required field or carries one that cannot be used. Not retryable - the
// caller should drop the record and alert.
type MalformedEnvelopeError struct {
	Source types.SourceKind
	Field  string
	Reason string
}

func (e *MalformedEnvelopeError) Error() string {
	return fmt.Sprintf("malformed %s envelope: field %q %s", e.Source, e.Field, e.Reason)
}

// DecodeError indicates a stream record payload is not valid base64.
// Not retryable.
type DecodeError struct {
	Source types.SourceKind
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s payload: %s", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
