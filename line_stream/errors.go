package line_stream

import "fmt"

// CorruptObjectError indicates decompression of a materialized object
// failed. Not retryable - the upstream data is corrupt. Cleanup of the
// backing file has already run by the time this surfaces.
type CorruptObjectError struct {
	Path string
	Err  error
}

func (e *CorruptObjectError) Error() string {
	return fmt.Sprintf("corrupt compressed object %s: %s", e.Path, e.Err)
}

func (e *CorruptObjectError) Unwrap() error {
	return e.Err
}

// ResourceAlreadyConsumedError indicates an iteration attempt over a stream
// whose backing resource is already gone. This is a contract violation by
// the caller - the sequence is forward-only and not restartable.
type ResourceAlreadyConsumedError struct {
	Path string
}

func (e *ResourceAlreadyConsumedError) Error() string {
	return fmt.Sprintf("line stream for %s has already been consumed", e.Path)
}
