package materializer

import "fmt"

// ObjectTooLargeError indicates the declared size of a remote object exceeds
// the configured ceiling. No transfer is attempted. Not retryable - this is
// a policy decision surfaced to the caller.
type ObjectTooLargeError struct {
	Bucket  string
	Key     string
	Size    int64
	MaxSize int64
}

func (e *ObjectTooLargeError) Error() string {
	return fmt.Sprintf("object %s/%s declared size %d exceeds maximum %d", e.Bucket, e.Key, e.Size, e.MaxSize)
}

// DownloadError indicates a transport or storage layer failure while
// fetching a remote object. Retry policy belongs to the caller.
type DownloadError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download object %s/%s: %s", e.Bucket, e.Key, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
