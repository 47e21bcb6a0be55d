package types

import "fmt"

// ObjectRef is a normalized reference to a remote object - bucket and key
// are unescaped and the declared size has been validated as non-negative.
// The declared size is trusted but not independently verified.
type ObjectRef struct {
	Region string
	Bucket string
	Key    string
	// Size is the byte size declared by the notification metadata
	Size int64
}

func (r ObjectRef) String() string {
	return fmt.Sprintf("%s/%s", r.Bucket, r.Key)
}
