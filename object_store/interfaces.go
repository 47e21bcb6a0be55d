package object_store

import (
	"context"
	"io"

	"github.com/streamguard/ingest-sdk/types"
)

// ObjectFetcher is the storage capability consumed by the materializer.
// Fetchers provided by the SDK: [S3Fetcher], [GcsFetcher]
type ObjectFetcher interface {
	Identifier() string
	// Fetch streams the named remote object into dest without buffering the
	// whole object in memory. Transport and auth failures are returned raw;
	// the caller owns wrapping and retry policy.
	Fetch(ctx context.Context, ref types.ObjectRef, dest io.Writer) error
}
