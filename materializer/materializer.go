// Package materializer turns a remote object reference into a local,
// bounded, temporary resource.
//
// The declared size of the object is checked against a hard ceiling before
// any transfer is attempted - the execution environment has a wall-clock
// budget on the order of minutes and finite ephemeral disk. The downloaded
// file is exclusive to one consumer and is destroyed by the line stream that
// reads it (see the line_stream package).
package materializer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/streamguard/ingest-sdk/config"
	"github.com/streamguard/ingest-sdk/constants"
	"github.com/streamguard/ingest-sdk/object_store"
	"github.com/streamguard/ingest-sdk/types"
)

// MaterializedObject owns an exclusive local temporary file holding the
// contents of a remote object. It is created by the [Materializer] and
// consumed and destroyed by a line stream - once the stream has run, the
// file is gone.
type MaterializedObject struct {
	LocalPath    string
	DeclaredSize int64
	// Compressed is set purely from the trailing extension of the object key
	Compressed bool
	// Timing records the wall-clock duration of the transfer (advisory)
	Timing types.Timing
}

// Materializer downloads remote objects to bounded local temp files
type Materializer struct {
	fetcher       object_store.ObjectFetcher
	maxObjectSize int64
	tmpDir        string
}

type MaterializerOption func(*Materializer)

// WithMaxObjectSize overrides the default 128 MiB ceiling on declared size
func WithMaxObjectSize(size int64) MaterializerOption {
	return func(m *Materializer) {
		m.maxObjectSize = size
	}
}

func WithTmpDir(dir string) MaterializerOption {
	return func(m *Materializer) {
		m.tmpDir = dir
	}
}

func New(fetcher object_store.ObjectFetcher, opts ...MaterializerOption) *Materializer {
	m := &Materializer{
		fetcher:       fetcher,
		maxObjectSize: constants.MaxObjectSizeDefault,
		tmpDir:        os.TempDir(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromConfig builds a Materializer with the ceiling and temp directory
// from the given config
func NewFromConfig(fetcher object_store.ObjectFetcher, cfg *config.IngestConfig) (*Materializer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return New(fetcher, WithMaxObjectSize(cfg.GetMaxObjectSize()), WithTmpDir(cfg.GetTmpDir())), nil
}

// Materialize fetches the referenced object into a unique local temp file.
// If the declared size exceeds the ceiling it fails with
// [ObjectTooLargeError] before any network call. Fetch failures surface as
// [DownloadError] and leave no file behind. No retries - retry policy
// belongs to the caller.
func (m *Materializer) Materialize(ctx context.Context, ref types.ObjectRef) (*MaterializedObject, error) {
	if ref.Size > m.maxObjectSize {
		return nil, &ObjectTooLargeError{Bucket: ref.Bucket, Key: ref.Key, Size: ref.Size, MaxSize: m.maxObjectSize}
	}

	slog.Info("Starting object download", "fetcher", m.fetcher.Identifier(), "bucket", ref.Bucket, "key", ref.Key, "size", ref.Size)

	// flatten path separators so the file name still identifies the object;
	// the random element keeps concurrent invocations sharing a filesystem
	// namespace from colliding, and sits ahead of the name so the trailing
	// extension survives for compression detection
	destFile, err := os.CreateTemp(m.tmpDir, "ingest-*-"+flattenKey(ref.Key))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file, %w", err)
	}
	localPath := destFile.Name()

	timing := types.Timing{Start: time.Now()}
	err = m.fetcher.Fetch(ctx, ref, destFile)
	if closeErr := destFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removePartial(localPath)
		return nil, &DownloadError{Bucket: ref.Bucket, Key: ref.Key, Err: err}
	}
	timing.End = time.Now()

	slog.Info("Completed object download", "key", ref.Key, "local_path", localPath, "duration", timing.Duration())

	return &MaterializedObject{
		LocalPath:    localPath,
		DeclaredSize: ref.Size,
		Compressed:   filepath.Ext(localPath) == ".gz",
		Timing:       timing,
	}, nil
}

func flattenKey(key string) string {
	return strings.ReplaceAll(key, "/", "-")
}

// removePartial deletes a partly written download so a failed transfer
// leaves no orphaned file
func removePartial(path string) {
	if err := os.Remove(path); err != nil {
		slog.Error("Failed to remove partial download", "path", path, "error", err)
	}
}
