package materializer

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamguard/ingest-sdk/types"
)

// fakeFetcher counts calls and writes canned data, so tests can observe
// whether the ceiling check short-circuits before any fetch
type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Identifier() string {
	return "fake"
}

func (f *fakeFetcher) Fetch(_ context.Context, _ types.ObjectRef, dest io.Writer) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	_, err := dest.Write(f.data)
	return err
}

func TestMaterializeCeiling(t *testing.T) {
	tests := []struct {
		name         string
		declaredSize int64
		ceiling      int64
		wantTooLarge bool
	}{
		{name: "under ceiling", declaredSize: 99, ceiling: 100},
		{name: "at ceiling", declaredSize: 100, ceiling: 100},
		{name: "over ceiling", declaredSize: 101, ceiling: 100, wantTooLarge: true},
		{name: "zero size", declaredSize: 0, ceiling: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{data: []byte("line\n")}
			m := New(fetcher, WithMaxObjectSize(tt.ceiling), WithTmpDir(t.TempDir()))

			ref := types.ObjectRef{Region: "us-east-1", Bucket: "logs", Key: "app/file.log", Size: tt.declaredSize}
			obj, err := m.Materialize(context.Background(), ref)

			if tt.wantTooLarge {
				var tooLarge *ObjectTooLargeError
				require.Error(t, err)
				assert.True(t, errors.As(err, &tooLarge))
				// the precondition must fail before any network call
				assert.Equal(t, 0, fetcher.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, fetcher.calls)
			assert.FileExists(t, obj.LocalPath)
			os.Remove(obj.LocalPath)
		})
	}
}

func TestMaterializeWritesObjectContents(t *testing.T) {
	content := []byte("first\nsecond\n")
	m := New(&fakeFetcher{data: content}, WithTmpDir(t.TempDir()))

	obj, err := m.Materialize(context.Background(), types.ObjectRef{Region: "us-east-1", Bucket: "logs", Key: "app/2024/file.log", Size: int64(len(content))})
	require.NoError(t, err)

	got, err := os.ReadFile(obj.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	assert.Equal(t, int64(len(content)), obj.DeclaredSize)
	assert.False(t, obj.Compressed)
	// path separators are flattened into the temp file name
	assert.Contains(t, filepath.Base(obj.LocalPath), "app-2024-file.log")
	assert.False(t, obj.Timing.End.Before(obj.Timing.Start))
}

func TestMaterializeCompressionFlag(t *testing.T) {
	tests := []struct {
		key        string
		compressed bool
	}{
		{key: "logs/file.gz", compressed: true},
		{key: "logs/file.log", compressed: false},
		{key: "logs/file.log.gz", compressed: true},
		{key: "logs/file", compressed: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := New(&fakeFetcher{data: []byte("x")}, WithTmpDir(t.TempDir()))
			obj, err := m.Materialize(context.Background(), types.ObjectRef{Region: "us-east-1", Bucket: "logs", Key: tt.key, Size: 1})
			require.NoError(t, err)
			assert.Equal(t, tt.compressed, obj.Compressed)
		})
	}
}

func TestMaterializeFetchFailureLeavesNoFile(t *testing.T) {
	tmpDir := t.TempDir()
	transportErr := errors.New("connection reset")
	m := New(&fakeFetcher{err: transportErr}, WithTmpDir(tmpDir))

	_, err := m.Materialize(context.Background(), types.ObjectRef{Region: "us-east-1", Bucket: "logs", Key: "file.log", Size: 1})

	var downloadErr *DownloadError
	require.Error(t, err)
	assert.True(t, errors.As(err, &downloadErr))
	assert.ErrorIs(t, err, transportErr)

	// the partial file must not be orphaned
	entries, readErr := os.ReadDir(tmpDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestMaterializeUniquePaths(t *testing.T) {
	m := New(&fakeFetcher{data: []byte("x")}, WithTmpDir(t.TempDir()))
	ref := types.ObjectRef{Region: "us-east-1", Bucket: "logs", Key: "same/key.log", Size: 1}

	first, err := m.Materialize(context.Background(), ref)
	require.NoError(t, err)
	second, err := m.Materialize(context.Background(), ref)
	require.NoError(t, err)

	assert.NotEqual(t, first.LocalPath, second.LocalPath)
}
