// Package line_stream exposes a materialized object (or an in-memory
// buffer) as a lazy, finite, forward-only sequence of line records, and owns
// the destruction of the backing local file.
//
// The stream is consumed scanner-style:
//
//	stream := line_stream.NewLineStream(obj)
//	for stream.Next() {
//		record := stream.Record()
//		...
//	}
//	if err := stream.Err(); err != nil { ... }
//
// The backing file is destroyed exactly once - when iteration completes,
// when it errors, or when the stream is abandoned early via Close. A second
// iteration attempt reports [ResourceAlreadyConsumedError].
package line_stream

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/streamguard/ingest-sdk/materializer"
	"github.com/streamguard/ingest-sdk/types"
)

// LineStream reads a materialized object one line at a time, decompressing
// if the object was flagged as gzip at materialization time
type LineStream struct {
	path       string
	compressed bool

	file     *os.File
	gzReader *gzip.Reader
	scanner  *bufio.Scanner

	record   types.LineRecord
	index    int
	err      error
	opened   bool
	consumed bool
}

func NewLineStream(obj *materializer.MaterializedObject) *LineStream {
	return &LineStream{
		path:       obj.LocalPath,
		compressed: obj.Compressed,
	}
}

// Next advances to the next line record. It returns false when the sequence
// is exhausted or fails; the caller must then check Err. The backing file is
// destroyed before Next returns false.
func (s *LineStream) Next() bool {
	if s.consumed {
		if s.err == nil {
			s.err = &ResourceAlreadyConsumedError{Path: s.path}
		}
		return false
	}

	if !s.opened {
		if err := s.open(); err != nil {
			s.finish(err)
			return false
		}
	}

	if s.scanner.Scan() {
		s.record = types.LineRecord{Index: s.index, Text: s.scanner.Text()}
		s.index++
		return true
	}

	err := s.scanner.Err()
	if err != nil && s.compressed {
		err = &CorruptObjectError{Path: s.path, Err: err}
	}
	s.finish(err)
	return false
}

// Record returns the line record read by the last successful call to Next
func (s *LineStream) Record() types.LineRecord {
	return s.record
}

func (s *LineStream) Err() error {
	return s.err
}

// Close abandons the stream early, destroying the backing file. Calling
// Close on a completed stream is a no-op.
func (s *LineStream) Close() error {
	if !s.consumed {
		s.finish(nil)
	}
	return nil
}

func (s *LineStream) open() error {
	s.opened = true

	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", s.path, err)
	}
	s.file = f

	var r io.Reader = f
	if s.compressed {
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return &CorruptObjectError{Path: s.path, Err: err}
		}
		s.gzReader = gzReader
		r = gzReader
	}

	s.scanner = bufio.NewScanner(r)
	return nil
}

// finish closes the readers and destroys the backing file, exactly once
func (s *LineStream) finish(err error) {
	s.consumed = true
	s.err = err

	if s.gzReader != nil {
		s.gzReader.Close()
	}
	if s.file != nil {
		s.file.Close()
	}

	cleanup(s.path)
}

// cleanup destroys the temp file. The target execution environment does not
// reliably reclaim disk space for files that are simply unlinked, so the
// file is truncated to zero length before removal. A cleanup failure is
// logged but never escalated - it must not fail the ingestion of an
// otherwise successfully read object.
func cleanup(path string) {
	if err := os.Truncate(path, 0); err != nil {
		slog.Error("Failed to truncate temp file", "path", path, "error", err)
	}

	if err := os.Remove(path); err != nil {
		slog.Error("Failed to remove temp file", "path", path, "error", err)
	}

	if _, err := os.Stat(path); err == nil {
		slog.Error("Temp file still exists after removal", "path", path)
	} else {
		slog.Debug("Removed temp file", "path", path)
	}
}
