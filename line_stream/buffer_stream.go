package line_stream

import (
	"bufio"
	"bytes"

	"github.com/streamguard/ingest-sdk/types"
)

// BufferStream exposes an in-memory payload as the same line record
// sequence a [LineStream] produces. There is no backing file to destroy,
// but the at-most-once consumption contract is the same.
type BufferStream struct {
	scanner  *bufio.Scanner
	record   types.LineRecord
	index    int
	err      error
	consumed bool
}

func NewBufferStream(data []byte) *BufferStream {
	return &BufferStream{
		scanner: bufio.NewScanner(bytes.NewReader(data)),
	}
}

// Next advances to the next line record, returning false on exhaustion
func (s *BufferStream) Next() bool {
	if s.consumed {
		if s.err == nil {
			s.err = &ResourceAlreadyConsumedError{Path: "in-memory buffer"}
		}
		return false
	}

	if s.scanner.Scan() {
		s.record = types.LineRecord{Index: s.index, Text: s.scanner.Text()}
		s.index++
		return true
	}

	s.consumed = true
	s.err = s.scanner.Err()
	return false
}

// Record returns the line record read by the last successful call to Next
func (s *BufferStream) Record() types.LineRecord {
	return s.record
}

func (s *BufferStream) Err() error {
	return s.err
}
