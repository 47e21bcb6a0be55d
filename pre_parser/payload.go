package pre_parser

import (
	"github.com/streamguard/ingest-sdk/line_stream"
	"github.com/streamguard/ingest-sdk/types"
)

// RawPayload is the normalized output of pre-parsing one inbound
// notification, handed to the classification collaborator. It is a closed
// union - the only implementations are [BufferPayload] and [ObjectPayload].
type RawPayload interface {
	SourceKind() types.SourceKind
}

// BufferPayload carries an in-memory payload - stream records and pub/sub
// notifications are small enough to hold whole.
type BufferPayload struct {
	Kind types.SourceKind
	Data []byte
}

func (p *BufferPayload) SourceKind() types.SourceKind {
	return p.Kind
}

// ObjectPayload carries the lazy line sequence of a materialized object,
// along with the declared remote size so the consumer can make
// chunking/batching decisions.
type ObjectPayload struct {
	Stream       *line_stream.LineStream
	DeclaredSize int64
}

func (p *ObjectPayload) SourceKind() types.SourceKind {
	return types.SourceKindObjectNotification
}
