// Package pre_parser normalizes heterogeneous event-source payloads into
// raw payloads for downstream classification.
//
// Control flow for one inbound notification:
//
//	adapter -> (bytes | object reference)
//	         -> materializer (object references only) -> local temp file
//	         -> line stream -> sequence of (index, line)
//
// Stream record and pub/sub payloads come back as a single byte buffer;
// object notifications come back as a lazy line stream which owns - and
// destroys - the downloaded temp file.
//
// Each call is one sequential, synchronous unit of work: no goroutines are
// spawned and no state is shared between calls. Record-level parallelism is
// the platform's concern.
package pre_parser

import (
	"context"
	"fmt"

	"github.com/streamguard/ingest-sdk/envelope"
	"github.com/streamguard/ingest-sdk/line_stream"
	"github.com/streamguard/ingest-sdk/materializer"
	"github.com/streamguard/ingest-sdk/types"
)

// PreParser decodes event envelopes and materializes remote objects
type PreParser struct {
	materializer *materializer.Materializer
}

func New(m *materializer.Materializer) *PreParser {
	return &PreParser{materializer: m}
}

// PreParse decodes one inbound envelope into a [RawPayload]. Errors are
// returned to the caller untouched - nothing is retried here, since only
// the caller knows batch-level semantics such as redelivery.
func (p *PreParser) PreParse(ctx context.Context, e types.EventEnvelope) (RawPayload, error) {
	switch env := e.(type) {
	case *types.StreamRecordEnvelope:
		data, err := envelope.DecodeStreamRecord(env)
		if err != nil {
			return nil, err
		}
		return &BufferPayload{Kind: env.SourceKind(), Data: data}, nil

	case *types.ObjectNotificationEnvelope:
		ref, err := envelope.DecodeObjectNotification(env)
		if err != nil {
			return nil, err
		}
		obj, err := p.materializer.Materialize(ctx, ref)
		if err != nil {
			return nil, err
		}
		return &ObjectPayload{
			Stream:       line_stream.NewLineStream(obj),
			DeclaredSize: obj.DeclaredSize,
		}, nil

	case *types.PubSubNotificationEnvelope:
		message, err := envelope.DecodePubSubNotification(env)
		if err != nil {
			return nil, err
		}
		return &BufferPayload{Kind: env.SourceKind(), Data: []byte(message)}, nil

	default:
		return nil, fmt.Errorf("unsupported envelope type %T", e)
	}
}
