// Package envelope provides the pre-parse adapters which decode one inbound
// notification into a raw payload, independent of all other adapters.
//
// Adapters provided:
// - [DecodeStreamRecord] - base64 decodes a stream record payload
// - [DecodeObjectNotification] - normalizes a storage bucket notification into an [types.ObjectRef]
// - [DecodePubSubNotification] - returns the inner pub/sub message verbatim
package envelope

import (
	"encoding/base64"
	"log/slog"
	"net/url"

	"github.com/streamguard/ingest-sdk/types"
)

// DecodeStreamRecord decodes the base64 encoded payload of a stream record
// envelope and returns the raw bytes
func DecodeStreamRecord(e *types.StreamRecordEnvelope) ([]byte, error) {
	slog.Debug("Pre-parsing stream record", "partition_id", e.PartitionID, "source_id", e.SourceID)

	data, err := base64.StdEncoding.DecodeString(e.Data)
	if err != nil {
		return nil, &DecodeError{Source: e.SourceKind(), Err: err}
	}
	return data, nil
}

// DecodeObjectNotification normalizes an object notification envelope into
// an [types.ObjectRef]. Bucket name and key are URL-unescaped before use.
// This adapter does not touch the network.
func DecodeObjectNotification(e *types.ObjectNotificationEnvelope) (types.ObjectRef, error) {
	var ref types.ObjectRef

	if e.Region == "" {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "region", Reason: "is required"}
	}
	if e.Bucket == "" {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "bucket", Reason: "is required"}
	}
	if e.Key == "" {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "key", Reason: "is required"}
	}
	if e.Size == nil {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "size", Reason: "is required"}
	}
	if *e.Size < 0 {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "size", Reason: "must be a non-negative integer"}
	}

	bucket, err := url.QueryUnescape(e.Bucket)
	if err != nil {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "bucket", Reason: "is not valid URL-escaped UTF-8"}
	}
	key, err := url.QueryUnescape(e.Key)
	if err != nil {
		return ref, &MalformedEnvelopeError{Source: e.SourceKind(), Field: "key", Reason: "is not valid URL-escaped UTF-8"}
	}

	slog.Debug("Pre-parsing object notification", "bucket", bucket, "key", key, "size", *e.Size)

	return types.ObjectRef{
		Region: e.Region,
		Bucket: bucket,
		Key:    key,
		Size:   *e.Size,
	}, nil
}

// DecodePubSubNotification returns the inner message of a pub/sub
// notification envelope, unmodified (already plaintext)
func DecodePubSubNotification(e *types.PubSubNotificationEnvelope) (string, error) {
	if e.Message == nil {
		return "", &MalformedEnvelopeError{Source: e.SourceKind(), Field: "message", Reason: "is required"}
	}

	slog.Debug("Pre-parsing pub/sub notification", "message_id", e.MessageID, "subscription_id", e.SubscriptionID)

	return *e.Message, nil
}
