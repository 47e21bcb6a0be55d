package types

// SourceKind identifies which event source produced an inbound notification.
type SourceKind string

const (
	SourceKindStreamRecord       SourceKind = "stream_record"
	SourceKindObjectNotification SourceKind = "object_notification"
	SourceKindPubSubNotification SourceKind = "pub_sub_notification"
)

// EventEnvelope is the source specific wrapper metadata around one inbound
// notification. It is a closed union - the only implementations are
// [StreamRecordEnvelope], [ObjectNotificationEnvelope] and
// [PubSubNotificationEnvelope]. Envelopes are constructed once per inbound
// notification and consumed exactly once.
type EventEnvelope interface {
	SourceKind() SourceKind
}

// StreamRecordEnvelope wraps a record read from a stream partition
type StreamRecordEnvelope struct {
	PartitionID string `json:"partitionId"`
	SourceID    string `json:"sourceId"`
	// base64 encoded record payload
	Data string `json:"data"`
}

func (*StreamRecordEnvelope) SourceKind() SourceKind {
	return SourceKindStreamRecord
}

// ObjectNotificationEnvelope describes an object written to a storage bucket.
// Bucket and Key are URL-escaped on the wire (non-ASCII names are legal).
// Size is a pointer so a missing size can be distinguished from zero.
type ObjectNotificationEnvelope struct {
	Region string `json:"region"`
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Size   *int64 `json:"size"`
}

func (*ObjectNotificationEnvelope) SourceKind() SourceKind {
	return SourceKindObjectNotification
}

// PubSubNotificationEnvelope wraps a message delivered by a pub/sub topic.
// Message is a pointer so a missing message can be distinguished from an
// empty one.
type PubSubNotificationEnvelope struct {
	MessageID      string  `json:"messageId"`
	SubscriptionID string  `json:"subscriptionId"`
	Message        *string `json:"message"`
}

func (*PubSubNotificationEnvelope) SourceKind() SourceKind {
	return SourceKindPubSubNotification
}
