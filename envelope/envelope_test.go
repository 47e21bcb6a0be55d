package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamguard/ingest-sdk/types"
)

func TestDecodeStreamRecord(t *testing.T) {
	tests := []struct {
		name     string
		envelope *types.StreamRecordEnvelope
		want     []byte
		wantErr  bool
	}{
		{
			name:     "valid base64",
			envelope: &types.StreamRecordEnvelope{PartitionID: "shard-0001", SourceID: "stream/logs", Data: "aGVsbG8="},
			want:     []byte("hello"),
		},
		{
			name:     "empty payload",
			envelope: &types.StreamRecordEnvelope{Data: ""},
			want:     []byte{},
		},
		{
			name:     "invalid base64",
			envelope: &types.StreamRecordEnvelope{Data: "not base64!!"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeStreamRecord(tt.envelope)
			if tt.wantErr {
				var decodeErr *DecodeError
				require.Error(t, err)
				assert.True(t, errors.As(err, &decodeErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeObjectNotification(t *testing.T) {
	size := func(n int64) *int64 { return &n }

	tests := []struct {
		name     string
		envelope *types.ObjectNotificationEnvelope
		want     types.ObjectRef
		wantErr  bool
	}{
		{
			name:     "plain fields",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Bucket: "logs", Key: "app/2024/file.gz", Size: size(42)},
			want:     types.ObjectRef{Region: "us-east-1", Bucket: "logs", Key: "app/2024/file.gz", Size: 42},
		},
		{
			name:     "url escaped bucket and key",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Bucket: "my%20bucket", Key: "logs%2F2024%2Ffile.gz", Size: size(10)},
			want:     types.ObjectRef{Region: "us-east-1", Bucket: "my bucket", Key: "logs/2024/file.gz", Size: 10},
		},
		{
			name:     "non-ascii key",
			envelope: &types.ObjectNotificationEnvelope{Region: "eu-west-1", Bucket: "logs", Key: "r%C3%A9gion%2Fnotes.log", Size: size(0)},
			want:     types.ObjectRef{Region: "eu-west-1", Bucket: "logs", Key: "région/notes.log", Size: 0},
		},
		{
			name:     "missing region",
			envelope: &types.ObjectNotificationEnvelope{Bucket: "logs", Key: "file.log", Size: size(1)},
			wantErr:  true,
		},
		{
			name:     "missing bucket",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Key: "file.log", Size: size(1)},
			wantErr:  true,
		},
		{
			name:     "missing key",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Bucket: "logs", Size: size(1)},
			wantErr:  true,
		},
		{
			name:     "missing size",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Bucket: "logs", Key: "file.log"},
			wantErr:  true,
		},
		{
			name:     "negative size",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Bucket: "logs", Key: "file.log", Size: size(-1)},
			wantErr:  true,
		},
		{
			name:     "bad escape sequence",
			envelope: &types.ObjectNotificationEnvelope{Region: "us-east-1", Bucket: "logs", Key: "file%zz.log", Size: size(1)},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeObjectNotification(tt.envelope)
			if tt.wantErr {
				var malformedErr *MalformedEnvelopeError
				require.Error(t, err)
				assert.True(t, errors.As(err, &malformedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePubSubNotification(t *testing.T) {
	message := "disk usage above threshold"
	empty := ""

	tests := []struct {
		name     string
		envelope *types.PubSubNotificationEnvelope
		want     string
		wantErr  bool
	}{
		{
			name:     "message present",
			envelope: &types.PubSubNotificationEnvelope{MessageID: "m-1", SubscriptionID: "sub/alerts", Message: &message},
			want:     message,
		},
		{
			name:     "empty message is still a message",
			envelope: &types.PubSubNotificationEnvelope{Message: &empty},
			want:     "",
		},
		{
			name:     "missing message",
			envelope: &types.PubSubNotificationEnvelope{MessageID: "m-2"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePubSubNotification(tt.envelope)
			if tt.wantErr {
				var malformedErr *MalformedEnvelopeError
				require.Error(t, err)
				assert.True(t, errors.As(err, &malformedErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
