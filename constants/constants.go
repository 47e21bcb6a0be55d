package constants

// MaxObjectSizeDefault is the default ceiling on the declared size of a
// remote object (128 MiB). The execution environment has a hard wall-clock
// budget and finite ephemeral disk, so oversized objects are rejected
// before any transfer is attempted.
const MaxObjectSizeDefault int64 = 128 * 1024 * 1024

const DefaultRegion = "us-east-1"

const (
	S3FetcherIdentifier  = "aws_s3"
	GcsFetcherIdentifier = "gcp_storage"
)
