package object_store

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/streamguard/ingest-sdk/config"
	"github.com/streamguard/ingest-sdk/constants"
	"github.com/streamguard/ingest-sdk/types"
)

// S3Fetcher is an [ObjectFetcher] implementation that reads objects from S3
type S3Fetcher struct {
	client *s3.Client
}

func NewS3Fetcher(ctx context.Context, cfg *config.IngestConfig) (*S3Fetcher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	// add credentials if provided
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken)))
	}
	opts = append(opts, awsconfig.WithRegion(cfg.GetRegion()))

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %w", err)
	}

	return &S3Fetcher{client: s3.NewFromConfig(awsCfg)}, nil
}

func (f *S3Fetcher) Identifier() string {
	return constants.S3FetcherIdentifier
}

// Fetch implements ObjectFetcher
func (f *S3Fetcher) Fetch(ctx context.Context, ref types.ObjectRef, dest io.Writer) error {
	var opts []func(*s3.Options)
	// the notification names the bucket's region - override the client
	// default for this call
	if ref.Region != "" {
		opts = append(opts, func(o *s3.Options) {
			o.Region = ref.Region
		})
	}

	getObjectOutput, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(ref.Bucket),
		Key:    aws.String(ref.Key),
	}, opts...)
	if err != nil {
		return err
	}
	defer getObjectOutput.Body.Close()

	_, err = io.Copy(dest, getObjectOutput.Body)
	return err
}
