package object_store

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"github.com/mitchellh/go-homedir"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"

	"github.com/streamguard/ingest-sdk/config"
	"github.com/streamguard/ingest-sdk/constants"
	"github.com/streamguard/ingest-sdk/types"
)

// GcsFetcher is an [ObjectFetcher] implementation that reads objects from a
// GCP Storage bucket
type GcsFetcher struct {
	client *storage.Client
}

func NewGcsFetcher(ctx context.Context, cfg *config.IngestConfig) (*GcsFetcher, error) {
	opts, err := setSessionConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed setting GCP Storage client config: %s", err.Error())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCP Storage client: %s", err.Error())
	}

	return &GcsFetcher{client: client}, nil
}

func (f *GcsFetcher) Identifier() string {
	return constants.GcsFetcherIdentifier
}

func (f *GcsFetcher) Close() error {
	return f.client.Close()
}

// Fetch implements ObjectFetcher
func (f *GcsFetcher) Fetch(ctx context.Context, ref types.ObjectRef, dest io.Writer) error {
	obj := f.client.Bucket(ref.Bucket).Object(ref.Key)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return err
	}
	defer reader.Close()

	_, err = io.Copy(dest, reader)
	return err
}

func setSessionConfig(ctx context.Context, cfg *config.IngestConfig) ([]option.ClientOption, error) {
	var opts []option.ClientOption

	// Credentials
	if cfg.Credentials != nil {
		credentials, err := pathOrContents(*cfg.Credentials)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %s", err.Error())
		}

		opts = append(opts, option.WithCredentialsJSON([]byte(credentials)))
	}

	// Quota Project
	quotaProject := os.Getenv("GOOGLE_CLOUD_QUOTA_PROJECT")

	if cfg.QuotaProject != nil {
		quotaProject = *cfg.QuotaProject
	}

	if quotaProject != "" {
		opts = append(opts, option.WithQuotaProject(quotaProject))
	}

	// Impersonate
	if cfg.Impersonate != nil {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: *cfg.Impersonate,
			Scopes:          []string{"https://www.googleapis.com/auth/cloud-platform"},
		})
		if err != nil {
			return opts, err
		}

		opts = append(opts, option.WithTokenSource(ts))
	}

	return opts, nil
}

// pathOrContents returns the contents of the file if in names one, otherwise
// the value itself
func pathOrContents(in string) (string, error) {
	if len(in) == 0 {
		return "", nil
	}

	filePath := in

	if filePath[0] == '~' {
		var err error
		filePath, err = homedir.Expand(filePath)
		if err != nil {
			return filePath, err
		}
	}

	if _, err := os.Stat(filePath); err == nil {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			return string(contents), err
		}
		return string(contents), nil
	}

	if len(filePath) > 1 && (filePath[0] == '/' || filePath[0] == '\\') {
		return "", fmt.Errorf("%s: no such file or dir", filePath)
	}

	return in, nil
}
