package config

import (
	"errors"
	"os"

	"github.com/hashicorp/hcl/v2"
	typehelpers "github.com/turbot/go-kit/types"

	"github.com/streamguard/ingest-sdk/constants"
)

// Config is the interface all configuration structs must implement
type Config interface {
	Identifier() string
	Validate() error
}

// IngestConfig is the configuration threaded into the materializer and the
// object store fetchers. Every field is optional; defaults are documented
// on the accessors.
type IngestConfig struct {
	// required to allow partial decoding
	Remain hcl.Body `hcl:",remain" json:"-"`

	// ceiling on the declared size of a remote object, in bytes
	MaxObjectSize *int64  `hcl:"max_object_size,optional"`
	Region        *string `hcl:"region,optional"`
	TmpDir        *string `hcl:"tmp_dir,optional"`

	AccessKey    string `hcl:"access_key,optional"`
	SecretKey    string `hcl:"secret_key,optional"`
	SessionToken string `hcl:"session_token,optional"`

	// GCP storage options
	Credentials  *string `hcl:"credentials,optional"`
	QuotaProject *string `hcl:"quota_project,optional"`
	Impersonate  *string `hcl:"impersonate,optional"`
}

func (*IngestConfig) Identifier() string {
	return "ingest"
}

func (c *IngestConfig) Validate() error {
	if c.MaxObjectSize != nil && *c.MaxObjectSize <= 0 {
		return errors.New("max_object_size must be a positive number of bytes")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.New("access_key and secret_key must both be set or both be empty")
	}
	return nil
}

// GetMaxObjectSize returns the configured ceiling, defaulting to 128 MiB
func (c *IngestConfig) GetMaxObjectSize() int64 {
	if c.MaxObjectSize == nil {
		return constants.MaxObjectSizeDefault
	}
	return *c.MaxObjectSize
}

// GetRegion returns the configured region, defaulting to us-east-1
func (c *IngestConfig) GetRegion() string {
	region := typehelpers.SafeString(c.Region)
	if region == "" {
		return constants.DefaultRegion
	}
	return region
}

// GetTmpDir returns the directory for downloaded objects, defaulting to the
// system temp directory
func (c *IngestConfig) GetTmpDir() string {
	dir := typehelpers.SafeString(c.TmpDir)
	if dir == "" {
		return os.TempDir()
	}
	return dir
}
