package artifact

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/de-tools/hospital-atlas/pkg/config"
)

// Sink stores an exported document and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

var contentTypes = map[string]string{
	".csv": "text/csv; charset=utf-8",
	".pdf": "application/pdf",
}

func contentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	return nil
}

// NewSink uploads to S3 when a bucket is configured and writes to dir otherwise.
func NewSink(ctx context.Context, cfg config.ReportConfig) (Sink, error) {
	if cfg.S3Bucket != "" {
		return NewS3SinkFromEnv(ctx, cfg.S3Bucket, cfg.S3Prefix)
	}
	return NewFileSink(cfg.OutputDir), nil
}
