package s3

import (
	"context"
	"errors"
	"testing"

	"salescore/internal/infra/blob/core"
)

func testConfig() Config {
	return Config{
		Region:          "us-east-1",
		Bucket:          "salescore-test",
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		PathStyle:       true,
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{Region: "us-east-1"}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

func TestOpenFromEnvRequiresBucket(t *testing.T) {
	t.Setenv("SALESCORE_BLOB_S3_BUCKET", "")
	if _, err := OpenFromEnv(context.Background()); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

func TestDriverIdentifier(t *testing.T) {
	store, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.Driver() != core.DriverS3 {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
}

func TestPresignRejectsNonGet(t *testing.T) {
	store, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := store.PresignURL(context.Background(), "key", core.SignedURLOptions{Method: "PUT"}); !errors.Is(err, core.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestPresignProducesSignedGetURL(t *testing.T) {
	store, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	url, err := store.PresignURL(context.Background(), "audit/a.json", core.SignedURLOptions{})
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if url == "" {
		t.Fatalf("expected signed url")
	}
}
