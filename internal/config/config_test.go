package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv(key)
			return
		}
		_ = os.Setenv(key, original)
	})
}

func TestDefaultsApplyWhenEnvIsUnset(t *testing.T) {
	unsetEnv(t, "GALLERY_PROVIDER")
	unsetEnv(t, "CLOUDFLARE_R2_BUCKET_NAME")
	unsetEnv(t, "GALLERY_ITEMS_PER_PAGE")

	cfg := New()

	if cfg.GalleryProvider != "r2" {
		t.Fatalf("expected default provider r2, got %q", cfg.GalleryProvider)
	}
	if cfg.R2BucketName != "ukhamba-gallery" {
		t.Fatalf("expected default bucket, got %q", cfg.R2BucketName)
	}
	if cfg.GalleryItemsPerPage != 12 {
		t.Fatalf("expected 12 items per page, got %d", cfg.GalleryItemsPerPage)
	}
}

func TestCacheTTLParsedAsSeconds(t *testing.T) {
	t.Setenv("GALLERY_CACHE_TTL", "600")

	cfg := New()
	if cfg.GalleryCacheTTL != 10*time.Minute {
		t.Fatalf("expected 10m TTL, got %s", cfg.GalleryCacheTTL)
	}
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")

	cfg := New()
	if cfg.RateLimitRequests != 100 {
		t.Fatalf("expected default 100, got %d", cfg.RateLimitRequests)
	}
}

func TestBoolParsing(t *testing.T) {
	t.Setenv("ENABLE_CACHE", "1")
	t.Setenv("ENABLE_EMAIL", "false")

	cfg := New()
	if !cfg.EnableCache {
		t.Fatalf("expected cache enabled for value 1")
	}
	if cfg.EnableEmail {
		t.Fatalf("expected email disabled for value false")
	}
}
