package provider

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"ukhamba-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		GalleryProvider:      "r2",
		R2AccountID:          "acct123",
		R2AccessKeyID:        "AKIDEXAMPLE",
		R2SecretAccessKey:    "secret",
		R2BucketName:         "ukhamba-gallery",
		BunnyAccessKey:       "bk",
		BunnyStorageZone:     "ukhamba",
		BunnyPullZone:        "ukhamba.b-cdn.net",
		BunnyRegion:          "de",
		CloudinaryCloudName:  "demo",
		CloudinaryAPIKey:     "key",
		CloudinaryAPISecret:  "secret",
		CloudinaryRootFolder: "ukhamba-gallery",
	}
}

func TestFromConfigSelectsBackend(t *testing.T) {
	cfg := testConfig()
	for name, want := range map[string]string{
		"r2":         "cloudflare-r2",
		"bunny":      "bunny",
		"cloudinary": "cloudinary",
		"static":     "static",
	} {
		cfg.GalleryProvider = name
		p, err := FromConfig(cfg)
		if err != nil {
			t.Fatalf("FromConfig(%s): %v", name, err)
		}
		if p.Name() != want {
			t.Errorf("FromConfig(%s).Name() = %s", name, p.Name())
		}
	}

	cfg.GalleryProvider = "ftp"
	if _, err := FromConfig(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestR2MissingCredentialsIsConfigError(t *testing.T) {
	cfg := testConfig()
	cfg.R2SecretAccessKey = ""
	p := NewR2(cfg)

	_, err := p.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "CLOUDFLARE_R2_SECRET_ACCESS_KEY") {
		t.Fatalf("error should name the missing variable, got %v", err)
	}
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestR2ObjectURLEncodesPathSegments(t *testing.T) {
	p := NewR2(testConfig())
	got := p.objectURL("youth/youth-workshops/3. Youth Workshops_2.webp")
	want := "https://ukhamba-gallery.acct123.r2.cloudflarestorage.com/youth/youth-workshops/3.%20Youth%20Workshops_2.webp"
	if got != want {
		t.Fatalf("objectURL = %s, want %s", got, want)
	}
}

func TestCanonicalQuerySortsAndEscapes(t *testing.T) {
	values := url.Values{}
	values.Set("list-type", "2")
	values.Set("continuation-token", "a b+c")
	got := canonicalQuery(values)
	want := "continuation-token=a%20b%2Bc&list-type=2"
	if got != want {
		t.Fatalf("canonicalQuery = %s, want %s", got, want)
	}
}

func TestR2SignRequestIsDeterministic(t *testing.T) {
	p := NewR2(testConfig())
	fixed := time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	sign := func() *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://acct123.r2.cloudflarestorage.com/ukhamba-gallery?list-type=2", nil)
		p.signRequest(req, "acct123.r2.cloudflarestorage.com", "/ukhamba-gallery", "list-type=2")
		return req
	}

	first := sign().Header.Get("Authorization")
	second := sign().Header.Get("Authorization")
	if first == "" || first != second {
		t.Fatalf("signature must be deterministic for a fixed clock: %q vs %q", first, second)
	}
	if !strings.HasPrefix(first, "AWS4-HMAC-SHA256 Credential=AKIDEXAMPLE/20240601/auto/s3/aws4_request, SignedHeaders=host;x-amz-content-sha256;x-amz-date, Signature=") {
		t.Fatalf("unexpected authorization header: %s", first)
	}
	if got := sign().Header.Get("X-Amz-Date"); got != "20240601T103000Z" {
		t.Fatalf("X-Amz-Date = %s", got)
	}
}

func TestBunnyStorageHostByRegion(t *testing.T) {
	cfg := testConfig()
	p := NewBunny(cfg)
	if got := p.storageHost(); got != "storage.bunnycdn.com" {
		t.Fatalf("primary region host = %s", got)
	}

	cfg.BunnyRegion = "ny"
	p = NewBunny(cfg)
	if got := p.storageHost(); got != "ny.storage.bunnycdn.com" {
		t.Fatalf("replica region host = %s", got)
	}
}

func TestParseBunnyTime(t *testing.T) {
	got := parseBunnyTime("2024-05-20T08:15:30.123")
	if got.IsZero() {
		t.Fatal("expected parsed time")
	}
	if parseBunnyTime("garbage") != (time.Time{}) {
		t.Fatal("unparseable time must be zero")
	}
}

func TestCloudinaryToObjectRestoresExtension(t *testing.T) {
	p := NewCloudinary(testConfig())
	obj := p.toObject(cloudinaryResource{
		PublicID:     "ukhamba-gallery/youth/workshops/skills-day",
		AssetID:      "abc123",
		Format:       "webp",
		SecureURL:    "https://res.cloudinary.com/demo/image/upload/v1/ukhamba-gallery/youth/workshops/skills-day.webp",
		CreatedAt:    "2024-04-01T09:00:00Z",
		ResourceType: "image",
	})

	if obj.Key != "youth/workshops/skills-day.webp" {
		t.Fatalf("Key = %s", obj.Key)
	}
	if obj.ID != "abc123" || obj.Kind != "image" {
		t.Fatalf("unexpected object: %+v", obj)
	}
	if obj.LastModified.IsZero() {
		t.Fatal("expected parsed created_at")
	}
}

func TestStaticListingIsNonEmptyAndCopied(t *testing.T) {
	p := NewStatic()
	first, err := p.List(context.Background())
	if err != nil {
		t.Fatalf("static list: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("static listing must not be empty")
	}

	first[0].Key = "mutated"
	second, _ := p.List(context.Background())
	if second[0].Key == "mutated" {
		t.Fatal("List must return a copy, not the backing slice")
	}
}
