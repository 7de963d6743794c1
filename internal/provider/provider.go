package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ukhamba-backend/internal/config"
)

// Sentinel errors for the failure taxonomy. Handlers map these to distinct
// responses: missing credentials is a configuration error, an empty listing
// is a reportable condition of its own, everything else is transport.
var (
	ErrMissingCredentials = errors.New("missing provider credentials")
	ErrEmptyListing       = errors.New("no objects found in storage")
)

// StorageObject is one entry of a provider listing before normalization.
// Key carries the category path ("youth/workshops/3. file.webp"). URL, ID and
// Kind are optional provider-resolved values; the gallery service fills in
// whatever is missing.
type StorageObject struct {
	Key          string
	ID           string
	URL          string
	Kind         string
	Size         int64
	LastModified time.Time
}

// MediaProvider lists the objects of one remote media backend. Backends are
// interchangeable; selection happens once at startup from configuration.
type MediaProvider interface {
	Name() string
	List(ctx context.Context) ([]StorageObject, error)
}

const listTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: listTimeout}
}

// FromConfig selects the configured backend.
func FromConfig(cfg *config.Config) (MediaProvider, error) {
	switch cfg.GalleryProvider {
	case "r2":
		return NewR2(cfg), nil
	case "bunny":
		return NewBunny(cfg), nil
	case "cloudinary":
		return NewCloudinary(cfg), nil
	case "static":
		return NewStatic(), nil
	default:
		return nil, fmt.Errorf("unknown gallery provider %q", cfg.GalleryProvider)
	}
}
