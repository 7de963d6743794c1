package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ukhamba-backend/internal/config"
)

// galleryRoot is the directory inside the storage zone that holds gallery
// media, organized as <category>/<subcategory>/<file>.
const galleryRoot = "gallery"

// Bunny lists a Bunny.net storage zone. The storage API is per-directory, so
// List walks category folders recursively.
type Bunny struct {
	accessKey   string
	storageZone string
	pullZone    string
	region      string
	client      *http.Client
}

func NewBunny(cfg *config.Config) *Bunny {
	return &Bunny{
		accessKey:   cfg.BunnyAccessKey,
		storageZone: cfg.BunnyStorageZone,
		pullZone:    cfg.BunnyPullZone,
		region:      cfg.BunnyRegion,
		client:      newHTTPClient(),
	}
}

func (p *Bunny) Name() string { return "bunny" }

type bunnyEntry struct {
	ObjectName  string `json:"ObjectName"`
	Path        string `json:"Path"`
	Length      int64  `json:"Length"`
	LastChanged string `json:"LastChanged"`
	IsDirectory bool   `json:"IsDirectory"`
}

func (p *Bunny) List(ctx context.Context) ([]StorageObject, error) {
	if p.accessKey == "" || p.storageZone == "" || p.pullZone == "" {
		return nil, fmt.Errorf("%w: BUNNY_STORAGE_ACCESS_KEY, BUNNY_STORAGE_ZONE and BUNNY_PULL_ZONE are required", ErrMissingCredentials)
	}

	objects, err := p.listDir(ctx, galleryRoot+"/")
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("%w: storage zone %s", ErrEmptyListing, p.storageZone)
	}
	return objects, nil
}

func (p *Bunny) listDir(ctx context.Context, dir string) ([]StorageObject, error) {
	endpoint := fmt.Sprintf("https://%s/%s/%s", p.storageHost(), p.storageZone, dir)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("AccessKey", p.accessKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from Bunny storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("Bunny storage returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var entries []bunnyEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse Bunny storage response: %w", err)
	}

	var objects []StorageObject
	for _, e := range entries {
		if e.IsDirectory {
			sub, err := p.listDir(ctx, dir+e.ObjectName+"/")
			if err != nil {
				return nil, err
			}
			objects = append(objects, sub...)
			continue
		}

		key := strings.TrimPrefix(dir+e.ObjectName, galleryRoot+"/")
		objects = append(objects, StorageObject{
			Key:          key,
			URL:          p.objectURL(key),
			Size:         e.Length,
			LastModified: parseBunnyTime(e.LastChanged),
		})
	}
	return objects, nil
}

func (p *Bunny) storageHost() string {
	// The primary region has no host prefix; replicas do.
	if p.region == "" || p.region == "de" {
		return "storage.bunnycdn.com"
	}
	return p.region + ".storage.bunnycdn.com"
}

func (p *Bunny) objectURL(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return fmt.Sprintf("https://%s/%s/%s", p.pullZone, galleryRoot, strings.Join(parts, "/"))
}

func parseBunnyTime(value string) time.Time {
	// Bunny reports local-zone timestamps without an offset.
	for _, layout := range []string{"2006-01-02T15:04:05.999", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
