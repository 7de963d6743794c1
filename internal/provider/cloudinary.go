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

const cloudinaryMaxResults = 500

// Cloudinary lists media through the Admin search API. Cursor paging is
// handled here; callers always receive the complete set.
type Cloudinary struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	rootFolder string
	client     *http.Client
}

func NewCloudinary(cfg *config.Config) *Cloudinary {
	return &Cloudinary{
		cloudName:  cfg.CloudinaryCloudName,
		apiKey:     cfg.CloudinaryAPIKey,
		apiSecret:  cfg.CloudinaryAPISecret,
		rootFolder: cfg.CloudinaryRootFolder,
		client:     newHTTPClient(),
	}
}

func (p *Cloudinary) Name() string { return "cloudinary" }

type cloudinaryResource struct {
	PublicID     string `json:"public_id"`
	AssetID      string `json:"asset_id"`
	Format       string `json:"format"`
	SecureURL    string `json:"secure_url"`
	CreatedAt    string `json:"created_at"`
	ResourceType string `json:"resource_type"`
	Bytes        int64  `json:"bytes"`
}

type cloudinaryResponse struct {
	Resources  []cloudinaryResource `json:"resources"`
	NextCursor string               `json:"next_cursor"`
}

func (p *Cloudinary) List(ctx context.Context) ([]StorageObject, error) {
	if p.cloudName == "" || p.apiKey == "" || p.apiSecret == "" {
		return nil, fmt.Errorf("%w: CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET are required", ErrMissingCredentials)
	}

	var objects []StorageObject
	cursor := ""
	for {
		page, err := p.search(ctx, cursor)
		if err != nil {
			return nil, err
		}
		for _, r := range page.Resources {
			objects = append(objects, p.toObject(r))
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	if len(objects) == 0 {
		return nil, fmt.Errorf("%w: folder %s", ErrEmptyListing, p.rootFolder)
	}
	return objects, nil
}

func (p *Cloudinary) search(ctx context.Context, cursor string) (*cloudinaryResponse, error) {
	params := url.Values{}
	params.Set("expression", fmt.Sprintf("folder=%s/*", p.rootFolder))
	params.Set("max_results", fmt.Sprintf("%d", cloudinaryMaxResults))
	if cursor != "" {
		params.Set("next_cursor", cursor)
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/resources/search?%s", p.cloudName, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(p.apiKey, p.apiSecret)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query Cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("Cloudinary returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode Cloudinary response: %w", err)
	}
	return &result, nil
}

func (p *Cloudinary) toObject(r cloudinaryResource) StorageObject {
	// public_id carries the folder path but no extension; restore it so
	// extension-based type inference works downstream.
	key := strings.TrimPrefix(r.PublicID, p.rootFolder+"/")
	if r.Format != "" {
		key += "." + r.Format
	}

	lastModified, _ := time.Parse(time.RFC3339, r.CreatedAt)

	return StorageObject{
		Key:          key,
		ID:           r.AssetID,
		URL:          r.SecureURL,
		Kind:         r.ResourceType,
		Size:         r.Bytes,
		LastModified: lastModified,
	}
}
