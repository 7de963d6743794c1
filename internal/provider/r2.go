package provider

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"ukhamba-backend/internal/config"
)

// emptyPayloadSHA256 is the SHA-256 of an empty body, required by SigV4 for
// bodyless GET requests.
const emptyPayloadSHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

const r2MaxKeys = 1000

// R2 lists a Cloudflare R2 bucket through the S3-compatible ListObjectsV2
// API, signing each request with AWS Signature Version 4.
type R2 struct {
	accountID string
	accessKey string
	secretKey string
	bucket    string
	client    *http.Client

	now func() time.Time
}

func NewR2(cfg *config.Config) *R2 {
	return &R2{
		accountID: cfg.R2AccountID,
		accessKey: cfg.R2AccessKeyID,
		secretKey: cfg.R2SecretAccessKey,
		bucket:    cfg.R2BucketName,
		client:    newHTTPClient(),
		now:       time.Now,
	}
}

func (p *R2) Name() string { return "cloudflare-r2" }

func (p *R2) List(ctx context.Context) ([]StorageObject, error) {
	if p.accountID == "" {
		return nil, fmt.Errorf("%w: CLOUDFLARE_R2_ACCOUNT_ID is not set", ErrMissingCredentials)
	}
	if p.accessKey == "" {
		return nil, fmt.Errorf("%w: CLOUDFLARE_R2_ACCESS_KEY_ID is not set", ErrMissingCredentials)
	}
	if p.secretKey == "" {
		return nil, fmt.Errorf("%w: CLOUDFLARE_R2_SECRET_ACCESS_KEY is not set", ErrMissingCredentials)
	}

	var objects []StorageObject
	token := ""
	for {
		page, next, err := p.listPage(ctx, token)
		if err != nil {
			return nil, err
		}
		objects = append(objects, page...)
		if next == "" {
			break
		}
		token = next
	}

	if len(objects) == 0 {
		return nil, fmt.Errorf("%w: bucket %s", ErrEmptyListing, p.bucket)
	}
	return objects, nil
}

type listBucketResult struct {
	Contents []struct {
		Key          string    `xml:"Key"`
		LastModified time.Time `xml:"LastModified"`
		Size         int64     `xml:"Size"`
	} `xml:"Contents"`
	IsTruncated           bool   `xml:"IsTruncated"`
	NextContinuationToken string `xml:"NextContinuationToken"`
}

func (p *R2) listPage(ctx context.Context, continuationToken string) ([]StorageObject, string, error) {
	host := fmt.Sprintf("%s.r2.cloudflarestorage.com", p.accountID)

	query := url.Values{}
	query.Set("list-type", "2")
	query.Set("max-keys", fmt.Sprintf("%d", r2MaxKeys))
	if continuationToken != "" {
		query.Set("continuation-token", continuationToken)
	}

	endpoint := fmt.Sprintf("https://%s/%s?%s", host, p.bucket, canonicalQuery(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", err
	}

	p.signRequest(req, host, "/"+p.bucket, canonicalQuery(query))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list objects from R2: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, "", fmt.Errorf("R2 listing returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result listBucketResult
	if err := xml.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, "", fmt.Errorf("failed to decode R2 listing: %w", err)
	}

	objects := make([]StorageObject, 0, len(result.Contents))
	for _, c := range result.Contents {
		objects = append(objects, StorageObject{
			Key:          c.Key,
			URL:          p.objectURL(c.Key),
			Size:         c.Size,
			LastModified: c.LastModified,
		})
	}

	next := ""
	if result.IsTruncated {
		next = result.NextContinuationToken
	}
	return objects, next, nil
}

func (p *R2) objectURL(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return fmt.Sprintf("https://%s.%s.r2.cloudflarestorage.com/%s", p.bucket, p.accountID, strings.Join(parts, "/"))
}

// signRequest adds the SigV4 headers for an unsigned-payload GET against the
// R2 S3 endpoint (region "auto", service "s3").
func (p *R2) signRequest(req *http.Request, host, canonicalURI, canonicalQueryString string) {
	const (
		algorithm = "AWS4-HMAC-SHA256"
		region    = "auto"
		service   = "s3"
	)

	now := p.now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")

	canonicalHeaders := "host:" + host + "\n" +
		"x-amz-content-sha256:" + emptyPayloadSHA256 + "\n" +
		"x-amz-date:" + amzDate + "\n"
	signedHeaders := "host;x-amz-content-sha256;x-amz-date"

	canonicalRequest := strings.Join([]string{
		http.MethodGet,
		canonicalURI,
		canonicalQueryString,
		canonicalHeaders,
		signedHeaders,
		emptyPayloadSHA256,
	}, "\n")

	credentialScope := strings.Join([]string{dateStamp, region, service, "aws4_request"}, "/")
	stringToSign := strings.Join([]string{
		algorithm,
		amzDate,
		credentialScope,
		hexSHA256([]byte(canonicalRequest)),
	}, "\n")

	signingKey := hmacSHA256(
		hmacSHA256(
			hmacSHA256(
				hmacSHA256([]byte("AWS4"+p.secretKey), dateStamp),
				region),
			service),
		"aws4_request")
	signature := hex.EncodeToString(hmacSHA256(signingKey, stringToSign))

	req.Header.Set("Host", host)
	req.Header.Set("X-Amz-Content-SHA256", emptyPayloadSHA256)
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("Authorization", fmt.Sprintf(
		"%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm, p.accessKey, credentialScope, signedHeaders, signature,
	))
}

// canonicalQuery renders query parameters in the sorted, percent-encoded form
// SigV4 expects (spaces as %20, never +).
func canonicalQuery(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(sigv4Escape(k))
		b.WriteByte('=')
		b.WriteString(sigv4Escape(values.Get(k)))
	}
	return b.String()
}

func sigv4Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func hexSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, msg string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(msg))
	return mac.Sum(nil)
}
