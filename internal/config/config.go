package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// CORS
	CORSOrigins []string

	// Gallery
	GalleryProvider     string
	GalleryCacheTTL     time.Duration
	GalleryItemsPerPage int
	PlaceholderImageURL string

	// Cloudflare R2
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string

	// Bunny.net storage
	BunnyAccessKey   string
	BunnyStorageZone string
	BunnyPullZone    string
	BunnyRegion      string

	// Cloudinary
	CloudinaryCloudName  string
	CloudinaryAPIKey     string
	CloudinaryAPISecret  string
	CloudinaryRootFolder string

	// Redis
	EnableCache bool
	RedisURL    string

	// Email
	EnableEmail     bool
	ResendAPIKey    string
	EmailFrom       string
	ContactEmail    string
	DonationsEmail  string
	VolunteerEmail  string
	NewsletterEmail string

	// Rate Limiting
	RateLimitRequests       int
	RateLimitWindow         int
	RateLimitBurst          int
	NotifyRateLimitRequests int
	NotifyRateLimitWindow   int

	// Features
	EnableMetrics bool

	// Site Meta
	SiteName string
	SiteURL  string
}

func New() *Config {
	c := &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// CORS
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),

		// Gallery
		GalleryProvider:     getEnv("GALLERY_PROVIDER", "r2"),
		GalleryCacheTTL:     time.Duration(getEnvAsInt("GALLERY_CACHE_TTL", 300)) * time.Second,
		GalleryItemsPerPage: getEnvAsInt("GALLERY_ITEMS_PER_PAGE", 12),
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", "/placeholder.svg"),

		// Cloudflare R2
		R2AccountID:       getEnv("CLOUDFLARE_R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("CLOUDFLARE_R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("CLOUDFLARE_R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("CLOUDFLARE_R2_BUCKET_NAME", "ukhamba-gallery"),

		// Bunny.net
		BunnyAccessKey:   getEnv("BUNNY_STORAGE_ACCESS_KEY", ""),
		BunnyStorageZone: getEnv("BUNNY_STORAGE_ZONE", ""),
		BunnyPullZone:    getEnv("BUNNY_PULL_ZONE", ""),
		BunnyRegion:      getEnv("BUNNY_REGION", "de"),

		// Cloudinary
		CloudinaryCloudName:  getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:     getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret:  getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryRootFolder: getEnv("CLOUDINARY_ROOT_FOLDER", "ukhamba-gallery"),

		// Redis
		EnableCache: getEnvAsBool("ENABLE_CACHE", false),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// Email
		EnableEmail:     getEnvAsBool("ENABLE_EMAIL", true),
		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		EmailFrom:       getEnv("EMAIL_FROM", "Ukhamba <onboarding@resend.dev>"),
		ContactEmail:    getEnv("ORG_CONTACT_EMAIL", "info@ukhamba.org"),
		DonationsEmail:  getEnv("ORG_DONATIONS_EMAIL", "donations@ukhamba.org"),
		VolunteerEmail:  getEnv("ORG_VOLUNTEER_EMAIL", "volunteers@ukhamba.org"),
		NewsletterEmail: getEnv("ORG_NEWSLETTER_EMAIL", "info@ukhamba.org"),

		// Rate Limiting
		RateLimitRequests:       getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:         getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:          getEnvAsInt("RATE_LIMIT_BURST", 20),
		NotifyRateLimitRequests: getEnvAsInt("NOTIFY_RATE_LIMIT_REQUESTS", 5),
		NotifyRateLimitWindow:   getEnvAsInt("NOTIFY_RATE_LIMIT_WINDOW", 60),

		// Features
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		// Site Meta
		SiteName: getEnv("SITE_NAME", "Ukhamba"),
		SiteURL:  getEnv("SITE_URL", "https://ukhamba.org"),
	}

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
