package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/atldatalab/clubsite"
)

func main() {
	// .env is optional; absence is normal outside local development.
	_ = godotenv.Load()

	cfg := clubsite.SiteConfig{
		Addr:          clubsite.EnvOr("ADDR", ":3000"),
		AdminPassword: clubsite.EnvOr("ADMIN_PASSWORD", "admin123"),
		SessionSecret: clubsite.MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",

		DataDir:   clubsite.EnvOr("DATA_DIR", "data"),
		StaticDir: clubsite.EnvOr("STATIC_DIR", "public"),

		S3Bucket:  os.Getenv("S3_BUCKET"),
		S3Region:  clubsite.EnvOr("AWS_REGION", "us-east-1"),
		S3BaseURL: os.Getenv("S3_BASE_URL"),

		SeedKey: os.Getenv("SEED_KEY"),

		VisionAPIKey: os.Getenv("VISION_API_KEY"),
		VisionModel:  os.Getenv("VISION_MODEL"),

		AnalyticsEnabled:      os.Getenv("ANALYTICS_ENABLED") == "true",
		AnalyticsDatabasePath: clubsite.EnvOr("ANALYTICS_DB_PATH", "data/analytics.db"),
	}

	app := clubsite.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("clubsite: %v", err)
	}
}
