package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the storefront API.
type Config struct {
	Env       string // "production" or "development"
	Port      string // HTTP port (default: 8080)
	MongoURL  string // MongoDB connection string
	MongoDB   string // database name (default: storefront)
	JWTSecret string // secret for admin bearer tokens
	RedisURL  string // Redis connection string (default: redis://localhost:6379)

	// Image storage (S3-compatible).
	AWSRegion    string
	AWSEndpoint  string // custom endpoint for LocalStack/MinIO, empty for AWS
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string // default: grazie-outfits
	S3Prefix     string // default: products/
}

// LoadConfig loads environment variables into a Config and validates them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:          os.Getenv("ENV"),
		Port:         os.Getenv("PORT"),
		MongoURL:     os.Getenv("MONGO_URL"),
		MongoDB:      os.Getenv("MONGO_DB"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		RedisURL:     os.Getenv("REDIS_URL"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		AWSEndpoint:  os.Getenv("AWS_ENDPOINT"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
		S3Prefix:     os.Getenv("AWS_S3_PREFIX"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "storefront"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "grazie-outfits"
	}
	if cfg.S3Prefix == "" {
		cfg.S3Prefix = "products/"
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
