// Command mediasync runs one media reconciliation pass against the remote
// bucket and prints the result. It is the on-demand counterpart of the admin
// API's sync endpoint, for operators and cron.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/markasai/site-content/pkg/sitecontent"
	"github.com/markasai/site-content/pkg/sitecontent/mediasync"
	s3storage "github.com/markasai/site-content/pkg/sitecontent/storage/s3"
)

type Config struct {
	S3 S3Config
}

type S3Config struct {
	Endpoint        string `env:"AWS_S3_ENDPOINT" env-default:""`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" env-default:""`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" env-default:""`
	Bucket          string `env:"AWS_S3_BUCKET" env-default:"markasai-content"`
	Region          string `env:"AWS_S3_REGION" env-default:"ap-southeast-1"`
	UsePathStyle    bool   `env:"AWS_S3_USE_PATH_STYLE" env-default:"false"`
	PublicBaseURL   string `env:"MEDIA_PUBLIC_BASE_URL" env-default:""`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("failed to read environment", "error", err)
		os.Exit(1)
	}

	store, err := s3storage.New(s3storage.Config{
		Region:          config.S3.Region,
		Bucket:          config.S3.Bucket,
		AccessKeyID:     config.S3.AccessKeyID,
		SecretAccessKey: config.S3.SecretAccessKey,
		Endpoint:        config.S3.Endpoint,
		UsePathStyle:    config.S3.UsePathStyle,
		PublicBaseURL:   config.S3.PublicBaseURL,
	})
	if err != nil {
		slog.Error("failed to initialize s3 storage", "error", err)
		os.Exit(1)
	}

	media := sitecontent.NewMediaRepository(sitecontent.NewFallbackStore(store))
	syncer := mediasync.New(media, store)

	result, err := syncer.Sync(context.Background())
	if err != nil {
		slog.Error("media sync aborted", "error", err)
		os.Exit(1)
	}

	fmt.Printf("checked %d records: %d valid, %d removed, %d failed\n",
		result.TotalChecked, result.TotalValid, len(result.RemovedIDs), len(result.FailedIDs))
	for _, id := range result.RemovedIDs {
		fmt.Printf("removed %s\n", id)
	}
	for _, id := range result.FailedIDs {
		fmt.Printf("failed to remove %s\n", id)
	}
}
