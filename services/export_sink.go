package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "github.com/riley-tran/rileys-diner-api/config"
)

// ExportSink delivers a finished export artifact. The export pipeline hands
// it a ready-made string and never assumes any particular delivery
// mechanism; swapping S3 for local disk (or anything else) is a config
// change, not a code change.
type ExportSink interface {
	Write(filename, content, mimeType string) error
}

// S3ExportSink writes export files to an S3 bucket under exports/
type S3ExportSink struct {
	client *s3.Client
	bucket string
}

// NewS3ExportSink builds an S3 sink from the application AWS configuration
func NewS3ExportSink(cfg *appConfig.Config) (*S3ExportSink, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3ExportSink{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.AWSS3Bucket,
	}, nil
}

// Write uploads the export content to S3
func (s *S3ExportSink) Write(filename, content, mimeType string) error {
	key := fmt.Sprintf("exports/%s", filename)

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader([]byte(content)),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload export to S3: %w", err)
	}

	log.Printf("Wrote export %s to s3://%s/%s", filename, s.bucket, key)
	return nil
}

// LocalExportSink writes export files to a directory on disk
type LocalExportSink struct {
	dir string
}

// NewLocalExportSink builds a sink writing into the given directory
func NewLocalExportSink(dir string) *LocalExportSink {
	return &LocalExportSink{dir: dir}
}

// Write saves the export content to the sink directory
func (s *LocalExportSink) Write(filename, content, mimeType string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	fullPath := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	log.Printf("Wrote export %s (%s)", fullPath, mimeType)
	return nil
}
