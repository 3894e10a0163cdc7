// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
	"github.com/MKhiriev/go-pin-vault/models"
)

// S3Store keeps backup documents as objects in one bucket. Object keys are
// minted exactly like disk file names, so both stores present the same
// paths to clients and a deployment can move between them.
type S3Store struct {
	client *s3.Client
	bucket string
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewS3Store builds an S3 client from the backup settings. A non-empty
// endpoint overrides the AWS default, which is how MinIO and other
// S3-compatible services on the private network are reached. Static
// credentials are used when configured, otherwise the default AWS
// credential chain applies.
func NewS3Store(ctx context.Context, cfg config.ServerBackups, uuid *utils.UUIDGenerator, log *logger.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	log.Info().Str("func", "NewS3Store").
		Str("bucket", cfg.S3Bucket).Str("region", cfg.S3Region).
		Msg("s3 backup store ready")

	return &S3Store{client: client, bucket: cfg.S3Bucket, uuid: uuid, logger: log}, nil
}

// Save uploads doc under a freshly minted object key.
func (s *S3Store) Save(ctx context.Context, doc models.BackupDocument) (models.FileInfo, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("encode backup document: %w", err)
	}

	key := backupFilename(doc.App, doc.ExportedAt, s.uuid.GenerateShort())
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("put backup object %q: %w", key, err)
	}

	s.logger.Info().Str("func", "S3Store.Save").
		Str("app", doc.App).Str("key", key).Int("bytes", len(data)).
		Msg("backup stored")

	return models.FileInfo{
		Filename:   key,
		Path:       key,
		Bytes:      int64(len(data)),
		ModifiedAt: time.Now().UTC(),
	}, nil
}

// List returns app's backups newest first, paging through the bucket.
func (s *S3Store) List(ctx context.Context, app string) ([]models.FileInfo, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(app + "-"),
	})

	items := make([]models.FileInfo, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list backup objects: %w", err)
		}
		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if !mintedFor(app, key) {
				continue
			}
			items = append(items, models.FileInfo{
				Filename:   key,
				Path:       key,
				Bytes:      aws.ToInt64(object.Size),
				ModifiedAt: aws.ToTime(object.LastModified).UTC(),
			})
		}
	}

	sortNewestFirst(items)
	return items, nil
}

// Latest returns app's newest backup, or nil when the bucket holds none.
func (s *S3Store) Latest(ctx context.Context, app string) (*models.FileInfo, error) {
	items, err := s.List(ctx, app)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// Open downloads and decodes the document stored under path.
func (s *S3Store) Open(ctx context.Context, app string, path string) (models.BackupDocument, error) {
	if err := validatePath(path); err != nil {
		return models.BackupDocument{}, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return models.BackupDocument{}, fmt.Errorf("%w: %q", ErrBackupNotFound, path)
		}
		return models.BackupDocument{}, fmt.Errorf("get backup object %q: %w", path, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return models.BackupDocument{}, fmt.Errorf("read backup object %q: %w", path, err)
	}

	var doc models.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.BackupDocument{}, fmt.Errorf("decode backup object %q: %w", path, err)
	}
	if doc.App != app {
		return models.BackupDocument{}, fmt.Errorf("%w: %q", ErrBackupNotFound, path)
	}

	return doc, nil
}
