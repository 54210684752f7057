package snapshot

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store persists snapshots as HTML objects in an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := snapshot.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "snapshots/")
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3-backed store.
//
// Parameters:
//   - client: AWS S3 client from aws-sdk-go-v2
//   - bucket: S3 bucket name
//   - prefix: key prefix for snapshot objects (e.g., "snapshots/")
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) key(name string) string {
	return s.prefix + name + ".html"
}

// Save implements Store.
func (s *S3Store) Save(ctx context.Context, name, html string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"taken-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("snapshot: s3 put failed: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *S3Store) Load(ctx context.Context, name string) (*Snapshot, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return nil, ErrNotFound
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("snapshot: s3 read failed: %w", err)
	}

	takenAt := time.Time{}
	if raw, ok := out.Metadata["taken-at"]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			takenAt = t
		}
	}
	return &Snapshot{Name: name, HTML: string(body), TakenAt: takenAt}, nil
}

// List implements Store.
func (s *S3Store) List(ctx context.Context) ([]string, error) {
	var names []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("snapshot: s3 list failed: %w", err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			name := strings.TrimPrefix(*obj.Key, s.prefix)
			name = strings.TrimSuffix(name, ".html")
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Cleanup removes snapshots older than maxAge.
func (s *S3Store) Cleanup(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var toDelete []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, obj := range page.Contents {
			if obj.LastModified != nil && obj.LastModified.Before(cutoff) && obj.Key != nil {
				toDelete = append(toDelete, *obj.Key)
			}
		}
	}

	for _, key := range toDelete {
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
