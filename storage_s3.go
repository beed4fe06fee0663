package clubsite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const (
	s3DataPrefix   = "data/"
	s3ImagesPrefix = "images/"
)

// S3Storage stores documents and images in an S3 bucket. Documents live under
// data/, images under images/<category>/.
type S3Storage struct {
	client  s3iface.S3API
	bucket  string
	baseURL string
}

// NewS3Storage creates an S3-backed storage adapter. baseURL is the public
// URL prefix for uploaded images; when empty the regional bucket URL is used.
func NewS3Storage(bucket, region, baseURL string) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return &S3Storage{
		client:  s3.New(sess),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *S3Storage) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3DataPrefix + name),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document %s: %w", name, err)
	}
	defer out.Body.Close()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	return b, nil
}

func (s *S3Storage) WriteDocument(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3DataPrefix + name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put document %s: %w", name, err)
	}
	return nil
}

func (s *S3Storage) UploadImage(ctx context.Context, category, filename string, data []byte) (string, error) {
	key := s3ImagesPrefix + category + "/" + filename
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put image %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}
