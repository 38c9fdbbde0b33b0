// Package storage wraps the S3 object store used for KYC documents and
// profile pictures.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const keyPrefix = "elite-paisa"

type S3Client struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Client(ctx context.Context, region, bucket string) (*S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Client{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

// objectKey builds a collision-resistant key: random uuid + timestamp +
// original filename, under a per-purpose folder.
func objectKey(folder, subfolder, filename string) string {
	name := fmt.Sprintf("%s-%d-%s", uuid.NewString(), time.Now().UnixMilli(), filename)
	if subfolder == "" {
		return fmt.Sprintf("%s/%s/%s", keyPrefix, folder, name)
	}
	return fmt.Sprintf("%s/%s/%s/%s", keyPrefix, folder, subfolder, name)
}

// Upload stores the blob and returns its public URL.
func (c *S3Client) Upload(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error) {
	key := objectKey(folder, subfolder, filename)
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &c.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key), nil
}

// Delete removes the object backing a URL previously returned by Upload.
func (c *S3Client) Delete(ctx context.Context, objectURL string) error {
	key := keyFromURL(objectURL)
	if key == "" {
		return nil
	}
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
	})
	return err
}

// keyFromURL strips the https://<bucket>.s3.<region>.amazonaws.com/ prefix.
func keyFromURL(objectURL string) string {
	parts := strings.SplitN(objectURL, "/", 4)
	if len(parts) < 4 {
		return ""
	}
	return parts[3]
}
