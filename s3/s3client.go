package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

// MakeBucket creates bucketName unless it already exists.
func MakeBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	location := "us-east-1"
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
