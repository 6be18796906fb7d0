package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"labourlink-backend/config"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadPhoto(ctx context.Context, userID string, file []byte, fileName, contentType string) (url string, err error)
	GetFile(ctx context.Context, objectName string) ([]byte, error)
}

var Instance Provider

type impl struct {
	s3client   *minio.Client
	bucketName string
	publicURL  string
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client:   s3client,
		bucketName: config.Conf.S3.BucketName,
		publicURL:  config.Conf.S3.PublicURL,
	}
}

func (i impl) UploadPhoto(ctx context.Context, userID string, file []byte, fileName, contentType string) (string, error) {
	if len(file) == 0 {
		return "", errors.New("empty file")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	objectName := fmt.Sprintf("photos/%s/%s%s", userID, uuid.New().String(), strings.ToLower(path.Ext(fileName)))
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(file), int64(len(file)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload photo")
	}
	return i.objectURL(objectName), nil
}

func (i impl) GetFile(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := i.s3client.GetObject(ctx, i.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i impl) objectURL(objectName string) string {
	base := strings.TrimSuffix(i.publicURL, "/")
	if base == "" {
		base = i.s3client.EndpointURL().String() + "/" + i.bucketName
	}
	return base + "/" + objectName
}
