package initializers

import (
	"context"
	"labourlink-backend/config"
	filestorage "labourlink-backend/lib/file-storage"
	s3client "labourlink-backend/s3"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 endpoint is not configured, photo upload is disabled")
		return
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 connection check failed, bucket is not available")
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 client initialized")
}
