package oss

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"vidtube.com/config"
)

var minioClient *minio.Client

// Init connects to minio and makes sure the bucket exists.
func Init() {
	var err error
	minioClient, err = minio.New(config.ConfigInfo.Minio.Endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			config.ConfigInfo.Minio.AccessKey,
			config.ConfigInfo.Minio.SecretKey, ""),
		Secure: config.ConfigInfo.Minio.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("failed to connect to minio: %v", err)
	}

	bucket := config.ConfigInfo.Minio.Bucket
	exists, err := minioClient.BucketExists(context.Background(), bucket)
	if err != nil {
		logrus.Fatalf("failed to check bucket %s: %v", bucket, err)
	}
	if !exists {
		if err := minioClient.MakeBucket(context.Background(), bucket,
			minio.MakeBucketOptions{}); err != nil {
			logrus.Fatalf("failed to create bucket %s: %v", bucket, err)
		}
	}
	logrus.Infof("minio ready, bucket %s", bucket)
}
