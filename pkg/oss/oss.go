package oss

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"vidtube.com/config"
)

// Object is a stored remote object: the public URL handed to clients and the
// key needed to delete it again.
type Object struct {
	Url string `json:"url"`
	Key string `json:"key"`
}

// Upload stores a locally staged file under folder with a fresh uuid name and
// returns the object reference.
func Upload(ctx context.Context, localPath, folder string) (*Object, error) {
	ext := filepath.Ext(localPath)
	key := folder + uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	bucket := config.ConfigInfo.Minio.Bucket
	if _, err := minioClient.FPutObject(ctx, bucket, key, localPath,
		minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &Object{
		Url: fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicHost, bucket, key),
		Key: key,
	}, nil
}

// Delete removes a stored object by key.
func Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	bucket := config.ConfigInfo.Minio.Bucket
	if err := minioClient.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Store adapts the package functions to the MediaStore interface the video
// and user services accept.
type Store struct{}

func (Store) Upload(ctx context.Context, localPath, folder string) (*Object, error) {
	return Upload(ctx, localPath, folder)
}

func (Store) Delete(ctx context.Context, key string) error {
	return Delete(ctx, key)
}
