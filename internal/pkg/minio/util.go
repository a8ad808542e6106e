package minio

import (
	"StorySphere/internal/api/config"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

var ErrNotInitialized = errors.New("minio client is not initialized")

// UploadFile 上传文件到主存储桶，返回对象名
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", ErrNotInitialized
	}

	info, err := Client.PutObject(ctx, MainBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return info.Key, nil
}

// GetPublicURL 获取文件的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	scheme := "http"
	if cfg.ExternalUseSSL {
		scheme = "https"
	}

	u := url.URL{Scheme: scheme, Host: cfg.ExternalEndpoint, Path: path.Join("/", MainBucket, objectName)}
	return u.String()
}

// ObjectStore 对象存储适配器，上传后只向业务层暴露 URL
type ObjectStore struct{}

func NewObjectStore() *ObjectStore {
	return &ObjectStore{}
}

// Put 以 prefix + uuid + ext 命名对象并上传
func (s *ObjectStore) Put(ctx context.Context, prefix, ext string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := prefix + uuid.NewString() + ext
	key, err := UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}
	return GetPublicURL(key), nil
}
