package storage

import (
	"context"
	"io"

	"bimar-service/internal/app/contracts"
	"bimar-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	minioClient *minio.Client
	bucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.StorageService {
	return &minioStorage{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := m.minioClient.PutObject(ctx, m.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.bucketName)
	}
	return objectName, nil
}
