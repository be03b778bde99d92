package oss

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"github.com/henrygambles/Xtube-Cloud/config"
)

func bucket() string {
	return config.ConfigInfo.Minio.Bucket
}

// ListVideos enumerates every object in the video bucket.
func ListVideos(ctx context.Context) ([]minio.ObjectInfo, error) {
	if minioClient == nil {
		return nil, errors.New("minio client is not initialized")
	}
	var objects []minio.ObjectInfo
	for object := range minioClient.ListObjects(ctx, bucket(), minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			return nil, errors.WithMessage(object.Err, "minio.ListObjects failed")
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// StatVideo returns object metadata, most importantly its size.
func StatVideo(ctx context.Context, name string) (minio.ObjectInfo, error) {
	if minioClient == nil {
		return minio.ObjectInfo{}, errors.New("minio client is not initialized")
	}
	info, err := minioClient.StatObject(ctx, bucket(), name, minio.StatObjectOptions{})
	if err != nil {
		return minio.ObjectInfo{}, errors.WithMessage(err, "minio.StatObject failed")
	}
	return info, nil
}

// GetVideoRange opens a reader over the inclusive byte window [start, end].
func GetVideoRange(ctx context.Context, name string, start, end int64) (io.ReadCloser, error) {
	if minioClient == nil {
		return nil, errors.New("minio client is not initialized")
	}
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(start, end); err != nil {
		return nil, errors.WithMessage(err, "invalid object range")
	}
	object, err := minioClient.GetObject(ctx, bucket(), name, opts)
	if err != nil {
		return nil, errors.WithMessage(err, "minio.GetObject failed")
	}
	return object, nil
}
