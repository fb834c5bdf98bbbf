package oss

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const (
	ResourceVideo = "video"
	ResourceImage = "image"

	location = "us-east-1"
)

type UploadOptions struct {
	ResourceType string
	Folder       string
}

// UploadResult mirrors what a media host hands back after an upload.
type UploadResult struct {
	SecureUrl string  `json:"secureUrl"`
	PublicId  string  `json:"publicId"`
	Duration  float64 `json:"duration"`
}

// Uploader is the media hosting collaborator used by the video service.
type Uploader interface {
	Upload(ctx context.Context, localPath string, opts UploadOptions) (*UploadResult, error)
	Destroy(ctx context.Context, publicId string) error
}

type MinioUploader struct {
	client      *minio.Client
	videoBucket string
	imageBucket string
	baseURL     string
	probe       func(path string) (float64, error)
}

var _ Uploader = (*MinioUploader)(nil)

func (u *MinioUploader) Upload(ctx context.Context, localPath string, opts UploadOptions) (*UploadResult, error) {
	if localPath == "" {
		return nil, errors.New("no local file to upload")
	}
	bucketName := u.imageBucket
	if opts.ResourceType == ResourceVideo {
		bucketName = u.videoBucket
	}
	if err := u.ensureBucket(ctx, bucketName); err != nil {
		return nil, err
	}

	objectName := objectKey(opts.Folder, localPath)
	// content type is detected from the file extension
	if _, err := u.client.FPutObject(ctx, bucketName, objectName, localPath, minio.PutObjectOptions{}); err != nil {
		return nil, errors.Wrapf(err, "put object %s/%s failed", bucketName, objectName)
	}

	res := &UploadResult{
		SecureUrl: fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.baseURL, "/"), bucketName, objectName),
		PublicId:  bucketName + "/" + objectName,
	}
	if opts.ResourceType == ResourceVideo && u.probe != nil {
		d, err := u.probe(localPath)
		if err != nil {
			hlog.CtxWarnf(ctx, "probe duration of %s failed: %v", localPath, err)
		}
		res.Duration = d
	}
	return res, nil
}

// Destroy removes an object previously returned by Upload.
func (u *MinioUploader) Destroy(ctx context.Context, publicId string) error {
	bucketName, objectName, ok := strings.Cut(publicId, "/")
	if !ok || objectName == "" {
		return errors.Errorf("malformed public id %q", publicId)
	}
	if err := u.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "remove object %s failed", publicId)
	}
	return nil
}

func (u *MinioUploader) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := u.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = u.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func objectKey(folder, localPath string) string {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
	if folder == "" {
		return name
	}
	return strings.Trim(folder, "/") + "/" + name
}
