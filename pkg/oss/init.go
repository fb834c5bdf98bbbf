package oss

import (
	"VideoTube.com/config"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InitMinio builds the uploader from config.ConfigInfo.Minio.
func InitMinio() (*MinioUploader, error) {
	conf := config.ConfigInfo.Minio
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", conf.Endpoint, conf.AccessKey)

	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, err
	}

	baseURL := conf.PublicBaseUrl
	if baseURL == "" {
		scheme := "http://"
		if conf.UseSSL {
			scheme = "https://"
		}
		baseURL = scheme + conf.Endpoint
	}

	hlog.Info("Connect Minio Success")
	return &MinioUploader{
		client:      client,
		videoBucket: conf.VideoBucket,
		imageBucket: conf.ImageBucket,
		baseURL:     baseURL,
		probe:       utils.ProbeDuration,
	}, nil
}
