package oss

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/henrygambles/Xtube-Cloud/config"
)

var minioClient *minio.Client

// InitMinio connects the client used by the minio storage mode. Environment
// variables win over config.yml so the same binary can run in containers.
func InitMinio() error {
	endpoint := getEnvOrDefault("MINIO_ENDPOINT", config.ConfigInfo.Minio.Endpoint)
	accessKeyID := getEnvOrDefault("MINIO_ACCESS_KEY", config.ConfigInfo.Minio.AccessKey)
	secretAccessKey := getEnvOrDefault("MINIO_SECRET_KEY", config.ConfigInfo.Minio.SecretKey)
	useSSL := config.ConfigInfo.Minio.UseSSL
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		useSSL = v == "true"
	}

	hlog.Infof("Initializing MinIO client with endpoint: %s", endpoint)

	var err error
	minioClient, err = minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Info("Connect Minio Success")
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
