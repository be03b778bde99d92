package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("server.addr", "0.0.0.0:3000")
	viper.SetDefault("server.public_dir", "./public")
	viper.SetDefault("auth.jwt_secret", "xtube-secret")
	viper.SetDefault("storage.mode", "local")
	viper.SetDefault("storage.video_dir", "./videos")
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("storage.profile_pics_dir", "./profile-pics")
	viper.SetDefault("minio.bucket", "videos")
	viper.SetDefault("sync.interval", "5m")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.PublicDir = viper.GetString("server.public_dir")

	ConfigInfo.Auth.JwtSecret = viper.GetString("auth.jwt_secret")

	ConfigInfo.Storage.Mode = viper.GetString("storage.mode")
	ConfigInfo.Storage.VideoDir = viper.GetString("storage.video_dir")
	ConfigInfo.Storage.DataDir = viper.GetString("storage.data_dir")
	ConfigInfo.Storage.ProfilePicsDir = viper.GetString("storage.profile_pics_dir")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.Bucket = viper.GetString("minio.bucket")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")

	ConfigInfo.Sync.Interval = viper.GetString("sync.interval")

	if err := viper.UnmarshalKey("cloud_videos", &ConfigInfo.CloudVideos); err != nil {
		logrus.Errorf("failed to parse cloud_videos: %v", err)
	}

	logrus.Infof("Config loaded - mode: %s, addr: %s, data dir: %s",
		ConfigInfo.Storage.Mode, ConfigInfo.Server.Addr, ConfigInfo.Storage.DataDir)
}
