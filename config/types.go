package config

type config struct {
	Server      server       `yaml:"server" mapstructure:"server"`
	Auth        auth         `yaml:"auth" mapstructure:"auth"`
	Storage     storage      `yaml:"storage" mapstructure:"storage"`
	Minio       minio        `yaml:"minio" mapstructure:"minio"`
	Sync        syncer       `yaml:"sync" mapstructure:"sync"`
	CloudVideos []CloudVideo `yaml:"cloud_videos" mapstructure:"cloud_videos"`
}

type server struct {
	Addr      string `yaml:"addr"`
	PublicDir string `yaml:"public_dir"`
}

type auth struct {
	JwtSecret string `yaml:"jwt_secret"`
}

type storage struct {
	// Mode selects the catalog/video source: "local", "minio" or "cloud".
	Mode           string `yaml:"mode"`
	VideoDir       string `yaml:"video_dir"`
	DataDir        string `yaml:"data_dir"`
	ProfilePicsDir string `yaml:"profile_pics_dir"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type syncer struct {
	Interval string `yaml:"interval"`
}

type CloudVideo struct {
	Id         string `yaml:"id" mapstructure:"id"`
	Title      string `yaml:"title" mapstructure:"title"`
	EmbedUrl   string `yaml:"embed_url" mapstructure:"embed_url"`
	PosterUrl  string `yaml:"poster_url" mapstructure:"poster_url"`
	UploadedAt string `yaml:"uploaded_at" mapstructure:"uploaded_at"`
}
