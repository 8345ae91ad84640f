package config

type StorageConfig struct {
	Provider    string              `yaml:"provider"`
	UploadLimit int64               `yaml:"upload_limit"`
	Local       *LocalStorageConfig `yaml:"local"`
	AWS         *AWSStorageConfig   `yaml:"aws"`
}

type LocalStorageConfig struct {
	BasePath string `yaml:"base_path"`
	BaseURL  string `yaml:"base_url"`
}

type AWSStorageConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	CDNDomain string `yaml:"cdn_domain"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider:    getEnv("STORAGE_PROVIDER", "local"),
		UploadLimit: int64(getEnvAsInt("STORAGE_UPLOAD_LIMIT", 50*1024*1024)),
		Local: &LocalStorageConfig{
			BasePath: getEnv("STORAGE_LOCAL_PATH", "./uploads"),
			BaseURL:  getEnv("STORAGE_LOCAL_URL", "http://localhost:4000/uploads"),
		},
		AWS: &AWSStorageConfig{
			Region:    getEnv("AWS_S3_REGION", "us-east-1"),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
			CDNDomain: getEnv("AWS_CLOUDFRONT_DOMAIN", ""),
		},
	}
}
