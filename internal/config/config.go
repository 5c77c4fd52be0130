package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	S3       S3Config       `mapstructure:"s3"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// SyncConfig configures the remote JSON document endpoint. An empty ServerID
// disables remote sync entirely; all operations stay local.
type SyncConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	ServerID string `mapstructure:"server_id"`
	APIKey   string `mapstructure:"api_key"`
}

// Enabled reports whether remote sync is configured.
func (c SyncConfig) Enabled() bool {
	return c.ServerID != ""
}

// SnapshotConfig selects the local persistence backend for the state blob.
type SnapshotConfig struct {
	Backend         string `mapstructure:"backend"` // none, file, mongo
	FilePath        string `mapstructure:"file_path"`
	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection"`
}

// JWTConfig defines JWT specific configuration for the HTTP facade.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether avatar object storage is configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling: sync.server_id -> SYNC_SERVER_ID etc.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("sync.endpoint", "https://api.npoint.io")
	viper.SetDefault("snapshot.backend", "file")
	viper.SetDefault("snapshot.file_path", "club-app-state.json")
	viper.SetDefault("snapshot.mongo_uri", "mongodb://localhost:27017")
	viper.SetDefault("snapshot.mongo_database", "club_app")
	viper.SetDefault("snapshot.mongo_collection", "state")
	viper.SetDefault("jwt.expiration", "12h")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	err = viper.ReadInConfig()
	// Missing config file is fine; defaults and env vars cover everything.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
