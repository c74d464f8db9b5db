package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDataDir               = "DATA_DIR"
	envUploadsDir            = "UPLOADS_DIR"
	envMaxUploadSize         = "MAX_UPLOAD_SIZE"
)

const (
	defaultServerPort          = "8080"
	defaultServerReadTimeout   = 10 * time.Second
	defaultServerWriteTimeout  = 10 * time.Second
	defaultServerShutdown      = 10 * time.Second
	defaultDataDir             = "data"
	defaultUploadsDir          = "public/uploads/projects"
	defaultMaxUploadSize       = int64(20 * 1024 * 1024)
	errPortRequiredFmt         = "PORT must be set"
	errDataDirRequiredFmt      = "DATA_DIR must be set"
	errUploadsDirRequiredFmt   = "UPLOADS_DIR must be set"
	errMaxUploadSizeFmt        = "MAX_UPLOAD_SIZE must be positive"
	errInvalidConfigurationFmt = "invalid configuration: %w"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	App     AppConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig names the two directory trees the service owns: the data
// directory holding the projects file and the public uploads directory
// holding project images. Explicit paths keep tests isolated in temp dirs.
type StorageConfig struct {
	DataDir    string
	UploadsDir string
}

type AppConfig struct {
	MaxUploadSize int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Storage: StorageConfig{
			DataDir:    getEnv(envDataDir, defaultDataDir),
			UploadsDir: getEnv(envUploadsDir, defaultUploadsDir),
		},
		App: AppConfig{
			MaxUploadSize: getInt64Env(envMaxUploadSize, defaultMaxUploadSize),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf(errDataDirRequiredFmt)
	}

	if c.Storage.UploadsDir == "" {
		return fmt.Errorf(errUploadsDirRequiredFmt)
	}

	if c.App.MaxUploadSize <= 0 {
		return fmt.Errorf(errMaxUploadSizeFmt)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
