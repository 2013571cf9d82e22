package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	authhttp "github.com/guadalupeabrile/authentic/http"
)

// Config is the root configuration struct for the content service.
type Config struct {
	Server  ServerConfig        `mapstructure:"server"`
	Admin   AdminConfig         `mapstructure:"admin"`
	Auth    AuthConfig          `mapstructure:"auth"`
	Storage StorageConfig       `mapstructure:"storage"`
	CORS    authhttp.CORSConfig `mapstructure:"cors"`
	Log     LogConfig           `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Env  string `mapstructure:"env" validate:"required,oneof=dev prod"`
}

// AdminConfig identifies the single administrator. Only the bcrypt hash of
// the password is ever configured or stored.
type AdminConfig struct {
	Username     string `mapstructure:"username" validate:"required"`
	PasswordHash string `mapstructure:"password_hash" validate:"required"`
}

// AuthConfig holds token signing configuration.
type AuthConfig struct {
	Secret       string `mapstructure:"secret" validate:"required"`
	TokenTTLSecs int    `mapstructure:"token_ttl" validate:"min=1"`
}

// StorageConfig decides where the photography document and uploaded images
// live. See Resolve for the selection rules.
type StorageConfig struct {
	Serverless bool       `mapstructure:"serverless"`
	DataDir    string     `mapstructure:"data_dir" validate:"required"`
	UploadsDir string     `mapstructure:"uploads_dir" validate:"required"`
	Blob       BlobConfig `mapstructure:"blob"`
}

// BlobConfig holds connection options for the S3-compatible object store.
type BlobConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	Region           string `mapstructure:"region"`
	Bucket           string `mapstructure:"bucket"`
	PublicBaseURL    string `mapstructure:"public_base_url"`
	UseSSL           bool   `mapstructure:"use_ssl"`
	AutoCreateBucket bool   `mapstructure:"auto_create_bucket"`
}

// CredentialPresent reports whether a usable write credential is configured.
func (b BlobConfig) CredentialPresent() bool {
	return b.AccessKeyID != "" && b.SecretAccessKey != ""
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"port":        "server.port",
	"env":         "server.env",
	"data-dir":    "storage.data_dir",
	"uploads-dir": "storage.uploads_dir",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.env", "dev")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password_hash", "")

	v.SetDefault("auth.secret", "please-change-this-secret")
	v.SetDefault("auth.token_ttl", 4*60*60) // seconds

	v.SetDefault("storage.serverless", false)
	v.SetDefault("storage.data_dir", "./storage")
	v.SetDefault("storage.uploads_dir", "./public/uploads")
	v.SetDefault("storage.blob.endpoint", "")
	v.SetDefault("storage.blob.access_key_id", "")
	v.SetDefault("storage.blob.secret_access_key", "")
	v.SetDefault("storage.blob.region", "")
	v.SetDefault("storage.blob.public_base_url", "")
	v.SetDefault("storage.blob.use_ssl", true)
	v.SetDefault("storage.blob.bucket", "authentic")
	v.SetDefault("storage.blob.auto_create_bucket", false)

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 0)

	v.SetDefault("log.level", "info")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("AUTHENTIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The managed-serverless platform sets VERCEL rather than our prefixed
	// key, and its blob credential arrives as BLOB_READ_WRITE_TOKEN.
	_ = v.BindEnv("storage.serverless", "AUTHENTIC_STORAGE_SERVERLESS", "VERCEL")
	_ = v.BindEnv("storage.blob.secret_access_key", "AUTHENTIC_STORAGE_BLOB_SECRET_ACCESS_KEY", "BLOB_READ_WRITE_TOKEN")

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
