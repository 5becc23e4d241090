package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/validator"
)

type PostgresConfig struct {
	User               string        `validate:"required"`
	Password           string        `validate:"required"`
	Host               string        `validate:"required"`
	Database           string        `validate:"required"`
	MaxIdleConnections int           `validate:"required" mapstructure:"max_idle_connections"`
	MaxOpenConnections int           `validate:"required" mapstructure:"max_open_connections"`
	ConnectionTTL      time.Duration `validate:"required" mapstructure:"connection_ttl"`
	Port               int16         `validate:"required"`
}

type SlogConfig struct {
	Level int `mapstructure:"level"`
}

type GormLogConfig struct {
	Level        int  `mapstructure:"level"`
	TraceQueries bool `mapstructure:"trace_queries"`
}

type LoggingConfig struct {
	Gorm    GormLogConfig `mapstructure:"gorm"`
	App     SlogConfig    `mapstructure:"app"`
	UseOTLP bool          `mapstructure:"use_otlp"`
}

type AuthConfig struct {
	// HMAC secret shared with the identity provider that issues bearer tokens
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"  validate:"required"`
}

type RateLimitConfig struct {
	RedisHost       string `mapstructure:"redis_host"`
	GlobalPerMinute int64  `mapstructure:"global_per_minute"`
	SubmitPerMinute int64  `mapstructure:"submit_per_minute"`
	FailOpen        bool   `mapstructure:"fail_open"`
}

type ArchiveBackend string

const (
	ArchiveBackendNone  ArchiveBackend = "none"
	ArchiveBackendS3    ArchiveBackend = "s3"
	ArchiveBackendAzure ArchiveBackend = "azure"
)

type S3ArchiveConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	SSLEnabled      bool   `mapstructure:"ssl_enabled"`
}

type AzureArchiveConfig struct {
	AccountName string `mapstructure:"account_name"`
	AccountKey  string `mapstructure:"account_key"`
	ServiceURL  string `mapstructure:"service_url"`
	Container   string `mapstructure:"container"`
}

type ArchiveConfig struct {
	S3      *S3ArchiveConfig    `mapstructure:"s3"`
	Azure   *AzureArchiveConfig `mapstructure:"azure"`
	Backend ArchiveBackend      `mapstructure:"backend" validate:"required,eq=none|eq=s3|eq=azure"`
}

// See contestapi.yaml for an example config
type Config struct {
	Postgres             *PostgresConfig  `mapstructure:"postgres"               validate:"required"`
	Logging              *LoggingConfig   `mapstructure:"logging"                validate:"required"`
	Auth                 *AuthConfig      `mapstructure:"auth"                   validate:"required"`
	RateLimit            *RateLimitConfig `mapstructure:"ratelimit"`
	Archive              *ArchiveConfig   `mapstructure:"archive"                validate:"required"`
	ListenAddress        string           `mapstructure:"listen_address"         validate:"required"`
	GracefulShutdownSecs int64            `mapstructure:"graceful_shutdown_secs"`
}

const (
	AppLogLevel                string = "logging.app.level"
	ArchiveBackendKey          string = "archive.backend"
	AzureAccountKey            string = "archive.azure.account_key" // #nosec
	AuthIssuer                 string = "auth.issuer"
	AuthJWTSecret              string = "auth.jwt_secret" // #nosec
	AuthTokenTTL               string = "auth.token_ttl"
	EnvPrefix                  string = "contestapi"
	UseOTLP                    string = "logging.use_otlp"
	GlobalPerMinute            string = "ratelimit.global_per_minute"
	GormLogLevel               string = "logging.gorm.level"
	GormTraceQueries           string = "logging.gorm.trace_queries"
	GracefulShutdownSecs       string = "graceful_shutdown_secs"
	ListenAddress              string = "listen_address"
	PostgresDatabase           string = "postgres.database"
	PostgresHost               string = "postgres.host"
	PostgresPassword           string = "postgres.password"
	PostgresPort               string = "postgres.port"
	PostgresUser               string = "postgres.user"
	PostgresMaxIdleConnections string = "postgres.max_idle_connections"
	PostgresMaxOpenConnections string = "postgres.max_open_connections"
	PostgresConnectonTTL       string = "postgres.connection_ttl"
	RateLimitFailOpen          string = "ratelimit.fail_open"
	RedisHost                  string = "ratelimit.redis_host"
	S3AccessKeyID              string = "archive.s3.access_key_id"
	S3SSLEnabled               string = "archive.s3.ssl_enabled"
	S3SecretAccessKey          string = "archive.s3.secret_access_key" // #nosec
	SubmitPerMinute            string = "ratelimit.submit_per_minute"
)

var configReady = false
var config Config

func GetConfig() (*Config, error) {
	if configReady {
		logger.Logger.Debug("returning already-loaded config")
		return &config, nil
	}
	logger.Logger.Info("loading config")

	v := viper.New()

	v.SetConfigName("contestapi")

	v.AddConfigPath("/etc/contestapi/")
	v.AddConfigPath(".")

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.AutomaticEnv()

	// workaround for https://github.com/spf13/viper/issues/761
	// bind env vars explicitly so they unmarshal into the nested struct
	for _, key := range []string{
		PostgresUser,
		PostgresPassword,
		PostgresDatabase,
		AuthJWTSecret,
		S3AccessKeyID,
		S3SecretAccessKey,
		AzureAccountKey,
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault(ListenAddress, "[::]:1323")
	v.SetDefault(PostgresHost, "localhost")
	v.SetDefault(PostgresPort, 5432)
	v.SetDefault(PostgresMaxIdleConnections, 2)
	v.SetDefault(PostgresMaxOpenConnections, 10)
	v.SetDefault(PostgresConnectonTTL, 10*time.Minute)
	v.SetDefault(GormLogLevel, int(slog.LevelDebug))
	v.SetDefault(GormTraceQueries, false)
	v.SetDefault(AppLogLevel, int(slog.LevelDebug))

	v.SetDefault(AuthIssuer, "contest-api")
	v.SetDefault(AuthTokenTTL, 24*time.Hour)

	v.SetDefault(ArchiveBackendKey, string(ArchiveBackendNone))
	v.SetDefault(S3SSLEnabled, true)

	v.SetDefault(RedisHost, "localhost")
	v.SetDefault(GlobalPerMinute, 0)
	v.SetDefault(SubmitPerMinute, 0)
	v.SetDefault(RateLimitFailOpen, true)

	v.SetDefault(UseOTLP, false)

	v.SetDefault(GracefulShutdownSecs, 30)

	err := v.ReadInConfig()
	if err != nil {
		// ignore config file not found to allow pure env config
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	valid := validator.Create()
	err = valid.Validate(&config)
	if err != nil {
		configReady = false
		return nil, err
	}

	err = config.validateArchive()
	if err != nil {
		configReady = false
		return nil, err
	}

	configReady = true
	return &config, nil
}

func (c *Config) validateArchive() error {
	switch c.Archive.Backend {
	case ArchiveBackendS3:
		if c.Archive.S3 == nil || c.Archive.S3.Endpoint == "" || c.Archive.S3.BucketName == "" {
			return fmt.Errorf("archive backend %q requires archive.s3.endpoint and archive.s3.bucket_name", c.Archive.Backend)
		}
	case ArchiveBackendAzure:
		if c.Archive.Azure == nil || c.Archive.Azure.ServiceURL == "" || c.Archive.Azure.Container == "" {
			return fmt.Errorf("archive backend %q requires archive.azure.service_url and archive.azure.container", c.Archive.Backend)
		}
	case ArchiveBackendNone:
	}

	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s",
		url.QueryEscape(c.Postgres.User),
		url.QueryEscape(c.Postgres.Password),
		c.Postgres.Host, c.Postgres.Port,
		url.QueryEscape(c.Postgres.Database),
	)
}
