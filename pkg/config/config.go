package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "XOMWARE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "XOMWARE_DB_DSN"
	EnvDBHost = "XOMWARE_DB_HOST"
	EnvDBUser = "XOMWARE_DB_USER"
	EnvDBName = "XOMWARE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"XOMWARE_APP_ENV" required:"true"`
	Port         string `envconfig:"XOMWARE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"XOMWARE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"XOMWARE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"XOMWARE_DB_DSN"`
	Driver string `envconfig:"XOMWARE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"XOMWARE_DB_HOST"`
	LegacyPort     int    `envconfig:"XOMWARE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"XOMWARE_DB_USER"`
	LegacyPassword string `envconfig:"XOMWARE_DB_PASSWORD"`
	LegacyName     string `envconfig:"XOMWARE_DB_NAME"`
	LegacySSLMode  string `envconfig:"XOMWARE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"XOMWARE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"XOMWARE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"XOMWARE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"XOMWARE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"XOMWARE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"XOMWARE_REDIS_ADDR"`
	Password     string        `envconfig:"XOMWARE_REDIS_PASSWORD"`
	DB           int           `envconfig:"XOMWARE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"XOMWARE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"XOMWARE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"XOMWARE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"XOMWARE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"XOMWARE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"XOMWARE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"XOMWARE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"XOMWARE_JWT_EXPIRATION_MINUTES" default:"60"`
}

// Expiration returns the access token TTL configured in minutes.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"XOMWARE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"XOMWARE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"XOMWARE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"XOMWARE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"XOMWARE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"XOMWARE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"XOMWARE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"XOMWARE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"XOMWARE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"XOMWARE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"XOMWARE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"XOMWARE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"XOMWARE_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
