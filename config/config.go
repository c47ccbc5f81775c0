package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Shop time zones resolve on slim images.
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultTimezone           = "Asia/Ho_Chi_Minh"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configuration for the task worker push server
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Store selects the persistence driver
	Store *StoreConfig `json:"store" yaml:"store"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for task event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Outbox configuration for task retry
	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// Upload configuration for media assets
	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// LiveQuery configuration for change feeds
	LiveQuery *LiveQueryConfig `json:"liveQuery" yaml:"liveQuery"`

	// Shop configuration for business rules
	Shop *ShopConfig `json:"shop" yaml:"shop"`

	// QRCode configuration for transfer QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// WorkerConfig defines the task worker HTTP endpoint
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Audience expected in Pub/Sub push OIDC tokens (google provider only)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// StoreConfig defines which persistence driver backs the repositories
type StoreConfig struct {
	// Driver type: "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates the postgres schema on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold above which GORM queries are logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	MinPassword    int           `json:"minPassword" yaml:"minPassword"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "inline" to process in-process
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// OutboxConfig defines retry behaviour of outbox tasks
type OutboxConfig struct {
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	BackoffBase   time.Duration `json:"backoffBase" yaml:"backoffBase"`
	BackoffMax    time.Duration `json:"backoffMax" yaml:"backoffMax"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	BatchSize     int           `json:"batchSize" yaml:"batchSize"`
}

// UploadConfig defines the media upload provider
type UploadConfig struct {
	// Provider type: "cloudinary" or "blob"
	Provider string        `json:"provider" yaml:"provider"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	MaxSize  string        `json:"maxSize" yaml:"maxSize"`

	Cloudinary struct {
		CloudName    string `json:"cloudName" yaml:"cloudName"`
		UploadPreset string `json:"uploadPreset" yaml:"uploadPreset"`
		BaseURL      string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"cloudinary" yaml:"cloudinary"`

	Blob struct {
		// Bucket URL understood by gocloud.dev, e.g. file:///var/uploads or gs://bucket
		BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
		// Public URL prefix of stored objects
		PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	} `json:"blob" yaml:"blob"`
}

// LiveQueryConfig defines the change feed used by live queries
type LiveQueryConfig struct {
	// Provider type: "local" or "redis"
	Provider string `json:"provider" yaml:"provider"`
	Channel  string `json:"channel" yaml:"channel"`

	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`
}

// ShopConfig defines shop-wide business settings
type ShopConfig struct {
	Name              string `json:"name" yaml:"name"`
	Timezone          string `json:"timezone" yaml:"timezone"`
	LowStockThreshold int    `json:"lowStockThreshold" yaml:"lowStockThreshold"`
}

// Location resolves the shop time zone, falling back to Asia/Ho_Chi_Minh (UTC+7).
func (s *ShopConfig) Location() *time.Location {
	name := defaultTimezone
	if s != nil && s.Timezone != "" {
		name = s.Timezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 7*60*60)
	}

	return loc
}

// QRCodeConfig defines transfer QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BankBin              string `json:"bankBin" yaml:"bankBin"`
	AccountNumber        string `json:"accountNumber" yaml:"accountNumber"`
	AccountName          string `json:"accountName" yaml:"accountName"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
