package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Port is the port the server should run on.
	Port int `mapstructure:"port"`
	// Store selects the course and progress store, either "firestore" or "memory".
	Store string `mapstructure:"store"`
	// FirebaseCredentialsFile is the service account file used to reach Firestore. When empty,
	// application default credentials are used.
	FirebaseCredentialsFile string `mapstructure:"firebase_credentials"`
	// FirebaseProjectID overrides the project taken from the credentials.
	FirebaseProjectID string `mapstructure:"firebase_project_id"`
	// CurriculumURL is the raw README the curriculum is synced from.
	CurriculumURL string `mapstructure:"curriculum_url"`
	// FetchTimeout bounds a single attempt to download the README.
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	// FetchAttempts is the number of download attempts before a sync fails.
	FetchAttempts uint `mapstructure:"fetch_attempts"`
	// DefaultUserID is the user progress is recorded for.
	DefaultUserID string `mapstructure:"user_id"`
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins: []string{"*"},
		Port:           8001,
		Store:          StoreFirestore,
		CurriculumURL:  "https://raw.githubusercontent.com/ossu/computer-science/master/README.md",
		FetchTimeout:   30 * time.Second,
		FetchAttempts:  3,
		DefaultUserID:  "default_user",
	}
}

// Load reads the configuration from cfgFile (if not empty) and from OSSU_* environment
// variables, on top of DefaultConfig.
func Load(cfgFile string) (*ServerConfig, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("allowed_origins", defaults.AllowedOrigins)
	v.SetDefault("port", defaults.Port)
	v.SetDefault("store", defaults.Store)
	v.SetDefault("firebase_credentials", defaults.FirebaseCredentialsFile)
	v.SetDefault("firebase_project_id", defaults.FirebaseProjectID)
	v.SetDefault("curriculum_url", defaults.CurriculumURL)
	v.SetDefault("fetch_timeout", defaults.FetchTimeout)
	v.SetDefault("fetch_attempts", defaults.FetchAttempts)
	v.SetDefault("user_id", defaults.DefaultUserID)

	v.SetEnvPrefix("ossu")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.AllowedOrigins = splitList(cfg.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a ServerConfig for errors.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Store != StoreFirestore && c.Store != StoreMemory {
		return fmt.Errorf("unknown store %q, expected %q or %q", c.Store, StoreFirestore, StoreMemory)
	}
	if strings.TrimSpace(c.CurriculumURL) == "" {
		return errors.New("curriculum URL must be a non-empty string")
	}
	if c.FetchAttempts == 0 {
		return errors.New("fetch attempts must be at least 1")
	}
	if c.DefaultUserID == "" {
		return errors.New("user id must be a non-empty string")
	}
	return nil
}

// splitList flattens comma-separated entries, as given in OSSU_ALLOWED_ORIGINS.
func splitList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, entry := range list {
		for _, part := range strings.Split(entry, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
