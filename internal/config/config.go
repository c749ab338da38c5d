// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultSSHTimeout   = 10 * time.Second
	DefaultSSHPort      = 22
	DefaultScanInterval = 30 * time.Minute
	DefaultLogWindow    = 3
	DefaultPruneDepth   = 3
)

// Config is the application configuration.
type Config struct {
	Server       ServerConfig                 `mapstructure:"server"`
	MediaServers map[string]MediaServerConfig `mapstructure:"mediaservers"`
	Downloaders  map[string]DownloaderConfig  `mapstructure:"downloaders"`
	Reconcile    ReconcileConfig              `mapstructure:"reconcile"`
	Scan         ScanConfig                   `mapstructure:"scan"`
	Source       SourceConfig                 `mapstructure:"source"`
	Notify       NotifyConfig                 `mapstructure:"notify"`
	Database     DatabaseConfig               `mapstructure:"database"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Listen   string `mapstructure:"listen"`
	APIToken string `mapstructure:"apiToken"` // empty disables auth on mutating endpoints
}

// MediaServerConfig holds configuration for a media server instance.
type MediaServerConfig struct {
	Type        string        `mapstructure:"type"` // emby or jellyfin
	URL         string        `mapstructure:"url"`
	APIKey      string        `mapstructure:"apiKey"`
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`
}

// DownloaderConfig holds configuration for a download client instance.
type DownloaderConfig struct {
	Type        string        `mapstructure:"type"`
	URL         string        `mapstructure:"url"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	HTTPTimeout time.Duration `mapstructure:"httpTimeout"`
}

// ReconcileConfig holds deletion-reconciliation behavior switches.
type ReconcileConfig struct {
	DeleteSource      bool     `mapstructure:"deleteSource"`      // delete source files and prune empty dirs
	Notify            bool     `mapstructure:"notify"`            // send a summary notification per event
	PurgeHistory      bool     `mapstructure:"purgeHistory"`      // wipe the deletion history on start
	LibraryPaths      string   `mapstructure:"libraryPaths"`      // newline-separated "source:canonical" mapping rules
	ExcludePaths      []string `mapstructure:"excludePaths"`      // canonical path prefixes to ignore
	DefaultDownloader string   `mapstructure:"defaultDownloader"` // fallback when a ledger record has no downloader name
	PruneDepth        int      `mapstructure:"pruneDepth"`        // how many empty ancestor dirs to remove after a source delete
}

// ScanConfig holds log-scan configuration.
type ScanConfig struct {
	Mode      string        `mapstructure:"mode"`      // webhook or log
	Interval  time.Duration `mapstructure:"interval"`  // log-scan period
	LogWindow int           `mapstructure:"logWindow"` // how many recent log files to fetch per pass
}

// SourceConfig selects where source files live for deletion.
type SourceConfig struct {
	Backend string    `mapstructure:"backend"` // local (default) or sftp
	SSH     SSHConfig `mapstructure:"ssh"`
}

// SSHConfig holds SSH connection configuration for the sftp source backend.
type SSHConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	KeyFile        string        `mapstructure:"keyFile"`
	KnownHostsFile string        `mapstructure:"knownHostsFile"` // mutually exclusive with IgnoreHostKey
	IgnoreHostKey  bool          `mapstructure:"ignoreHostKey"`  // mutually exclusive with KnownHostsFile
	Timeout        time.Duration `mapstructure:"timeout"`
}

// NotifyConfig holds notification configuration.
type NotifyConfig struct {
	NtfyTopic string        `mapstructure:"ntfyTopic"` // full topic URL; empty disables notifications
	Timeout   time.Duration `mapstructure:"timeout"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. If empty, default locations are searched.
	ConfigFile string
}

// Load reads configuration from file and environment variables.
// If opts.ConfigFile is set, that file is used directly.
// Otherwise, it searches default locations: $HOME, current directory, /config
// for files named .mediareap.yaml, mediareap.yaml, or config.yaml.
//
// Environment variables with prefix MEDIAREAP_ override config file values.
// For dynamic maps (mediaservers, downloaders), set MEDIAREAP_MEDIASERVERS
// and MEDIAREAP_DOWNLOADERS to comma-separated lists of names to enable env
// var binding for those entries.
func Load(opts LoadOptions) (Config, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/config")
		v.SetConfigType("yaml")
		v.SetConfigName(".mediareap")
		v.SetConfigName("mediareap")
		v.SetConfigName("config")
	}

	// Environment variables
	v.SetEnvPrefix("MEDIAREAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind env vars for dynamic map keys if specified
	bindMediaServerEnvVars(v)
	bindDownloaderEnvVars(v)

	// Set defaults
	v.SetDefault("server.listen", "[::]:8427")
	v.SetDefault("scan.mode", "webhook")
	v.SetDefault("scan.interval", DefaultScanInterval.String())
	v.SetDefault("scan.logWindow", DefaultLogWindow)
	v.SetDefault("database.path", "mediareap.db")
	v.SetDefault("reconcile.notify", true)
	v.SetDefault("reconcile.pruneDepth", DefaultPruneDepth)

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	setDefaultsOnListConfigs(&cfg)

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// setDefaultsOnListConfigs applies default values to config fields that can't
// be set with viper.SetDefault.
func setDefaultsOnListConfigs(cfg *Config) {
	for name, ms := range cfg.MediaServers {
		if ms.HTTPTimeout == 0 {
			ms.HTTPTimeout = DefaultHTTPTimeout
		}
		cfg.MediaServers[name] = ms
	}

	for name, dl := range cfg.Downloaders {
		if dl.HTTPTimeout == 0 {
			dl.HTTPTimeout = DefaultHTTPTimeout
		}
		cfg.Downloaders[name] = dl
	}

	if cfg.Source.Backend == "sftp" {
		if cfg.Source.SSH.Port == 0 {
			cfg.Source.SSH.Port = DefaultSSHPort
		}
		if cfg.Source.SSH.Timeout == 0 {
			cfg.Source.SSH.Timeout = DefaultSSHTimeout
		}
	}
}

// Valid media server types.
//
//nolint:gochecknoglobals // validation lookup table
var validMediaServerTypes = map[string]bool{
	"emby":     true,
	"jellyfin": true,
}

// Valid downloader types.
//
//nolint:gochecknoglobals // validation lookup table
var validDownloaderTypes = map[string]bool{
	"qbittorrent": true,
}

// Valid scan modes.
//
//nolint:gochecknoglobals // validation lookup table
var validScanModes = map[string]bool{
	"webhook": true,
	"log":     true,
}

// Valid source backends.
//
//nolint:gochecknoglobals // validation lookup table
var validSourceBackends = map[string]bool{
	"":      true, // empty means default (local)
	"local": true,
	"sftp":  true,
}

// validate checks that the configuration is valid.
//
//nolint:gocognit // validation requires checking many fields
func validate(cfg *Config) error {
	var errs []error

	for name, ms := range cfg.MediaServers {
		if ms.Type == "" {
			errs = append(errs, fmt.Errorf("mediaserver %q: type is required", name))
		} else if !validMediaServerTypes[ms.Type] {
			errs = append(errs, fmt.Errorf("mediaserver %q: unknown type %q", name, ms.Type))
		}

		if ms.URL == "" {
			errs = append(errs, fmt.Errorf("mediaserver %q: url is required", name))
		} else if _, err := url.Parse(ms.URL); err != nil {
			errs = append(errs, fmt.Errorf("mediaserver %q: invalid url: %w", name, err))
		}

		if ms.APIKey == "" {
			errs = append(errs, fmt.Errorf("mediaserver %q: apiKey is required", name))
		}
	}

	for name, dl := range cfg.Downloaders {
		if dl.Type == "" {
			errs = append(errs, fmt.Errorf("downloader %q: type is required", name))
		} else if !validDownloaderTypes[dl.Type] {
			errs = append(errs, fmt.Errorf("downloader %q: unknown type %q", name, dl.Type))
		}

		if dl.URL == "" {
			errs = append(errs, fmt.Errorf("downloader %q: url is required", name))
		} else if _, err := url.Parse(dl.URL); err != nil {
			errs = append(errs, fmt.Errorf("downloader %q: invalid url: %w", name, err))
		}
	}

	if !validScanModes[cfg.Scan.Mode] {
		errs = append(errs, fmt.Errorf("scan.mode: unknown mode %q", cfg.Scan.Mode))
	}
	if cfg.Scan.Mode == "log" && len(cfg.MediaServers) == 0 {
		errs = append(errs, errors.New("scan.mode is log but no mediaservers are configured"))
	}

	if !validSourceBackends[cfg.Source.Backend] {
		errs = append(errs, fmt.Errorf("source.backend: unknown backend %q", cfg.Source.Backend))
	}
	if cfg.Source.Backend == "sftp" {
		if cfg.Source.SSH.Host == "" {
			errs = append(errs, errors.New("source.ssh.host is required for the sftp backend"))
		}
		if cfg.Source.SSH.User == "" {
			errs = append(errs, errors.New("source.ssh.user is required for the sftp backend"))
		}
		if cfg.Source.SSH.KeyFile == "" {
			errs = append(errs, errors.New("source.ssh.keyFile is required for the sftp backend"))
		}

		// Host key verification: must specify knownHostsFile OR ignoreHostKey, but not both
		if cfg.Source.SSH.KnownHostsFile != "" && cfg.Source.SSH.IgnoreHostKey {
			errs = append(errs, errors.New("source.ssh.knownHostsFile and source.ssh.ignoreHostKey are mutually exclusive"))
		}
		if cfg.Source.SSH.KnownHostsFile == "" && !cfg.Source.SSH.IgnoreHostKey {
			errs = append(errs, errors.New("source.ssh.knownHostsFile is required (or set source.ssh.ignoreHostKey to true)"))
		}
	}

	if cfg.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if cfg.Reconcile.DefaultDownloader != "" {
		if _, ok := cfg.Downloaders[cfg.Reconcile.DefaultDownloader]; !ok {
			errs = append(errs, fmt.Errorf(
				"reconcile.defaultDownloader: no downloader named %q", cfg.Reconcile.DefaultDownloader))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// mediaServerEnvFields lists all MediaServerConfig fields for env var binding.
// This must be kept in sync with the MediaServerConfig struct.
// Tests verify this list matches the struct fields.
//
//nolint:gochecknoglobals // env var binding field list
var mediaServerEnvFields = []string{
	"type",
	"url",
	"apiKey",
	"httpTimeout",
}

// downloaderEnvFields lists all DownloaderConfig fields for env var binding.
// This must be kept in sync with the DownloaderConfig struct.
// Tests verify this list matches the struct fields.
//
//nolint:gochecknoglobals // env var binding field list
var downloaderEnvFields = []string{
	"type",
	"url",
	"username",
	"password",
	"httpTimeout",
}

// bindMediaServerEnvVars reads MEDIAREAP_MEDIASERVERS env var to get the list
// of media server names, then binds all fields for each name using MustBindEnv.
// This allows viper to discover dynamic map keys from environment variables.
// The list env var is unset after reading to prevent viper from treating it as
// the "mediaservers" config key (which would cause a type mismatch).
func bindMediaServerEnvVars(v *viper.Viper) {
	serversEnv := os.Getenv("MEDIAREAP_MEDIASERVERS")
	if serversEnv == "" {
		return
	}

	// Unset the list env var so viper doesn't interpret it as mediaservers=string
	_ = os.Unsetenv("MEDIAREAP_MEDIASERVERS")

	for name := range strings.SplitSeq(serversEnv, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		for _, field := range mediaServerEnvFields {
			key := "mediaservers." + name + "." + field
			v.MustBindEnv(key)
		}
	}
}

// bindDownloaderEnvVars reads MEDIAREAP_DOWNLOADERS env var to get the list of
// downloader names, then binds all downloader fields for each name using
// MustBindEnv. The list env var is unset after reading for the same reason as
// bindMediaServerEnvVars.
func bindDownloaderEnvVars(v *viper.Viper) {
	downloadersEnv := os.Getenv("MEDIAREAP_DOWNLOADERS")
	if downloadersEnv == "" {
		return
	}

	_ = os.Unsetenv("MEDIAREAP_DOWNLOADERS")

	for name := range strings.SplitSeq(downloadersEnv, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		for _, field := range downloaderEnvFields {
			key := "downloaders." + name + "." + field
			v.MustBindEnv(key)
		}
	}
}
