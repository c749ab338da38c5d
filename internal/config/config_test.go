package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/config"
)

// loadConfigFromYAML creates a temp config file and loads it using Load().
// This ensures tests use the exact same config loading code as the application.
func loadConfigFromYAML(t *testing.T, yaml string) config.Config {
	t.Helper()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configFile, []byte(yaml), 0644)
	require.NoError(t, err, "failed to write temp config file")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	require.NoError(t, err, "failed to load config")

	return cfg
}

// loadConfigExpectError loads a config and requires that validation fails.
func loadConfigExpectError(t *testing.T, yaml string) error {
	t.Helper()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configFile, []byte(yaml), 0644)
	require.NoError(t, err, "failed to write temp config file")

	_, err = config.Load(config.LoadOptions{ConfigFile: configFile})
	require.Error(t, err)
	return err
}

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "empty config uses all defaults",
			yaml: "",
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "[::]:8427", cfg.Server.Listen)
				assert.Equal(t, "webhook", cfg.Scan.Mode)
				assert.Equal(t, 30*time.Minute, cfg.Scan.Interval)
				assert.Equal(t, config.DefaultLogWindow, cfg.Scan.LogWindow)
				assert.Equal(t, "mediareap.db", cfg.Database.Path)
				assert.True(t, cfg.Reconcile.Notify)
				assert.Equal(t, config.DefaultPruneDepth, cfg.Reconcile.PruneDepth)
			},
		},
		{
			name: "server listen can be overridden",
			yaml: `
server:
  listen: "0.0.0.0:9000"
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
				// Other defaults still apply
				assert.Equal(t, "webhook", cfg.Scan.Mode)
			},
		},
		{
			name: "scan interval can be overridden",
			yaml: `
scan:
  interval: 5m
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 5*time.Minute, cfg.Scan.Interval)
			},
		},
		{
			name: "media server gets default http timeout",
			yaml: `
mediaservers:
  emby:
    type: emby
    url: http://emby:8096
    apiKey: key
`,
			check: func(t *testing.T, cfg config.Config) {
				require.Contains(t, cfg.MediaServers, "emby")
				assert.Equal(t, config.DefaultHTTPTimeout, cfg.MediaServers["emby"].HTTPTimeout)
			},
		},
		{
			name: "downloader gets default http timeout",
			yaml: `
downloaders:
  seedbox:
    type: qbittorrent
    url: http://seedbox:8080
`,
			check: func(t *testing.T, cfg config.Config) {
				require.Contains(t, cfg.Downloaders, "seedbox")
				assert.Equal(t, config.DefaultHTTPTimeout, cfg.Downloaders["seedbox"].HTTPTimeout)
			},
		},
		{
			name: "sftp source gets ssh defaults",
			yaml: `
source:
  backend: sftp
  ssh:
    host: seedbox.example.com
    user: seeduser
    keyFile: /keys/id_test
    ignoreHostKey: true
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, config.DefaultSSHPort, cfg.Source.SSH.Port)
				assert.Equal(t, config.DefaultSSHTimeout, cfg.Source.SSH.Timeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfigFromYAML(t, tt.yaml)
			tt.check(t, cfg)
		})
	}
}

func TestConfigReconcile(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
downloaders:
  seedbox:
    type: qbittorrent
    url: http://seedbox:8080
reconcile:
  deleteSource: true
  purgeHistory: true
  defaultDownloader: seedbox
  libraryPaths: |
    F:\emby:/media/emby
    D:\tv:/media/tv
  excludePaths:
    - /media/keep
`)

	assert.True(t, cfg.Reconcile.DeleteSource)
	assert.True(t, cfg.Reconcile.PurgeHistory)
	assert.Equal(t, "seedbox", cfg.Reconcile.DefaultDownloader)
	assert.Contains(t, cfg.Reconcile.LibraryPaths, `F:\emby:/media/emby`)
	assert.Equal(t, []string{"/media/keep"}, cfg.Reconcile.ExcludePaths)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		contains string
	}{
		{
			name: "media server missing type",
			yaml: `
mediaservers:
  emby:
    url: http://emby:8096
    apiKey: key
`,
			contains: "type is required",
		},
		{
			name: "media server unknown type",
			yaml: `
mediaservers:
  plex:
    type: plex
    url: http://plex:32400
    apiKey: key
`,
			contains: `unknown type "plex"`,
		},
		{
			name: "media server missing api key",
			yaml: `
mediaservers:
  emby:
    type: emby
    url: http://emby:8096
`,
			contains: "apiKey is required",
		},
		{
			name: "downloader unknown type",
			yaml: `
downloaders:
  dl:
    type: transmission
    url: http://dl:9091
`,
			contains: `unknown type "transmission"`,
		},
		{
			name: "downloader missing url",
			yaml: `
downloaders:
  dl:
    type: qbittorrent
`,
			contains: "url is required",
		},
		{
			name: "unknown scan mode",
			yaml: `
scan:
  mode: poll
`,
			contains: "unknown mode",
		},
		{
			name: "log mode requires media servers",
			yaml: `
scan:
  mode: log
`,
			contains: "no mediaservers",
		},
		{
			name: "unknown source backend",
			yaml: `
source:
  backend: nfs
`,
			contains: "unknown backend",
		},
		{
			name: "sftp backend requires host",
			yaml: `
source:
  backend: sftp
  ssh:
    user: seeduser
    keyFile: /keys/id_test
    ignoreHostKey: true
`,
			contains: "source.ssh.host is required",
		},
		{
			name: "sftp known hosts and ignore host key are exclusive",
			yaml: `
source:
  backend: sftp
  ssh:
    host: seedbox
    user: seeduser
    keyFile: /keys/id_test
    knownHostsFile: /keys/known_hosts
    ignoreHostKey: true
`,
			contains: "mutually exclusive",
		},
		{
			name: "default downloader must exist",
			yaml: `
reconcile:
  defaultDownloader: missing
`,
			contains: `no downloader named "missing"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loadConfigExpectError(t, tt.yaml)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Run("simple value override", func(t *testing.T) {
		t.Setenv("MEDIAREAP_SERVER_LISTEN", "127.0.0.1:1234")

		cfg := loadConfigFromYAML(t, "")
		assert.Equal(t, "127.0.0.1:1234", cfg.Server.Listen)
	})

	t.Run("dynamic downloader map from env", func(t *testing.T) {
		t.Setenv("MEDIAREAP_DOWNLOADERS", "seedbox")
		t.Setenv("MEDIAREAP_DOWNLOADERS_SEEDBOX_TYPE", "qbittorrent")
		t.Setenv("MEDIAREAP_DOWNLOADERS_SEEDBOX_URL", "http://seedbox:8080")
		t.Setenv("MEDIAREAP_DOWNLOADERS_SEEDBOX_USERNAME", "admin")

		cfg := loadConfigFromYAML(t, "")
		require.Contains(t, cfg.Downloaders, "seedbox")
		assert.Equal(t, "qbittorrent", cfg.Downloaders["seedbox"].Type)
		assert.Equal(t, "http://seedbox:8080", cfg.Downloaders["seedbox"].URL)
		assert.Equal(t, "admin", cfg.Downloaders["seedbox"].Username)
	})

	t.Run("dynamic media server map from env", func(t *testing.T) {
		t.Setenv("MEDIAREAP_MEDIASERVERS", "emby")
		t.Setenv("MEDIAREAP_MEDIASERVERS_EMBY_TYPE", "emby")
		t.Setenv("MEDIAREAP_MEDIASERVERS_EMBY_URL", "http://emby:8096")
		t.Setenv("MEDIAREAP_MEDIASERVERS_EMBY_APIKEY", "secret")

		cfg := loadConfigFromYAML(t, "")
		require.Contains(t, cfg.MediaServers, "emby")
		assert.Equal(t, "emby", cfg.MediaServers["emby"].Type)
		assert.Equal(t, "secret", cfg.MediaServers["emby"].APIKey)
	})
}
