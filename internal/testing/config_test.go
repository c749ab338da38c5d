package testing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediareap/mediareap/internal/config"
	testutil "github.com/mediareap/mediareap/internal/testing"
)

func TestValidConfig(t *testing.T) {
	cfg := testutil.ValidConfig(t)

	// Write the config to a temp file and load it to verify it's valid
	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfig should produce a valid config")

	// Verify key fields are present
	assert.NotEmpty(t, loaded.Server.Listen)
	assert.NotEmpty(t, loaded.MediaServers)
	assert.NotEmpty(t, loaded.Downloaders)
	assert.NotEmpty(t, loaded.Database.Path)

	// Verify media server has required fields
	ms, ok := loaded.MediaServers["emby-main"]
	require.True(t, ok, "emby-main media server should exist")
	assert.Equal(t, "emby", ms.Type)
	assert.NotEmpty(t, ms.URL)
	assert.NotEmpty(t, ms.APIKey)

	// Verify downloader has required fields
	dl, ok := loaded.Downloaders["seedbox"]
	require.True(t, ok, "seedbox downloader should exist")
	assert.Equal(t, "qbittorrent", dl.Type)
	assert.NotEmpty(t, dl.URL)

	assert.Equal(t, "seedbox", loaded.Reconcile.DefaultDownloader)
}

func TestValidConfigWithSFTP(t *testing.T) {
	cfg := testutil.ValidConfigWithSFTP(t)

	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfigWithSFTP should produce a valid config")

	assert.Equal(t, "sftp", loaded.Source.Backend)
	assert.NotEmpty(t, loaded.Source.SSH.Host)
	assert.NotEmpty(t, loaded.Source.SSH.User)
	assert.NotEmpty(t, loaded.Source.SSH.KeyFile)
	assert.True(t, loaded.Source.SSH.IgnoreHostKey)
}

func TestValidConfigWithKnownHosts(t *testing.T) {
	cfg := testutil.ValidConfigWithKnownHosts(t)

	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfigWithKnownHosts should produce a valid config")

	// Verify SSH uses known_hosts instead of ignoreHostKey
	assert.False(t, loaded.Source.SSH.IgnoreHostKey)
	assert.NotEmpty(t, loaded.Source.SSH.KnownHostsFile)
}

func TestValidConfigMinimal(t *testing.T) {
	cfg := testutil.ValidConfigMinimal(t)

	yamlContent := testutil.ConfigToYAML(t, cfg)
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(yamlContent), 0600))

	loaded, err := config.Load(config.LoadOptions{ConfigFile: tmpFile})
	require.NoError(t, err, "ValidConfigMinimal should produce a valid config")

	// Verify minimal config has only required fields
	assert.NotEmpty(t, loaded.Server.Listen)
	assert.Empty(t, loaded.MediaServers)
	assert.Empty(t, loaded.Downloaders)
	assert.Equal(t, "webhook", loaded.Scan.Mode)
}

func TestCreateTestSSHFiles(t *testing.T) {
	files := testutil.CreateTestSSHFiles(t)

	// Verify key file exists with correct permissions
	info, err := os.Stat(files.KeyFile)
	require.NoError(t, err, "key file should exist")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "key file should have 0600 permissions")

	// Verify known_hosts file exists
	_, err = os.Stat(files.KnownHostsFile)
	require.NoError(t, err, "known_hosts file should exist")

	// Verify temp dir is the parent
	assert.Equal(t, files.TempDir, filepath.Dir(files.KeyFile))
	assert.Equal(t, files.TempDir, filepath.Dir(files.KnownHostsFile))
}

func TestConfigToYAML(t *testing.T) {
	cfg := testutil.ValidConfig(t)
	yamlContent := testutil.ConfigToYAML(t, cfg)

	// Verify YAML contains expected keys
	assert.Contains(t, yamlContent, "server:")
	assert.Contains(t, yamlContent, "mediaservers:")
	assert.Contains(t, yamlContent, "downloaders:")
	assert.Contains(t, yamlContent, "reconcile:")
	assert.Contains(t, yamlContent, "seedbox:")
	assert.Contains(t, yamlContent, "emby-main:")
}
