package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log" //nolint:depguard // needed to suppress rclone's internal error logging during shutdown
	"strings"
	"sync"

	"github.com/rclone/rclone/fs"
	"github.com/rclone/rclone/fs/operations"
	"github.com/rclone/rclone/fs/walk"
	"github.com/rs/zerolog"

	// Import the backend we need.
	_ "github.com/rclone/rclone/backend/sftp"

	"github.com/mediareap/mediareap/internal/fileutil"
)

// Default rclone configuration values.
const (
	rcloneDefaultSSHPort = 22
)

// rcloneGlobalsOnce ensures global rclone configuration is only set once.
// This prevents race conditions when multiple removers are created concurrently.
//
//nolint:gochecknoglobals // sync primitives for thread-safe rclone initialization
var rcloneGlobalsOnce sync.Once

// rcloneNewFsMu serializes fs.NewFs calls to work around race conditions in rclone's
// config loading (github.com/rclone/rclone/issues/8666). This is only needed during filesystem creation.
//
//nolint:gochecknoglobals // sync primitives for thread-safe rclone initialization
var rcloneNewFsMu sync.Mutex

// SSHConfig holds SSH connection configuration for the SFTP backend.
type SSHConfig struct {
	Host           string
	Port           int
	User           string
	KeyFile        string
	KnownHostsFile string // Path to known_hosts file (empty if IgnoreHostKey is true)
	IgnoreHostKey  bool   // Skip host key verification
}

// rcloneRemover implements Remover over SFTP using rclone.
// It is private and only exposed via the Remover interface.
type rcloneRemover struct {
	ssh    SSHConfig
	logger zerolog.Logger

	// Cached SFTP filesystem to reuse connections
	sftpFs   fs.Fs
	sftpOnce sync.Once
	sftpErr  error
}

// setLogger implements configurable for shared options.
func (r *rcloneRemover) setLogger(logger zerolog.Logger) {
	r.logger = logger
}

// NewRclone creates a new rclone SFTP remover and returns it as Remover.
func NewRclone(ssh SSHConfig, opts ...Option) Remover {
	if ssh.Port == 0 {
		ssh.Port = rcloneDefaultSSHPort
	}

	r := &rcloneRemover{
		ssh:    ssh,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Configure global rclone settings
	r.configureGlobals()

	return r
}

// configureGlobals sets up global rclone configuration.
// Uses sync.Once to ensure configuration happens only once, preventing race
// conditions when multiple removers are created concurrently.
func (r *rcloneRemover) configureGlobals() {
	rcloneGlobalsOnce.Do(func() {
		ci := fs.GetConfig(context.Background())
		ci.Transfers = 1
		ci.Checkers = 1

		// Reduce verbosity
		ci.LogLevel = fs.LogLevelError
	})
}

// Name returns the name of the backend.
func (r *rcloneRemover) Name() string {
	return string(BackendSFTP)
}

// PrepareShutdown suppresses rclone error logging during shutdown.
// Call this before cancelling contexts to avoid noisy "context canceled" errors.
func (r *rcloneRemover) PrepareShutdown() {
	// Suppress standard library log output (used by rclone for some errors)
	log.SetOutput(io.Discard)

	// Set rclone log level to suppress error messages
	ci := fs.GetConfig(context.Background())
	ci.LogLevel = fs.LogLevelEmergency
}

// Close releases the SFTP connection.
func (r *rcloneRemover) Close() error {
	if r.sftpFs != nil {
		if shutdowner, ok := r.sftpFs.(fs.Shutdowner); ok {
			_ = shutdowner.Shutdown(context.Background())
		}
	}
	return nil
}

// getSFTPFs returns a cached SFTP filesystem or creates a new one.
func (r *rcloneRemover) getSFTPFs(ctx context.Context) (fs.Fs, error) {
	r.sftpOnce.Do(func() {
		r.sftpFs, r.sftpErr = r.createSFTPFs(ctx)
	})
	return r.sftpFs, r.sftpErr
}

// createSFTPFs creates a new SFTP filesystem.
func (r *rcloneRemover) createSFTPFs(ctx context.Context) (fs.Fs, error) {
	// Build connection string using rclone's backend connection string format.
	// Using fs.NewFs with a connection string ensures all defaults are applied properly.
	// Format: :sftp,option=value,option2=value2:/path
	// See: https://github.com/rclone/rclone/issues/8666
	//
	// Note: If known_hosts_file is not set, rclone uses ssh.InsecureIgnoreHostKey()
	// which allows any host key. Only set it when we have an explicit file.
	knownHostsOpt := ""
	if !r.ssh.IgnoreHostKey && r.ssh.KnownHostsFile != "" {
		knownHostsOpt = fmt.Sprintf(",known_hosts_file=%s", r.ssh.KnownHostsFile)
	}

	connStr := fmt.Sprintf(
		":sftp,host=%s,port=%d,user=%s,key_file=%s%s,"+
			"disable_hashcheck=true,set_modtime=false,skip_links=true,shell_type=none:/",
		r.ssh.Host,
		r.ssh.Port,
		r.ssh.User,
		r.ssh.KeyFile,
		knownHostsOpt,
	)

	// Serialize fs.NewFs calls to work around race conditions in rclone's config loading
	rcloneNewFsMu.Lock()
	sftpFs, err := fs.NewFs(ctx, connStr)
	rcloneNewFsMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to create sftp filesystem: %w", err)
	}

	r.logger.Info().
		Str("host", r.ssh.Host).
		Int("port", r.ssh.Port).
		Str("user", r.ssh.User).
		Msg("rclone SFTP connection established")

	return sftpFs, nil
}

// rel strips the leading slash: the SFTP filesystem is rooted at /.
func rel(path string) string {
	return strings.TrimPrefix(path, "/")
}

// Exists reports whether a file or directory exists at path.
func (r *rcloneRemover) Exists(ctx context.Context, path string) (bool, error) {
	sftpFs, err := r.getSFTPFs(ctx)
	if err != nil {
		return false, err
	}

	_, err = sftpFs.NewObject(ctx, rel(path))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrorIsDir):
		return true, nil
	case !errors.Is(err, fs.ErrorObjectNotFound):
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	// Not a file; it may still be a directory.
	_, err = sftpFs.List(ctx, rel(path))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrorDirNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to list %s: %w", path, err)
	}
}

// RemoveFile deletes a single file.
func (r *rcloneRemover) RemoveFile(ctx context.Context, path string) error {
	sftpFs, err := r.getSFTPFs(ctx)
	if err != nil {
		return err
	}

	obj, err := sftpFs.NewObject(ctx, rel(path))
	if err != nil {
		return fmt.Errorf("failed to get remote file %q: %w", path, err)
	}

	if err := operations.DeleteFile(ctx, obj); err != nil {
		return fmt.Errorf("failed to delete remote file %q: %w", path, err)
	}

	r.logger.Debug().Str("path", path).Msg("removed remote file")
	return nil
}

// RemoveTree deletes a directory and everything below it.
func (r *rcloneRemover) RemoveTree(ctx context.Context, path string) error {
	sftpFs, err := r.getSFTPFs(ctx)
	if err != nil {
		return err
	}

	if err := operations.Purge(ctx, sftpFs, rel(path)); err != nil {
		return fmt.Errorf("failed to purge remote directory %q: %w", path, err)
	}

	r.logger.Debug().Str("path", path).Msg("removed remote directory")
	return nil
}

// errMediaFound stops the listing walk early once a media file turns up.
var errMediaFound = errors.New("media file found")

// ContainsMediaFile reports whether any file under dir carries a media extension.
func (r *rcloneRemover) ContainsMediaFile(ctx context.Context, dir string) (bool, error) {
	sftpFs, err := r.getSFTPFs(ctx)
	if err != nil {
		return false, err
	}

	err = walk.ListR(ctx, sftpFs, rel(dir), false, -1, walk.ListObjects, func(entries fs.DirEntries) error {
		for _, entry := range entries {
			if fileutil.HasMediaExt(entry.Remote()) {
				return errMediaFound
			}
		}
		return nil
	})
	if errors.Is(err, errMediaFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to scan remote directory %q: %w", dir, err)
	}
	return false, nil
}
