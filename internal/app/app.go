package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/browse"
	"github.com/five82/roster/internal/catalog"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	EnvFile    string // empty loads ./.env when present
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	APIURL     string // overrides config and environment
	LogLevel   string // overrides config and environment
}

// Env is the wired application: settings, logger and service client.
type Env struct {
	Config config.Config
	Client *catalog.Client
	Logger zerolog.Logger

	logFile *os.File
}

// Open loads configuration, directs logging to the log file and builds the
// service client. Callers must Close the returned Env.
func Open(opts Options) (*Env, error) {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = v
	}

	file, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.Setup(logging.Config{Level: cfg.LogLevel, Output: file})
	logger := logging.NewLogger("app")

	client, err := catalog.NewClient(cfg.APIURL)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	return &Env{
		Config:  cfg,
		Client:  client,
		Logger:  logger,
		logFile: file,
	}, nil
}

// NewSession returns a browse session bound to the service client.
func (e *Env) NewSession(ctx context.Context) *browse.Session {
	return browse.NewSession(ctx, e.Client, browse.Options{
		SearchDelay:    e.Config.SearchDelay,
		RequestTimeout: e.Config.RequestTimeout,
	})
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.logFile == nil {
		return nil
	}
	return e.logFile.Close()
}

// Run boots the roster TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	if env.Config.MetricsAddr != "" {
		metrics, err := StartMetrics(env.Config.MetricsAddr)
		if err != nil {
			return err
		}
		defer metrics.Close()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	session := env.NewSession(ctx)
	defer session.Close()

	env.Logger.Info().
		Str("api_url", env.Client.BaseURL()).
		Str("theme", userPrefs.Theme).
		Msg("starting roster")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Session:   session,
		APIURL:    env.Client.BaseURL(),
		LogPath:   env.Config.LogFile,
		ThemeName: userPrefs.Theme,
		Columns:   userPrefs.Columns,
		PrefsPath: prefsPath,
	})
	if err != nil {
		env.Logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	env.Logger.Info().Msg("roster stopped")
	return nil
}
