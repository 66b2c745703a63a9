package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/shopeasy-cli/internal/adapters/api/httpapi"
	"github.com/bnema/shopeasy-cli/internal/adapters/render/catalog"
	chainsource "github.com/bnema/shopeasy-cli/internal/adapters/secrets/chain"
	"github.com/bnema/shopeasy-cli/internal/application"
	"github.com/bnema/shopeasy-cli/internal/config"
	"github.com/bnema/shopeasy-cli/internal/logging"
	"github.com/bnema/shopeasy-cli/internal/ports"
	"github.com/bnema/shopeasy-cli/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type rootFlags struct {
	configFile string
	logLevel   string
}

type app struct {
	cfg             config.Config
	log             *logrus.Logger
	logCloser       io.Closer
	api             ports.StoreAPI
	secrets         ports.SecretSource
	catalogRenderer func(catalog.Snapshot, catalog.RenderOptions) (string, error)
}

// wireApp loads configuration and builds the adapters one command needs.
// Diagnostics go to logOutput unless log.file is configured.
func wireApp(flags *rootFlags, logOutput io.Writer) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.New(cfg.Log, logOutput)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}
	if cfg.Path != "" {
		logger.WithField("path", cfg.Path).Debug("loaded config file")
	}

	api, err := httpapi.NewClient(httpapi.Options{
		BaseURL:          cfg.API.BaseURL,
		Timeout:          cfg.API.Timeout,
		UserAgent:        version.UserAgent(),
		Logger:           logger,
		MaxResponseBytes: cfg.API.MaxResponseBytes,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("wire store api client: %w", err)
	}

	secrets, err := chainsource.NewPassFirstWithFileFallback(cfg.Secrets.Dir)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("wire secret source chain: %w", err)
	}

	return &app{
		cfg:             cfg,
		log:             logger,
		logCloser:       logCloser,
		api:             api,
		secrets:         secrets,
		catalogRenderer: catalog.Render,
	}, nil
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(viper.New(), config.LoadOptions{
		ConfigFile:  flags.configFile,
		DotEnvFiles: []string{".env"},
	})
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	return cfg, nil
}

func (a *app) newSession(notifier ports.Notifier) *application.Session {
	return application.NewSession(a.api, notifier, a.log)
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// withApp wires an app for the duration of run.
func withApp(flags *rootFlags, logOutput io.Writer, run func(*app) error) (err error) {
	a, err := wireApp(flags, logOutput)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.close())
	}()

	return run(a)
}

// writerNotifier prints alerts on a line of their own, for one-shot commands.
type writerNotifier struct {
	out io.Writer
}

func (n writerNotifier) Alert(message string) {
	_, _ = fmt.Fprintln(n.out, message)
}
