package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"job-board-web/internal/api"
	"job-board-web/internal/config"
	"job-board-web/internal/controller"
	"job-board-web/internal/logging"
	"job-board-web/internal/storage"
)

// AppContext holds what every command needs.
type AppContext struct {
	Config       *config.Config
	Logger       *slog.Logger
	Jobs         *api.JobService
	Accounts     *api.AccountService
	Applications *api.ApplicationService
	Store        storage.Store

	logFile io.Closer
}

// NewAppContext loads the environment file and configuration named by the
// global flags and wires the services.
func NewAppContext(ctx context.Context, cmd *cli.Command) (*AppContext, error) {
	if err := config.LoadEnv(cmd.String("env")); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if v := cmd.String("api-url"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.Monitoring.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// Logs go to stderr so command output stays clean.
	logger, logFile, err := logging.New(logging.Config{
		Level:      cfg.Monitoring.LogLevel,
		Format:     cfg.Monitoring.LogFormat,
		File:       cfg.Monitoring.LogFile,
		MaxSizeMB:  cfg.Monitoring.LogMaxSizeMB,
		MaxBackups: cfg.Monitoring.LogMaxBackups,
		Output:     cmd.Root().ErrWriter,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	store := storage.OpenOrNop(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey, logger)

	client := api.NewClient(cfg.API)
	return &AppContext{
		Config:       cfg,
		Logger:       logger,
		Jobs:         api.NewJobService(client),
		Accounts:     api.NewAccountService(client),
		Applications: api.NewApplicationService(client),
		Store:        store,
		logFile:      logFile,
	}, nil
}

// Close releases the log file, if any.
func (ac *AppContext) Close() {
	if ac.logFile != nil {
		_ = ac.logFile.Close()
	}
}

// Identity is the employer the command acts as: --employer-id, then the
// configured default.
func (ac *AppContext) Identity(cmd *cli.Command) controller.Identity {
	if cmd.IsSet("employer-id") {
		return controller.EmployerIdentity(int(cmd.Int("employer-id")))
	}
	return controller.EmployerIdentity(ac.Config.Session.DefaultEmployerID)
}

// FormOptions are shared by every submitting command.
func (ac *AppContext) FormOptions() []controller.FormOption {
	return []controller.FormOption{
		controller.WithLogger(ac.Logger),
		controller.WithRecorder(ac.Store),
	}
}

// failure turns a service error into the message the user sees.
func failure(err error, fallback string) error {
	var validationErr *controller.ValidationError
	if errors.As(err, &validationErr) {
		return errors.New(validationErr.Message)
	}
	return errors.New(controller.UserMessage(err, fallback, fallback))
}

func out(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}
