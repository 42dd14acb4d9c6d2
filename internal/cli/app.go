package cli

import (
	"fmt"
	"io"

	"ac-tracker/internal/api"
	"ac-tracker/internal/config"
	"ac-tracker/internal/domain"
	"ac-tracker/internal/services"
	"ac-tracker/internal/validation"
)

// App holds what every command handler needs: the API, the effective
// configuration and the writer for command output.
type App struct {
	api       api.API
	config    *config.Config
	out       io.Writer
	validator *validation.Validator
}

// APIFactory builds the API once configuration is final.
type APIFactory func(cfg *config.Config) api.API

// DefaultAPIFactory opens the instance file named by the configuration.
func DefaultAPIFactory(cfg *config.Config) api.API {
	return api.New(api.Options{
		Path: cfg.GetInstancePath(),
		Settings: domain.Settings{
			Multiplier: cfg.Scoring.Multiplier,
			Threshold:  cfg.Scoring.Threshold,
		},
		Report: reportOptions(cfg),
	})
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	return &App{
		api:       apiInstance,
		config:    cfg,
		out:       out,
		validator: validation.NewValidator(),
	}
}

// printf writes a line of command output.
func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// verbosef writes only when verbose output is enabled.
func (a *App) verbosef(format string, args ...interface{}) {
	if a.config != nil && a.config.Application.Verbose {
		a.printf(format, args...)
	}
}

// parseID parses a task or group id argument.
func (a *App) parseID(field, arg string) (uint32, error) {
	return a.validator.ParseID(field, arg)
}

func reportOptions(cfg *config.Config) services.ReportOptions {
	return services.ReportOptions{
		UnknownGroup:  cfg.Display.UnknownGroup,
		TimeFormat:    cfg.Time.DisplayFormat,
		RelativeTimes: cfg.Display.RelativeTimes,
		ShowFlags:     cfg.Application.Verbose,
	}
}
