package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/adapter/client"
	"github.com/ShadiBahaa/sentiment-analyzer-mistral/internal/launcher"
)

// App is the launcher command-line application
type App struct {
	logger *zap.Logger
}

// NewApp creates the launcher application
func NewApp() *App {
	logger, _ := zap.NewDevelopment()
	return &App{logger: logger}
}

func (app *App) flags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:    "api-bin",
			Value:   "./api",
			Usage:   "path to the API service binary",
			EnvVars: []string{"SENTIMENT_API_BIN"},
		},
		&cli.PathFlag{
			Name:    "web-bin",
			Value:   "./web",
			Usage:   "path to the web UI binary",
			EnvVars: []string{"SENTIMENT_WEB_BIN"},
		},
		&cli.IntFlag{
			Name:    "api-port",
			Value:   8000,
			Usage:   "port for the API service",
			EnvVars: []string{"SENTIMENT_SERVER_PORT"},
		},
		&cli.IntFlag{
			Name:    "web-port",
			Value:   8501,
			Usage:   "port for the web UI",
			EnvVars: []string{"SENTIMENT_WEB_PORT"},
		},
		&cli.StringFlag{
			Name:    "ollama-url",
			Value:   "http://localhost:11434",
			Usage:   "base URL of the Ollama service",
			EnvVars: []string{"SENTIMENT_OLLAMA_URL"},
		},
		&cli.StringFlag{
			Name:    "model",
			Value:   "mistral",
			Usage:   "model used for sentiment classification",
			EnvVars: []string{"SENTIMENT_OLLAMA_MODEL"},
		},
		&cli.DurationFlag{
			Name:  "startup-timeout",
			Value: 30 * time.Second,
			Usage: "how long to wait for each service to become ready",
		},
		&cli.BoolFlag{
			Name:  "skip-checks",
			Usage: "start even when Ollama or the model are unavailable",
		},
	}
}

// checkRequirements verifies the child binaries and the Ollama service
func (app *App) checkRequirements(ctx context.Context, c *cli.Context) error {
	logger := app.logger

	for _, bin := range []string{c.Path("api-bin"), c.Path("web-bin")} {
		if _, err := os.Stat(bin); err != nil {
			return fmt.Errorf("missing binary %s: %w", bin, err)
		}
	}
	logger.Info("Binaries found")

	ollama := client.NewOllamaClient(c.String("ollama-url"), 3*time.Second)
	if err := ollama.Ping(ctx); err != nil {
		if c.Bool("skip-checks") {
			logger.Warn("Cannot connect to Ollama, continuing anyway", zap.Error(err))
			return nil
		}
		return fmt.Errorf("cannot connect to Ollama, make sure it is running (ollama serve): %w", err)
	}
	logger.Info("Ollama is running")

	model := c.String("model")
	ok, err := ollama.HasModel(ctx, model)
	switch {
	case err != nil:
		// Listing models failed after a successful ping, treat it as
		// inconclusive rather than fatal
		logger.Warn("Could not verify the model, continuing anyway",
			zap.String("model", model), zap.Error(err))
	case !ok:
		if !c.Bool("skip-checks") {
			return fmt.Errorf("model %q not found, run: ollama pull %s", model, model)
		}
		logger.Warn("Model not found, continuing anyway", zap.String("model", model))
	default:
		logger.Info("Model available", zap.String("model", model))
	}

	return nil
}

func (app *App) run(c *cli.Context) error {
	logger := app.logger
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.checkRequirements(ctx, c); err != nil {
		return err
	}

	apiPort := c.Int("api-port")
	webPort := c.Int("web-port")
	apiURL := fmt.Sprintf("http://localhost:%d", apiPort)
	webURL := fmt.Sprintf("http://localhost:%d", webPort)
	timeout := c.Duration("startup-timeout")

	sup := launcher.NewSupervisor(logger)
	defer sup.StopAll()

	// Start the API service and wait for it
	err := sup.Start(launcher.Process{
		Name: "api",
		Path: c.Path("api-bin"),
		Env: []string{
			fmt.Sprintf("SENTIMENT_SERVER_PORT=%d", apiPort),
			"SENTIMENT_OLLAMA_URL=" + c.String("ollama-url"),
			"SENTIMENT_OLLAMA_MODEL=" + c.String("model"),
		},
	})
	if err != nil {
		return err
	}

	if err := launcher.WaitReady(ctx, apiURL+"/ready", timeout); err != nil {
		return fmt.Errorf("API service is not ready: %w", err)
	}
	logger.Info("API service is ready", zap.String("url", apiURL))

	// Start the web UI and wait for it
	err = sup.Start(launcher.Process{
		Name: "web",
		Path: c.Path("web-bin"),
		Env: []string{
			fmt.Sprintf("SENTIMENT_WEB_PORT=%d", webPort),
			"SENTIMENT_WEB_API_URL=" + apiURL,
		},
	})
	if err != nil {
		return err
	}

	if err := launcher.WaitReady(ctx, webURL+"/health", timeout); err != nil {
		return fmt.Errorf("web UI is not ready: %w", err)
	}

	logger.Info("Application is running",
		zap.String("frontend", webURL),
		zap.String("backend", apiURL),
	)

	exit := sup.Wait(ctx)
	if exit.Name != "" {
		return fmt.Errorf("process %s died unexpectedly: %v", exit.Name, exit.Err)
	}

	logger.Info("Shutting down services...")
	return nil
}

func (app *App) cli() *cli.App {
	return &cli.App{
		Name:   "sentiment-analyzer",
		Usage:  "starts the sentiment analyzer API service and web UI",
		Flags:  app.flags(),
		Action: app.run,
	}
}

// Run runs the launcher with the given arguments
func (app *App) Run(args []string) error {
	return app.cli().Run(args)
}
