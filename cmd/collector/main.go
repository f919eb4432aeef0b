package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
)

type options struct {
	Config string `short:"c" long:"config" env:"M365_CONFIG" default:"config.yaml" description:"Path to config file"`

	Collect      collectCommand      `command:"collect" description:"Collect licenses and user activity from Microsoft Graph"`
	Status       statusCommand       `command:"status" description:"Show the progress of a collection run"`
	UpdatePrices updatePricesCommand `command:"update-prices" description:"Rebuild the SKU price table from collected licenses"`
	Serve        serveCommand        `command:"serve" description:"Serve the collection status API"`
	SetSecret    setSecretCommand    `command:"set-secret" description:"Store the Graph client secret in the OS keyring"`
}

type collectCommand struct {
	RunID    int64         `long:"run" description:"Resume this run instead of starting or auto-resuming one"`
	Interval time.Duration `long:"interval" description:"Collect repeatedly at this interval (overrides config)"`
}

type statusCommand struct {
	RunID int64 `long:"run" description:"Run to report on (default: most recent)"`
}

type updatePricesCommand struct{}

type serveCommand struct {
	Addr    string `long:"addr" description:"Listen address (overrides config)"`
	Collect bool   `long:"collect" description:"Also run scheduled collections at collection.interval"`
}

type setSecretCommand struct {
	ClientID       string `long:"client-id" required:"true" description:"Graph application (client) ID"`
	KeyringService string `long:"keyring-service" description:"Keyring service name"`
}

var opts options

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			// go-flags already printed the usage error.
			os.Exit(1)
		}
		setupLogger("info").Error("command failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, handlerOpts)
	return slog.New(handler)
}
