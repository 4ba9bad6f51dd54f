// Eventlog is a terminal client for the event log service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dhis2-sre/event-log/internal/log"
	"github.com/dhis2-sre/event-log/internal/tui"
	"github.com/dhis2-sre/event-log/pkg/client"
	"github.com/dhis2-sre/event-log/pkg/config"
	"github.com/dhis2-sre/event-log/pkg/eventview"
	"github.com/rivo/tview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg := config.ProvideClientConfig()

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %v", err)
		}
		defer f.Close()
		w = f
	}
	logger := log.NewLogger(w, cfg.Logging.Level, false)

	c := client.New(cfg.BaseURL, client.WithLogger(logger))
	controller := eventview.New(c, logger)

	app := tview.NewApplication()
	view := tui.New(app, controller, logger)
	view.Load(context.Background())

	logger.Info("Starting", "baseUrl", c.BaseURL())
	return app.SetRoot(view.Root(), true).EnableMouse(true).Run()
}
