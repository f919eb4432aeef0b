package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"m365_collector/internal/api"
	"m365_collector/internal/config"
	"m365_collector/internal/domain"
	"m365_collector/internal/pricing"
	"m365_collector/internal/scheduler"
)

func (c *collectCommand) Execute([]string) error {
	ctx, cancel := signalContext(setupLogger("info"))
	defer cancel()

	a, err := newApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	collector, closePublisher, err := a.newCollector(ctx)
	if err != nil {
		return err
	}
	defer closePublisher()

	interval := a.cfg.Collection.Interval
	if c.Interval > 0 {
		interval = c.Interval
	}

	if interval > 0 {
		if c.RunID != 0 {
			return errors.New("--run cannot be combined with an interval")
		}
		a.logger.Info("starting m365 collector", "interval", interval)
		sched := scheduler.NewScheduler(collector, interval, a.cfg.Collection.RunTimeout, a.logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scheduler: %w", err)
		}
		return nil
	}

	runCtx, cancelRun := context.WithTimeout(ctx, a.cfg.Collection.RunTimeout)
	defer cancelRun()

	var summary *domain.RunSummary
	if c.RunID != 0 {
		summary, err = collector.Resume(runCtx, c.RunID)
	} else {
		summary, err = collector.Collect(runCtx)
	}
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	a.logger.Info("run finished",
		"run_id", summary.RunID,
		"resumed", summary.Resumed,
		"records", summary.Records(),
		"retries", summary.Retries,
		"duration", summary.Duration,
	)
	return nil
}

func (c *statusCommand) Execute([]string) error {
	ctx, cancel := signalContext(setupLogger("info"))
	defer cancel()

	a, err := newApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	statusService := a.newStatusService()

	var status *domain.CollectionStatus
	if c.RunID != 0 {
		status, err = statusService.GetStatus(ctx, c.RunID)
	} else {
		status, err = statusService.LatestStatus(ctx)
	}
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(status)
}

func (c *updatePricesCommand) Execute([]string) error {
	ctx, cancel := signalContext(setupLogger("info"))
	defer cancel()

	a, err := newApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	updater := pricing.NewUpdater(pricing.DefaultCatalog(), a.licenses, a.prices, a.txManager, a.logger)
	result, err := updater.Update(ctx)
	if err != nil {
		return err
	}

	if len(result.Unknown) > 0 {
		a.logger.Warn("skus without pricing data, set them manually",
			"skus", strings.Join(result.Unknown, ","),
		)
	}
	return nil
}

func (c *serveCommand) Execute([]string) error {
	ctx, cancel := signalContext(setupLogger("info"))
	defer cancel()

	a, err := newApp(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := a.cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	router := api.NewRouter(api.NewHandler(a.newStatusService()), a.logger, a.cfg.Server.Debug)
	server := api.NewServer(addr, router, a.cfg.Server.ShutdownTimeout, a.logger)

	if !c.Collect {
		return server.Run(ctx)
	}

	interval := a.cfg.Collection.Interval
	if interval <= 0 {
		return errors.New("--collect needs collection.interval to be set")
	}

	collector, closePublisher, err := a.newCollector(ctx)
	if err != nil {
		return err
	}
	defer closePublisher()

	sched := scheduler.NewScheduler(collector, interval, a.cfg.Collection.RunTimeout, a.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx)
	})
	g.Go(func() error {
		if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scheduler: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Execute reads the secret from the first line of stdin so it never shows up
// in shell history.
func (c *setSecretCommand) Execute([]string) error {
	service := c.KeyringService
	if service == "" {
		service = config.DefaultKeyringService
	}

	fmt.Fprint(os.Stderr, "Client secret: ")
	secret, err := readSecret()
	if err != nil {
		return fmt.Errorf("read secret: %w", err)
	}
	if secret == "" {
		return errors.New("client secret is empty")
	}

	cfg := &config.Config{Graph: config.GraphConfig{ClientID: c.ClientID, KeyringService: service}}
	if err := cfg.StoreClientSecret(secret); err != nil {
		return err
	}

	setupLogger("info").Info("client secret stored in keyring", "service", service, "client_id", c.ClientID)
	return nil
}

// readSecret reads without echo from a terminal and falls back to a plain
// line read for piped input.
func readSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
