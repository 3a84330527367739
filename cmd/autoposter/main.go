package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/galodniy13-art/tg-autoposter-saas/pkg/bot"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/config"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/domain"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/feed"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/llm"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/post"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/publisher"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/scheduler"
	"github.com/galodniy13-art/tg-autoposter-saas/pkg/store"
	"github.com/galodniy13-art/tg-autoposter-saas/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"autoposter.yml" description:"config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't load config %s: %v\n", opts.Config, err)
		os.Exit(1)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Telegram.Token, cfg.LLM.APIKey)

	log.Printf("[INFO] starting autoposter version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, cfg, opts)
	cancel()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ERROR] autoposter failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the components and drives them until the context is canceled
func run(ctx context.Context, cfg *config.Config, opts Opts) error {
	st, err := store.New(ctx, store.Config{
		DSN:             cfg.Storage.DSN,
		MaxOpenConns:    cfg.Storage.MaxOpenConns,
		MaxIdleConns:    cfg.Storage.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Storage.ConnMaxLifetime) * time.Second,
	}, domain.Defaults{
		IntervalMinutes:     cfg.Tenants.IntervalMinutes,
		DailyLimit:          cfg.Tenants.DailyLimit,
		MaxDedupe:           cfg.Tenants.MaxDedupe,
		FetchEntriesPerFeed: cfg.Tenants.FetchEntriesPerFeed,
	})
	if err != nil {
		return fmt.Errorf("open tenant store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("[WARN] store close: %v", err)
		}
	}()

	generator, err := llm.New(cfg.GetLLMConfig())
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}
	composer := post.NewComposer(generator, cfg.LLM.StylePrompt)

	selector := feed.NewSelector(feed.NewHTTPFetcher(30 * time.Second))

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = false
	log.Printf("[INFO] authorized as @%s", api.Self.UserName)

	// separate connection for publishing, with a hard timeout. the long-poll
	// client above can't have one, it holds the update request open.
	pubAPI, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.Token, tgbotapi.APIEndpoint, publisher.HTTPClient())
	if err != nil {
		return fmt.Errorf("connect publisher to telegram: %w", err)
	}

	pub := publisher.NewTelegram(pubAPI, api.Self.ID)

	sched := scheduler.NewScheduler(st, selector, composer, pub,
		scheduler.Config{TickInterval: cfg.Autopost.TickInterval})

	tgBot := bot.New(bot.Params{
		API:         api,
		Store:       st,
		Previewer:   sched,
		Runner:      sched,
		Verifier:    pub,
		Admins:      cfg.Admins,
		PayContacts: cfg.PayContacts,
		Timeout:     cfg.Telegram.Timeout,
	})

	srv := server.New(cfg, st, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		if err := tgBot.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("bot: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	for _, s := range secs {
		if s != "" {
			logOpts = append(logOpts, lgr.Secret(s))
		}
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
