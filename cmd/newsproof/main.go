package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsproof/pkg/categorize"
	"github.com/umputun/newsproof/pkg/checker"
	"github.com/umputun/newsproof/pkg/config"
	"github.com/umputun/newsproof/pkg/content"
	"github.com/umputun/newsproof/pkg/embed"
	"github.com/umputun/newsproof/pkg/feed"
	"github.com/umputun/newsproof/pkg/index"
	"github.com/umputun/newsproof/pkg/normalize"
	"github.com/umputun/newsproof/pkg/scheduler"
	"github.com/umputun/newsproof/pkg/store"
	"github.com/umputun/newsproof/pkg/trust"
	"github.com/umputun/newsproof/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

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
		lgr.Printf("[ERROR] can't load config %s: %v", opts.Config, err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, cfg.Embedding.APIKey)

	lgr.Printf("[INFO] starting newsproof version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] newsproof failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires all components together and blocks until the context is done
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	db, err := store.NewSQLite(store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	embedder := makeEmbedder(cfg)
	vectorIndex := index.New(embedder)

	trustAdjuster := trust.New(trust.Config{
		VoteStep: cfg.Trust.VoteStep,
		MinBound: cfg.Trust.MinBound,
		MaxBound: cfg.Trust.MaxBound,
	})

	normalizer := normalize.New()
	categorizer := categorize.New(normalizer, 0)

	ingestor := feed.NewIngestor(feed.IngestorParams{
		Parser:      feed.NewParser(cfg.Server.Timeout, "newsproof/"+revision),
		Extractor:   content.NewHTTPExtractor(cfg.Extraction.Timeout, cfg.Extraction.UserAgent, cfg.Extraction.MinTextLength),
		Store:       db,
		Normalizer:  normalizer,
		Categorizer: categorizer,
		Sources:     cfg.Sources,
		MaxWorkers:  cfg.Schedule.MaxWorkers,
	})

	sched := scheduler.NewScheduler(ingestor, vectorIndex, db, trustAdjuster,
		scheduler.Config{UpdateInterval: cfg.Schedule.UpdateInterval})
	sched.Start(ctx)
	defer sched.Stop()

	factChecker := checker.New(normalizer, vectorIndex, trustAdjuster, db, checker.Config{
		TopK:              cfg.Verdict.TopK,
		TopN:              cfg.Verdict.TopN,
		Verified:          cfg.Verdict.Verified,
		PartiallyVerified: cfg.Verdict.PartiallyVerified,
		Disputed:          cfg.Verdict.Disputed,
		RelevanceFloor:    cfg.Verdict.RelevanceFloor,
	})

	srv := server.New(server.Params{
		Config:    cfg,
		Checker:   factChecker,
		Store:     db,
		Trust:     trustAdjuster,
		Scheduler: sched,
		Index:     vectorIndex,
		Version:   revision,
		Debug:     debug,
	})

	return srv.Run(ctx)
}

// makeEmbedder picks the embedding backend. Without an endpoint the local
// hash embedder keeps the pipeline functional for dev and tests.
func makeEmbedder(cfg *config.Config) embed.Embedder {
	if cfg.Embedding.Endpoint == "" && cfg.Embedding.APIKey == "" {
		lgr.Printf("[WARN] no embedding endpoint configured, using local hash embedder")
		return embed.NewHashEmbedder(cfg.Embedding.Dimension)
	}
	return embed.NewOpenAIEmbedder(embed.Config{
		Endpoint:  cfg.Embedding.Endpoint,
		APIKey:    cfg.Embedding.APIKey,
		Model:     cfg.Embedding.Model,
		Dimension: cfg.Embedding.Dimension,
		Timeout:   cfg.Embedding.Timeout,
	})
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	for _, s := range secs {
		if s != "" {
			logOpts = append(logOpts, lgr.Secret(s))
		}
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
