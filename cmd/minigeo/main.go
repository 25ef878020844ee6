package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/mmadfox/minigeo"
	"github.com/mmadfox/minigeo/internal/config"
	"go.uber.org/zap"
)

func main() {
	fs := flag.NewFlagSet("minigeo", flag.ExitOnError)
	var (
		confFilename = fs.String("config", "minigeo.yml", "Sets configuration filename. Default is minigeo.yml in the current folder.")
	)
	fs.Usage = usageFor(fs, os.Args[0]+" [flags] < coordinates")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Printf("[ERROR] fs.Parse(%v) => %v\n", os.Args[1:], err)
		os.Exit(1)
	}

	envConfFilename := os.Getenv("CONFIG")
	if len(envConfFilename) > 0 {
		*confFilename = envConfFilename
	}
	conf, err := config.FromFile(*confFilename)
	if err != nil {
		fmt.Printf("[ERROR] config.FromFile(%s) => %v\n", *confFilename, err)
		os.Exit(1)
	}

	logger, err := conf.BuildLogger()
	if err != nil {
		fmt.Printf("[ERROR] conf.BuildLogger() => %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugarLogger := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rois, err := loadROIs(ctx, conf, logger)
	if err != nil {
		sugarLogger.Errorf("failed to load rois: %v", err)
		os.Exit(1)
	}

	locator := minigeo.NewLocator(
		minigeo.WithIndex(conf.IndexFactory(logger)),
		minigeo.WithLogger(logger),
	)
	if err := locator.Load(rois); err != nil {
		sugarLogger.Errorf("failed to index rois: %v", err)
		os.Exit(1)
	}

	done := make(chan error, 1)
	go func() {
		done <- resolve(os.Stdin, os.Stdout, locator, logger)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		logger.Info("shutdown: interrupted")
	}

	stats := locator.Stats()
	logger.Info("exit",
		zap.Uint64("rois", stats.ROIs),
		zap.Uint64("lookups", stats.Lookups),
		zap.Uint64("candidate_queries", stats.CandidateQueries),
		zap.Uint64("candidates", stats.Candidates),
		zap.Uint64("hits", stats.Hits),
		zap.Error(err),
	)
	if err != nil {
		os.Exit(1)
	}
}

func usageFor(fs *flag.FlagSet, short string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "USAGE\n")
		fmt.Fprintf(os.Stderr, "  %s\n", short)
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "FLAGS\n")
		w := tabwriter.NewWriter(os.Stderr, 0, 2, 2, ' ', 0)
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(w, "\t-%s %s\t%s\n", f.Name, f.DefValue, f.Usage)
		})
		w.Flush()
		fmt.Fprintf(os.Stderr, "\n")
	}
}
