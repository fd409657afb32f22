// Package main is the entry point for the clipstack clipboard watcher.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/clipstack/internal/clipboard"
	"github.com/dshills/clipstack/internal/config"
	"github.com/dshills/clipstack/internal/config/watcher"
	"github.com/dshills/clipstack/internal/manager"
	"github.com/dshills/clipstack/internal/poll"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath    string
	capacity      int
	pollEvery     time.Duration
	showVersion   bool
	showHistory   bool
	showRegisters bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("clipstack %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.capacity > 0 {
		cfg.History.Capacity = opts.capacity
	}
	if opts.pollEvery > 0 {
		cfg.Poll.Interval = config.Duration(opts.pollEvery)
	}

	clip := clipboard.NewSystem()
	m := manager.New(clip,
		manager.WithCapacity(cfg.History.Capacity),
		manager.WithDuplicatePolicy(cfg.History.AllowDuplicates),
		manager.WithExplicitYank(cfg.Yank.ExplicitMode),
		manager.WithPreviewWidth(cfg.Display.PreviewWidth),
	)

	// Seed the history with whatever the clipboard already holds.
	if text, err := clip.Get(); err == nil {
		m.ObserveExternal(text)
	}

	if opts.showHistory {
		fmt.Print(m.DescribeHistory())
		return 0
	}
	if opts.showRegisters {
		fmt.Print(m.DescribeRegisters())
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if opts.configPath != "" {
		cw := watcher.New(opts.configPath,
			func(cfg config.Config) {
				m.SetCapacity(cfg.History.Capacity)
			},
			watcher.WithErrorHandler(func(err error) {
				fmt.Fprintf(os.Stderr, "Warning: config reload: %v\n", err)
			}),
		)
		if err := cw.Start(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch disabled: %v\n", err)
		} else {
			defer cw.Stop()
		}
	}

	p := poll.New(clip, &announcer{m: m},
		poll.WithInterval(cfg.Poll.Interval.Std()),
		poll.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: clipboard read: %v\n", err)
		}),
	)
	if err := p.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: starting poller: %v\n", err)
		return 1
	}
	defer p.Stop()

	fmt.Println("clipstack: watching clipboard (Ctrl-C to stop)")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	fmt.Println()
	fmt.Print(m.DescribeHistory())
	return 0
}

// announcer records observed clipboard text and prints each capture.
type announcer struct {
	m *manager.Manager
}

// ObserveExternal implements poll.Recorder.
func (a *announcer) ObserveExternal(text string) bool {
	if !a.m.ObserveExternal(text) {
		return false
	}
	if cur, ok := a.m.Current(); ok {
		fmt.Printf("captured: %s\n", cur.Preview(0))
	}
	return true
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.capacity, "capacity", 0, "History capacity (overrides config)")
	flag.DurationVar(&opts.pollEvery, "poll", 0, "Clipboard poll interval (overrides config)")
	flag.BoolVar(&opts.showHistory, "show", false, "Print the history panel and exit")
	flag.BoolVar(&opts.showRegisters, "show-registers", false, "Print the register panel and exit")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&showHelp, "help", false, "Print usage and exit")
	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	return opts
}
