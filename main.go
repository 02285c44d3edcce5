package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/thetooth/zing/config"
	"github.com/thetooth/zing/probe"
)

const (
	envConfigPath = "ZING_CONFIG"
	envLogLevel   = "ZING_LOG_LEVEL"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, errHelp) {
		os.Exit(0)
	}
	if err != nil {
		logrus.Fatal("Error: ", err)
	}
}

func run(args []string, out io.Writer) (err error) {
	cfg := config.Defaults()
	if path := os.Getenv(envConfigPath); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return
		}
	}
	if level := os.Getenv(envLogLevel); level != "" {
		cfg.LogLevel = level
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return
	}
	logrus.SetLevel(lvl)

	cfg, err = parseArgs(args, cfg, out)
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// Interrupts abort the in-flight connect, the run ends like any other failure
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	g.Go(func() error {
		defer cancel()
		_, err := probe.New(out).Run(ctx, cfg)
		return err
	})
	g.Go(func() error {
		select {
		case s := <-sig:
			return fmt.Errorf("interrupted by %v", s)
		case <-ctx.Done():
			return nil
		}
	})

	return g.Wait()
}
