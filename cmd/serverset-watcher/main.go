package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
)

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	wg := sync.WaitGroup{}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger, closeLogger := setupLogger()

	// No degraded start: a process that cannot reach zookeeper is useless
	// as a membership source.
	client, closeClient, err := setupZooKeeper(logger)
	if err != nil {
		level.Error(logger).Log("msg", "unable to connect to zookeeper", "err", err)
		os.Exit(1)
	}

	watcher, closeWatcher := setupWatcher(&wg, client, logger)
	_, closeHTTPServer := setupHTTPServer(&wg, watcher, logger)

	// Components are shut down in a particular order.
	shutdownOrder := []shutdownFunc{
		closeHTTPServer,
		closeWatcher,
		closeClient,
		closeLogger,
	}

	if opts.Announce.Enabled {
		_, closeAnnouncer, err := setupAnnouncer(client, logger)
		if err != nil {
			level.Error(logger).Log("msg", "unable to announce member", "err", err)
			os.Exit(1)
		}

		shutdownOrder = append([]shutdownFunc{closeAnnouncer}, shutdownOrder...)
	}

	level.Info(logger).Log("msg", "serverset watcher started", "path", opts.Serverset.Path)

	<-interrupt
	level.Info(logger).Log("msg", "received interrupt signal, shutting down")

	for _, f := range shutdownOrder {
		if err := f(context.Background()); err != nil {
			level.Error(logger).Log("msg", "failed to shutdown component", "err", err)
		}
	}

	wg.Wait()
}
