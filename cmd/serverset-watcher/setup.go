package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/discotech/discotech/api"
	"github.com/discotech/discotech/internal/telemetry"
	"github.com/discotech/discotech/serverset"
	"github.com/discotech/discotech/zookeeper"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

func setupZooKeeper(logger kitlog.Logger) (*zookeeper.Client, shutdownFunc, error) {
	addr := net.JoinHostPort(opts.ZooKeeper.Host, strconv.Itoa(opts.ZooKeeper.Port))
	timeout := time.Duration(opts.ZooKeeper.SessionTimeout) * time.Second

	client, err := zookeeper.Connect(addr, timeout, kitlog.With(logger, "component", "zookeeper"))
	if err != nil {
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		client.Close()
		return nil
	}

	return client, shutdown, nil
}

func setupWatcher(wg *sync.WaitGroup, client *zookeeper.Client, logger kitlog.Logger) (*serverset.Watcher, shutdownFunc) {
	conf := serverset.DefaultConfig()
	conf.RootPath = opts.Serverset.Path
	conf.PollInterval = time.Duration(opts.Serverset.PollInterval) * time.Millisecond
	conf.FetchConcurrency = opts.Serverset.FetchConcurrency
	conf.Logger = kitlog.With(logger, "component", "watcher")

	watcher := serverset.New(client, conf)

	ctx, cancel := context.WithCancel(context.Background())

	wg.Add(1)

	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()

	shutdown := func(ctx context.Context) error {
		cancel()
		return nil
	}

	return watcher, shutdown
}

func setupHTTPServer(wg *sync.WaitGroup, watcher *serverset.Watcher, logger kitlog.Logger) (*http.Server, shutdownFunc) {
	router := api.CreateRouter(watcher.Registry())
	router.Handle("/metrics", telemetry.MetricsHandler())

	server := &http.Server{
		Addr:    opts.HTTP.BindAddr,
		Handler: router,
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "http server failed", "err", err)
		}
	}()

	shutdown := func(ctx context.Context) error {
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		return nil
	}

	return server, shutdown
}

func setupAnnouncer(client *zookeeper.Client, logger kitlog.Logger) (*serverset.Announcer, shutdownFunc, error) {
	announcer := serverset.NewAnnouncer(
		client,
		opts.Serverset.Path,
		opts.Announce.Name,
		kitlog.With(logger, "component", "announcer"),
	)

	member := serverset.Member{
		ServiceEndpoint: serverset.Endpoint{
			Host: opts.Announce.Host,
			Port: opts.Announce.Port,
		},
		Status: serverset.StatusAlive,
	}

	if err := announcer.Announce(member); err != nil {
		return nil, nil, err
	}

	shutdown := func(ctx context.Context) error {
		return announcer.Withdraw()
	}

	return announcer, shutdown, nil
}
