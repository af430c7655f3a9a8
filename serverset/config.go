package serverset

import (
	"time"

	kitlog "github.com/go-kit/log"
)

type Config struct {
	// RootPath is the znode whose children are the serverset members.
	RootPath string

	// PollInterval is the delay between reconciliation cycles.
	PollInterval time.Duration

	// FetchConcurrency bounds the number of member znodes fetched in
	// parallel within a single cycle.
	FetchConcurrency int

	Logger kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		Logger:           kitlog.NewNopLogger(),
		PollInterval:     5 * time.Second,
		FetchConcurrency: 8,
	}
}
