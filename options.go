package ils

import "github.com/mwantia/ils/log"

type ListingOptions struct {
	LogLevel      log.Level
	LogFile       string
	NoTerminalLog bool
}

type ListingOption func(*ListingOptions) error

func newDefaultListingOptions() *ListingOptions {
	return &ListingOptions{
		LogLevel: log.Error,
	}
}

func WithLogLevel(logLevel log.Level) ListingOption {
	return func(opts *ListingOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithLogFile(logFile string) ListingOption {
	return func(opts *ListingOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithoutTerminalLog() ListingOption {
	return func(opts *ListingOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}
