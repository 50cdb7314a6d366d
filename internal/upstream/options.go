package upstream

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options are used to control behaviour of the client
type Options func(*clientOptions)

type clientOptions struct {
	baseURL  string
	client   *http.Client
	logger   *zap.Logger
	recorder Recorder
}

func evalOptions(options ...Options) (opts *clientOptions) {
	opts = &clientOptions{
		baseURL: "https://api.adorbit.com",
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(opts)
	}
	return
}

// BaseURL sets the API root. A trailing slash is dropped.
func BaseURL(baseURL string) Options {
	return func(ro *clientOptions) {
		ro.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// HTTPClient replaces the underlying http.Client.
func HTTPClient(client *http.Client) Options {
	return func(ro *clientOptions) {
		if client != nil {
			ro.client = client
		}
	}
}

// Timeout bounds each request. Zero disables the limit.
func Timeout(timeout time.Duration) Options {
	return func(ro *clientOptions) {
		c := *ro.client
		c.Timeout = timeout
		ro.client = &c
	}
}

// Logger sets the logger for call tracing.
func Logger(logger *zap.Logger) Options {
	return func(ro *clientOptions) {
		if logger != nil {
			ro.logger = logger
		}
	}
}

// WithRecorder counts outbound calls, e.g. into observability.Metrics.
func WithRecorder(recorder Recorder) Options {
	return func(ro *clientOptions) {
		ro.recorder = recorder
	}
}
