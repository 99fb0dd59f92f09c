package go_netaxept

import (
	"errors"
	"net/http"
	"time"

	"github.com/stremovskyy/go-netaxept/consts"
	"github.com/stremovskyy/go-netaxept/log"
	"github.com/stremovskyy/recorder"
)

type Option func(*config) error

type config struct {
	baseURL         string
	terminalBaseURL string
	testEnvironment bool

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool

	retryAttempts int
	retryWait     time.Duration
	recorder      recorder.Recorder
}

func defaultConfig() config {
	return config{
		// Netaxept answers well within this; the reference integrations
		// use the same value.
		httpClient:    &http.Client{Timeout: 8 * time.Second},
		logger:        log.NewDefault(),
		retryAttempts: 1,
		retryWait:     300 * time.Millisecond,
	}
}

// resolvedBaseURL picks the endpoint host: an explicit override wins,
// otherwise the test flag selects between the two fixed environments.
func (c config) resolvedBaseURL() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	if c.testEnvironment {
		return consts.TestBaseURL
	}
	return consts.ProductionBaseURL
}

func (c config) resolvedTerminalBaseURL() string {
	if c.terminalBaseURL != "" {
		return c.terminalBaseURL
	}
	return c.resolvedBaseURL()
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithClient is an alias of WithHTTPClient.
func WithClient(client *http.Client) Option {
	return WithHTTPClient(client)
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables verbose request/response body logging for debugging.
//
// Disabled by default because bodies may contain sensitive data.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a traffic recorder.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}

// WithRetry enables retrying transient transport failures. The default is
// a single attempt: a failed call surfaces immediately.
func WithRetry(attempts int, wait time.Duration) Option {
	return func(cfg *config) error {
		if attempts <= 0 {
			return errors.New("retry attempts must be > 0")
		}
		if wait <= 0 {
			return errors.New("retry wait must be > 0")
		}
		cfg.retryAttempts = attempts
		cfg.retryWait = wait
		return nil
	}
}

// WithTestEnvironment routes calls to the Netaxept test environment
// instead of production.
func WithTestEnvironment(enabled bool) Option {
	return func(cfg *config) error {
		cfg.testEnvironment = enabled
		return nil
	}
}

// WithBaseURL overrides the endpoint host entirely. Meant for pointing the
// SDK at a mock gateway in tests.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			return errors.New("base url is empty")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithTerminalBaseURL overrides the host used for hosted terminal URLs
// only. Defaults to the endpoint host.
func WithTerminalBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			return errors.New("terminal base url is empty")
		}
		cfg.terminalBaseURL = baseURL
		return nil
	}
}
