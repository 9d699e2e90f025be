// Package credentials supplies the API key used to authenticate requests.
//
// A file-backed Provider reads its secrets file on first use and keeps the key
// for the rest of its lifetime. Construct one Provider at startup and share it.
package credentials

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"

	"asyncopenai/internal/core"
)

// DefaultSecretsFile is read when no path is given, relative to the working directory.
const DefaultSecretsFile = "openai_secrets.json"

// Option configures a Provider
type Option func(*Provider)

// WithLogger sets the logger used to report the first successful load
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Provider loads the API key from a secrets file once and memoizes it.
// It is safe for concurrent use; concurrent first callers share a single read.
type Provider struct {
	path     string
	readFile func(name string) ([]byte, error)
	logger   *slog.Logger

	mu     sync.Mutex
	key    string
	loaded bool
}

// NewFileProvider returns a Provider reading path. An empty path means DefaultSecretsFile.
// The file is not touched until the first call to APIKey.
func NewFileProvider(path string, opts ...Option) *Provider {
	if path == "" {
		path = DefaultSecretsFile
	}
	p := &Provider{
		path:     path,
		readFile: os.ReadFile,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the secrets file location
func (p *Provider) Path() string {
	return p.path
}

// APIKey returns the memoized key, loading it on the first call.
// A failed load returns a configuration error and is not remembered: the
// next call reads the file again.
func (p *Provider) APIKey() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		return p.key, nil
	}

	key, err := p.load()
	if err != nil {
		return "", err
	}
	p.key = key
	p.loaded = true

	p.logger.Debug("api key loaded", "path", p.path, "fingerprint", Fingerprint(key))
	return key, nil
}

func (p *Provider) load() (string, error) {
	data, err := p.readFile(p.path)
	if err != nil {
		return "", core.NewConfigurationError(fmt.Sprintf("read secrets file %s: %v", p.path, err), err)
	}
	key, err := parseSecrets(p.path, data)
	if err != nil {
		return "", core.NewConfigurationError(fmt.Sprintf("parse secrets file %s: %v", p.path, err), err)
	}
	return key, nil
}

// Static is a key the caller already holds
type Static string

// APIKey returns the key, or a configuration error if it is empty
func (s Static) APIKey() (string, error) {
	if s == "" {
		return "", core.NewConfigurationError("api key is empty", nil)
	}
	return string(s), nil
}

// Fingerprint returns a short, non-reversible tag for key. It is the only
// form in which a key may be logged.
func Fingerprint(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))[:8]
}
