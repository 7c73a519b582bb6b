package beans

import "sync"

var (
	defaultMu       sync.RWMutex
	defaultProvider Provider
)

// SetDefaultProvider sets the process-wide Provider. This is similar to
// slog.SetDefault. Pass nil to remove the default provider.
func SetDefaultProvider(provider Provider) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultProvider = provider
}

// DefaultProvider returns the process-wide Provider, or nil if none was set.
func DefaultProvider() Provider {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultProvider
}
