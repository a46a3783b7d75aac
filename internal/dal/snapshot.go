package dal

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/matching"
)

// providerSnapshot is one immutable generation of the provider dataset.
type providerSnapshot struct {
	providers []matching.Provider
	loadedAt  time.Time
}

// ProviderSnapshot holds the provider dataset behind an atomic pointer.
// Requests read whichever generation is current; a reload swaps the whole
// snapshot, so in-flight requests keep the generation they started with
// and never observe in-place edits. Implements matching.ProviderSource.
type ProviderSnapshot struct {
	current atomic.Pointer[providerSnapshot]
}

// NewProviderSnapshot creates an empty snapshot holder.
func NewProviderSnapshot() *ProviderSnapshot {
	s := &ProviderSnapshot{}
	s.current.Store(&providerSnapshot{})
	return s
}

// Providers returns the current generation. The returned slice is shared
// between requests and must be treated as read-only.
func (s *ProviderSnapshot) Providers() []matching.Provider {
	return s.current.Load().providers
}

// Len returns the size of the current generation.
func (s *ProviderSnapshot) Len() int {
	return len(s.current.Load().providers)
}

// LoadedAt returns when the current generation was installed.
func (s *ProviderSnapshot) LoadedAt() time.Time {
	return s.current.Load().loadedAt
}

// Replace atomically installs a new generation.
func (s *ProviderSnapshot) Replace(providers []matching.Provider) {
	s.current.Store(&providerSnapshot{
		providers: providers,
		loadedAt:  time.Now(),
	})
}

// ReloadFrom loads the full provider collection and installs it as the new
// generation. On error the previous generation stays in place.
func (s *ProviderSnapshot) ReloadFrom(ctx context.Context, providers *ProviderModel) (int, error) {
	loaded, err := providers.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	s.Replace(loaded)
	log.Info().
		Int("providers", len(loaded)).
		Msg("Provider snapshot installed")
	return len(loaded), nil
}
