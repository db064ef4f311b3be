package i18n

import (
	"context"
	"fmt"
	"sync"
)

// Persister stores preference changes so they survive a restart.
type Persister interface {
	SaveLocale(ctx context.Context, locale string) error
	SaveCurrency(ctx context.Context, currency string) error
}

// State is the process-wide presentation state: the active locale and
// currency. It is loaded once at startup and changed by user action.
type State struct {
	mu       sync.RWMutex
	locale   Locale
	currency string
	persist  Persister
}

// NewState returns a State seeded with the stored values. Unsupported values
// fall back to English and USD.
func NewState(locale, currencyCode string, p Persister) *State {
	l, ok := Parse(locale)
	if !ok {
		l = English
	}
	if _, err := ParseCurrency(currencyCode); err != nil {
		currencyCode = "USD"
	}
	return &State{locale: l, currency: currencyCode, persist: p}
}

// Locale returns the active locale.
func (s *State) Locale() Locale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// Currency returns the active currency code.
func (s *State) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// Translate looks up key in the active locale.
func (s *State) Translate(key string) string {
	return Translate(s.Locale(), key)
}

// SetLocale persists and activates a locale. The state is unchanged if the
// locale is unsupported or cannot be stored.
func (s *State) SetLocale(ctx context.Context, locale string) error {
	l, ok := Parse(locale)
	if !ok {
		return fmt.Errorf("unsupported locale %q", locale)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persist != nil {
		if err := s.persist.SaveLocale(ctx, string(l)); err != nil {
			return fmt.Errorf("saving locale: %w", err)
		}
	}
	s.locale = l
	return nil
}

// SetCurrency persists and activates a currency.
func (s *State) SetCurrency(ctx context.Context, code string) error {
	if _, err := ParseCurrency(code); err != nil {
		return fmt.Errorf("currency %q: %w", code, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persist != nil {
		if err := s.persist.SaveCurrency(ctx, code); err != nil {
			return fmt.Errorf("saving currency: %w", err)
		}
	}
	s.currency = code
	return nil
}
