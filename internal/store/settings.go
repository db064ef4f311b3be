package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cast"

	"github.com/erazemk/blagajna/internal/model"
)

// Setting keys.
const (
	settingJWTSecret = "jwt_secret"
	settingLocale    = "locale"
	settingCurrency  = "currency"
	settingTaxRate   = "tax_rate"
)

// GetJWTSecret retrieves the JWT secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		settingJWTSecret, hex.EncodeToString(buf),
	)
	if err != nil {
		return "", fmt.Errorf("storing jwt_secret: %w", err)
	}

	secret, _, err := getSetting(ctx, db, settingJWTSecret)
	if err != nil {
		return "", err
	}
	return secret, nil
}

// GetPreferences returns the stored presentation preferences. Missing or
// malformed values fall back to the defaults.
func GetPreferences(ctx context.Context, db *sql.DB) (*model.Preferences, error) {
	prefs := &model.Preferences{
		Locale:   model.DefaultLocale,
		Currency: model.DefaultCurrency,
		TaxRate:  model.DefaultTaxRate,
	}

	if v, ok, err := getSetting(ctx, db, settingLocale); err != nil {
		return nil, err
	} else if ok && v != "" {
		prefs.Locale = v
	}

	if v, ok, err := getSetting(ctx, db, settingCurrency); err != nil {
		return nil, err
	} else if ok && v != "" {
		prefs.Currency = v
	}

	if v, ok, err := getSetting(ctx, db, settingTaxRate); err != nil {
		return nil, err
	} else if ok {
		if rate, err := cast.ToFloat64E(v); err == nil {
			prefs.TaxRate = rate
		}
	}

	return prefs, nil
}

// SetLocale stores the selected locale.
func SetLocale(ctx context.Context, db *sql.DB, locale string) error {
	return setSetting(ctx, db, settingLocale, locale)
}

// SetCurrency stores the selected currency code.
func SetCurrency(ctx context.Context, db *sql.DB, currency string) error {
	return setSetting(ctx, db, settingCurrency, currency)
}

// SetTaxRate stores the configured tax rate in percent.
func SetTaxRate(ctx context.Context, db *sql.DB, rate float64) error {
	return setSetting(ctx, db, settingTaxRate, strconv.FormatFloat(rate, 'f', -1, 64))
}

// PreferenceWriter persists preference changes made through the UI.
type PreferenceWriter struct {
	DB *sql.DB
}

// SaveLocale implements i18n.Persister.
func (w PreferenceWriter) SaveLocale(ctx context.Context, locale string) error {
	return SetLocale(ctx, w.DB, locale)
}

// SaveCurrency implements i18n.Persister.
func (w PreferenceWriter) SaveCurrency(ctx context.Context, currency string) error {
	return SetCurrency(ctx, w.DB, currency)
}

func getSetting(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", key, err)
	}
	return value, true, nil
}

func setSetting(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}
