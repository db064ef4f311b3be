package store

import (
	"context"
	"testing"

	"github.com/erazemk/blagajna/internal/db"
	"github.com/erazemk/blagajna/internal/model"
)

func TestGetJWTSecret_GeneratesAndPersists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	secret1, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if len(secret1) != 64 { // 32 bytes = 64 hex chars
		t.Fatalf("expected 64 hex chars, got %d", len(secret1))
	}

	secret2, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatal(err)
	}
	if secret1 != secret2 {
		t.Fatalf("expected same secret, got %q and %q", secret1, secret2)
	}
}

func TestPreferencesDefaults(t *testing.T) {
	database := db.NewTestDB(t)

	prefs, err := GetPreferences(context.Background(), database)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if prefs.Locale != model.DefaultLocale || prefs.Currency != model.DefaultCurrency || prefs.TaxRate != model.DefaultTaxRate {
		t.Errorf("unexpected defaults: %+v", prefs)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	w := PreferenceWriter{DB: database}
	if err := w.SaveLocale(ctx, "ar"); err != nil {
		t.Fatalf("SaveLocale: %v", err)
	}
	if err := w.SaveCurrency(ctx, "ETB"); err != nil {
		t.Fatalf("SaveCurrency: %v", err)
	}
	if err := SetTaxRate(ctx, database, 15.5); err != nil {
		t.Fatalf("SetTaxRate: %v", err)
	}

	prefs, err := GetPreferences(ctx, database)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if prefs.Locale != "ar" {
		t.Errorf("expected locale 'ar', got %q", prefs.Locale)
	}
	if prefs.Currency != "ETB" {
		t.Errorf("expected currency 'ETB', got %q", prefs.Currency)
	}
	if prefs.TaxRate != 15.5 {
		t.Errorf("expected tax rate 15.5, got %v", prefs.TaxRate)
	}
}

func TestProductImages(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	data, mime, err := GetProductImage(ctx, database, "7")
	if err != nil || data != nil || mime != "" {
		t.Fatalf("expected no image, got %d bytes, %q, %v", len(data), mime, err)
	}

	SetProductImage(ctx, database, "7", []byte("first"), "image/jpeg")
	SetProductImage(ctx, database, "7", []byte("second"), "image/jpeg")

	data, mime, err = GetProductImage(ctx, database, "7")
	if err != nil {
		t.Fatalf("GetProductImage: %v", err)
	}
	if string(data) != "second" || mime != "image/jpeg" {
		t.Errorf("expected replaced image, got %q %q", data, mime)
	}

	has, _ := HasProductImages(ctx, database)
	if !has["7"] || len(has) != 1 {
		t.Errorf("unexpected image set: %v", has)
	}

	DeleteProductImage(ctx, database, "7")
	data, _, _ = GetProductImage(ctx, database, "7")
	if data != nil {
		t.Error("expected image to be deleted")
	}
}
