package i18n

import (
	"context"
	"errors"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		locale Locale
		key    string
		want   string
	}{
		{English, "dashboard", "Dashboard"},
		{Amharic, "products", "ምርቶች"},
		{Arabic, "orders", "الطلبات"},
		{English, "card", "Card"},
		{English, "cardView", "Card View"},
		{English, "mobile", "Mobile Money"},
	}
	for _, tt := range tests {
		if got := Translate(tt.locale, tt.key); got != tt.want {
			t.Errorf("Translate(%s, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	for _, l := range append(Locales, Locale("fr")) {
		if got := Translate(l, "noSuchKey"); got != "noSuchKey" {
			t.Errorf("Translate(%s, noSuchKey) = %q", l, got)
		}
	}
}

func TestTablesShareKeys(t *testing.T) {
	en := tables[English]
	for _, l := range Locales {
		tbl := tables[l]
		if len(tbl) != len(en) {
			t.Errorf("%s has %d keys, en has %d", l, len(tbl), len(en))
		}
		for k := range en {
			if _, ok := tbl[k]; !ok {
				t.Errorf("%s is missing %q", l, k)
			}
		}
	}
}

func TestTableIsCopy(t *testing.T) {
	tbl, ok := Table(English)
	if !ok {
		t.Fatal("expected English table")
	}
	tbl["dashboard"] = "changed"
	if Translate(English, "dashboard") != "Dashboard" {
		t.Error("Table must not expose the shared map")
	}
	if _, ok := Table("xx"); ok {
		t.Error("expected unknown locale to be reported")
	}
}

func TestDir(t *testing.T) {
	if Arabic.Dir() != "rtl" {
		t.Error("expected rtl for Arabic")
	}
	if English.Dir() != "ltr" || Amharic.Dir() != "ltr" {
		t.Error("expected ltr for English and Amharic")
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", English},
		{"ar-EG,ar;q=0.9,en;q=0.5", Arabic},
		{"am-ET", Amharic},
		{"de-DE,de;q=0.9", English},
		{"fr;q=0.8,am;q=0.9", Amharic},
	}
	for _, tt := range tests {
		if got := Match(tt.header); got != tt.want {
			t.Errorf("Match(%q) = %s, want %s", tt.header, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		code   string
		amount float64
		want   string
	}{
		{"USD", 27.5, "$27.50"},
		{"USD", 1234.5, "$1,234.50"},
		{"EUR", 2.5, "€2.50"},
		{"JPY", 1500, "¥1,500"},
		{"ETB", 10, "Br 10.00"},
		{"USD", -2.5, "-$2.50"},
		{"XYZ", 1, "$1.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.code, tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%s, %v) = %q, want %q", tt.code, tt.amount, got, tt.want)
		}
	}
}

type memPersister struct {
	locale, currency string
	err              error
}

func (m *memPersister) SaveLocale(_ context.Context, l string) error {
	if m.err != nil {
		return m.err
	}
	m.locale = l
	return nil
}

func (m *memPersister) SaveCurrency(_ context.Context, c string) error {
	if m.err != nil {
		return m.err
	}
	m.currency = c
	return nil
}

func TestStateDefaults(t *testing.T) {
	s := NewState("xx", "ZZZ", nil)
	if s.Locale() != English || s.Currency() != "USD" {
		t.Errorf("expected en/USD, got %s/%s", s.Locale(), s.Currency())
	}
}

func TestStateSetLocalePersists(t *testing.T) {
	p := &memPersister{}
	s := NewState("en", "USD", p)

	if err := s.SetLocale(context.Background(), "ar"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if s.Locale() != Arabic || p.locale != "ar" {
		t.Errorf("expected ar active and stored, got %s / %q", s.Locale(), p.locale)
	}
	if s.Translate("settings") != "الإعدادات" {
		t.Errorf("unexpected translation %q", s.Translate("settings"))
	}

	if err := s.SetLocale(context.Background(), "fr"); err == nil {
		t.Error("expected error for unsupported locale")
	}
	if s.Locale() != Arabic {
		t.Error("unsupported locale must not change state")
	}
}

func TestStateSetCurrency(t *testing.T) {
	p := &memPersister{}
	s := NewState("en", "USD", p)

	if err := s.SetCurrency(context.Background(), "ETB"); err != nil {
		t.Fatalf("SetCurrency: %v", err)
	}
	if s.Currency() != "ETB" || p.currency != "ETB" {
		t.Errorf("expected ETB, got %s / %q", s.Currency(), p.currency)
	}

	err := s.SetCurrency(context.Background(), "AUD")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestStatePersistFailureKeepsState(t *testing.T) {
	p := &memPersister{err: errors.New("disk full")}
	s := NewState("en", "USD", p)

	if err := s.SetLocale(context.Background(), "am"); err == nil {
		t.Fatal("expected error")
	}
	if s.Locale() != English {
		t.Errorf("expected en, got %s", s.Locale())
	}
}
