package model

import (
	"testing"
	"time"
)

func TestStockStatusOf(t *testing.T) {
	tests := []struct {
		stock int
		want  StockStatus
	}{
		{150, InStock},
		{11, InStock},
		{10, LowStock},
		{1, LowStock},
		{0, OutOfStock},
		{-3, OutOfStock},
	}
	for _, tt := range tests {
		if got := StockStatusOf(tt.stock); got != tt.want {
			t.Errorf("StockStatusOf(%d) = %q, want %q", tt.stock, got, tt.want)
		}
	}
}

func TestSegmentOf(t *testing.T) {
	tests := []struct {
		purchases int
		want      Segment
	}{
		{12, SegmentVIP},
		{11, SegmentVIP},
		{10, SegmentRegular},
		{1, SegmentRegular},
		{0, SegmentNew},
	}
	for _, tt := range tests {
		if got := SegmentOf(tt.purchases); got != tt.want {
			t.Errorf("SegmentOf(%d) = %q, want %q", tt.purchases, got, tt.want)
		}
	}
}

func TestOrderedAt(t *testing.T) {
	o := Order{CreatedAt: "2024-03-05T10:30:00Z"}
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	if got := o.OrderedAt(); !got.Equal(want) {
		t.Errorf("OrderedAt() = %v, want %v", got, want)
	}

	o = Order{Date: "2024-01-15"}
	if got := o.Day(); got != "2024-01-15" {
		t.Errorf("Day() = %q, want 2024-01-15", got)
	}

	o = Order{Date: "not a date"}
	if !o.OrderedAt().IsZero() {
		t.Error("expected zero time for unparseable date")
	}
	if o.Day() != "" {
		t.Errorf("expected empty day, got %q", o.Day())
	}
}

func TestCustomerLabel(t *testing.T) {
	if got := (Order{Customer: "Jane", CustomerID: "2"}).CustomerLabel(); got != "Jane" {
		t.Errorf("expected name, got %q", got)
	}
	if got := (Order{CustomerID: "2"}).CustomerLabel(); got != "2" {
		t.Errorf("expected id fallback, got %q", got)
	}
}
