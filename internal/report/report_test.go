package report

import (
	"math"
	"testing"

	"github.com/erazemk/blagajna/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var orders = []model.Order{
	{ID: "1", Date: "2024-01-14", Total: 100, Status: model.OrderCompleted,
		Items: []model.OrderItem{{ProductID: "a", Quantity: 2, Price: 30}, {ProductID: "b", Quantity: 1, Price: 40}}},
	{ID: "2", CreatedAt: "2024-01-15T10:00:00Z", Total: 50, Status: model.OrderCompleted,
		Items: []model.OrderItem{{ProductID: "b", Quantity: 1, Price: 40}}},
	{ID: "3", Date: "2024-01-15", Total: 20, Status: model.OrderPending,
		Items: []model.OrderItem{{ProductID: "c", Quantity: 4, Price: 5}}},
	{ID: "4", Date: "2024-01-16", Total: 999, Status: model.OrderFailed,
		Items: []model.OrderItem{{ProductID: "c", Quantity: 100, Price: 9.99}}},
	{ID: "5", Total: 10, Status: model.OrderCompleted},
}

func TestSummarize(t *testing.T) {
	products := []model.Product{{ID: "a", Stock: 20}, {ID: "b", Stock: 4}, {ID: "c", Stock: -1}}
	s := Summarize(orders, []model.Customer{{ID: "1"}, {ID: "2"}}, products)

	if s.Orders != 5 || s.Customers != 2 || s.Products != 3 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if !approx(s.Revenue, 180) {
		t.Errorf("revenue = %v, want 180", s.Revenue)
	}
	if !approx(s.Average, 45) {
		t.Errorf("average = %v, want 45", s.Average)
	}
	if !approx(s.Median, 35) {
		t.Errorf("median = %v, want 35", s.Median)
	}
	if s.StockUnits != 24 || s.LowStock != 1 || s.OutOfStock != 1 {
		t.Errorf("stock units %d, low %d, out %d", s.StockUnits, s.LowStock, s.OutOfStock)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	if s.Revenue != 0 || s.Average != 0 || s.Median != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestDailySales(t *testing.T) {
	days := DailySales(orders, 7)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %+v", days)
	}
	if days[0].Day != "2024-01-14" || !approx(days[0].Sales, 100) || days[0].Orders != 1 {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	if days[1].Day != "2024-01-15" || !approx(days[1].Sales, 70) || days[1].Orders != 2 {
		t.Errorf("unexpected second day: %+v", days[1])
	}
	if !approx(days[0].Percent, 100) || !approx(days[1].Percent, 70) {
		t.Errorf("unexpected percents: %v, %v", days[0].Percent, days[1].Percent)
	}

	if last := DailySales(orders, 1); len(last) != 1 || last[0].Day != "2024-01-15" {
		t.Errorf("expected only the latest day, got %+v", last)
	}
}

func TestTopProducts(t *testing.T) {
	top := TopProducts(orders, []model.Product{{ID: "a", Name: "Apples"}, {ID: "b", Name: "Bread"}}, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 products, got %+v", top)
	}
	if top[0].Name != "Bread" || !approx(top[0].Revenue, 80) || top[0].Units != 2 {
		t.Errorf("unexpected top product: %+v", top[0])
	}
	if top[1].Name != "Apples" || !approx(top[1].Percent, 75) {
		t.Errorf("unexpected second product: %+v", top[1])
	}

	all := TopProducts(orders, nil, 0)
	if len(all) != 3 || all[2].Name != "c" {
		t.Errorf("expected id fallback for unknown product, got %+v", all)
	}
}

func TestRecent(t *testing.T) {
	got := Recent(orders, 3)
	want := []string{"4", "2", "3"}
	for i, o := range got {
		if o.ID != want[i] {
			t.Fatalf("Recent = %v, want %v", got, want)
		}
	}
	if all := Recent(orders, 10); all[len(all)-1].ID != "5" {
		t.Error("undated orders must sort last")
	}
}
