package inventory

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalRevenue(t *testing.T) {
	products := []Product{
		{Price: 100, Sales: []Sale{{Quantity: 2}, {Quantity: 3}}},
		{Price: 50, Sales: []Sale{{Quantity: 4}}},
		{Price: 10, Sales: []Sale{}},
	}
	if got := TotalRevenue(products); !almostEqual(got, 700) {
		t.Errorf("TotalRevenue = %v, want 700", got)
	}
}

func TestTotalRevenueOrderIndependent(t *testing.T) {
	a := Product{Price: 100, Sales: []Sale{
		{Quantity: 1, Platform: PlatformAmazon},
		{Quantity: 5, Platform: PlatformOffline},
		{Quantity: 2, Platform: PlatformMeesho},
	}}
	b := a.Clone()
	b.Sales[0], b.Sales[2] = b.Sales[2], b.Sales[0]

	if r1, r2 := TotalRevenue([]Product{a}), TotalRevenue([]Product{b}); !almostEqual(r1, r2) {
		t.Errorf("revenue depends on sale order: %v != %v", r1, r2)
	}
}

func TestPerPlatformStats(t *testing.T) {
	// the worked example: one product at 50 with 2 Amazon and 3 Flipkart units
	products := []Product{{
		Price: 50,
		Sales: []Sale{
			{Platform: PlatformAmazon, Quantity: 2},
			{Platform: PlatformFlipkart, Quantity: 3},
		},
	}}

	got := PerPlatformStats(products, PlatformAmazon)
	if got.Units != 2 || !almostEqual(got.Revenue, 100) {
		t.Errorf("Amazon stats = %+v, want {2 100}", got)
	}
	got = PerPlatformStats(products, PlatformFlipkart)
	if got.Units != 3 || !almostEqual(got.Revenue, 150) {
		t.Errorf("Flipkart stats = %+v, want {3 150}", got)
	}
	got = PerPlatformStats(products, PlatformMeesho)
	if got.Units != 0 || got.Revenue != 0 {
		t.Errorf("Meesho stats = %+v, want zero", got)
	}
}

func TestLowAndOutOfStockSets(t *testing.T) {
	products := []Product{
		{ID: "a", TotalStock: 0, LowStockThreshold: 5},  // out, not low
		{ID: "b", TotalStock: 5, LowStockThreshold: 5},  // low (boundary)
		{ID: "c", TotalStock: 6, LowStockThreshold: 5},  // fine
		{ID: "d", TotalStock: 1, LowStockThreshold: 10}, // low
	}

	low := LowStock(products)
	if len(low) != 2 || low[0].ID != "b" || low[1].ID != "d" {
		t.Errorf("LowStock = %v", ids(low))
	}
	out := OutOfStock(products)
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("OutOfStock = %v", ids(out))
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestBuildOverview(t *testing.T) {
	products := []Product{
		{TotalStock: 0, LowStockThreshold: 5, Price: 10, Sales: []Sale{{Platform: PlatformAmazon, Quantity: 1}}},
		{TotalStock: 3, LowStockThreshold: 5, Price: 20, Sales: []Sale{{Platform: PlatformOffline, Quantity: 2}}},
		{TotalStock: 50, LowStockThreshold: 5, Price: 30, Sales: []Sale{}},
	}

	ov := BuildOverview(products)
	if ov.ProductCount != 3 || ov.TotalStock != 53 {
		t.Errorf("counts = %d/%d, want 3/53", ov.ProductCount, ov.TotalStock)
	}
	if ov.LowStockCount != 1 || ov.OutOfStockCount != 1 {
		t.Errorf("low/out = %d/%d, want 1/1", ov.LowStockCount, ov.OutOfStockCount)
	}
	if !almostEqual(ov.TotalRevenue, 50) {
		t.Errorf("TotalRevenue = %v, want 50", ov.TotalRevenue)
	}
	if len(ov.Platforms) != len(Platforms) {
		t.Errorf("platforms = %d, want %d", len(ov.Platforms), len(Platforms))
	}
	if st := ov.Platforms[PlatformOffline]; st.Units != 2 || !almostEqual(st.Revenue, 40) {
		t.Errorf("Offline stats = %+v, want {2 40}", st)
	}
}

func TestTopPerformers(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "A", Price: 10, Sales: []Sale{{Quantity: 3}}},
		{ID: "b", Name: "B", Price: 10, Sales: []Sale{{Quantity: 9}}},
		{ID: "c", Name: "C", Price: 10, Sales: []Sale{{Quantity: 3}}},
		{ID: "d", Name: "D", Price: 10, Sales: []Sale{}},
	}

	top := TopPerformers(products, 3)
	if len(top) != 3 {
		t.Fatalf("len = %d, want 3", len(top))
	}
	if top[0].ProductID != "b" {
		t.Errorf("top[0] = %s, want b", top[0].ProductID)
	}
	// ties keep list order
	if top[1].ProductID != "a" || top[2].ProductID != "c" {
		t.Errorf("tie order = %s,%s, want a,c", top[1].ProductID, top[2].ProductID)
	}
	if !almostEqual(top[0].Revenue, 90) {
		t.Errorf("revenue = %v, want 90", top[0].Revenue)
	}

	if got := TopPerformers(products, 10); len(got) != 4 {
		t.Errorf("n beyond len: got %d, want 4", len(got))
	}
}

func TestSalesHistory(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Steel Bottle", Price: 100, Sales: []Sale{
			{ID: "s1", Platform: PlatformAmazon, Quantity: 2, Date: "2026-08-01"},
			{ID: "s2", Platform: PlatformOffline, Quantity: 1, Date: "2026-08-20"},
		}},
		{ID: "p2", Name: "Copper Mug", Price: 50, Sales: []Sale{
			{ID: "s3", Platform: PlatformFlipkart, Quantity: 4, Date: "2026-08-10"},
		}},
	}

	history := SalesHistory(products, "")
	if len(history) != 3 {
		t.Fatalf("len = %d, want 3", len(history))
	}
	// newest date first
	if history[0].Sale.ID != "s2" || history[1].Sale.ID != "s3" || history[2].Sale.ID != "s1" {
		t.Errorf("order = %s,%s,%s, want s2,s3,s1", history[0].Sale.ID, history[1].Sale.ID, history[2].Sale.ID)
	}
	if history[0].ProductName != "Steel Bottle" || !almostEqual(history[0].Revenue, 100) {
		t.Errorf("annotation = %+v", history[0])
	}

	// case-insensitive product-name filter
	if got := SalesHistory(products, "copper"); len(got) != 1 || got[0].Sale.ID != "s3" {
		t.Errorf("name filter = %+v", got)
	}
	// platform filter
	if got := SalesHistory(products, "AMAZON"); len(got) != 1 || got[0].Sale.ID != "s1" {
		t.Errorf("platform filter = %+v", got)
	}
	if got := SalesHistory(products, "no-match"); len(got) != 0 {
		t.Errorf("filter should match nothing, got %+v", got)
	}
}
