package inventory

import (
	"sort"
	"strings"
	"time"
)

// Aggregation views are pure functions over the current product list.
// Nothing here caches: every call recomputes from scratch, which is fine
// at small-catalog scale and keeps reads trivially consistent.

type PlatformStats struct {
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

type Overview struct {
	TotalRevenue    float64                    `json:"totalRevenue"`
	TotalStock      int                        `json:"totalStock"`
	ProductCount    int                        `json:"productCount"`
	LowStockCount   int                        `json:"lowStockCount"`
	OutOfStockCount int                        `json:"outOfStockCount"`
	Platforms       map[Platform]PlatformStats `json:"platforms"`
}

type Performer struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// SaleRecord is one flattened history row: the sale itself annotated
// with its parent product.
type SaleRecord struct {
	Sale
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Revenue     float64 `json:"revenue"`
}

// TotalRevenue sums price x units sold over all products. The sum is
// order-independent.
func TotalRevenue(products []Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.Revenue()
	}
	return total
}

// PerPlatformStats restricts units and revenue to sales on one platform.
func PerPlatformStats(products []Product, platform Platform) PlatformStats {
	var st PlatformStats
	for _, p := range products {
		units := 0
		for _, s := range p.Sales {
			if s.Platform == platform {
				units += s.Quantity
			}
		}
		st.Units += units
		st.Revenue += float64(units) * p.Price
	}
	return st
}

func LowStock(products []Product) []Product {
	out := []Product{}
	for _, p := range products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

func OutOfStock(products []Product) []Product {
	out := []Product{}
	for _, p := range products {
		if p.OutOfStock() {
			out = append(out, p)
		}
	}
	return out
}

func BuildOverview(products []Product) Overview {
	ov := Overview{
		TotalRevenue: TotalRevenue(products),
		ProductCount: len(products),
		Platforms:    make(map[Platform]PlatformStats, len(Platforms)),
	}
	for _, p := range products {
		ov.TotalStock += p.TotalStock
		if p.LowStock() {
			ov.LowStockCount++
		}
		if p.OutOfStock() {
			ov.OutOfStockCount++
		}
	}
	for _, pl := range Platforms {
		ov.Platforms[pl] = PerPlatformStats(products, pl)
	}
	return ov
}

// TopPerformers ranks products by units sold, descending, ties keeping
// list order, truncated to n.
func TopPerformers(products []Product, n int) []Performer {
	ranked := make([]Performer, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, Performer{
			ProductID: p.ID,
			Name:      p.Name,
			UnitsSold: p.UnitsSold(),
			Revenue:   p.Revenue(),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UnitsSold > ranked[j].UnitsSold
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// SalesHistory flattens every product's sales into one list, newest date
// first, optionally filtered by a case-insensitive substring match on
// product name or platform.
func SalesHistory(products []Product, query string) []SaleRecord {
	records := []SaleRecord{}
	for _, p := range products {
		for _, s := range p.Sales {
			records = append(records, SaleRecord{
				Sale:        s,
				ProductID:   p.ID,
				ProductName: p.Name,
				Price:       p.Price,
				Revenue:     float64(s.Quantity) * p.Price,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return parseSaleDate(records[i].Date).After(parseSaleDate(records[j].Date))
	})

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.ProductName), q) ||
				strings.Contains(strings.ToLower(string(r.Platform)), q) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	return records
}

// parseSaleDate tolerates the UI date format; anything unparseable sorts
// last.
func parseSaleDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
