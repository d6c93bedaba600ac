package inventory

import "time"

type Platform string

const (
	PlatformAmazon   Platform = "Amazon"
	PlatformFlipkart Platform = "Flipkart"
	PlatformMeesho   Platform = "Meesho"
	PlatformOffline  Platform = "Offline"
)

var Platforms = []Platform{PlatformAmazon, PlatformFlipkart, PlatformMeesho, PlatformOffline}

func ValidPlatform(p Platform) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// Sale is an immutable event embedded in its product. It is never edited
// in place; the only mutation path after creation is deletion (undo).
type Sale struct {
	ID        string    `json:"id"`
	Platform  Platform  `json:"platform"`
	Quantity  int       `json:"quantity"`
	Date      string    `json:"date"` // user supplied, e.g. "2026-08-29"
	Timestamp time.Time `json:"timestamp"`
}

type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	TotalStock        int       `json:"totalStock"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	RestockQuantity   int       `json:"restockQuantity"`
	Sales             []Sale    `json:"sales"`
	CreatedAt         time.Time `json:"createdAt"`
}

// LowStock reports 0 < totalStock <= lowStockThreshold.
func (p Product) LowStock() bool {
	return p.TotalStock > 0 && p.TotalStock <= p.LowStockThreshold
}

func (p Product) OutOfStock() bool {
	return p.TotalStock == 0
}

// UnitsSold sums sale quantities across the product's history.
func (p Product) UnitsSold() int {
	n := 0
	for _, s := range p.Sales {
		n += s.Quantity
	}
	return n
}

// Revenue is unit price times units sold.
func (p Product) Revenue() float64 {
	return p.Price * float64(p.UnitsSold())
}

// Clone copies the product together with its sales slice so callers can
// mutate the copy without touching the shared list.
func (p Product) Clone() Product {
	cp := p
	cp.Sales = make([]Sale, len(p.Sales))
	copy(cp.Sales, p.Sales)
	return cp
}
