package inventory

const (
	TopicSaleRecorded = "inventory.sale.recorded"
	TopicSaleReversed = "inventory.sale.reversed"
	TopicRestocked    = "inventory.restocked"
)

const (
	EventSaleRecorded = "SaleRecorded"
	EventSaleReversed = "SaleReversed"
	EventRestocked    = "ProductRestocked"
)

// Partition key = product id, so events for one product keep their order.
func PartitionKey(productID string) []byte { return []byte(productID) }

type SaleRecordedPayload struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	SaleID      string   `json:"sale_id"`
	Platform    Platform `json:"platform"`
	Quantity    int      `json:"quantity"`
	Remaining   int      `json:"remaining"`
	LowStock    bool     `json:"low_stock"`
	OutOfStock  bool     `json:"out_of_stock"`
}

type SaleReversedPayload struct {
	ProductID string `json:"product_id"`
	SaleID    string `json:"sale_id"`
	Quantity  int    `json:"quantity"`
	Remaining int    `json:"remaining"`
}

type RestockedPayload struct {
	ProductID string `json:"product_id"`
	Added     int    `json:"added"`
	Remaining int    `json:"remaining"`
}
