package inventory

// DefaultGSTRate is the GST percentage assumed when a calculation does
// not name one.
const DefaultGSTRate = 12.0

// UnitExpenses are the per-unit costs of a sale besides the purchase
// price. Selling prices are GST-inclusive, so these are not.
type UnitExpenses struct {
	Ads       float64 `json:"ads"`
	Packaging float64 `json:"packaging"`
	RTO       float64 `json:"rto"`
	Misc      float64 `json:"misc"`
}

func (e UnitExpenses) Total() float64 {
	return e.Ads + e.Packaging + e.RTO + e.Misc
}

type ProfitBreakdown struct {
	GSTAmount float64 `json:"gstAmount"`
	TotalCost float64 `json:"totalCost"`
	NetProfit float64 `json:"netProfit"`
	Margin    float64 `json:"margin"`
}

// NetProfit computes the per-unit profit of selling at sellingPrice.
// GST is included in the selling price, so the tax share is the
// difference between the price and its pre-tax base.
func NetProfit(costPrice, sellingPrice float64, exp UnitExpenses, gstRate float64) (ProfitBreakdown, error) {
	if costPrice <= 0 {
		return ProfitBreakdown{}, &ValidationError{Field: "costPrice", Reason: "must be positive"}
	}
	if sellingPrice <= 0 {
		return ProfitBreakdown{}, &ValidationError{Field: "sellingPrice", Reason: "must be positive"}
	}

	gst := sellingPrice - sellingPrice/(1+gstRate/100)
	totalCost := costPrice + exp.Total() + gst
	netProfit := sellingPrice - totalCost
	return ProfitBreakdown{
		GSTAmount: gst,
		TotalCost: totalCost,
		NetProfit: netProfit,
		Margin:    netProfit / sellingPrice * 100,
	}, nil
}

type PriceSuggestion struct {
	SuggestedPrice float64 `json:"suggestedPrice"`
	BreakEven      float64 `json:"breakEven"`
}

// SuggestedPrice inverts NetProfit: the GST-inclusive price that leaves
// desiredProfit per unit after costs, expenses and tax.
func SuggestedPrice(costPrice, desiredProfit float64, exp UnitExpenses, gstRate float64) (PriceSuggestion, error) {
	if costPrice <= 0 {
		return PriceSuggestion{}, &ValidationError{Field: "costPrice", Reason: "must be positive"}
	}
	if desiredProfit <= 0 {
		return PriceSuggestion{}, &ValidationError{Field: "desiredProfit", Reason: "must be positive"}
	}

	base := costPrice + exp.Total() + desiredProfit
	price := base * (1 + gstRate/100)
	return PriceSuggestion{
		SuggestedPrice: price,
		BreakEven:      price - desiredProfit,
	}, nil
}
