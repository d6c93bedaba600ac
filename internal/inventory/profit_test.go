package inventory

import (
	"errors"
	"testing"
)

func TestNetProfit(t *testing.T) {
	cases := []struct {
		name     string
		cp, sp   float64
		exp      UnitExpenses
		gst      float64
		want     ProfitBreakdown
	}{
		{
			name: "round numbers",
			cp:   100, sp: 200,
			exp: UnitExpenses{Ads: 10, Packaging: 5, Misc: 5},
			gst: 25,
			want: ProfitBreakdown{GSTAmount: 40, TotalCost: 160, NetProfit: 40, Margin: 20},
		},
		{
			name: "default gst rate",
			cp:   100, sp: 200,
			exp: UnitExpenses{Ads: 10, Packaging: 5, Misc: 5},
			gst: DefaultGSTRate,
			want: ProfitBreakdown{
				GSTAmount: 21.428571428571416,
				TotalCost: 141.42857142857142,
				NetProfit: 58.57142857142858,
				Margin:    29.28571428571429,
			},
		},
		{
			name: "zero gst",
			cp:   60, sp: 100,
			exp:  UnitExpenses{RTO: 15},
			gst:  0,
			want: ProfitBreakdown{GSTAmount: 0, TotalCost: 75, NetProfit: 25, Margin: 25},
		},
		{
			name: "selling at a loss",
			cp:   100, sp: 100,
			exp:  UnitExpenses{Ads: 20},
			gst:  25,
			want: ProfitBreakdown{GSTAmount: 20, TotalCost: 140, NetProfit: -40, Margin: -40},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NetProfit(tc.cp, tc.sp, tc.exp, tc.gst)
			if err != nil {
				t.Fatalf("NetProfit: %v", err)
			}
			if !almostEqual(got.GSTAmount, tc.want.GSTAmount) ||
				!almostEqual(got.TotalCost, tc.want.TotalCost) ||
				!almostEqual(got.NetProfit, tc.want.NetProfit) ||
				!almostEqual(got.Margin, tc.want.Margin) {
				t.Errorf("NetProfit = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNetProfitValidation(t *testing.T) {
	var ve *ValidationError
	if _, err := NetProfit(0, 200, UnitExpenses{}, DefaultGSTRate); !errors.As(err, &ve) {
		t.Errorf("zero cost price: err = %v, want validation error", err)
	}
	if _, err := NetProfit(100, 0, UnitExpenses{}, DefaultGSTRate); !errors.As(err, &ve) {
		t.Errorf("zero selling price: err = %v, want validation error", err)
	}
}

func TestSuggestedPrice(t *testing.T) {
	got, err := SuggestedPrice(100, 50, UnitExpenses{Ads: 10, Packaging: 10}, DefaultGSTRate)
	if err != nil {
		t.Fatalf("SuggestedPrice: %v", err)
	}
	if !almostEqual(got.SuggestedPrice, 190.4) {
		t.Errorf("SuggestedPrice = %v, want 190.4", got.SuggestedPrice)
	}
	if !almostEqual(got.BreakEven, 140.4) {
		t.Errorf("BreakEven = %v, want 140.4", got.BreakEven)
	}

	// with no GST the suggested price is just cost plus profit
	got, err = SuggestedPrice(100, 50, UnitExpenses{}, 0)
	if err != nil {
		t.Fatalf("SuggestedPrice: %v", err)
	}
	if !almostEqual(got.SuggestedPrice, 150) || !almostEqual(got.BreakEven, 100) {
		t.Errorf("no gst = %+v, want {150 100}", got)
	}
}

func TestSuggestedPriceRoundTrip(t *testing.T) {
	// selling at the suggested price yields exactly the desired profit
	exp := UnitExpenses{Ads: 12, Packaging: 3, RTO: 7, Misc: 1}
	sug, err := SuggestedPrice(80, 40, exp, 18)
	if err != nil {
		t.Fatalf("SuggestedPrice: %v", err)
	}
	pb, err := NetProfit(80, sug.SuggestedPrice, exp, 18)
	if err != nil {
		t.Fatalf("NetProfit: %v", err)
	}
	if !almostEqual(pb.NetProfit, 40) {
		t.Errorf("NetProfit at suggested price = %v, want 40", pb.NetProfit)
	}
}

func TestSuggestedPriceValidation(t *testing.T) {
	var ve *ValidationError
	if _, err := SuggestedPrice(0, 50, UnitExpenses{}, DefaultGSTRate); !errors.As(err, &ve) {
		t.Errorf("zero cost price: err = %v, want validation error", err)
	}
	if _, err := SuggestedPrice(100, 0, UnitExpenses{}, DefaultGSTRate); !errors.As(err, &ve) {
		t.Errorf("zero desired profit: err = %v, want validation error", err)
	}
}
