package response

import "reservation-engine/internal/domain/pricing"

// Amounts are decimal strings so clients never see float rounding.
type PriceQuoteResponse struct {
	Volume           string `json:"volume"`
	PriceUnit        string `json:"priceUnit,omitempty"`
	UnitPrice        string `json:"unitPrice"`
	GrossPrice       string `json:"grossPrice"`
	LowestGrossPrice string `json:"lowestGrossPrice"`
	NetPrice         string `json:"netPrice"`
	TaxPercentage    string `json:"taxPercentage"`
	Free             bool   `json:"free"`
	Unavailable      bool   `json:"unavailable"`
	Price            string `json:"price"`
	Breakdown        string `json:"breakdown"`
}

func FromQuote(q pricing.Quote) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		Volume:           q.Volume.String(),
		PriceUnit:        string(q.PriceUnit),
		UnitPrice:        q.UnitPrice.StringFixed(2),
		GrossPrice:       q.GrossPrice.StringFixed(2),
		LowestGrossPrice: q.LowestGrossPrice.StringFixed(2),
		NetPrice:         q.NetPrice.StringFixed(2),
		TaxPercentage:    q.TaxPercentage.String(),
		Free:             q.Free,
		Unavailable:      q.Unavailable,
		Price:            q.Price,
		Breakdown:        q.Breakdown,
	}
}
