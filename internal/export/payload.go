// Package export turns computed per-person results into the shapes the
// outside world consumes: an API-ready payload for the backend and a
// human-readable message for OS-level sharing. Both transforms are pure.
package export

import "github.com/fkhayef/tabsplit/internal/split"

// Payload is the serializable form of a computed split, keyed the way the
// backend expects (camelCase).
type Payload struct {
	ReceiptID string        `json:"receiptId"`
	Summary   Summary       `json:"summary"`
	Splits    []PersonSplit `json:"splits"`
}

// Summary aggregates the whole receipt: subtotal is the sum of all
// per-person subtotals, total the sum of all final totals, and the charge
// fields the sums of the per-person rounded shares (which may drift a cent
// from the receipt-level charges).
type Summary struct {
	Tip      float64 `json:"tip"`
	Tax      float64 `json:"tax"`
	Misc     float64 `json:"misc"`
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

// PersonSplit is one participant's share in the payload.
type PersonSplit struct {
	Name       string        `json:"name"`
	ID         string        `json:"id"`
	Phone      string        `json:"phone,omitempty"`
	Subtotal   float64       `json:"subtotal"`
	FinalTotal float64       `json:"finalTotal"`
	Tip        float64       `json:"tip"`
	Tax        float64       `json:"tax"`
	Misc       float64       `json:"misc"`
	Items      []PayloadItem `json:"items"`
}

// PayloadItem is one allocated item share; Price is the per-head share,
// TotalPrice the full line-item price.
type PayloadItem struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToAPIPayload builds the serializable payload for a computed result set.
func ToAPIPayload(results []*split.PersonResult, receiptID string) *Payload {
	payload := &Payload{
		ReceiptID: receiptID,
		Splits:    make([]PersonSplit, 0, len(results)),
	}

	for _, r := range results {
		items := make([]PayloadItem, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, PayloadItem{
				Name:       item.Name,
				Price:      item.PricePerParticipant,
				TotalPrice: item.TotalItemPrice,
			})
		}

		payload.Splits = append(payload.Splits, PersonSplit{
			Name:       r.Name,
			ID:         r.ParticipantID,
			Phone:      r.Phone,
			Subtotal:   r.Subtotal,
			FinalTotal: r.FinalTotal,
			Tip:        r.Tip,
			Tax:        r.Tax,
			Misc:       r.Misc,
			Items:      items,
		})

		payload.Summary.Tip += r.Tip
		payload.Summary.Tax += r.Tax
		payload.Summary.Misc += r.Misc
		payload.Summary.Subtotal += r.Subtotal
		payload.Summary.Total += r.FinalTotal
	}

	return payload
}
