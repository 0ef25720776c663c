package receipt

import (
	"time"

	"github.com/fkhayef/tabsplit/internal/split"
)

// Receipt represents a stored receipt. Subtotal is the authoritative value
// recomputed from the items at split time, not the figure printed on the
// receipt.
type Receipt struct {
	ID        string    `json:"id"`
	GroupID   *string   `json:"group_id,omitempty"`
	Title     string    `json:"title"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Tip       float64   `json:"tip"`
	Misc      float64   `json:"misc"`
	CreatedAt time.Time `json:"created_at"`
}

// Item represents a stored line item with its assignee ids
type Item struct {
	ID        string   `json:"id"`
	ReceiptID string   `json:"receipt_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	People    []string `json:"people"`
}

// PersonSplit is one participant's stored share of a receipt
type PersonSplit struct {
	ID            string       `json:"id"`
	ReceiptID     string       `json:"receipt_id"`
	ParticipantID string       `json:"participant_id"`
	Name          string       `json:"name"`
	Phone         *string      `json:"phone,omitempty"`
	Subtotal      float64      `json:"subtotal"`
	Tax           float64      `json:"tax"`
	Tip           float64      `json:"tip"`
	Misc          float64      `json:"misc"`
	FinalTotal    float64      `json:"final_total"`
	Items         []*SplitItem `json:"items"`
}

// SplitItem is one allocated item share within a stored person split
type SplitItem struct {
	ID                  string  `json:"id"`
	PersonSplitID       string  `json:"person_split_id"`
	Name                string  `json:"name"`
	PricePerParticipant float64 `json:"price_per_participant"`
	TotalItemPrice      float64 `json:"total_item_price"`
	ParticipantCount    int     `json:"participant_count"`
}

// ReceiptWithSplits combines a stored receipt with its items and computed splits
type ReceiptWithSplits struct {
	Receipt *Receipt
	Items   []*Item
	Splits  []*PersonSplit
}

// ToEngineResult converts a stored split back into the engine's result shape,
// so the export formatters can run against persisted data.
func (p *PersonSplit) ToEngineResult() *split.PersonResult {
	result := &split.PersonResult{
		ParticipantID: p.ParticipantID,
		Name:          p.Name,
		Items:         make([]split.AllocatedItem, len(p.Items)),
		Subtotal:      p.Subtotal,
		Tax:           p.Tax,
		Tip:           p.Tip,
		Misc:          p.Misc,
		FinalTotal:    p.FinalTotal,
	}
	if p.Phone != nil {
		result.Phone = *p.Phone
	}
	for i, item := range p.Items {
		result.Items[i] = split.AllocatedItem{
			Name:                item.Name,
			PricePerParticipant: item.PricePerParticipant,
			TotalItemPrice:      item.TotalItemPrice,
			ParticipantCount:    item.ParticipantCount,
		}
	}
	return result
}

// EngineResults converts all stored splits of a receipt
func (r *ReceiptWithSplits) EngineResults() []*split.PersonResult {
	results := make([]*split.PersonResult, len(r.Splits))
	for i, p := range r.Splits {
		results[i] = p.ToEngineResult()
	}
	return results
}
