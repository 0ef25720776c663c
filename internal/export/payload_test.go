package export

import (
	"math"
	"testing"

	"github.com/fkhayef/tabsplit/internal/split"
)

func sampleResults() []*split.PersonResult {
	return []*split.PersonResult{
		{
			ParticipantID: "you",
			Name:          "Alice",
			Items: []split.AllocatedItem{
				{Name: "Pizza", PricePerParticipant: 10.00, TotalItemPrice: 20.00, ParticipantCount: 2},
			},
			Subtotal:   10.00,
			Tax:        0.87,
			Tip:        1.74,
			FinalTotal: 12.61,
		},
		{
			ParticipantID: "b",
			Name:          "Bob",
			Phone:         "+15550001111",
			Items: []split.AllocatedItem{
				{Name: "Pizza", PricePerParticipant: 10.00, TotalItemPrice: 20.00, ParticipantCount: 2},
				{Name: "Soda", PricePerParticipant: 3.00, TotalItemPrice: 3.00, ParticipantCount: 1},
			},
			Subtotal:   13.00,
			Tax:        1.13,
			Tip:        2.26,
			FinalTotal: 16.39,
		},
	}
}

func TestToAPIPayload(t *testing.T) {
	payload := ToAPIPayload(sampleResults(), "rcpt-123")

	if payload.ReceiptID != "rcpt-123" {
		t.Errorf("receiptId = %q, want rcpt-123", payload.ReceiptID)
	}
	if math.Abs(payload.Summary.Subtotal-23.00) > 1e-9 {
		t.Errorf("summary subtotal = %v, want 23.00", payload.Summary.Subtotal)
	}
	if math.Abs(payload.Summary.Total-29.00) > 1e-9 {
		t.Errorf("summary total = %v, want 29.00", payload.Summary.Total)
	}
	if math.Abs(payload.Summary.Tax-2.00) > 1e-9 || math.Abs(payload.Summary.Tip-4.00) > 1e-9 {
		t.Errorf("summary tax/tip = %v/%v, want 2.00/4.00", payload.Summary.Tax, payload.Summary.Tip)
	}

	if len(payload.Splits) != 2 {
		t.Fatalf("got %d splits, want 2", len(payload.Splits))
	}

	alice := payload.Splits[0]
	if alice.Phone != "" {
		t.Errorf("Alice phone = %q, want empty (no phone on record)", alice.Phone)
	}
	bob := payload.Splits[1]
	if bob.Phone != "+15550001111" {
		t.Errorf("Bob phone = %q, want +15550001111", bob.Phone)
	}
	if len(bob.Items) != 2 || bob.Items[1].Price != 3.00 || bob.Items[1].TotalPrice != 3.00 {
		t.Errorf("Bob items = %+v", bob.Items)
	}
}

func TestToAPIPayloadEmpty(t *testing.T) {
	payload := ToAPIPayload(nil, "rcpt-empty")
	if len(payload.Splits) != 0 {
		t.Errorf("got %d splits, want 0", len(payload.Splits))
	}
	if payload.Summary.Total != 0 {
		t.Errorf("summary total = %v, want 0", payload.Summary.Total)
	}
}
