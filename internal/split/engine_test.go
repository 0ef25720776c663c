package split

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func scenarioReceipt() *Receipt {
	return &Receipt{
		Items: []LineItem{
			{Name: "Pizza", Price: 20.00, People: []string{"you", "b"}},
			{Name: "Soda", Price: 3.00, People: []string{"b"}},
		},
		Subtotal:   23.00,
		Additional: AdditionalCharges{Tax: 2.00, Tip: 4.00},
	}
}

func TestProcessReceipt(t *testing.T) {
	results, err := ProcessReceipt(scenarioReceipt(), testRoster())
	if err != nil {
		t.Fatalf("ProcessReceipt() error = %v", err)
	}

	byID := ResultsByID(results)
	alice, bob := byID["you"], byID["b"]
	if alice == nil || bob == nil {
		t.Fatalf("missing results: %v", byID)
	}

	if math.Abs(alice.Subtotal-10.00) > 1e-9 || math.Abs(bob.Subtotal-13.00) > 1e-9 {
		t.Errorf("subtotals = %v/%v, want 10.00/13.00", alice.Subtotal, bob.Subtotal)
	}
	if alice.FinalTotal != 12.61 {
		t.Errorf("Alice final = %v, want 12.61", alice.FinalTotal)
	}
	if bob.FinalTotal != 16.39 {
		t.Errorf("Bob final = %v, want 16.39", bob.FinalTotal)
	}
}

func TestProcessReceiptIdempotent(t *testing.T) {
	first, err := ProcessReceipt(scenarioReceipt(), testRoster())
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	second, err := ProcessReceipt(scenarioReceipt(), testRoster())
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different output:\n%+v\n%+v", first, second)
	}
}

func TestProcessReceiptValidation(t *testing.T) {
	roster := testRoster()
	tests := []struct {
		name    string
		receipt *Receipt
		roster  *Roster
	}{
		{
			name:    "nil receipt",
			receipt: nil,
			roster:  roster,
		},
		{
			name:    "empty roster",
			receipt: scenarioReceipt(),
			roster:  &Roster{},
		},
		{
			name:    "member without id",
			receipt: scenarioReceipt(),
			roster:  &Roster{Members: []Participant{{Name: "Alice"}}},
		},
		{
			name:    "member without name",
			receipt: scenarioReceipt(),
			roster:  &Roster{Members: []Participant{{ID: "you"}}},
		},
		{
			name:    "duplicate member ids",
			receipt: scenarioReceipt(),
			roster: &Roster{Members: []Participant{
				{ID: "you", Name: "Alice"},
				{ID: "you", Name: "Other Alice"},
			}},
		},
		{
			name: "item without name",
			receipt: &Receipt{Items: []LineItem{
				{Price: 5.00, People: []string{"you"}},
			}},
			roster: roster,
		},
		{
			name: "negative price",
			receipt: &Receipt{Items: []LineItem{
				{Name: "Refund?", Price: -5.00, People: []string{"you"}},
			}},
			roster: roster,
		},
		{
			name: "NaN price",
			receipt: &Receipt{Items: []LineItem{
				{Name: "Glitch", Price: math.NaN(), People: []string{"you"}},
			}},
			roster: roster,
		},
		{
			name: "negative tip",
			receipt: &Receipt{
				Items:      []LineItem{{Name: "Pizza", Price: 20.00, People: []string{"you"}}},
				Additional: AdditionalCharges{Tip: -1.00},
			},
			roster: roster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ProcessReceipt(tt.receipt, tt.roster)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("ProcessReceipt() error = %v, want ValidationError", err)
			}
			if results != nil {
				t.Errorf("got partial results %v alongside error", results)
			}
		})
	}
}

func TestProcessReceiptUnknownParticipant(t *testing.T) {
	receipt := &Receipt{Items: []LineItem{
		{Name: "Pizza", Price: 20.00, People: []string{"ghost"}},
	}}

	results, err := ProcessReceipt(receipt, testRoster())
	var unknownErr *UnknownParticipantError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("ProcessReceipt() error = %v, want UnknownParticipantError", err)
	}
	if results != nil {
		t.Errorf("got partial results %v alongside error", results)
	}
}
