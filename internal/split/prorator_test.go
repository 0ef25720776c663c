package split

import (
	"math"
	"testing"
)

func TestProrate(t *testing.T) {
	tests := []struct {
		name         string
		accumulators []*PersonAccumulator
		charges      AdditionalCharges
		validateFunc func(t *testing.T, results []*PersonResult)
	}{
		{
			name: "proportional tax and tip",
			accumulators: []*PersonAccumulator{
				{Participant: Participant{ID: "you", Name: "Alice"}, Subtotal: 10.00},
				{Participant: Participant{ID: "b", Name: "Bob"}, Subtotal: 13.00},
			},
			charges: AdditionalCharges{Tax: 2.00, Tip: 4.00},
			validateFunc: func(t *testing.T, results []*PersonResult) {
				alice, bob := results[0], results[1]
				// 2 * 10/23 = 0.869... -> 0.87; 2 * 13/23 = 1.130... -> 1.13
				if alice.Tax != 0.87 || bob.Tax != 1.13 {
					t.Errorf("tax = %v/%v, want 0.87/1.13", alice.Tax, bob.Tax)
				}
				// 4 * 10/23 = 1.739... -> 1.74; 4 * 13/23 = 2.260... -> 2.26
				if alice.Tip != 1.74 || bob.Tip != 2.26 {
					t.Errorf("tip = %v/%v, want 1.74/2.26", alice.Tip, bob.Tip)
				}
				if alice.FinalTotal != 12.61 || bob.FinalTotal != 16.39 {
					t.Errorf("final = %v/%v, want 12.61/16.39", alice.FinalTotal, bob.FinalTotal)
				}
			},
		},
		{
			name: "zero total subtotal charges nobody",
			accumulators: []*PersonAccumulator{
				{Participant: Participant{ID: "you", Name: "Alice"}},
				{Participant: Participant{ID: "b", Name: "Bob"}},
			},
			charges: AdditionalCharges{Tax: 5.00, Tip: 10.00, Misc: 1.00},
			validateFunc: func(t *testing.T, results []*PersonResult) {
				for _, r := range results {
					if r.Tax != 0 || r.Tip != 0 || r.Misc != 0 || r.FinalTotal != 0 {
						t.Errorf("%s = %+v, want all zero", r.Name, r)
					}
				}
			},
		},
		{
			name: "misc prorated like tax and tip",
			accumulators: []*PersonAccumulator{
				{Participant: Participant{ID: "you", Name: "Alice"}, Subtotal: 7.50},
				{Participant: Participant{ID: "b", Name: "Bob"}, Subtotal: 2.50},
			},
			charges: AdditionalCharges{Misc: 1.00},
			validateFunc: func(t *testing.T, results []*PersonResult) {
				if results[0].Misc != 0.75 || results[1].Misc != 0.25 {
					t.Errorf("misc = %v/%v, want 0.75/0.25", results[0].Misc, results[1].Misc)
				}
			},
		},
		{
			name: "identity carried through unchanged",
			accumulators: []*PersonAccumulator{
				{
					Participant: Participant{ID: "b", Name: "Bob", Phone: "+15550001111"},
					Items:       []AllocatedItem{{Name: "Soda", PricePerParticipant: 3, TotalItemPrice: 3, ParticipantCount: 1}},
					Subtotal:    3.00,
				},
			},
			charges: AdditionalCharges{},
			validateFunc: func(t *testing.T, results []*PersonResult) {
				r := results[0]
				if r.ParticipantID != "b" || r.Name != "Bob" || r.Phone != "+15550001111" {
					t.Errorf("identity = %s/%s/%s", r.ParticipantID, r.Name, r.Phone)
				}
				if len(r.Items) != 1 || r.Items[0].Name != "Soda" {
					t.Errorf("items = %+v", r.Items)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Prorate(tt.accumulators, tt.charges)
			if len(results) != len(tt.accumulators) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.accumulators))
			}
			tt.validateFunc(t, results)
		})
	}
}

func TestProrateFinalTotalIdentity(t *testing.T) {
	// finalTotal must equal round2(subtotal + tax + tip + misc), with the
	// subtotal unrounded and the charge shares already rounded. Awkward
	// fractions exercise the two-stage rounding.
	accumulators := []*PersonAccumulator{
		{Participant: Participant{ID: "a", Name: "A"}, Subtotal: 10.0 / 3.0},
		{Participant: Participant{ID: "b", Name: "B"}, Subtotal: 20.0 / 3.0},
		{Participant: Participant{ID: "c", Name: "C"}, Subtotal: 5.555},
	}
	charges := AdditionalCharges{Tax: 1.37, Tip: 3.33, Misc: 0.10}

	for _, r := range Prorate(accumulators, charges) {
		want := math.Round((r.Subtotal+r.Tax+r.Tip+r.Misc)*100) / 100
		if r.FinalTotal != want {
			t.Errorf("%s final = %v, want %v", r.Name, r.FinalTotal, want)
		}
	}
}

func TestProrateRoundingDrift(t *testing.T) {
	// Per-participant rounding may make the charge shares drift from the
	// original charge by a cent; the drift is accepted, not redistributed.
	accumulators := []*PersonAccumulator{
		{Participant: Participant{ID: "a", Name: "A"}, Subtotal: 1.00},
		{Participant: Participant{ID: "b", Name: "B"}, Subtotal: 1.00},
		{Participant: Participant{ID: "c", Name: "C"}, Subtotal: 1.00},
	}

	results := Prorate(accumulators, AdditionalCharges{Tax: 0.10})

	var taxTotal float64
	for _, r := range results {
		if r.Tax != 0.03 {
			t.Errorf("%s tax = %v, want 0.03", r.Name, r.Tax)
		}
		taxTotal += r.Tax
	}
	if math.Abs(taxTotal-0.09) > 1e-9 {
		t.Errorf("summed tax = %v, want 0.09 (one cent of drift)", taxTotal)
	}
}
