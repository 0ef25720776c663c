package split

import (
	"fmt"
	"math"
)

// ProcessReceipt validates its inputs, allocates line items and prorates
// charges, returning one result per roster member in roster order. It is a
// pure function: inputs are read-only, results are freshly constructed on
// every call, and identical inputs produce identical output.
func ProcessReceipt(receipt *Receipt, roster *Roster) ([]*PersonResult, error) {
	if err := validate(receipt, roster); err != nil {
		return nil, err
	}

	accumulators, err := Allocate(receipt, roster)
	if err != nil {
		return nil, err
	}

	return Prorate(accumulators, receipt.Additional), nil
}

func validate(receipt *Receipt, roster *Roster) error {
	if receipt == nil {
		return &ValidationError{Field: "receipt", Reason: "missing"}
	}
	if roster == nil || len(roster.Members) == 0 {
		return &ValidationError{Field: "roster", Reason: "must have at least one member"}
	}

	seen := make(map[string]struct{}, len(roster.Members))
	for i, member := range roster.Members {
		if member.ID == "" {
			return &ValidationError{Field: fmt.Sprintf("roster.members[%d].id", i), Reason: "required"}
		}
		if member.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("roster.members[%d].name", i), Reason: "required"}
		}
		if _, ok := seen[member.ID]; ok {
			return &ValidationError{Field: fmt.Sprintf("roster.members[%d].id", i), Reason: fmt.Sprintf("duplicate id %q", member.ID)}
		}
		seen[member.ID] = struct{}{}
	}

	for i, item := range receipt.Items {
		if item.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("items[%d].name", i), Reason: "required"}
		}
		if err := validAmount(fmt.Sprintf("items[%d].price", i), item.Price); err != nil {
			return err
		}
	}

	if err := validAmount("additional.tax", receipt.Additional.Tax); err != nil {
		return err
	}
	if err := validAmount("additional.tip", receipt.Additional.Tip); err != nil {
		return err
	}
	if err := validAmount("additional.misc", receipt.Additional.Misc); err != nil {
		return err
	}

	return nil
}

func validAmount(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if value < 0 {
		return &ValidationError{Field: field, Reason: "cannot be negative"}
	}
	return nil
}
