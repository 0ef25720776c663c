package split

import "math"

// Prorate distributes tax, tip and misc charges across participants in
// proportion to their share of the total subtotal, and computes each
// participant's final total.
//
// Rounding happens in two stages and both matter: each charge share is rounded
// to cents on its own, then the final total is rounded once more as
// round2(subtotal + tax + tip + misc), with the subtotal itself carried
// unrounded into that sum. The per-participant charge shares are therefore not
// guaranteed to sum exactly to the original charges; that drift is accepted
// and never redistributed.
//
// When the total subtotal is zero (no items assigned to anyone), every
// participant gets zero tax, tip and misc: with nothing allocated there is no
// proportion to charge against.
func Prorate(accumulators []*PersonAccumulator, charges AdditionalCharges) []*PersonResult {
	var totalSubtotal float64
	for _, acc := range accumulators {
		totalSubtotal += acc.Subtotal
	}

	results := make([]*PersonResult, len(accumulators))
	for i, acc := range accumulators {
		result := &PersonResult{
			ParticipantID: acc.ID,
			Name:          acc.Name,
			Phone:         acc.Phone,
			Items:         acc.Items,
			Subtotal:      acc.Subtotal,
		}

		if totalSubtotal > 0 {
			ratio := acc.Subtotal / totalSubtotal
			result.Tax = roundToTwoDecimals(charges.Tax * ratio)
			result.Tip = roundToTwoDecimals(charges.Tip * ratio)
			result.Misc = roundToTwoDecimals(charges.Misc * ratio)
		}

		result.FinalTotal = roundToTwoDecimals(result.Subtotal + result.Tax + result.Tip + result.Misc)
		results[i] = result
	}

	return results
}

// roundToTwoDecimals rounds to cents, half away from zero for positive values.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
