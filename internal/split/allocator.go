package split

// Allocate distributes each line item's price evenly among its assigned
// participants and accumulates per-participant subtotals.
//
// One accumulator is created per roster member, in roster order, so that every
// member appears in the output even with zero items. Items with an empty
// assignee list contribute to nobody. Duplicate ids within one item's assignee
// list are ignored after the first occurrence; they carry no meaning and must
// not skew the per-head divisor. An assignee id that does not resolve to a
// roster member is a hard error.
func Allocate(receipt *Receipt, roster *Roster) ([]*PersonAccumulator, error) {
	accumulators := make([]*PersonAccumulator, len(roster.Members))
	byID := make(map[string]*PersonAccumulator, len(roster.Members))
	for i, member := range roster.Members {
		acc := &PersonAccumulator{Participant: member}
		accumulators[i] = acc
		byID[member.ID] = acc
	}

	for _, item := range receipt.Items {
		assignees := dedupe(item.People)
		if len(assignees) == 0 {
			// Unassigned items are silently excluded from all totals.
			continue
		}

		perHead := item.Price / float64(len(assignees))
		for _, id := range assignees {
			acc, ok := byID[id]
			if !ok {
				return nil, &UnknownParticipantError{ParticipantID: id, ItemName: item.Name}
			}
			acc.Items = append(acc.Items, AllocatedItem{
				Name:                item.Name,
				PricePerParticipant: perHead,
				TotalItemPrice:      item.Price,
				ParticipantCount:    len(assignees),
			})
			acc.Subtotal += perHead
		}
	}

	return accumulators, nil
}

// dedupe removes repeated ids, preserving first-occurrence order.
func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
