package split

// SelfParticipantID is the sentinel id for the app's own user. The mobile
// client always includes this participant in the roster it submits.
const SelfParticipantID = "you"

// LineItem is a single priced entry on a receipt. People holds the ids of the
// participants the item is assigned to; an item with no assignees is excluded
// from every total.
type LineItem struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	People []string `json:"people"`
}

// AdditionalCharges are receipt-level charges not tied to specific items.
type AdditionalCharges struct {
	Tax  float64 `json:"tax"`
	Tip  float64 `json:"tip"`
	Misc float64 `json:"misc"`
}

// Receipt is the validated unit of work passed into the engine. Subtotal is
// informational only; the authoritative subtotal is recomputed from Items.
type Receipt struct {
	Items      []LineItem        `json:"items"`
	Subtotal   float64           `json:"subtotal"`
	Additional AdditionalCharges `json:"additional"`
}

// Participant is a person eligible to be charged for some subset of items.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Roster is the splitting group for one receipt, including the app's own user.
type Roster struct {
	Members []Participant `json:"members"`
}

// AllocatedItem records one participant's share of one line item.
type AllocatedItem struct {
	Name                string  `json:"name"`
	PricePerParticipant float64 `json:"price_per_participant"`
	TotalItemPrice      float64 `json:"total_item_price"`
	ParticipantCount    int     `json:"participant_count"`
}

// PersonAccumulator is the intermediate per-participant running total produced
// by Allocate, before charge proration. Subtotal carries full floating
// precision; no rounding happens at this stage.
type PersonAccumulator struct {
	Participant
	Items    []AllocatedItem
	Subtotal float64
}

// PersonResult is the final computed share for one participant. Subtotal is
// unrounded; Tax, Tip and Misc are each rounded to cents, and FinalTotal is
// the rounded sum of all four.
type PersonResult struct {
	ParticipantID string          `json:"participant_id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Items         []AllocatedItem `json:"items"`
	Subtotal      float64         `json:"subtotal"`
	Tax           float64         `json:"tax"`
	Tip           float64         `json:"tip"`
	Misc          float64         `json:"misc"`
	FinalTotal    float64         `json:"final_total"`
}

// ResultsByID indexes a result slice by participant id.
func ResultsByID(results []*PersonResult) map[string]*PersonResult {
	byID := make(map[string]*PersonResult, len(results))
	for _, r := range results {
		byID[r.ParticipantID] = r
	}
	return byID
}
