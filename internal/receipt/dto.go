package receipt

import "github.com/fkhayef/tabsplit/internal/split"

// ItemInput represents one extracted or manually entered line item
type ItemInput struct {
	Name   string   `json:"name" validate:"required,min=1,max=255"`
	Price  float64  `json:"price" validate:"gte=0"`
	People []string `json:"people"`
}

// ChargesInput represents the receipt-level charges
type ChargesInput struct {
	Tax  float64 `json:"tax"`
	Tip  float64 `json:"tip"`
	Misc float64 `json:"misc"`
}

// ReceiptInput is the receipt payload as produced by the extraction step
type ReceiptInput struct {
	Items      []ItemInput  `json:"items" validate:"required"`
	Subtotal   float64      `json:"subtotal"`
	Additional ChargesInput `json:"additional"`
}

// ParticipantInput is one roster entry supplied inline with a split request
type ParticipantInput struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// SplitRequest represents a stateless split computation: receipt plus roster,
// either inline or referenced by group id.
type SplitRequest struct {
	Receipt ReceiptInput       `json:"receipt"`
	Roster  []ParticipantInput `json:"roster,omitempty"`
	GroupID string             `json:"group_id,omitempty"`
}

// CreateReceiptRequest represents the request to split and persist a receipt
type CreateReceiptRequest struct {
	GroupID string       `json:"group_id" validate:"required"`
	Title   string       `json:"title,omitempty" validate:"omitempty,max=255"`
	Receipt ReceiptInput `json:"receipt"`
}

// ToEngineReceipt converts the wire payload into the engine's receipt type
func (r *ReceiptInput) ToEngineReceipt() *split.Receipt {
	items := make([]split.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = split.LineItem{
			Name:   item.Name,
			Price:  item.Price,
			People: item.People,
		}
	}
	return &split.Receipt{
		Items:    items,
		Subtotal: r.Subtotal,
		Additional: split.AdditionalCharges{
			Tax:  r.Additional.Tax,
			Tip:  r.Additional.Tip,
			Misc: r.Additional.Misc,
		},
	}
}

// ToEngineRoster converts inline roster entries into the engine's roster type
func ToEngineRoster(participants []ParticipantInput) *split.Roster {
	roster := &split.Roster{Members: make([]split.Participant, len(participants))}
	for i, p := range participants {
		member := split.Participant{ID: p.ID, Name: p.Name}
		if p.Phone != nil {
			member.Phone = *p.Phone
		}
		if p.AvatarURL != nil {
			member.AvatarURL = *p.AvatarURL
		}
		roster.Members[i] = member
	}
	return roster
}

// SplitResponse represents the result of a stateless split computation
type SplitResponse struct {
	Results []*split.PersonResult `json:"results"`
}

// ReceiptResponse represents a stored receipt with its splits
type ReceiptResponse struct {
	ID        string                 `json:"id"`
	GroupID   *string                `json:"group_id,omitempty"`
	Title     string                 `json:"title"`
	Subtotal  float64                `json:"subtotal"`
	Tax       float64                `json:"tax"`
	Tip       float64                `json:"tip"`
	Misc      float64                `json:"misc"`
	CreatedAt string                 `json:"created_at"`
	Items     []*ItemResponse        `json:"items,omitempty"`
	Splits    []*PersonSplitResponse `json:"splits,omitempty"`
}

// ItemResponse represents a stored line item
type ItemResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	People []string `json:"people"`
}

// PersonSplitResponse represents one participant's share of a stored receipt
type PersonSplitResponse struct {
	ParticipantID string               `json:"participant_id"`
	Name          string               `json:"name"`
	Phone         *string              `json:"phone,omitempty"`
	Subtotal      float64              `json:"subtotal"`
	Tax           float64              `json:"tax"`
	Tip           float64              `json:"tip"`
	Misc          float64              `json:"misc"`
	FinalTotal    float64              `json:"final_total"`
	Items         []*SplitItemResponse `json:"items"`
}

// SplitItemResponse represents one allocated item share
type SplitItemResponse struct {
	Name                string  `json:"name"`
	PricePerParticipant float64 `json:"price_per_participant"`
	TotalItemPrice      float64 `json:"total_item_price"`
	ParticipantCount    int     `json:"participant_count"`
}

// ToResponse converts a Receipt model to a ReceiptResponse DTO
func (r *Receipt) ToResponse() *ReceiptResponse {
	return &ReceiptResponse{
		ID:        r.ID,
		GroupID:   r.GroupID,
		Title:     r.Title,
		Subtotal:  r.Subtotal,
		Tax:       r.Tax,
		Tip:       r.Tip,
		Misc:      r.Misc,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts an Item model to an ItemResponse DTO
func (i *Item) ToResponse() *ItemResponse {
	return &ItemResponse{
		ID:     i.ID,
		Name:   i.Name,
		Price:  i.Price,
		People: i.People,
	}
}

// ToResponse converts a PersonSplit model to a PersonSplitResponse DTO
func (p *PersonSplit) ToResponse() *PersonSplitResponse {
	items := make([]*SplitItemResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = &SplitItemResponse{
			Name:                item.Name,
			PricePerParticipant: item.PricePerParticipant,
			TotalItemPrice:      item.TotalItemPrice,
			ParticipantCount:    item.ParticipantCount,
		}
	}
	return &PersonSplitResponse{
		ParticipantID: p.ParticipantID,
		Name:          p.Name,
		Phone:         p.Phone,
		Subtotal:      p.Subtotal,
		Tax:           p.Tax,
		Tip:           p.Tip,
		Misc:          p.Misc,
		FinalTotal:    p.FinalTotal,
		Items:         items,
	}
}

// ToFullResponse converts a ReceiptWithSplits into a full response DTO
func (r *ReceiptWithSplits) ToFullResponse() *ReceiptResponse {
	resp := r.Receipt.ToResponse()
	resp.Items = make([]*ItemResponse, len(r.Items))
	for i, item := range r.Items {
		resp.Items[i] = item.ToResponse()
	}
	resp.Splits = make([]*PersonSplitResponse, len(r.Splits))
	for i, s := range r.Splits {
		resp.Splits[i] = s.ToResponse()
	}
	return resp
}
