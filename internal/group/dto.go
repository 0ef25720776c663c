package group

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name     string              `json:"name" validate:"required,min=1,max=100"`
	SelfName string              `json:"self_name,omitempty"`
	Members  []*AddMemberRequest `json:"members,omitempty"`
}

// UpdateGroupRequest represents the request to rename a group
type UpdateGroupRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

// AddMemberRequest represents the request to add a member to a group
type AddMemberRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"created_at"`
	Members   []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents a member in a group response
type MemberResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	AddedAt   string  `json:"added_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Member model to a MemberResponse DTO
func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		AvatarURL: m.AvatarURL,
		AddedAt:   m.AddedAt.Format("2006-01-02T15:04:05Z"),
	}
}
