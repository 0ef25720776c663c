package group

import (
	"time"

	"github.com/fkhayef/tabsplit/internal/split"
)

// Group represents a splitting group in the system
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Member represents a person in a splitting group. Members are roster
// entries, not user accounts; the app's own user is stored under the
// reserved id "you".
type Member struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// GroupWithMembers combines a group with its full roster
type GroupWithMembers struct {
	Group   *Group
	Members []*Member
}

// ToRoster converts stored members into the engine's roster shape
func ToRoster(members []*Member) *split.Roster {
	roster := &split.Roster{Members: make([]split.Participant, len(members))}
	for i, m := range members {
		participant := split.Participant{
			ID:   m.ID,
			Name: m.Name,
		}
		if m.Phone != nil {
			participant.Phone = *m.Phone
		}
		if m.AvatarURL != nil {
			participant.AvatarURL = *m.AvatarURL
		}
		roster.Members[i] = participant
	}
	return roster
}
