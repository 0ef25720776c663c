package group

import "testing"

func TestToRoster(t *testing.T) {
	phone := "+15550001111"
	avatar := "https://cdn.example.com/bob.png"
	members := []*Member{
		{ID: "you", GroupID: "g1", Name: "Alice"},
		{ID: "b", GroupID: "g1", Name: "Bob", Phone: &phone, AvatarURL: &avatar},
	}

	roster := ToRoster(members)

	if len(roster.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(roster.Members))
	}

	alice := roster.Members[0]
	if alice.ID != "you" || alice.Name != "Alice" || alice.Phone != "" {
		t.Errorf("alice = %+v", alice)
	}

	bob := roster.Members[1]
	if bob.Phone != phone || bob.AvatarURL != avatar {
		t.Errorf("bob = %+v", bob)
	}
}
