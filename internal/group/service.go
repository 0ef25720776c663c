package group

import (
	"context"
	"errors"

	"github.com/fkhayef/tabsplit/internal/split"
)

// Common errors
var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrCannotRemoveSelf   = errors.New("cannot remove the app user from a group")
	ErrMemberNameRequired = errors.New("member name is required")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new group. The app's own user is always part of the
// roster, so a self member is added first, followed by any initial members
// from the request.
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*GroupWithMembers, error) {
	group, err := s.repo.Create(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	selfName := req.SelfName
	if selfName == "" {
		selfName = "You"
	}
	self, err := s.repo.AddMember(ctx, group.ID, &AddMemberRequest{Name: selfName}, true)
	if err != nil {
		// TODO: wrap group + member creation in a transaction
		return nil, err
	}

	members := []*Member{self}
	for _, memberReq := range req.Members {
		if memberReq.Name == "" {
			return nil, ErrMemberNameRequired
		}
		member, err := s.repo.AddMember(ctx, group.ID, memberReq, false)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return &GroupWithMembers{Group: group, Members: members}, nil
}

// GetByID retrieves a group with its full roster
func (s *Service) GetByID(ctx context.Context, id string) (*GroupWithMembers, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GroupWithMembers{Group: group, Members: members}, nil
}

// List retrieves groups with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Group, int, error) {
	page, perPage = clampPagination(page, perPage)

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// clampPagination normalizes paging inputs. The handler uses the same clamp
// when building response metadata so the reported page size always matches
// the rows returned.
func clampPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// Update renames an existing group
func (s *Service) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGroupNotFound
	}

	name := existing.Name
	if req.Name != nil {
		name = *req.Name
	}

	updated, err := s.repo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrGroupNotFound
	}
	return updated, nil
}

// Delete removes a group and its roster
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddMember adds a person to a group's roster
func (s *Service) AddMember(ctx context.Context, groupID string, req *AddMemberRequest) (*Member, error) {
	if req.Name == "" {
		return nil, ErrMemberNameRequired
	}

	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	return s.repo.AddMember(ctx, groupID, req, false)
}

// RemoveMember removes a person from a group's roster. The app user's own
// entry is protected; a roster without it cannot be split against.
func (s *Service) RemoveMember(ctx context.Context, groupID, memberID string) error {
	if memberID == split.SelfParticipantID {
		return ErrCannotRemoveSelf
	}

	member, err := s.repo.GetMember(ctx, groupID, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	return s.repo.RemoveMember(ctx, groupID, memberID)
}
