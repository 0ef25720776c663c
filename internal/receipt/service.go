package receipt

import (
	"context"
	"errors"

	"github.com/fkhayef/tabsplit/internal/group"
	"github.com/fkhayef/tabsplit/internal/split"
)

// Common errors
var (
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrRosterRequired  = errors.New("either a roster or a group_id is required")
)

// Service handles receipt business logic
type Service struct {
	repo      *Repository
	groupRepo *group.Repository
}

// NewService creates a new receipt service with dependencies injected
func NewService(repo *Repository, groupRepo *group.Repository) *Service {
	return &Service{
		repo:      repo,
		groupRepo: groupRepo,
	}
}

// Split runs a stateless split computation. The roster comes inline with the
// request or, when a group id is given, from the stored group. Nothing is
// persisted.
func (s *Service) Split(ctx context.Context, req *SplitRequest) ([]*split.PersonResult, error) {
	roster, err := s.resolveRoster(ctx, req.Roster, req.GroupID)
	if err != nil {
		return nil, err
	}

	return split.ProcessReceipt(req.Receipt.ToEngineReceipt(), roster)
}

// Create computes a split against the group's roster and persists the receipt
// together with the results.
func (s *Service) Create(ctx context.Context, req *CreateReceiptRequest) (*ReceiptWithSplits, error) {
	roster, err := s.resolveRoster(ctx, nil, req.GroupID)
	if err != nil {
		return nil, err
	}

	engineReceipt := req.Receipt.ToEngineReceipt()
	results, err := split.ProcessReceipt(engineReceipt, roster)
	if err != nil {
		return nil, err
	}

	// The authoritative subtotal is what the engine allocated, not the
	// figure printed on the receipt.
	var subtotal float64
	for _, result := range results {
		subtotal += result.Subtotal
	}

	groupID := req.GroupID
	return s.repo.CreateWithSplits(ctx, &groupID, req.Title, engineReceipt, subtotal, results)
}

// GetByID retrieves a stored receipt with its items and splits
func (s *Service) GetByID(ctx context.Context, id string) (*ReceiptWithSplits, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrReceiptNotFound
	}
	return result, nil
}

// ListByGroupID retrieves receipts for a group
func (s *Service) ListByGroupID(ctx context.Context, groupID string, page, perPage int) ([]*Receipt, int, error) {
	page, perPage = clampPagination(page, perPage)

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
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

// Delete removes a stored receipt
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) resolveRoster(ctx context.Context, inline []ParticipantInput, groupID string) (*split.Roster, error) {
	if len(inline) > 0 {
		return ToEngineRoster(inline), nil
	}
	if groupID == "" {
		return nil, ErrRosterRequired
	}

	stored, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, group.ErrGroupNotFound
	}

	members, err := s.groupRepo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return group.ToRoster(members), nil
}
