package share

import (
	"context"

	"github.com/fkhayef/tabsplit/internal/export"
	"github.com/fkhayef/tabsplit/internal/receipt"
	"github.com/fkhayef/tabsplit/internal/split"
)

// Service builds shareable artifacts for stored receipts
type Service struct {
	receiptRepo   *receipt.Repository
	paymentHandle string
}

// NewService creates a new share service. paymentHandle is the configured
// default; requests may override it.
func NewService(receiptRepo *receipt.Repository, paymentHandle string) *Service {
	return &Service{
		receiptRepo:   receiptRepo,
		paymentHandle: paymentHandle,
	}
}

// BuildMessage renders the shareable message for a stored receipt. The
// message skips the calling participant, identified by selfID (empty falls
// back to the app-user sentinel). An empty handle falls back to the configured
// default; if neither is set the formatter's configuration error surfaces to
// the caller.
func (s *Service) BuildMessage(ctx context.Context, receiptID, selfID, handle string) (string, error) {
	stored, err := s.loadReceipt(ctx, receiptID)
	if err != nil {
		return "", err
	}

	if selfID == "" {
		selfID = split.SelfParticipantID
	}
	if handle == "" {
		handle = s.paymentHandle
	}

	return export.ToShareableMessage(selfID, stored.EngineResults(), handle)
}

// BuildPayload renders the API payload for a stored receipt
func (s *Service) BuildPayload(ctx context.Context, receiptID string) (*export.Payload, error) {
	stored, err := s.loadReceipt(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	return export.ToAPIPayload(stored.EngineResults(), stored.Receipt.ID), nil
}

func (s *Service) loadReceipt(ctx context.Context, receiptID string) (*receipt.ReceiptWithSplits, error) {
	stored, err := s.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, receipt.ErrReceiptNotFound
	}
	return stored, nil
}
