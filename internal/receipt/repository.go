package receipt

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fkhayef/tabsplit/internal/split"
)

// Repository handles receipt and split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new receipt repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithSplits stores a receipt, its line items and the computed
// per-person splits in one transaction.
func (r *Repository) CreateWithSplits(ctx context.Context, groupID *string, title string, in *split.Receipt, subtotal float64, results []*split.PersonResult) (*ReceiptWithSplits, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	receipt := &Receipt{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO receipts (id, group_id, title, subtotal, tax, tip, misc)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, group_id, title, subtotal, tax, tip, misc, created_at
	`, uuid.NewString(), groupID, title, subtotal, in.Additional.Tax, in.Additional.Tip, in.Additional.Misc).Scan(
		&receipt.ID,
		&receipt.GroupID,
		&receipt.Title,
		&receipt.Subtotal,
		&receipt.Tax,
		&receipt.Tip,
		&receipt.Misc,
		&receipt.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	items := make([]*Item, len(in.Items))
	for i, lineItem := range in.Items {
		item := &Item{
			ID:        uuid.NewString(),
			ReceiptID: receipt.ID,
			Name:      lineItem.Name,
			Price:     lineItem.Price,
			People:    lineItem.People,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO receipt_items (id, receipt_id, name, price, people, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, item.ID, item.ReceiptID, item.Name, item.Price, pq.Array(item.People), i)
		if err != nil {
			return nil, fmt.Errorf("failed to create receipt item: %w", err)
		}
		items[i] = item
	}

	splits := make([]*PersonSplit, len(results))
	for i, result := range results {
		personSplit := &PersonSplit{
			ID:            uuid.NewString(),
			ReceiptID:     receipt.ID,
			ParticipantID: result.ParticipantID,
			Name:          result.Name,
			Subtotal:      result.Subtotal,
			Tax:           result.Tax,
			Tip:           result.Tip,
			Misc:          result.Misc,
			FinalTotal:    result.FinalTotal,
		}
		if result.Phone != "" {
			phone := result.Phone
			personSplit.Phone = &phone
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO person_splits (id, receipt_id, participant_id, name, phone, subtotal, tax, tip, misc, final_total, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, personSplit.ID, personSplit.ReceiptID, personSplit.ParticipantID, personSplit.Name,
			personSplit.Phone, personSplit.Subtotal, personSplit.Tax, personSplit.Tip,
			personSplit.Misc, personSplit.FinalTotal, i)
		if err != nil {
			return nil, fmt.Errorf("failed to create person split: %w", err)
		}

		personSplit.Items = make([]*SplitItem, len(result.Items))
		for j, allocated := range result.Items {
			splitItem := &SplitItem{
				ID:                  uuid.NewString(),
				PersonSplitID:       personSplit.ID,
				Name:                allocated.Name,
				PricePerParticipant: allocated.PricePerParticipant,
				TotalItemPrice:      allocated.TotalItemPrice,
				ParticipantCount:    allocated.ParticipantCount,
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO person_split_items (id, person_split_id, name, price_per_participant, total_item_price, participant_count, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, splitItem.ID, splitItem.PersonSplitID, splitItem.Name,
				splitItem.PricePerParticipant, splitItem.TotalItemPrice, splitItem.ParticipantCount, j)
			if err != nil {
				return nil, fmt.Errorf("failed to create split item: %w", err)
			}
			personSplit.Items[j] = splitItem
		}
		splits[i] = personSplit
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit receipt: %w", err)
	}

	return &ReceiptWithSplits{Receipt: receipt, Items: items, Splits: splits}, nil
}

// GetByID retrieves a stored receipt with its items and splits
func (r *Repository) GetByID(ctx context.Context, id string) (*ReceiptWithSplits, error) {
	receipt := &Receipt{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, group_id, title, subtotal, tax, tip, misc, created_at
		FROM receipts
		WHERE id = $1
	`, id).Scan(
		&receipt.ID,
		&receipt.GroupID,
		&receipt.Title,
		&receipt.Subtotal,
		&receipt.Tax,
		&receipt.Tip,
		&receipt.Misc,
		&receipt.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	splits, err := r.getSplits(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ReceiptWithSplits{Receipt: receipt, Items: items, Splits: splits}, nil
}

func (r *Repository) getItems(ctx context.Context, receiptID string) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, receipt_id, name, price, people
		FROM receipt_items
		WHERE receipt_id = $1
		ORDER BY position
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.ReceiptID, &item.Name, &item.Price, pq.Array(&item.People)); err != nil {
			return nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt items: %w", err)
	}

	return items, nil
}

func (r *Repository) getSplits(ctx context.Context, receiptID string) ([]*PersonSplit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, receipt_id, participant_id, name, phone, subtotal, tax, tip, misc, final_total
		FROM person_splits
		WHERE receipt_id = $1
		ORDER BY position
	`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get person splits: %w", err)
	}
	defer rows.Close()

	var splits []*PersonSplit
	for rows.Next() {
		personSplit := &PersonSplit{}
		if err := rows.Scan(
			&personSplit.ID,
			&personSplit.ReceiptID,
			&personSplit.ParticipantID,
			&personSplit.Name,
			&personSplit.Phone,
			&personSplit.Subtotal,
			&personSplit.Tax,
			&personSplit.Tip,
			&personSplit.Misc,
			&personSplit.FinalTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person split: %w", err)
		}
		splits = append(splits, personSplit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate person splits: %w", err)
	}

	for _, personSplit := range splits {
		items, err := r.getSplitItems(ctx, personSplit.ID)
		if err != nil {
			return nil, err
		}
		personSplit.Items = items
	}

	return splits, nil
}

func (r *Repository) getSplitItems(ctx context.Context, personSplitID string) ([]*SplitItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, person_split_id, name, price_per_participant, total_item_price, participant_count
		FROM person_split_items
		WHERE person_split_id = $1
		ORDER BY position
	`, personSplitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get split items: %w", err)
	}
	defer rows.Close()

	var items []*SplitItem
	for rows.Next() {
		item := &SplitItem{}
		if err := rows.Scan(
			&item.ID,
			&item.PersonSplitID,
			&item.Name,
			&item.PricePerParticipant,
			&item.TotalItemPrice,
			&item.ParticipantCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split items: %w", err)
	}

	return items, nil
}

// ListByGroupID retrieves receipts for a group, newest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID string, limit, offset int) ([]*Receipt, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM receipts WHERE group_id = $1`, groupID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, group_id, title, subtotal, tax, tip, misc, created_at
		FROM receipts
		WHERE group_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []*Receipt
	for rows.Next() {
		receipt := &Receipt{}
		if err := rows.Scan(
			&receipt.ID,
			&receipt.GroupID,
			&receipt.Title,
			&receipt.Subtotal,
			&receipt.Tax,
			&receipt.Tip,
			&receipt.Misc,
			&receipt.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, total, nil
}

// Delete removes a receipt and, via cascade, its items and splits
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrReceiptNotFound
	}

	return nil
}
