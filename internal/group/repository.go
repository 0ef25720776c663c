package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/fkhayef/tabsplit/internal/split"
)

// Repository handles group and member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, name string) (*Group, error) {
	query := `
		INSERT INTO groups (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT id, name, created_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// List retrieves groups ordered by creation time, newest first
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Group, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM groups`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT id, name, created_at
		FROM groups
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(&group.ID, &group.Name, &group.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, total, nil
}

// Update renames a group
func (r *Repository) Update(ctx context.Context, id, name string) (*Group, error) {
	query := `
		UPDATE groups
		SET name = $2
		WHERE id = $1
		RETURNING id, name, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, name).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// Delete removes a group and, via cascade, its members
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// AddMember inserts a member into a group. The id is generated unless the
// member is the app's own user, which keeps the reserved sentinel id.
func (r *Repository) AddMember(ctx context.Context, groupID string, req *AddMemberRequest, self bool) (*Member, error) {
	memberID := uuid.NewString()
	if self {
		memberID = split.SelfParticipantID
	}

	query := `
		INSERT INTO group_members (id, group_id, name, phone, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, group_id, name, phone, avatar_url, added_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, memberID, groupID, req.Name, req.Phone, req.AvatarURL).Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.Phone,
		&member.AvatarURL,
		&member.AddedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// GetMembers retrieves the full roster of a group in insertion order
func (r *Repository) GetMembers(ctx context.Context, groupID string) ([]*Member, error) {
	query := `
		SELECT id, group_id, name, phone, avatar_url, added_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY added_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.ID,
			&member.GroupID,
			&member.Name,
			&member.Phone,
			&member.AvatarURL,
			&member.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// GetMember retrieves a single member of a group
func (r *Repository) GetMember(ctx context.Context, groupID, memberID string) (*Member, error) {
	query := `
		SELECT id, group_id, name, phone, avatar_url, added_at
		FROM group_members
		WHERE group_id = $1 AND id = $2
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, memberID).Scan(
		&member.ID,
		&member.GroupID,
		&member.Name,
		&member.Phone,
		&member.AvatarURL,
		&member.AddedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// RemoveMember deletes a member from a group
func (r *Repository) RemoveMember(ctx context.Context, groupID, memberID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND id = $2`, groupID, memberID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
