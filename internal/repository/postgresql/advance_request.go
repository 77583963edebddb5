package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/advance"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/database"
)

type advanceRequestRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRequestRepository(db *database.DB) advance.Repository {
	return &advanceRequestRepositoryImpl{db: db}
}

const advanceRequestColumns = `
	ar.id, ar.user_id, ar.user_name, ar.amount, ar.reason, ar.status,
	ar.submitted_at, ar.created_at, ar.updated_at
`

func scanAdvanceRequest(row pgx.Row) (*advance.AdvanceRequest, error) {
	var ar advance.AdvanceRequest
	err := row.Scan(
		&ar.ID,
		&ar.UserID,
		&ar.UserName,
		&ar.Amount,
		&ar.Reason,
		&ar.Status,
		&ar.SubmittedAt,
		&ar.CreatedAt,
		&ar.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ar, nil
}

// Create implements advance.Repository.
func (r *advanceRequestRepositoryImpl) Create(ctx context.Context, ar *advance.AdvanceRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_requests (user_id, user_name, amount, reason, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		ar.UserID,
		ar.UserName,
		ar.Amount,
		ar.Reason,
		ar.Status,
		ar.SubmittedAt,
	).Scan(&ar.ID, &ar.CreatedAt, &ar.UpdatedAt)
}

// GetByID implements advance.Repository.
func (r *advanceRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (*advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM advance_requests ar
		WHERE ar.id = $1
	`, advanceRequestColumns)

	ar, err := scanAdvanceRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, advance.ErrAdvanceRequestNotFound
		}
		return nil, err
	}

	return ar, nil
}

// List implements advance.Repository.
func (r *advanceRequestRepositoryImpl) List(ctx context.Context, filter advance.Filter) ([]advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("ar.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("ar.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM advance_requests ar
		%s
		ORDER BY ar.submitted_at DESC
	`, advanceRequestColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []advance.AdvanceRequest
	for rows.Next() {
		ar, err := scanAdvanceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *ar)
	}

	return requests, rows.Err()
}

// Update implements advance.Repository.
func (r *advanceRequestRepositoryImpl) Update(ctx context.Context, ar *advance.AdvanceRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_requests
		SET amount = $1, reason = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, ar.Amount, ar.Reason, ar.ID).Scan(&ar.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.ErrAdvanceRequestNotFound
		}
		return err
	}

	return nil
}

// UpdateStatus implements advance.Repository.
func (r *advanceRequestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status advance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceRequestNotFound
	}

	return nil
}

// Delete implements advance.Repository.
func (r *advanceRequestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advance_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceRequestNotFound
	}

	return nil
}

// SumApprovedInMonth implements advance.Repository. The comparison is on
// the date part of submitted_at so both month boundaries are inclusive.
func (r *advanceRequestRepositoryImpl) SumApprovedInMonth(ctx context.Context, userID int64, month string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advance_requests
		WHERE user_id = $1
		  AND status = 'approved'
		  AND to_char(submitted_at::date, 'YYYY-MM') = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, userID, month).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// ListApprovedInMonth implements advance.Repository.
func (r *advanceRequestRepositoryImpl) ListApprovedInMonth(ctx context.Context, userID int64, month string) ([]advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM advance_requests ar
		WHERE ar.user_id = $1
		  AND ar.status = 'approved'
		  AND to_char(ar.submitted_at::date, 'YYYY-MM') = $2
		ORDER BY ar.submitted_at
	`, advanceRequestColumns)

	rows, err := q.Query(ctx, query, userID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []advance.AdvanceRequest
	for rows.Next() {
		ar, err := scanAdvanceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *ar)
	}

	return requests, rows.Err()
}
