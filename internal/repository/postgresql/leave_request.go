package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/leave"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.user_name,
	lr.date, lr.shift, lr.start_date, lr.end_date, lr.start_shift, lr.end_shift,
	lr.reason, lr.status, lr.submitted_at, lr.created_by_manager,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (*leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	var shift, startShift, endShift *string
	err := row.Scan(
		&lr.ID,
		&lr.UserID,
		&lr.UserName,
		&lr.Date,
		&shift,
		&lr.StartDate,
		&lr.EndDate,
		&startShift,
		&endShift,
		&lr.Reason,
		&lr.Status,
		&lr.SubmittedAt,
		&lr.CreatedByManager,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if shift != nil {
		lr.Shift = *shift
	}
	if startShift != nil {
		lr.StartShift = *startShift
	}
	if endShift != nil {
		lr.EndShift = *endShift
	}
	return &lr, nil
}

// Create implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			user_id, user_name, date, shift,
			start_date, end_date, start_shift, end_shift,
			reason, status, submitted_at, created_by_manager
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		lr.UserID,
		lr.UserName,
		lr.Date,
		nullIfEmpty(lr.Shift),
		lr.StartDate,
		lr.EndDate,
		nullIfEmpty(lr.StartShift),
		nullIfEmpty(lr.EndShift),
		lr.Reason,
		lr.Status,
		lr.SubmittedAt,
		lr.CreatedByManager,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		WHERE lr.id = $1
	`, leaveRequestColumns)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, err
	}

	return lr, nil
}

// List implements leave.Repository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Month != nil {
		// Month filtering applies to single-date rows only; legacy range
		// rows have no single leave date to match on.
		conditions = append(conditions, fmt.Sprintf("to_char(lr.date, 'YYYY-MM') = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		%s
		ORDER BY lr.submitted_at DESC
	`, leaveRequestColumns, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *lr)
	}

	return requests, rows.Err()
}

// Update implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET date = $1, shift = $2, reason = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, lr.Date, nullIfEmpty(lr.Shift), lr.Reason, lr.ID).Scan(&lr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return err
	}

	return nil
}

// UpdateStatus implements leave.Repository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// Delete implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// ListApprovedByUser implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListApprovedByUser(ctx context.Context, userID int64) ([]leave.LeaveRequest, error) {
	status := leave.StatusApproved
	return r.List(ctx, leave.Filter{UserID: &userID, Status: &status})
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
