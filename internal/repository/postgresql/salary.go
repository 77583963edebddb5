package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/user"
	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) user.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// Upsert implements user.SalaryRepository.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, s *user.MonthlySalary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_salaries (user_id, month, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, month)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
		RETURNING updated_at
	`

	return q.QueryRow(ctx, query, s.UserID, s.Month, s.Amount).Scan(&s.UpdatedAt)
}

// Get implements user.SalaryRepository.
func (r *salaryRepositoryImpl) Get(ctx context.Context, userID int64, month string) (*user.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, month, amount, updated_at
		FROM monthly_salaries
		WHERE user_id = $1 AND month = $2
	`

	var found user.MonthlySalary
	err := q.QueryRow(ctx, query, userID, month).Scan(
		&found.UserID,
		&found.Month,
		&found.Amount,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrSalaryNotSet
		}
		return nil, err
	}

	return &found, nil
}

// ListByUser implements user.SalaryRepository.
func (r *salaryRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]user.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, month, amount, updated_at
		FROM monthly_salaries
		WHERE user_id = $1
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var salaries []user.MonthlySalary
	for rows.Next() {
		var s user.MonthlySalary
		if err := rows.Scan(&s.UserID, &s.Month, &s.Amount, &s.UpdatedAt); err != nil {
			return nil, err
		}
		salaries = append(salaries, s)
	}

	return salaries, rows.Err()
}

// ListForMonth implements user.SalaryRepository.
func (r *salaryRepositoryImpl) ListForMonth(ctx context.Context, month string) (map[int64]user.MonthlySalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, month, amount, updated_at
		FROM monthly_salaries
		WHERE month = $1
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	salaries := make(map[int64]user.MonthlySalary)
	for rows.Next() {
		var s user.MonthlySalary
		if err := rows.Scan(&s.UserID, &s.Month, &s.Amount, &s.UpdatedAt); err != nil {
			return nil, err
		}
		salaries[s.UserID] = s
	}

	return salaries, rows.Err()
}
