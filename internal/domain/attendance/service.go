package attendance

import "context"

type Service interface {
	Daily(ctx context.Context, date string) (*DailyResponse, error)
	Monthly(ctx context.Context, month string) (*MonthlyResponse, error)
}
