package query

import (
	"context"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

type GetMetrics struct {
	uowFactory *dbs.UOWFactory
}

func NewGetMetrics(uowFactory *dbs.UOWFactory) *GetMetrics {
	return &GetMetrics{uowFactory: uowFactory}
}

// Query aggregates the dashboard counters: inquiry total, a 7-day daily
// series, and per-status counts zero-filled for all four statuses.
func (q *GetMetrics) Query(ctx context.Context) (_ *dto.MetricsResponse, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	inquiryRepo := repo.NewInquiryRepo(tx)

	total, err := inquiryRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	series, err := inquiryRepo.CountLast7Days(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := inquiryRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	for _, status := range consts.InquiryStatuses {
		byStatus[string(status)] = counts[string(status)]
	}

	days := make([]dto.MetricsDay, 0, len(series))
	for _, dc := range series {
		days = append(days, dto.MetricsDay{Date: dc.Date, Count: dc.Count})
	}

	return &dto.MetricsResponse{
		TotalInquiries: total,
		Last7Days:      days,
		ByStatus:       byStatus,
	}, nil
}
