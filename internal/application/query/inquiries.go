package query

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/jackc/pgx/v5"
)

type InquiryFilters struct {
	ListParams
	Status string
	Search string
}

type ListInquiries struct {
	uowFactory *dbs.UOWFactory
}

func NewListInquiries(uowFactory *dbs.UOWFactory) *ListInquiries {
	return &ListInquiries{uowFactory: uowFactory}
}

func (q *ListInquiries) Query(ctx context.Context, filters InquiryFilters) (_ []dto.InquiryResponse, err error) {
	if filters.Status != "" && !consts.IsInquiryStatus(filters.Status) {
		return nil, errs.NewValidation("status", "must be one of new, in-progress, completed, archived")
	}
	limit, offset := filters.Normalize()

	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	inquiries, err := repo.NewInquiryRepo(tx).List(ctx, filters.Status, filters.Search, limit, offset)
	if err != nil {
		return nil, err
	}
	return db.MapInquiriesToResponses(inquiries), nil
}

type GetInquiry struct {
	uowFactory *dbs.UOWFactory
}

func NewGetInquiry(uowFactory *dbs.UOWFactory) *GetInquiry {
	return &GetInquiry{uowFactory: uowFactory}
}

func (q *GetInquiry) Query(ctx context.Context, id int64) (_ *dto.InquiryResponse, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	inquiry, err := repo.NewInquiryRepo(tx).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Entity: "inquiry"}
		}
		return nil, err
	}
	resp := db.MapInquiryToResponse(*inquiry)
	return &resp, nil
}

type ExportInquiries struct {
	uowFactory *dbs.UOWFactory
}

func NewExportInquiries(uowFactory *dbs.UOWFactory) *ExportInquiries {
	return &ExportInquiries{uowFactory: uowFactory}
}

// Query renders every inquiry as CSV, most recent first.
func (q *ExportInquiries) Query(ctx context.Context) (_ []byte, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	inquiries, err := repo.NewInquiryRepo(tx).All(ctx)
	if err != nil {
		return nil, err
	}
	return RenderInquiriesCSV(inquiries)
}

func RenderInquiriesCSV(inquiries []db.Inquiry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "email", "phone", "company", "country", "job_title", "job_details", "status", "submitted_at"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, inquiry := range inquiries {
		record := []string{
			fmt.Sprintf("%d", inquiry.ID),
			inquiry.Name,
			inquiry.Email,
			derefOrEmpty(inquiry.Phone),
			derefOrEmpty(inquiry.Company),
			derefOrEmpty(inquiry.Country),
			derefOrEmpty(inquiry.JobTitle),
			inquiry.JobDetails,
			string(inquiry.Status),
			inquiry.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
