package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/jackc/pgx/v5"
)

const inquiryColumns = `id, name, email, phone, company, country, job_title, job_details, status, submitted_at`

type InquiryRepo struct {
	tx pgx.Tx
}

func NewInquiryRepo(tx pgx.Tx) *InquiryRepo {
	return &InquiryRepo{tx: tx}
}

func (r *InquiryRepo) Insert(ctx context.Context, inquiry db.Inquiry) (int64, time.Time, error) {
	var id int64
	var submittedAt time.Time
	err := r.tx.QueryRow(ctx, `INSERT INTO customer_inquiries
			(name, email, phone, company, country, job_title, job_details)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, submitted_at`,
		inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Company, inquiry.Country,
		inquiry.JobTitle, inquiry.JobDetails).Scan(&id, &submittedAt)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("err inserting inquiry, %v", err)
	}
	return id, submittedAt, nil
}

func (r *InquiryRepo) GetByID(ctx context.Context, id int64) (*db.Inquiry, error) {
	var inquiry db.Inquiry
	err := r.tx.QueryRow(ctx,
		`SELECT `+inquiryColumns+` FROM customer_inquiries WHERE id = $1`, id).Scan(
		&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Company,
		&inquiry.Country, &inquiry.JobTitle, &inquiry.JobDetails, &inquiry.Status, &inquiry.SubmittedAt)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// List filters by exact status and a lowercase substring over name, email,
// company, job title and country. Ordering is submitted_at desc with id desc
// as the tiebreak so pagination stays deterministic.
func (r *InquiryRepo) List(ctx context.Context, status, q string, limit, offset int) ([]db.Inquiry, error) {
	var params []any
	var where []string

	if status != "" {
		params = append(params, status)
		where = append(where, fmt.Sprintf("status = $%d", len(params)))
	}
	if q != "" {
		params = append(params, "%"+strings.ToLower(q)+"%")
		n := len(params)
		where = append(where, fmt.Sprintf(
			"(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d OR LOWER(company) LIKE $%d OR LOWER(job_title) LIKE $%d OR LOWER(country) LIKE $%d)",
			n, n, n, n, n))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}
	params = append(params, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM customer_inquiries %s
		ORDER BY submitted_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		inquiryColumns, whereSQL, len(params)-1, len(params))

	rows, err := r.tx.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInquiries(rows)
}

func (r *InquiryRepo) All(ctx context.Context) ([]db.Inquiry, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT `+inquiryColumns+` FROM customer_inquiries ORDER BY submitted_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInquiries(rows)
}

func (r *InquiryRepo) SetStatus(ctx context.Context, id int64, status consts.InquiryStatus) (bool, error) {
	tag, err := r.tx.Exec(ctx, `UPDATE customer_inquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InquiryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, `DELETE FROM customer_inquiries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *InquiryRepo) CountTotal(ctx context.Context) (int, error) {
	var total int
	err := r.tx.QueryRow(ctx, `SELECT COUNT(*)::int FROM customer_inquiries`).Scan(&total)
	return total, err
}

// CountLast7Days returns one row per day for the trailing week, zero-filled.
func (r *InquiryRepo) CountLast7Days(ctx context.Context) ([]db.DailyCount, error) {
	rows, err := r.tx.Query(ctx, `
		WITH days AS (
			SELECT generate_series(
				(CURRENT_DATE - INTERVAL '6 days')::date,
				CURRENT_DATE::date,
				'1 day'
			)::date AS day
		)
		SELECT d.day::text, COALESCE(COUNT(i.id), 0)::int
		FROM days d
		LEFT JOIN customer_inquiries i ON i.submitted_at::date = d.day
		GROUP BY d.day
		ORDER BY d.day`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []db.DailyCount
	for rows.Next() {
		var dc db.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		series = append(series, dc)
	}
	return series, rows.Err()
}

func (r *InquiryRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.tx.Query(ctx,
		`SELECT status::text, COUNT(*)::int FROM customer_inquiries GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func scanInquiries(rows pgx.Rows) ([]db.Inquiry, error) {
	var inquiries []db.Inquiry
	for rows.Next() {
		var inquiry db.Inquiry
		err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone,
			&inquiry.Company, &inquiry.Country, &inquiry.JobTitle, &inquiry.JobDetails,
			&inquiry.Status, &inquiry.SubmittedAt)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}
