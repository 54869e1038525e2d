package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/jackc/pgx/v5"
)

const feedbackColumns = `id, name, company, project, rating, comment, status, created_at`

type FeedbackRepo struct {
	tx pgx.Tx
}

func NewFeedbackRepo(tx pgx.Tx) *FeedbackRepo {
	return &FeedbackRepo{tx: tx}
}

func (r *FeedbackRepo) Insert(ctx context.Context, feedback db.Feedback) (*db.Feedback, error) {
	row := r.tx.QueryRow(ctx, `INSERT INTO feedback (name, company, project, rating, comment)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+feedbackColumns,
		feedback.Name, feedback.Company, feedback.Project, feedback.Rating, feedback.Comment)
	created, err := scanFeedback(row)
	if err != nil {
		return nil, fmt.Errorf("err inserting feedback, %v", err)
	}
	return created, nil
}

func (r *FeedbackRepo) List(ctx context.Context, status string, limit, offset int) ([]db.Feedback, error) {
	var params []any
	var where []string

	if status != "" {
		params = append(params, status)
		where = append(where, fmt.Sprintf("status = $%d", len(params)))
	}
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}
	params = append(params, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM feedback %s
		ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		feedbackColumns, whereSQL, len(params)-1, len(params))

	rows, err := r.tx.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []db.Feedback
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, *feedback)
	}
	return feedbacks, rows.Err()
}

func (r *FeedbackRepo) SetStatus(ctx context.Context, id int64, status consts.FeedbackStatus) (bool, error) {
	tag, err := r.tx.Exec(ctx, `UPDATE feedback SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanFeedback(row pgx.Row) (*db.Feedback, error) {
	var feedback db.Feedback
	err := row.Scan(&feedback.ID, &feedback.Name, &feedback.Company, &feedback.Project,
		&feedback.Rating, &feedback.Comment, &feedback.Status, &feedback.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
