package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, title, description, date, time_range, location, type, status,
	attendees, max_attendees, featured, image_url, created_at, updated_at`

type EventRepo struct {
	tx pgx.Tx
}

func NewEventRepo(tx pgx.Tx) *EventRepo {
	return &EventRepo{tx: tx}
}

func (r *EventRepo) Insert(ctx context.Context, event db.Event) (*db.Event, error) {
	row := r.tx.QueryRow(ctx, `INSERT INTO events
			(title, description, date, time_range, location, type, status, attendees, max_attendees, featured, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+eventColumns,
		event.Title, event.Description, event.Date, event.TimeRange, event.Location,
		event.Type, event.Status, event.Attendees, event.MaxAttendees, event.Featured, event.ImageURL)
	created, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("err inserting event, %v", err)
	}
	return created, nil
}

func (r *EventRepo) Update(ctx context.Context, id int64, patch db.EventPatch) (*db.Event, error) {
	row := r.tx.QueryRow(ctx, `UPDATE events SET
			title = COALESCE($1, title),
			description = COALESCE($2, description),
			date = COALESCE($3, date),
			time_range = COALESCE($4, time_range),
			location = COALESCE($5, location),
			type = COALESCE($6, type),
			status = COALESCE($7, status),
			attendees = COALESCE($8, attendees),
			max_attendees = COALESCE($9, max_attendees),
			featured = COALESCE($10, featured),
			image_url = CASE WHEN $11 THEN $12 ELSE image_url END,
			updated_at = NOW()
		WHERE id = $13
		RETURNING `+eventColumns,
		patch.Title, patch.Description, patch.Date, patch.TimeRange, patch.Location,
		patch.Type, patch.Status, patch.Attendees, patch.MaxAttendees, patch.Featured,
		patch.SetImage, patch.ImageURL, id)
	updated, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Entity: "event"}
		}
		return nil, fmt.Errorf("err updating event, %v", err)
	}
	return updated, nil
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*db.Event, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

func (r *EventRepo) List(ctx context.Context, status string, limit, offset int) ([]db.Event, error) {
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
	query := fmt.Sprintf(`SELECT %s FROM events %s
		ORDER BY date DESC, id DESC LIMIT $%d OFFSET $%d`,
		eventColumns, whereSQL, len(params)-1, len(params))

	rows, err := r.tx.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

func (r *EventRepo) Delete(ctx context.Context, id int64) (*db.Event, error) {
	row := r.tx.QueryRow(ctx, `DELETE FROM events WHERE id = $1 RETURNING `+eventColumns, id)
	return scanEvent(row)
}

func scanEvent(row pgx.Row) (*db.Event, error) {
	var event db.Event
	err := row.Scan(&event.ID, &event.Title, &event.Description, &event.Date,
		&event.TimeRange, &event.Location, &event.Type, &event.Status,
		&event.Attendees, &event.MaxAttendees, &event.Featured, &event.ImageURL,
		&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
