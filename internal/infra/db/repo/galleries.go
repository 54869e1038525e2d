package repo

import (
	"context"
	"fmt"

	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/jackc/pgx/v5"
)

const galleryColumns = `id, filename, url, caption, uploaded_at`

type GalleryRepo struct {
	tx pgx.Tx
}

func NewGalleryRepo(tx pgx.Tx) *GalleryRepo {
	return &GalleryRepo{tx: tx}
}

func (r *GalleryRepo) Insert(ctx context.Context, image db.GalleryImage) (*db.GalleryImage, error) {
	row := r.tx.QueryRow(ctx, `INSERT INTO gallery_images (filename, url, caption)
		VALUES ($1,$2,$3)
		RETURNING `+galleryColumns,
		image.Filename, image.URL, image.Caption)
	created, err := scanGalleryImage(row)
	if err != nil {
		return nil, fmt.Errorf("err inserting gallery image, %v", err)
	}
	return created, nil
}

func (r *GalleryRepo) List(ctx context.Context, limit, offset int) ([]db.GalleryImage, error) {
	rows, err := r.tx.Query(ctx, `SELECT `+galleryColumns+` FROM gallery_images
		ORDER BY uploaded_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []db.GalleryImage
	for rows.Next() {
		image, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *image)
	}
	return images, rows.Err()
}

func (r *GalleryRepo) GetByID(ctx context.Context, id int64) (*db.GalleryImage, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = $1`, id)
	return scanGalleryImage(row)
}

func (r *GalleryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.tx.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanGalleryImage(row pgx.Row) (*db.GalleryImage, error) {
	var image db.GalleryImage
	err := row.Scan(&image.ID, &image.Filename, &image.URL, &image.Caption, &image.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &image, nil
}
