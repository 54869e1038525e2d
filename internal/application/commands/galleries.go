package commands

import (
	"context"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/google/uuid"
)

type UploadGalleryImage struct {
	uowFactory *dbs.UOWFactory
	storage    interfaces.Storage
}

func NewUploadGalleryImage(uowFactory *dbs.UOWFactory, storage interfaces.Storage) *UploadGalleryImage {
	return &UploadGalleryImage{uowFactory: uowFactory, storage: storage}
}

func (c *UploadGalleryImage) Execute(ctx context.Context, upload *multipart.FileHeader, caption *string) (_ *dto.GalleryImageResponse, err error) {
	if upload == nil {
		return nil, errs.NewValidation("image", "no image file uploaded")
	}

	f, err := upload.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key := "galleries/" + uuid.New().String() + strings.ToLower(filepath.Ext(upload.Filename))
	contentType := upload.Header.Get("Content-Type")
	var ct *string
	if contentType != "" {
		ct = &contentType
	}
	url, err := c.storage.UploadFile(ctx, key, ct, f)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	created, err := repo.NewGalleryRepo(tx).Insert(ctx, db.GalleryImage{
		Filename: &key,
		URL:      url,
		Caption:  caption,
	})
	if err != nil {
		return nil, err
	}
	resp := db.MapGalleryImageToResponse(*created)
	return &resp, nil
}

type DeleteGalleryImage struct {
	uowFactory *dbs.UOWFactory
	storage    interfaces.Storage
}

func NewDeleteGalleryImage(uowFactory *dbs.UOWFactory, storage interfaces.Storage) *DeleteGalleryImage {
	return &DeleteGalleryImage{uowFactory: uowFactory, storage: storage}
}

// Execute removes the row; removing the backing object is best effort and
// never fails the deletion.
func (c *DeleteGalleryImage) Execute(ctx context.Context, id int64) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	galleryRepo := repo.NewGalleryRepo(tx)
	image, err := galleryRepo.GetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return errs.NotFoundError{Entity: "gallery image"}
		}
		return err
	}

	if _, err = galleryRepo.Delete(ctx, id); err != nil {
		return err
	}

	if image.Filename != nil {
		if deleteErr := c.storage.DeleteFile(ctx, *image.Filename); deleteErr != nil {
			slog.Warn("failed to delete gallery object", "key", *image.Filename, "err", deleteErr)
		}
	}
	return nil
}
