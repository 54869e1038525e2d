package query

import (
	"context"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

type ListGalleryImages struct {
	uowFactory *dbs.UOWFactory
}

func NewListGalleryImages(uowFactory *dbs.UOWFactory) *ListGalleryImages {
	return &ListGalleryImages{uowFactory: uowFactory}
}

func (q *ListGalleryImages) Query(ctx context.Context, params ListParams) (_ []dto.GalleryImageResponse, err error) {
	limit, offset := params.Normalize()

	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	images, err := repo.NewGalleryRepo(tx).List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return db.MapGalleryImagesToResponses(images), nil
}
