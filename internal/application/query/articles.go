package query

import (
	"context"
	"errors"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/jackc/pgx/v5"
)

type ArticleFilters struct {
	ListParams
	Category string
	Search   string
}

type ListArticles struct {
	uowFactory *dbs.UOWFactory
}

func NewListArticles(uowFactory *dbs.UOWFactory) *ListArticles {
	return &ListArticles{uowFactory: uowFactory}
}

func (q *ListArticles) Query(ctx context.Context, filters ArticleFilters) (_ []dto.ArticleResponse, err error) {
	limit, offset := filters.Normalize()

	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	articles, err := repo.NewArticleRepo(tx).List(ctx, filters.Category, filters.Search, limit, offset)
	if err != nil {
		return nil, err
	}
	return db.MapArticlesToResponses(articles), nil
}

type GetArticle struct {
	uowFactory *dbs.UOWFactory
}

func NewGetArticle(uowFactory *dbs.UOWFactory) *GetArticle {
	return &GetArticle{uowFactory: uowFactory}
}

// QueryBySlug also bumps the view counter; the public read is the only
// caller that cares about views.
func (q *GetArticle) QueryBySlug(ctx context.Context, slug string, countView bool) (_ *dto.ArticleResponse, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	articleRepo := repo.NewArticleRepo(tx)
	article, err := articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Entity: "article"}
		}
		return nil, err
	}
	if countView {
		if err = articleRepo.IncrementViews(ctx, slug); err != nil {
			return nil, err
		}
		article.Views++
	}
	resp := db.MapArticleToResponse(*article)
	return &resp, nil
}

func (q *GetArticle) QueryByID(ctx context.Context, id int64) (_ *dto.ArticleResponse, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	article, err := repo.NewArticleRepo(tx).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Entity: "article"}
		}
		return nil, err
	}
	resp := db.MapArticleToResponse(*article)
	return &resp, nil
}
