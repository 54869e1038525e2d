package commands

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

type CreateArticle struct {
	uowFactory *dbs.UOWFactory
	storage    interfaces.Storage
}

func NewCreateArticle(uowFactory *dbs.UOWFactory, storage interfaces.Storage) *CreateArticle {
	return &CreateArticle{uowFactory: uowFactory, storage: storage}
}

func (c *CreateArticle) Execute(ctx context.Context, req dto.UpsertArticleRequest, upload *multipart.FileHeader) (_ *dto.ArticleResponse, err error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Title == nil {
		return nil, errs.NewValidation("title", "required")
	}

	slug := ""
	if req.Slug != nil && *req.Slug != "" {
		slug = Slugify(*req.Slug)
	} else {
		slug = Slugify(*req.Title)
	}
	if slug == "" {
		return nil, errs.NewValidation("slug", "cannot be derived from title")
	}

	_, imageURL, err := resolveImage(ctx, c.storage, "articles", upload, req.ImageURL, false)
	if err != nil {
		return nil, err
	}

	article := db.Article{
		Title:    *req.Title,
		Slug:     slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
		ReadTime: req.ReadTime,
		ImageURL: imageURL,
	}
	if req.Featured != nil {
		article.Featured = *req.Featured
	}
	if req.PublishedAt != nil {
		publishedAt, parseErr := time.Parse(time.RFC3339, *req.PublishedAt)
		if parseErr != nil {
			return nil, errs.NewValidation("publishedAt", "must be RFC3339")
		}
		article.PublishedAt = &publishedAt
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	created, err := repo.NewArticleRepo(tx).Insert(ctx, article)
	if err != nil {
		return nil, err
	}
	resp := db.MapArticleToResponse(*created)
	return &resp, nil
}

type UpdateArticle struct {
	uowFactory *dbs.UOWFactory
	storage    interfaces.Storage
}

func NewUpdateArticle(uowFactory *dbs.UOWFactory, storage interfaces.Storage) *UpdateArticle {
	return &UpdateArticle{uowFactory: uowFactory, storage: storage}
}

func (c *UpdateArticle) Execute(ctx context.Context, id int64, req dto.UpsertArticleRequest, upload *multipart.FileHeader) (_ *dto.ArticleResponse, err error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	setImage, imageURL, err := resolveImage(ctx, c.storage, "articles", upload, req.ImageURL, req.ClearImage)
	if err != nil {
		return nil, err
	}

	patch := db.ArticlePatch{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		Tags:     req.Tags,
		ReadTime: req.ReadTime,
		Featured: req.Featured,
		SetImage: setImage,
		ImageURL: imageURL,
	}
	if req.Slug != nil && *req.Slug != "" {
		slug := Slugify(*req.Slug)
		patch.Slug = &slug
	}
	if req.PublishedAt != nil {
		publishedAt, parseErr := time.Parse(time.RFC3339, *req.PublishedAt)
		if parseErr != nil {
			return nil, errs.NewValidation("publishedAt", "must be RFC3339")
		}
		patch.PublishedAt = &publishedAt
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	updated, err := repo.NewArticleRepo(tx).Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	resp := db.MapArticleToResponse(*updated)
	return &resp, nil
}

type DeleteArticle struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteArticle(uowFactory *dbs.UOWFactory) *DeleteArticle {
	return &DeleteArticle{uowFactory: uowFactory}
}

func (c *DeleteArticle) Execute(ctx context.Context, id int64) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	_, err = repo.NewArticleRepo(tx).Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return errs.NotFoundError{Entity: "article"}
		}
		return err
	}
	return nil
}
