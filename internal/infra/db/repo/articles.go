package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const articleColumns = `id, title, slug, excerpt, content, author, category, tags, read_time,
	views, featured, image_url, published_at, created_at, updated_at`

type ArticleRepo struct {
	tx pgx.Tx
}

func NewArticleRepo(tx pgx.Tx) *ArticleRepo {
	return &ArticleRepo{tx: tx}
}

func (r *ArticleRepo) Insert(ctx context.Context, article db.Article) (*db.Article, error) {
	row := r.tx.QueryRow(ctx, `INSERT INTO articles
			(title, slug, excerpt, content, author, category, tags, read_time, featured, image_url, published_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+articleColumns,
		article.Title, article.Slug, article.Excerpt, article.Content, article.Author,
		article.Category, article.Tags, article.ReadTime, article.Featured,
		article.ImageURL, article.PublishedAt)
	created, err := scanArticle(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ConflictError{Err: fmt.Errorf("slug %q already exists", article.Slug)}
		}
		return nil, fmt.Errorf("err inserting article, %v", err)
	}
	return created, nil
}

// Update keeps the existing value for every nil field. Image handling is the
// caller's concern: it resolves the three modes (upload, url, clear) into
// imageURL + setImage before calling.
func (r *ArticleRepo) Update(ctx context.Context, id int64, patch db.ArticlePatch) (*db.Article, error) {
	row := r.tx.QueryRow(ctx, `UPDATE articles SET
			title = COALESCE($1, title),
			slug = COALESCE($2, slug),
			excerpt = COALESCE($3, excerpt),
			content = COALESCE($4, content),
			author = COALESCE($5, author),
			category = COALESCE($6, category),
			tags = COALESCE($7, tags),
			read_time = COALESCE($8, read_time),
			featured = COALESCE($9, featured),
			image_url = CASE WHEN $10 THEN $11 ELSE image_url END,
			published_at = COALESCE($12, published_at),
			updated_at = NOW()
		WHERE id = $13
		RETURNING `+articleColumns,
		patch.Title, patch.Slug, patch.Excerpt, patch.Content, patch.Author, patch.Category,
		patch.Tags, patch.ReadTime, patch.Featured, patch.SetImage, patch.ImageURL,
		patch.PublishedAt, id)
	updated, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Entity: "article"}
		}
		if isUniqueViolation(err) {
			return nil, errs.ConflictError{Err: fmt.Errorf("slug already exists")}
		}
		return nil, fmt.Errorf("err updating article, %v", err)
	}
	return updated, nil
}

func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*db.Article, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

func (r *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*db.Article, error) {
	row := r.tx.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	return scanArticle(row)
}

func (r *ArticleRepo) IncrementViews(ctx context.Context, slug string) error {
	_, err := r.tx.Exec(ctx, `UPDATE articles SET views = views + 1 WHERE slug = $1`, slug)
	return err
}

func (r *ArticleRepo) List(ctx context.Context, category, q string, limit, offset int) ([]db.Article, error) {
	var params []any
	var where []string

	if category != "" {
		params = append(params, category)
		where = append(where, fmt.Sprintf("category = $%d", len(params)))
	}
	if q != "" {
		params = append(params, "%"+strings.ToLower(q)+"%")
		n := len(params)
		where = append(where, fmt.Sprintf("(LOWER(title) LIKE $%d OR LOWER(COALESCE(excerpt,'')) LIKE $%d)", n, n))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}
	params = append(params, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM articles %s
		ORDER BY COALESCE(published_at, created_at) DESC, id DESC LIMIT $%d OFFSET $%d`,
		articleColumns, whereSQL, len(params)-1, len(params))

	rows, err := r.tx.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []db.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

func (r *ArticleRepo) Delete(ctx context.Context, id int64) (*db.Article, error) {
	row := r.tx.QueryRow(ctx, `DELETE FROM articles WHERE id = $1 RETURNING `+articleColumns, id)
	return scanArticle(row)
}

func scanArticle(row pgx.Row) (*db.Article, error) {
	var article db.Article
	err := row.Scan(&article.ID, &article.Title, &article.Slug, &article.Excerpt,
		&article.Content, &article.Author, &article.Category, &article.Tags,
		&article.ReadTime, &article.Views, &article.Featured, &article.ImageURL,
		&article.PublishedAt, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
