package query_test

import (
	"context"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/query"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	"github.com/ai-solution/site-backend/internal/testinfra"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/stretchr/testify/require"
)

var uowFactory *dbs.UOWFactory

func TestMain(m *testing.M) {
	uowFactory = dbs.NewUoWFactory(testinfra.Pool)
	code := m.Run()

	ctx := context.Background()
	for _, table := range []string{"customer_inquiries", "articles", "feedback"} {
		if _, err := testinfra.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			panic(err)
		}
	}
	os.Exit(code)
}

func str(s string) *string { return &s }

func insertInquiry(t *testing.T, name, email string, status consts.InquiryStatus) int64 {
	t.Helper()
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)

	id, _, err := repo.NewInquiryRepo(tx).Insert(context.Background(), db.Inquiry{
		Name: name, Email: email, JobDetails: "details", Status: status,
	})
	require.NoError(t, err)
	require.NoError(t, uow.Commit())
	return id
}

func clearInquiries(t *testing.T) {
	t.Helper()
	_, err := testinfra.Pool.Exec(context.Background(), "DELETE FROM customer_inquiries")
	require.NoError(t, err)
}

func Test_GetMetrics_Given_Mixed_Statuses_When_Called_Then_ByStatus_ZeroFilled(t *testing.T) {
	clearInquiries(t)
	insertInquiry(t, "A", "a@example.com", consts.InquiryStatusNew)
	insertInquiry(t, "B", "b@example.com", consts.InquiryStatusNew)
	insertInquiry(t, "C", "c@example.com", consts.InquiryStatusCompleted)

	SUT := query.NewGetMetrics(uowFactory)
	metrics, err := SUT.Query(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, metrics.TotalInquiries)
	require.Len(t, metrics.Last7Days, 7)
	require.Equal(t, map[string]int{
		"new":         2,
		"in-progress": 0,
		"completed":   1,
		"archived":    0,
	}, metrics.ByStatus)
}

func Test_ListInquiries_Given_Bad_Status_When_Called_Then_Validation_Error(t *testing.T) {
	SUT := query.NewListInquiries(uowFactory)
	_, err := SUT.Query(context.Background(), query.InquiryFilters{Status: "bogus"})
	require.Error(t, err)
}

func Test_ExportInquiries_Given_Rows_When_Called_Then_CSV_With_Header_Newest_First(t *testing.T) {
	clearInquiries(t)
	insertInquiry(t, "Older", "older@example.com", consts.InquiryStatusNew)
	insertInquiry(t, "Newer", "newer@example.com", consts.InquiryStatusNew)

	SUT := query.NewExportInquiries(uowFactory)
	raw, err := SUT.Query(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two rows")
	require.Equal(t, "id", records[0][0])
	require.Equal(t, "Newer", records[1][1])
	require.Equal(t, "Older", records[2][1])
}

func Test_ListFeedback_Given_PublicOnly_When_Called_Then_Approved_Only(t *testing.T) {
	ctx := context.Background()
	_, err := testinfra.Pool.Exec(ctx, "DELETE FROM feedback")
	require.NoError(t, err)
	_, err = testinfra.Pool.Exec(ctx,
		`INSERT INTO feedback (name, rating, comment, status) VALUES
			('Visible', 5, 'great', 'approved'),
			('Hidden', 1, 'meh', 'pending'),
			('Rejected', 2, 'nope', 'denied')`)
	require.NoError(t, err)

	SUT := query.NewListFeedback(uowFactory)

	public, err := SUT.Query(ctx, query.FeedbackFilters{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, "Visible", public[0].Name)
	require.True(t, public[0].Verified)

	// PublicOnly wins even when a broader status filter is passed
	public, err = SUT.Query(ctx, query.FeedbackFilters{PublicOnly: true, Status: "pending"})
	require.NoError(t, err)
	require.Len(t, public, 1)

	all, err := SUT.Query(ctx, query.FeedbackFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func Test_GetArticle_Given_CountView_When_Queried_Then_Views_Incremented(t *testing.T) {
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)
	_, err = repo.NewArticleRepo(tx).Insert(context.Background(), db.Article{
		Title: "Counted", Slug: "counted-article", Tags: []string{},
	})
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	SUT := query.NewGetArticle(uowFactory)

	first, err := SUT.QueryBySlug(context.Background(), "counted-article", true)
	require.NoError(t, err)
	second, err := SUT.QueryBySlug(context.Background(), "counted-article", true)
	require.NoError(t, err)
	require.Equal(t, first.Views+1, second.Views)

	peeked, err := SUT.QueryBySlug(context.Background(), "counted-article", false)
	require.NoError(t, err)
	require.Equal(t, second.Views, peeked.Views, "admin reads do not count")
}

func Test_ListArticles_Given_Category_Filter_When_Called_Then_Only_Matching(t *testing.T) {
	ctx := context.Background()
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)
	articleRepo := repo.NewArticleRepo(tx)
	_, err = articleRepo.Insert(ctx, db.Article{Title: "Tech One", Slug: "tech-one", Category: str("tech"), Tags: []string{}})
	require.NoError(t, err)
	_, err = articleRepo.Insert(ctx, db.Article{Title: "Life One", Slug: "life-one", Category: str("lifestyle"), Tags: []string{}})
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	SUT := query.NewListArticles(uowFactory)
	articles, err := SUT.Query(ctx, query.ArticleFilters{Category: "tech"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "tech-one", articles[0].Slug)
}
