package commands_test

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/ai-solution/site-backend/internal/application/commands"
	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/testinfra"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/stretchr/testify/require"
)

var uowFactory *dbs.UOWFactory

func TestMain(m *testing.M) {
	uowFactory = dbs.NewUoWFactory(testinfra.Pool)
	code := m.Run()

	ctx := context.Background()
	for _, table := range []string{"customer_inquiries", "articles", "events", "feedback", "gallery_images"} {
		if _, err := testinfra.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			panic(err)
		}
	}
	os.Exit(code)
}

type recordingMailer struct {
	to, name, message string
	failWith          error
	onSend            func()
}

func (m *recordingMailer) SendOTP(ctx context.Context, to, code string) error {
	return m.failWith
}

func (m *recordingMailer) SendInquiryReply(ctx context.Context, to, name, message string) error {
	m.to, m.name, m.message = to, name, message
	if m.onSend != nil {
		m.onSend()
	}
	return m.failWith
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (s *fakeStorage) UploadFile(ctx context.Context, key string, contentType *string, body io.Reader) (string, error) {
	s.uploaded = append(s.uploaded, key)
	return "https://cdn.test/" + key, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func str(s string) *string { return &s }

func Test_SubmitInquiry_Given_Valid_Request_When_Called_Then_Row_Created_As_New(t *testing.T) {
	SUT := commands.NewSubmitInquiry(uowFactory)

	resp, err := SUT.Execute(context.Background(), dto.CreateInquiryRequest{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Company:    str("Acme"),
		JobDetails: "We need a marketing site.",
	})
	require.NoError(t, err)
	require.Positive(t, resp.ID)

	var status string
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT status FROM customer_inquiries WHERE id = $1`, resp.ID).Scan(&status)
	require.NoError(t, err)
	require.Equal(t, "new", status)
}

func Test_SubmitInquiry_Given_Missing_Fields_When_Called_Then_Validation_Error(t *testing.T) {
	SUT := commands.NewSubmitInquiry(uowFactory)

	_, err := SUT.Execute(context.Background(), dto.CreateInquiryRequest{Name: "J"})
	var validationErr errs.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func Test_SetInquiryStatus_Given_Unknown_Enum_When_Called_Then_Stored_Status_Unchanged(t *testing.T) {
	submit := commands.NewSubmitInquiry(uowFactory)
	created, err := submit.Execute(context.Background(), dto.CreateInquiryRequest{
		Name: "Status Target", Email: "s@example.com", JobDetails: "ten chars min",
	})
	require.NoError(t, err)

	SUT := commands.NewSetInquiryStatus(uowFactory)
	err = SUT.Execute(context.Background(), created.ID, "not-a-status")
	var validationErr errs.ValidationError
	require.ErrorAs(t, err, &validationErr)

	var status string
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT status FROM customer_inquiries WHERE id = $1`, created.ID).Scan(&status)
	require.NoError(t, err)
	require.Equal(t, "new", status)

	require.NoError(t, SUT.Execute(context.Background(), created.ID, "completed"))
}

func Test_SetInquiryStatus_Given_Missing_Row_When_Called_Then_NotFound(t *testing.T) {
	SUT := commands.NewSetInquiryStatus(uowFactory)
	err := SUT.Execute(context.Background(), 987654321, "archived")
	var notFound errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func Test_ReplyInquiry_Given_Existing_Row_When_Called_Then_Mail_Sent_And_Row_Untouched(t *testing.T) {
	submit := commands.NewSubmitInquiry(uowFactory)
	created, err := submit.Execute(context.Background(), dto.CreateInquiryRequest{
		Name: "Reply Target", Email: "reply@example.com", JobDetails: "ten chars min",
	})
	require.NoError(t, err)

	mailer := &recordingMailer{}
	SUT := commands.NewReplyInquiry(uowFactory, mailer)

	resp, err := SUT.Execute(context.Background(), created.ID, dto.ReplyInquiryRequest{Message: "Thanks, we will call you."})
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Equal(t, "reply@example.com", mailer.to)
	require.Equal(t, "Reply Target", mailer.name)
	require.Equal(t, "Thanks, we will call you.", mailer.message)

	var status string
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT status FROM customer_inquiries WHERE id = $1`, created.ID).Scan(&status)
	require.NoError(t, err)
	require.Equal(t, "new", status, "replying records nothing on the inquiry")
}

func Test_ReplyInquiry_Given_Slow_Dispatch_When_Called_Then_No_Conn_Held(t *testing.T) {
	submit := commands.NewSubmitInquiry(uowFactory)
	created, err := submit.Execute(context.Background(), dto.CreateInquiryRequest{
		Name: "Conn Check", Email: "conn@example.com", JobDetails: "ten chars min",
	})
	require.NoError(t, err)

	heldDuringSend := int32(-1)
	mailer := &recordingMailer{onSend: func() {
		heldDuringSend = testinfra.Pool.Stat().AcquiredConns()
	}}
	SUT := commands.NewReplyInquiry(uowFactory, mailer)

	_, err = SUT.Execute(context.Background(), created.ID, dto.ReplyInquiryRequest{Message: "long send"})
	require.NoError(t, err)
	require.Zero(t, heldDuringSend, "read tx must be released before SMTP dispatch")
}

func Test_ReplyInquiry_Given_Mail_Failure_When_Called_Then_Error_Propagated(t *testing.T) {
	submit := commands.NewSubmitInquiry(uowFactory)
	created, err := submit.Execute(context.Background(), dto.CreateInquiryRequest{
		Name: "Mail Fail", Email: "fail@example.com", JobDetails: "ten chars min",
	})
	require.NoError(t, err)

	mailer := &recordingMailer{failWith: errs.MailError{Code: errs.MailSendFailed, Err: errors.New("smtp down")}}
	SUT := commands.NewReplyInquiry(uowFactory, mailer)

	_, err = SUT.Execute(context.Background(), created.ID, dto.ReplyInquiryRequest{Message: "hello"})
	var mailErr errs.MailError
	require.ErrorAs(t, err, &mailErr)
	require.Equal(t, errs.MailSendFailed, mailErr.Code)
}

func Test_CreateArticle_Given_No_Slug_When_Called_Then_Slug_Derived_From_Title(t *testing.T) {
	SUT := commands.NewCreateArticle(uowFactory, &fakeStorage{})

	resp, err := SUT.Execute(context.Background(), dto.UpsertArticleRequest{
		Title: str("How We Ship Faster!"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "how-we-ship-faster", resp.Slug)
}

func Test_CreateArticle_Given_Duplicate_Slug_When_Called_Then_Conflict(t *testing.T) {
	SUT := commands.NewCreateArticle(uowFactory, &fakeStorage{})

	_, err := SUT.Execute(context.Background(), dto.UpsertArticleRequest{Title: str("Conflict Piece")}, nil)
	require.NoError(t, err)

	_, err = SUT.Execute(context.Background(), dto.UpsertArticleRequest{Title: str("Conflict Piece")}, nil)
	var conflict errs.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func Test_UpdateArticle_Given_Partial_Request_When_Called_Then_Other_Fields_Preserved(t *testing.T) {
	create := commands.NewCreateArticle(uowFactory, &fakeStorage{})
	created, err := create.Execute(context.Background(), dto.UpsertArticleRequest{
		Title:    str("Patchable"),
		Excerpt:  str("keep me"),
		ImageURL: str("https://cdn.example.com/keep.png"),
	}, nil)
	require.NoError(t, err)

	SUT := commands.NewUpdateArticle(uowFactory, &fakeStorage{})
	updated, err := SUT.Execute(context.Background(), created.ID, dto.UpsertArticleRequest{
		Title: str("Patched"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "Patched", updated.Title)
	require.NotNil(t, updated.Excerpt)
	require.Equal(t, "keep me", *updated.Excerpt)
	require.NotNil(t, updated.ImageURL)

	cleared, err := SUT.Execute(context.Background(), created.ID, dto.UpsertArticleRequest{
		ClearImage: true,
	}, nil)
	require.NoError(t, err)
	require.Nil(t, cleared.ImageURL)
}

func Test_CreateEvent_Given_Past_Date_When_Called_Then_Status_Derived_Past(t *testing.T) {
	SUT := commands.NewCreateEvent(uowFactory, &fakeStorage{})

	past, err := SUT.Execute(context.Background(), dto.UpsertEventRequest{
		Title: str("Retro Conf"),
		Date:  str("2020-01-15"),
		Type:  str("conference"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, string(consts.EventStatusPast), past.Status)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	upcoming, err := SUT.Execute(context.Background(), dto.UpsertEventRequest{
		Title: str("Next Summit"),
		Date:  str(future),
		Type:  str("webinar"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, string(consts.EventStatusUpcoming), upcoming.Status)
}

func Test_UpdateEvent_Given_New_Date_When_Called_Then_Status_Recomputed(t *testing.T) {
	create := commands.NewCreateEvent(uowFactory, &fakeStorage{})
	created, err := create.Execute(context.Background(), dto.UpsertEventRequest{
		Title: str("Moving Target"),
		Date:  str(time.Now().AddDate(0, 6, 0).Format("2006-01-02")),
		Type:  str("workshop"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, string(consts.EventStatusUpcoming), created.Status)

	SUT := commands.NewUpdateEvent(uowFactory, &fakeStorage{})
	updated, err := SUT.Execute(context.Background(), created.ID, dto.UpsertEventRequest{
		Date: str("2019-03-01"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, string(consts.EventStatusPast), updated.Status)
}

func Test_SubmitFeedback_Given_Valid_Request_When_Called_Then_Created_Pending(t *testing.T) {
	SUT := commands.NewSubmitFeedback(uowFactory)

	resp, err := SUT.Execute(context.Background(), dto.CreateFeedbackRequest{
		Name:    "Happy Client",
		Rating:  5,
		Comment: "Smooth project",
	})
	require.NoError(t, err)
	require.Equal(t, string(consts.FeedbackStatusPending), resp.Status)
	require.False(t, resp.Verified)
}

func Test_SetFeedbackStatus_Given_Approval_When_Called_Then_Projection_Verified(t *testing.T) {
	submit := commands.NewSubmitFeedback(uowFactory)
	created, err := submit.Execute(context.Background(), dto.CreateFeedbackRequest{
		Name: "Approver", Rating: 4, Comment: "Good",
	})
	require.NoError(t, err)

	SUT := commands.NewSetFeedbackStatus(uowFactory)
	require.Error(t, SUT.Execute(context.Background(), created.ID, "verified"), "only pending/approved/denied are accepted")
	require.NoError(t, SUT.Execute(context.Background(), created.ID, "approved"))

	var status string
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT status FROM feedback WHERE id = $1`, created.ID).Scan(&status)
	require.NoError(t, err)
	require.Equal(t, "approved", status)
}

func Test_DeleteGalleryImage_Given_Stored_Object_When_Called_Then_Row_And_Blob_Removed(t *testing.T) {
	ctx := context.Background()
	var id int64
	err := testinfra.Pool.QueryRow(ctx,
		`INSERT INTO gallery_images (filename, url) VALUES ($1, $2) RETURNING id`,
		"galleries/abc.png", "https://cdn.test/galleries/abc.png").Scan(&id)
	require.NoError(t, err)

	store := &fakeStorage{}
	SUT := commands.NewDeleteGalleryImage(uowFactory, store)

	require.NoError(t, SUT.Execute(ctx, id))
	require.Equal(t, []string{"galleries/abc.png"}, store.deleted)

	var count int
	err = testinfra.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM gallery_images WHERE id = $1`, id).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)
}
