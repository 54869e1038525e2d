package auth

import (
	"context"
	"testing"
	"time"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/auth"
	"github.com/ai-solution/site-backend/internal/testinfra"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/stretchr/testify/require"
)

// seeded by the migration defaults
const adminEmail = "admin@example.com"
const adminPassword = "Admin@123"

type captureMailer struct {
	lastOTP  string
	failWith error
}

func (m *captureMailer) SendOTP(ctx context.Context, to, code string) error {
	m.lastOTP = code
	return m.failWith
}

func (m *captureMailer) SendInquiryReply(ctx context.Context, to, name, message string) error {
	return m.failWith
}

func testAuthConfig() auth.Config {
	return auth.Config{
		JWTSecret:      "test-secret",
		TokenLifetime:  time.Hour,
		OTPLifetime:    10 * time.Minute,
		OTPMaxAttempts: 5,
	}
}

func newSUT(t *testing.T, mailer *captureMailer) *Auth {
	t.Helper()
	cfg := testAuthConfig()
	sut := NewAuth(dbs.NewUoWFactory(testinfra.Pool), cfg, auth.NewIdentityProvider(cfg), mailer)
	t.Cleanup(func() { resetAdminOTP(t) })
	return sut
}

func resetAdminOTP(t *testing.T) {
	t.Helper()
	_, err := testinfra.Pool.Exec(context.Background(),
		`UPDATE admins SET otp_code = NULL, otp_expires_at = NULL, otp_attempts = 0 WHERE email = $1`,
		adminEmail)
	require.NoError(t, err)
}

func Test_Login_Given_Wrong_Password_When_Called_Then_Generic_Unauthorized(t *testing.T) {
	mailer := &captureMailer{}
	SUT := newSUT(t, mailer)

	_, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: "wrong-password"})
	require.ErrorAs(t, err, &errs.UnauthorizedError{})
	require.Empty(t, mailer.lastOTP, "no OTP is issued on a failed password check")
}

func Test_Login_Given_Unknown_Email_When_Called_Then_Same_Generic_Unauthorized(t *testing.T) {
	SUT := newSUT(t, &captureMailer{})

	_, wrongPassword := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: "wrong-password"})
	_, unknownEmail := SUT.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "wrong-password"})
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error(), "email probing must be impossible")
}

func Test_Login_Given_Valid_Credentials_When_Called_Then_OTP_Stored_And_Mailed(t *testing.T) {
	mailer := &captureMailer{}
	SUT := newSUT(t, mailer)

	resp, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Len(t, mailer.lastOTP, 6)

	var stored string
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT otp_code FROM admins WHERE email = $1`, adminEmail).Scan(&stored)
	require.NoError(t, err)
	require.Equal(t, mailer.lastOTP, stored)
}

func Test_Login_Given_Mail_Failure_When_Called_Then_Error_But_OTP_Persists(t *testing.T) {
	mailer := &captureMailer{failWith: errs.MailError{Code: errs.MailSendFailed}}
	SUT := newSUT(t, mailer)

	_, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.ErrorAs(t, err, &errs.MailError{})

	// the stored code is still redeemable
	session, err := SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: mailer.lastOTP})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
}

func Test_VerifyOTP_Given_Correct_Code_When_Called_Then_Token_And_Code_Cleared(t *testing.T) {
	mailer := &captureMailer{}
	SUT := newSUT(t, mailer)

	_, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	resp, err := SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: mailer.lastOTP})
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, adminEmail, resp.Admin.Email)

	// single use
	_, err = SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: mailer.lastOTP})
	require.ErrorAs(t, err, &errs.UnauthorizedError{})
}

func Test_VerifyOTP_Given_Wrong_Code_When_Called_Then_Attempt_Burnt(t *testing.T) {
	mailer := &captureMailer{}
	SUT := newSUT(t, mailer)

	_, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	_, err = SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: "000000"})
	require.ErrorAs(t, err, &errs.UnauthorizedError{})

	var attempts int
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT otp_attempts FROM admins WHERE email = $1`, adminEmail).Scan(&attempts)
	require.NoError(t, err)
	require.Equal(t, 1, attempts, "the failed attempt survives the rejection")

	// the real code still works within the cap
	resp, err := SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: mailer.lastOTP})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
}

func Test_VerifyOTP_Given_Exhausted_Attempts_When_Called_Then_Code_Invalidated(t *testing.T) {
	mailer := &captureMailer{}
	SUT := newSUT(t, mailer)
	SUT.cfg.OTPMaxAttempts = 2

	_, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: "000000"})
		require.Error(t, err)
	}

	// correct code, but the cap is spent
	_, err = SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: mailer.lastOTP})
	require.ErrorAs(t, err, &errs.UnauthorizedError{})

	var code *string
	err = testinfra.Pool.QueryRow(context.Background(),
		`SELECT otp_code FROM admins WHERE email = $1`, adminEmail).Scan(&code)
	require.NoError(t, err)
	require.Nil(t, code, "exhaustion wipes the stored code")
}

func Test_VerifyOTP_Given_Expired_Code_When_Called_Then_Rejected(t *testing.T) {
	mailer := &captureMailer{}
	SUT := newSUT(t, mailer)

	_, err := SUT.Login(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)

	SUT.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	_, err = SUT.VerifyOTP(context.Background(), dto.VerifyOTPRequest{Email: adminEmail, OTP: mailer.lastOTP})
	require.ErrorAs(t, err, &errs.UnauthorizedError{})
}

func Test_LoginDirect_Given_Valid_Credentials_When_Called_Then_Token_Issued(t *testing.T) {
	SUT := newSUT(t, &captureMailer{})

	resp, err := SUT.LoginDirect(context.Background(), dto.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, adminEmail, resp.Admin.Email)
}
