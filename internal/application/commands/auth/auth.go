package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/ai-solution/site-backend/internal/infra/auth"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is deliberately identical for unknown email and wrong
// password so callers can't probe which admin addresses exist.
var invalidCredentials = errs.UnauthorizedError{Reason: "invalid credentials"}

var invalidOTP = errs.UnauthorizedError{Reason: "invalid or expired OTP"}

type Auth struct {
	uowFactory *dbs.UOWFactory
	cfg        auth.Config
	identity   *auth.IdentityProvider
	mailer     interfaces.Mailer
	// now is swappable in tests.
	now func() time.Time
}

func NewAuth(uowFactory *dbs.UOWFactory, cfg auth.Config, identity *auth.IdentityProvider, mailer interfaces.Mailer) *Auth {
	return &Auth{
		uowFactory: uowFactory,
		cfg:        cfg,
		identity:   identity,
		mailer:     mailer,
		now:        time.Now,
	}
}

// Login checks the password and, on success, stores a fresh OTP against the
// admin row and dispatches it by mail. The OTP is committed before dispatch,
// a mail failure is reported but does not discard the stored code.
func (c *Auth) Login(ctx context.Context, req dto.LoginRequest) (dto.OTPSentResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.OTPSentResponse{}, err
	}
	email := strings.ToLower(req.Email)

	admin, err := c.checkPassword(ctx, email, req.Password)
	if err != nil {
		return dto.OTPSentResponse{}, err
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return dto.OTPSentResponse{}, err
	}
	expiresAt := c.now().Add(c.cfg.OTPLifetime)

	if err = c.storeOTP(ctx, email, code, expiresAt); err != nil {
		return dto.OTPSentResponse{}, err
	}

	if err = c.mailer.SendOTP(ctx, admin.Email, code); err != nil {
		slog.Warn("OTP dispatch failed", "err", err)
		return dto.OTPSentResponse{}, err
	}

	return dto.OTPSentResponse{OK: true, Message: "OTP_SENT"}, nil
}

// VerifyOTP redeems a stored code. Codes are single use, bounded by expiry
// and by the attempt cap; every failure burns an attempt and is reported with
// the same generic error.
func (c *Auth) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (dto.AuthResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.AuthResponse{}, err
	}
	email := strings.ToLower(req.Email)

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return dto.AuthResponse{}, err
	}

	adminRepo := repo.NewAdminRepo(tx)
	admin, err := adminRepo.GetByEmail(ctx, email)
	if err != nil {
		_ = uow.Rollback()
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.AuthResponse{}, invalidOTP
		}
		return dto.AuthResponse{}, err
	}

	if admin.OTPCode == nil || admin.OTPExpiresAt == nil {
		_ = uow.Rollback()
		return dto.AuthResponse{}, invalidOTP
	}

	attempts, err := adminRepo.IncrementOTPAttempts(ctx, email)
	if err != nil {
		_ = uow.Rollback()
		return dto.AuthResponse{}, err
	}

	expired := c.now().After(*admin.OTPExpiresAt)
	exhausted := attempts > c.cfg.OTPMaxAttempts
	matched := subtle.ConstantTimeCompare([]byte(*admin.OTPCode), []byte(req.OTP)) == 1

	if expired || exhausted || !matched {
		if expired || exhausted {
			_ = adminRepo.ClearOTP(ctx, email)
		}
		// commit so the burnt attempt (or cleared code) survives the failure
		if err = uow.Commit(); err != nil {
			return dto.AuthResponse{}, err
		}
		return dto.AuthResponse{}, invalidOTP
	}

	if err = adminRepo.ClearOTP(ctx, email); err != nil {
		_ = uow.Rollback()
		return dto.AuthResponse{}, err
	}
	if err = uow.Commit(); err != nil {
		return dto.AuthResponse{}, err
	}

	token, err := c.identity.IssueToken(admin.ID, admin.Email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		OK:    true,
		Token: token,
		Admin: dto.AdminInfo{ID: admin.ID, Email: admin.Email},
	}, nil
}

// LoginDirect skips the OTP step and issues the session token straight after
// the password check.
func (c *Auth) LoginDirect(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error) {
	if err := dto.Validate(req); err != nil {
		return dto.AuthResponse{}, err
	}
	email := strings.ToLower(req.Email)

	admin, err := c.checkPassword(ctx, email, req.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	token, err := c.identity.IssueToken(admin.ID, admin.Email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		OK:    true,
		Token: token,
		Admin: dto.AdminInfo{ID: admin.ID, Email: admin.Email},
	}, nil
}

func (c *Auth) checkPassword(ctx context.Context, email, password string) (_ *db.Admin, err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	admin, err := repo.NewAdminRepo(tx).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, invalidCredentials
	}
	return admin, nil
}

func (c *Auth) storeOTP(ctx context.Context, email, code string, expiresAt time.Time) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	err = repo.NewAdminRepo(tx).SetOTP(ctx, email, code, expiresAt)
	return err
}
