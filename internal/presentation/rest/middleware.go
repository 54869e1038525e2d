package rest

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const identityKey = "identity"

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved identity in ctx locals for downstream handlers.
func RequireAuth(provider *auth.IdentityProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing bearer token"})
		}
		identity, err := provider.GetIdentity(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid or expired token"})
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity attached by RequireAuth, nil when the
// route is not bearer-gated.
func IdentityFromCtx(c *fiber.Ctx) *auth.Identity {
	identity, _ := c.Locals(identityKey).(*auth.Identity)
	return identity
}

// InquiryLimiter throttles public inquiry submissions per client IP.
func InquiryLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Error: "too many inquiries, try again later",
			})
		},
	})
}

// ErrorHandler is the single translation point from application errors to
// HTTP responses. Internal details are logged, never sent to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validationErr   errs.ValidationError
		unauthorizedErr errs.UnauthorizedError
		notFoundErr     errs.NotFoundError
		conflictErr     errs.ConflictError
		mailErr         errs.MailError
		fiberErr        *fiber.Error
	)
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: validationErr.Fields})
	case errors.As(err, &unauthorizedErr):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: unauthorizedErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: conflictErr.Error()})
	case errors.As(err, &mailErr):
		slog.Error("mail dispatch failed", "code", mailErr.Code, "error", mailErr.Err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: mailErr.Code})
	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
	default:
		slog.Error("unhandled request error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
}
