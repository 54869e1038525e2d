package interfaces

import (
	"context"
	"io"
)

// Mailer is the outbound email collaborator. Implementations report dispatch
// failure through errs.MailError so callers can treat it as non-fatal.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
	SendInquiryReply(ctx context.Context, to, name, message string) error
}

// Storage is the blob collaborator for uploaded images. UploadFile returns a
// public URL; DeleteFile is best effort on the caller's side.
type Storage interface {
	UploadFile(ctx context.Context, key string, contentType *string, body io.Reader) (string, error)
	DeleteFile(ctx context.Context, key string) error
}
