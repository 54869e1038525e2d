package errs

import "fmt"

// ValidationError carries per-field violations back to the caller; it is the
// only error type whose details reach the client unredacted.
type ValidationError struct {
	Fields map[string]string
}

func (t ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", t.Fields)
}

func NewValidation(field, reason string) ValidationError {
	return ValidationError{Fields: map[string]string{field: reason}}
}

type UnauthorizedError struct {
	Reason string
}

func (t UnauthorizedError) Error() string {
	if t.Reason == "" {
		return "unauthorized"
	}
	return t.Reason
}

type NotFoundError struct {
	Entity string
}

func (t NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", t.Entity)
}

type ConflictError struct {
	Err error
}

func (t ConflictError) Error() string {
	return fmt.Sprintf("conflict: %v", t.Err)
}

// MailError marks a failed dispatch to the mail collaborator. Callers decide
// whether it is fatal, the primary record is persisted either way.
type MailError struct {
	Code string
	Err  error
}

func (t MailError) Error() string {
	return fmt.Sprintf("%s: %v", t.Code, t.Err)
}

const (
	MailNotConfigured = "MAIL_NOT_CONFIGURED"
	MailSendFailed    = "MAIL_SEND_FAILED"
)
