package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/interfaces"
)

type MailServer struct {
	cfg  *MailConfig
	auth smtp.Auth
}

var _ interfaces.Mailer = (*MailServer)(nil)

func NewMailServer(cfg *MailConfig) *MailServer {
	return &MailServer{
		cfg:  cfg,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost),
	}
}

func (m *MailServer) SendOTP(ctx context.Context, to, code string) error {
	data := OTPIssuedData{Code: code, ExpiresMins: 10}
	return m.send(ctx, []string{to}, data)
}

func (m *MailServer) SendInquiryReply(ctx context.Context, to, name, message string) error {
	data := InquiryReplyData{Name: name, Message: message}
	return m.send(ctx, []string{to}, data)
}

func (m *MailServer) send(ctx context.Context, to []string, data MailData) error {
	if !m.cfg.Configured() {
		slog.Warn("mail not configured, skipping dispatch", "type", data.GetMailType())
		return errs.MailError{Code: errs.MailNotConfigured, Err: fmt.Errorf("missing credentials")}
	}

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	msg := m.buildMessage(to, data.GetSubject(), data.GetBody())

	var err error
	for attempt := 0; attempt <= m.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return errs.MailError{Code: errs.MailSendFailed, Err: ctx.Err()}
		}
		err = smtp.SendMail(addr, m.auth, m.cfg.From, to, msg)
		if err == nil {
			slog.Info("mail sent", "type", data.GetMailType(), "recipients", len(to))
			return nil
		}
		slog.Warn("mail send failed", "type", data.GetMailType(), "attempt", attempt, "err", err)
		if attempt < m.cfg.MaxRetries {
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
		}
	}
	return errs.MailError{Code: errs.MailSendFailed, Err: err}
}

func (m *MailServer) buildMessage(to []string, subject, body string) []byte {
	headers := make(map[string]string)
	headers["From"] = m.cfg.From
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/plain; charset=\"utf-8\""

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n" + body)
	return []byte(msg.String())
}
