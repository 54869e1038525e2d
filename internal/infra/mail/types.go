package mail

import "fmt"

type MailType string

const (
	OTPIssued    MailType = "OTPIssued"
	InquiryReply MailType = "InquiryReply"
)

type MailData interface {
	GetMailType() MailType
	GetSubject() string
	GetBody() string
}

type OTPIssuedData struct {
	Code        string
	ExpiresMins int
}

func (d OTPIssuedData) GetMailType() MailType {
	return OTPIssued
}

func (d OTPIssuedData) GetSubject() string {
	return "Your Admin Login OTP"
}

func (d OTPIssuedData) GetBody() string {
	return fmt.Sprintf("Your OTP code is: %s. It expires in %d minutes.", d.Code, d.ExpiresMins)
}

type InquiryReplyData struct {
	Name    string
	Message string
}

func (d InquiryReplyData) GetMailType() MailType {
	return InquiryReply
}

func (d InquiryReplyData) GetSubject() string {
	return fmt.Sprintf("Re: Your Inquiry - %s", d.Name)
}

func (d InquiryReplyData) GetBody() string {
	return fmt.Sprintf("Dear %s,\n\n%s\n\nBest regards,\nAI Solutions Team", d.Name, d.Message)
}
