package mailer

// MailSender delivers a transactional email. Implementations must treat
// delivery as best-effort; callers never roll back business state on a
// send failure.
type MailSender interface {
	Send(to, subject, text, html string) error
}
