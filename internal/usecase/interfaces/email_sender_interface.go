package interfaces

import "context"

// EmailMessage is one transactional email. Sender may be empty, in which case
// the implementation falls back to its configured identity.
type EmailMessage struct {
	Sender    string
	Recipient string
	Subject   string
	HTMLBody  string
}

// IEmailSender abstracts the outbound email provider (e.g. SMTP).
//
// The notification step is optional: wiring may leave the sender nil, which
// disables confirmation emails without touching the settlement pipeline.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) (messageID string, err error)
}
