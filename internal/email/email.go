package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/aws/aws-sdk-go/service/ses/sesiface"
	"github.com/rs/zerolog/log"
)

// Sender delivers a single transactional email. Delivery is best-effort:
// there is no retry or queueing, and a rejection from the transport is
// returned to the caller as-is.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// SESSender sends email through AWS SES. Credentials and region come from the
// standard AWS environment.
type SESSender struct {
	svc  sesiface.SESAPI
	from string
}

// NewSESSender creates an SESSender sending from the given address.
func NewSESSender(from string) (*SESSender, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("error creating AWS session: %v", err)
	}
	return &SESSender{svc: ses.New(sess), from: from}, nil
}

// Send submits the email to SES and blocks until the transport accepts or
// rejects it.
func (s *SESSender) Send(ctx context.Context, recipient, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: []*string{
				aws.String(recipient),
			},
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Text: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(body),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
		},
		Source: aws.String(s.from),
	}

	_, err := s.svc.SendEmailWithContext(ctx, input)
	return err
}

// Disabled is a Sender that drops all mail. Used when no from-address is
// configured.
type Disabled struct{}

func (Disabled) Send(ctx context.Context, recipient, subject, body string) error {
	log.Debug().Str("recipient", recipient).Str("subject", subject).Msg("Email sending disabled, dropping message")
	return nil
}
