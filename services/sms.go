package services

import (
	"errors"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Transport delivers a rendered message to a phone number.
type Transport interface {
	Send(phone, body string) error
}

// TwilioTransport sends SMS through the Twilio REST API.
type TwilioTransport struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioTransport() *TwilioTransport {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioTransport{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (t *TwilioTransport) Send(phone, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return errors.New("twilio returned no message SID")
	}
	return nil
}
