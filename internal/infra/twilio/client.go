// internal/infra/twilio/client.go
package twilio

import (
	"context"
	"errors"
	"fmt"

	"strategic_reminder/internal/domain/sender"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrNoSID is returned when Twilio accepts a message but reports no SID for it.
var ErrNoSID = errors.New("twilio returned no message SID")

// messageCreator is the subset of the Twilio v2010 API used for sending.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client implements sender.Sender on top of the Twilio REST API.
type Client struct {
	api messageCreator
}

var _ sender.Sender = (*Client)(nil)

// NewClient builds a Twilio REST client authenticated with the account SID and auth token.
func NewClient(accountSID, authToken string) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{api: rest.Api}
}

// Send creates one SMS and returns its SID.
// The Twilio SDK call is not context-aware, so ctx is only checked before the request.
func (c *Client) Send(ctx context.Context, msg sender.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(msg.From)
	params.SetBody(msg.Body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio create message: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return "", ErrNoSID
	}
	return *resp.Sid, nil
}
