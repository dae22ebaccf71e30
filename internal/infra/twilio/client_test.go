package twilio

import (
	"context"
	"errors"
	"testing"

	"strategic_reminder/internal/domain/sender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeAPI struct {
	got  *twilioApi.CreateMessageParams
	resp *twilioApi.ApiV2010Message
	err  error
}

func (f *fakeAPI) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.got = params
	return f.resp, f.err
}

func TestSendPassesAddressingAndBody(t *testing.T) {
	sid := "SM123"
	api := &fakeAPI{resp: &twilioApi.ApiV2010Message{Sid: &sid}}
	c := &Client{api: api}

	id, err := c.Send(context.Background(), sender.Message{To: "+1555", From: "+1444", Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "SM123", id)
	require.NotNil(t, api.got)
	assert.Equal(t, "+1555", *api.got.To)
	assert.Equal(t, "+1444", *api.got.From)
	assert.Equal(t, "hello", *api.got.Body)
}

func TestSendWrapsAPIError(t *testing.T) {
	boom := errors.New("401 unauthorized")
	c := &Client{api: &fakeAPI{err: boom}}

	_, err := c.Send(context.Background(), sender.Message{To: "+1555", From: "+1444", Body: "x"})
	require.ErrorIs(t, err, boom)
}

func TestSendWithoutSID(t *testing.T) {
	c := &Client{api: &fakeAPI{resp: &twilioApi.ApiV2010Message{}}}

	_, err := c.Send(context.Background(), sender.Message{Body: "x"})
	require.ErrorIs(t, err, ErrNoSID)
}

func TestSendHonoursCancelledContext(t *testing.T) {
	api := &fakeAPI{}
	c := &Client{api: api}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, sender.Message{Body: "x"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, api.got)
}

func TestNewClient(t *testing.T) {
	c := NewClient("AC123", "token")
	require.NotNil(t, c.api)
}
