package sms

import (
	"context"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"

	"github.com/dilshat/sms-notify/model"
)

// MessageApi wraps the twilio rest client operations used by the gateway
// so that tests can substitute a fake without network access.
type MessageApi interface {
	CreateMessage(params *api.CreateMessageParams) (*api.ApiV2010Message, error)
	FetchMessage(sid string, params *api.FetchMessageParams) (*api.ApiV2010Message, error)
}

type twilioGateway struct {
	api     MessageApi
	limiter RateLimiter
}

// NewTwilioGateway builds a Gateway backed by the Twilio REST API.
// All calls pass through a limiter of trxPerSec requests per second.
func NewTwilioGateway(accountSid, authToken string, trxPerSec int) Gateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	return NewGateway(client.Api, rate.NewLimiter(rate.Limit(trxPerSec), 1))
}

func NewGateway(messageApi MessageApi, limiter RateLimiter) Gateway {
	return &twilioGateway{api: messageApi, limiter: limiter}
}

func (g *twilioGateway) Submit(ctx context.Context, from, to, text string) (*model.Message, error) {
	err := g.limiter.Wait(ctx)
	if err != nil {
		return nil, err
	}

	params := &api.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(text)

	resp, err := g.api.CreateMessage(params)
	if err != nil {
		return nil, err
	}

	return &model.Message{Sid: sp(resp.Sid), Status: sp(resp.Status)}, nil
}

func (g *twilioGateway) FetchStatus(ctx context.Context, sid string) (string, error) {
	err := g.limiter.Wait(ctx)
	if err != nil {
		return "", err
	}

	resp, err := g.api.FetchMessage(sid, &api.FetchMessageParams{})
	if err != nil {
		return "", err
	}

	return sp(resp.Status), nil
}

func sp[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
