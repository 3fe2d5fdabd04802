package sms

import (
	"context"

	"github.com/dilshat/sms-notify/model"
)

// Gateway is the external sms provider surface: one call to submit a message,
// one call to query its current delivery status.
type Gateway interface {
	Submit(ctx context.Context, from, to, text string) (*model.Message, error)
	FetchStatus(ctx context.Context, sid string) (string, error)
}

type RateLimiter interface {
	// Wait blocks until the limiter permits an event to happen.
	Wait(ctx context.Context) error
}
