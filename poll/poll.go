package poll

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dilshat/sms-notify/model"
	"github.com/dilshat/sms-notify/util"
)

var errNotSettled = errors.New("message has not reached a terminal status")

// StatusFetcher queries the current delivery status of a submitted message.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, sid string) (string, error)
}

// Poller waits until a submitted message settles in a terminal delivery
// status or the retry budget runs out, returning the last observed status.
type Poller interface {
	WaitForDelivery(ctx context.Context, sid string) (string, error)
}

type backoffPoller struct {
	fetcher     StatusFetcher
	maxAttempts uint64
	maxWait     time.Duration
	timer       backoff.Timer
}

// NewBackoffPoller returns a Poller that fetches the status up to maxAttempts
// times with fibonacci waits between attempts, each wait capped at maxWait.
func NewBackoffPoller(fetcher StatusFetcher, maxAttempts int, maxWait time.Duration) Poller {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &backoffPoller{fetcher: fetcher, maxAttempts: uint64(maxAttempts), maxWait: maxWait}
}

func (p *backoffPoller) WaitForDelivery(ctx context.Context, sid string) (string, error) {
	//absent handle means submission failed upstream, nothing to poll
	if util.IsBlank(sid) {
		return "", nil
	}

	var last string
	operation := func() error {
		status, err := p.fetcher.FetchStatus(ctx, sid)
		if err != nil {
			//fetch errors are not retried, the caller decides what to do
			return backoff.Permanent(err)
		}

		last = status
		if !model.IsTerminal(status) {
			return errNotSettled
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(NewFibonacciBackOff(p.maxWait), p.maxAttempts-1), ctx)

	err := backoff.RetryNotifyWithTimer(operation, policy, nil, p.timer)
	if err != nil && !errors.Is(err, errNotSettled) {
		return last, err
	}

	return last, nil
}

type fixedPoller struct {
	fetcher StatusFetcher
	delay   time.Duration
	timer   backoff.Timer
}

// NewFixedPoller returns the simplified variant: wait once for delay, then
// fetch the status exactly once.
func NewFixedPoller(fetcher StatusFetcher, delay time.Duration) Poller {
	return &fixedPoller{fetcher: fetcher, delay: delay}
}

func (p *fixedPoller) WaitForDelivery(ctx context.Context, sid string) (string, error) {
	if util.IsBlank(sid) {
		return "", nil
	}

	timer := p.timer
	if timer == nil {
		timer = &sleepTimer{}
	}

	timer.Start(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C():
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return p.fetcher.FetchStatus(ctx, sid)
}

type sleepTimer struct {
	timer *time.Timer
}

func (t *sleepTimer) Start(duration time.Duration) {
	if t.timer == nil {
		t.timer = time.NewTimer(duration)
	} else {
		t.timer.Reset(duration)
	}
}

func (t *sleepTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *sleepTimer) C() <-chan time.Time {
	return t.timer.C
}
