package poll

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

type fibonacciBackOff struct {
	prev, next time.Duration
	max        time.Duration
}

// NewFibonacciBackOff yields waits of 1, 1, 2, 3, 5, 8, ... seconds,
// capped at max once the sequence grows past it.
func NewFibonacciBackOff(max time.Duration) backoff.BackOff {
	b := &fibonacciBackOff{max: max}
	b.Reset()
	return b
}

func (b *fibonacciBackOff) Reset() {
	b.prev, b.next = 0, time.Second
}

func (b *fibonacciBackOff) NextBackOff() time.Duration {
	b.prev, b.next = b.next, b.prev+b.next
	if b.prev > b.max {
		return b.max
	}

	return b.prev
}
