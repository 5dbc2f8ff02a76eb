package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider re-issues failed requests with exponential backoff and
// jitter. Rate limits and outages retry until the attempt budget runs
// out. A schema-violating response gets exactly one more try; truncation
// and cancelled contexts fail immediately.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry decorates p with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

type retryAction int

const (
	retryNo retryAction = iota
	retryYes
	retryOnceOnly
)

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	malformedSeen := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyFailure(err) {
		case retryNo:
			return nil, err
		case retryOnceOnly:
			// A malformed payload is usually model flakiness; a second
			// identical failure means the schema and prompt disagree.
			if malformedSeen {
				return nil, err
			}
			malformedSeen = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func classifyFailure(err error) retryAction {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNo
	}
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// The same request would be cut off at the same cap.
		return retryNo
	}
	var malformed *ErrInvalidResponse
	if errors.As(err, &malformed) {
		return retryOnceOnly
	}
	// Rate limits, outages, and anything transport-shaped.
	return retryYes
}

// wait grows exponentially per attempt, capped at MaxWait, with a ±20%
// jitter. A rate limit that names its own retry-after wins over the
// schedule.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))
	d *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(d, 0))
}
