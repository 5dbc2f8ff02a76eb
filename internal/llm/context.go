package llm

import "context"

// Purpose labels what a generation request was for, so `prepcli llm
// stats` can break usage down by assist track.
type Purpose string

const (
	PurposeExplanation Purpose = "explanation"
	PurposeExample     Purpose = "example"
)

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context for the request about to be made. The
// logging decorator picks the tag up when it records the event.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeCtxKey, p)
}

// PurposeFrom reads the purpose tag, or "unlabelled" when the caller
// never set one.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeCtxKey).(Purpose); ok {
		return p
	}
	return "unlabelled"
}
