package session

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/exceptions"
)

// WithBackendToken returns a copy of ctx carrying the lab backend token.
func WithBackendToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_BACKEND_TOKEN_KEY, token)
}

// ContextTokenSource reads the token the Authenticate middleware put on the
// request context, falling back to Fallback when there is none.
type ContextTokenSource struct {
	Fallback contracts.TokenSource
}

func (s ContextTokenSource) Token(ctx context.Context) (string, error) {
	if token, ok := ctx.Value(constvars.CONTEXT_BACKEND_TOKEN_KEY).(string); ok && token != "" {
		return token, nil
	}
	if s.Fallback != nil {
		return s.Fallback.Token(ctx)
	}
	return "", exceptions.ErrTokenMissing(nil)
}
