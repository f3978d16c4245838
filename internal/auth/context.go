package auth

import (
	"context"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

type callerKey struct{}

// WithCaller сохраняет идентичность вызывающего в контексте запроса.
func WithCaller(ctx context.Context, caller domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// CallerFrom достаёт идентичность из контекста; без неё вызов анонимный.
func CallerFrom(ctx context.Context) domain.Caller {
	caller, ok := ctx.Value(callerKey{}).(domain.Caller)
	if !ok {
		return domain.Anonymous
	}
	return caller
}
