package grpcsvc

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// CallerAuthenticator проверяет email и пароль вызывающего.
type CallerAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (domain.Caller, error)
}

// UnaryAuthInterceptor кладёт идентичность вызывающего в контекст.
// Без заголовка authorization вызов анонимный; неверные учётные данные отклоняются сразу.
// Методы из public (например, grpc.health.v1) не проверяются.
func UnaryAuthInterceptor(authn CallerAuthenticator, logger *log.Entry, public ...string) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = log.WithField("component", "grpc-auth")
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		for _, prefix := range public {
			if strings.HasPrefix(info.FullMethod, prefix) {
				return handler(ctx, req)
			}
		}

		header := authorizationHeader(ctx)
		if header == "" {
			return handler(auth.WithCaller(ctx, domain.Anonymous), req)
		}
		email, password, ok := auth.ParseBasic(header)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "malformed authorization metadata")
		}

		caller, err := authn.Authenticate(ctx, email, password)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				logger.WithField("method", info.FullMethod).Debug("rejected credentials")
				return nil, status.Error(codes.Unauthenticated, domain.ErrUnauthenticated.Error())
			}
			return nil, toStatus(logger, info.FullMethod, err)
		}
		return handler(auth.WithCaller(ctx, caller), req)
	}
}

func authorizationHeader(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(webshopv1.AuthorizationHeader)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
