package grpcsvc

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// CodeForKind сопоставляет класс бизнес-ошибки коду gRPC.
func CodeForKind(kind domain.Kind) codes.Code {
	switch kind {
	case domain.KindNotFound:
		return codes.NotFound
	case domain.KindValidation:
		return codes.InvalidArgument
	case domain.KindDuplicate:
		return codes.AlreadyExists
	case domain.KindConcurrency:
		return codes.Aborted
	case domain.KindStateConflict:
		return codes.FailedPrecondition
	case domain.KindUnauthenticated:
		return codes.Unauthenticated
	case domain.KindAccessDenied:
		return codes.PermissionDenied
	default:
		return codes.Internal
	}
}

// toStatus превращает ошибку сервиса в статус gRPC. Текст внутренних ошибок наружу не уходит.
func toStatus(logger *log.Entry, method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	code := CodeForKind(domain.KindOf(err))
	if code == codes.Internal {
		logger.WithError(err).WithField("method", method).Error("internal error")
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
