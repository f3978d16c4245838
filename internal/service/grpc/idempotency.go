package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	maxIdempotencyKeyLen  = 128
	releaseTimeout        = 2 * time.Second
)

// Idempotency повторно отдаёт результат изменяющего запроса с тем же idempotency-key.
// Запрос без ключа выполняется как обычно.
type Idempotency struct {
	repo   domain.IdempotencyRepository
	ttl    time.Duration
	logger *log.Entry
}

// NewIdempotency создаёт guard. Нулевой repo отключает повторы.
func NewIdempotency(repo domain.IdempotencyRepository, ttl time.Duration, logger *log.Entry) *Idempotency {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	if logger == nil {
		logger = log.WithField("component", "grpc-idempotency")
	}
	return &Idempotency{repo: repo, ttl: ttl, logger: logger}
}

type idempotencyErrorPayload struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

// runIdempotent выполняет handler один раз на ключ вызывающего. Повтор с тем же
// ключом получает сохранённый ответ или ошибку; тот же ключ с другим методом
// или телом запроса отклоняется.
func runIdempotent[T any, P interface {
	*T
	proto.Message
}](ctx context.Context, g *Idempotency, method string, req proto.Message, handler func(context.Context) (P, error)) (P, error) {
	if g == nil || g.repo == nil {
		return handler(ctx)
	}
	key, err := readIdempotencyKey(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return handler(ctx)
	}

	hash, err := requestHash(req)
	if err != nil {
		g.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	scope := domain.ReplayScope{ProfileID: auth.CallerFrom(ctx).ProfileID, Key: key}
	record, err := g.repo.Claim(ctx, domain.IdempotencyRecord{
		Scope:       scope,
		Method:      method,
		RequestHash: hash,
		ExpiresAt:   time.Now().UTC().Add(g.ttl),
	})
	if err != nil {
		return replay[T, P](g, err, record)
	}

	resp, runErr := handler(ctx)
	if runErr != nil {
		if retryable(runErr) {
			g.release(ctx, scope)
		} else {
			g.storeFailure(ctx, scope, runErr)
		}
		return nil, runErr
	}
	if err := g.storeSuccess(ctx, scope, resp); err != nil {
		g.logger.WithError(err).WithField("idempotency_key", scope.String()).Warn("failed to store idempotent response")
	}
	return resp, nil
}

func replay[T any, P interface {
	*T
	proto.Message
}](g *Idempotency, claimErr error, record domain.IdempotencyRecord) (P, error) {
	switch {
	case errors.Is(claimErr, domain.ErrIdempotencyHashMismatch):
		return nil, status.Error(codes.AlreadyExists, "idempotency key is already used with a different request")
	case errors.Is(claimErr, domain.ErrIdempotencyKeyAlreadyExists):
	default:
		g.logger.WithError(claimErr).Warn("failed to claim idempotency key")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	switch record.State {
	case domain.ReplayCompleted:
		if len(record.Response) == 0 {
			return nil, status.Error(codes.Internal, "idempotency cache is empty")
		}
		resp := P(new(T))
		if err := protojson.Unmarshal(record.Response, resp); err != nil {
			g.logger.WithError(err).WithField("idempotency_key", record.Scope.String()).Warn("failed to decode cached response")
			return nil, status.Error(codes.Internal, "failed to decode cached idempotency response")
		}
		return resp, nil
	case domain.ReplayPending:
		return nil, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
	case domain.ReplayRejected:
		return nil, decodeFailure(record)
	default:
		return nil, status.Error(codes.Internal, "unknown idempotency record state")
	}
}

func (g *Idempotency) storeSuccess(ctx context.Context, scope domain.ReplayScope, resp proto.Message) error {
	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return g.repo.Settle(ctx, scope, domain.ReplayCompleted, uint32(codes.OK), data)
}

func (g *Idempotency) storeFailure(ctx context.Context, scope domain.ReplayScope, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()
	if code == codes.OK {
		code = codes.Internal
	}
	payload, err := json.Marshal(idempotencyErrorPayload{Code: uint32(code), Message: st.Message()})
	if err != nil {
		payload = nil
	}
	if err := g.repo.Settle(ctx, scope, domain.ReplayRejected, uint32(code), payload); err != nil {
		g.logger.WithError(err).WithField("idempotency_key", scope.String()).Warn("failed to store idempotency failure")
	}
}

// retryable отличает сбой инфраструктуры от бизнес-отказа: такой результат
// не запоминается, и повтор с тем же ключом выполняется заново.
func retryable(err error) bool {
	switch status.Code(err) {
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.Canceled, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// release снимает claim без контекста запроса: отменённый вызов тоже должен его освободить.
func (g *Idempotency) release(ctx context.Context, scope domain.ReplayScope) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	if err := g.repo.Release(ctx, scope); err != nil {
		g.logger.WithError(err).WithField("idempotency_key", scope.String()).Warn("failed to release idempotency key")
	}
}

func decodeFailure(record domain.IdempotencyRecord) error {
	const fallback = "previous request with the same idempotency key failed"
	var payload idempotencyErrorPayload
	if len(record.Response) > 0 && json.Unmarshal(record.Response, &payload) == nil && payload.Code > 0 {
		if payload.Message == "" {
			payload.Message = fallback
		}
		return status.Error(codes.Code(payload.Code), payload.Message)
	}
	if record.Code > 0 {
		return status.Error(codes.Code(record.Code), fallback)
	}
	return status.Error(codes.Internal, fallback)
}

func readIdempotencyKey(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", nil
	}
	values := md.Get(webshopv1.IdempotencyKeyHeader)
	if len(values) == 0 {
		return "", nil
	}
	key := strings.TrimSpace(values[0])
	if len(key) > maxIdempotencyKeyLen {
		return "", status.Errorf(codes.InvalidArgument, "idempotency key must be at most %d characters", maxIdempotencyKeyLen)
	}
	return key, nil
}

func requestHash(req proto.Message) (string, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
