package domain

import (
	"strconv"
	"strings"
	"time"
)

// ReplayState — стадия изменяющего вызова, сохранённого под ключом повтора.
type ReplayState string

const (
	// ReplayPending — вызов принят и ещё выполняется.
	ReplayPending ReplayState = "pending"
	// ReplayCompleted — сохранён успешный ответ.
	ReplayCompleted ReplayState = "completed"
	// ReplayRejected — сохранена ошибка, с которой завершился вызов.
	ReplayRejected ReplayState = "rejected"
)

// Valid сообщает, известна ли стадия.
func (s ReplayState) Valid() bool {
	switch s {
	case ReplayPending, ReplayCompleted, ReplayRejected:
		return true
	default:
		return false
	}
}

// Settled сообщает, что результат вызова уже сохранён.
func (s ReplayState) Settled() bool {
	return s == ReplayCompleted || s == ReplayRejected
}

// ReplayScope — ключ повтора в пространстве вызывающего. Разные профили
// используют одинаковые строки ключей независимо; анонимные вызовы имеют ProfileID 0.
type ReplayScope struct {
	ProfileID int64
	Key       string
}

// Normalize убирает пробелы вокруг ключа и проверяет, что он задан.
func (s ReplayScope) Normalize() (ReplayScope, error) {
	s.Key = strings.TrimSpace(s.Key)
	if s.Key == "" {
		return ReplayScope{}, ErrIdempotencyKeyRequired
	}
	return s, nil
}

func (s ReplayScope) String() string {
	return strconv.FormatInt(s.ProfileID, 10) + "/" + s.Key
}

// IdempotencyRecord — изменяющий вызов, сохранённый для повтора.
type IdempotencyRecord struct {
	Scope       ReplayScope
	Method      string
	RequestHash string
	State       ReplayState
	// Code — gRPC-код результата; 0 для успешного или ещё не завершённого вызова.
	Code      uint32
	Response  []byte
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired сообщает, что срок хранения записи истёк к моменту now.
func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// Matches сообщает, что запись принадлежит тому же методу с тем же телом запроса.
func (r IdempotencyRecord) Matches(method, requestHash string) bool {
	return r.Method == method && r.RequestHash == requestHash
}

// PrepareClaim проверяет новую запись перед регистрацией и заполняет служебные поля.
func PrepareClaim(record IdempotencyRecord, now time.Time, defaultTTL time.Duration) (IdempotencyRecord, error) {
	scope, err := record.Scope.Normalize()
	if err != nil {
		return IdempotencyRecord{}, err
	}
	record.Scope = scope
	record.Method = strings.TrimSpace(record.Method)
	record.RequestHash = strings.TrimSpace(record.RequestHash)
	if record.Method == "" || record.RequestHash == "" {
		return IdempotencyRecord{}, WithKey(ErrIdempotencyRequestHashRequired, scope)
	}
	if record.ExpiresAt.IsZero() {
		record.ExpiresAt = now.Add(defaultTTL)
	}
	record.State = ReplayPending
	record.Code = 0
	record.Response = nil
	record.CreatedAt = now
	record.UpdatedAt = now
	return record, nil
}
