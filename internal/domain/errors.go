package domain

import (
	"errors"
	"fmt"
)

// Kind классифицирует бизнес-ошибки для транспорта, метрик и логов.
type Kind uint8

const (
	// KindInternal — инфраструктурная или неклассифицированная ошибка.
	KindInternal Kind = iota
	// KindNotFound — искомая сущность отсутствует.
	KindNotFound
	// KindValidation — некорректный формат входных данных.
	KindValidation
	// KindDuplicate — нарушение уникальности.
	KindDuplicate
	// KindConcurrency — сущность изменена или удалена параллельно.
	KindConcurrency
	// KindStateConflict — операция недопустима в текущем состоянии.
	KindStateConflict
	// KindUnauthenticated — операция требует идентификации вызывающего.
	KindUnauthenticated
	// KindAccessDenied — роли или владения недостаточно.
	KindAccessDenied
)

// String возвращает метку вида ошибки для метрик.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindConcurrency:
		return "concurrency"
	case KindStateConflict:
		return "state_conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindAccessDenied:
		return "access_denied"
	default:
		return "internal"
	}
}

// Error — классифицированная бизнес-ошибка. Экземпляры используются как sentinel-значения.
type Error struct {
	kind Kind
	msg  string
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Kind возвращает класс ошибки.
func (e *Error) Kind() Kind { return e.kind }

var (
	ErrProfileNotFound = newError(KindNotFound, "profile not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound         = newError(KindNotFound, "order not found")
	ErrOrderPositionNotFound = newError(KindNotFound, "order position not found")
	// ErrComplaintNotFound возвращается, если у клиента нет рекламаций.
	ErrComplaintNotFound = newError(KindNotFound, "complaint not found")
	ErrArticleNotFound   = newError(KindNotFound, "article not found")
	ErrAttributeNotFound = newError(KindNotFound, "attribute not found")
	ErrCategoryNotFound  = newError(KindNotFound, "category not found")

	ErrInvalidEmail      = newError(KindValidation, "invalid email")
	ErrInvalidLastName   = newError(KindValidation, "invalid last name")
	ErrInvalidRole       = newError(KindValidation, "invalid role")
	ErrInvalidStatus     = newError(KindValidation, "invalid status")
	ErrProfileValidation = newError(KindValidation, "profile validation failed")
	ErrPasswordMismatch  = newError(KindValidation, "passwords do not match")
	// Пароль короче четырёх символов или старый пароль неверен.
	ErrPasswordInvalid       = newError(KindValidation, "invalid password")
	ErrInvalidPaymentMode    = newError(KindValidation, "invalid payment mode")
	ErrNoOrderPositions      = newError(KindValidation, "order must contain at least one position")
	ErrInvalidQuantity       = newError(KindValidation, "position quantity must be greater than zero")
	ErrComplaintTextRequired = newError(KindValidation, "complaint text is required")

	ErrProfileDuplicate = newError(KindDuplicate, "profile with this email already exists")

	// Версия сущности изменилась после чтения.
	ErrConcurrentUpdate = newError(KindConcurrency, "entity was updated concurrently")
	// Сущность удалена после чтения.
	ErrConcurrentDelete = newError(KindConcurrency, "entity was deleted concurrently")

	// На складе меньше товара, чем в позиции.
	ErrArticleQuantity  = newError(KindStateConflict, "article quantity not available")
	ErrStatusAlreadySet = newError(KindStateConflict, "status already set")
	ErrProfileHasOrders = newError(KindStateConflict, "profile has orders")
	// Профиль указан поставщиком хотя бы одного артикула.
	ErrProfileHasArticles = newError(KindStateConflict, "profile supplies articles")
	ErrProfileDeactivated = newError(KindStateConflict, "profile is deactivated")
	// Позиции можно добавлять только в открытый заказ.
	ErrOrderNotOpen = newError(KindStateConflict, "order is not open")

	ErrUnauthenticated = newError(KindUnauthenticated, "authentication required")
	ErrAccessDenied    = newError(KindAccessDenied, "access denied")

	ErrIdempotencyKeyRequired         = newError(KindValidation, "idempotency key is required")
	ErrIdempotencyRequestHashRequired = newError(KindValidation, "idempotency method and request hash are required")
	ErrIdempotencyKeyNotFound         = newError(KindNotFound, "idempotency key not found")
	// Ключ уже занят тем же вызовом.
	ErrIdempotencyKeyAlreadyExists = newError(KindDuplicate, "idempotency key already exists")
	// Ключ переиспользован с другим методом или телом запроса.
	ErrIdempotencyHashMismatch   = newError(KindValidation, "idempotency key reused with another request")
	ErrIdempotencyAlreadySettled = newError(KindStateConflict, "idempotency record is already settled")
	// Результат можно сохранить только как completed или rejected.
	ErrInvalidReplayState = newError(KindValidation, "replay state must be completed or rejected")

	ErrOutboxMessageNotFound  = newError(KindNotFound, "outbox message not found")
	ErrOutboxMessageDuplicate = newError(KindDuplicate, "outbox message already enqueued")
	// Сообщение уже доставлено или помечено failed.
	ErrOutboxMessageSettled = newError(KindStateConflict, "outbox message is already settled")
)

// KeyError связывает бизнес-ошибку с ключом поиска или некорректным значением.
type KeyError struct {
	Err error
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// WithKey оборачивает ошибку ключом поиска. errors.Is продолжает сравнивать с sentinel.
func WithKey(err error, key any) error {
	if err == nil {
		return nil
	}
	return &KeyError{Err: err, Key: fmt.Sprint(key)}
}

// KeyOf извлекает ключ, приложенный через WithKey.
func KeyOf(err error) (string, bool) {
	var ke *KeyError
	if errors.As(err, &ke) {
		return ke.Key, true
	}
	return "", false
}

// KindOf классифицирует ошибку; всё, что не является *Error, считается внутренней ошибкой.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}

// IsNotFound сообщает, относится ли ошибка к классу "не найдено".
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConcurrency проверяет, является ли ошибка конфликтом параллельного изменения.
func IsConcurrency(err error) bool { return KindOf(err) == KindConcurrency }
