// Package profile реализует операции над профилями покупателей, поставщиков и администраторов.
package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/validation"
)

const serviceName = "profile"

// Service реализует управление профилями с версионной защитой изменений.
type Service struct {
	profiles  domain.ProfileRepository
	orders    domain.OrderRepository
	hasher    auth.PasswordHasher
	validator *validation.Validator
	events    bool
	metrics   *metrics.ServiceMetrics
	logger    *log.Entry
}

// Option настраивает Service.
type Option func(*Service)

// WithEvents включает доменные события: хранилище ставит их в outbox
// в одной транзакции с изменением профиля.
func WithEvents() Option {
	return func(s *Service) { s.events = true }
}

// WithMetrics подключает метрики операций.
func WithMetrics(m *metrics.ServiceMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger задаёт логгер сервиса.
func WithLogger(logger *log.Entry) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService создаёт сервис профилей.
func NewService(profiles domain.ProfileRepository, orders domain.OrderRepository, hasher auth.PasswordHasher, opts ...Option) *Service {
	s := &Service{
		profiles:  profiles,
		orders:    orders,
		hasher:    hasher,
		validator: validation.New(),
		logger:    log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "profile-service")
	return s
}

// FindProfileByID возвращает профиль по идентификатору.
func (s *Service) FindProfileByID(ctx context.Context, caller domain.Caller, id int64) (_ domain.Profile, err error) {
	defer s.observe("FindProfileByID", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Profile{}, err
	}
	if id <= 0 {
		return domain.Profile{}, domain.WithKey(domain.ErrProfileNotFound, id)
	}
	return s.profiles.Get(ctx, id)
}

// FindProfileByEmail ищет профиль по email.
func (s *Service) FindProfileByEmail(ctx context.Context, caller domain.Caller, email string) (_ domain.Profile, err error) {
	defer s.observe("FindProfileByEmail", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Profile{}, err
	}
	if err := s.validator.Email(email); err != nil {
		return domain.Profile{}, err
	}
	return s.profiles.GetByEmail(ctx, email)
}

// FindProfileWithOrdersByEmail ищет профиль по email и подгружает его заказы.
func (s *Service) FindProfileWithOrdersByEmail(ctx context.Context, caller domain.Caller, email string) (_ domain.Profile, err error) {
	defer s.observe("FindProfileWithOrdersByEmail", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Profile{}, err
	}
	if err := s.validator.Email(email); err != nil {
		return domain.Profile{}, err
	}
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := caller.RequireOwnerOrAdmin(profile.ID); err != nil {
		return domain.Profile{}, err
	}
	orders, err := s.orders.ListByCustomer(ctx, profile.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.Orders = orders
	return profile, nil
}

// FindProfilesByLastName ищет профили по фамилии без учёта регистра.
// Пустой результат — ошибка с ключом в верхнем регистре.
func (s *Service) FindProfilesByLastName(ctx context.Context, caller domain.Caller, lastName string) (_ []domain.Profile, err error) {
	defer s.observe("FindProfilesByLastName", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return nil, err
	}
	if err := s.validator.LastName(lastName); err != nil {
		return nil, err
	}
	profiles, err := s.profiles.ListByLastName(ctx, lastName)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, domain.WithKey(domain.ErrProfileNotFound, strings.ToUpper(lastName))
	}
	return profiles, nil
}

// FindAllProfilesByRole возвращает профили с ролью. Только для администраторов.
func (s *Service) FindAllProfilesByRole(ctx context.Context, caller domain.Caller, role domain.Role) (_ []domain.Profile, err error) {
	defer s.observe("FindAllProfilesByRole", time.Now(), &err)

	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, domain.WithKey(domain.ErrInvalidRole, role)
	}
	profiles, err := s.profiles.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, domain.WithKey(domain.ErrProfileNotFound, role)
	}
	return profiles, nil
}

// CreateProfile регистрирует профиль. Покупатель может зарегистрироваться анонимно,
// поставщиков и администраторов создают только администраторы.
func (s *Service) CreateProfile(ctx context.Context, caller domain.Caller, profile domain.Profile, password, repeatPassword string) (_ domain.Profile, err error) {
	defer s.observe("CreateProfile", time.Now(), &err)

	if profile.Role == "" {
		profile.Role = domain.RoleCustomer
	}
	if !profile.Role.Valid() {
		return domain.Profile{}, domain.WithKey(domain.ErrInvalidRole, profile.Role)
	}
	if profile.Role != domain.RoleCustomer {
		if err := caller.RequireAdmin(); err != nil {
			return domain.Profile{}, err
		}
	}
	if profile.Status == "" || !caller.IsAdmin() {
		profile.Status = domain.ProfileStatusActivated
	}
	if !profile.Status.Valid() {
		return domain.Profile{}, domain.WithKey(domain.ErrInvalidStatus, profile.Status)
	}
	profile.Email = domain.NormalizeEmail(profile.Email)
	if err := s.validator.Profile(profile); err != nil {
		return domain.Profile{}, err
	}
	if err := s.validator.Password(password, repeatPassword); err != nil {
		return domain.Profile{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.Profile{}, err
	}
	profile.PasswordHash = hash

	created, err := s.profiles.Create(ctx, profile, s.journal(kafka.EventTypeProfileCreated))
	if err != nil {
		return domain.Profile{}, err
	}

	s.recorded(kafka.EventTypeProfileCreated)
	s.logger.WithFields(log.Fields{
		"profile_id": created.ID,
		"role":       created.Role,
	}).Info("profile created")
	return created, nil
}

// UpdateProfile сохраняет изменения профиля, если версия не изменилась с момента чтения.
// Статус и пароль меняются отдельными операциями; роль меняет только администратор.
func (s *Service) UpdateProfile(ctx context.Context, caller domain.Caller, profile domain.Profile) (_ domain.Profile, err error) {
	defer s.observe("UpdateProfile", time.Now(), &err)

	if err := caller.RequireOwnerOrAdmin(profile.ID); err != nil {
		return domain.Profile{}, err
	}
	current, err := s.current(ctx, profile.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	if profile.Role == "" {
		profile.Role = current.Role
	}
	if profile.Role != current.Role && !caller.IsAdmin() {
		return domain.Profile{}, domain.ErrAccessDenied
	}
	if !profile.Role.Valid() {
		return domain.Profile{}, domain.WithKey(domain.ErrInvalidRole, profile.Role)
	}
	profile.Status = current.Status
	profile.PasswordHash = current.PasswordHash
	profile.Email = domain.NormalizeEmail(profile.Email)
	if err := s.validator.Profile(profile); err != nil {
		return domain.Profile{}, err
	}

	updated, err := s.profiles.Update(ctx, profile, s.journal(kafka.EventTypeProfileUpdated))
	if err != nil {
		return domain.Profile{}, err
	}

	s.recorded(kafka.EventTypeProfileUpdated)
	s.logger.WithFields(log.Fields{
		"profile_id": updated.ID,
		"version":    updated.Version,
	}).Info("profile updated")
	return updated, nil
}

// DeleteProfile удаляет профиль. Только для администраторов; профиль с заказами
// или поставляемыми артикулами не удаляется.
func (s *Service) DeleteProfile(ctx context.Context, caller domain.Caller, profile domain.Profile) (err error) {
	defer s.observe("DeleteProfile", time.Now(), &err)

	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	journal, err := s.journal(kafka.EventTypeProfileDeleted).Build(profile)
	if err != nil {
		return err
	}
	if err := s.profiles.Delete(ctx, profile.ID, profile.Version, journal); err != nil {
		return err
	}

	s.recorded(kafka.EventTypeProfileDeleted)
	s.logger.WithField("profile_id", profile.ID).Info("profile deleted")
	return nil
}

// SetProfileStatus активирует или деактивирует профиль.
// Повторная установка текущего статуса — ErrStatusAlreadySet, независимо от версии.
func (s *Service) SetProfileStatus(ctx context.Context, caller domain.Caller, profile domain.Profile, status domain.ProfileStatus) (_ domain.Profile, err error) {
	defer s.observe("SetProfileStatus", time.Now(), &err)

	if err := caller.RequireOwnerOrAdmin(profile.ID); err != nil {
		return domain.Profile{}, err
	}
	if !status.Valid() {
		return domain.Profile{}, domain.WithKey(domain.ErrInvalidStatus, status)
	}
	current, err := s.current(ctx, profile.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	if current.Status == status {
		return domain.Profile{}, domain.WithKey(domain.ErrStatusAlreadySet, status)
	}

	next := current
	next.Status = status
	next.Version = profile.Version
	updated, err := s.profiles.Update(ctx, next, s.journal(kafka.EventTypeProfileStatusChanged))
	if err != nil {
		return domain.Profile{}, err
	}

	s.recorded(kafka.EventTypeProfileStatusChanged)
	s.logger.WithFields(log.Fields{
		"profile_id": updated.ID,
		"status":     updated.Status,
	}).Info("profile status changed")
	return updated, nil
}

// ChangePassword меняет пароль профиля. Владелец подтверждает старый пароль,
// администратор может сбросить пароль без него.
func (s *Service) ChangePassword(ctx context.Context, caller domain.Caller, profile domain.Profile, oldPassword, newPassword, repeatPassword string) (_ domain.Profile, err error) {
	defer s.observe("ChangePassword", time.Now(), &err)

	if err := caller.RequireOwnerOrAdmin(profile.ID); err != nil {
		return domain.Profile{}, err
	}
	current, err := s.current(ctx, profile.ID)
	if err != nil {
		return domain.Profile{}, err
	}
	if !caller.IsAdmin() && !s.hasher.Check(oldPassword, current.PasswordHash) {
		return domain.Profile{}, domain.ErrPasswordInvalid
	}
	if err := s.validator.Password(newPassword, repeatPassword); err != nil {
		return domain.Profile{}, err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.Profile{}, err
	}

	next := current
	next.PasswordHash = hash
	next.Version = profile.Version
	updated, err := s.profiles.Update(ctx, next, nil)
	if err != nil {
		return domain.Profile{}, err
	}
	s.logger.WithField("profile_id", updated.ID).Info("password changed")
	return updated, nil
}

// current читает сохранённое состояние; отсутствие записи означает параллельное удаление.
func (s *Service) current(ctx context.Context, id int64) (domain.Profile, error) {
	current, err := s.profiles.Get(ctx, id)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.Profile{}, domain.WithKey(domain.ErrConcurrentDelete, id)
	}
	return current, err
}

// journal строит событие профиля для outbox; без WithEvents журнал пуст.
func (s *Service) journal(eventType kafka.EventType) domain.ProfileJournal {
	if !s.events {
		return nil
	}
	return func(profile domain.Profile) (domain.Journal, error) {
		msg, err := kafka.NewProfileEvent(eventType, profile).OutboxMessage()
		if err != nil {
			return domain.Journal{}, err
		}
		return domain.Journal{Events: []domain.OutboxMessage{msg}}, nil
	}
}

func (s *Service) recorded(eventType kafka.EventType) {
	if s.events {
		s.metrics.RecordOutboxEvent(string(eventType))
	}
}

func (s *Service) observe(operation string, started time.Time, err *error) {
	s.metrics.ObserveOperation(serviceName, operation, started, *err)
	if *err == nil {
		return
	}
	entry := s.logger.WithError(*err).WithField("operation", operation)
	switch domain.KindOf(*err) {
	case domain.KindInternal:
		entry.Error("operation failed")
	case domain.KindConcurrency, domain.KindStateConflict:
		entry.Warn("operation rejected")
	default:
		entry.Debug("operation rejected")
	}
}
