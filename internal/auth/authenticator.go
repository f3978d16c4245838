package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// Authenticator проверяет учётные данные по хранилищу профилей.
type Authenticator struct {
	profiles domain.ProfileRepository
	hasher   PasswordHasher
	logger   *log.Entry
}

// NewAuthenticator создаёт Authenticator.
func NewAuthenticator(profiles domain.ProfileRepository, hasher PasswordHasher, logger *log.Entry) *Authenticator {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Authenticator{
		profiles: profiles,
		hasher:   hasher,
		logger:   logger.WithField("component", "authenticator"),
	}
}

// Authenticate возвращает идентичность по email и паролю.
// Неизвестный email, неверный пароль и деактивированный профиль дают ErrUnauthenticated.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (domain.Caller, error) {
	if email == "" || password == "" {
		return domain.Anonymous, domain.ErrUnauthenticated
	}
	profile, err := a.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Anonymous, domain.ErrUnauthenticated
		}
		return domain.Anonymous, err
	}
	if !a.hasher.Check(password, profile.PasswordHash) {
		a.logger.WithField("profile_id", profile.ID).Warn("password mismatch")
		return domain.Anonymous, domain.ErrUnauthenticated
	}
	if !profile.IsActive() {
		a.logger.WithField("profile_id", profile.ID).Warn("deactivated profile tried to authenticate")
		return domain.Anonymous, domain.ErrUnauthenticated
	}
	return profile.Caller(), nil
}

// ParseBasic разбирает значение заголовка "Basic base64(email:password)".
func ParseBasic(header string) (email, password string, ok bool) {
	const prefix = "basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	return email, password, ok
}

// BasicHeader формирует значение заголовка Basic-аутентификации.
func BasicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}
