// Package validation проверяет входные данные сервисов и переводит ошибки
// go-playground/validator в бизнес-ошибки домена.
package validation

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// Фамилия: с заглавной буквы, допускается одна часть через дефис ("Müller-Lüdenscheidt").
var lastNamePattern = regexp.MustCompile(`^\p{Lu}\p{Ll}+(-\p{Lu}\p{Ll}+)?$`)

// MinPasswordLength — минимальная длина пароля.
const MinPasswordLength = 4

// Validator оборачивает validator.Validate с зарегистрированными правилами магазина.
type Validator struct {
	validate *validator.Validate
}

// New создаёт Validator. Экземпляр потокобезопасен и кэширует разбор структур.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Ошибка регистрации возможна только при пустом теге.
	_ = v.RegisterValidation("lastname", func(fl validator.FieldLevel) bool {
		return lastNamePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Email проверяет формат email; ошибка несёт исходное значение.
func (v *Validator) Email(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return domain.WithKey(domain.ErrInvalidEmail, email)
	}
	return nil
}

// LastName проверяет формат фамилии; ошибка несёт исходное значение.
func (v *Validator) LastName(lastName string) error {
	if err := v.validate.Var(lastName, "required,lastname"); err != nil {
		return domain.WithKey(domain.ErrInvalidLastName, lastName)
	}
	return nil
}

// Profile проверяет поля профиля и адреса. Ключ ошибки — список неверных полей.
func (v *Validator) Profile(profile domain.Profile) error {
	err := v.validate.Struct(profile)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, strings.TrimPrefix(fe.Namespace(), "Profile."))
	}
	sort.Strings(fields)
	return domain.WithKey(domain.ErrProfileValidation, strings.Join(fields, ","))
}

// Password проверяет новый пароль и его повтор.
func (v *Validator) Password(password, repeat string) error {
	if len(password) < MinPasswordLength {
		return domain.ErrPasswordInvalid
	}
	if password != repeat {
		return domain.ErrPasswordMismatch
	}
	return nil
}
