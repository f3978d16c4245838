package domain

import (
	"strings"
	"time"
)

// Role определяет права профиля в магазине.
type Role string

const (
	// RoleAdmin — администратор магазина.
	RoleAdmin Role = "admin"
	// RoleCustomer — покупатель.
	RoleCustomer Role = "customer"
	// RoleSupplier — поставщик артикулов.
	RoleSupplier Role = "supplier"
)

// Valid проверяет, что роль относится к поддерживаемым значениям.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleSupplier:
		return true
	default:
		return false
	}
}

// ProfileStatus описывает, может ли профиль пользоваться магазином.
type ProfileStatus string

const (
	// ProfileStatusActivated — профиль активен.
	ProfileStatusActivated ProfileStatus = "activated"
	// ProfileStatusDeactivated — профиль заблокирован.
	ProfileStatusDeactivated ProfileStatus = "deactivated"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s ProfileStatus) Valid() bool {
	return s == ProfileStatusActivated || s == ProfileStatusDeactivated
}

// Address — почтовый адрес профиля или доставки.
type Address struct {
	Name     string `validate:"max=64"`
	Street   string `validate:"required,max=64"`
	HouseNo  string `validate:"required,max=8"`
	Postcode string `validate:"required,numeric,len=5"`
	City     string `validate:"required,max=64"`
}

// Profile — учётная запись покупателя, поставщика или администратора.
type Profile struct {
	ID           int64
	Email        string `validate:"required,email,max=128"`
	LastName     string `validate:"required,lastname,max=32"`
	FirstName    string `validate:"required,max=32"`
	TelephoneNo  string `validate:"omitempty,max=32"`
	Role         Role
	Status       ProfileStatus
	Address      Address
	PasswordHash string
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Orders заполняется только поисками "с заказами".
	Orders []Order `validate:"-"`
}

// NormalizeEmail приводит email к виду, в котором он хранится и сравнивается.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsActive сообщает, может ли профиль входить в систему и делать заказы.
func (p Profile) IsActive() bool {
	return p.Status == ProfileStatusActivated
}

// Caller возвращает идентичность вызывающего для этого профиля.
func (p Profile) Caller() Caller {
	return Caller{ProfileID: p.ID, Email: p.Email, Role: p.Role}
}
