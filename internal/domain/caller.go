package domain

// Caller — явная идентичность вызывающего, передаваемая в каждую операцию сервисов.
// Нулевое значение соответствует анонимному вызову.
type Caller struct {
	ProfileID int64
	Email     string
	Role      Role
}

// Anonymous — вызывающий без идентичности.
var Anonymous = Caller{}

// Authenticated сообщает, идентифицирован ли вызывающий.
func (c Caller) Authenticated() bool {
	return c.ProfileID > 0
}

// IsAdmin сообщает, что вызывающий — администратор.
func (c Caller) IsAdmin() bool {
	return c.Authenticated() && c.Role == RoleAdmin
}

// Owns проверяет, что вызывающий является владельцем профиля.
func (c Caller) Owns(profileID int64) bool {
	return c.Authenticated() && c.ProfileID == profileID
}

// RequireAuthenticated — guard для операций, требующих идентичности.
func (c Caller) RequireAuthenticated() error {
	if !c.Authenticated() {
		return ErrUnauthenticated
	}
	return nil
}

// RequireAdmin — guard для административных операций.
func (c Caller) RequireAdmin() error {
	if err := c.RequireAuthenticated(); err != nil {
		return err
	}
	if c.Role != RoleAdmin {
		return ErrAccessDenied
	}
	return nil
}

// RequireOwnerOrAdmin — guard для операций над собственными данными.
func (c Caller) RequireOwnerOrAdmin(profileID int64) error {
	if err := c.RequireAuthenticated(); err != nil {
		return err
	}
	if c.Role != RoleAdmin && c.ProfileID != profileID {
		return ErrAccessDenied
	}
	return nil
}
