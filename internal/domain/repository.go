package domain

import "context"

// ProfileRepository описывает требования к хранилищу профилей.
// Все изменяющие методы реализуют версионную проверку: отсутствующая запись даёт
// ErrConcurrentDelete, несовпадающая версия — ErrConcurrentUpdate.
// Журнал изменяющего метода фиксируется вместе с изменением или не фиксируется вовсе.
type ProfileRepository interface {
	// Create сохраняет новый профиль, назначает ID и версию 0.
	// Возвращает ErrProfileDuplicate, если email уже занят.
	Create(ctx context.Context, profile Profile, journal ProfileJournal) (Profile, error)
	// Get возвращает профиль по ID или ErrProfileNotFound.
	Get(ctx context.Context, id int64) (Profile, error)
	// GetByEmail ищет профиль по email без учёта регистра.
	GetByEmail(ctx context.Context, email string) (Profile, error)
	// ListByLastName ищет профили по фамилии без учёта регистра, упорядочено по ID.
	ListByLastName(ctx context.Context, lastName string) ([]Profile, error)
	// ListByRole возвращает профили с ролью, упорядочено по ID.
	ListByRole(ctx context.Context, role Role) ([]Profile, error)
	// Update применяет изменения профиля с проверкой profile.Version и возвращает сохранённое состояние.
	Update(ctx context.Context, profile Profile, journal ProfileJournal) (Profile, error)
	// Delete удаляет профиль с проверкой версии. Возвращает ErrProfileHasOrders или
	// ErrProfileHasArticles, если на профиль ссылаются заказы или артикулы.
	Delete(ctx context.Context, id, version int64, journal Journal) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create атомарно списывает остатки артикулов и сохраняет заказ с позициями.
	// Возвращает ErrArticleNotFound или ErrArticleQuantity, не изменяя данные.
	Create(ctx context.Context, order Order, journal OrderJournal) (Order, error)
	// Get возвращает заказ с позициями по идентификатору или ErrOrderNotFound.
	Get(ctx context.Context, id int64) (Order, error)
	// ListByCustomer возвращает заказы клиента, упорядочено по ID.
	ListByCustomer(ctx context.Context, customerID int64) ([]Order, error)
	// UpdateStatus меняет статус заказа с проверкой версии.
	UpdateStatus(ctx context.Context, id, version int64, status OrderStatus, journal OrderJournal) (Order, error)
	// AddPosition добавляет позицию, списывая остаток, с проверкой версии заказа.
	AddPosition(ctx context.Context, id, version int64, position OrderPosition, journal OrderJournal) (Order, error)
	// FileComplaint отмечает позицию рекламацией с проверкой версии заказа.
	FileComplaint(ctx context.Context, id, version, positionID int64, text string, journal OrderJournal) (Order, error)
	// ListComplaintsByCustomer возвращает позиции с рекламациями клиента.
	ListComplaintsByCustomer(ctx context.Context, customerID int64) ([]OrderPosition, error)
}

// CatalogRepository описывает доступ к артикулам, атрибутам и категориям.
type CatalogRepository interface {
	GetArticle(ctx context.Context, articleNo string) (Article, error)
	// ListArticlesByName ищет по частичному совпадению без учёта регистра.
	ListArticlesByName(ctx context.Context, fragment string) ([]Article, error)
	ListArticlesByAttribute(ctx context.Context, attributeID int64) ([]Article, error)
	ListArticlesByCategory(ctx context.Context, categoryID int64) ([]Article, error)
	ListCategories(ctx context.Context) ([]Category, error)
	// ListCategoriesByName ищет по точному совпадению названия.
	ListCategoriesByName(ctx context.Context, name string) ([]Category, error)
	ListAttributes(ctx context.Context) ([]Attribute, error)
	// ListAttributesByName ищет по точному совпадению названия.
	ListAttributesByName(ctx context.Context, name string) ([]Attribute, error)
}
