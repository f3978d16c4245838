// Package catalog реализует поиск по каталогу артикулов, атрибутов и категорий.
package catalog

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
)

const serviceName = "catalog"

// Service — сервис чтения каталога. Все операции требуют идентифицированного вызывающего.
type Service struct {
	catalog domain.CatalogRepository
	metrics *metrics.ServiceMetrics
	logger  *log.Entry
}

// Option настраивает Service.
type Option func(*Service)

// WithMetrics подключает метрики.
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

// NewService создаёт сервис каталога.
func NewService(catalog domain.CatalogRepository, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		logger:  log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "catalog-service")
	return s
}

// FindArticleByArticleNo возвращает артикул по номеру вместе с атрибутами и категориями.
func (s *Service) FindArticleByArticleNo(ctx context.Context, caller domain.Caller, articleNo string) (_ domain.Article, err error) {
	defer s.observe("FindArticleByArticleNo", time.Now(), &err)

	if err := caller.RequireAuthenticated(); err != nil {
		return domain.Article{}, err
	}
	articleNo = strings.TrimSpace(articleNo)
	if articleNo == "" {
		return domain.Article{}, domain.WithKey(domain.ErrArticleNotFound, articleNo)
	}
	return s.catalog.GetArticle(ctx, articleNo)
}

// FindArticlesByName ищет артикулы по части названия.
func (s *Service) FindArticlesByName(ctx context.Context, caller domain.Caller, fragment string) (_ []domain.Article, err error) {
	defer s.observe("FindArticlesByName", time.Now(), &err)

	return articles(caller, fragment, func() ([]domain.Article, error) {
		return s.catalog.ListArticlesByName(ctx, fragment)
	})
}

// FindArticlesByAttribute возвращает артикулы с атрибутом.
func (s *Service) FindArticlesByAttribute(ctx context.Context, caller domain.Caller, attributeID int64) (_ []domain.Article, err error) {
	defer s.observe("FindArticlesByAttribute", time.Now(), &err)

	return articles(caller, attributeID, func() ([]domain.Article, error) {
		return s.catalog.ListArticlesByAttribute(ctx, attributeID)
	})
}

// FindArticlesByCategory возвращает артикулы категории.
func (s *Service) FindArticlesByCategory(ctx context.Context, caller domain.Caller, categoryID int64) (_ []domain.Article, err error) {
	defer s.observe("FindArticlesByCategory", time.Now(), &err)

	return articles(caller, categoryID, func() ([]domain.Article, error) {
		return s.catalog.ListArticlesByCategory(ctx, categoryID)
	})
}

// FindAllCategories возвращает все категории.
func (s *Service) FindAllCategories(ctx context.Context, caller domain.Caller) (_ []domain.Category, err error) {
	defer s.observe("FindAllCategories", time.Now(), &err)

	return nonEmpty(caller, domain.ErrCategoryNotFound, "*", func() ([]domain.Category, error) {
		return s.catalog.ListCategories(ctx)
	})
}

// FindCategoriesByName ищет категории по точному названию.
func (s *Service) FindCategoriesByName(ctx context.Context, caller domain.Caller, name string) (_ []domain.Category, err error) {
	defer s.observe("FindCategoriesByName", time.Now(), &err)

	return nonEmpty(caller, domain.ErrCategoryNotFound, name, func() ([]domain.Category, error) {
		return s.catalog.ListCategoriesByName(ctx, name)
	})
}

// FindAllAttributes возвращает все атрибуты.
func (s *Service) FindAllAttributes(ctx context.Context, caller domain.Caller) (_ []domain.Attribute, err error) {
	defer s.observe("FindAllAttributes", time.Now(), &err)

	return nonEmpty(caller, domain.ErrAttributeNotFound, "*", func() ([]domain.Attribute, error) {
		return s.catalog.ListAttributes(ctx)
	})
}

// FindAttributesByName ищет атрибуты по точному названию.
func (s *Service) FindAttributesByName(ctx context.Context, caller domain.Caller, name string) (_ []domain.Attribute, err error) {
	defer s.observe("FindAttributesByName", time.Now(), &err)

	return nonEmpty(caller, domain.ErrAttributeNotFound, name, func() ([]domain.Attribute, error) {
		return s.catalog.ListAttributesByName(ctx, name)
	})
}

func articles(caller domain.Caller, key any, list func() ([]domain.Article, error)) ([]domain.Article, error) {
	return nonEmpty(caller, domain.ErrArticleNotFound, key, list)
}

// nonEmpty проверяет вызывающего и превращает пустой результат в ошибку с ключом поиска.
func nonEmpty[T any](caller domain.Caller, notFound error, key any, list func() ([]T, error)) ([]T, error) {
	if err := caller.RequireAuthenticated(); err != nil {
		return nil, err
	}
	items, err := list()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.WithKey(notFound, key)
	}
	return items, nil
}

func (s *Service) observe(operation string, started time.Time, err *error) {
	s.metrics.ObserveOperation(serviceName, operation, started, *err)
	if *err == nil {
		return
	}
	entry := s.logger.WithError(*err).WithField("operation", operation)
	if domain.KindOf(*err) == domain.KindInternal {
		entry.Error("operation failed")
		return
	}
	entry.Debug("operation rejected")
}
