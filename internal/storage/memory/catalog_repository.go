package memory

import (
	"context"
	"sort"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

type catalogRepositoryInMemory struct {
	store *Store
}

// NewCatalogRepository возвращает in-memory каталог артикулов, атрибутов и категорий.
func NewCatalogRepository(store *Store) domain.CatalogRepository {
	return &catalogRepositoryInMemory{store: store}
}

func (r *catalogRepositoryInMemory) GetArticle(_ context.Context, articleNo string) (domain.Article, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articles[articleNo]
	if !ok {
		return domain.Article{}, domain.WithKey(domain.ErrArticleNotFound, articleNo)
	}
	return cloneArticle(article), nil
}

func (r *catalogRepositoryInMemory) ListArticlesByName(_ context.Context, fragment string) ([]domain.Article, error) {
	return r.articles(func(a domain.Article) bool { return a.MatchesName(fragment) }), nil
}

func (r *catalogRepositoryInMemory) ListArticlesByAttribute(_ context.Context, attributeID int64) ([]domain.Article, error) {
	return r.articles(func(a domain.Article) bool { return a.HasAttribute(attributeID) }), nil
}

func (r *catalogRepositoryInMemory) ListArticlesByCategory(_ context.Context, categoryID int64) ([]domain.Article, error) {
	return r.articles(func(a domain.Article) bool { return a.HasCategory(categoryID) }), nil
}

func (r *catalogRepositoryInMemory) ListCategories(_ context.Context) ([]domain.Category, error) {
	return r.categories(func(domain.Category) bool { return true }), nil
}

func (r *catalogRepositoryInMemory) ListCategoriesByName(_ context.Context, name string) ([]domain.Category, error) {
	return r.categories(func(c domain.Category) bool { return c.Name == name }), nil
}

func (r *catalogRepositoryInMemory) ListAttributes(_ context.Context) ([]domain.Attribute, error) {
	return r.attributes(func(domain.Attribute) bool { return true }), nil
}

func (r *catalogRepositoryInMemory) ListAttributesByName(_ context.Context, name string) ([]domain.Attribute, error) {
	return r.attributes(func(a domain.Attribute) bool { return a.Name == name }), nil
}

func (r *catalogRepositoryInMemory) articles(match func(domain.Article) bool) []domain.Article {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Article, 0)
	for _, article := range s.articles {
		if match(article) {
			result = append(result, cloneArticle(article))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ArticleNo < result[j].ArticleNo })
	return result
}

func (r *catalogRepositoryInMemory) categories(match func(domain.Category) bool) []domain.Category {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Category, 0)
	for _, c := range s.categories {
		if match(c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *catalogRepositoryInMemory) attributes(match func(domain.Attribute) bool) []domain.Attribute {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Attribute, 0)
	for _, a := range s.attributes {
		if match(a) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

var _ domain.CatalogRepository = (*catalogRepositoryInMemory)(nil)
