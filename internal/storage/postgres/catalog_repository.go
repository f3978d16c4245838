package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

const articleColumns = `article_no, name, price, quantity, COALESCE(supplier_id, 0), version, created_at, updated_at`

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository создаёт PostgreSQL-реализацию CatalogRepository.
func NewCatalogRepository(store *Store) domain.CatalogRepository {
	return &catalogRepository{db: store.DB()}
}

func (r *catalogRepository) GetArticle(ctx context.Context, articleNo string) (domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT `+articleColumns+` FROM articles WHERE article_no = $1`, articleNo)
	article, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, domain.WithKey(domain.ErrArticleNotFound, articleNo)
	}
	if err != nil {
		return domain.Article{}, err
	}
	if err := r.loadRelations(ctx, &article); err != nil {
		return domain.Article{}, err
	}
	return article, nil
}

func (r *catalogRepository) ListArticlesByName(ctx context.Context, fragment string) ([]domain.Article, error) {
	return r.listArticles(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE strpos(lower(name), lower($1)) > 0
		ORDER BY article_no COLLATE "C"
	`, fragment)
}

func (r *catalogRepository) ListArticlesByAttribute(ctx context.Context, attributeID int64) ([]domain.Article, error) {
	return r.listArticles(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE article_no IN (SELECT article_no FROM article_attributes WHERE attribute_id = $1)
		ORDER BY article_no COLLATE "C"
	`, attributeID)
}

func (r *catalogRepository) ListArticlesByCategory(ctx context.Context, categoryID int64) ([]domain.Article, error) {
	return r.listArticles(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE article_no IN (SELECT article_no FROM article_categories WHERE category_id = $1)
		ORDER BY article_no COLLATE "C"
	`, categoryID)
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return r.listCategories(ctx, `SELECT id, name FROM categories ORDER BY id`)
}

func (r *catalogRepository) ListCategoriesByName(ctx context.Context, name string) ([]domain.Category, error) {
	return r.listCategories(ctx, `SELECT id, name FROM categories WHERE name = $1 ORDER BY id`, name)
}

func (r *catalogRepository) ListAttributes(ctx context.Context) ([]domain.Attribute, error) {
	return r.listAttributes(ctx, `
		SELECT a.id, a.name, c.id, c.name
		FROM attributes a
		JOIN categories c ON c.id = a.category_id
		ORDER BY a.id
	`)
}

func (r *catalogRepository) ListAttributesByName(ctx context.Context, name string) ([]domain.Attribute, error) {
	return r.listAttributes(ctx, `
		SELECT a.id, a.name, c.id, c.name
		FROM attributes a
		JOIN categories c ON c.id = a.category_id
		WHERE a.name = $1
		ORDER BY a.id
	`, name)
}

func (r *catalogRepository) listArticles(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		articles = append(articles, article)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("iterate article rows: %w", err)
	}

	for i := range articles {
		if err := r.loadRelations(ctx, &articles[i]); err != nil {
			return nil, err
		}
	}
	return articles, nil
}

// loadRelations подгружает атрибуты и категории артикула в порядке их назначения.
func (r *catalogRepository) loadRelations(ctx context.Context, article *domain.Article) error {
	attributes, err := queryAttributes(ctx, r.db, `
		SELECT a.id, a.name, c.id, c.name
		FROM article_attributes aa
		JOIN attributes a ON a.id = aa.attribute_id
		JOIN categories c ON c.id = a.category_id
		WHERE aa.article_no = $1
		ORDER BY aa.position
	`, article.ArticleNo)
	if err != nil {
		return err
	}
	categories, err := queryCategories(ctx, r.db, `
		SELECT c.id, c.name
		FROM article_categories ac
		JOIN categories c ON c.id = ac.category_id
		WHERE ac.article_no = $1
		ORDER BY ac.position
	`, article.ArticleNo)
	if err != nil {
		return err
	}
	article.Attributes = attributes
	article.Categories = categories
	return nil
}

func (r *catalogRepository) listCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return queryCategories(ctx, r.db, query, args...)
}

func (r *catalogRepository) listAttributes(ctx context.Context, query string, args ...any) ([]domain.Attribute, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return queryAttributes(ctx, r.db, query, args...)
}

func queryCategories(ctx context.Context, q querier, query string, args ...any) ([]domain.Category, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

func queryAttributes(ctx context.Context, q querier, query string, args ...any) ([]domain.Attribute, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attributes: %w", err)
	}
	defer rows.Close()

	attributes := make([]domain.Attribute, 0)
	for rows.Next() {
		var a domain.Attribute
		if err := rows.Scan(&a.ID, &a.Name, &a.Category.ID, &a.Category.Name); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		attributes = append(attributes, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attribute rows: %w", err)
	}
	return attributes, nil
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ArticleNo, &a.Name, &a.Price, &a.Quantity, &a.SupplierID, &a.Version, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Article{}, err
		}
		return domain.Article{}, fmt.Errorf("scan article: %w", err)
	}
	return a, nil
}

var _ domain.CatalogRepository = (*catalogRepository)(nil)
