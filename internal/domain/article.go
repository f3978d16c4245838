package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category — группа атрибутов каталога ("Dimension", "Material").
type Category struct {
	ID   int64
	Name string
}

// Attribute — значение характеристики, принадлежащее ровно одной категории.
type Attribute struct {
	ID       int64
	Name     string
	Category Category
}

// Article — товар каталога с бизнес-ключом ArticleNo.
type Article struct {
	ArticleNo  string
	Name       string
	Price      decimal.Decimal
	Quantity   int32
	SupplierID int64
	Attributes []Attribute
	Categories []Category
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasAttribute сообщает, связан ли артикул с атрибутом.
func (a Article) HasAttribute(id int64) bool {
	for _, attr := range a.Attributes {
		if attr.ID == id {
			return true
		}
	}
	return false
}

// HasCategory сообщает, связан ли артикул с категорией.
func (a Article) HasCategory(id int64) bool {
	for _, c := range a.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// MatchesName проверяет частичное совпадение названия без учёта регистра.
func (a Article) MatchesName(fragment string) bool {
	return strings.Contains(strings.ToLower(a.Name), strings.ToLower(fragment))
}
