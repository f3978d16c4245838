// Package fixtures содержит именованные наборы данных для загрузки в хранилища
// с семантикой clean insert: все строки удаляются, затем вставляется набор целиком.
package fixtures

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// DefaultDataset — набор, повторяющий тестовые данные магазина.
const DefaultDataset = "webshop"

//go:embed datasets/*.yaml
var datasetsFS embed.FS

// ErrUnknownDataset возвращается для имени, которого нет среди встроенных наборов.
var ErrUnknownDataset = errors.New("unknown fixture dataset")

// Dataset — разобранный и проверенный набор данных, готовый к вставке.
type Dataset struct {
	Name       string
	Profiles   []domain.Profile
	Categories []domain.Category
	Attributes []domain.Attribute
	Articles   []domain.Article
	Orders     []domain.Order
}

// Target — хранилище, умеющее атомарно заменить всё своё содержимое набором.
type Target interface {
	ReplaceAll(ctx context.Context, ds Dataset) error
}

type rawAddress struct {
	Name     string `yaml:"name"`
	Street   string `yaml:"street"`
	HouseNo  string `yaml:"houseNo"`
	Postcode string `yaml:"postcode"`
	City     string `yaml:"city"`
}

func (a rawAddress) toDomain() domain.Address {
	return domain.Address{Name: a.Name, Street: a.Street, HouseNo: a.HouseNo, Postcode: a.Postcode, City: a.City}
}

type rawDataset struct {
	Profiles []struct {
		ID          int64       `yaml:"id"`
		Email       string      `yaml:"email"`
		LastName    string      `yaml:"lastName"`
		FirstName   string      `yaml:"firstName"`
		TelephoneNo string      `yaml:"telephoneNo"`
		Role        domain.Role `yaml:"role"`
		Status      string      `yaml:"status"`
		Password    string      `yaml:"password"`
		Address     rawAddress  `yaml:"address"`
	} `yaml:"profiles"`
	Categories []struct {
		ID   int64  `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"categories"`
	Attributes []struct {
		ID       int64  `yaml:"id"`
		Name     string `yaml:"name"`
		Category int64  `yaml:"category"`
	} `yaml:"attributes"`
	Articles []struct {
		ArticleNo  string  `yaml:"articleNo"`
		Name       string  `yaml:"name"`
		Price      string  `yaml:"price"`
		Quantity   int32   `yaml:"quantity"`
		Supplier   int64   `yaml:"supplier"`
		Attributes []int64 `yaml:"attributes"`
		Categories []int64 `yaml:"categories"`
	} `yaml:"articles"`
	Orders []struct {
		ID          int64  `yaml:"id"`
		Customer    int64  `yaml:"customer"`
		Status      string `yaml:"status"`
		PaymentMode string `yaml:"paymentMode"`
		Positions   []struct {
			ID            int64  `yaml:"id"`
			ArticleNo     string `yaml:"articleNo"`
			Quantity      int32  `yaml:"quantity"`
			Complaint     bool   `yaml:"complaint"`
			ComplaintText string `yaml:"complaintText"`
		} `yaml:"positions"`
	} `yaml:"orders"`
}

// Names возвращает имена встроенных наборов.
func Names() []string {
	entries, err := fs.ReadDir(datasetsFS, "datasets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Load читает встроенный набор и хэширует пароли профилей.
func Load(name string, hasher auth.PasswordHasher) (Dataset, error) {
	data, err := datasetsFS.ReadFile("datasets/" + name + ".yaml")
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
	return Parse(name, data, hasher)
}

// Parse разбирает YAML набора и проверяет ссылочную целостность.
func Parse(name string, data []byte, hasher auth.PasswordHasher) (Dataset, error) {
	var raw rawDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", name, err)
	}

	// Фиксированное время делает повторные загрузки неотличимыми.
	loadedAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ds := Dataset{Name: name}
	hashes := make(map[string]string)

	profileIDs := make(map[int64]struct{}, len(raw.Profiles))
	for _, p := range raw.Profiles {
		if p.ID <= 0 {
			return Dataset{}, fmt.Errorf("dataset %s: profile %q has no id", name, p.Email)
		}
		if !p.Role.Valid() {
			return Dataset{}, fmt.Errorf("dataset %s: profile %d: %w", name, p.ID, domain.ErrInvalidRole)
		}
		status := domain.ProfileStatus(p.Status)
		if status == "" {
			status = domain.ProfileStatusActivated
		}
		if !status.Valid() {
			return Dataset{}, fmt.Errorf("dataset %s: profile %d: %w", name, p.ID, domain.ErrInvalidStatus)
		}
		hash, ok := hashes[p.Password]
		if !ok {
			fresh, err := hasher.Hash(p.Password)
			if err != nil {
				return Dataset{}, fmt.Errorf("dataset %s: profile %d: %w", name, p.ID, err)
			}
			hash = fresh
			hashes[p.Password] = hash
		}
		profileIDs[p.ID] = struct{}{}
		ds.Profiles = append(ds.Profiles, domain.Profile{
			ID:           p.ID,
			Email:        domain.NormalizeEmail(p.Email),
			LastName:     p.LastName,
			FirstName:    p.FirstName,
			TelephoneNo:  p.TelephoneNo,
			Role:         p.Role,
			Status:       status,
			Address:      p.Address.toDomain(),
			PasswordHash: hash,
			CreatedAt:    loadedAt,
			UpdatedAt:    loadedAt,
		})
	}

	categories := make(map[int64]domain.Category, len(raw.Categories))
	for _, c := range raw.Categories {
		category := domain.Category{ID: c.ID, Name: c.Name}
		categories[c.ID] = category
		ds.Categories = append(ds.Categories, category)
	}

	attributes := make(map[int64]domain.Attribute, len(raw.Attributes))
	for _, a := range raw.Attributes {
		category, ok := categories[a.Category]
		if !ok {
			return Dataset{}, fmt.Errorf("dataset %s: attribute %d: unknown category %d", name, a.ID, a.Category)
		}
		attribute := domain.Attribute{ID: a.ID, Name: a.Name, Category: category}
		attributes[a.ID] = attribute
		ds.Attributes = append(ds.Attributes, attribute)
	}

	articles := make(map[string]domain.Article, len(raw.Articles))
	for _, a := range raw.Articles {
		price, err := decimal.NewFromString(a.Price)
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset %s: article %s price: %w", name, a.ArticleNo, err)
		}
		if a.Supplier != 0 {
			if _, ok := profileIDs[a.Supplier]; !ok {
				return Dataset{}, fmt.Errorf("dataset %s: article %s: unknown supplier %d", name, a.ArticleNo, a.Supplier)
			}
		}
		article := domain.Article{
			ArticleNo:  a.ArticleNo,
			Name:       a.Name,
			Price:      price,
			Quantity:   a.Quantity,
			SupplierID: a.Supplier,
			CreatedAt:  loadedAt,
			UpdatedAt:  loadedAt,
		}
		for _, id := range a.Attributes {
			attribute, ok := attributes[id]
			if !ok {
				return Dataset{}, fmt.Errorf("dataset %s: article %s: unknown attribute %d", name, a.ArticleNo, id)
			}
			article.Attributes = append(article.Attributes, attribute)
		}
		for _, id := range a.Categories {
			category, ok := categories[id]
			if !ok {
				return Dataset{}, fmt.Errorf("dataset %s: article %s: unknown category %d", name, a.ArticleNo, id)
			}
			article.Categories = append(article.Categories, category)
		}
		articles[a.ArticleNo] = article
		ds.Articles = append(ds.Articles, article)
	}

	profilesByID := make(map[int64]domain.Profile, len(ds.Profiles))
	for _, p := range ds.Profiles {
		profilesByID[p.ID] = p
	}
	for _, o := range raw.Orders {
		customer, ok := profilesByID[o.Customer]
		if !ok {
			return Dataset{}, fmt.Errorf("dataset %s: order %d: unknown customer %d", name, o.ID, o.Customer)
		}
		order := domain.Order{
			ID:              o.ID,
			CustomerID:      o.Customer,
			Status:          domain.OrderStatus(o.Status),
			PaymentMode:     domain.PaymentMode(o.PaymentMode),
			ShippingAddress: customer.Address,
			CreatedAt:       loadedAt,
			UpdatedAt:       loadedAt,
		}
		if !order.Status.Valid() || !order.PaymentMode.Valid() {
			return Dataset{}, fmt.Errorf("dataset %s: order %d: invalid status or payment mode", name, o.ID)
		}
		for _, p := range o.Positions {
			article, ok := articles[p.ArticleNo]
			if !ok {
				return Dataset{}, fmt.Errorf("dataset %s: order %d: unknown article %s", name, o.ID, p.ArticleNo)
			}
			order.Positions = append(order.Positions, domain.OrderPosition{
				ID:            p.ID,
				OrderID:       o.ID,
				ArticleNo:     p.ArticleNo,
				Quantity:      p.Quantity,
				UnitPrice:     article.Price,
				Complaint:     p.Complaint,
				ComplaintText: p.ComplaintText,
				CreatedAt:     loadedAt,
			})
		}
		ds.Orders = append(ds.Orders, order)
	}

	return ds, nil
}

// Reloader загружает наборы по имени в целевое хранилище.
// Разобранные наборы кэшируются: bcrypt делает повторный разбор заметно дороже вставки.
type Reloader struct {
	target Target
	hasher auth.PasswordHasher

	mu    sync.Mutex
	cache map[string]Dataset
}

// NewReloader создаёт Reloader для хранилища.
func NewReloader(target Target, hasher auth.PasswordHasher) *Reloader {
	return &Reloader{target: target, hasher: hasher, cache: make(map[string]Dataset)}
}

// ReloadFixtures заменяет содержимое хранилища набором datasetName.
func (r *Reloader) ReloadFixtures(ctx context.Context, datasetName string) error {
	ds, err := r.dataset(datasetName)
	if err != nil {
		return err
	}
	if err := r.target.ReplaceAll(ctx, ds); err != nil {
		return fmt.Errorf("reload dataset %s: %w", datasetName, err)
	}
	return nil
}

func (r *Reloader) dataset(name string) (Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ds, ok := r.cache[name]; ok {
		return ds, nil
	}
	ds, err := Load(name, r.hasher)
	if err != nil {
		return Dataset{}, err
	}
	r.cache[name] = ds
	return ds, nil
}
