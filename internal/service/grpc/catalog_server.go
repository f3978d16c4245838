package grpcsvc

import (
	"context"

	log "github.com/sirupsen/logrus"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// CatalogServer реализует webshopv1.CatalogServiceServer. Все методы только читают.
type CatalogServer struct {
	webshopv1.UnimplementedCatalogServiceServer

	catalog CatalogService
	logger  *log.Entry
}

// NewCatalogServer создаёт gRPC-обработчик каталога.
func NewCatalogServer(catalog CatalogService, logger *log.Entry) *CatalogServer {
	return &CatalogServer{catalog: catalog, logger: logger}
}

func articlesResponse(list []domain.Article) *webshopv1.ArticlesResponse {
	return &webshopv1.ArticlesResponse{Articles: toArticles(list)}
}

func categoriesResponse(list []domain.Category) *webshopv1.CategoriesResponse {
	return &webshopv1.CategoriesResponse{Categories: toCategories(list)}
}

func attributesResponse(list []domain.Attribute) *webshopv1.AttributesResponse {
	return &webshopv1.AttributesResponse{Attributes: toAttributes(list)}
}

func (s *CatalogServer) FindArticleByArticleNo(ctx context.Context, req *webshopv1.ArticleNoRequest) (*webshopv1.ArticleResponse, error) {
	a, err := s.catalog.FindArticleByArticleNo(ctx, auth.CallerFrom(ctx), req.GetArticleNo())
	return respond(s.logger, "FindArticleByArticleNo", a, err, func(a domain.Article) *webshopv1.ArticleResponse {
		return &webshopv1.ArticleResponse{Article: toArticle(a)}
	})
}

func (s *CatalogServer) FindArticlesByName(ctx context.Context, req *webshopv1.NameRequest) (*webshopv1.ArticlesResponse, error) {
	list, err := s.catalog.FindArticlesByName(ctx, auth.CallerFrom(ctx), req.GetName())
	return respond(s.logger, "FindArticlesByName", list, err, articlesResponse)
}

func (s *CatalogServer) FindArticlesByAttribute(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.ArticlesResponse, error) {
	list, err := s.catalog.FindArticlesByAttribute(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindArticlesByAttribute", list, err, articlesResponse)
}

func (s *CatalogServer) FindArticlesByCategory(ctx context.Context, req *webshopv1.IDRequest) (*webshopv1.ArticlesResponse, error) {
	list, err := s.catalog.FindArticlesByCategory(ctx, auth.CallerFrom(ctx), req.GetId())
	return respond(s.logger, "FindArticlesByCategory", list, err, articlesResponse)
}

func (s *CatalogServer) FindAllCategories(ctx context.Context, _ *webshopv1.Empty) (*webshopv1.CategoriesResponse, error) {
	list, err := s.catalog.FindAllCategories(ctx, auth.CallerFrom(ctx))
	return respond(s.logger, "FindAllCategories", list, err, categoriesResponse)
}

func (s *CatalogServer) FindCategoriesByName(ctx context.Context, req *webshopv1.NameRequest) (*webshopv1.CategoriesResponse, error) {
	list, err := s.catalog.FindCategoriesByName(ctx, auth.CallerFrom(ctx), req.GetName())
	return respond(s.logger, "FindCategoriesByName", list, err, categoriesResponse)
}

func (s *CatalogServer) FindAllAttributes(ctx context.Context, _ *webshopv1.Empty) (*webshopv1.AttributesResponse, error) {
	list, err := s.catalog.FindAllAttributes(ctx, auth.CallerFrom(ctx))
	return respond(s.logger, "FindAllAttributes", list, err, attributesResponse)
}

func (s *CatalogServer) FindAttributesByName(ctx context.Context, req *webshopv1.NameRequest) (*webshopv1.AttributesResponse, error) {
	list, err := s.catalog.FindAttributesByName(ctx, auth.CallerFrom(ctx), req.GetName())
	return respond(s.logger, "FindAttributesByName", list, err, attributesResponse)
}

var (
	_ webshopv1.ProfileServiceServer = (*ProfileServer)(nil)
	_ webshopv1.OrderServiceServer   = (*OrderServer)(nil)
	_ webshopv1.CatalogServiceServer = (*CatalogServer)(nil)
)
