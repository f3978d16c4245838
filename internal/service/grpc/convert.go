package grpcsvc

import (
	"time"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// unixMillis переводит время в миллисекунды Unix; нулевое время даёт 0.
func unixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func toAddress(a domain.Address) *webshopv1.Address {
	return &webshopv1.Address{Name: a.Name, Street: a.Street, HouseNo: a.HouseNo, Postcode: a.Postcode, City: a.City}
}

func fromAddress(a *webshopv1.Address) domain.Address {
	return domain.Address{
		Name:     a.GetName(),
		Street:   a.GetStreet(),
		HouseNo:  a.GetHouseNo(),
		Postcode: a.GetPostcode(),
		City:     a.GetCity(),
	}
}

// toProfile никогда не переносит хэш пароля.
func toProfile(p domain.Profile) *webshopv1.Profile {
	out := &webshopv1.Profile{
		Id:            p.ID,
		Email:         p.Email,
		LastName:      p.LastName,
		FirstName:     p.FirstName,
		TelephoneNo:   p.TelephoneNo,
		Role:          string(p.Role),
		Status:        string(p.Status),
		Address:       toAddress(p.Address),
		Version:       p.Version,
		CreatedUnixMs: unixMillis(p.CreatedAt),
		UpdatedUnixMs: unixMillis(p.UpdatedAt),
	}
	if len(p.Orders) > 0 {
		out.Orders = toOrders(p.Orders)
	}
	return out
}

func toProfiles(list []domain.Profile) []*webshopv1.Profile {
	out := make([]*webshopv1.Profile, 0, len(list))
	for _, p := range list {
		out = append(out, toProfile(p))
	}
	return out
}

func fromProfile(p *webshopv1.Profile) domain.Profile {
	return domain.Profile{
		ID:          p.GetId(),
		Email:       p.GetEmail(),
		LastName:    p.GetLastName(),
		FirstName:   p.GetFirstName(),
		TelephoneNo: p.GetTelephoneNo(),
		Role:        domain.Role(p.GetRole()),
		Status:      domain.ProfileStatus(p.GetStatus()),
		Address:     fromAddress(p.GetAddress()),
		Version:     p.GetVersion(),
	}
}

func toPosition(p domain.OrderPosition) *webshopv1.OrderPosition {
	return &webshopv1.OrderPosition{
		Id:            p.ID,
		OrderId:       p.OrderID,
		ArticleNo:     p.ArticleNo,
		Quantity:      p.Quantity,
		UnitPrice:     p.UnitPrice.StringFixed(2),
		Subtotal:      p.Subtotal().StringFixed(2),
		Complaint:     p.Complaint,
		ComplaintText: p.ComplaintText,
	}
}

func toPositions(list []domain.OrderPosition) []*webshopv1.OrderPosition {
	out := make([]*webshopv1.OrderPosition, 0, len(list))
	for _, p := range list {
		out = append(out, toPosition(p))
	}
	return out
}

func fromPosition(p *webshopv1.PositionInput) domain.OrderPosition {
	return domain.OrderPosition{ArticleNo: p.GetArticleNo(), Quantity: p.GetQuantity()}
}

func toOrder(o domain.Order) *webshopv1.Order {
	return &webshopv1.Order{
		Id:              o.ID,
		CustomerId:      o.CustomerID,
		Status:          string(o.Status),
		PaymentMode:     string(o.PaymentMode),
		ShippingAddress: toAddress(o.ShippingAddress),
		Positions:       toPositions(o.Positions),
		Total:           o.Total().StringFixed(2),
		Version:         o.Version,
		CreatedUnixMs:   unixMillis(o.CreatedAt),
		UpdatedUnixMs:   unixMillis(o.UpdatedAt),
	}
}

func toOrders(list []domain.Order) []*webshopv1.Order {
	out := make([]*webshopv1.Order, 0, len(list))
	for _, o := range list {
		out = append(out, toOrder(o))
	}
	return out
}

func toCategory(c domain.Category) *webshopv1.Category {
	return &webshopv1.Category{Id: c.ID, Name: c.Name}
}

func toCategories(list []domain.Category) []*webshopv1.Category {
	out := make([]*webshopv1.Category, 0, len(list))
	for _, c := range list {
		out = append(out, toCategory(c))
	}
	return out
}

func toAttributes(list []domain.Attribute) []*webshopv1.Attribute {
	out := make([]*webshopv1.Attribute, 0, len(list))
	for _, a := range list {
		out = append(out, &webshopv1.Attribute{Id: a.ID, Name: a.Name, Category: toCategory(a.Category)})
	}
	return out
}

func toArticle(a domain.Article) *webshopv1.Article {
	return &webshopv1.Article{
		ArticleNo:  a.ArticleNo,
		Name:       a.Name,
		Price:      a.Price.StringFixed(2),
		Quantity:   a.Quantity,
		SupplierId: a.SupplierID,
		Attributes: toAttributes(a.Attributes),
		Categories: toCategories(a.Categories),
		Version:    a.Version,
	}
}

func toArticles(list []domain.Article) []*webshopv1.Article {
	out := make([]*webshopv1.Article, 0, len(list))
	for _, a := range list {
		out = append(out, toArticle(a))
	}
	return out
}

func toTimeline(list []domain.TimelineEvent) []*webshopv1.TimelineEvent {
	out := make([]*webshopv1.TimelineEvent, 0, len(list))
	for _, e := range list {
		out = append(out, &webshopv1.TimelineEvent{Type: e.Type, Reason: e.Reason, OccurredUnixMs: unixMillis(e.Occurred)})
	}
	return out
}
