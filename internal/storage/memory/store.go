package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
)

// Store — общее in-memory хранилище сущностей магазина.
// Один мьютекс на все таблицы: создание заказа, списание остатков и запись
// журнала атомарны, как транзакция в PostgreSQL. Блокировка очереди outbox
// берётся только под блокировкой Store.
type Store struct {
	mu sync.RWMutex

	profiles   map[int64]domain.Profile
	orders     map[int64]domain.Order
	articles   map[string]domain.Article
	categories map[int64]domain.Category
	attributes map[int64]domain.Attribute
	timeline   map[int64][]domain.TimelineEvent

	nextProfileID  int64
	nextOrderID    int64
	nextPositionID int64

	outbox *OutboxRepository
	now    func() time.Time
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	s := &Store{
		outbox: NewOutboxRepository(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.reset()
	return s
}

// Outbox возвращает очередь доставки, в которую репозитории Store пишут события.
// Перезагрузка набора данных её не очищает.
func (s *Store) Outbox() *OutboxRepository {
	return s.outbox
}

// writeJournalLocked пишет журнал до фиксации изменения: при ошибке ни очередь,
// ни история не меняются.
func (s *Store) writeJournalLocked(j domain.Journal) error {
	for _, event := range j.Timeline {
		if event.OrderID <= 0 {
			return domain.WithKey(domain.ErrOrderNotFound, event.OrderID)
		}
	}
	if _, err := s.outbox.enqueueAll(j.Events); err != nil {
		return err
	}
	for _, event := range j.Timeline {
		s.appendTimelineLocked(event)
	}
	return nil
}

// appendTimelineLocked вставляет событие по времени; при равном времени оно встаёт
// после уже записанных.
func (s *Store) appendTimelineLocked(event domain.TimelineEvent) {
	if event.Occurred.IsZero() {
		event.Occurred = s.now()
	}
	events := s.timeline[event.OrderID]
	at := sort.Search(len(events), func(i int) bool { return events[i].Occurred.After(event.Occurred) })
	s.timeline[event.OrderID] = slices.Insert(events, at, event)
}

func (s *Store) reset() {
	s.profiles = make(map[int64]domain.Profile)
	s.orders = make(map[int64]domain.Order)
	s.articles = make(map[string]domain.Article)
	s.categories = make(map[int64]domain.Category)
	s.attributes = make(map[int64]domain.Attribute)
	s.timeline = make(map[int64][]domain.TimelineEvent)
	s.nextProfileID = 1
	s.nextOrderID = 1
	s.nextPositionID = 1
}

// ReplaceAll удаляет все сущности и вставляет набор целиком (clean insert).
// Счётчики идентификаторов продолжаются после максимальных ID набора.
func (s *Store) ReplaceAll(_ context.Context, ds fixtures.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	for _, p := range ds.Profiles {
		s.profiles[p.ID] = cloneProfile(p)
		s.nextProfileID = max(s.nextProfileID, p.ID+1)
	}
	for _, c := range ds.Categories {
		s.categories[c.ID] = c
	}
	for _, a := range ds.Attributes {
		s.attributes[a.ID] = a
	}
	for _, a := range ds.Articles {
		s.articles[a.ArticleNo] = cloneArticle(a)
	}
	for _, o := range ds.Orders {
		s.orders[o.ID] = cloneOrder(o)
		s.nextOrderID = max(s.nextOrderID, o.ID+1)
		for _, p := range o.Positions {
			s.nextPositionID = max(s.nextPositionID, p.ID+1)
		}
	}
	return nil
}

// Ping реализует проверку готовности; in-memory хранилище всегда доступно.
func (s *Store) Ping(context.Context) error {
	return nil
}

func cloneProfile(p domain.Profile) domain.Profile {
	p.Orders = nil
	return p
}

func cloneOrder(o domain.Order) domain.Order {
	o.Positions = slices.Clone(o.Positions)
	return o
}

func cloneArticle(a domain.Article) domain.Article {
	a.Attributes = slices.Clone(a.Attributes)
	a.Categories = slices.Clone(a.Categories)
	return a
}

var _ fixtures.Target = (*Store)(nil)
