package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/vladislavdragonenkov/webshop/internal/domain"
)

// profileRepositoryInMemory — in-memory реализация ProfileRepository поверх общего Store.
type profileRepositoryInMemory struct {
	store *Store
}

// NewProfileRepository возвращает репозиторий профилей для локальной разработки и тестов.
func NewProfileRepository(store *Store) domain.ProfileRepository {
	return &profileRepositoryInMemory{store: store}
}

// Create сохраняет профиль, назначая ID и версию 0.
func (r *profileRepositoryInMemory) Create(_ context.Context, profile domain.Profile, journal domain.ProfileJournal) (domain.Profile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	profile.Email = domain.NormalizeEmail(profile.Email)
	if r.emailTakenLocked(profile.Email, 0) {
		return domain.Profile{}, domain.WithKey(domain.ErrProfileDuplicate, profile.Email)
	}

	now := s.now()
	profile.ID = s.nextProfileID
	profile.Version = 0
	profile.CreatedAt = now
	profile.UpdatedAt = now
	profile = cloneProfile(profile)
	if err := r.journalLocked(journal, profile); err != nil {
		return domain.Profile{}, err
	}
	s.nextProfileID++
	s.profiles[profile.ID] = profile
	return profile, nil
}

// Get возвращает профиль или ErrProfileNotFound.
func (r *profileRepositoryInMemory) Get(_ context.Context, id int64) (domain.Profile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return domain.Profile{}, domain.WithKey(domain.ErrProfileNotFound, id)
	}
	return profile, nil
}

// GetByEmail ищет профиль по email без учёта регистра.
func (r *profileRepositoryInMemory) GetByEmail(_ context.Context, email string) (domain.Profile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = domain.NormalizeEmail(email)
	for _, profile := range s.profiles {
		if profile.Email == email {
			return profile, nil
		}
	}
	return domain.Profile{}, domain.WithKey(domain.ErrProfileNotFound, email)
}

// ListByLastName возвращает профили с фамилией без учёта регистра.
func (r *profileRepositoryInMemory) ListByLastName(_ context.Context, lastName string) ([]domain.Profile, error) {
	return r.filter(func(p domain.Profile) bool {
		return strings.EqualFold(p.LastName, lastName)
	}), nil
}

// ListByRole возвращает профили с указанной ролью.
func (r *profileRepositoryInMemory) ListByRole(_ context.Context, role domain.Role) ([]domain.Profile, error) {
	return r.filter(func(p domain.Profile) bool {
		return p.Role == role
	}), nil
}

// Update перезаписывает профиль, проверяя версию.
func (r *profileRepositoryInMemory) Update(_ context.Context, profile domain.Profile, journal domain.ProfileJournal) (domain.Profile, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.profiles[profile.ID]
	if !ok {
		return domain.Profile{}, domain.WithKey(domain.ErrConcurrentDelete, profile.ID)
	}
	if current.Version != profile.Version {
		return domain.Profile{}, domain.WithKey(domain.ErrConcurrentUpdate, profile.ID)
	}
	profile.Email = domain.NormalizeEmail(profile.Email)
	if r.emailTakenLocked(profile.Email, profile.ID) {
		return domain.Profile{}, domain.WithKey(domain.ErrProfileDuplicate, profile.Email)
	}
	if profile.PasswordHash == "" {
		profile.PasswordHash = current.PasswordHash
	}

	profile.Version = current.Version + 1
	profile.CreatedAt = current.CreatedAt
	profile.UpdatedAt = s.now()
	profile = cloneProfile(profile)
	if err := r.journalLocked(journal, profile); err != nil {
		return domain.Profile{}, err
	}
	s.profiles[profile.ID] = profile
	return profile, nil
}

// Delete удаляет профиль, если на него не ссылаются заказы и артикулы.
func (r *profileRepositoryInMemory) Delete(_ context.Context, id, version int64, journal domain.Journal) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.profiles[id]
	if !ok {
		return domain.WithKey(domain.ErrConcurrentDelete, id)
	}
	if current.Version != version {
		return domain.WithKey(domain.ErrConcurrentUpdate, id)
	}
	for _, order := range s.orders {
		if order.CustomerID == id {
			return domain.WithKey(domain.ErrProfileHasOrders, id)
		}
	}
	for _, article := range s.articles {
		if article.SupplierID == id {
			return domain.WithKey(domain.ErrProfileHasArticles, id)
		}
	}
	if err := s.writeJournalLocked(journal); err != nil {
		return err
	}
	delete(s.profiles, id)
	return nil
}

func (r *profileRepositoryInMemory) journalLocked(journal domain.ProfileJournal, profile domain.Profile) error {
	j, err := journal.Build(profile)
	if err != nil {
		return err
	}
	return r.store.writeJournalLocked(j)
}

func (r *profileRepositoryInMemory) filter(match func(domain.Profile) bool) []domain.Profile {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Profile, 0)
	for _, profile := range s.profiles {
		if match(profile) {
			result = append(result, profile)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// emailTakenLocked вызывается под блокировкой Store.
func (r *profileRepositoryInMemory) emailTakenLocked(email string, exceptID int64) bool {
	for id, profile := range r.store.profiles {
		if id != exceptID && profile.Email == email {
			return true
		}
	}
	return false
}

var _ domain.ProfileRepository = (*profileRepositoryInMemory)(nil)
