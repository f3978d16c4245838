package profile_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/domain"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/metrics"
	"github.com/vladislavdragonenkov/webshop/internal/service/profile"
	"github.com/vladislavdragonenkov/webshop/internal/storage/memory"
)

var (
	admin      = domain.Caller{ProfileID: 1, Email: "admin@hs-karlsruhe.de", Role: domain.RoleAdmin}
	mustermann = domain.Caller{ProfileID: 2, Email: "max@hs-karlsruhe.de", Role: domain.RoleCustomer}
	customer   = domain.Caller{ProfileID: 5, Email: "rd@sc.de", Role: domain.RoleCustomer}
)

type ProfileServiceSuite struct {
	suite.Suite

	ctx      context.Context
	store    *memory.Store
	reloader *fixtures.Reloader
	outbox   *memory.OutboxRepository
	hasher   *auth.BcryptHasher
	svc      *profile.Service
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceSuite))
}

func (s *ProfileServiceSuite) SetupSuite() {
	s.ctx = context.Background()
	s.hasher = auth.NewBcryptHasher(bcrypt.MinCost)
}

// SetupTest загружает набор данных в новое хранилище со своей очередью outbox.
func (s *ProfileServiceSuite) SetupTest() {
	s.store = memory.NewStore()
	s.reloader = fixtures.NewReloader(s.store, s.hasher)
	s.Require().NoError(s.reloader.ReloadFixtures(s.ctx, fixtures.DefaultDataset))
	s.outbox = s.store.Outbox()

	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	s.svc = profile.NewService(
		memory.NewProfileRepository(s.store),
		memory.NewOrderRepository(s.store),
		s.hasher,
		profile.WithEvents(),
		profile.WithMetrics(metrics.NewServiceMetricsWithRegisterer(prometheus.NewRegistry())),
		profile.WithLogger(log.NewEntry(logger)),
	)
}

func newCustomer(email string) domain.Profile {
	return domain.Profile{
		Email:     email,
		LastName:  "Neumann",
		FirstName: "Nina",
		Address: domain.Address{
			Street:   "Kaiserstrasse",
			HouseNo:  "1",
			Postcode: "76131",
			City:     "Karlsruhe",
		},
	}
}

func (s *ProfileServiceSuite) TestFindProfileByEmail() {
	p, err := s.svc.FindProfileByEmail(s.ctx, customer, "max@hs-karlsruhe.de")
	s.Require().NoError(err)
	s.Equal("max@hs-karlsruhe.de", p.Email)
	s.Equal("Mustermann", p.LastName)

	_, err = s.svc.FindProfileByEmail(s.ctx, customer, "mail/invalid.de")
	s.ErrorIs(err, domain.ErrInvalidEmail)

	_, err = s.svc.FindProfileByEmail(s.ctx, customer, "nicht@vorhanden.de")
	s.ErrorIs(err, domain.ErrProfileNotFound)
	key, _ := domain.KeyOf(err)
	s.Equal("nicht@vorhanden.de", key)

	_, err = s.svc.FindProfileByEmail(s.ctx, domain.Anonymous, "max@hs-karlsruhe.de")
	s.ErrorIs(err, domain.ErrUnauthenticated)
}

func (s *ProfileServiceSuite) TestFindProfileByID() {
	p, err := s.svc.FindProfileByID(s.ctx, customer, 4)
	s.Require().NoError(err)
	s.Equal("oliver.kahn@fc-bayern.de", p.Email)

	_, err = s.svc.FindProfileByID(s.ctx, customer, -1)
	s.ErrorIs(err, domain.ErrProfileNotFound)
	_, err = s.svc.FindProfileByID(s.ctx, customer, 9999)
	s.ErrorIs(err, domain.ErrProfileNotFound)
}

func (s *ProfileServiceSuite) TestFindProfileWithOrdersByEmail() {
	p, err := s.svc.FindProfileWithOrdersByEmail(s.ctx, mustermann, "max@hs-karlsruhe.de")
	s.Require().NoError(err)
	s.Len(p.Orders, 2)

	p, err = s.svc.FindProfileWithOrdersByEmail(s.ctx, admin, "oliver.kahn@fc-bayern.de")
	s.Require().NoError(err)
	s.Empty(p.Orders)

	_, err = s.svc.FindProfileWithOrdersByEmail(s.ctx, customer, "max@hs-karlsruhe.de")
	s.ErrorIs(err, domain.ErrAccessDenied)
}

func (s *ProfileServiceSuite) TestFindProfilesByLastName() {
	profiles, err := s.svc.FindProfilesByLastName(s.ctx, customer, "Mustermann")
	s.Require().NoError(err)
	s.Len(profiles, 2)
	for _, p := range profiles {
		s.Equal("Mustermann", p.LastName)
	}

	_, err = s.svc.FindProfilesByLastName(s.ctx, customer, "Nichtvorhanden")
	s.ErrorIs(err, domain.ErrProfileNotFound)
	s.Contains(err.Error(), "NICHTVORHANDEN")

	_, err = s.svc.FindProfilesByLastName(s.ctx, customer, "?")
	s.ErrorIs(err, domain.ErrInvalidLastName)
}

func (s *ProfileServiceSuite) TestFindAllProfilesByRoleIsAdminOnly() {
	_, err := s.svc.FindAllProfilesByRole(s.ctx, customer, domain.RoleCustomer)
	s.ErrorIs(err, domain.ErrAccessDenied)

	_, err = s.svc.FindAllProfilesByRole(s.ctx, domain.Anonymous, domain.RoleCustomer)
	s.ErrorIs(err, domain.ErrUnauthenticated)

	customers, err := s.svc.FindAllProfilesByRole(s.ctx, admin, domain.RoleCustomer)
	s.Require().NoError(err)
	s.Len(customers, 5)

	_, err = s.svc.FindAllProfilesByRole(s.ctx, admin, domain.Role("root"))
	s.ErrorIs(err, domain.ErrInvalidRole)
}

func (s *ProfileServiceSuite) TestCreateProfileRoundTrip() {
	created, err := s.svc.CreateProfile(s.ctx, domain.Anonymous, newCustomer("Nina.Neumann@HS-Karlsruhe.de"), "geheim", "geheim")
	s.Require().NoError(err)
	s.Positive(created.ID)
	s.Zero(created.Version)
	s.Equal("nina.neumann@hs-karlsruhe.de", created.Email, "email is stored lower-cased")
	s.Equal(domain.RoleCustomer, created.Role)
	s.Equal(domain.ProfileStatusActivated, created.Status)
	s.True(s.hasher.Check("geheim", created.PasswordHash))

	found, err := s.svc.FindProfileByEmail(s.ctx, created.Caller(), "nina.neumann@hs-karlsruhe.de")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal(created.LastName, found.LastName)
	s.Equal(created.Address, found.Address)

	pending := s.outbox.AllPending()
	s.Require().Len(pending, 1)
	s.Equal("profile.created", pending[0].EventType)
	s.NotContains(string(pending[0].Payload), created.PasswordHash)
}

func (s *ProfileServiceSuite) TestCreateProfileRejections() {
	_, err := s.svc.CreateProfile(s.ctx, domain.Anonymous, newCustomer("max@hs-karlsruhe.de"), "geheim", "geheim")
	s.ErrorIs(err, domain.ErrProfileDuplicate)
	_, err = s.svc.CreateProfile(s.ctx, domain.Anonymous, newCustomer("MAX@HS-Karlsruhe.de"), "geheim", "geheim")
	s.ErrorIs(err, domain.ErrProfileDuplicate, "emails differing only in case collide")

	invalid := newCustomer("neu@hs-karlsruhe.de")
	invalid.LastName = "?"
	_, err = s.svc.CreateProfile(s.ctx, domain.Anonymous, invalid, "geheim", "geheim")
	s.ErrorIs(err, domain.ErrProfileValidation)

	_, err = s.svc.CreateProfile(s.ctx, domain.Anonymous, newCustomer("neu@hs-karlsruhe.de"), "geheim", "anders")
	s.ErrorIs(err, domain.ErrPasswordMismatch)

	supplier := newCustomer("lieferant@hs-karlsruhe.de")
	supplier.Role = domain.RoleSupplier
	_, err = s.svc.CreateProfile(s.ctx, domain.Anonymous, supplier, "geheim", "geheim")
	s.ErrorIs(err, domain.ErrUnauthenticated)
	_, err = s.svc.CreateProfile(s.ctx, customer, supplier, "geheim", "geheim")
	s.ErrorIs(err, domain.ErrAccessDenied)

	created, err := s.svc.CreateProfile(s.ctx, admin, supplier, "geheim", "geheim")
	s.Require().NoError(err)
	s.Equal(domain.RoleSupplier, created.Role)
}

func (s *ProfileServiceSuite) TestUpdateProfileVersionGuard() {
	loaded, err := s.svc.FindProfileByID(s.ctx, customer, 5)
	s.Require().NoError(err)

	first := loaded
	first.TelephoneNo = "0721 111"
	updated, err := s.svc.UpdateProfile(s.ctx, customer, first)
	s.Require().NoError(err)
	s.Equal(loaded.Version+1, updated.Version)

	stale := loaded
	stale.TelephoneNo = "0721 222"
	_, err = s.svc.UpdateProfile(s.ctx, customer, stale)
	s.ErrorIs(err, domain.ErrConcurrentUpdate)

	current, err := s.svc.FindProfileByID(s.ctx, customer, 5)
	s.Require().NoError(err)
	s.Equal("0721 111", current.TelephoneNo)
}

func (s *ProfileServiceSuite) TestUpdateProfileGuards() {
	loaded, err := s.svc.FindProfileByID(s.ctx, customer, 2)
	s.Require().NoError(err)

	_, err = s.svc.UpdateProfile(s.ctx, customer, loaded)
	s.ErrorIs(err, domain.ErrAccessDenied)

	promoted := loaded
	promoted.Role = domain.RoleAdmin
	_, err = s.svc.UpdateProfile(s.ctx, mustermann, promoted)
	s.ErrorIs(err, domain.ErrAccessDenied)

	promoted.Role = domain.RoleSupplier
	updated, err := s.svc.UpdateProfile(s.ctx, admin, promoted)
	s.Require().NoError(err)
	s.Equal(domain.RoleSupplier, updated.Role)

	taken := updated
	taken.Email = "rd@sc.de"
	_, err = s.svc.UpdateProfile(s.ctx, admin, taken)
	s.ErrorIs(err, domain.ErrProfileDuplicate)
}

func (s *ProfileServiceSuite) TestUpdateDeletedProfile() {
	loaded, err := s.svc.FindProfileByID(s.ctx, admin, 4)
	s.Require().NoError(err)
	s.Require().NoError(s.svc.DeleteProfile(s.ctx, admin, loaded))

	_, err = s.svc.UpdateProfile(s.ctx, admin, loaded)
	s.ErrorIs(err, domain.ErrConcurrentDelete)
}

func (s *ProfileServiceSuite) TestDeleteProfile() {
	before, err := s.svc.FindAllProfilesByRole(s.ctx, admin, domain.RoleCustomer)
	s.Require().NoError(err)

	kahn, err := s.svc.FindProfileByEmail(s.ctx, admin, "oliver.kahn@fc-bayern.de")
	s.Require().NoError(err)

	s.ErrorIs(s.svc.DeleteProfile(s.ctx, customer, kahn), domain.ErrAccessDenied)
	s.Require().NoError(s.svc.DeleteProfile(s.ctx, admin, kahn))

	after, err := s.svc.FindAllProfilesByRole(s.ctx, admin, domain.RoleCustomer)
	s.Require().NoError(err)
	s.Len(after, len(before)-1)

	_, err = s.svc.FindProfileByEmail(s.ctx, admin, "oliver.kahn@fc-bayern.de")
	s.ErrorIs(err, domain.ErrProfileNotFound)

	s.ErrorIs(s.svc.DeleteProfile(s.ctx, admin, kahn), domain.ErrConcurrentDelete)
}

func (s *ProfileServiceSuite) TestDeleteReferencedProfile() {
	withOrders, err := s.svc.FindProfileByEmail(s.ctx, admin, "max@hs-karlsruhe.de")
	s.Require().NoError(err)
	s.ErrorIs(s.svc.DeleteProfile(s.ctx, admin, withOrders), domain.ErrProfileHasOrders)

	supplier, err := s.svc.FindProfileByEmail(s.ctx, admin, "info@holzwerk.de")
	s.Require().NoError(err)
	s.ErrorIs(s.svc.DeleteProfile(s.ctx, admin, supplier), domain.ErrProfileHasArticles)

	_, err = s.svc.FindProfileByEmail(s.ctx, admin, "max@hs-karlsruhe.de")
	s.NoError(err, "rejected delete must leave the profile in place")
}

func (s *ProfileServiceSuite) TestSetProfileStatusTwice() {
	loaded, err := s.svc.FindProfileByID(s.ctx, admin, 3)
	s.Require().NoError(err)

	updated, err := s.svc.SetProfileStatus(s.ctx, admin, loaded, domain.ProfileStatusDeactivated)
	s.Require().NoError(err)
	s.Equal(domain.ProfileStatusDeactivated, updated.Status)
	s.Equal(loaded.Version+1, updated.Version)

	_, err = s.svc.SetProfileStatus(s.ctx, admin, loaded, domain.ProfileStatusDeactivated)
	s.ErrorIs(err, domain.ErrStatusAlreadySet)

	current, err := s.svc.FindProfileByID(s.ctx, admin, 3)
	s.Require().NoError(err)
	s.Equal(domain.ProfileStatusDeactivated, current.Status)
	s.Equal(updated.Version, current.Version)

	_, err = s.svc.SetProfileStatus(s.ctx, admin, loaded, domain.ProfileStatusActivated)
	s.ErrorIs(err, domain.ErrConcurrentUpdate, "stale version must be rejected once the status differs")

	_, err = s.svc.SetProfileStatus(s.ctx, admin, current, domain.ProfileStatus("frozen"))
	s.ErrorIs(err, domain.ErrInvalidStatus)
}

func (s *ProfileServiceSuite) TestChangePassword() {
	loaded, err := s.svc.FindProfileByID(s.ctx, customer, 5)
	s.Require().NoError(err)

	_, err = s.svc.ChangePassword(s.ctx, customer, loaded, "falsch", "neues", "neues")
	s.ErrorIs(err, domain.ErrPasswordInvalid)

	updated, err := s.svc.ChangePassword(s.ctx, customer, loaded, "pass", "neues", "neues")
	s.Require().NoError(err)
	s.True(s.hasher.Check("neues", updated.PasswordHash))

	_, err = s.svc.ChangePassword(s.ctx, admin, loaded, "", "reset", "reset")
	s.ErrorIs(err, domain.ErrConcurrentUpdate)

	reset, err := s.svc.ChangePassword(s.ctx, admin, updated, "", "reset", "reset")
	s.Require().NoError(err)
	s.True(s.hasher.Check("reset", reset.PasswordHash))
}

func (s *ProfileServiceSuite) TestEventsAreEnqueued() {
	loaded, err := s.svc.FindProfileByID(s.ctx, admin, 4)
	s.Require().NoError(err)
	updated, err := s.svc.SetProfileStatus(s.ctx, admin, loaded, domain.ProfileStatusDeactivated)
	s.Require().NoError(err)
	s.Require().NoError(s.svc.DeleteProfile(s.ctx, admin, updated))

	types := make([]string, 0)
	for _, msg := range s.outbox.AllPending() {
		types = append(types, msg.EventType)
	}
	s.Equal("profile.status_changed,profile.deleted", strings.Join(types, ","))

	stale, err := s.svc.FindProfileByID(s.ctx, admin, 5)
	s.Require().NoError(err)
	stale.Version++
	_, err = s.svc.SetProfileStatus(s.ctx, admin, stale, domain.ProfileStatusDeactivated)
	s.ErrorIs(err, domain.ErrConcurrentUpdate)
	s.Len(s.outbox.AllPending(), 2, "rejected changes publish nothing")
}
