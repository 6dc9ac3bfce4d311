package moderation

import (
	"errors"
	"testing"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for engine tests. failNext makes the next
// write fail so the no-partial-mutation guarantee can be checked.
type memStore struct {
	reports    map[uuid.UUID]models.Report
	tickets    map[uuid.UUID]models.SupportTicket
	moderators map[uuid.UUID]models.Moderator
	failNext   bool
}

var errStoreDown = errors.New("store unavailable")

func newMemStore() *memStore {
	return &memStore{
		reports:    make(map[uuid.UUID]models.Report),
		tickets:    make(map[uuid.UUID]models.SupportTicket),
		moderators: make(map[uuid.UUID]models.Moderator),
	}
}

func (s *memStore) LoadReports() ([]models.Report, error) {
	out := make([]models.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	return out, nil
}

func (s *memStore) LoadTickets() ([]models.SupportTicket, error) {
	out := make([]models.SupportTicket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	return out, nil
}

func (s *memStore) LoadModerators() ([]models.Moderator, error) {
	out := make([]models.Moderator, 0, len(s.moderators))
	for _, m := range s.moderators {
		out = append(out, m)
	}
	return out, nil
}

func (s *memStore) fail() bool {
	if s.failNext {
		s.failNext = false
		return true
	}
	return false
}

func (s *memStore) SaveReport(r *models.Report) error {
	if s.fail() {
		return errStoreDown
	}
	s.reports[r.ID] = *r
	return nil
}

func (s *memStore) SaveTicket(t *models.SupportTicket) error {
	if s.fail() {
		return errStoreDown
	}
	s.tickets[t.ID] = *t
	return nil
}

func (s *memStore) SaveModerator(m *models.Moderator) error {
	if s.fail() {
		return errStoreDown
	}
	s.moderators[m.ID] = *m
	return nil
}

func (s *memStore) DeleteModerator(id uuid.UUID) error {
	if s.fail() {
		return errStoreDown
	}
	delete(s.moderators, id)
	return nil
}

// fakeClock lets tests control the engine's notion of now.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T) (*Engine, *memStore, *fakeClock) {
	t.Helper()
	store := newMemStore()
	engine, err := New(store)
	require.NoError(t, err)
	clock := newFakeClock()
	engine.now = clock.Now
	return engine, store, clock
}

// seedModerator registers a moderator directly in the engine and store,
// bypassing the registry ops under test.
func seedModerator(e *Engine, store *memStore, role models.Role, perms ...models.Capability) uuid.UUID {
	id := uuid.New()
	mod := models.Moderator{
		ID:           id,
		Role:         role,
		AssignedDate: e.now(),
		Permissions:  perms,
		IsActive:     true,
		CreatedAt:    e.now(),
		UpdatedAt:    e.now(),
	}
	store.moderators[id] = mod
	e.moderators[id] = &mod
	return id
}

func validReportInput(reporterID uuid.UUID) CreateReportInput {
	listing := "listing-1234"
	return CreateReportInput{
		ReporterID:        reporterID,
		ReportedListingID: listing,
		Type:              models.ReportTypeSpam,
		Reason:            "This listing is obvious spam content",
	}
}

func validTicketInput(userID uuid.UUID) CreateTicketInput {
	return CreateTicketInput{
		UserID:   userID,
		Subject:  "Cannot top up wallet",
		Message:  "Payment fails every time with an unknown error",
		Category: models.TicketCategoryBilling,
	}
}

func TestNewLoadsCollections(t *testing.T) {
	store := newMemStore()
	modID := uuid.New()
	store.moderators[modID] = models.Moderator{ID: modID, Role: models.RoleAdmin, IsActive: true}

	reportID := uuid.New()
	store.reports[reportID] = models.Report{
		ID:         reportID,
		ReporterID: uuid.New(),
		Type:       models.ReportTypeFraud,
		Priority:   models.PriorityHigh,
		Status:     models.ReportStatusPending,
	}

	engine, err := New(store)
	require.NoError(t, err)

	require.True(t, engine.HasPermission(modID, models.CapManageReports))
	stats := engine.Stats()
	require.Equal(t, 1, stats.TotalReports)
	require.Equal(t, 1, stats.PendingReports)

	_, err = engine.GetReport(reportID)
	require.NoError(t, err)
}

func TestFailedStoreWriteLeavesStateUntouched(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	reporter := uuid.New()

	store.failNext = true
	_, err := engine.CreateReport(validReportInput(reporter))
	require.ErrorIs(t, err, errStoreDown)
	require.Equal(t, 0, engine.Stats().TotalReports)

	report, err := engine.CreateReport(validReportInput(reporter))
	require.NoError(t, err)

	modID := seedModerator(engine, store, models.RoleAdmin)
	store.failNext = true
	_, err = engine.ResolveReport(report.ID, "Confirmed and handled by staff", modID)
	require.ErrorIs(t, err, errStoreDown)

	got, err := engine.GetReport(report.ID)
	require.NoError(t, err)
	require.Equal(t, models.ReportStatusPending, got.Status)
	require.Empty(t, got.Resolution)
}
