package moderation

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// Engine owns the report, support-ticket and moderator collections and the
// rules that govern their lifecycles. All mutations run under one mutex as
// validate -> persist -> commit -> recompute stats; a failed validation or
// store write leaves the in-memory state untouched. Reads return copies.
type Engine struct {
	mu    sync.Mutex
	store Store

	reports    map[uuid.UUID]*models.Report
	tickets    map[uuid.UUID]*models.SupportTicket
	moderators map[uuid.UUID]*models.Moderator
	stats      models.ModerationStats

	now func() time.Time
}

// New loads the three collections from the store and computes the initial
// statistics snapshot.
func New(store Store) (*Engine, error) {
	e := &Engine{
		store:      store,
		reports:    make(map[uuid.UUID]*models.Report),
		tickets:    make(map[uuid.UUID]*models.SupportTicket),
		moderators: make(map[uuid.UUID]*models.Moderator),
		now:        time.Now,
	}

	reports, err := store.LoadReports()
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	for i := range reports {
		r := reports[i]
		e.reports[r.ID] = &r
	}

	tickets, err := store.LoadTickets()
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	for i := range tickets {
		t := tickets[i]
		e.tickets[t.ID] = &t
	}

	moderators, err := store.LoadModerators()
	if err != nil {
		return nil, fmt.Errorf("load moderators: %w", err)
	}
	for i := range moderators {
		m := moderators[i]
		e.moderators[m.ID] = &m
	}

	e.recomputeStatsLocked()
	return e, nil
}

// Stats returns the current derived statistics snapshot.
func (e *Engine) Stats() models.ModerationStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyStats(e.stats)
}

// GetReport returns a copy of the report, or a NotFoundError.
func (e *Engine) GetReport(id uuid.UUID) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.reports[id]
	if !ok {
		return models.Report{}, &NotFoundError{Kind: "report", ID: id}
	}
	return *r, nil
}

// GetTicket returns a copy of the ticket, or a NotFoundError.
func (e *Engine) GetTicket(id uuid.UUID) (models.SupportTicket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.tickets[id]
	if !ok {
		return models.SupportTicket{}, &NotFoundError{Kind: "ticket", ID: id}
	}
	return copyTicket(t), nil
}

func copyTicket(t *models.SupportTicket) models.SupportTicket {
	out := *t
	out.Responses = make([]models.SupportResponse, len(t.Responses))
	copy(out.Responses, t.Responses)
	return out
}

func copyModerator(m *models.Moderator) models.Moderator {
	out := *m
	out.Permissions = make([]models.Capability, len(m.Permissions))
	copy(out.Permissions, m.Permissions)
	return out
}

func copyStats(s models.ModerationStats) models.ModerationStats {
	out := s
	out.ReportsByType = make(map[models.ReportType]int, len(s.ReportsByType))
	for k, v := range s.ReportsByType {
		out.ReportsByType[k] = v
	}
	out.ReportsByPriority = make(map[models.ReportPriority]int, len(s.ReportsByPriority))
	for k, v := range s.ReportsByPriority {
		out.ReportsByPriority[k] = v
	}
	out.ModeratorStats = make(map[string]models.ModeratorPerformance, len(s.ModeratorStats))
	for k, v := range s.ModeratorStats {
		out.ModeratorStats[k] = v
	}
	return out
}

func sortReportsNewestFirst(rs []models.Report) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID.String() < rs[j].ID.String()
		}
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}

func sortTicketsNewestFirst(ts []models.SupportTicket) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].CreatedAt.Equal(ts[j].CreatedAt) {
			return ts[i].ID.String() < ts[j].ID.String()
		}
		return ts[i].CreatedAt.After(ts[j].CreatedAt)
	})
}
