package moderation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
)

// CreateReportInput is the report intake payload.
type CreateReportInput struct {
	ReporterID        uuid.UUID
	ReportedUserID    *uuid.UUID
	ReportedListingID string
	ReportedStoreID   string
	Type              models.ReportType
	Reason            string
	Description       string
	Priority          models.ReportPriority // empty defaults to medium
}

// CreateReport validates the payload, stores a fresh pending report and
// recomputes statistics.
func (e *Engine) CreateReport(in CreateReportInput) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if in.ReporterID == uuid.Nil {
		return models.Report{}, validationf("Reporter is required")
	}
	if in.ReportedUserID == nil && in.ReportedListingID == "" && in.ReportedStoreID == "" {
		return models.Report{}, validationf("A report must target a user, listing or store")
	}
	if !in.Type.Valid() {
		return models.Report{}, validationf("Invalid report type %q", in.Type)
	}
	// Limits count characters, not bytes; most input here is Azerbaijani.
	reason := strings.TrimSpace(in.Reason)
	if n := utf8.RuneCountInString(reason); n < 10 || n > 1000 {
		return models.Report{}, validationf("Reason must be between 10 and 1000 characters")
	}
	description := strings.TrimSpace(in.Description)
	if utf8.RuneCountInString(description) > 2000 {
		return models.Report{}, validationf("Description must not exceed 2000 characters")
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Report{}, validationf("Invalid priority %q", in.Priority)
	}

	now := e.now()
	report := models.Report{
		ID:                uuid.New(),
		ReporterID:        in.ReporterID,
		ReportedUserID:    in.ReportedUserID,
		ReportedListingID: in.ReportedListingID,
		ReportedStoreID:   in.ReportedStoreID,
		Type:              in.Type,
		Reason:            reason,
		Description:       description,
		Priority:          priority,
		Status:            models.ReportStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := e.store.SaveReport(&report); err != nil {
		return models.Report{}, err
	}
	e.reports[report.ID] = &report
	e.recomputeStatsLocked()
	return report, nil
}

// UpdateReportStatus is the generic status entry point. It does not enforce
// the transition graph, but moving to resolved or dismissed still requires a
// resolution to already be present; use ResolveReport or DismissReport to set
// one.
func (e *Engine) UpdateReportStatus(reportID uuid.UUID, status models.ReportStatus, moderatorID *uuid.UUID, notes string) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.reports[reportID]
	if !ok {
		return models.Report{}, &NotFoundError{Kind: "report", ID: reportID}
	}
	if !status.Valid() {
		return models.Report{}, validationf("Invalid report status %q", status)
	}
	if (status == models.ReportStatusResolved || status == models.ReportStatusDismissed) && r.Resolution == "" {
		return models.Report{}, validationf("Resolution is required to mark a report %s", status)
	}
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > 1000 {
		return models.Report{}, validationf("Moderator notes must not exceed 1000 characters")
	}
	if moderatorID != nil {
		if _, ok := e.moderators[*moderatorID]; !ok {
			return models.Report{}, &NotFoundError{Kind: "moderator", ID: *moderatorID}
		}
		if err := e.requirePermissionLocked(*moderatorID, models.CapManageReports); err != nil {
			return models.Report{}, err
		}
	}

	updated := *r
	updated.Status = status
	if moderatorID != nil {
		updated.AssignedModeratorID = moderatorID
	}
	if notes != "" {
		updated.ModeratorNotes = notes
	}
	updated.UpdatedAt = e.now()

	if err := e.store.SaveReport(&updated); err != nil {
		return models.Report{}, err
	}
	e.reports[reportID] = &updated
	e.recomputeStatsLocked()
	return updated, nil
}

// AssignReport puts a report into review under the given moderator. This is a
// dispatch action, not a resolution action, so no capability check applies
// here. Assigning the current assignee of an in-review report is a no-op.
func (e *Engine) AssignReport(reportID, moderatorID uuid.UUID) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.reports[reportID]
	if !ok {
		return models.Report{}, &NotFoundError{Kind: "report", ID: reportID}
	}
	if _, ok := e.moderators[moderatorID]; !ok {
		return models.Report{}, &NotFoundError{Kind: "moderator", ID: moderatorID}
	}
	if r.Status == models.ReportStatusInReview && r.AssignedModeratorID != nil && *r.AssignedModeratorID == moderatorID {
		return *r, nil
	}

	updated := *r
	updated.AssignedModeratorID = &moderatorID
	updated.Status = models.ReportStatusInReview
	updated.UpdatedAt = e.now()

	if err := e.store.SaveReport(&updated); err != nil {
		return models.Report{}, err
	}
	e.reports[reportID] = &updated
	e.recomputeStatsLocked()
	return updated, nil
}

// ResolveReport closes a report as resolved with the given resolution text.
func (e *Engine) ResolveReport(reportID uuid.UUID, resolution string, moderatorID uuid.UUID) (models.Report, error) {
	return e.closeReport(reportID, models.ReportStatusResolved, resolution, moderatorID)
}

// DismissReport closes a report as dismissed; the dismissal reason is stored
// as the resolution.
func (e *Engine) DismissReport(reportID uuid.UUID, reason string, moderatorID uuid.UUID) (models.Report, error) {
	return e.closeReport(reportID, models.ReportStatusDismissed, reason, moderatorID)
}

func (e *Engine) closeReport(reportID uuid.UUID, status models.ReportStatus, resolution string, moderatorID uuid.UUID) (models.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.reports[reportID]
	if !ok {
		return models.Report{}, &NotFoundError{Kind: "report", ID: reportID}
	}
	if _, ok := e.moderators[moderatorID]; !ok {
		return models.Report{}, &NotFoundError{Kind: "moderator", ID: moderatorID}
	}
	resolution = strings.TrimSpace(resolution)
	if n := utf8.RuneCountInString(resolution); n < 10 || n > 1000 {
		return models.Report{}, validationf("Resolution is required and must be between 10 and 1000 characters")
	}
	if err := e.requirePermissionLocked(moderatorID, models.CapManageReports); err != nil {
		return models.Report{}, err
	}

	updated := *r
	updated.Status = status
	updated.Resolution = resolution
	updated.AssignedModeratorID = &moderatorID
	updated.UpdatedAt = e.now()

	if err := e.store.SaveReport(&updated); err != nil {
		return models.Report{}, err
	}
	e.reports[reportID] = &updated
	e.recomputeStatsLocked()
	return updated, nil
}

// EscalateStaleReports bumps the priority of pending reports older than
// maxAge one level and returns how many were escalated. Urgent reports are
// left alone.
func (e *Engine) EscalateStaleReports(maxAge time.Duration) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cutoff := e.now().Add(-maxAge)
	escalated := 0
	for id, r := range e.reports {
		if r.Status != models.ReportStatusPending || r.Priority == models.PriorityUrgent {
			continue
		}
		if r.CreatedAt.After(cutoff) {
			continue
		}
		updated := *r
		updated.Priority = nextPriority(r.Priority)
		updated.UpdatedAt = e.now()
		if err := e.store.SaveReport(&updated); err != nil {
			return escalated, err
		}
		e.reports[id] = &updated
		escalated++
	}
	if escalated > 0 {
		e.recomputeStatsLocked()
	}
	return escalated, nil
}

func nextPriority(p models.ReportPriority) models.ReportPriority {
	switch p {
	case models.PriorityLow:
		return models.PriorityMedium
	case models.PriorityMedium:
		return models.PriorityHigh
	default:
		return models.PriorityUrgent
	}
}

// ReportsByStatus returns copies of all reports in the given status, newest
// first.
func (e *Engine) ReportsByStatus(status models.ReportStatus) []models.Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.Report
	for _, r := range e.reports {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	sortReportsNewestFirst(out)
	return out
}

// ReportsByModerator returns copies of all reports assigned to the moderator,
// newest first.
func (e *Engine) ReportsByModerator(moderatorID uuid.UUID) []models.Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []models.Report
	for _, r := range e.reports {
		if r.AssignedModeratorID != nil && *r.AssignedModeratorID == moderatorID {
			out = append(out, *r)
		}
	}
	sortReportsNewestFirst(out)
	return out
}

// UserModerationHistory collects the reports a user filed and the reports
// filed against them.
type UserModerationHistory struct {
	Submitted []models.Report `json:"submitted"`
	Against   []models.Report `json:"against"`
}

func (e *Engine) GetUserModerationHistory(userID uuid.UUID) UserModerationHistory {
	e.mu.Lock()
	defer e.mu.Unlock()
	var h UserModerationHistory
	for _, r := range e.reports {
		if r.ReporterID == userID {
			h.Submitted = append(h.Submitted, *r)
		}
		if r.ReportedUserID != nil && *r.ReportedUserID == userID {
			h.Against = append(h.Against, *r)
		}
	}
	sortReportsNewestFirst(h.Submitted)
	sortReportsNewestFirst(h.Against)
	return h
}
