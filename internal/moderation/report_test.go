package moderation

import (
	"strings"
	"testing"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	engine, _, clock := newTestEngine(t)
	reporter := uuid.New()

	report, err := engine.CreateReport(validReportInput(reporter))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, reporter, report.ReporterID)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Equal(t, models.PriorityMedium, report.Priority, "priority defaults to medium")
	assert.Equal(t, clock.Now(), report.CreatedAt)
	assert.Equal(t, report.CreatedAt, report.UpdatedAt)

	stats := engine.Stats()
	assert.Equal(t, 1, stats.TotalReports)
	assert.Equal(t, 1, stats.PendingReports)
	assert.Equal(t, 1, stats.ReportsByType[models.ReportTypeSpam])
}

func TestCreateReportValidation(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	reporter := uuid.New()

	tests := []struct {
		name    string
		mutate  func(*CreateReportInput)
		wantMsg string
	}{
		{
			name:    "missing reporter",
			mutate:  func(in *CreateReportInput) { in.ReporterID = uuid.Nil },
			wantMsg: "Reporter is required",
		},
		{
			name: "missing target",
			mutate: func(in *CreateReportInput) {
				in.ReportedUserID = nil
				in.ReportedListingID = ""
				in.ReportedStoreID = ""
			},
			wantMsg: "must target",
		},
		{
			name:    "invalid type",
			mutate:  func(in *CreateReportInput) { in.Type = "nonsense" },
			wantMsg: "Invalid report type",
		},
		{
			name:    "reason too short",
			mutate:  func(in *CreateReportInput) { in.Reason = "too short" },
			wantMsg: "Reason must be between 10 and 1000",
		},
		{
			name:    "reason too long",
			mutate:  func(in *CreateReportInput) { in.Reason = strings.Repeat("a", 1001) },
			wantMsg: "Reason must be between 10 and 1000",
		},
		{
			// 6 characters, 12 bytes; the limit counts characters.
			name:    "multibyte reason too short",
			mutate:  func(in *CreateReportInput) { in.Reason = strings.Repeat("ə", 6) },
			wantMsg: "Reason must be between 10 and 1000",
		},
		{
			name:    "description too long",
			mutate:  func(in *CreateReportInput) { in.Description = strings.Repeat("a", 2001) },
			wantMsg: "Description must not exceed 2000",
		},
		{
			name:    "invalid priority",
			mutate:  func(in *CreateReportInput) { in.Priority = "critical" },
			wantMsg: "Invalid priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validReportInput(reporter)
			tt.mutate(&in)
			_, err := engine.CreateReport(in)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	assert.Equal(t, 0, engine.Stats().TotalReports, "failed creates must not mutate state")
}

func TestCreateReportLengthLimitsCountCharacters(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	// 10 characters of reason and 2000 of description sit exactly on the
	// limits, even though each character is two bytes in UTF-8.
	in := validReportInput(uuid.New())
	in.Reason = strings.Repeat("ə", 10)
	in.Description = strings.Repeat("ş", 2000)
	report, err := engine.CreateReport(in)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ə", 10), report.Reason)

	in = validReportInput(uuid.New())
	in.Description = strings.Repeat("ş", 2001)
	_, err = engine.CreateReport(in)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "Description must not exceed 2000")
}

func TestUpdateReportStatusRequiresResolution(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	for _, status := range []models.ReportStatus{models.ReportStatusResolved, models.ReportStatusDismissed} {
		_, err = engine.UpdateReportStatus(report.ID, status, nil, "")
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, err.Error(), "Resolution")

		got, err := engine.GetReport(report.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReportStatusPending, got.Status, "failed update must not change status")
	}
}

func TestUpdateReportStatus(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleModerator, models.CapManageReports)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	clock.Advance(time.Hour)
	updated, err := engine.UpdateReportStatus(report.ID, models.ReportStatusInReview, &mod, "taking a look")
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusInReview, updated.Status)
	assert.Equal(t, &mod, updated.AssignedModeratorID)
	assert.Equal(t, "taking a look", updated.ModeratorNotes)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateReportStatusErrors(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	noPerms := seedModerator(engine, store, models.RoleModerator, models.CapManageTickets)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	_, err = engine.UpdateReportStatus(uuid.New(), models.ReportStatusInReview, nil, "")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = engine.UpdateReportStatus(report.ID, "archived", nil, "")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	unknown := uuid.New()
	_, err = engine.UpdateReportStatus(report.ID, models.ReportStatusInReview, &unknown, "")
	require.ErrorAs(t, err, &notFound)

	_, err = engine.UpdateReportStatus(report.ID, models.ReportStatusInReview, &noPerms, "")
	var denied *PermissionDeniedError
	require.ErrorAs(t, err, &denied)

	_, err = engine.UpdateReportStatus(report.ID, models.ReportStatusInReview, nil, strings.Repeat("n", 1001))
	require.ErrorAs(t, err, &validation)
}

func TestAssignReport(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	// Assignment is dispatch: the assignee needs no capability.
	mod := seedModerator(engine, store, models.RoleModerator, models.CapManageTickets)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	clock.Advance(time.Minute)
	assigned, err := engine.AssignReport(report.ID, mod)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusInReview, assigned.Status)
	require.NotNil(t, assigned.AssignedModeratorID)
	assert.Equal(t, mod, *assigned.AssignedModeratorID)

	// Re-assigning the same moderator is a no-op.
	clock.Advance(time.Minute)
	again, err := engine.AssignReport(report.ID, mod)
	require.NoError(t, err)
	assert.Equal(t, assigned.UpdatedAt, again.UpdatedAt)

	_, err = engine.AssignReport(report.ID, uuid.New())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "moderator", notFound.Kind)
}

func TestResolveReport(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleModerator, models.CapManageReports)

	in := validReportInput(uuid.New())
	in.Type = models.ReportTypeFraud
	in.Priority = models.PriorityHigh
	report, err := engine.CreateReport(in)
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	resolved, err := engine.ResolveReport(report.ID, "Issue confirmed and handled", mod)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, resolved.Status)
	assert.Equal(t, "Issue confirmed and handled", resolved.Resolution)
	require.NotNil(t, resolved.AssignedModeratorID)
	assert.Equal(t, mod, *resolved.AssignedModeratorID)
}

func TestResolveReportRequiresResolutionText(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleAdmin)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "short", strings.Repeat("a", 1001)} {
		_, err = engine.ResolveReport(report.ID, text, mod)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Contains(t, err.Error(), "Resolution")

		got, err := engine.GetReport(report.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReportStatusPending, got.Status)
	}
}

func TestResolveReportRequiresCapability(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	noPerms := seedModerator(engine, store, models.RoleModerator, models.CapManageTickets)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	_, err = engine.ResolveReport(report.ID, "Looks fine after manual review", noPerms)
	var denied *PermissionDeniedError
	require.ErrorAs(t, err, &denied)

	got, err := engine.GetReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, got.Status)
}

func TestDismissReportStoresReasonAsResolution(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleAdmin)

	report, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	dismissed, err := engine.DismissReport(report.ID, "No policy violation found", mod)
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusDismissed, dismissed.Status)
	assert.Equal(t, "No policy violation found", dismissed.Resolution)
}

func TestReportQueries(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleAdmin)
	reporter := uuid.New()
	target := uuid.New()

	first, err := engine.CreateReport(validReportInput(reporter))
	require.NoError(t, err)

	clock.Advance(time.Hour)
	in := validReportInput(reporter)
	in.ReportedListingID = ""
	in.ReportedUserID = &target
	in.Type = models.ReportTypeHarassment
	second, err := engine.CreateReport(in)
	require.NoError(t, err)

	_, err = engine.AssignReport(second.ID, mod)
	require.NoError(t, err)

	pending := engine.ReportsByStatus(models.ReportStatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	byMod := engine.ReportsByModerator(mod)
	require.Len(t, byMod, 1)
	assert.Equal(t, second.ID, byMod[0].ID)

	history := engine.GetUserModerationHistory(reporter)
	require.Len(t, history.Submitted, 2)
	assert.Equal(t, second.ID, history.Submitted[0].ID, "newest first")
	assert.Empty(t, history.Against)

	history = engine.GetUserModerationHistory(target)
	assert.Empty(t, history.Submitted)
	require.Len(t, history.Against, 1)
	assert.Equal(t, second.ID, history.Against[0].ID)
}

func TestEscalateStaleReports(t *testing.T) {
	engine, store, clock := newTestEngine(t)
	mod := seedModerator(engine, store, models.RoleAdmin)

	stale, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	urgent := validReportInput(uuid.New())
	urgent.Priority = models.PriorityUrgent
	urgentReport, err := engine.CreateReport(urgent)
	require.NoError(t, err)

	inReview, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)
	_, err = engine.AssignReport(inReview.ID, mod)
	require.NoError(t, err)

	clock.Advance(49 * time.Hour)
	fresh, err := engine.CreateReport(validReportInput(uuid.New()))
	require.NoError(t, err)

	n, err := engine.EscalateStaleReports(48 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, _ := engine.GetReport(stale.ID)
	assert.Equal(t, models.PriorityHigh, got.Priority, "medium escalates to high")

	got, _ = engine.GetReport(urgentReport.ID)
	assert.Equal(t, models.PriorityUrgent, got.Priority)

	got, _ = engine.GetReport(fresh.ID)
	assert.Equal(t, models.PriorityMedium, got.Priority)

	got, _ = engine.GetReport(inReview.ID)
	assert.Equal(t, models.PriorityMedium, got.Priority, "only pending reports escalate")
}
