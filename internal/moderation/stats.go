package moderation

import (
	"math"

	"github.com/Araz9999/naxtap-moderation/internal/models"
)

// recomputeStatsLocked rebuilds the derived statistics from scratch. Called
// under the engine mutex after every report or registry mutation. Malformed
// timestamp pairs (updated before created) are skipped rather than failing
// the whole recomputation.
func (e *Engine) recomputeStatsLocked() {
	stats := models.ModerationStats{
		ReportsByType:     make(map[models.ReportType]int, len(models.ReportTypes)),
		ReportsByPriority: make(map[models.ReportPriority]int, len(models.ReportPriorities)),
		ModeratorStats:    make(map[string]models.ModeratorPerformance, len(e.moderators)),
	}
	for _, t := range models.ReportTypes {
		stats.ReportsByType[t] = 0
	}
	for _, p := range models.ReportPriorities {
		stats.ReportsByPriority[p] = 0
	}

	var resolvedHours float64
	var resolvedCount int
	for _, r := range e.reports {
		stats.TotalReports++
		switch r.Status {
		case models.ReportStatusPending:
			stats.PendingReports++
		case models.ReportStatusInReview:
			stats.InReviewReports++
		case models.ReportStatusResolved:
			stats.ResolvedReports++
		case models.ReportStatusDismissed:
			stats.DismissedReports++
		}
		stats.ReportsByType[r.Type]++
		stats.ReportsByPriority[r.Priority]++

		if r.Status == models.ReportStatusResolved {
			if h, ok := resolutionHours(r); ok {
				resolvedHours += h
				resolvedCount++
			}
		}
	}
	stats.AverageResolutionTime = round1(resolvedHours / float64(max(resolvedCount, 1)))

	for id, m := range e.moderators {
		perf := models.ModeratorPerformance{}
		var assigned, resolved int
		var hours float64
		var counted int
		for _, r := range e.reports {
			if r.AssignedModeratorID == nil || *r.AssignedModeratorID != m.ID {
				continue
			}
			assigned++
			if r.Status != models.ReportStatusResolved {
				continue
			}
			resolved++
			if h, ok := resolutionHours(r); ok {
				hours += h
				counted++
			}
		}
		perf.HandledReports = resolved
		if assigned > 0 {
			perf.ResolutionRate = round1(float64(resolved) / float64(assigned) * 100)
		}
		perf.AverageResponseTime = round1(hours / float64(max(counted, 1)))
		stats.ModeratorStats[id.String()] = perf

		// The registry entry mirrors its performance figures so registry
		// reads show current workload; they reach the database with the
		// next write of that entry.
		m.HandledReports = perf.HandledReports
		m.AverageResponseTime = perf.AverageResponseTime
	}

	e.stats = stats
}

func resolutionHours(r *models.Report) (float64, bool) {
	d := r.UpdatedAt.Sub(r.CreatedAt)
	if d < 0 {
		return 0, false
	}
	h := d.Hours()
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, false
	}
	return h, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
