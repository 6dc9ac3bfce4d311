package models

// ModerationStats is derived from the report and moderator collections after
// every report mutation. It has no persisted identity of its own.
type ModerationStats struct {
	TotalReports     int `json:"total_reports"`
	PendingReports   int `json:"pending_reports"`
	InReviewReports  int `json:"in_review_reports"`
	ResolvedReports  int `json:"resolved_reports"`
	DismissedReports int `json:"dismissed_reports"`

	ReportsByType     map[ReportType]int     `json:"reports_by_type"`
	ReportsByPriority map[ReportPriority]int `json:"reports_by_priority"`

	// Hours, rounded to one decimal.
	AverageResolutionTime float64 `json:"average_resolution_time"`

	ModeratorStats map[string]ModeratorPerformance `json:"moderator_stats"`
}

// ModeratorPerformance summarises one moderator's handled workload.
type ModeratorPerformance struct {
	HandledReports      int     `json:"handled_reports"`
	AverageResponseTime float64 `json:"average_response_time"`
	ResolutionRate      float64 `json:"resolution_rate"`
}
