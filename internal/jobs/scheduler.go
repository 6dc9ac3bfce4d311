package jobs

import (
	"log/slog"
	"time"

	"github.com/Araz9999/naxtap-moderation/internal/config"
	"github.com/Araz9999/naxtap-moderation/internal/models"
	"github.com/Araz9999/naxtap-moderation/internal/moderation"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler runs the background maintenance jobs: hourly escalation of stale
// pending reports and nightly system-log retention cleanup.
type Scheduler struct {
	cron *cron.Cron
}

func Start(engine *moderation.Engine, db *gorm.DB, cfg *config.Config) *Scheduler {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		n, err := engine.EscalateStaleReports(cfg.ReportEscalationAfter)
		if err != nil {
			slog.Error("report escalation failed", "error", err)
			return
		}
		if n > 0 {
			slog.Info("escalated stale reports", "count", n)
		}
	})

	// 30-day retention on system_logs.
	c.AddFunc("@daily", func() {
		cutoff := time.Now().AddDate(0, 0, -30)
		result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
		if result.Error != nil {
			slog.Error("log cleanup failed", "error", result.Error)
		} else if result.RowsAffected > 0 {
			slog.Info("log cleanup completed", "deleted", result.RowsAffected)
		}
	})

	c.Start()
	return &Scheduler{cron: c}
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
