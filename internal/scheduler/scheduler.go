package scheduler

import (
	"log/slog"

	"cropwatch/internal/services"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the monitoring sweep on a cron expression.
type Scheduler struct {
	cron    *cron.Cron
	monitor *services.MonitorService
	spec    string
}

func NewScheduler(monitor *services.MonitorService, spec string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		monitor: monitor,
		spec:    spec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("monitoring scheduler started", "cron", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	slog.Info("stopping monitoring scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runSweep() {
	result := s.monitor.MonitorAllFarms()
	slog.Info("scheduled monitoring sweep",
		"farms_checked", result.FarmsChecked,
		"alerts_generated", result.AlertsGenerated,
		"errors", len(result.Errors))
}
