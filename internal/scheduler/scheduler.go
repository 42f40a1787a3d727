package scheduler

import (
	"context"
	"fmt"
	"log"

	"RiskSentinel/internal/collector"
	"RiskSentinel/internal/model"
	"RiskSentinel/internal/notifier"
	"RiskSentinel/internal/recorder"
	"RiskSentinel/internal/strategy"
	"RiskSentinel/internal/tracker"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron           *cron.Cron
	Collector      *collector.Collector
	Tracker        *tracker.Manager
	Notifier       *notifier.TelegramNotifier
	Recorder       recorder.Recorder
	SpikeThreshold float64
	Ctx            context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tm *tracker.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder, spikeThreshold float64) *Scheduler {
	return &Scheduler{
		Cron:           cron.New(cron.WithSeconds()),
		Collector:      col,
		Tracker:        tm,
		Notifier:       tn,
		Recorder:       rec,
		SpikeThreshold: spikeThreshold,
		Ctx:            ctx,
	}
}

// RegisterAll registers the daily analysis and weekly report tasks.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow executes the daily task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.dailyTask()
}

// dailyTask runs the analysis, updates the rolling tracker, records the
// snapshot, and alerts on volatility spikes.
func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily analysis")
	report, err := s.Collector.Collect()
	if err != nil {
		log.Printf("[ERROR] daily collect: %v", err)
		s.trySend(fmt.Sprintf("❌ Daily analysis failed: %v", err))
		return
	}

	assessment := strategy.Assess(report)

	elevated := assessment.Level == model.RiskElevated || assessment.Level == model.RiskExtreme
	spike := s.Tracker.Record(report.Summary.Volatility, elevated)

	if err := s.Recorder.RecordReport(&recorder.ReportSnapshot{
		Report:     report,
		Assessment: assessment,
	}); err != nil {
		log.Printf("[ERROR] record report: %v", err)
	}

	if spike {
		state := s.Tracker.GetState()
		rollingMean := 0.0
		if n := len(state.RecentVolatilities); n > 0 {
			sum := 0.0
			for _, v := range state.RecentVolatilities {
				sum += v
			}
			rollingMean = sum / float64(n)
		}
		s.trySend(notifier.FormatSpikeAlert(report.Symbol, report.Summary.Volatility, rollingMean, s.SpikeThreshold))
		if err := s.Recorder.RecordAlert(&recorder.AlertEvent{
			Symbol:       report.Symbol,
			Volatility:   report.Summary.Volatility,
			RollingMean:  rollingMean,
			Threshold:    s.SpikeThreshold,
			ElevatedDays: state.ConsecutiveElevatedDays,
		}); err != nil {
			log.Printf("[ERROR] record alert: %v", err)
		}
	}
}

// weeklyTask sends the full report with period comparison and risk level.
func (s *Scheduler) weeklyTask() {
	log.Println("[INFO] running weekly report")
	report, err := s.Collector.Collect()
	if err != nil {
		log.Printf("[ERROR] weekly collect: %v", err)
		s.trySend(fmt.Sprintf("❌ Weekly report failed: %v", err))
		return
	}

	assessment := strategy.Assess(report)
	msg := notifier.FormatReport(report, assessment)

	state := s.Tracker.GetState()
	msg += "\n" + notifier.FormatTrackerStatus(&state)

	s.trySend(msg)

	if err := s.Recorder.RecordReport(&recorder.ReportSnapshot{
		Report:     report,
		Assessment: assessment,
	}); err != nil {
		log.Printf("[ERROR] record report: %v", err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/report":
		s.weeklyTask()
		return ""
	case "/status":
		state := s.Tracker.GetState()
		return notifier.FormatTrackerStatus(&state)
	default:
		return "Available commands:\n• /report — full volatility report\n• /status — tracker status"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
