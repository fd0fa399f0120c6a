package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"StageSentinel/internal/notifier"
	"StageSentinel/internal/recorder"
	"StageSentinel/internal/screener"
	"StageSentinel/internal/service"
)

// Scheduler runs the periodic watchlist scans and screener sweeps.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *service.Analyzer
	Screener  *screener.Screener
	Notifier  *notifier.TelegramNotifier // nil disables alerts
	Recorder  recorder.Recorder
	Watchlist []string
	Universe  []string
	Ctx       context.Context

	mu         sync.Mutex
	lastPassed map[string]bool // alert only on transition into Stage 2
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, analyzer *service.Analyzer, scr *screener.Screener, tn *notifier.TelegramNotifier, rec recorder.Recorder, watchlist, universe []string) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Analyzer:   analyzer,
		Screener:   scr,
		Notifier:   tn,
		Recorder:   rec,
		Watchlist:  watchlist,
		Universe:   universe,
		Ctx:        ctx,
		lastPassed: make(map[string]bool),
	}
}

// RegisterAll registers the watchlist scan and, when configured, the
// screener sweep.
func (s *Scheduler) RegisterAll(scanCron, screenerCron string) error {
	if len(s.Watchlist) > 0 {
		if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
			return fmt.Errorf("register scan task: %w", err)
		}
	}
	if screenerCron != "" && len(s.Universe) > 0 {
		if _, err := s.Cron.AddFunc(screenerCron, s.screenTask); err != nil {
			return fmt.Errorf("register screener task: %w", err)
		}
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

// RunScanNow executes the watchlist scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Printf("[INFO] scanning watchlist (%d tickers)", len(s.Watchlist))
	for _, ticker := range s.Watchlist {
		if s.Ctx.Err() != nil {
			return
		}
		stage, err := s.Analyzer.AnalyzeStage(s.Ctx, ticker)
		if err != nil {
			log.Printf("[ERROR] stage analysis %s: %v", ticker, err)
			continue
		}
		volume, err := s.Analyzer.AnalyzeVolume(s.Ctx, ticker)
		if err != nil {
			log.Printf("[ERROR] volume analysis %s: %v", ticker, err)
			continue
		}
		s.maybeAlert(ticker, stage, volume)
	}
}

// maybeAlert sends a Telegram alert when a ticker newly enters Stage 2.
func (s *Scheduler) maybeAlert(ticker string, stage *service.StageReport, volume *service.AccumulationReport) {
	s.mu.Lock()
	wasPassed := s.lastPassed[ticker]
	s.lastPassed[ticker] = stage.Verdict.Passed
	s.mu.Unlock()

	if s.Notifier == nil || wasPassed || !stage.Verdict.Passed {
		return
	}
	msg := notifier.FormatStageReport(stage) + "\n" + notifier.FormatAccumulationReport(volume)
	if err := s.Notifier.SendWithRetry(s.Ctx, msg, 3); err != nil {
		log.Printf("[ERROR] send stage alert for %s: %v", ticker, err)
	}
}

func (s *Scheduler) screenTask() {
	log.Printf("[INFO] running high-volume screen (%d tickers)", len(s.Universe))
	matches, err := s.Screener.HighVolumeTickers(s.Ctx, s.Universe)
	if err != nil {
		log.Printf("[ERROR] screener: %v", err)
		return
	}
	if err := s.Recorder.RecordScreen(&recorder.ScreenEvent{Universe: len(s.Universe), Matches: matches}); err != nil {
		log.Printf("[WARN] record screen event: %v", err)
	}
	if s.Notifier != nil && len(matches) > 0 {
		if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatScreenReport(len(s.Universe), matches), 3); err != nil {
			log.Printf("[ERROR] send screen report: %v", err)
		}
	}
}

// HandleCommand serves Telegram commands: /stage TICKER, /volume TICKER,
// /screen, /watchlist.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/stage":
		if len(fields) < 2 {
			return "Usage: /stage TICKER"
		}
		report, err := s.Analyzer.AnalyzeStage(s.Ctx, strings.ToUpper(fields[1]))
		if err != nil {
			return fmt.Sprintf("Stage analysis failed: %v", err)
		}
		return notifier.FormatStageReport(report)
	case "/volume":
		if len(fields) < 2 {
			return "Usage: /volume TICKER"
		}
		report, err := s.Analyzer.AnalyzeVolume(s.Ctx, strings.ToUpper(fields[1]))
		if err != nil {
			return fmt.Sprintf("Volume analysis failed: %v", err)
		}
		return notifier.FormatAccumulationReport(report)
	case "/screen":
		go s.screenTask()
		return "Screen started; results will follow."
	case "/watchlist":
		if len(s.Watchlist) == 0 {
			return "Watchlist is empty."
		}
		return "Watchlist: " + strings.Join(s.Watchlist, ", ")
	default:
		return ""
	}
}
