package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/domain/repository"
	"medical-appointment-assistant/internal/scheduling"

	"github.com/sirupsen/logrus"
)

const completionSweepTimeout = 30 * time.Second

// CompletionService periodically marks scheduled appointments whose slot has
// passed as completed. Call Stop during graceful shutdown.
type CompletionService struct {
	appointments repository.AppointmentRepository
	audit        AuditService
	clock        scheduling.Clock
	log          *logrus.Logger
	interval     time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
	started  atomic.Bool
	stopped  atomic.Bool
}

func NewCompletionService(
	appointments repository.AppointmentRepository,
	audit AuditService,
	clock scheduling.Clock,
	log *logrus.Logger,
	interval time.Duration,
) *CompletionService {
	return &CompletionService{
		appointments: appointments,
		audit:        audit,
		clock:        clock,
		log:          log,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start runs one sweep immediately and then one per interval.
func (s *CompletionService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go s.loop()
}

// Stop is safe to call multiple times.
func (s *CompletionService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("CompletionService stopped")
	}
}

// Sweep completes every scheduled appointment that started before now.
func (s *CompletionService) Sweep(ctx context.Context) (int64, error) {
	now := s.clock.Now()
	date := now.Format(scheduling.DateLayout)
	clock := now.Format(scheduling.TimeLayout)

	n, err := s.appointments.CompletePast(ctx, date, clock)
	if err != nil {
		s.log.Warnf("Failed to complete past appointments: %+v", err)
		return 0, err
	}

	if n > 0 {
		s.log.Infof("Marked %d past appointments as completed", n)
		if s.audit != nil {
			_ = s.audit.RecordSystem(ctx, entity.AuditActionAppointmentSweep, entity.JSON{
				"before":    date + " " + clock,
				"completed": n,
			})
		}
	}
	return n, nil
}

func (s *CompletionService) loop() {
	defer s.wg.Done()

	s.sweepWithTimeout()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Completion sweep goroutine stopping")
			return
		case <-ticker.C:
			s.sweepWithTimeout()
		}
	}
}

func (s *CompletionService) sweepWithTimeout() {
	ctx, cancel := context.WithTimeout(context.Background(), completionSweepTimeout)
	defer cancel()
	_, _ = s.Sweep(ctx)
}
