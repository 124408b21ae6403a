package persistence

import (
	"context"
	"github.com/roylee0704/gron"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/services"
	"urlchecker/internal/structures"
)

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	service services.ScanOrchestratorInterface
	writer  *HistoryWriter
	cron    *gron.Cron
}

// Init starts the background writer and a periodic checkpoint that retries
// snapshots left pending by failed writes.
func (s *Scheduler) Init() {
	s.writer.Start()

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		if !s.writer.Dirty() {
			return
		}
		s.logger.Infof(providers.TypeStorage, "Retrying pending history write...")
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.writer.Flush(ctx); err == nil {
			s.logger.Infof(providers.TypeStorage, "Pending history persisted")
		}
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	s.writer.Stop()
}

func (s *Scheduler) Restore() error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	return s.service.LoadHistory(ctx)
}

func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeStorage, "Persisting history...")
	s.service.SaveHistory()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.writer.Flush(ctx); err != nil {
		s.logger.Errorf(providers.TypeStorage, "Error while persisting history: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.ScanOrchestratorInterface, writer *HistoryWriter) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		service: service,
		writer:  writer,
	}
}
