package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"bells-pay/internal/adapters/persistence/repositories"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	// Purge expired refresh tokens daily at 02:00
	_, err := s.cron.AddFunc("0 2 * * *", s.cleanupExpiredTokens)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron scheduler stopped")
}

func (s *CronService) cleanupExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Failed to clean up expired refresh tokens: %v", err)
		return
	}
	log.Println("🧹 Expired refresh tokens removed")
}
