package jobs

import (
	"context"
	"log/slog"
	"time"

	"barbari/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DiscountExpiryJob deactivates discount codes whose end date has passed.
// Runs hourly; expiry correctness does not depend on it, since the validator
// checks end dates on every use.
type DiscountExpiryJob struct {
	discountRepo ports.DiscountRepository
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewDiscountExpiryJob creates a new job sweeping expired discount codes.
func NewDiscountExpiryJob(discountRepo ports.DiscountRepository, logger *slog.Logger) *DiscountExpiryJob {
	return &DiscountExpiryJob{
		discountRepo: discountRepo,
		cron:         cron.New(),
		logger:       logger.With("component", "discount_expiry_job"),
	}
}

// Start begins the discount expiry job to run at the top of every hour.
func (j *DiscountExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		deactivated, err := j.discountRepo.DeactivateExpired(ctx, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Discount expiry sweep failed", "error", err)
			return
		}

		if deactivated > 0 {
			j.logger.InfoContext(ctx, "Deactivated expired discount codes", "count", deactivated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Discount expiry job started (running hourly)")
	return nil
}

// Stop stops the discount expiry job.
func (j *DiscountExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Discount expiry job stopped")
}
