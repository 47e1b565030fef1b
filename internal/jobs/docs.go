// Package jobs provides scheduled background tasks for the moving service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping operations.
//
// # Available Jobs
//
// 1. DiscountExpiryJob - Runs hourly to deactivate discount codes whose end
// date has passed. The discount validator rejects expired codes on its own;
// the sweep keeps the table tidy so expired codes stop matching active-code
// queries.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(discountRepo, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
