package services

import (
	"barbari/internal/core/domain/model/driver"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ratingScale is the number of decimal places kept on the aggregated rating.
const ratingScale = 2

// DriverRatingAggregator is a domain service that recomputes a driver's
// rating as the arithmetic mean of every per-order driver rating the driver
// has ever received, including the one that triggered the recomputation.
//
// The mean is computed with exact decimal arithmetic; the value is shown to
// users next to money amounts and must not drift the way binary floats do.
// The application layer serializes concurrent recomputations per driver by
// locking the driver row for the duration of the transaction.
type DriverRatingAggregator struct{}

// NewDriverRatingAggregator creates a new DriverRatingAggregator instance.
func NewDriverRatingAggregator() DriverRatingAggregator {
	return DriverRatingAggregator{}
}

// Aggregate sets the driver's rating to the mean of ratings, rounded half-up
// to two decimal places. The slice must carry every historical driver rating
// for this driver; an empty slice is a programming error and is rejected.
func (a DriverRatingAggregator) Aggregate(d *driver.Driver, ratings []int) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if len(ratings) == 0 {
		return errs.NewValueIsRequiredError("ratings")
	}

	sum := decimal.Zero
	for _, rating := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(rating)))
	}

	mean := sum.DivRound(decimal.NewFromInt(int64(len(ratings))), ratingScale)
	return d.SetRating(mean)
}
