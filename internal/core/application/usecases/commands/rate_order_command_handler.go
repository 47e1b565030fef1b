package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/domain/model/rating"
	"barbari/internal/core/domain/services"
	"barbari/internal/pkg/errs"
)

// RateOrderCommandHandler records a customer's rating for a completed order
// and reaggregates the assigned driver's score.
//
// One rating per order: a second submission returns a Conflict error before
// anything is written. When the rating carries a driver score and the order
// has an assigned driver, the driver row is locked, every historical driver
// score is reread including the new one, and the driver's rating is set to
// their exact-decimal mean. The lock serializes concurrent aggregations for
// the same driver.
type RateOrderCommandHandler struct {
	uowFactory RatingUoWFactory
	aggregator services.DriverRatingAggregator
}

// NewRateOrderCommandHandler creates a handler for rating submission.
// Requires a RatingUoWFactory for transactional persistence.
func NewRateOrderCommandHandler(uowFactory RatingUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewDriverRatingAggregator(),
	}
}

// Handle processes the rating command.
// Returns an ObjectNotFound error for a missing order, a Validation error
// when the order is not completed, and a Conflict error when the order is
// already rated.
func (h RateOrderCommandHandler) Handle(ctx context.Context, command RateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"order cannot be rated",
			fmt.Errorf("order %s is %s, not %s", aggregate.OrderNumber(), aggregate.Status(), order.Completed),
		)
	}

	ratingRepo := uow.RatingRepository()
	if _, err = ratingRepo.GetByOrder(ctx, command.OrderID()); err == nil {
		return errs.NewConflictError("order is already rated")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	orderRating, err := rating.NewOrderRating(
		kernel.NewUUID(),
		command.OrderID(),
		command.UserID(),
		command.OverallRating(),
		command.DriverRating(),
		command.ServiceRating(),
		command.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = ratingRepo.Add(ctx, orderRating); err != nil {
		return err
	}

	if err = h.aggregateDriverRating(ctx, uow, aggregate, command.DriverRating()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RateOrderCommandHandler) aggregateDriverRating(
	ctx context.Context, uow RatingUoW, aggregate *order.Order, driverRating *int,
) error {
	driverID := aggregate.Driver()
	if driverRating == nil || driverID == nil {
		return nil
	}

	driverRepo := uow.DriverRepository()
	ratedDriver, err := driverRepo.GetForUpdate(ctx, *driverID)
	if err != nil {
		return err
	}

	ratings, err := uow.RatingRepository().GetDriverRatings(ctx, *driverID)
	if err != nil {
		return err
	}

	if err = h.aggregator.Aggregate(ratedDriver, ratings); err != nil {
		return err
	}

	return driverRepo.Update(ctx, ratedDriver)
}
