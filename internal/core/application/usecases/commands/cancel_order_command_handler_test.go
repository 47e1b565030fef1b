package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"barbari/internal/core/application/usecases/commands"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/ports"
	"barbari/internal/pkg/errs"
)

func TestCancelOrderCommandHandler_Handle_ReleasesAssignedDriver(t *testing.T) {
	ctx := t.Context()
	orderRepo, driverRepo, uow, notifier := newLifecycleMocks(t)

	driverID := kernel.NewUUID()
	aggregate := testOrder(t, order.EnRoute, &driverID)
	assignedDriver := testAssignedDriver(t, driverID)

	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", ctx, aggregate).Return(nil)
	driverRepo.On("GetForUpdate", ctx, driverID).Return(assignedDriver, nil)
	driverRepo.On("Update", ctx, assignedDriver).Return(nil)
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Type == ports.NotificationOrderCancelled
	})).Return()

	handler := commands.NewCancelOrderCommandHandler(stubLifecycleUoWFactory{uow: uow}, notifier)
	command, err := commands.NewCancelOrderCommand(aggregate.ID(), "customer changed plans")
	require.NoError(t, err)

	err = handler.Handle(ctx, command)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, "customer changed plans", aggregate.CancellationReason())
	assert.NotNil(t, aggregate.CancelledAt())
	assert.True(t, assignedDriver.IsAvailable())
	assert.Equal(t, 1, assignedDriver.CancelledRides())
	uow.AssertCalled(t, "Commit", ctx)
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UnassignedOrderSkipsDriver(t *testing.T) {
	ctx := t.Context()
	orderRepo, driverRepo, uow, notifier := newLifecycleMocks(t)

	aggregate := testOrder(t, order.Pending, nil)

	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", ctx, aggregate).Return(nil)
	notifier.On("Notify", ctx, mock.Anything).Return()

	handler := commands.NewCancelOrderCommandHandler(stubLifecycleUoWFactory{uow: uow}, notifier)
	command, err := commands.NewCancelOrderCommand(aggregate.ID(), "booked by mistake")
	require.NoError(t, err)

	err = handler.Handle(ctx, command)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	driverRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrderConflicts(t *testing.T) {
	ctx := t.Context()
	orderRepo, _, uow, notifier := newLifecycleMocks(t)

	aggregate := testOrder(t, order.Completed, nil)
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	handler := commands.NewCancelOrderCommandHandler(stubLifecycleUoWFactory{uow: uow}, notifier)
	command, err := commands.NewCancelOrderCommand(aggregate.ID(), "too late")
	require.NoError(t, err)

	err = handler.Handle(ctx, command)

	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, order.Completed, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNewCancelOrderCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
