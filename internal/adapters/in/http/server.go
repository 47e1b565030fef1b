// Package http exposes the application's commands and queries over a REST
// API. Handlers translate JSON payloads into guarded commands, delegate to
// the application layer, and map domain error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"barbari/internal/core/application/usecases/commands"
	"barbari/internal/core/application/usecases/queries"
	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/order"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	SetOrderStatus     commands.SetOrderStatusCommandHandler
	AssignDriver       commands.AssignDriverCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	RateOrder          commands.RateOrderCommandHandler
	CreateDriver       commands.CreateDriverCommandHandler
	CreatePricingCfg   commands.CreatePricingConfigurationCommandHandler
	ActivatePricingCfg commands.ActivatePricingConfigurationCommandHandler
	CreateDiscountCode commands.CreateDiscountCodeCommandHandler

	CalculatePrice   queries.CalculatePriceQueryHandler
	ValidateDiscount queries.ValidateDiscountQueryHandler
	GetActiveConfig  queries.GetActivePricingConfigQueryHandler
	GetOrder         queries.GetOrderQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/status", s.SetOrderStatus)
	v1.POST("/orders/:id/assign-driver", s.AssignDriver)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/rate", s.RateOrder)
	v1.POST("/drivers", s.CreateDriver)
	v1.POST("/pricing/calculate", s.CalculatePrice)
	v1.GET("/pricing/config/active", s.GetActivePricingConfig)
	v1.POST("/pricing/config", s.CreatePricingConfig)
	v1.POST("/pricing/config/:id/activate", s.ActivatePricingConfig)
	v1.POST("/discounts", s.CreateDiscountCode)
	v1.POST("/discounts/validate", s.ValidateDiscount)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicleType, err := kernel.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(commands.CreateOrderCommandParams{
		OrderID:              kernel.NewUUID(),
		UserID:               userID,
		ServiceID:            serviceID,
		VehicleType:          vehicleType,
		ScheduledAt:          req.ScheduledAt,
		RequiresWorkers:      req.RequiresWorkers,
		WorkerCount:          req.WorkerCount,
		DistanceKm:           req.DistanceKm,
		Floors:               floorsFromDTO(req.Floors),
		WalkingDistancesM:    req.WalkingDistancesM,
		StopsCount:           req.StopsCount,
		RequiresPacking:      req.RequiresPacking,
		PackingDurationHours: req.PackingDurationHours,
		DiscountCode:         req.DiscountCode,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:          result.OrderID,
		OrderNumber: result.OrderNumber,
		Status:      result.Status.String(),
		TotalPrice:  result.TotalPrice,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	projection, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(projection))
}

// SetOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req SetOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status, req.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:id/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/:id/rate.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req RateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(
		orderID, userID,
		req.OverallRating,
		req.DriverRating, req.ServiceRating,
		req.Comment,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.RateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vehicleType, err := kernel.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, userID, vehicleType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// CalculatePrice handles POST /api/v1/pricing/calculate.
func (s *Server) CalculatePrice(ctx echo.Context) error {
	var req PricingInputDTO
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleType, err := kernel.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewCalculatePriceQuery(queries.CalculatePriceQueryParams{
		VehicleType:          vehicleType,
		RequiresWorkers:      req.RequiresWorkers,
		WorkerCount:          req.WorkerCount,
		DistanceKm:           req.DistanceKm,
		Floors:               floorsFromDTO(req.Floors),
		WalkingDistancesM:    req.WalkingDistancesM,
		StopsCount:           req.StopsCount,
		RequiresPacking:      req.RequiresPacking,
		PackingDurationHours: req.PackingDurationHours,
		DiscountCode:         req.DiscountCode,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	breakdown, err := s.handlers.CalculatePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, breakdownResponse(breakdown))
}

// GetActivePricingConfig handles GET /api/v1/pricing/config/active.
func (s *Server) GetActivePricingConfig(ctx echo.Context) error {
	resp, err := s.handlers.GetActiveConfig.Handle(
		ctx.Request().Context(), queries.GetActivePricingConfigQuery{},
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CreatePricingConfig handles POST /api/v1/pricing/config.
func (s *Server) CreatePricingConfig(ctx echo.Context) error {
	var req CreatePricingConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	baseVehicleRates, err := vehicleRatesFromDTO(req.BaseVehicleRates)
	if err != nil {
		return errorResponse(ctx, err)
	}

	workerRates, err := vehicleRatesFromDTO(req.WorkerRatesByVehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}

	tiers := make([]pricing.WalkingTier, 0, len(req.WalkingTiers))
	for _, tier := range req.WalkingTiers {
		tiers = append(tiers, pricing.WalkingTier{
			ThresholdMeters: tier.ThresholdMeters,
			Amount:          tier.Amount,
		})
	}

	configID := kernel.NewUUID()
	cmd, err := commands.NewCreatePricingConfigurationCommand(configID, pricing.ConfigurationParams{
		Name:                           req.Name,
		BaseWorkerRate:                 req.BaseWorkerRate,
		BaseVehicleRates:               baseVehicleRates,
		WorkerRatesByVehicle:           workerRates,
		PerKmRate:                      req.PerKmRate,
		PerFloorRate:                   req.PerFloorRate,
		WalkingTiers:                   tiers,
		StopRate:                       req.StopRate,
		PackingHourlyRate:              req.PackingHourlyRate,
		PackingMaterialsCost:           req.PackingMaterialsCost,
		IncludePackingMaterialsInPrice: req.IncludePackingMaterialsInPrice,
		CancellationFee:                req.CancellationFee,
		ExpertVisitFee:                 req.ExpertVisitFee,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CreatePricingCfg.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: configID.String()})
}

// ActivatePricingConfig handles POST /api/v1/pricing/config/:id/activate.
func (s *Server) ActivatePricingConfig(ctx echo.Context) error {
	configID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewActivatePricingConfigurationCommand(configID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.ActivatePricingCfg.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDiscountCode handles POST /api/v1/discounts.
func (s *Server) CreateDiscountCode(ctx echo.Context) error {
	var req CreateDiscountCodeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := discount.KindFromString(req.Kind)
	if err != nil {
		return errorResponse(ctx, err)
	}

	codeID := kernel.NewUUID()
	cmd, err := commands.NewCreateDiscountCodeCommand(codeID, discount.CodeParams{
		Code:           req.Code,
		Kind:           kind,
		Value:          req.Value,
		MaxDiscount:    req.MaxDiscount,
		MinOrderAmount: req.MinOrderAmount,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		UsageLimit:     req.UsageLimit,
		PerUserLimit:   req.PerUserLimit,
		Description:    req.Description,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.CreateDiscountCode.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: codeID.String()})
}

// ValidateDiscount handles POST /api/v1/discounts/validate.
func (s *Server) ValidateDiscount(ctx echo.Context) error {
	var req ValidateDiscountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewValidateDiscountQuery(req.Code, req.OrderAmount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.handlers.ValidateDiscount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp := ValidateDiscountResponse{
		IsValid: result.IsValid,
		Reason:  string(result.Reason),
	}
	if result.Discount != nil {
		resp.Discount = &DiscountInfoDTO{
			Code:           result.Discount.Code,
			Kind:           result.Discount.Kind.String(),
			Amount:         result.Discount.Amount,
			DiscountAmount: result.Discount.DiscountAmount,
			Description:    result.Discount.Description,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

func floorsFromDTO(floors []FloorDTO) []pricing.Floor {
	out := make([]pricing.Floor, 0, len(floors))
	for _, floor := range floors {
		out = append(out, pricing.Floor{
			FloorNumber: floor.FloorNumber,
			HasElevator: floor.HasElevator,
		})
	}
	return out
}

func vehicleRatesFromDTO(rates map[string]decimal.Decimal) (map[kernel.VehicleType]decimal.Decimal, error) {
	if len(rates) == 0 {
		return nil, nil
	}

	out := make(map[kernel.VehicleType]decimal.Decimal, len(rates))
	for name, rate := range rates {
		vehicleType, err := kernel.VehicleTypeFromString(name)
		if err != nil {
			return nil, err
		}
		out[vehicleType] = rate
	}
	return out, nil
}

func breakdownResponse(breakdown pricing.Breakdown) BreakdownResponse {
	resp := BreakdownResponse{
		VehiclePrice:             breakdown.VehiclePrice,
		WorkerPrice:              breakdown.WorkerPrice,
		DistancePrice:            breakdown.DistancePrice,
		FloorPrice:               breakdown.FloorPrice,
		WalkingDistancePrice:     breakdown.WalkingDistancePrice,
		StopsPrice:               breakdown.StopsPrice,
		PackingPrice:             breakdown.PackingPrice,
		Subtotal:                 breakdown.Subtotal,
		Discount:                 breakdown.Discount,
		TotalPrice:               breakdown.TotalPrice,
		EstimatedDurationMinutes: breakdown.EstimatedDurationMinutes,
	}

	if details := breakdown.DiscountDetails; details != nil {
		resp.DiscountDetails = &DiscountInfoDTO{
			Code:           details.Code,
			Kind:           details.Kind.String(),
			Amount:         details.Value,
			DiscountAmount: breakdown.Discount,
			Description:    details.Description,
		}
	}

	return resp
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain error kinds onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrConcurrency):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
