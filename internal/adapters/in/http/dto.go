package http

import (
	"time"

	"barbari/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FloorDTO is one floor of a pickup or delivery address.
type FloorDTO struct {
	FloorNumber int  `json:"floor_number"`
	HasElevator bool `json:"has_elevator"`
}

// PricingInputDTO groups the pricing-relevant attributes of a move. It is
// shared by order creation and price preview requests.
type PricingInputDTO struct {
	VehicleType          string          `json:"vehicle_type"`
	RequiresWorkers      bool            `json:"requires_workers"`
	WorkerCount          int             `json:"worker_count"`
	DistanceKm           decimal.Decimal `json:"distance_km"`
	Floors               []FloorDTO      `json:"floors"`
	WalkingDistancesM    []int           `json:"walking_distances_m"`
	StopsCount           int             `json:"stops_count"`
	RequiresPacking      bool            `json:"requires_packing"`
	PackingDurationHours int             `json:"packing_duration_hours"`
	DiscountCode         string          `json:"discount_code"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	PricingInputDTO
	UserID      string    `json:"user_id"`
	ServiceID   string    `json:"service_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// CreateOrderResponse echoes the essentials of a freshly created order.
type CreateOrderResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// BreakdownResponse itemizes a calculated price.
type BreakdownResponse struct {
	VehiclePrice             decimal.Decimal  `json:"vehicle_price"`
	WorkerPrice              decimal.Decimal  `json:"worker_price"`
	DistancePrice            decimal.Decimal  `json:"distance_price"`
	FloorPrice               decimal.Decimal  `json:"floor_price"`
	WalkingDistancePrice     decimal.Decimal  `json:"walking_distance_price"`
	StopsPrice               decimal.Decimal  `json:"stops_price"`
	PackingPrice             decimal.Decimal  `json:"packing_price"`
	Subtotal                 decimal.Decimal  `json:"subtotal"`
	Discount                 decimal.Decimal  `json:"discount"`
	TotalPrice               decimal.Decimal  `json:"total_price"`
	EstimatedDurationMinutes int              `json:"estimated_duration_minutes"`
	DiscountDetails          *DiscountInfoDTO `json:"discount_details,omitempty"`
}

// DiscountInfoDTO describes an applied or applicable discount.
type DiscountInfoDTO struct {
	Code           string          `json:"code"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Description    string          `json:"description,omitempty"`
}

// SetOrderStatusRequest is the payload for POST /api/v1/orders/:id/status.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// AssignDriverRequest is the payload for POST /api/v1/orders/:id/assign-driver.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// CancelOrderRequest is the payload for POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// RateOrderRequest is the payload for POST /api/v1/orders/:id/rate.
type RateOrderRequest struct {
	UserID        string `json:"user_id"`
	OverallRating int    `json:"overall_rating"`
	DriverRating  *int   `json:"driver_rating"`
	ServiceRating *int   `json:"service_rating"`
	Comment       string `json:"comment"`
}

// ValidateDiscountRequest is the payload for POST /api/v1/discounts/validate.
type ValidateDiscountRequest struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"order_amount"`
}

// ValidateDiscountResponse reports a discount eligibility check.
type ValidateDiscountResponse struct {
	IsValid  bool             `json:"is_valid"`
	Reason   string           `json:"reason,omitempty"`
	Discount *DiscountInfoDTO `json:"discount,omitempty"`
}

// CreateDriverRequest is the payload for POST /api/v1/drivers.
type CreateDriverRequest struct {
	UserID      string `json:"user_id"`
	VehicleType string `json:"vehicle_type"`
}

// WalkingTierDTO is one walking distance tier of a rate configuration.
type WalkingTierDTO struct {
	ThresholdMeters int             `json:"threshold_meters"`
	Amount          decimal.Decimal `json:"amount"`
}

// CreatePricingConfigRequest is the payload for POST /api/v1/pricing/config.
type CreatePricingConfigRequest struct {
	Name                           string                     `json:"name"`
	BaseWorkerRate                 decimal.Decimal            `json:"base_worker_rate"`
	BaseVehicleRates               map[string]decimal.Decimal `json:"base_vehicle_rates"`
	WorkerRatesByVehicle           map[string]decimal.Decimal `json:"worker_rates_by_vehicle"`
	PerKmRate                      decimal.Decimal            `json:"per_km_rate"`
	PerFloorRate                   decimal.Decimal            `json:"per_floor_rate"`
	WalkingTiers                   []WalkingTierDTO           `json:"walking_tiers"`
	StopRate                       decimal.Decimal            `json:"stop_rate"`
	PackingHourlyRate              decimal.Decimal            `json:"packing_hourly_rate"`
	PackingMaterialsCost           decimal.Decimal            `json:"packing_materials_cost"`
	IncludePackingMaterialsInPrice bool                       `json:"include_packing_materials_in_price"`
	CancellationFee                decimal.Decimal            `json:"cancellation_fee"`
	ExpertVisitFee                 decimal.Decimal            `json:"expert_visit_fee"`
}

// CreateDiscountCodeRequest is the payload for POST /api/v1/discounts.
type CreateDiscountCodeRequest struct {
	Code           string           `json:"code"`
	Kind           string           `json:"kind"`
	Value          decimal.Decimal  `json:"value"`
	MaxDiscount    *decimal.Decimal `json:"max_discount"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        *time.Time       `json:"end_date"`
	UsageLimit     *int             `json:"usage_limit"`
	PerUserLimit   *int             `json:"per_user_limit"`
	Description    string           `json:"description"`
}

// CreatedResponse echoes the id of a freshly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the flat order projection for GET /api/v1/orders/:id.
type OrderResponse struct {
	ID                       string          `json:"id"`
	OrderNumber              string          `json:"order_number"`
	UserID                   string          `json:"user_id"`
	ServiceID                string          `json:"service_id"`
	VehicleType              string          `json:"vehicle_type"`
	Status                   string          `json:"status"`
	DriverID                 *string         `json:"driver_id,omitempty"`
	ScheduledAt              time.Time       `json:"scheduled_at"`
	Subtotal                 decimal.Decimal `json:"subtotal"`
	Discount                 decimal.Decimal `json:"discount"`
	TotalPrice               decimal.Decimal `json:"total_price"`
	EstimatedDurationMinutes int             `json:"estimated_duration_minutes"`
	DiscountCode             *string         `json:"discount_code,omitempty"`
	IsPaid                   bool            `json:"is_paid"`
	CancellationReason       string          `json:"cancellation_reason,omitempty"`
	CreatedAt                time.Time       `json:"created_at"`
	StartedAt                *time.Time      `json:"started_at,omitempty"`
	CompletedAt              *time.Time      `json:"completed_at,omitempty"`
	CancelledAt              *time.Time      `json:"cancelled_at,omitempty"`
}

func orderResponseFromQuery(projection queries.GetOrderQueryResponse) OrderResponse {
	var driverID *string
	if projection.DriverID != nil {
		id := projection.DriverID.String()
		driverID = &id
	}

	return OrderResponse{
		ID:                       projection.ID.String(),
		OrderNumber:              projection.OrderNumber,
		UserID:                   projection.UserID.String(),
		ServiceID:                projection.ServiceID.String(),
		VehicleType:              projection.VehicleType,
		Status:                   projection.Status,
		DriverID:                 driverID,
		ScheduledAt:              projection.ScheduledAt,
		Subtotal:                 projection.Subtotal,
		Discount:                 projection.Discount,
		TotalPrice:               projection.TotalPrice,
		EstimatedDurationMinutes: projection.EstimatedDurationMinutes,
		DiscountCode:             projection.DiscountCode,
		IsPaid:                   projection.IsPaid,
		CancellationReason:       projection.CancellationReason,
		CreatedAt:                projection.CreatedAt,
		StartedAt:                projection.StartedAt,
		CompletedAt:              projection.CompletedAt,
		CancelledAt:              projection.CancelledAt,
	}
}
