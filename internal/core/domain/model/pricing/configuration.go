package pricing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrConfigurationIsNotConstructed is returned when a Configuration instance
// was not created through the NewConfiguration or RestoreConfiguration factory
// methods.
var ErrConfigurationIsNotConstructed = errors.New(
	"Configuration must be created via NewConfiguration or RestoreConfiguration constructor",
)

// WalkingTier is one step of the walking-distance surcharge function: orders
// whose walking leg is at least ThresholdMeters long (and shorter than the
// next tier's threshold) pay Amount.
type WalkingTier struct {
	ThresholdMeters int
	Amount          decimal.Decimal
}

// Configuration is the aggregate root holding one named set of rate tables.
// All price calculations resolve against the single active configuration.
//
// Configuration follows these invariants:
//   - Rate-map keys are valid vehicle types (closed enumeration)
//   - All amounts are non-negative
//   - Walking tiers are sorted by strictly increasing threshold
//   - At most one configuration is active at any instant (enforced together
//     with the persistence layer)
type Configuration struct {
	id                    kernel.UUID
	name                  string
	baseWorkerRate        decimal.Decimal
	baseVehicleRates      map[kernel.VehicleType]decimal.Decimal
	workerRatesByVehicle  map[kernel.VehicleType]decimal.Decimal
	perKmRate             decimal.Decimal
	perFloorRate          decimal.Decimal
	walkingTiers          []WalkingTier
	stopRate              decimal.Decimal
	packingHourlyRate     decimal.Decimal
	packingMaterialsCost  decimal.Decimal
	includePackingInPrice bool
	cancellationFee       decimal.Decimal
	expertVisitFee        decimal.Decimal
	isActive              bool
	createdAt             time.Time

	isConstructed bool
}

// ConfigurationParams groups the constructor parameters of a rate configuration.
type ConfigurationParams struct {
	Name                           string
	BaseWorkerRate                 decimal.Decimal
	BaseVehicleRates               map[kernel.VehicleType]decimal.Decimal
	WorkerRatesByVehicle           map[kernel.VehicleType]decimal.Decimal
	PerKmRate                      decimal.Decimal
	PerFloorRate                   decimal.Decimal
	WalkingTiers                   []WalkingTier
	StopRate                       decimal.Decimal
	PackingHourlyRate              decimal.Decimal
	PackingMaterialsCost           decimal.Decimal
	IncludePackingMaterialsInPrice bool
	CancellationFee                decimal.Decimal
	ExpertVisitFee                 decimal.Decimal
}

// NewConfiguration creates a new inactive Configuration.
// Activation is a separate, transactional operation so the "exactly one
// active" invariant is never violated between creation and activation.
func NewConfiguration(id kernel.UUID, params ConfigurationParams, createdAt time.Time) (*Configuration, error) {
	cfg := &Configuration{
		isConstructed: true,
		createdAt:     createdAt,
	}

	if err := errors.Join(
		cfg.setID(id),
		cfg.setName(params.Name),
		cfg.setRates(params),
		cfg.setVehicleRates(params.BaseVehicleRates, params.WorkerRatesByVehicle),
		cfg.setWalkingTiers(params.WalkingTiers),
	); err != nil {
		return nil, err
	}

	cfg.includePackingInPrice = params.IncludePackingMaterialsInPrice
	return cfg, nil
}

// RestoreConfiguration reconstructs a Configuration aggregate from persistent
// storage, including its active flag.
func RestoreConfiguration(
	id kernel.UUID, params ConfigurationParams, isActive bool, createdAt time.Time,
) (*Configuration, error) {
	cfg, err := NewConfiguration(id, params, createdAt)
	if err != nil {
		return nil, err
	}

	cfg.isActive = isActive
	return cfg, nil
}

// Validate ensures the Configuration instance was properly constructed.
func (c *Configuration) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConfigurationIsNotConstructed
	}
	return nil
}

// ID returns the configuration's unique identifier.
func (c *Configuration) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable configuration name.
func (c *Configuration) Name() string {
	return c.name
}

// BaseWorkerRate returns the per-worker rate used when no vehicle-specific
// worker rate is configured.
func (c *Configuration) BaseWorkerRate() decimal.Decimal {
	return c.baseWorkerRate
}

// PerKmRate returns the per-kilometer transport rate.
func (c *Configuration) PerKmRate() decimal.Decimal {
	return c.perKmRate
}

// PerFloorRate returns the per-floor surcharge for floors without an elevator.
func (c *Configuration) PerFloorRate() decimal.Decimal {
	return c.perFloorRate
}

// StopRate returns the surcharge per intermediate stop.
func (c *Configuration) StopRate() decimal.Decimal {
	return c.stopRate
}

// PackingHourlyRate returns the hourly rate for packing services.
func (c *Configuration) PackingHourlyRate() decimal.Decimal {
	return c.packingHourlyRate
}

// PackingMaterialsCost returns the estimated packing-materials cost.
func (c *Configuration) PackingMaterialsCost() decimal.Decimal {
	return c.packingMaterialsCost
}

// IncludePackingMaterialsInPrice reports whether the materials estimate is
// added to the packing price.
func (c *Configuration) IncludePackingMaterialsInPrice() bool {
	return c.includePackingInPrice
}

// CancellationFee returns the fee charged for late cancellations.
func (c *Configuration) CancellationFee() decimal.Decimal {
	return c.cancellationFee
}

// ExpertVisitFee returns the fee for an on-site estimation visit.
func (c *Configuration) ExpertVisitFee() decimal.Decimal {
	return c.expertVisitFee
}

// IsActive reports whether this is the configuration new prices resolve against.
func (c *Configuration) IsActive() bool {
	return c.isActive
}

// CreatedAt returns the creation timestamp.
func (c *Configuration) CreatedAt() time.Time {
	return c.createdAt
}

// BaseVehicleRates returns a copy of the vehicle-type base rate table.
func (c *Configuration) BaseVehicleRates() map[kernel.VehicleType]decimal.Decimal {
	return copyRates(c.baseVehicleRates)
}

// WorkerRatesByVehicle returns a copy of the per-vehicle worker rate table.
func (c *Configuration) WorkerRatesByVehicle() map[kernel.VehicleType]decimal.Decimal {
	return copyRates(c.workerRatesByVehicle)
}

// WalkingTiers returns a copy of the walking-distance tiers, ordered by threshold.
func (c *Configuration) WalkingTiers() []WalkingTier {
	tiers := make([]WalkingTier, len(c.walkingTiers))
	copy(tiers, c.walkingTiers)
	return tiers
}

// VehicleRate returns the base rate for the vehicle type,
// or zero when the type has no configured rate.
func (c *Configuration) VehicleRate(vehicleType kernel.VehicleType) decimal.Decimal {
	if rate, ok := c.baseVehicleRates[vehicleType]; ok {
		return rate
	}
	return decimal.Zero
}

// WorkerRate returns the per-worker rate for the vehicle type,
// falling back to the base worker rate when no per-vehicle rate is configured.
func (c *Configuration) WorkerRate(vehicleType kernel.VehicleType) decimal.Decimal {
	if rate, ok := c.workerRatesByVehicle[vehicleType]; ok {
		return rate
	}
	return c.baseWorkerRate
}

// WalkingAmount resolves the surcharge for one walking leg of the given length
// in meters: the tier with the greatest threshold that does not exceed the
// distance. A distance below every threshold contributes zero.
func (c *Configuration) WalkingAmount(distanceMeters int) decimal.Decimal {
	amount := decimal.Zero
	for _, tier := range c.walkingTiers {
		if tier.ThresholdMeters > distanceMeters {
			break
		}
		amount = tier.Amount
	}
	return amount
}

// Activate marks this configuration as the one new prices resolve against.
// The caller must deactivate the previous configuration in the same transaction.
func (c *Configuration) Activate() {
	c.isActive = true
}

// Deactivate removes this configuration from active duty.
func (c *Configuration) Deactivate() {
	c.isActive = false
}

func (c *Configuration) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Configuration) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Configuration) setRates(params ConfigurationParams) error {
	scalars := map[string]decimal.Decimal{
		"base worker rate":       params.BaseWorkerRate,
		"per-km rate":            params.PerKmRate,
		"per-floor rate":         params.PerFloorRate,
		"stop rate":              params.StopRate,
		"packing hourly rate":    params.PackingHourlyRate,
		"packing materials cost": params.PackingMaterialsCost,
		"cancellation fee":       params.CancellationFee,
		"expert visit fee":       params.ExpertVisitFee,
	}

	for name, rate := range scalars {
		if rate.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("%s is invalid", name),
				fmt.Errorf("%s is not greater or equal to 0", rate),
			)
		}
	}

	c.baseWorkerRate = params.BaseWorkerRate
	c.perKmRate = params.PerKmRate
	c.perFloorRate = params.PerFloorRate
	c.stopRate = params.StopRate
	c.packingHourlyRate = params.PackingHourlyRate
	c.packingMaterialsCost = params.PackingMaterialsCost
	c.cancellationFee = params.CancellationFee
	c.expertVisitFee = params.ExpertVisitFee
	return nil
}

func (c *Configuration) setVehicleRates(
	baseVehicleRates, workerRatesByVehicle map[kernel.VehicleType]decimal.Decimal,
) error {
	validated, err := validateRateMap("base vehicle rate", baseVehicleRates)
	if err != nil {
		return err
	}
	c.baseVehicleRates = validated

	validated, err = validateRateMap("worker rate", workerRatesByVehicle)
	if err != nil {
		return err
	}
	c.workerRatesByVehicle = validated
	return nil
}

func (c *Configuration) setWalkingTiers(tiers []WalkingTier) error {
	sorted := make([]WalkingTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ThresholdMeters < sorted[j].ThresholdMeters
	})

	for i, tier := range sorted {
		if tier.ThresholdMeters < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"walking tier threshold is invalid",
				fmt.Errorf("%d is not greater or equal to 0", tier.ThresholdMeters),
			)
		}
		if tier.Amount.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(
				"walking tier amount is invalid",
				fmt.Errorf("%s is not greater or equal to 0", tier.Amount),
			)
		}
		if i > 0 && tier.ThresholdMeters == sorted[i-1].ThresholdMeters {
			return errs.NewValueIsInvalidErrorWithCause(
				"walking tier threshold is invalid",
				fmt.Errorf("threshold %d is duplicated", tier.ThresholdMeters),
			)
		}
	}

	c.walkingTiers = sorted
	return nil
}

func validateRateMap(
	name string, rates map[kernel.VehicleType]decimal.Decimal,
) (map[kernel.VehicleType]decimal.Decimal, error) {
	validated := make(map[kernel.VehicleType]decimal.Decimal, len(rates))
	for vehicleType, rate := range rates {
		if err := vehicleType.Validate(); err != nil {
			return nil, err
		}
		if rate.IsNegative() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("%s is invalid", name),
				fmt.Errorf("%s for %s is not greater or equal to 0", rate, vehicleType),
			)
		}
		validated[vehicleType] = rate
	}
	return validated, nil
}

func copyRates(rates map[kernel.VehicleType]decimal.Decimal) map[kernel.VehicleType]decimal.Decimal {
	copied := make(map[kernel.VehicleType]decimal.Decimal, len(rates))
	for vehicleType, rate := range rates {
		copied[vehicleType] = rate
	}
	return copied
}
