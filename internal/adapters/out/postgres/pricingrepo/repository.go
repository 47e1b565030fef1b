package pricingrepo

import (
	"context"
	"errors"

	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/core/domain/model/pricing"
	"barbari/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormPricingRepository implements PricingRepository using GORM.
type GormPricingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRepository creates a new GORM rate configuration repository.
func NewGormPricingRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRepository {
	return &GormPricingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rate configuration to the database.
// A unique violation surfaces as a Conflict error: configuration names are
// unique, and the partial index rejects a second active row.
func (r *GormPricingRepository) Add(ctx context.Context, aggregate *pricing.Configuration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause("pricing configuration", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rate configuration to the database.
// All columns are written: deactivation flips IsActive to false and a
// partial update would silently skip it.
func (r *GormPricingRepository) Update(ctx context.Context, aggregate *pricing.Configuration) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ConfigurationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rate configuration by ID.
func (r *GormPricingRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Configuration, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ConfigurationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing configuration", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActive retrieves the single active rate configuration.
func (r *GormPricingRepository) GetActive(ctx context.Context) (*pricing.Configuration, error) {
	var dto ConfigurationDTO
	if err := r.db.WithContext(ctx).First(&dto, "is_active = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active pricing configuration", nil)
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeactivateAll clears the active flag on every configuration. Runs inside
// the activation transaction so exactly one configuration ends up active.
func (r *GormPricingRepository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&ConfigurationDTO{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
