package discountrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"barbari/internal/core/domain/model/discount"
	"barbari/internal/core/domain/model/kernel"
	"barbari/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormDiscountRepository implements DiscountRepository using GORM.
type GormDiscountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDiscountRepository creates a new GORM discount code repository.
func NewGormDiscountRepository(db *gorm.DB, tracker aggregateTracker) *GormDiscountRepository {
	return &GormDiscountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new discount code to the database.
// A unique violation on the normalized code string surfaces as a Conflict
// error.
func (r *GormDiscountRepository) Add(ctx context.Context, aggregate *discount.Code) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return errs.NewConflictErrorWithCause("discount code", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing discount code to the database.
// All columns are written so deactivation reaches the row.
func (r *GormDiscountRepository) Update(ctx context.Context, aggregate *discount.Code) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CodeDTO{}).
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

// Get retrieves a discount code by ID.
func (r *GormDiscountRepository) Get(ctx context.Context, id kernel.UUID) (*discount.Code, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount code", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a discount code by its code string. The lookup
// normalizes the input the same way the aggregate does, so customer-typed
// codes match regardless of case and surrounding whitespace.
func (r *GormDiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto CodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount code", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Redeem atomically increments the code's usage count, guarded by the usage
// limit in the same statement. Two concurrent redemptions of the last use
// cannot both succeed: the loser matches zero rows and gets a Conflict
// error.
func (r *GormDiscountRepository) Redeem(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CodeDTO{}).
		Where("id = ? AND is_active = ? AND (usage_limit IS NULL OR usage_count < usage_limit)",
			id.Bytes(), true).
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("discount code usage limit")
	}

	return nil
}

// DeactivateExpired clears the active flag on every code whose end date has
// passed. Returns the number of codes deactivated.
func (r *GormDiscountRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&CodeDTO{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, now).
		Update("is_active", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
