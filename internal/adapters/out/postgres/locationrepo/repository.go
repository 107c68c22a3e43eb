package locationrepo

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/location"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location report repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add appends a new location report to the trail.
func (r *GormLocationRepository) Add(ctx context.Context, report *location.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	dto := fromDomain(report)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetLatest retrieves the most recently appended report for an order.
func (r *GormLocationRepository) GetLatest(ctx context.Context, orderID kernel.UUID) (*location.Report, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("seq DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("locationReport", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// PruneBefore removes reports older than the cutoff, keeping the newest
// report of each order so the latest position stays queryable. Returns the
// number of deleted rows.
func (r *GormLocationRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM location_reports
		WHERE timestamp < ?
		  AND seq NOT IN (
			SELECT MAX(seq) FROM location_reports GROUP BY order_id
		  )
	`, cutoff)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
