// Package locationrepo persists the append-only location report trail.
// Reports get a monotonically increasing sequence number on insert; "latest"
// always means highest sequence, independent of the reported timestamps.
package locationrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// ReportDTO represents the database structure for persisting location reports.
// Seq is the insertion-order tiebreaker the read side sorts on.
type ReportDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	UserID    uuid.UUID `gorm:"type:uuid"`
	Latitude  float64
	Longitude float64
	Timestamp time.Time `gorm:"index"`
}

// TableName specifies the database table name for location reports.
func (ReportDTO) TableName() string {
	return "location_reports"
}

func fromDomain(report *location.Report) ReportDTO {
	return ReportDTO{
		ID:        report.ID().Bytes(),
		OrderID:   report.OrderID().Bytes(),
		UserID:    report.UserID().Bytes(),
		Latitude:  report.Coordinates().Latitude(),
		Longitude: report.Coordinates().Longitude(),
		Timestamp: report.Timestamp(),
	}
}

func toDomain(dto ReportDTO) (*location.Report, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return location.RestoreReport(id, orderID, userID, coordinates, dto.Timestamp)
}
