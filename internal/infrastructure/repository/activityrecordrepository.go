package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsight/internal/domain/activity"
	"opsight/internal/infrastructure/persistence/mappers"
	"opsight/internal/infrastructure/persistence/models"
	"opsight/internal/shared/logger"
)

// ActivityRecordRepositoryImpl implements the activity.Repository interface
type ActivityRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ActivityRecordMapper
	logger logger.Interface
}

// NewActivityRecordRepository creates a new activity record repository instance
func NewActivityRecordRepository(db *gorm.DB, logger logger.Interface) activity.Repository {
	return &ActivityRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewActivityRecordMapper(),
		logger: logger,
	}
}

// BatchUpsert inserts daily activity records. When a row already exists for
// the same (owner_id, record_date), the numeric fields are accumulated into
// it so repeated ingests for a day sum rather than overwrite.
func (r *ActivityRecordRepositoryImpl) BatchUpsert(ctx context.Context, records []*activity.Record) error {
	if len(records) == 0 {
		return nil
	}

	recordModels, err := r.mapper.ToModels(records)
	if err != nil {
		r.logger.Errorw("failed to map activity record entities to models", "error", err)
		return fmt.Errorf("failed to map activity record entities: %w", err)
	}

	accumulated := []string{
		"new_sign_amount", "new_sign_count",
		"referral_amount", "referral_count",
		"renewal_amount", "renewal_count",
		"upgrade_amount", "upgrade_count",
		"call_count", "task_total_count", "task_completed_count",
	}
	assignments := make(map[string]interface{}, len(accumulated))
	for _, col := range accumulated {
		assignments[col] = r.accumulateExpr(col)
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "owner_id"},
			{Name: "record_date"},
		},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&recordModels)

	if result.Error != nil {
		r.logger.Errorw("failed to batch upsert activity records", "count", len(recordModels), "error", result.Error)
		return fmt.Errorf("failed to batch upsert activity records: %w", result.Error)
	}

	r.logger.Infow("activity records batch upserted successfully", "count", len(recordModels))
	return nil
}

// accumulateExpr builds the conflict assignment that adds the incoming value
// to the stored one. MySQL spells the incoming row VALUES(col); SQLite and
// Postgres spell it excluded.col.
func (r *ActivityRecordRepositoryImpl) accumulateExpr(col string) clause.Expr {
	if r.db.Dialector.Name() == "mysql" {
		return gorm.Expr(col + " + VALUES(" + col + ")")
	}
	return gorm.Expr(col + " + excluded." + col)
}

// ListByDateRange returns records whose record_date falls in [from, to],
// ordered by record date then ID so downstream folds see a stable order.
// An empty ownerIDs slice means no owner filter.
func (r *ActivityRecordRepositoryImpl) ListByDateRange(ctx context.Context, from, to time.Time, ownerIDs []uint) ([]*activity.Record, error) {
	var recordModels []*models.ActivityRecordModel

	query := r.db.WithContext(ctx).
		Where("record_date >= ? AND record_date <= ?", from, to)
	if len(ownerIDs) > 0 {
		query = query.Where("owner_id IN ?", ownerIDs)
	}

	err := query.Order("record_date ASC, id ASC").Find(&recordModels).Error
	if err != nil {
		r.logger.Errorw("failed to list activity records", "from", from, "to", to, "error", err)
		return nil, fmt.Errorf("failed to list activity records: %w", err)
	}

	return r.mapper.ToEntities(recordModels)
}
