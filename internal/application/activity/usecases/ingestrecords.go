package usecases

import (
	"context"
	"fmt"

	"opsight/internal/application/activity/dto"
	"opsight/internal/domain/activity"
	"opsight/internal/shared/biztime"
	"opsight/internal/shared/errors"
	"opsight/internal/shared/logger"
	"opsight/internal/shared/utils"
)

// IngestRecordsUseCase persists a batch of daily activity records, the
// write side of the record store the analytics pipelines read from.
type IngestRecordsUseCase struct {
	recordRepo activity.Repository
	logger     logger.Interface
}

// NewIngestRecordsUseCase creates a new IngestRecordsUseCase
func NewIngestRecordsUseCase(recordRepo activity.Repository, logger logger.Interface) *IngestRecordsUseCase {
	return &IngestRecordsUseCase{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// Execute validates and upserts the batch. A bad row fails the whole batch
// with a validation error naming its index; nothing is written.
func (uc *IngestRecordsUseCase) Execute(ctx context.Context, req dto.IngestRecordsRequest) (*dto.IngestRecordsResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	records := make([]*activity.Record, 0, len(req.Records))
	for i, input := range req.Records {
		recordDate, err := biztime.ParseDateInBizTimezone(input.RecordDate)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("records[%d]: invalid record_date %q", i, input.RecordDate))
		}

		record, err := activity.NewRecord(input.UserID, recordDate, activity.SumRecord{
			NewSignAmount:      input.NewSignAmount,
			NewSignCount:       input.NewSignCount,
			ReferralAmount:     input.ReferralAmount,
			ReferralCount:      input.ReferralCount,
			RenewalAmount:      input.RenewalAmount,
			RenewalCount:       input.RenewalCount,
			UpgradeAmount:      input.UpgradeAmount,
			UpgradeCount:       input.UpgradeCount,
			CallCount:          input.CallCount,
			TaskTotalCount:     input.TaskTotalCount,
			TaskCompletedCount: input.TaskCompletedCount,
		})
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("records[%d]: %v", i, err))
		}
		records = append(records, record)
	}

	if err := uc.recordRepo.BatchUpsert(ctx, records); err != nil {
		uc.logger.Errorw("failed to ingest activity records", "count", len(records), "error", err)
		return nil, errors.NewInternalError("failed to ingest activity records", err.Error())
	}

	uc.logger.Infow("activity records ingested", "count", len(records))
	return &dto.IngestRecordsResponse{Accepted: len(records)}, nil
}
