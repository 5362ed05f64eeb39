package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/shared"
)

// maxPeriodRollover bounds how many periods ahead a late commission may roll
const maxPeriodRollover = 12

// BatchAssigner finds or opens the settlement batch a commission joins
type BatchAssigner struct {
	batchRepo settlement.BatchRepository
}

// NewBatchAssigner creates a new BatchAssigner
func NewBatchAssigner(batchRepo settlement.BatchRepository) *BatchAssigner {
	return &BatchAssigner{batchRepo: batchRepo}
}

// Assign attaches c to the OPEN batch of the period it was created in. When that
// period's batch is already closed the commission rolls into the next period.
// The batch version is bumped so a concurrent close of the same batch fails.
func (a *BatchAssigner) Assign(ctx context.Context, c *commission.Commission, now time.Time) (*settlement.Batch, error) {
	batch, err := a.openBatchFor(ctx, c, now)
	if err != nil {
		return nil, err
	}
	if err := batch.Accepts(c); err != nil {
		return nil, err
	}
	if err := c.AttachToBatch(batch.ID, now); err != nil {
		return nil, err
	}
	if batch.NoteMembershipChange(now) {
		if err := a.batchRepo.SaveWithLock(ctx, batch); err != nil {
			return nil, err
		}
	}
	return batch, nil
}

// Touch records a membership change on the commission's batch. Changes to a
// commission whose batch is no longer OPEN are refused, since the batch sums are fixed.
func (a *BatchAssigner) Touch(ctx context.Context, c *commission.Commission, now time.Time) error {
	if c.BatchID == nil {
		return nil
	}
	batch, err := a.batchRepo.FindByID(ctx, c.TenantID, *c.BatchID)
	if err != nil {
		return err
	}
	if !batch.NoteMembershipChange(now) {
		return shared.NewDomainErrorWithDetails(shared.CodeInvalidState,
			fmt.Sprintf("commission %s belongs to %s batch %s", c.ID, batch.Status, batch.ID),
			map[string]any{"entity_type": commission.EntityType, "batch_id": batch.ID.String(), "batch_status": string(batch.Status)},
		)
	}
	return a.batchRepo.SaveWithLock(ctx, batch)
}

func (a *BatchAssigner) openBatchFor(ctx context.Context, c *commission.Commission, now time.Time) (*settlement.Batch, error) {
	settlementType := settlement.SettlementTypeFor(c.BeneficiaryType)
	period := settlement.MonthlyPeriod(c.CreatedAt)

	for i := 0; i < maxPeriodRollover; i++ {
		batch, err := a.batchRepo.FindByPeriod(ctx, c.TenantID, c.BeneficiaryID, settlementType, c.Currency, period.Start)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			batch, err = a.create(ctx, c, settlementType, period, now)
			if err != nil {
				return nil, err
			}
		}
		if batch.Status == settlement.BatchStatusOpen {
			return batch, nil
		}
		period = period.Next()
	}
	return nil, shared.NewDomainError(shared.CodeInvalidState,
		fmt.Sprintf("no open settlement batch within %d periods for beneficiary %s", maxPeriodRollover, c.BeneficiaryID))
}

func (a *BatchAssigner) create(ctx context.Context, c *commission.Commission, settlementType settlement.SettlementType, period settlement.Period, now time.Time) (*settlement.Batch, error) {
	batch, err := settlement.NewBatch(c.TenantID, c.BeneficiaryID, settlementType, period, c.Currency, now)
	if err != nil {
		return nil, err
	}
	err = a.batchRepo.Create(ctx, batch)
	if err == nil {
		return batch, nil
	}
	if !errors.Is(err, shared.ErrAlreadyExists) {
		return nil, err
	}
	// Lost the race to a concurrent creator of the same batch
	existing, findErr := a.batchRepo.FindByPeriod(ctx, c.TenantID, c.BeneficiaryID, settlementType, c.Currency, period.Start)
	if findErr != nil {
		return nil, findErr
	}
	if existing == nil {
		return nil, err
	}
	return existing, nil
}
