package persistence

import (
	"context"

	"github.com/Renagang21/o4o-platform-sub111/internal/domain/commission"
	"github.com/Renagang21/o4o-platform-sub111/internal/domain/settlement"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSummaryReader implements settlement.SummaryReader with aggregate queries only.
// Every query filters on the key's currency.
type GormSummaryReader struct {
	db *gorm.DB
}

// NewGormSummaryReader creates a new GormSummaryReader
func NewGormSummaryReader(db *gorm.DB) *GormSummaryReader {
	return &GormSummaryReader{db: db}
}

// SumBatchNet sums net amounts of the beneficiary's batches in status
func (r *GormSummaryReader) SumBatchNet(ctx context.Context, key settlement.SummaryKey, status settlement.BatchStatus) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := conn(ctx, r.db).
		Model(&models.SettlementBatchModel{}).
		Select("COALESCE(SUM(net_amount), 0) AS total").
		Where("tenant_id = ? AND beneficiary_id = ? AND settlement_type = ? AND currency = ? AND status = ?",
			key.TenantID, key.BeneficiaryID, key.SettlementType, key.Currency, status).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// SumUnsettledCommissions sums confirmed commissions that are unbatched or sit in an OPEN batch
func (r *GormSummaryReader) SumUnsettledCommissions(ctx context.Context, key settlement.SummaryKey) (decimal.Decimal, decimal.Decimal, error) {
	var result struct {
		Total      decimal.Decimal
		Commission decimal.Decimal
	}
	openBatches := conn(ctx, r.db).
		Model(&models.SettlementBatchModel{}).
		Select("id").
		Where("tenant_id = ? AND status = ?", key.TenantID, settlement.BatchStatusOpen)

	if err := conn(ctx, r.db).
		Model(&models.CommissionModel{}).
		Select("COALESCE(SUM(order_amount), 0) AS total, COALESCE(SUM(commission_amount), 0) AS commission").
		Where("tenant_id = ? AND beneficiary_id = ? AND beneficiary_type IN ? AND currency = ? AND status = ?",
			key.TenantID, key.BeneficiaryID, beneficiaryTypesFor(key.SettlementType), key.Currency, commission.StatusConfirmed).
		Where("batch_id IS NULL OR batch_id IN (?)", openBatches).
		Scan(&result).Error; err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return result.Total, result.Commission, nil
}

// SumSales sums order amounts of non-cancelled commissions created inside the period
func (r *GormSummaryReader) SumSales(ctx context.Context, key settlement.SummaryKey, period settlement.Period) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := conn(ctx, r.db).
		Model(&models.CommissionModel{}).
		Select("COALESCE(SUM(order_amount), 0) AS total").
		Where("tenant_id = ? AND beneficiary_id = ? AND beneficiary_type IN ? AND currency = ? AND status <> ?",
			key.TenantID, key.BeneficiaryID, beneficiaryTypesFor(key.SettlementType), key.Currency, commission.StatusCancelled).
		Where("created_at >= ? AND created_at < ?", period.Start, period.End).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func beneficiaryTypesFor(t settlement.SettlementType) []commission.BeneficiaryType {
	var out []commission.BeneficiaryType
	for _, b := range []commission.BeneficiaryType{commission.BeneficiaryPartner, commission.BeneficiarySeller, commission.BeneficiarySupplier} {
		if settlement.SettlementTypeFor(b) == t {
			out = append(out, b)
		}
	}
	return out
}

var _ settlement.SummaryReader = (*GormSummaryReader)(nil)
