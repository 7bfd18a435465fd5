package queries

import (
	"context"
	"sort"
	"time"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
	"github.com/clearlane/warranty-service/internal/models/m_batch"
	"github.com/clearlane/warranty-service/internal/models/m_contract"
	"github.com/clearlane/warranty-service/internal/models/m_markup"
	"github.com/clearlane/warranty-service/internal/models/m_product"
	"github.com/clearlane/warranty-service/internal/models/m_variant"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// MemoryReadModel reads from the in-memory store. It interprets rows through
// the same column constants the repos write with, so the two backends stay
// interchangeable.
type MemoryReadModel struct {
	Store *commitplan.MemoryStore
}

func NewMemoryReadModel(store *commitplan.MemoryStore) *MemoryReadModel {
	return &MemoryReadModel{Store: store}
}

func (rm *MemoryReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	row := rm.Store.Row(m_product.TableName, productID)
	if row == nil {
		return nil, domain.ErrProductNotFound
	}
	return productFromRow(row), nil
}

func (rm *MemoryReadModel) ListProductsByProvider(ctx context.Context, providerID string) ([]*dto.ProductDTO, error) {
	rows := rm.Store.Rows(m_product.TableName)
	sortByCreatedAt(rows, m_product.ColCreatedAt, m_product.ColProductID)

	out := make([]*dto.ProductDTO, 0)
	for _, row := range rows {
		if rowString(row, m_product.ColProviderID) != providerID {
			continue
		}
		out = append(out, productFromRow(row))
	}
	return out, nil
}

func (rm *MemoryReadModel) ListPublishedProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	rows := rm.Store.Rows(m_product.TableName)
	sortByCreatedAt(rows, m_product.ColCreatedAt, m_product.ColProductID)

	out := make([]*dto.ProductDTO, 0)
	for _, row := range rows {
		if !rowBool(row, m_product.ColPublished) {
			continue
		}
		out = append(out, productFromRow(row))
	}
	return out, nil
}

func (rm *MemoryReadModel) ListVariants(ctx context.Context, productID string) ([]*dto.VariantDTO, error) {
	rows := rm.Store.Rows(m_variant.TableName)
	sortByCreatedAt(rows, m_variant.ColCreatedAt, m_variant.ColVariantID)

	out := make([]*dto.VariantDTO, 0)
	for _, row := range rows {
		if rowString(row, m_variant.ColProductID) != productID {
			continue
		}
		out = append(out, variantFromRow(row))
	}
	return out, nil
}

func (rm *MemoryReadModel) GetVariant(ctx context.Context, variantID string) (*dto.VariantDTO, error) {
	row := rm.Store.Row(m_variant.TableName, variantID)
	if row == nil {
		return nil, domain.ErrVariantNotFound
	}
	return variantFromRow(row), nil
}

func (rm *MemoryReadModel) GetContract(ctx context.Context, contractID string) (*dto.ContractDTO, error) {
	row := rm.Store.Row(m_contract.TableName, contractID)
	if row == nil {
		return nil, domain.ErrContractNotFound
	}
	return contractFromRow(row), nil
}

func (rm *MemoryReadModel) GetBatch(ctx context.Context, batchID string) (*dto.BatchDTO, error) {
	row := rm.Store.Row(m_batch.TableName, batchID)
	if row == nil {
		return nil, domain.ErrBatchNotFound
	}
	return batchFromRow(row), nil
}

func (rm *MemoryReadModel) GetMarkup(ctx context.Context, dealerID string) (*dto.MarkupDTO, error) {
	row := rm.Store.Row(m_markup.TableName, dealerID)
	if row == nil {
		return nil, nil
	}
	return &dto.MarkupDTO{
		DealerID:  rowString(row, m_markup.ColDealerID),
		Percent:   rowFloat(row, m_markup.ColPercent),
		UpdatedBy: rowString(row, m_markup.ColUpdatedBy),
		UpdatedAt: rowTimeStr(row, m_markup.ColUpdatedAt),
	}, nil
}

func productFromRow(row map[string]interface{}) *dto.ProductDTO {
	return &dto.ProductDTO{
		ProductID:  rowString(row, m_product.ColProductID),
		ProviderID: rowString(row, m_product.ColProviderID),
		Name:       rowString(row, m_product.ColName),
		Coverage:   rowString(row, m_product.ColCoverage),
		Exclusions: rowString(row, m_product.ColExclusions),

		TermMonths:      rowString(row, m_product.ColTermMonths),
		TermKm:          rowString(row, m_product.ColTermKm),
		DeductibleCents: rowIntPtr(row, m_product.ColDeductibleCents),

		MaxVehicleAgeYears: rowIntPtr(row, m_product.ColMaxAgeYears),
		MaxMileageKm:       rowIntPtr(row, m_product.ColMaxMileageKm),
		MakeAllowlist:      rowStrings(row, m_product.ColMakeAllowlist),
		ModelAllowlist:     rowStrings(row, m_product.ColModelAllowlist),
		TrimAllowlist:      rowStrings(row, m_product.ColTrimAllowlist),

		BaseCostCents: rowIntPtr(row, m_product.ColBaseCostCents),
		Published:     rowBool(row, m_product.ColPublished),

		CreatedAt: rowTimeStr(row, m_product.ColCreatedAt),
		UpdatedAt: rowTimeStr(row, m_product.ColUpdatedAt),
	}
}

func variantFromRow(row map[string]interface{}) *dto.VariantDTO {
	return &dto.VariantDTO{
		VariantID: rowString(row, m_variant.ColVariantID),
		ProductID: rowString(row, m_variant.ColProductID),

		TermMonths: rowString(row, m_variant.ColTermMonths),
		TermKm:     rowString(row, m_variant.ColTermKm),

		MinKm:         rowInt(row, m_variant.ColMinKm),
		MaxKm:         rowIntPtr(row, m_variant.ColMaxKm),
		RequiredClass: rowString(row, m_variant.ColRequiredClass),

		ClaimLimitCents: rowIntPtr(row, m_variant.ColClaimLimitCents),
		DeductibleCents: rowInt(row, m_variant.ColDeductibleCents),
		DealerCostCents: rowIntPtr(row, m_variant.ColDealerCostCents),
		BasePriceCents:  rowInt(row, m_variant.ColBasePriceCents),

		IsDefault: rowBool(row, m_variant.ColIsDefault),
		CreatedAt: rowTimeStr(row, m_variant.ColCreatedAt),
	}
}

func contractFromRow(row map[string]interface{}) *dto.ContractDTO {
	id := rowString(row, m_contract.ColContractID)
	return &dto.ContractDTO{
		ContractID:     id,
		ContractNumber: rowString(row, m_contract.ColContractNumber),
		DealerID:       rowString(row, m_contract.ColDealerID),
		CreatedBy:      rowString(row, m_contract.ColCreatedBy),

		CustomerName:  rowString(row, m_contract.ColCustomerName),
		CustomerEmail: rowString(row, m_contract.ColCustomerEmail),
		CustomerPhone: rowString(row, m_contract.ColCustomerPhone),

		VIN:          rowString(row, m_contract.ColVIN),
		ModelYear:    rowInt(row, m_contract.ColModelYear),
		Make:         rowString(row, m_contract.ColMake),
		Model:        rowString(row, m_contract.ColModel),
		Trim:         rowString(row, m_contract.ColTrim),
		BodyClass:    rowString(row, m_contract.ColBodyClass),
		Engine:       rowString(row, m_contract.ColEngine),
		Transmission: rowString(row, m_contract.ColTransmission),
		MileageKm:    rowIntPtr(row, m_contract.ColMileageKm),
		VehicleClass: rowString(row, m_contract.ColVehicleClass),

		ProductID: rowStrPtr(row, m_contract.ColProductID),
		VariantID: rowStrPtr(row, m_contract.ColVariantID),

		SnapTermMonths:      rowStrPtr(row, m_contract.ColSnapTermMonths),
		SnapTermKm:          rowStrPtr(row, m_contract.ColSnapTermKm),
		SnapDeductibleCents: rowIntPtr(row, m_contract.ColSnapDeductibleCents),
		SnapBasePriceCents:  rowIntPtr(row, m_contract.ColSnapBasePriceCents),
		SnapDealerCostCents: rowIntPtr(row, m_contract.ColSnapDealerCostCents),

		Status: rowString(row, m_contract.ColStatus),

		SoldBy:      rowStrPtr(row, m_contract.ColSoldBy),
		SoldByEmail: rowStrPtr(row, m_contract.ColSoldByEmail),
		SoldAt:      rowTimeStr(row, m_contract.ColSoldAt),

		RemittedBy:      rowStrPtr(row, m_contract.ColRemittedBy),
		RemittedByEmail: rowStrPtr(row, m_contract.ColRemittedByEmail),
		RemittedAt:      rowTimeStr(row, m_contract.ColRemittedAt),

		PaidBy:      rowStrPtr(row, m_contract.ColPaidBy),
		PaidByEmail: rowStrPtr(row, m_contract.ColPaidByEmail),
		PaidAt:      rowTimeStr(row, m_contract.ColPaidAt),

		CreatedAt: rowTimeStr(row, m_contract.ColCreatedAt),
		UpdatedAt: rowTimeStr(row, m_contract.ColUpdatedAt),

		WarrantyID: domain.DeriveWarrantyID(id),
	}
}

func batchFromRow(row map[string]interface{}) *dto.BatchDTO {
	return &dto.BatchDTO{
		BatchID:     rowString(row, m_batch.ColBatchID),
		BatchNumber: rowString(row, m_batch.ColBatchNumber),
		DealerID:    rowString(row, m_batch.ColDealerID),

		ContractIDs: rowStrings(row, m_batch.ColContractIDs),

		SubtotalCents: rowInt(row, m_batch.ColSubtotalCents),
		TaxCents:      rowInt(row, m_batch.ColTaxCents),
		TotalCents:    rowInt(row, m_batch.ColTotalCents),

		BatchStatus:      rowString(row, m_batch.ColBatchStatus),
		PaymentStatus:    rowString(row, m_batch.ColPaymentStatus),
		RemittanceStatus: rowString(row, m_batch.ColRemittanceStatus),

		PaymentMethod:    rowStrPtr(row, m_batch.ColPaymentMethod),
		PaymentReference: rowStrPtr(row, m_batch.ColPaymentReference),
		PaymentDate:      rowTimeStr(row, m_batch.ColPaymentDate),

		SubmittedBy:      rowStrPtr(row, m_batch.ColSubmittedBy),
		SubmittedByEmail: rowStrPtr(row, m_batch.ColSubmittedByEmail),
		SubmittedAt:      rowTimeStr(row, m_batch.ColSubmittedAt),

		ReviewedBy:      rowStrPtr(row, m_batch.ColReviewedBy),
		ReviewedByEmail: rowStrPtr(row, m_batch.ColReviewedByEmail),
		ReviewedAt:      rowTimeStr(row, m_batch.ColReviewedAt),

		PaidBy:      rowStrPtr(row, m_batch.ColPaidBy),
		PaidByEmail: rowStrPtr(row, m_batch.ColPaidByEmail),
		PaidAt:      rowTimeStr(row, m_batch.ColPaidAt),

		CreatedAt: rowTimeStr(row, m_batch.ColCreatedAt),
		UpdatedAt: rowTimeStr(row, m_batch.ColUpdatedAt),
	}
}

// sortByCreatedAt orders rows by creation time with the primary key as a
// tiebreaker. MemoryStore.Rows iterates a map, so without the key column two
// rows created in the same instant would come back in random order and
// stored-order selection would flap between calls.
func sortByCreatedAt(rows []map[string]interface{}, col, keyCol string) {
	sort.Slice(rows, func(i, j int) bool {
		ti, _ := rows[i][col].(time.Time)
		tj, _ := rows[j][col].(time.Time)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return rowString(rows[i], keyCol) < rowString(rows[j], keyCol)
	})
}

func rowString(row map[string]interface{}, col string) string {
	s, _ := row[col].(string)
	return s
}

func rowStrPtr(row map[string]interface{}, col string) *string {
	s, ok := row[col].(string)
	if !ok {
		return nil
	}
	return &s
}

func rowInt(row map[string]interface{}, col string) int64 {
	n, _ := row[col].(int64)
	return n
}

func rowIntPtr(row map[string]interface{}, col string) *int64 {
	n, ok := row[col].(int64)
	if !ok {
		return nil
	}
	return &n
}

func rowFloat(row map[string]interface{}, col string) float64 {
	f, _ := row[col].(float64)
	return f
}

func rowBool(row map[string]interface{}, col string) bool {
	b, _ := row[col].(bool)
	return b
}

func rowStrings(row map[string]interface{}, col string) []string {
	v, _ := row[col].([]string)
	return v
}

func rowTimeStr(row map[string]interface{}, col string) *string {
	t, ok := row[col].(time.Time)
	if !ok {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
