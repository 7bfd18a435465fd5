package queries

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
)

// SpannerReadModel is the infrastructure adapter satisfying
// contracts.ReadModel against Cloud Spanner. Missing rows come back as the
// domain's NotFound sentinels so usecases never see storage errors.
type SpannerReadModel struct {
	Client *spanner.Client
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{Client: client}
}

const productColumns = `product_id, provider_id, name, coverage, exclusions,
       term_months, term_km, deductible_cents,
       max_vehicle_age_years, max_mileage_km,
       make_allowlist, model_allowlist, trim_allowlist,
       base_cost_cents, published, created_at, updated_at`

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + productColumns + ` FROM products WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanProduct(row)
}

func (rm *SpannerReadModel) ListProductsByProvider(ctx context.Context, providerID string) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + productColumns + ` FROM products WHERE provider_id = @provider ORDER BY created_at ASC, product_id ASC`,
		Params: map[string]interface{}{"provider": providerID},
	}
	return rm.listProducts(ctx, stmt)
}

func (rm *SpannerReadModel) ListPublishedProducts(ctx context.Context) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + productColumns + ` FROM products WHERE published = TRUE ORDER BY created_at ASC, product_id ASC`,
	}
	return rm.listProducts(ctx, stmt)
}

func (rm *SpannerReadModel) listProducts(ctx context.Context, stmt spanner.Statement) ([]*dto.ProductDTO, error) {
	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.ProductDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		d, err := scanProduct(row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
}

func scanProduct(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id, providerID, name   string
		coverage, exclusions   spanner.NullString
		termMonths, termKm     spanner.NullString
		deductible             spanner.NullInt64
		maxAge, maxMileage     spanner.NullInt64
		makes, models, trims   []string
		baseCost               spanner.NullInt64
		published              bool
		createdAt, updatedAt   time.Time
	)
	if err := row.Columns(&id, &providerID, &name, &coverage, &exclusions,
		&termMonths, &termKm, &deductible,
		&maxAge, &maxMileage,
		&makes, &models, &trims,
		&baseCost, &published, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &dto.ProductDTO{
		ProductID:  id,
		ProviderID: providerID,
		Name:       name,
		Coverage:   strOr(coverage, ""),
		Exclusions: strOr(exclusions, ""),

		TermMonths:      strOr(termMonths, ""),
		TermKm:          strOr(termKm, ""),
		DeductibleCents: intPtr(deductible),

		MaxVehicleAgeYears: intPtr(maxAge),
		MaxMileageKm:       intPtr(maxMileage),
		MakeAllowlist:      makes,
		ModelAllowlist:     models,
		TrimAllowlist:      trims,

		BaseCostCents: intPtr(baseCost),
		Published:     published,

		CreatedAt: timeStr(createdAt),
		UpdatedAt: timeStr(updatedAt),
	}, nil
}

const variantColumns = `variant_id, product_id, term_months, term_km,
       min_km, max_km, required_class,
       claim_limit_cents, deductible_cents, dealer_cost_cents, base_price_cents,
       is_default, created_at`

func (rm *SpannerReadModel) ListVariants(ctx context.Context, productID string) ([]*dto.VariantDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + variantColumns + ` FROM pricing_variants WHERE product_id = @product ORDER BY created_at ASC, variant_id ASC`,
		Params: map[string]interface{}{"product": productID},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]*dto.VariantDTO, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		d, err := scanVariant(row)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
}

func (rm *SpannerReadModel) GetVariant(ctx context.Context, variantID string) (*dto.VariantDTO, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT ` + variantColumns + ` FROM pricing_variants WHERE variant_id = @id`,
		Params: map[string]interface{}{"id": variantID},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrVariantNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanVariant(row)
}

func scanVariant(row *spanner.Row) (*dto.VariantDTO, error) {
	var (
		id, productID      string
		termMonths, termKm spanner.NullString
		minKm              int64
		maxKm              spanner.NullInt64
		requiredClass      spanner.NullString
		claimLimit         spanner.NullInt64
		deductible         int64
		dealerCost         spanner.NullInt64
		basePrice          int64
		isDefault          bool
		createdAt          time.Time
	)
	if err := row.Columns(&id, &productID, &termMonths, &termKm,
		&minKm, &maxKm, &requiredClass,
		&claimLimit, &deductible, &dealerCost, &basePrice,
		&isDefault, &createdAt); err != nil {
		return nil, err
	}

	return &dto.VariantDTO{
		VariantID: id,
		ProductID: productID,

		TermMonths: strOr(termMonths, ""),
		TermKm:     strOr(termKm, ""),

		MinKm:         minKm,
		MaxKm:         intPtr(maxKm),
		RequiredClass: strOr(requiredClass, ""),

		ClaimLimitCents: intPtr(claimLimit),
		DeductibleCents: deductible,
		DealerCostCents: intPtr(dealerCost),
		BasePriceCents:  basePrice,

		IsDefault: isDefault,
		CreatedAt: timeStr(createdAt),
	}, nil
}

func (rm *SpannerReadModel) GetContract(ctx context.Context, contractID string) (*dto.ContractDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT contract_id, contract_number, dealer_id, created_by,
		             customer_name, customer_email, customer_phone,
		             vin, model_year, make, model, trim, body_class, engine, transmission,
		             mileage_km, vehicle_class,
		             product_id, variant_id,
		             snap_term_months, snap_term_km, snap_deductible_cents,
		             snap_base_price_cents, snap_dealer_cost_cents,
		             status,
		             sold_by, sold_by_email, sold_at,
		             remitted_by, remitted_by_email, remitted_at,
		             paid_by, paid_by_email, paid_at,
		             created_at, updated_at
		      FROM contracts
		      WHERE contract_id = @id`,
		Params: map[string]interface{}{"id": contractID},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		id, contractNumber, dealerID, createdBy        string
		customerName, customerEmail, customerPhone     spanner.NullString
		vin                                            spanner.NullString
		modelYear                                      int64
		mk, model, trim, bodyClass, engine, trans      spanner.NullString
		mileage                                        spanner.NullInt64
		vehicleClass                                   spanner.NullString
		productID, variantID                           spanner.NullString
		snapMonths, snapKm                             spanner.NullString
		snapDeductible, snapBasePrice, snapDealerCost  spanner.NullInt64
		status                                         string
		soldBy, soldByEmail                            spanner.NullString
		soldAt                                         spanner.NullTime
		remittedBy, remittedByEmail                    spanner.NullString
		remittedAt                                     spanner.NullTime
		paidBy, paidByEmail                            spanner.NullString
		paidAt                                         spanner.NullTime
		createdAt, updatedAt                           time.Time
	)
	if err := row.Columns(&id, &contractNumber, &dealerID, &createdBy,
		&customerName, &customerEmail, &customerPhone,
		&vin, &modelYear, &mk, &model, &trim, &bodyClass, &engine, &trans,
		&mileage, &vehicleClass,
		&productID, &variantID,
		&snapMonths, &snapKm, &snapDeductible, &snapBasePrice, &snapDealerCost,
		&status,
		&soldBy, &soldByEmail, &soldAt,
		&remittedBy, &remittedByEmail, &remittedAt,
		&paidBy, &paidByEmail, &paidAt,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &dto.ContractDTO{
		ContractID:     id,
		ContractNumber: contractNumber,
		DealerID:       dealerID,
		CreatedBy:      createdBy,

		CustomerName:  strOr(customerName, ""),
		CustomerEmail: strOr(customerEmail, ""),
		CustomerPhone: strOr(customerPhone, ""),

		VIN:          strOr(vin, ""),
		ModelYear:    modelYear,
		Make:         strOr(mk, ""),
		Model:        strOr(model, ""),
		Trim:         strOr(trim, ""),
		BodyClass:    strOr(bodyClass, ""),
		Engine:       strOr(engine, ""),
		Transmission: strOr(trans, ""),
		MileageKm:    intPtr(mileage),
		VehicleClass: strOr(vehicleClass, ""),

		ProductID: strPtr(productID),
		VariantID: strPtr(variantID),

		SnapTermMonths:      strPtr(snapMonths),
		SnapTermKm:          strPtr(snapKm),
		SnapDeductibleCents: intPtr(snapDeductible),
		SnapBasePriceCents:  intPtr(snapBasePrice),
		SnapDealerCostCents: intPtr(snapDealerCost),

		Status: status,

		SoldBy:      strPtr(soldBy),
		SoldByEmail: strPtr(soldByEmail),
		SoldAt:      timePtrStr(soldAt),

		RemittedBy:      strPtr(remittedBy),
		RemittedByEmail: strPtr(remittedByEmail),
		RemittedAt:      timePtrStr(remittedAt),

		PaidBy:      strPtr(paidBy),
		PaidByEmail: strPtr(paidByEmail),
		PaidAt:      timePtrStr(paidAt),

		CreatedAt: timeStr(createdAt),
		UpdatedAt: timeStr(updatedAt),

		WarrantyID: domain.DeriveWarrantyID(id),
	}, nil
}

func (rm *SpannerReadModel) GetBatch(ctx context.Context, batchID string) (*dto.BatchDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT batch_id, batch_number, dealer_id, contract_ids,
		             subtotal_cents, tax_cents, total_cents,
		             batch_status, payment_status, remittance_status,
		             payment_method, payment_reference, payment_date,
		             submitted_by, submitted_by_email, submitted_at,
		             reviewed_by, reviewed_by_email, reviewed_at,
		             paid_by, paid_by_email, paid_at,
		             created_at, updated_at
		      FROM remittance_batches
		      WHERE batch_id = @id`,
		Params: map[string]interface{}{"id": batchID},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrBatchNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		id, batchNumber, dealerID            string
		contractIDs                          []string
		subtotal, tax, total                 int64
		batchStatus, payStatus, remitStatus  string
		payMethod, payReference              spanner.NullString
		payDate                              spanner.NullTime
		submittedBy, submittedByEmail        spanner.NullString
		submittedAt                          spanner.NullTime
		reviewedBy, reviewedByEmail          spanner.NullString
		reviewedAt                           spanner.NullTime
		paidBy, paidByEmail                  spanner.NullString
		paidAt                               spanner.NullTime
		createdAt, updatedAt                 time.Time
	)
	if err := row.Columns(&id, &batchNumber, &dealerID, &contractIDs,
		&subtotal, &tax, &total,
		&batchStatus, &payStatus, &remitStatus,
		&payMethod, &payReference, &payDate,
		&submittedBy, &submittedByEmail, &submittedAt,
		&reviewedBy, &reviewedByEmail, &reviewedAt,
		&paidBy, &paidByEmail, &paidAt,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &dto.BatchDTO{
		BatchID:     id,
		BatchNumber: batchNumber,
		DealerID:    dealerID,

		ContractIDs: contractIDs,

		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    total,

		BatchStatus:      batchStatus,
		PaymentStatus:    payStatus,
		RemittanceStatus: remitStatus,

		PaymentMethod:    strPtr(payMethod),
		PaymentReference: strPtr(payReference),
		PaymentDate:      timePtrStr(payDate),

		SubmittedBy:      strPtr(submittedBy),
		SubmittedByEmail: strPtr(submittedByEmail),
		SubmittedAt:      timePtrStr(submittedAt),

		ReviewedBy:      strPtr(reviewedBy),
		ReviewedByEmail: strPtr(reviewedByEmail),
		ReviewedAt:      timePtrStr(reviewedAt),

		PaidBy:      strPtr(paidBy),
		PaidByEmail: strPtr(paidByEmail),
		PaidAt:      timePtrStr(paidAt),

		CreatedAt: timeStr(createdAt),
		UpdatedAt: timeStr(updatedAt),
	}, nil
}

func (rm *SpannerReadModel) GetMarkup(ctx context.Context, dealerID string) (*dto.MarkupDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT dealer_id, percent, updated_by, updated_at
		      FROM dealer_markups
		      WHERE dealer_id = @id`,
		Params: map[string]interface{}{"id": dealerID},
	}

	iter := rm.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		// no markup configured is not an error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var (
		id, updatedBy string
		percent       float64
		updatedAt     time.Time
	)
	if err := row.Columns(&id, &percent, &updatedBy, &updatedAt); err != nil {
		return nil, err
	}

	return &dto.MarkupDTO{
		DealerID:  id,
		Percent:   percent,
		UpdatedBy: updatedBy,
		UpdatedAt: timeStr(updatedAt),
	}, nil
}

func strOr(v spanner.NullString, fallback string) string {
	if v.Valid {
		return v.StringVal
	}
	return fallback
}

func strPtr(v spanner.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.StringVal
	return &s
}

func intPtr(v spanner.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func timeStr(t time.Time) *string {
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func timePtrStr(t spanner.NullTime) *string {
	if !t.Valid {
		return nil
	}
	return timeStr(t.Time)
}
