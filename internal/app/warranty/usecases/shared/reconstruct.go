package shared

import (
	"fmt"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/dto"
	"github.com/clearlane/warranty-service/internal/app/warranty/utils"
)

// Reconstruction adapters from read-side DTOs back into aggregates. Kept in
// one place so every interactor rehydrates state the same way.

func ReconstructProduct(d *dto.ProductDTO) (*domain.Product, error) {
	months, err := domain.ParseTerm(d.TermMonths)
	if err != nil {
		return nil, fmt.Errorf("product %s term_months: %w", d.ProductID, err)
	}
	km, err := domain.ParseTerm(d.TermKm)
	if err != nil {
		return nil, fmt.Errorf("product %s term_km: %w", d.ProductID, err)
	}

	return domain.ReconstructProduct(
		d.ProductID, d.ProviderID, d.Name, d.Coverage, d.Exclusions,
		months, km,
		d.DeductibleCents, d.MaxVehicleAgeYears, d.MaxMileageKm,
		d.MakeAllowlist, d.ModelAllowlist, d.TrimAllowlist,
		d.BaseCostCents,
		d.Published,
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
	), nil
}

func ReconstructVariant(d *dto.VariantDTO) (*domain.PricingVariant, error) {
	months, err := domain.ParseTerm(d.TermMonths)
	if err != nil {
		return nil, fmt.Errorf("variant %s term_months: %w", d.VariantID, err)
	}
	km, err := domain.ParseTerm(d.TermKm)
	if err != nil {
		return nil, fmt.Errorf("variant %s term_km: %w", d.VariantID, err)
	}

	return domain.ReconstructPricingVariant(
		d.VariantID, d.ProductID,
		months, km,
		d.MinKm, d.MaxKm,
		d.RequiredClass,
		d.ClaimLimitCents,
		d.DeductibleCents,
		d.DealerCostCents,
		d.BasePriceCents,
		d.IsDefault,
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
	), nil
}

func ReconstructContract(d *dto.ContractDTO) (*domain.Contract, error) {
	status, err := domain.ParseContractStatus(d.Status)
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", d.ContractID, err)
	}

	vehicle := domain.VehicleAttributes{
		VIN:          d.VIN,
		ModelYear:    int(d.ModelYear),
		Make:         d.Make,
		Model:        d.Model,
		Trim:         d.Trim,
		BodyClass:    d.BodyClass,
		Engine:       d.Engine,
		Transmission: d.Transmission,
		MileageKm:    d.MileageKm,
		VehicleClass: d.VehicleClass,
	}
	customer := domain.Customer{
		Name:  d.CustomerName,
		Email: d.CustomerEmail,
		Phone: d.CustomerPhone,
	}

	var snap *domain.PricingSnapshot
	if d.SnapTermMonths != nil {
		months, err := domain.ParseTerm(*d.SnapTermMonths)
		if err != nil {
			return nil, fmt.Errorf("contract %s snapshot term_months: %w", d.ContractID, err)
		}
		km := domain.UnsetTerm()
		if d.SnapTermKm != nil {
			km, err = domain.ParseTerm(*d.SnapTermKm)
			if err != nil {
				return nil, fmt.Errorf("contract %s snapshot term_km: %w", d.ContractID, err)
			}
		}
		snap = &domain.PricingSnapshot{
			TermMonths:      months,
			TermKm:          km,
			DeductibleCents: int64OrZero(d.SnapDeductibleCents),
			BasePriceCents:  int64OrZero(d.SnapBasePriceCents),
			DealerCostCents: d.SnapDealerCostCents,
		}
	}

	return domain.ReconstructContract(
		d.ContractID, d.ContractNumber, d.DealerID, d.CreatedBy,
		customer, vehicle,
		d.ProductID, d.VariantID,
		snap,
		status,
		stampFrom(d.SoldBy, d.SoldByEmail, d.SoldAt),
		stampFrom(d.RemittedBy, d.RemittedByEmail, d.RemittedAt),
		stampFrom(d.PaidBy, d.PaidByEmail, d.PaidAt),
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
	), nil
}

func ReconstructBatch(d *dto.BatchDTO) (*domain.RemittanceBatch, error) {
	batchStatus, err := domain.ParseBatchStatus(d.BatchStatus)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", d.BatchID, err)
	}
	paymentStatus, err := domain.ParsePaymentStatus(d.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", d.BatchID, err)
	}
	remitStatus, err := domain.ParseRemittanceStatus(d.RemittanceStatus)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", d.BatchID, err)
	}

	var payment *domain.PaymentMeta
	if d.PaymentMethod != nil {
		payment = &domain.PaymentMeta{
			Method:    *d.PaymentMethod,
			Reference: strOrEmpty(d.PaymentReference),
			PaidDate:  utils.TimeOrZero(utils.ParseTimePtr(d.PaymentDate)),
		}
	}

	return domain.ReconstructRemittanceBatch(
		d.BatchID, d.BatchNumber, d.DealerID,
		append([]string{}, d.ContractIDs...),
		d.SubtotalCents, d.TaxCents, d.TotalCents,
		batchStatus, paymentStatus, remitStatus,
		payment,
		stampFrom(d.SubmittedBy, d.SubmittedByEmail, d.SubmittedAt),
		stampFrom(d.ReviewedBy, d.ReviewedByEmail, d.ReviewedAt),
		stampFrom(d.PaidBy, d.PaidByEmail, d.PaidAt),
		utils.TimeOrZero(utils.ParseTimePtr(d.CreatedAt)),
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
	), nil
}

func ReconstructMarkup(d *dto.MarkupDTO) *domain.DealerMarkup {
	if d == nil {
		return nil
	}
	return domain.ReconstructDealerMarkup(
		d.DealerID,
		d.Percent,
		d.UpdatedBy,
		utils.TimeOrZero(utils.ParseTimePtr(d.UpdatedAt)),
	)
}

func stampFrom(by, email, at *string) domain.TransitionStamp {
	t := utils.ParseTimePtr(at)
	return domain.TransitionStamp{
		ByID:    strOrEmpty(by),
		ByEmail: strOrEmpty(email),
		At:      utils.TimeOrZero(t),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func int64OrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
