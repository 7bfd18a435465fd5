package repo

import (
	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/models/m_contract"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// ContractRepo builds contract mutations and status guards.
type ContractRepo struct{}

func NewContractRepo() *ContractRepo {
	return &ContractRepo{}
}

func buildContractInsertValues(c *domain.Contract) map[string]interface{} {
	v := c.Vehicle()
	cust := c.Customer()

	values := map[string]interface{}{
		m_contract.ColContractID:     c.ID(),
		m_contract.ColContractNumber: c.ContractNumber(),
		m_contract.ColDealerID:       c.DealerID(),
		m_contract.ColCreatedBy:      c.CreatedByID(),

		m_contract.ColCustomerName:  cust.Name,
		m_contract.ColCustomerEmail: cust.Email,
		m_contract.ColCustomerPhone: cust.Phone,

		m_contract.ColVIN:          v.VIN,
		m_contract.ColModelYear:    int64(v.ModelYear),
		m_contract.ColMake:         v.Make,
		m_contract.ColModel:        v.Model,
		m_contract.ColTrim:         v.Trim,
		m_contract.ColBodyClass:    v.BodyClass,
		m_contract.ColEngine:       v.Engine,
		m_contract.ColTransmission: v.Transmission,
		m_contract.ColVehicleClass: v.VehicleClass,

		m_contract.ColStatus:    string(c.Status()),
		m_contract.ColCreatedAt: c.CreatedAt().UTC(),
		m_contract.ColUpdatedAt: c.UpdatedAt().UTC(),
	}

	values[m_contract.ColMileageKm] = nilOrInt(v.MileageKm)
	values[m_contract.ColProductID] = nilOrStr(c.ProductID())
	values[m_contract.ColVariantID] = nilOrStr(c.VariantID())

	setSnapshotValues(values, c.Snapshot())
	setStampValues(values, m_contract.ColSoldBy, m_contract.ColSoldByEmail, m_contract.ColSoldAt, c.SoldStamp())
	setStampValues(values, m_contract.ColRemittedBy, m_contract.ColRemittedByEmail, m_contract.ColRemittedAt, c.RemittedStamp())
	setStampValues(values, m_contract.ColPaidBy, m_contract.ColPaidByEmail, m_contract.ColPaidAt, c.PaidStamp())

	return values
}

func setSnapshotValues(values map[string]interface{}, snap *domain.PricingSnapshot) {
	if snap == nil {
		values[m_contract.ColSnapTermMonths] = nil
		values[m_contract.ColSnapTermKm] = nil
		values[m_contract.ColSnapDeductibleCents] = nil
		values[m_contract.ColSnapBasePriceCents] = nil
		values[m_contract.ColSnapDealerCostCents] = nil
		return
	}
	values[m_contract.ColSnapTermMonths] = snap.TermMonths.Encode()
	values[m_contract.ColSnapTermKm] = snap.TermKm.Encode()
	values[m_contract.ColSnapDeductibleCents] = snap.DeductibleCents
	values[m_contract.ColSnapBasePriceCents] = snap.BasePriceCents
	values[m_contract.ColSnapDealerCostCents] = nilOrInt(snap.DealerCostCents)
}

func setStampValues(values map[string]interface{}, byCol, emailCol, atCol string, stamp domain.TransitionStamp) {
	if stamp.IsZero() {
		values[byCol] = nil
		values[emailCol] = nil
		values[atCol] = nil
		return
	}
	values[byCol] = stamp.ByID
	values[emailCol] = stamp.ByEmail
	values[atCol] = stamp.At.UTC()
}

func nilOrStr(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func (r *ContractRepo) InsertMut(c *domain.Contract) *commitplan.Mutation {
	if c == nil {
		return nil
	}
	return m_contract.InsertMutation(buildContractInsertValues(c))
}

// UpdateMut builds an update mutation from the aggregate's ChangeTracker.
func (r *ContractRepo) UpdateMut(c *domain.Contract) *commitplan.Mutation {
	if c == nil || c.Changes() == nil || !c.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if c.Changes().Dirty(domain.FieldContractNumber) {
		updates[m_contract.ColContractNumber] = c.ContractNumber()
	}
	if c.Changes().Dirty(domain.FieldCustomer) {
		cust := c.Customer()
		updates[m_contract.ColCustomerName] = cust.Name
		updates[m_contract.ColCustomerEmail] = cust.Email
		updates[m_contract.ColCustomerPhone] = cust.Phone
	}
	if c.Changes().Dirty(domain.FieldVehicle) {
		v := c.Vehicle()
		updates[m_contract.ColVIN] = v.VIN
		updates[m_contract.ColModelYear] = int64(v.ModelYear)
		updates[m_contract.ColMake] = v.Make
		updates[m_contract.ColModel] = v.Model
		updates[m_contract.ColTrim] = v.Trim
		updates[m_contract.ColBodyClass] = v.BodyClass
		updates[m_contract.ColEngine] = v.Engine
		updates[m_contract.ColTransmission] = v.Transmission
		updates[m_contract.ColVehicleClass] = v.VehicleClass
		updates[m_contract.ColMileageKm] = nilOrInt(v.MileageKm)
	}
	if c.Changes().Dirty(domain.FieldSelectedOffer) {
		updates[m_contract.ColProductID] = nilOrStr(c.ProductID())
		updates[m_contract.ColVariantID] = nilOrStr(c.VariantID())
	}
	if c.Changes().Dirty(domain.FieldPricingSnapshot) {
		setSnapshotValues(updates, c.Snapshot())
	}
	if c.Changes().Dirty(domain.FieldContractStatus) {
		updates[m_contract.ColStatus] = string(c.Status())
	}
	if c.Changes().Dirty(domain.FieldSoldStamp) {
		setStampValues(updates, m_contract.ColSoldBy, m_contract.ColSoldByEmail, m_contract.ColSoldAt, c.SoldStamp())
	}
	if c.Changes().Dirty(domain.FieldRemittedStamp) {
		setStampValues(updates, m_contract.ColRemittedBy, m_contract.ColRemittedByEmail, m_contract.ColRemittedAt, c.RemittedStamp())
	}
	if c.Changes().Dirty(domain.FieldPaidStamp) {
		setStampValues(updates, m_contract.ColPaidBy, m_contract.ColPaidByEmail, m_contract.ColPaidAt, c.PaidStamp())
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_contract.ColUpdatedAt] = c.UpdatedAt().UTC()
	return m_contract.UpdateMutation(c.ID(), updates)
}

func (r *ContractRepo) DeleteMut(contractID string) *commitplan.Mutation {
	if contractID == "" {
		return nil
	}
	return m_contract.DeleteMutation(contractID)
}

func (r *ContractRepo) StatusGuard(contractID string, expect domain.ContractStatus) *commitplan.Guard {
	return m_contract.StatusGuard(contractID, string(expect))
}
