package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/models/m_contract"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

func draftContract(t *testing.T, now time.Time) *domain.Contract {
	t.Helper()

	mileage := int64(42000)
	vehicle := domain.VehicleAttributes{
		VIN:       "1HGCM82633A004352",
		ModelYear: 2021,
		Make:      "honda",
		Model:     "accord",
		MileageKm: &mileage,
	}
	customer := domain.Customer{Name: "Dana Reyes", Email: "dana@example.com", Phone: "555-0101"}
	actor := domain.Actor{ID: "user-1", Email: "dana@example.com", Role: domain.RoleDealer}

	c, err := domain.NewContract("ctr-1", "CN-1001", "dealer-1", customer, vehicle, actor, now)
	require.NoError(t, err)
	return c
}

// TestContractInsertMut_Draft verifies the insert map for a fresh draft:
// snapshot and stamp columns must be present and nil.
func TestContractInsertMut_Draft(t *testing.T) {
	now := time.Now().UTC()
	c := draftContract(t, now)

	values := buildContractInsertValues(c)
	require.NotNil(t, values)

	assert.Equal(t, "ctr-1", values[m_contract.ColContractID])
	assert.Equal(t, "dealer-1", values[m_contract.ColDealerID])
	assert.Equal(t, string(domain.ContractStatusDraft), values[m_contract.ColStatus])
	assert.Equal(t, int64(42000), values[m_contract.ColMileageKm])

	// No offer selected yet.
	assert.Nil(t, values[m_contract.ColProductID])
	assert.Nil(t, values[m_contract.ColVariantID])
	for _, col := range []string{
		m_contract.ColSnapTermMonths,
		m_contract.ColSnapTermKm,
		m_contract.ColSnapDeductibleCents,
		m_contract.ColSnapBasePriceCents,
		m_contract.ColSnapDealerCostCents,
		m_contract.ColSoldBy,
		m_contract.ColSoldAt,
		m_contract.ColRemittedBy,
		m_contract.ColPaidBy,
	} {
		v, ok := values[col]
		require.True(t, ok, "expected key %s in insert map", col)
		assert.Nil(t, v, col)
	}

	mut := NewContractRepo().InsertMut(c)
	require.NotNil(t, mut)
	assert.Equal(t, m_contract.TableName, mut.Table)
	assert.Equal(t, commitplan.OpInsert, mut.Op)
	assert.Equal(t, "ctr-1", mut.Key)
}

// TestContractUpdateMut_SelectOffer verifies that selecting an offer dirties
// only the offer and snapshot columns.
func TestContractUpdateMut_SelectOffer(t *testing.T) {
	now := time.Now().UTC()
	c := draftContract(t, now)

	p, err := domain.NewProduct("prod-1", "provider-1", "Powertrain Plus", "engine and transmission", "", now)
	require.NoError(t, err)
	base := int64(50000)
	require.NoError(t, p.SetBaseCost(&base, now))
	require.NoError(t, p.Publish(now))

	maxKm := int64(100000)
	cost := int64(42000)
	v, err := domain.NewPricingVariant(
		"var-1", "prod-1",
		domain.TermOf(36), domain.UnlimitedTerm(),
		0, &maxKm,
		"", nil,
		10000,
		&cost,
		55000,
		false,
		now,
	)
	require.NoError(t, err)

	require.NoError(t, c.SelectOffer(p, v, now))

	mut := NewContractRepo().UpdateMut(c)
	require.NotNil(t, mut)
	assert.Equal(t, commitplan.OpUpdate, mut.Op)

	assert.Equal(t, "prod-1", mut.Values[m_contract.ColProductID])
	assert.Equal(t, "var-1", mut.Values[m_contract.ColVariantID])
	assert.Equal(t, "36", mut.Values[m_contract.ColSnapTermMonths])
	assert.Equal(t, "unlimited", mut.Values[m_contract.ColSnapTermKm])
	assert.Equal(t, int64(10000), mut.Values[m_contract.ColSnapDeductibleCents])
	assert.Equal(t, int64(55000), mut.Values[m_contract.ColSnapBasePriceCents])
	assert.Equal(t, int64(42000), mut.Values[m_contract.ColSnapDealerCostCents])

	// Status untouched.
	_, ok := mut.Values[m_contract.ColStatus]
	assert.False(t, ok)
}

// TestContractUpdateMut_Transition verifies that a transition dirties the
// status column plus the entered state's stamp, and that the repo emits a
// guard on the previous status.
func TestContractUpdateMut_Transition(t *testing.T) {
	now := time.Now().UTC()
	c := draftContract(t, now)
	actor := domain.Actor{ID: "user-2", Email: "rep@example.com", Role: domain.RoleDealer}

	require.NoError(t, c.Transition(domain.ContractStatusSold, actor, now))

	r := NewContractRepo()
	mut := r.UpdateMut(c)
	require.NotNil(t, mut)

	assert.Equal(t, string(domain.ContractStatusSold), mut.Values[m_contract.ColStatus])
	assert.Equal(t, "user-2", mut.Values[m_contract.ColSoldBy])
	assert.Equal(t, "rep@example.com", mut.Values[m_contract.ColSoldByEmail])

	// Remitted and paid stamps stay untouched.
	_, ok := mut.Values[m_contract.ColRemittedBy]
	assert.False(t, ok)
	_, ok = mut.Values[m_contract.ColPaidBy]
	assert.False(t, ok)

	g := r.StatusGuard("ctr-1", domain.ContractStatusDraft)
	require.NotNil(t, g)
	assert.Equal(t, m_contract.TableName, g.Table)
	assert.Equal(t, m_contract.ColStatus, g.Column)
	assert.Equal(t, string(domain.ContractStatusDraft), g.Expect)
}

// TestContractUpdateMut_NoChanges verifies a clean aggregate yields no mutation.
func TestContractUpdateMut_NoChanges(t *testing.T) {
	now := time.Now().UTC()
	c := draftContract(t, now)

	assert.Nil(t, NewContractRepo().UpdateMut(c))
}
