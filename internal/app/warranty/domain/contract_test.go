package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dealerActor   = Actor{ID: "dealer-1", Email: "sales@dealer.example", Role: RoleDealer}
	providerActor = Actor{ID: "provider-1", Email: "ops@provider.example", Role: RoleProvider}
)

func draftContract(t *testing.T, now time.Time) *Contract {
	t.Helper()
	c, err := NewContract(
		"ct-7f3a9b21", "CN-1001", "dealer-1",
		Customer{Name: "Pat Doe", Email: "pat@example.com"},
		VehicleAttributes{VIN: "1HGCM82633A004352", ModelYear: 2023, Make: "Honda", MileageKm: km(42000)},
		dealerActor, now,
	)
	require.NoError(t, err)
	return c
}

func TestNewContract_RejectsNegativeMileage(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := NewContract("ct-1", "", "dealer-1", Customer{}, VehicleAttributes{MileageKm: km(-1)}, dealerActor, now)
	assert.ErrorIs(t, err, ErrNegativeMileage)
}

func TestContractTransition_LinearNoSkip(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c := draftContract(t, now)

	assert.ErrorIs(t, c.Transition(ContractStatusRemitted, dealerActor, now), ErrInvalidTransition)
	assert.ErrorIs(t, c.Transition(ContractStatusPaid, dealerActor, now), ErrInvalidTransition)
	assert.ErrorIs(t, c.Transition("SHIPPED", dealerActor, now), ErrUnknownStatus)

	require.NoError(t, c.Transition(ContractStatusSold, dealerActor, now))
	assert.Equal(t, ContractStatusSold, c.Status())

	// no going back
	assert.ErrorIs(t, c.Transition(ContractStatusDraft, dealerActor, now), ErrInvalidTransition)

	require.NoError(t, c.Transition(ContractStatusRemitted, dealerActor, now))
	require.NoError(t, c.Transition(ContractStatusPaid, providerActor, now))

	// PAID is terminal
	assert.ErrorIs(t, c.Transition(ContractStatusSold, providerActor, now), ErrInvalidTransition)
}

func TestContractTransition_IdempotentReassert(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	c := draftContract(t, t0)

	require.NoError(t, c.Transition(ContractStatusSold, dealerActor, t0))
	stamped := c.SoldStamp()

	require.NoError(t, c.Transition(ContractStatusSold, providerActor, t1))
	assert.Equal(t, stamped, c.SoldStamp(), "re-assert must not restamp")
	assert.Equal(t, ContractStatusSold, c.Status())
}

func TestContractTransition_StampsOnlyEnteredState(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	c := draftContract(t, t0)

	require.NoError(t, c.Transition(ContractStatusSold, dealerActor, t0))
	assert.Equal(t, TransitionStamp{ByID: "dealer-1", ByEmail: "sales@dealer.example", At: t0}, c.SoldStamp())
	assert.True(t, c.RemittedStamp().IsZero())
	assert.True(t, c.PaidStamp().IsZero())

	t1 := t0.Add(time.Hour)
	require.NoError(t, c.Transition(ContractStatusRemitted, dealerActor, t1))
	assert.Equal(t, t0, c.SoldStamp().At, "earlier stamps untouched")
	assert.Equal(t, t1, c.RemittedStamp().At)
	assert.True(t, c.PaidStamp().IsZero())
}

func TestContractUpdateDraft_LockedAfterDraft(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c := draftContract(t, now)

	require.NoError(t, c.UpdateDraft("CN-2002", Customer{Name: "Sam Roe"}, VehicleAttributes{MileageKm: km(43000)}, now))
	assert.Equal(t, "CN-2002", c.ContractNumber())
	assert.Equal(t, "Sam Roe", c.Customer().Name)

	require.NoError(t, c.Transition(ContractStatusSold, dealerActor, now))
	err := c.UpdateDraft("CN-3003", Customer{}, VehicleAttributes{}, now)
	assert.ErrorIs(t, err, ErrContractLocked)
	assert.Equal(t, "CN-2002", c.ContractNumber(), "nothing partially applied")
}

func TestContractSelectOffer(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c := draftContract(t, now)

	p := publishedProduct(t, now)
	dealer := int64(42000)
	variant, err := NewPricingVariant(
		"var-1", p.ID(), TermOf(36), UnlimitedTerm(),
		0, km(100000), "", nil, 10000, &dealer, 55000, false, now,
	)
	require.NoError(t, err)

	require.NoError(t, c.SelectOffer(p, variant, now))
	require.NotNil(t, c.Snapshot())
	assert.Equal(t, TermOf(36), c.Snapshot().TermMonths)
	assert.True(t, c.Snapshot().TermKm.IsUnlimited())
	assert.Equal(t, int64(55000), c.Snapshot().BasePriceCents)
	require.NotNil(t, c.Snapshot().DealerCostCents)
	assert.Equal(t, int64(42000), *c.Snapshot().DealerCostCents)

	// snapshot is a copy, not a pointer into the variant
	*c.Snapshot().DealerCostCents = 1
	assert.Equal(t, int64(42000), *variant.DealerCostCents())

	// variant must belong to the product
	stray, err := NewPricingVariant("var-2", "other-product", TermOf(12), UnsetTerm(), 0, nil, "", nil, 0, nil, 1000, false, now)
	require.NoError(t, err)
	assert.ErrorIs(t, c.SelectOffer(p, stray, now), ErrVariantNotFound)

	// selection locks with the rest of the draft fields
	require.NoError(t, c.Transition(ContractStatusSold, dealerActor, now))
	assert.ErrorIs(t, c.SelectOffer(p, variant, now), ErrContractLocked)
}

func TestContractDeletable(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c := draftContract(t, now)
	assert.True(t, c.Deletable())

	require.NoError(t, c.Transition(ContractStatusSold, dealerActor, now))
	assert.False(t, c.Deletable(), "sold contracts are kept forever")
}

func TestContractOwnedBy(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	c, err := NewContract("ct-1", "", "dealer-1", Customer{}, VehicleAttributes{}, Actor{ID: "user-9", Role: RoleDealer}, now)
	require.NoError(t, err)

	assert.True(t, c.OwnedBy(Actor{ID: "user-9", Role: RoleDealer}), "creator")
	assert.True(t, c.OwnedBy(Actor{ID: "dealer-1", Role: RoleDealerAdmin}), "dealer identity")
	assert.False(t, c.OwnedBy(Actor{ID: "dealer-1", Role: RoleProvider}))
	assert.False(t, c.OwnedBy(Actor{ID: "user-8", Role: RoleDealer}))
}

func TestDeriveWarrantyID(t *testing.T) {
	assert.Equal(t, "WTY-7F3A9B21C4", DeriveWarrantyID("7f3a-9b21-c4d8-e0f2"))
	assert.Equal(t, "WTY-AB12", DeriveWarrantyID("ab-12"), "short ids keep what they have")
	assert.Equal(t, "WTY-", DeriveWarrantyID(""))
	assert.Equal(t, DeriveWarrantyID("abc"), DeriveWarrantyID("abc"), "deterministic")
}
