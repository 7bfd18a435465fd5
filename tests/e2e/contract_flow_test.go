package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearlane/warranty-service/internal/app/warranty/domain"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries/quote_offers"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/advance_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_product"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_variant"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/delete_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/pay_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/publish_product"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/review_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/select_offer"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/set_dealer_markup"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/submit_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/update_batch"
)

var (
	provider = domain.Actor{ID: "provider-1", Email: "ops@provider.example", Role: domain.RoleProvider}
	dealer   = domain.Actor{ID: "dealer-1", Email: "fi@dealer.example", Role: domain.RoleDealer}
)

func ptr(n int64) *int64 { return &n }

// seedCatalog creates and publishes a product with one default variant.
func seedCatalog(ctx context.Context, t *testing.T) string {
	t.Helper()

	productID, err := app.CreateProduct.Execute(ctx, create_product.Request{
		Actor:      provider,
		Name:       "Powertrain Plus",
		Coverage:   "engine, transmission, drive axle",
		TermMonths: "36",
		TermKm:     "unlimited",
	})
	require.NoError(t, err)

	clk.Advance(time.Second)
	_, err = app.CreateVariant.Execute(ctx, create_variant.Request{
		Actor:           provider,
		ProductID:       productID,
		TermMonths:      "36",
		TermKm:          "unlimited",
		DeductibleCents: 10000,
		DealerCostCents: ptr(42000),
		BasePriceCents:  55000,
		IsDefault:       true,
	})
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, app.PublishProduct.Execute(ctx, publish_product.Request{
		Actor:     provider,
		ProductID: productID,
		Publish:   true,
	}))
	return productID
}

func sellContract(ctx context.Context, t *testing.T, productID string) string {
	t.Helper()

	clk.Advance(time.Second)
	contractID, err := app.CreateContract.Execute(ctx, create_contract.Request{
		Actor:          dealer,
		DealerID:       dealer.ID,
		ContractNumber: "CN-1001",
		Customer:       domain.Customer{Name: "Pat Doe", Email: "pat@example.com"},
		Vehicle:        domain.VehicleAttributes{VIN: testVIN, MileageKm: ptr(42000)},
		DecodeVIN:      true,
	})
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, app.SelectOffer.Execute(ctx, select_offer.Request{
		Actor:      dealer,
		ContractID: contractID,
		ProductID:  productID,
	}))

	clk.Advance(time.Second)
	require.NoError(t, app.AdvanceContract.Execute(ctx, advance_contract.Request{
		Actor:      dealer,
		ContractID: contractID,
		Desired:    "SOLD",
	}))
	return contractID
}

func TestContractSaleFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID := seedCatalog(ctx, t)

	require.NoError(t, app.SetDealerMarkup.Execute(ctx, set_dealer_markup.Request{
		Actor:    domain.Actor{ID: dealer.ID, Email: dealer.Email, Role: domain.RoleDealerAdmin},
		DealerID: dealer.ID,
		Percent:  10,
	}))

	offers, err := app.QuoteOffers.Execute(ctx, quote_offers.Request{
		DealerID:  dealer.ID,
		Vehicle:   domain.VehicleAttributes{VIN: testVIN, MileageKm: ptr(42000)},
		DecodeVIN: true,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.True(t, offers[0].Priced)
	assert.Equal(t, int64(46200), offers[0].RetailCents)

	contractID := sellContract(ctx, t, productID)

	got, err := app.GetContract.Execute(ctx, dealer, contractID)
	require.NoError(t, err)
	assert.Equal(t, "SOLD", got.Status)
	assert.Equal(t, "Honda", got.Make)
	assert.Equal(t, "Accord", got.Model)
	require.NotNil(t, got.SnapTermMonths)
	assert.Equal(t, "36", *got.SnapTermMonths)
	require.NotNil(t, got.SnapDealerCostCents)
	assert.Equal(t, int64(42000), *got.SnapDealerCostCents)
	assert.Equal(t, domain.DeriveWarrantyID(contractID), got.WarrantyID)

	events := mustFetchOutboxEvents(ctx, t, spClient, contractID)
	require.NotEmpty(t, events)
	assert.Equal(t, "contract.created", events[0].EventType)
	assert.Contains(t, eventTypes(events), "contract.offer_selected")
	assert.Contains(t, eventTypes(events), "contract.status_changed")
	for _, e := range events {
		assert.Equal(t, "pending", e.Status)
	}
}

func TestRemittanceBatchFlow(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	productID := seedCatalog(ctx, t)
	ct1 := sellContract(ctx, t, productID)
	ct2 := sellContract(ctx, t, productID)

	clk.Advance(time.Second)
	batchID, err := app.CreateBatch.Execute(ctx, create_batch.Request{
		Actor:       dealer,
		DealerID:    dealer.ID,
		BatchNumber: "RB-2026-001",
	})
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, app.UpdateBatch.Execute(ctx, update_batch.Request{
		Actor:         dealer,
		BatchID:       batchID,
		ContractIDs:   []string{ct1, ct2},
		SubtotalCents: 84000,
		TaxCents:      4200,
		TotalCents:    88200,
	}))

	clk.Advance(time.Second)
	require.NoError(t, app.SubmitBatch.Execute(ctx, submit_batch.Request{
		Actor:   dealer,
		BatchID: batchID,
	}))

	for _, id := range []string{ct1, ct2} {
		got, err := app.GetContract.Execute(ctx, dealer, id)
		require.NoError(t, err)
		assert.Equal(t, "REMITTED", got.Status)
	}

	clk.Advance(time.Second)
	require.NoError(t, app.ReviewBatch.Execute(ctx, review_batch.Request{
		Actor:   provider,
		BatchID: batchID,
		Approve: true,
	}))

	clk.Advance(time.Second)
	require.NoError(t, app.PayBatch.Execute(ctx, pay_batch.Request{
		Actor:            provider,
		BatchID:          batchID,
		PaymentMethod:    "ach",
		PaymentReference: "ACH-881",
	}))

	res, err := app.GetBatch.Execute(ctx, provider, batchID)
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", res.Batch.BatchStatus)
	assert.Equal(t, "PAID", res.Batch.PaymentStatus)
	assert.Equal(t, "PAID", res.Batch.RemittanceStatus)
	require.Len(t, res.Members, 2)
	for _, m := range res.Members {
		assert.Equal(t, "PAID", m.Status)
	}

	events := mustFetchOutboxEvents(ctx, t, spClient, batchID)
	types := eventTypes(events)
	assert.Contains(t, types, "batch.created")
	assert.Contains(t, types, "batch.submitted")
	assert.Contains(t, types, "batch.approved")
	assert.Contains(t, types, "batch.paid")
}

func TestDraftContractDeletion(t *testing.T) {
	requireEmulator(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clk.Advance(time.Second)
	contractID, err := app.CreateContract.Execute(ctx, create_contract.Request{
		Actor:    dealer,
		DealerID: dealer.ID,
		Customer: domain.Customer{Name: "Sam Roe"},
		Vehicle:  domain.VehicleAttributes{VIN: testVIN, MileageKm: ptr(9000)},
	})
	require.NoError(t, err)

	clk.Advance(time.Second)
	require.NoError(t, app.DeleteContract.Execute(ctx, delete_contract.Request{
		Actor:      dealer,
		ContractID: contractID,
	}))

	_, err = app.GetContract.Execute(ctx, dealer, contractID)
	assert.ErrorIs(t, err, domain.ErrContractNotFound)
}
