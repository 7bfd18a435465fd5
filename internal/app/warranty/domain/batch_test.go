package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBatch(t *testing.T, now time.Time) *RemittanceBatch {
	t.Helper()
	b := NewRemittanceBatch("batch-1", "RB-2026-001", "dealer-1", now)
	require.NoError(t, b.UpdateDetails([]string{"ct-1", "ct-2"}, 110000, 5500, 115500, now))
	return b
}

func TestBatchSubmit(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	empty := NewRemittanceBatch("batch-0", "RB-0", "dealer-1", now)
	assert.ErrorIs(t, empty.Submit(dealerActor, now), ErrEmptyBatch)

	b := openBatch(t, now)
	require.NoError(t, b.Submit(dealerActor, now))
	assert.Equal(t, BatchStatusClosed, b.BatchStatus())
	assert.Equal(t, RemittanceStatusSubmitted, b.RemittanceStatus())
	assert.Equal(t, "dealer-1", b.SubmittedStamp().ByID)

	// already closed
	assert.ErrorIs(t, b.Submit(dealerActor, now), ErrInvalidTransition)
}

func TestBatchDetailsLockAfterSubmit(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b := openBatch(t, now)
	require.NoError(t, b.Submit(dealerActor, now))

	err := b.UpdateDetails([]string{"ct-9"}, 1, 0, 1, now)
	assert.ErrorIs(t, err, ErrBatchLocked)
	assert.Equal(t, []string{"ct-1", "ct-2"}, b.ContractIDs())
	assert.Equal(t, int64(115500), b.TotalCents())
}

func TestBatchUpdateDetails_RejectsNegativeTotals(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b := NewRemittanceBatch("batch-1", "RB-1", "dealer-1", now)
	assert.ErrorIs(t, b.UpdateDetails([]string{"ct-1"}, -1, 0, 0, now), ErrNegativePrice)
}

func TestBatchReview_RejectionReopens(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b := openBatch(t, t0)

	// review only applies to submitted batches
	assert.ErrorIs(t, b.Review(true, providerActor, t0), ErrInvalidTransition)

	require.NoError(t, b.Submit(dealerActor, t0))
	t1 := t0.Add(time.Hour)
	require.NoError(t, b.Review(false, providerActor, t1))
	assert.Equal(t, RemittanceStatusRejected, b.RemittanceStatus())
	assert.Equal(t, BatchStatusOpen, b.BatchStatus(), "rejection reopens the batch")
	assert.Equal(t, "provider-1", b.ReviewedStamp().ByID)

	// the dealer can amend and resubmit
	require.NoError(t, b.UpdateDetails([]string{"ct-1"}, 55000, 2750, 57750, t1))
	require.NoError(t, b.Submit(dealerActor, t1))
	require.NoError(t, b.Review(true, providerActor, t1))
	assert.Equal(t, RemittanceStatusApproved, b.RemittanceStatus())
	assert.Equal(t, BatchStatusClosed, b.BatchStatus())
}

func TestBatchPay(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b := openBatch(t, t0)
	meta := PaymentMeta{Method: "ach", Reference: "ACH-881", PaidDate: t0}

	// unapproved batches cannot be paid
	assert.ErrorIs(t, b.Pay(meta, providerActor, t0), ErrInvalidTransition)
	require.NoError(t, b.Submit(dealerActor, t0))
	assert.ErrorIs(t, b.Pay(meta, providerActor, t0), ErrInvalidTransition)

	require.NoError(t, b.Review(true, providerActor, t0))
	t1 := t0.Add(time.Hour)
	require.NoError(t, b.Pay(meta, providerActor, t1))
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus())
	assert.Equal(t, RemittanceStatusPaid, b.RemittanceStatus())
	require.NotNil(t, b.Payment())
	assert.Equal(t, "ACH-881", b.Payment().Reference)
	assert.Equal(t, t1, b.PaidStamp().At)

	// payment metadata freezes after the first payout
	err := b.Pay(PaymentMeta{Method: "wire", Reference: "WIRE-2"}, providerActor, t1)
	assert.ErrorIs(t, err, ErrBatchLocked)
	assert.Equal(t, "ACH-881", b.Payment().Reference)
}

func TestBatchOwnedBy(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	b := NewRemittanceBatch("batch-1", "RB-1", "dealer-1", now)

	assert.True(t, b.OwnedBy(Actor{ID: "dealer-1", Role: RoleDealer}))
	assert.True(t, b.OwnedBy(Actor{ID: "dealer-1", Role: RoleDealerAdmin}))
	assert.False(t, b.OwnedBy(Actor{ID: "dealer-1", Role: RoleProvider}))
	assert.False(t, b.OwnedBy(Actor{ID: "dealer-2", Role: RoleDealer}))
}

func TestParseStatuses(t *testing.T) {
	got, err := ParseBatchStatus("CLOSED")
	require.NoError(t, err)
	assert.Equal(t, BatchStatusClosed, got)
	_, err = ParseBatchStatus("open")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	pay, err := ParsePaymentStatus("UNPAID")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusUnpaid, pay)
	_, err = ParsePaymentStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	rem, err := ParseRemittanceStatus("REJECTED")
	require.NoError(t, err)
	assert.Equal(t, RemittanceStatusRejected, rem)
	_, err = ParseRemittanceStatus("DECLINED")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
