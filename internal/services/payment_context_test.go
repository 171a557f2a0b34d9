package services

import (
	"testing"
	"time"

	"github.com/pfportal/employer-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func newContext(challanID uint, amount float64) *models.FullPaymentContext {
	interest, damages, grandTotal := FullPaymentQuote(amount)
	return &models.FullPaymentContext{
		ChallanID:    challanID,
		TRRN:         "20260801120000001",
		WageMonth:    "2026-07",
		ReturnAmount: amount,
		Interest7Q:   interest,
		Damages14B:   damages,
		GrandTotal:   grandTotal,
	}
}

func TestPaymentContextStore_KeyedByChallan(t *testing.T) {
	store := NewPaymentContextStore(time.Hour)

	store.Put(newContext(1, 2375))
	store.Put(newContext(2, 5000))

	first := store.Get(1)
	second := store.Get(2)

	assert.NotNil(t, first)
	assert.NotNil(t, second)
	assert.Equal(t, 2375.0, first.ReturnAmount)
	assert.Equal(t, 5000.0, second.ReturnAmount)
}

func TestPaymentContextStore_PutReplacesSameChallan(t *testing.T) {
	store := NewPaymentContextStore(time.Hour)

	store.Put(newContext(1, 2375))
	store.Put(newContext(1, 9000))

	ctx := store.Get(1)
	assert.NotNil(t, ctx)
	assert.Equal(t, 9000.0, ctx.ReturnAmount)
	assert.Equal(t, 1, store.Len())
}

func TestPaymentContextStore_Expiry(t *testing.T) {
	store := NewPaymentContextStore(time.Nanosecond)

	store.Put(newContext(1, 2375))
	time.Sleep(time.Millisecond)

	assert.Nil(t, store.Get(1))
	assert.Nil(t, store.Finalize(1))
}

func TestPaymentContextStore_Finalize(t *testing.T) {
	store := NewPaymentContextStore(time.Hour)
	store.Put(newContext(1, 2375))

	ctx := store.Finalize(1)
	assert.NotNil(t, ctx)
	assert.True(t, ctx.Finalized)
	assert.True(t, store.Get(1).Finalized)

	// Unknown challan cannot be finalized
	assert.Nil(t, store.Finalize(99))
}

func TestPaymentContextStore_Remove(t *testing.T) {
	store := NewPaymentContextStore(time.Hour)
	store.Put(newContext(1, 2375))

	store.Remove(1)
	assert.Nil(t, store.Get(1))
	assert.Equal(t, 0, store.Len())
}

func TestPaymentContextStore_PurgeExpired(t *testing.T) {
	store := NewPaymentContextStore(time.Nanosecond)
	store.Put(newContext(1, 2375))
	store.Put(newContext(2, 5000))
	time.Sleep(time.Millisecond)

	assert.Equal(t, 2, store.PurgeExpired())
	assert.Equal(t, 0, store.Len())
}

func TestPaymentContextStore_GrandTotalInvariant(t *testing.T) {
	ctx := newContext(1, 2375)
	assert.InDelta(t, ctx.ReturnAmount+ctx.Interest7Q+ctx.Damages14B, ctx.GrandTotal, 0.001)
}
