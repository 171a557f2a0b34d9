package services

import (
	"sync"
	"time"

	"github.com/pfportal/employer-api/internal/models"
	"github.com/pfportal/employer-api/pkg/logger"
)

// PaymentContextStore holds in-flight full-payment computations keyed
// by challan ID. Contexts are transient: they expire after the TTL and
// are consumed when the challan is paid, so generating details for one
// challan never clobbers another's.
type PaymentContextStore struct {
	mu       sync.Mutex
	contexts map[uint]*models.FullPaymentContext
	ttl      time.Duration
}

// NewPaymentContextStore creates a store with the given entry lifetime
func NewPaymentContextStore(ttl time.Duration) *PaymentContextStore {
	return &PaymentContextStore{
		contexts: make(map[uint]*models.FullPaymentContext),
		ttl:      ttl,
	}
}

// Put stores the full-payment context for a challan, replacing any
// previous computation for the same challan
func (s *PaymentContextStore) Put(ctx *models.FullPaymentContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx.CreatedAt = time.Now()
	s.contexts[ctx.ChallanID] = ctx
}

// Get returns the live context for a challan, or nil when none exists
// or it has expired
func (s *PaymentContextStore) Get(challanID uint) *models.FullPaymentContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.contexts[challanID]
	if !ok {
		return nil
	}
	if time.Since(ctx.CreatedAt) > s.ttl {
		delete(s.contexts, challanID)
		return nil
	}
	return ctx
}

// Finalize marks a challan's context as finalized so payment uses the
// composite grand total, and returns it. Returns nil when no live
// context exists.
func (s *PaymentContextStore) Finalize(challanID uint) *models.FullPaymentContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, ok := s.contexts[challanID]
	if !ok || time.Since(ctx.CreatedAt) > s.ttl {
		delete(s.contexts, challanID)
		return nil
	}
	ctx.Finalized = true
	return ctx
}

// Remove drops the context for a challan if present
func (s *PaymentContextStore) Remove(challanID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contexts, challanID)
}

// PurgeExpired removes all expired contexts and returns how many were
// dropped. Wired to the scheduled cleanup job.
func (s *PaymentContextStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, ctx := range s.contexts {
		if time.Since(ctx.CreatedAt) > s.ttl {
			delete(s.contexts, id)
			purged++
		}
	}
	if purged > 0 {
		logger.Info("purged expired payment contexts", "count", purged)
	}
	return purged
}

// Len returns the number of stored contexts, including expired ones
// not yet purged
func (s *PaymentContextStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contexts)
}
