// Package codes implements the short-lived delivery confirmation codes
// presented by buyers at handover. Codes live in memory: losing them on
// restart only means completion falls back to not requiring a code, which is
// the same behavior as a code expiring.
package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrCodeMismatch is returned when the presented code does not match the live
// code for the order.
var ErrCodeMismatch = errors.New("confirmation code does not match")

const codeDigits = 6

// Store issues and checks confirmation codes with a fixed time to live.
// It implements the commands.ConfirmationCodes contract and is safe for
// concurrent use.
type Store struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[kernel.UUID]issuedCode

	// now is replaceable for expiry tests.
	now func() time.Time
}

type issuedCode struct {
	value     string
	expiresAt time.Time
}

// NewStore creates a store issuing codes valid for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:   ttl,
		codes: make(map[kernel.UUID]issuedCode),
		now:   time.Now,
	}
}

// Issue creates a fresh numeric code for the order, replacing any previous
// one. The code is returned once; the store keeps only the live copy.
func (s *Store) Issue(orderID kernel.UUID) (string, error) {
	if err := orderID.Validate(); err != nil {
		return "", err
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[orderID] = issuedCode{
		value:     code,
		expiresAt: s.now().Add(s.ttl),
	}
	return code, nil
}

// Verify checks a presented code and consumes it on success, so a code
// authorizes exactly one completion.
func (s *Store) Verify(orderID kernel.UUID, code string) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.codes[orderID]
	if !ok || s.now().After(issued.expiresAt) {
		delete(s.codes, orderID)
		return ErrCodeMismatch
	}

	if issued.value != code {
		return ErrCodeMismatch
	}

	delete(s.codes, orderID)
	return nil
}

// HasLive reports whether an unexpired code exists for the order.
func (s *Store) HasLive(orderID kernel.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	issued, ok := s.codes[orderID]
	if !ok {
		return false
	}

	if s.now().After(issued.expiresAt) {
		delete(s.codes, orderID)
		return false
	}
	return true
}

// Sweep drops every expired code and returns how many were removed.
// A periodic job calls this so abandoned orders do not accumulate entries.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for orderID, issued := range s.codes {
		if now.After(issued.expiresAt) {
			delete(s.codes, orderID)
			removed++
		}
	}
	return removed
}

func generateCode() (string, error) {
	limit := big.NewInt(1)
	for range codeDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}
