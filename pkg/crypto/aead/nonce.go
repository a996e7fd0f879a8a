// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package aead

import (
	"github.com/airgapsync/airgapsync/pkg/crypto/rand"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// NonceSequence yields exactly one fresh random nonce and then errors.
// A sealing context consumes one sequence; asking for a second nonce
// fails with ErrNonceExhausted rather than silently reusing or zeroing.
// This guards against accidental double-seal under the same context.
type NonceSequence struct {
	size  int
	spent bool
}

// NewNonceSequence creates a single-use nonce sequence sized for the
// given algorithm.
func NewNonceSequence(algorithm types.SymmetricAlgorithm) *NonceSequence {
	return &NonceSequence{size: algorithm.NonceSize()}
}

// Next returns the sequence's one nonce, sampled from the process
// random source. Every subsequent call returns ErrNonceExhausted.
func (s *NonceSequence) Next() ([]byte, error) {
	if s.spent {
		return nil, ErrNonceExhausted
	}
	s.spent = true

	nonce := make([]byte, s.size)
	if err := rand.Fill(nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}
