// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package rand is the single process-wide random source for airgapsync.
//
// All components draw key material, nonces, and salts from this package.
// The underlying source is the OS CSPRNG (crypto/rand); a read failure is
// reported as ErrRandomFailure and is fatal to the calling operation. It
// must never be retried silently or papered over with weaker entropy.
package rand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// SaltSize is the size in bytes of salts produced by Salt.
const SaltSize = 32

// ErrRandomFailure indicates the OS entropy source refused the read.
var ErrRandomFailure = errors.New("rand: random source failure")

// Fill fills buf with cryptographically strong random bytes.
func Fill(buf []byte) error {
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrRandomFailure, err)
	}
	return nil
}

// Bytes returns n cryptographically strong random bytes.
func Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := Fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Salt returns a fresh SaltSize-byte salt for key derivation.
func Salt() ([]byte, error) {
	return Bytes(SaltSize)
}

// Reader exposes the process CSPRNG as an io.Reader for APIs that
// consume entropy streams (RSA and ECDSA key generation).
func Reader() io.Reader {
	return rand.Reader
}
