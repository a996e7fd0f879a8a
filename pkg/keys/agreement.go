// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keys

import (
	"crypto/ecdh"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/airgapsync/airgapsync/pkg/crypto/secure"
	"github.com/airgapsync/airgapsync/pkg/types"
	"golang.org/x/crypto/hkdf"
)

// Agreement performs ECDH key agreement using the private half of an
// ECDSA key. It holds its own copy of the private-key DER, wiped on
// Destroy, so the source key may be destroyed independently.
//
// The raw shared secret is not an encryption key. Run it through
// SessionKey (HKDF-SHA256) or another KDF before use.
type Agreement struct {
	algorithm  types.AsymmetricAlgorithm
	privateDER []byte
	destroyed  bool
}

// NewAgreement creates a key-agreement context from an ECDSA key.
// RSA keys are rejected with ErrUnsupportedAlgorithm.
func NewAgreement(key *AsymmetricKey) (*Agreement, error) {
	if !key.algorithm.IsECDSA() {
		return nil, fmt.Errorf("%w: key agreement requires ECDSA keys, got %s",
			types.ErrUnsupportedAlgorithm, key.algorithm)
	}

	privDER, err := key.PrivateKeyDER()
	if err != nil {
		return nil, err
	}
	return &Agreement{algorithm: key.algorithm, privateDER: privDER}, nil
}

// Algorithm returns the curve algorithm of the underlying key.
func (a *Agreement) Algorithm() types.AsymmetricAlgorithm {
	return a.algorithm
}

func (a *Agreement) curve() ecdh.Curve {
	switch a.algorithm {
	case types.ECDSAP256:
		return ecdh.P256()
	case types.ECDSAP384:
		return ecdh.P384()
	}
	return nil
}

// Agree computes the ECDH shared secret with a peer public key given as
// SEC1 uncompressed point bytes. The secret is 32 bytes for P-256 and
// 48 bytes for P-384. Always uses the stored private key; no ephemeral
// key is substituted.
func (a *Agreement) Agree(peerPublic []byte) ([]byte, error) {
	if a.destroyed {
		return nil, ErrKeyDestroyed
	}

	priv, err := x509.ParsePKCS8PrivateKey(a.privateDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	ecPriv, ok := priv.(interface {
		ECDH() (*ecdh.PrivateKey, error)
	})
	if !ok {
		return nil, fmt.Errorf("%w: not an EC private key", ErrInvalidFormat)
	}
	ecdhPriv, err := ecPriv.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	peer, err := a.curve().NewPublicKey(peerPublic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	secret, err := ecdhPriv.ECDH(peer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return secret, nil
}

// SessionKey derives a symmetric key of the requested length from the
// shared secret with a peer using HKDF-SHA256. Different info values
// produce independent keys from the same agreement.
func (a *Agreement) SessionKey(peerPublic, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: key length must be positive", ErrKeyDerivationFailed)
	}

	secret, err := a.Agree(peerPublic)
	if err != nil {
		return nil, err
	}
	defer secure.Wipe(secret)

	key := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// Destroy overwrites the private-key copy. Destroy is idempotent.
func (a *Agreement) Destroy() {
	secure.Wipe(a.privateDER)
	a.destroyed = true
}
