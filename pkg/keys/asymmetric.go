// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	_ "crypto/sha256" // register SHA-256 for crypto.Hash.New
	_ "crypto/sha512" // register SHA-384 for crypto.Hash.New
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/airgapsync/airgapsync/pkg/crypto/rand"
	"github.com/airgapsync/airgapsync/pkg/crypto/secure"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// pemLineWidth is the base64 line width for PEM armor. The wrap is done
// explicitly so the output does not depend on encoder line-break behavior.
const pemLineWidth = 64

// AsymmetricKey holds a private/public key pair for signing and key
// agreement. The private half is PKCS#8 DER, the public half SPKI DER.
// The private bytes are wiped on Destroy; the public bytes are freely
// copyable.
type AsymmetricKey struct {
	algorithm  types.AsymmetricAlgorithm
	privateDER []byte
	publicDER  []byte
	destroyed  bool
}

// GenerateAsymmetricKey generates a new key pair for the given algorithm.
// RSA generation at 4096 bits can take several seconds.
func GenerateAsymmetricKey(algorithm types.AsymmetricAlgorithm) (*AsymmetricKey, error) {
	switch {
	case algorithm.IsRSA():
		priv, err := rsa.GenerateKey(rand.Reader(), algorithm.RSABits())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		return newAsymmetricKey(algorithm, priv, &priv.PublicKey)
	case algorithm.IsECDSA():
		priv, err := ecdsa.GenerateKey(algorithm.Curve(), rand.Reader())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		return newAsymmetricKey(algorithm, priv, &priv.PublicKey)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}
}

func newAsymmetricKey(algorithm types.AsymmetricAlgorithm, priv, pub any) (*AsymmetricKey, error) {
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		secure.Wipe(privDER)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return &AsymmetricKey{
		algorithm:  algorithm,
		privateDER: privDER,
		publicDER:  pubDER,
	}, nil
}

// NewAsymmetricKeyFromDER reconstructs a key pair from PKCS#8 private
// and SPKI public DER bytes. The key takes ownership of copies.
func NewAsymmetricKeyFromDER(algorithm types.AsymmetricAlgorithm, privateDER, publicDER []byte) (*AsymmetricKey, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}
	if _, err := x509.ParsePKCS8PrivateKey(privateDER); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if _, err := x509.ParsePKIXPublicKey(publicDER); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	priv := make([]byte, len(privateDER))
	copy(priv, privateDER)
	pub := make([]byte, len(publicDER))
	copy(pub, publicDER)
	return &AsymmetricKey{algorithm: algorithm, privateDER: priv, publicDER: pub}, nil
}

// NewAsymmetricKeyFromPrivateDER reconstructs a key pair from PKCS#8
// private DER bytes alone, deriving the SPKI public half.
func NewAsymmetricKeyFromPrivateDER(algorithm types.AsymmetricAlgorithm, privateDER []byte) (*AsymmetricKey, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}
	parsed, err := x509.ParsePKCS8PrivateKey(privateDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	signer, ok := parsed.(crypto.Signer)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported private key type", ErrInvalidFormat)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(signer.Public())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	priv := make([]byte, len(privateDER))
	copy(priv, privateDER)
	return &AsymmetricKey{algorithm: algorithm, privateDER: priv, publicDER: pubDER}, nil
}

// Algorithm returns the key's algorithm.
func (k *AsymmetricKey) Algorithm() types.AsymmetricAlgorithm {
	return k.algorithm
}

// rsaPrivate parses the private half as an RSA key.
func (k *AsymmetricKey) rsaPrivate() (*rsa.PrivateKey, error) {
	priv, err := x509.ParsePKCS8PrivateKey(k.privateDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	rsaPriv, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrInvalidFormat)
	}
	return rsaPriv, nil
}

// ecdsaPrivate parses the private half as an ECDSA key.
func (k *AsymmetricKey) ecdsaPrivate() (*ecdsa.PrivateKey, error) {
	priv, err := x509.ParsePKCS8PrivateKey(k.privateDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	ecPriv, ok := priv.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ECDSA private key", ErrInvalidFormat)
	}
	return ecPriv, nil
}

// rsaPublic parses the public half as an RSA key.
func (k *AsymmetricKey) rsaPublic() (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(k.publicDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrInvalidFormat)
	}
	return rsaPub, nil
}

// ecdsaPublic parses the public half as an ECDSA key.
func (k *AsymmetricKey) ecdsaPublic() (*ecdsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(k.publicDER)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	ecPub, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ECDSA public key", ErrInvalidFormat)
	}
	return ecPub, nil
}

// Sign signs data with this key.
//
// RSA keys produce PKCS#1 v1.5 signatures over the paired hash of data.
// ECDSA keys produce ASN.1-encoded signatures; these are
// non-deterministic, so signing the same message twice yields different
// bytes that both verify.
func (k *AsymmetricKey) Sign(data []byte) ([]byte, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}

	hash := k.algorithm.Hash()
	digest := k.ComputeHash(data)

	switch {
	case k.algorithm.IsRSA():
		priv, err := k.rsaPrivate()
		if err != nil {
			return nil, err
		}
		sig, err := rsa.SignPKCS1v15(rand.Reader(), priv, hash, digest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
		}
		return sig, nil
	case k.algorithm.IsECDSA():
		priv, err := k.ecdsaPrivate()
		if err != nil {
			return nil, err
		}
		sig, err := ecdsa.SignASN1(rand.Reader(), priv, digest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
		}
		return sig, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, k.algorithm)
	}
}

// Verify checks a signature produced by Sign over data.
// Returns ErrVerificationFailed on any mismatch.
func (k *AsymmetricKey) Verify(data, signature []byte) error {
	digest := k.ComputeHash(data)
	return k.verifyDigest(digest, signature)
}

func (k *AsymmetricKey) verifyDigest(digest, signature []byte) error {
	switch {
	case k.algorithm.IsRSA():
		pub, err := k.rsaPublic()
		if err != nil {
			return err
		}
		if err := rsa.VerifyPKCS1v15(pub, k.algorithm.Hash(), digest, signature); err != nil {
			return ErrVerificationFailed
		}
		return nil
	case k.algorithm.IsECDSA():
		pub, err := k.ecdsaPublic()
		if err != nil {
			return err
		}
		if !ecdsa.VerifyASN1(pub, digest, signature) {
			return ErrVerificationFailed
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, k.algorithm)
	}
}

// SignPrehash signs a caller-computed digest.
//
// RSA keys require hash to be a digest of the paired hash function's
// exact length. ECDSA keys fall back to Sign(hash): the digest is
// treated as a message and re-hashed by the primitive. Callers needing
// strict pre-hash semantics must use RSA.
func (k *AsymmetricKey) SignPrehash(hash []byte) ([]byte, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}

	switch {
	case k.algorithm.IsRSA():
		if len(hash) != k.algorithm.Hash().Size() {
			return nil, fmt.Errorf("%w: digest must be %d bytes for %s",
				ErrInvalidFormat, k.algorithm.Hash().Size(), k.algorithm.HashName())
		}
		priv, err := k.rsaPrivate()
		if err != nil {
			return nil, err
		}
		sig, err := rsa.SignPKCS1v15(rand.Reader(), priv, k.algorithm.Hash(), hash)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSigningFailed, err)
		}
		return sig, nil
	case k.algorithm.IsECDSA():
		return k.Sign(hash)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, k.algorithm)
	}
}

// VerifyPrehash verifies a signature against a caller-computed digest,
// with the same ECDSA re-hash asymmetry as SignPrehash.
func (k *AsymmetricKey) VerifyPrehash(hash, signature []byte) error {
	switch {
	case k.algorithm.IsRSA():
		if len(hash) != k.algorithm.Hash().Size() {
			return fmt.Errorf("%w: digest must be %d bytes for %s",
				ErrInvalidFormat, k.algorithm.Hash().Size(), k.algorithm.HashName())
		}
		return k.verifyDigest(hash, signature)
	case k.algorithm.IsECDSA():
		return k.Verify(hash, signature)
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, k.algorithm)
	}
}

// ComputeHash returns the paired hash of data: SHA-256 for RSA-2048 and
// ECDSA-P256, SHA-384 for RSA-4096 and ECDSA-P384.
func (k *AsymmetricKey) ComputeHash(data []byte) []byte {
	h := k.algorithm.Hash().New()
	h.Write(data)
	return h.Sum(nil)
}

// HashAlgorithm returns the paired hash identifier ("SHA-256" or "SHA-384").
func (k *AsymmetricKey) HashAlgorithm() string {
	return k.algorithm.HashName()
}

// PublicKeyDER returns a copy of the SPKI DER public key.
func (k *AsymmetricKey) PublicKeyDER() []byte {
	out := make([]byte, len(k.publicDER))
	copy(out, k.publicDER)
	return out
}

// PrivateKeyDER returns a copy of the PKCS#8 DER private key. The caller
// owns the copy and should wipe it with secure.Wipe when done.
func (k *AsymmetricKey) PrivateKeyDER() ([]byte, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}
	out := make([]byte, len(k.privateDER))
	copy(out, k.privateDER)
	return out, nil
}

// PublicKeyPoint returns the public key as SEC1 uncompressed point bytes
// for ECDSA keys. This is the encoding Agreement.Agree expects from a
// peer. RSA keys have no point encoding.
func (k *AsymmetricKey) PublicKeyPoint() ([]byte, error) {
	if !k.algorithm.IsECDSA() {
		return nil, fmt.Errorf("%w: %s has no SEC1 point form", types.ErrUnsupportedAlgorithm, k.algorithm)
	}
	pub, err := k.ecdsaPublic()
	if err != nil {
		return nil, err
	}
	ecdhPub, err := pub.ECDH()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ecdhPub.Bytes(), nil
}

// PublicKeyPEM exports the public key with standard PUBLIC KEY armor.
// The base64 body is wrapped at 64 columns and there is no trailing
// newline after the footer.
func (k *AsymmetricKey) PublicKeyPEM() string {
	b64 := base64.StdEncoding.EncodeToString(k.publicDER)

	var sb strings.Builder
	sb.WriteString("-----BEGIN PUBLIC KEY-----\n")
	for len(b64) > pemLineWidth {
		sb.WriteString(b64[:pemLineWidth])
		sb.WriteByte('\n')
		b64 = b64[pemLineWidth:]
	}
	sb.WriteString(b64)
	sb.WriteString("\n-----END PUBLIC KEY-----")
	return sb.String()
}

// Destroy overwrites the private key bytes. The public half remains
// readable. Destroy is idempotent.
func (k *AsymmetricKey) Destroy() {
	secure.Wipe(k.privateDER)
	k.destroyed = true
}
