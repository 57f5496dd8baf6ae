package signature

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the length of an r || s || v signature
const SignatureLength = crypto.SignatureLength

var (
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrNonCanonicalSignature  = errors.New("non-canonical signature")
)

// Verifier checks whitelist signatures
//
//go:generate mockgen -source=verifier.go -destination=../mocks/verifier.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// Verify reports whether sig was produced by the authorized signer for
	// the given collection, wallet and phase
	Verify(collection common.Address, wallet common.Address, phase uint8, sig []byte) bool
	// Signer returns the authorized signer
	Signer() common.Address
}

type whitelistVerifier struct {
	signer common.Address
}

// NewWhitelistVerifier creates a verifier accepting signatures of the given signer
func NewWhitelistVerifier(signer common.Address) Verifier {
	return &whitelistVerifier{signer: signer}
}

func (v *whitelistVerifier) Signer() common.Address {
	return v.signer
}

func (v *whitelistVerifier) Verify(collection common.Address, wallet common.Address, phase uint8, sig []byte) bool {
	recovered, err := Recover(WhitelistHash(collection, wallet, phase), sig)
	if err != nil {
		return false
	}
	return recovered == v.signer
}

// WhitelistHash returns keccak256(collection || wallet || phase), the packed
// message an authorized signer approves for a wallet
func WhitelistHash(collection common.Address, wallet common.Address, phase uint8) common.Hash {
	return crypto.Keccak256Hash(collection.Bytes(), wallet.Bytes(), []byte{phase})
}

// Recover returns the address that personal-signed the given hash. Only the
// canonical encoding is accepted: v must be 27 or 28 and s must be in the
// lower half of the curve order, so a signature has exactly one byte form.
func Recover(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, ErrInvalidSignatureLength
	}

	v := sig[crypto.RecoveryIDOffset]
	if v != 27 && v != 28 {
		return common.Address{}, fmt.Errorf("invalid recovery id: %d", v)
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(v-27, r, s, true) {
		return common.Address{}, ErrNonCanonicalSignature
	}

	// copy so that the caller's v byte is left untouched
	raw := make([]byte, SignatureLength)
	copy(raw, sig)
	raw[crypto.RecoveryIDOffset] -= 27

	pub, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Sign personal-signs the whitelist message of (collection, wallet, phase).
// The returned signature uses the 27/28 recovery id convention.
func Sign(key *ecdsa.PrivateKey, collection common.Address, wallet common.Address, phase uint8) ([]byte, error) {
	hash := WhitelistHash(collection, wallet, phase)
	sig, err := crypto.Sign(accounts.TextHash(hash.Bytes()), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign whitelist message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
