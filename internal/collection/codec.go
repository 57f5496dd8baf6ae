package collection

import (
	stdjson "encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
)

// ErrChecksumMismatch is returned when a stored snapshot does not match its checksum
var ErrChecksumMismatch = errors.New("collection snapshot checksum mismatch")

// EncodeState serializes a state for storage and returns the keccak256
// checksum of its canonical form
func EncodeState(json adapter.JSON, state *State) ([]byte, string, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal state: %w", err)
	}

	checksum, err := Checksum(json, data)
	if err != nil {
		return nil, "", err
	}

	return data, checksum, nil
}

// DecodeState restores a state from its stored form. An empty checksum skips verification.
func DecodeState(json adapter.JSON, data []byte, checksum string) (*State, error) {
	if checksum != "" {
		actual, err := Checksum(json, data)
		if err != nil {
			return nil, err
		}
		if actual != checksum {
			return nil, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, checksum, actual)
		}
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	if err := state.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid collection parameters: %w", err)
	}
	state.normalize()

	return &state, nil
}

// Checksum hashes the canonical form of a JSON document, so that it is stable
// across key reordering by the database
func Checksum(json adapter.JSON, data []byte) (string, error) {
	canonical, err := json.MarshalCanonical(stdjson.RawMessage(data))
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize state: %w", err)
	}

	return crypto.Keccak256Hash(canonical).Hex(), nil
}
