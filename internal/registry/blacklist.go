package registry

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
)

// BlacklistRegistry defines the interface for seeded signature blacklist lookups
//
//go:generate mockgen -source=blacklist.go -destination=../mocks/blacklist_registry.go -package=mocks -mock_names=BlacklistRegistry=MockBlacklistRegistry
type BlacklistRegistry interface {
	// IsBlacklisted checks if a whitelist signature is revoked for a collection
	IsBlacklisted(collection common.Address, sig []byte) bool

	// Signatures returns the revoked signatures of a collection, sorted
	Signatures(collection common.Address) [][]byte
}

// BlacklistData represents the structure of the blacklist.json file
// Key format: collection address -> list of hex encoded signatures
type BlacklistData map[string][]string

// blacklistRegistry is the internal implementation of BlacklistRegistry
type blacklistRegistry struct {
	// collection address (lower case) -> signature (lower case hex) -> bytes
	signatures map[string]map[string][]byte
}

// BlacklistRegistryLoader loads blacklist seed files
type BlacklistRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewBlacklistRegistryLoader creates a new loader
func NewBlacklistRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *BlacklistRegistryLoader {
	return &BlacklistRegistryLoader{fs: fs, json: json}
}

// Load loads the blacklist registry from a JSON file
func (l *BlacklistRegistryLoader) Load(filePath string) (BlacklistRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var blacklistData BlacklistData
	if err := l.json.Unmarshal(data, &blacklistData); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist JSON: %w", err)
	}

	bl := &blacklistRegistry{
		signatures: make(map[string]map[string][]byte),
	}
	for collection, sigs := range blacklistData {
		if !common.IsHexAddress(collection) {
			return nil, fmt.Errorf("invalid collection address in blacklist: %q", collection)
		}
		key := normalizeAddress(common.HexToAddress(collection))
		if _, ok := bl.signatures[key]; !ok {
			bl.signatures[key] = make(map[string][]byte)
		}

		for _, s := range sigs {
			sig, err := decodeSignature(s)
			if err != nil {
				return nil, fmt.Errorf("invalid signature in blacklist for %s: %w", collection, err)
			}
			bl.signatures[key][hex.EncodeToString(sig)] = sig
		}
	}

	return bl, nil
}

// IsBlacklisted checks if a whitelist signature is revoked for a collection
func (b *blacklistRegistry) IsBlacklisted(collection common.Address, sig []byte) bool {
	if b == nil {
		return false
	}
	_, ok := b.signatures[normalizeAddress(collection)][hex.EncodeToString(sig)]
	return ok
}

// Signatures returns the revoked signatures of a collection, sorted
func (b *blacklistRegistry) Signatures(collection common.Address) [][]byte {
	if b == nil {
		return nil
	}
	entries := b.signatures[normalizeAddress(collection)]
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sigs := make([][]byte, 0, len(keys))
	for _, k := range keys {
		sigs = append(sigs, entries[k])
	}
	return sigs
}

func normalizeAddress(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func decodeSignature(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	sig, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(sig) == 0 {
		return nil, fmt.Errorf("empty signature")
	}
	return sig, nil
}
