package access

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Role is a privilege required by an operation
type Role int

const (
	// RoleAny is satisfied by every caller
	RoleAny Role = iota
	// RoleOwner is satisfied only by the collection owner
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleAny:
		return "any"
	case RoleOwner:
		return "owner"
	default:
		return "unknown"
	}
}

// Authorizer decides whether a caller holds a role
//
//go:generate mockgen -source=policy.go -destination=../mocks/authorizer.go -package=mocks -mock_names=Authorizer=MockAuthorizer
type Authorizer interface {
	// Authorize returns nil when caller holds role, a typed rejection otherwise
	Authorize(caller common.Address, role Role) error
}

// OwnerPolicy grants RoleOwner to a single address
type OwnerPolicy struct {
	owner common.Address
}

// NewOwnerPolicy creates a single-owner policy
func NewOwnerPolicy(owner common.Address) *OwnerPolicy {
	return &OwnerPolicy{owner: owner}
}

// Owner returns the address holding RoleOwner
func (p *OwnerPolicy) Owner() common.Address {
	return p.owner
}

func (p *OwnerPolicy) Authorize(caller common.Address, role Role) error {
	switch role {
	case RoleAny:
		return nil
	case RoleOwner:
		if caller == p.owner && !domain.IsZeroAddress(caller) {
			return nil
		}
		return domain.ErrNotOwner
	default:
		return domain.ErrNotOwner
	}
}
