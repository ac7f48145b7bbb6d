// Package policy is the access decision layer: a stateless function from
// (requester identity, operation) to either an allowed row scope or a typed
// denial. It performs no I/O; callers resolve identity before consulting it
// and apply the returned scope when querying storage.
package policy

import "dnavault.com/internal/domain"

// Operation enumerates the sequence operations the policy rules on.
type Operation int

const (
	OpCreate Operation = iota
	OpListOwn
	OpListAll
	OpSearch
)

// Scope is the row-filtering predicate an allowed operation is restricted to.
type Scope int

const (
	// ScopeOwner restricts the operation to rows whose owner equals
	// Decision.OwnerID.
	ScopeOwner Scope = iota
	// ScopeAll places no ownership restriction on the operation.
	ScopeAll
)

// Decision is the result of an allowed authorization check.
type Decision struct {
	Scope   Scope
	OwnerID uint // meaningful when Scope == ScopeOwner
	// Broad marks operations that deliberately cross ownership boundaries
	// for non-admin requesters. Search is currently global across all
	// users' rows; whether that breadth is intended product behavior is an
	// open question inherited from the original system, so it is surfaced
	// here instead of being silently narrowed.
	Broad bool
}

// Authorize decides whether requester may perform op. A nil requester is a
// hard authentication denial (401), distinct from an authenticated requester
// with an insufficient role (403). For OpCreate, targetOwnerID names the
// owner the caller wants the row attributed to; anything other than the
// requester's own id (or zero, meaning "self") is refused. Other operations
// ignore targetOwnerID.
func Authorize(requester *domain.Requester, op Operation, targetOwnerID uint) (Decision, error) {
	if requester == nil {
		return Decision{}, domain.NewUnauthorizedError("authentication required")
	}

	switch op {
	case OpCreate:
		if targetOwnerID != 0 && targetOwnerID != requester.ID {
			return Decision{}, domain.NewForbiddenError("cannot create a sequence for another user")
		}
		return Decision{Scope: ScopeOwner, OwnerID: requester.ID}, nil

	case OpListOwn:
		return Decision{Scope: ScopeOwner, OwnerID: requester.ID}, nil

	case OpListAll:
		if !requester.IsAdmin {
			return Decision{}, domain.NewForbiddenError("Admin access required")
		}
		return Decision{Scope: ScopeAll}, nil

	case OpSearch:
		return Decision{Scope: ScopeAll, Broad: true}, nil

	default:
		return Decision{}, domain.NewForbiddenError("unknown operation")
	}
}
