package domain

import (
	"context"
	"io"

	"dnavault.com/internal/model"
)

// ===========================
// User service interface
// ===========================

// UserService defines account operations
type UserService interface {
	// Register creates a new account and returns the stored row
	Register(ctx context.Context, email, password string, firstname, lastname *string) (*model.User, error)
	// Login verifies credentials and returns a signed access token
	Login(ctx context.Context, email, password string) (string, error)
	// GetUser fetches an account by id
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

// ===========================
// Sequence service interface
// ===========================

// SequenceService defines the validated, authorization-scoped sequence operations
type SequenceService interface {
	// Create validates and analyzes raw, then persists a row owned by the requester
	Create(ctx context.Context, requester *Requester, raw string, description *string) (*model.Sequence, error)
	// ListOwn returns the requester's own rows, newest first
	ListOwn(ctx context.Context, requester *Requester) ([]model.Sequence, error)
	// ListAll returns every row joined with owner display fields (admin only)
	ListAll(ctx context.Context, requester *Requester) ([]model.SequenceWithOwner, error)
	// Search matches an exact numeric id or a substring of sequence/description
	Search(ctx context.Context, requester *Requester, q string) ([]model.Sequence, error)
	// ImportFasta inserts every record of a FASTA stream, all or nothing
	ImportFasta(ctx context.Context, requester *Requester, r io.Reader) ([]model.Sequence, error)
}

// ===========================
// Repository interfaces
// ===========================

// UserRepository persists accounts. Find methods return (nil, nil) when no
// row matches.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// SequenceRepository persists sequence rows. Insert runs in a transaction:
// an insert reporting zero affected rows aborts it and nothing partial
// remains visible.
type SequenceRepository interface {
	Insert(ctx context.Context, seq *model.Sequence) (*model.Sequence, error)
	InsertBatch(ctx context.Context, seqs []*model.Sequence) ([]model.Sequence, error)
	FindByID(ctx context.Context, id uint) (*model.Sequence, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]model.Sequence, error)
	FindAllWithOwners(ctx context.Context) ([]model.SequenceWithOwner, error)
	SearchByText(ctx context.Context, pattern string) ([]model.Sequence, error)
	SearchByID(ctx context.Context, id uint) ([]model.Sequence, error)
}
