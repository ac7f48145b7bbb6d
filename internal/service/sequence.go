package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"

	"dnavault.com/internal/dna"
	"dnavault.com/internal/domain"
	"dnavault.com/internal/model"
	"dnavault.com/internal/policy"
)

// SequenceServiceImpl implements domain.SequenceService: every operation is
// gated by the access policy, and writes run validate → analyze → insert
// with nothing persisted when any step fails.
type SequenceServiceImpl struct {
	sequences domain.SequenceRepository
}

func NewSequenceService(sequences domain.SequenceRepository) *SequenceServiceImpl {
	return &SequenceServiceImpl{sequences: sequences}
}

// Create validates raw, derives the stored fields and inserts a row owned by
// the requester. Ownership is forced to the requester's id regardless of any
// caller-supplied value.
func (s *SequenceServiceImpl) Create(ctx context.Context, requester *domain.Requester, raw string, description *string) (*model.Sequence, error) {
	decision, err := policy.Authorize(requester, policy.OpCreate, 0)
	if err != nil {
		return nil, err
	}

	seq, err := buildRow(decision.OwnerID, raw, description)
	if err != nil {
		return nil, err
	}

	created, err := s.sequences.Insert(ctx, seq)
	if err != nil {
		return nil, err
	}

	log.Printf("SequenceService: user %d stored sequence %d (length %d)", decision.OwnerID, created.ID, created.Length)
	return created, nil
}

// ListOwn returns the requester's own rows. No rows is a successful empty
// result, not an error.
func (s *SequenceServiceImpl) ListOwn(ctx context.Context, requester *domain.Requester) ([]model.Sequence, error) {
	decision, err := policy.Authorize(requester, policy.OpListOwn, 0)
	if err != nil {
		return nil, err
	}
	return s.sequences.FindByOwner(ctx, decision.OwnerID)
}

// ListAll returns every row joined with owner display fields. Admin only;
// an empty table is reported as not found, matching the admin listing
// contract.
func (s *SequenceServiceImpl) ListAll(ctx context.Context, requester *domain.Requester) ([]model.SequenceWithOwner, error) {
	if _, err := policy.Authorize(requester, policy.OpListAll, 0); err != nil {
		return nil, err
	}

	rows, err := s.sequences.FindAllWithOwners(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NewNotFoundError("No sequences found")
	}
	return rows, nil
}

// Search matches q as an exact id when it is all digits, otherwise as a
// substring of sequence text or description. The scope is global across all
// users' rows (see policy.Decision.Broad).
func (s *SequenceServiceImpl) Search(ctx context.Context, requester *domain.Requester, q string) ([]model.Sequence, error) {
	if _, err := policy.Authorize(requester, policy.OpSearch, 0); err != nil {
		return nil, err
	}
	if q == "" {
		return nil, domain.NewBadRequestError("Provide query param q")
	}

	if id, err := strconv.ParseUint(q, 10, 32); err == nil {
		return s.sequences.SearchByID(ctx, uint(id))
	}
	return s.sequences.SearchByText(ctx, "%"+q+"%")
}

// ImportFasta inserts one row per FASTA record, all in one transaction. A
// single invalid record rejects the whole import.
func (s *SequenceServiceImpl) ImportFasta(ctx context.Context, requester *domain.Requester, r io.Reader) ([]model.Sequence, error) {
	decision, err := policy.Authorize(requester, policy.OpCreate, 0)
	if err != nil {
		return nil, err
	}

	records, err := dna.ReadFasta(r)
	if err != nil {
		return nil, domain.NewBadRequestError("Failed to read FASTA input: " + err.Error())
	}
	if len(records) == 0 {
		return nil, domain.NewBadRequestError("No FASTA records found in request body")
	}

	rows := make([]*model.Sequence, 0, len(records))
	for _, rec := range records {
		var description *string
		if rec.Header != "" {
			header := rec.Header
			description = &header
		}
		row, err := buildRow(decision.OwnerID, rec.Sequence, description)
		if err != nil {
			return nil, domain.NewBadRequestError(fmt.Sprintf("Invalid DNA sequence in record %q. Only A, T, G, C allowed.", rec.Header))
		}
		rows = append(rows, row)
	}

	created, err := s.sequences.InsertBatch(ctx, rows)
	if err != nil {
		return nil, err
	}

	log.Printf("SequenceService: user %d imported %d sequences", decision.OwnerID, len(created))
	return created, nil
}

// buildRow validates raw and computes the derived fields. It is the only
// path that constructs a persistable sequence row.
func buildRow(ownerID uint, raw string, description *string) (*model.Sequence, error) {
	if !dna.IsValid(raw) {
		return nil, domain.NewBadRequestError("Invalid DNA sequence. Only A, T, G, C allowed.")
	}

	analysis, err := dna.Analyze(raw)
	if err != nil {
		// Unreachable after IsValid, kept as the hard stop the analyzer
		// guarantees for unvalidated input.
		return nil, domain.NewInternalError("sequence analysis failed", err)
	}

	return &model.Sequence{
		UserID:            ownerID,
		Sequence:          raw,
		Description:       description,
		Length:            analysis.Length,
		GCContent:         analysis.GCContent,
		ReverseComplement: analysis.ReverseComplement,
	}, nil
}

var _ domain.SequenceService = (*SequenceServiceImpl)(nil)
