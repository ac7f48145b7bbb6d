package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dnavault.com/internal/domain"
	"dnavault.com/internal/model"
)

// SequenceRepositoryImpl implements domain.SequenceRepository on GORM.
type SequenceRepositoryImpl struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) *SequenceRepositoryImpl {
	return &SequenceRepositoryImpl{db: db}
}

// Insert writes one row and reads it back inside a single transaction. An
// insert reporting zero affected rows aborts the transaction, so no partial
// state is ever visible to callers.
func (r *SequenceRepositoryImpl) Insert(ctx context.Context, seq *model.Sequence) (*model.Sequence, error) {
	var created model.Sequence
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Create(seq)
		if result.Error != nil {
			return domain.NewInternalError("failed to save sequence", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewInternalError("failed to save sequence", domain.ErrNoRowsWritten)
		}
		if err := tx.First(&created, seq.ID).Error; err != nil {
			return domain.NewInternalError("failed to fetch saved sequence", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// InsertBatch writes all rows in one transaction; any failure rolls the
// whole batch back.
func (r *SequenceRepositoryImpl) InsertBatch(ctx context.Context, seqs []*model.Sequence) ([]model.Sequence, error) {
	created := make([]model.Sequence, 0, len(seqs))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seq := range seqs {
			result := tx.Create(seq)
			if result.Error != nil {
				return domain.NewInternalError("failed to save sequence", result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.NewInternalError("failed to save sequence", domain.ErrNoRowsWritten)
			}
			var row model.Sequence
			if err := tx.First(&row, seq.ID).Error; err != nil {
				return domain.NewInternalError("failed to fetch saved sequence", err)
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SequenceRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.Sequence, error) {
	var seq model.Sequence
	if err := r.db.WithContext(ctx).First(&seq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to fetch sequence", err)
	}
	return &seq, nil
}

func (r *SequenceRepositoryImpl) FindByOwner(ctx context.Context, ownerID uint) ([]model.Sequence, error) {
	var seqs []model.Sequence
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&seqs).Error; err != nil {
		return nil, domain.NewInternalError("failed to fetch sequences", err)
	}
	return seqs, nil
}

// FindAllWithOwners returns every row joined with the owner's display
// fields, newest first.
func (r *SequenceRepositoryImpl) FindAllWithOwners(ctx context.Context) ([]model.SequenceWithOwner, error) {
	var rows []model.SequenceWithOwner
	if err := r.db.WithContext(ctx).
		Table("sequences").
		Select("sequences.id, sequences.user_id, sequences.sequence, sequences.description, sequences.length, sequences.gc_content, sequences.reverse_complement, sequences.created_at, users.email, users.firstname, users.lastname").
		Joins("JOIN users ON users.id = sequences.user_id").
		Order("sequences.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, domain.NewInternalError("failed to fetch sequences", err)
	}
	return rows, nil
}

// SearchByText matches pattern with LIKE against sequence text and
// description.
func (r *SequenceRepositoryImpl) SearchByText(ctx context.Context, pattern string) ([]model.Sequence, error) {
	var seqs []model.Sequence
	if err := r.db.WithContext(ctx).
		Where("sequence LIKE ? OR description LIKE ?", pattern, pattern).
		Find(&seqs).Error; err != nil {
		return nil, domain.NewInternalError("failed to search sequences", err)
	}
	return seqs, nil
}

// SearchByID returns at most one row, kept as a slice so id and text
// searches share a response shape.
func (r *SequenceRepositoryImpl) SearchByID(ctx context.Context, id uint) ([]model.Sequence, error) {
	var seqs []model.Sequence
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Find(&seqs).Error; err != nil {
		return nil, domain.NewInternalError("failed to search sequences", err)
	}
	return seqs, nil
}

var _ domain.SequenceRepository = (*SequenceRepositoryImpl)(nil)
