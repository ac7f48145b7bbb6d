package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dnavault.com/internal/domain"
	"dnavault.com/internal/model"
)

// UserRepositoryImpl implements domain.UserRepository on GORM.
type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

// Insert persists a new account. The unique index on email is the final
// authority on duplicates; a violation comes back as a conflict.
func (r *UserRepositoryImpl) Insert(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("Email already registered")
		}
		return domain.NewInternalError("failed to create user", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewInternalError("failed to create user", domain.ErrNoRowsWritten)
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to fetch user", err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to fetch user", err)
	}
	return &user, nil
}

var _ domain.UserRepository = (*UserRepositoryImpl)(nil)
