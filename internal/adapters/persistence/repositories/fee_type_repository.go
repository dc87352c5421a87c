package repositories

import (
	"context"

	"bells-pay/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// feeTypeRepository implements FeeTypeRepository interface
type feeTypeRepository struct {
	db *gorm.DB
}

// NewFeeTypeRepository creates a new fee type repository
func NewFeeTypeRepository(db *gorm.DB) FeeTypeRepository {
	return &feeTypeRepository{db: db}
}

// Create adds a fee type to the catalog
func (r *feeTypeRepository) Create(ctx context.Context, fee *models.FeeType) error {
	return r.db.WithContext(ctx).Create(fee).Error
}

// GetByCode gets a fee type by its code
func (r *feeTypeRepository) GetByCode(ctx context.Context, code string) (*models.FeeType, error) {
	var fee models.FeeType
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&fee).Error
	if err != nil {
		return nil, translate(err)
	}
	return &fee, nil
}

// ListActive lists active fee types in catalog order
func (r *feeTypeRepository) ListActive(ctx context.Context) ([]*models.FeeType, error) {
	var fees []*models.FeeType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// NewGormRegistry wires every repository onto one gorm connection
func NewGormRegistry(db *gorm.DB) *Registry {
	return &Registry{
		Users:         NewUserRepository(db),
		RefreshTokens: NewRefreshTokenRepository(db),
		Transactions:  NewTransactionRepository(db),
		FeeTypes:      NewFeeTypeRepository(db),
	}
}
