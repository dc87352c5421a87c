package repositories

import (
	"context"

	"bells-pay/internal/adapters/persistence/models"
)

// ErrRecordNotFound is returned by every backing when a lookup misses.
// The gorm backing translates gorm.ErrRecordNotFound into it so services
// never depend on the storage driver.
type notFoundError struct{}

func (notFoundError) Error() string { return "record not found" }

// ErrRecordNotFound is the storage-agnostic miss sentinel
var ErrRecordNotFound error = notFoundError{}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByMatricNumber(ctx context.Context, matric string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// TransactionRepository defines the ledger interface.
// Records are append-only: no Update or Delete exists on purpose.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Transaction, int64, error)
	SumAmountByStatus(ctx context.Context, userID uint, status string) (int64, error)
	CountByStatus(ctx context.Context, userID uint, status string) (int64, error)
}

// FeeTypeRepository defines the fee catalog interface
type FeeTypeRepository interface {
	Create(ctx context.Context, fee *models.FeeType) error
	GetByCode(ctx context.Context, code string) (*models.FeeType, error)
	ListActive(ctx context.Context) ([]*models.FeeType, error)
}

// Registry bundles one repository per aggregate so the storage driver can be
// swapped in a single place (gorm for mysql, memory for the in-process store).
type Registry struct {
	Users         UserRepository
	RefreshTokens RefreshTokenRepository
	Transactions  TransactionRepository
	FeeTypes      FeeTypeRepository
}
