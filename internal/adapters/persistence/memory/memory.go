// Package memory implements the repository interfaces over plain in-process
// data structures. It backs the default storage driver and every test, so the
// whole service can run with no database at all.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
)

// NewRegistry creates a registry with empty in-memory stores
func NewRegistry() *repositories.Registry {
	return &repositories.Registry{
		Users:         NewUserRepository(),
		RefreshTokens: NewRefreshTokenRepository(),
		Transactions:  NewTransactionRepository(),
		FeeTypes:      NewFeeTypeRepository(),
	}
}

// ============================================================
// Users
// ============================================================

type userRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]*models.User
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository() repositories.UserRepository {
	return &userRepository{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = strings.ToLower(user.Email)
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.UpdatedAt = time.Now()

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == repositories.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *userRepository) ExistsByMatricNumber(ctx context.Context, matric string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.MatricNumber == matric {
			return true, nil
		}
	}
	return false, nil
}

// ============================================================
// Refresh tokens
// ============================================================

type refreshTokenRepository struct {
	mu     sync.Mutex
	nextID uint
	tokens map[uint]*models.RefreshToken
}

// NewRefreshTokenRepository creates an in-memory refresh token repository
func NewRefreshTokenRepository() repositories.RefreshTokenRepository {
	return &refreshTokenRepository{nextID: 1, tokens: make(map[uint]*models.RefreshToken)}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token.ID = r.nextID
	r.nextID++
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	clone := *token
	r.tokens[token.ID] = &clone
	return nil
}

func (r *refreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, token := range r.tokens {
		if token.TokenHash == tokenHash {
			clone := *token
			return &clone, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[id]
	if !ok {
		return repositories.ErrRecordNotFound
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

func (r *refreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, token := range r.tokens {
		if token.TokenHash == tokenHash && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, token := range r.tokens {
		if now.After(token.ExpiresAt) {
			delete(r.tokens, id)
		}
	}
	return nil
}

// ============================================================
// Ledger
// ============================================================

type transactionRepository struct {
	mu     sync.RWMutex
	nextID uint
	// ledger is prepend-ordered: newest entry first
	ledger []*models.Transaction
}

// NewTransactionRepository creates an in-memory ledger
func NewTransactionRepository() repositories.TransactionRepository {
	return &transactionRepository{nextID: 1}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tx.ID == 0 {
		tx.ID = r.nextID
	}
	if tx.ID >= r.nextID {
		r.nextID = tx.ID + 1
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	clone := *tx
	r.ledger = append([]*models.Transaction{&clone}, r.ledger...)
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tx := range r.ledger {
		if tx.ID == id {
			clone := *tx
			return &clone, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var mine []*models.Transaction
	for _, tx := range r.ledger {
		if tx.UserID == userID {
			clone := *tx
			mine = append(mine, &clone)
		}
	}

	// Insertion order already has newest first, but sort explicitly by
	// timestamp so the ordering holds even under clock skew.
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].CreatedAt.Equal(mine[j].CreatedAt) {
			return mine[i].ID > mine[j].ID
		}
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	total := int64(len(mine))
	if offset >= len(mine) {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], total, nil
}

func (r *transactionRepository) SumAmountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum int64
	for _, tx := range r.ledger {
		if tx.UserID == userID && tx.Status == status {
			sum += tx.Amount
		}
	}
	return sum, nil
}

func (r *transactionRepository) CountByStatus(ctx context.Context, userID uint, status string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, tx := range r.ledger {
		if tx.UserID == userID && tx.Status == status {
			count++
		}
	}
	return count, nil
}

// ============================================================
// Fee catalog
// ============================================================

type feeTypeRepository struct {
	mu     sync.RWMutex
	nextID uint
	fees   []*models.FeeType
}

// NewFeeTypeRepository creates an in-memory fee catalog
func NewFeeTypeRepository() repositories.FeeTypeRepository {
	return &feeTypeRepository{nextID: 1}
}

func (r *feeTypeRepository) Create(ctx context.Context, fee *models.FeeType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fee.ID = r.nextID
	r.nextID++
	if fee.CreatedAt.IsZero() {
		fee.CreatedAt = time.Now()
	}
	clone := *fee
	r.fees = append(r.fees, &clone)
	return nil
}

func (r *feeTypeRepository) GetByCode(ctx context.Context, code string) (*models.FeeType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, fee := range r.fees {
		if fee.Code == code {
			clone := *fee
			return &clone, nil
		}
	}
	return nil, repositories.ErrRecordNotFound
}

func (r *feeTypeRepository) ListActive(ctx context.Context) ([]*models.FeeType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []*models.FeeType
	for _, fee := range r.fees {
		if fee.IsActive {
			clone := *fee
			active = append(active, &clone)
		}
	}
	return active, nil
}
