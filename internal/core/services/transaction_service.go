package services

import (
	"context"
	"errors"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/core/domain"
	"bells-pay/internal/pkg/format"
)

// TransactionService reads the payment ledger
type TransactionService struct {
	txRepo   repositories.TransactionRepository
	userRepo repositories.UserRepository
}

func NewTransactionService(txRepo repositories.TransactionRepository, userRepo repositories.UserRepository) *TransactionService {
	return &TransactionService{txRepo: txRepo, userRepo: userRepo}
}

// ListMine returns a page of the caller's transactions, newest first
func (s *TransactionService) ListMine(ctx context.Context, userID uint, offset, limit int) ([]*models.Transaction, int64, error) {
	return s.txRepo.ListByUser(ctx, userID, offset, limit)
}

// GetMine fetches one transaction and verifies ownership. A transaction that
// exists but belongs to someone else looks identical to one that does not
// exist.
func (s *TransactionService) GetMine(ctx context.Context, userID, txID uint) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if tx.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// Receipt is a print-ready rendering of a single transaction
type Receipt struct {
	Reference     string `json:"reference"`
	StudentName   string `json:"student_name"`
	MatricNumber  string `json:"matric_number"`
	FeeType       string `json:"fee_type"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	Session       string `json:"session"`
	Semester      string `json:"semester"`
	Date          string `json:"date"`
}

// GetReceipt builds a formatted receipt for one of the caller's transactions
func (s *TransactionService) GetReceipt(ctx context.Context, userID, txID uint) (*Receipt, error) {
	tx, err := s.GetMine(ctx, userID, txID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Receipt{
		Reference:     tx.Reference,
		StudentName:   user.FullName,
		MatricNumber:  user.MatricNumber,
		FeeType:       format.FeeLabel(tx.FeeCode),
		Description:   tx.Description,
		Amount:        format.Currency(tx.Amount),
		PaymentMethod: format.PaymentMethodLabel(tx.PaymentMethod),
		Status:        format.StatusLabel(tx.Status),
		Session:       tx.Session,
		Semester:      tx.Semester,
		Date:          format.DateTime(tx.CreatedAt),
	}, nil
}
