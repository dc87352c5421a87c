package services

import (
	"context"
	"time"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/pkg/format"
)

// recentTransactionCount is how many ledger entries the dashboard previews
const recentTransactionCount = 5

// DashboardService aggregates the student's home-screen numbers
type DashboardService struct {
	userRepo repositories.UserRepository
	txRepo   repositories.TransactionRepository
}

func NewDashboardService(userRepo repositories.UserRepository, txRepo repositories.TransactionRepository) *DashboardService {
	return &DashboardService{userRepo: userRepo, txRepo: txRepo}
}

// DashboardResponse DTO
type DashboardResponse struct {
	Greeting           string                        `json:"greeting"`
	FullName           string                        `json:"full_name"`
	MatricNumber       string                        `json:"matric_number"`
	Balance            int64                         `json:"balance"`
	BalanceFormatted   string                        `json:"balance_formatted"`
	TotalPaid          int64                         `json:"total_paid"`
	TotalPending       int64                         `json:"total_pending"`
	FailedCount        int64                         `json:"failed_count"`
	RecentTransactions []*models.TransactionResponse `json:"recent_transactions"`
}

// GetDashboard builds the home screen for one student:
// balance, the sum of successful payments, the sum still pending, and the
// latest ledger entries.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*DashboardResponse, error) {
	// 1. Load the student
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. Aggregate the ledger by status
	totalPaid, err := s.txRepo.SumAmountByStatus(ctx, userID, models.TxStatusSuccessful)
	if err != nil {
		return nil, err
	}
	totalPending, err := s.txRepo.SumAmountByStatus(ctx, userID, models.TxStatusPending)
	if err != nil {
		return nil, err
	}
	failedCount, err := s.txRepo.CountByStatus(ctx, userID, models.TxStatusFailed)
	if err != nil {
		return nil, err
	}

	// 3. Latest activity preview
	recent, _, err := s.txRepo.ListByUser(ctx, userID, 0, recentTransactionCount)
	if err != nil {
		return nil, err
	}

	recentResponses := make([]*models.TransactionResponse, 0, len(recent))
	for _, tx := range recent {
		recentResponses = append(recentResponses, tx.ToResponse())
	}

	return &DashboardResponse{
		Greeting:           format.Greeting(time.Now()),
		FullName:           user.FullName,
		MatricNumber:       user.MatricNumber,
		Balance:            user.Balance,
		BalanceFormatted:   format.Currency(user.Balance),
		TotalPaid:          totalPaid,
		TotalPending:       totalPending,
		FailedCount:        failedCount,
		RecentTransactions: recentResponses,
	}, nil
}
