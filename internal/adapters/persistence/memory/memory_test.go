package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestTransactionListByUserOrdersNewestFirst(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	// Inserted out of chronological order on purpose
	entries := []*models.Transaction{
		{UserID: 1, Amount: 100, Status: models.TxStatusSuccessful, CreatedAt: day(10)},
		{UserID: 1, Amount: 200, Status: models.TxStatusSuccessful, CreatedAt: day(20)},
		{UserID: 2, Amount: 999, Status: models.TxStatusSuccessful, CreatedAt: day(25)},
		{UserID: 1, Amount: 300, Status: models.TxStatusSuccessful, CreatedAt: day(5)},
	}
	for _, tx := range entries {
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mine, total, err := repo.ListByUser(ctx, 1, 0, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 entries for user 1, got %d", total)
	}

	want := []int64{200, 100, 300}
	for i, tx := range mine {
		if tx.Amount != want[i] {
			t.Errorf("position %d: expected amount %d, got %d", i, want[i], tx.Amount)
		}
		if tx.UserID != 1 {
			t.Errorf("foreign entry leaked into user 1's history: %+v", tx)
		}
	}
}

func TestTransactionListByUserTiebreaksOnID(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	same := day(15)
	for i := 0; i < 3; i++ {
		tx := &models.Transaction{UserID: 1, Amount: int64(i), CreatedAt: same}
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	mine, _, err := repo.ListByUser(ctx, 1, 0, 10)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	for i := 1; i < len(mine); i++ {
		if mine[i-1].ID < mine[i].ID {
			t.Errorf("equal timestamps must order by descending id, got %d before %d",
				mine[i-1].ID, mine[i].ID)
		}
	}
}

func TestTransactionListByUserPagination(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		tx := &models.Transaction{UserID: 1, Amount: int64(i), CreatedAt: day(i)}
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, total, err := repo.ListByUser(ctx, 1, 2, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}
	// Newest first: amounts 5,4 | 3,2 | 1
	if page[0].Amount != 3 || page[1].Amount != 2 {
		t.Errorf("expected amounts [3 2], got [%d %d]", page[0].Amount, page[1].Amount)
	}

	// Offset past the end yields an empty page, not an error
	empty, total, err := repo.ListByUser(ctx, 1, 10, 2)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(empty) != 0 || total != 5 {
		t.Errorf("expected empty page with total 5, got %d entries, total %d", len(empty), total)
	}
}

func TestTransactionAggregates(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	fixtures := []*models.Transaction{
		{UserID: 1, Amount: 350000, Status: models.TxStatusSuccessful},
		{UserID: 1, Amount: 25000, Status: models.TxStatusSuccessful},
		{UserID: 1, Amount: 15000, Status: models.TxStatusPending},
		{UserID: 1, Amount: 120000, Status: models.TxStatusFailed},
		{UserID: 2, Amount: 777, Status: models.TxStatusSuccessful},
	}
	for _, tx := range fixtures {
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	tests := []struct {
		status  string
		wantSum int64
	}{
		{models.TxStatusSuccessful, 375000},
		{models.TxStatusPending, 15000},
		{models.TxStatusFailed, 120000},
	}
	for _, tt := range tests {
		sum, err := repo.SumAmountByStatus(ctx, 1, tt.status)
		if err != nil {
			t.Fatalf("SumAmountByStatus(%s): %v", tt.status, err)
		}
		if sum != tt.wantSum {
			t.Errorf("sum for %s: expected %d, got %d", tt.status, tt.wantSum, sum)
		}
	}

	count, err := repo.CountByStatus(ctx, 1, models.TxStatusFailed)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 failed entry, got %d", count)
	}
}

func TestTransactionGetByID(t *testing.T) {
	repo := NewTransactionRepository()
	ctx := context.Background()

	tx := &models.Transaction{UserID: 1, Amount: 5000, Reference: "BU-TXN-2024-123456"}
	if err := repo.Create(ctx, tx); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Reference != tx.Reference {
		t.Errorf("expected reference %q, got %q", tx.Reference, got.Reference)
	}

	// Mutating the returned record must not touch the stored one
	got.Amount = 1
	again, _ := repo.GetByID(ctx, tx.ID)
	if again.Amount != 5000 {
		t.Errorf("stored record mutated through a read: %d", again.Amount)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &models.User{
		FullName:     "John Adeyemi",
		Email:        "Student@BellsUniversity.edu.ng",
		MatricNumber: "BU/21/04567",
		Balance:      45000,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	// Stored and queried lowercased
	got, err := repo.GetByEmail(ctx, "student@bellsuniversity.edu.ng")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, got.ID)
	}

	exists, err := repo.ExistsByMatricNumber(ctx, "BU/21/04567")
	if err != nil || !exists {
		t.Errorf("ExistsByMatricNumber = %v, %v", exists, err)
	}

	got.Balance -= 25000
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, _ := repo.GetByID(ctx, user.ID)
	if updated.Balance != 20000 {
		t.Errorf("expected balance 20000, got %d", updated.Balance)
	}

	if err := repo.Update(ctx, &models.User{ID: 999}); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserCreateKeepsSeededIDs(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	seeded := &models.User{ID: 7, Email: "seed@bellsuniversity.edu.ng"}
	if err := repo.Create(ctx, seeded); err != nil {
		t.Fatalf("Create seeded: %v", err)
	}

	next := &models.User{Email: "next@bellsuniversity.edu.ng"}
	if err := repo.Create(ctx, next); err != nil {
		t.Fatalf("Create next: %v", err)
	}
	if next.ID <= 7 {
		t.Errorf("auto id must advance past seeded ids, got %d", next.ID)
	}
}

func TestRefreshTokenRepository(t *testing.T) {
	repo := NewRefreshTokenRepository()
	ctx := context.Background()

	live := &models.RefreshToken{UserID: 1, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}
	expired := &models.RefreshToken{UserID: 1, TokenHash: "expired", ExpiresAt: time.Now().Add(-time.Hour)}
	for _, token := range []*models.RefreshToken{live, expired} {
		if err := repo.Create(ctx, token); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.RevokeByTokenHash(ctx, "live"); err != nil {
		t.Fatalf("RevokeByTokenHash: %v", err)
	}
	got, err := repo.GetByTokenHash(ctx, "live")
	if err != nil {
		t.Fatalf("GetByTokenHash: %v", err)
	}
	if !got.IsRevoked() {
		t.Error("expected token to be revoked")
	}

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if _, err := repo.GetByTokenHash(ctx, "expired"); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("expected expired token gone, got %v", err)
	}
	if _, err := repo.GetByTokenHash(ctx, "live"); err != nil {
		t.Fatalf("live token must survive cleanup: %v", err)
	}
}

func TestFeeTypeRepository(t *testing.T) {
	repo := NewFeeTypeRepository()
	ctx := context.Background()

	fees := []models.FeeType{
		{Code: models.FeeTuition, Name: "Tuition Fees", Amount: 350000, IsActive: true},
		{Code: "legacy", Name: "Legacy Fee", Amount: 1000, IsActive: false},
	}
	for i := range fees {
		if err := repo.Create(ctx, &fees[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].Code != models.FeeTuition {
		t.Errorf("expected only the active tuition entry, got %+v", active)
	}

	if _, err := repo.GetByCode(ctx, "missing"); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
