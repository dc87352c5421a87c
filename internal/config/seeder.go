package config

import (
	"context"
	"errors"
	"log"
	"time"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/pkg/password"
)

// Seeder fills the store with the fee catalog and, in dev mode, a demo
// student with a starting ledger. It works through the repository registry so
// both storage drivers get the same data.
type Seeder struct {
	repos *repositories.Registry
	cfg   *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(repos *repositories.Registry, cfg *Config) *Seeder {
	return &Seeder{repos: repos, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running seeders...")

	if err := s.seedFeeTypes(ctx); err != nil {
		return err
	}

	if s.cfg.IsDev() {
		if err := s.seedDemoStudent(ctx); err != nil {
			log.Printf("⚠️ Demo student seeder skipped: %v", err)
		}
	}

	log.Println("✅ Seeding completed")
	return nil
}

// seedFeeTypes seeds the fee catalog. Amount 0 marks the open-amount
// category.
func (s *Seeder) seedFeeTypes(ctx context.Context) error {
	feeTypes := []models.FeeType{
		{
			Code:        models.FeeTuition,
			Name:        "Tuition Fees",
			Description: "School fees for the semester",
			Amount:      350000,
			IsActive:    true,
		},
		{
			Code:        models.FeeSiwes,
			Name:        "SIWES Fees",
			Description: "Industrial training registration",
			Amount:      25000,
			IsActive:    true,
		},
		{
			Code:        models.FeeSwep,
			Name:        "SWEP Fees",
			Description: "Students work experience",
			Amount:      15000,
			IsActive:    true,
		},
		{
			Code:        models.FeeHostel,
			Name:        "Hostel Fees",
			Description: "Accommodation payment",
			Amount:      120000,
			IsActive:    true,
		},
		{
			Code:        models.FeeOther,
			Name:        "Other Fees",
			Description: "Departmental & miscellaneous",
			Amount:      0,
			IsActive:    true,
		},
	}

	for i := range feeTypes {
		ft := feeTypes[i]
		_, err := s.repos.FeeTypes.GetByCode(ctx, ft.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrRecordNotFound) {
			return err
		}
		if err := s.repos.FeeTypes.Create(ctx, &ft); err != nil {
			return err
		}
		log.Printf("   Created fee_type: %s", ft.Name)
	}
	return nil
}

// seedDemoStudent seeds the demo account and its starting transactions.
// Development only.
func (s *Seeder) seedDemoStudent(ctx context.Context) error {
	const demoEmail = "student@bellsuniversity.edu.ng"

	exists, err := s.repos.Users.ExistsByEmail(ctx, demoEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := password.Hash("password123")
	if err != nil {
		return err
	}

	// The demo account predates the current matric format and is inserted
	// directly, bypassing registration validation.
	student := &models.User{
		FullName:     "John Adeyemi",
		Email:        demoEmail,
		MatricNumber: "BU/21/0456",
		Password:     hashedPassword,
		Department:   "Computer Science",
		Level:        "400 Level",
		Balance:      45000,
		CreatedAt:    time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.repos.Users.Create(ctx, student); err != nil {
		return err
	}
	log.Printf("✅ Demo student created: %s", student.Email)

	transactions := []models.Transaction{
		{
			UserID:        student.ID,
			FeeCode:       models.FeeTuition,
			Amount:        350000,
			Status:        models.TxStatusSuccessful,
			Reference:     "BU-TXN-2024-001234",
			Description:   "Tuition Fee Payment - 2024/2025 Session",
			PaymentMethod: models.ChannelBankTransfer,
			Session:       "2024/2025",
			Semester:      "First Semester",
			CreatedAt:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:        student.ID,
			FeeCode:       models.FeeSiwes,
			Amount:        25000,
			Status:        models.TxStatusSuccessful,
			Reference:     "BU-TXN-2024-001235",
			Description:   "SIWES Registration Fee",
			PaymentMethod: models.ChannelCard,
			Session:       "2024/2025",
			Semester:      "Second Semester",
			CreatedAt:     time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:        student.ID,
			FeeCode:       models.FeeSwep,
			Amount:        15000,
			Status:        models.TxStatusPending,
			Reference:     "BU-TXN-2024-001236",
			Description:   "SWEP Program Fee",
			PaymentMethod: models.ChannelUSSD,
			Session:       "2024/2025",
			Semester:      "Second Semester",
			CreatedAt:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:        student.ID,
			FeeCode:       models.FeeHostel,
			Amount:        120000,
			Status:        models.TxStatusFailed,
			Reference:     "BU-TXN-2024-001237",
			Description:   "Hostel Accommodation Fee",
			PaymentMethod: models.ChannelBankTransfer,
			Session:       "2024/2025",
			Semester:      "First Semester",
			CreatedAt:     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range transactions {
		if err := s.repos.Transactions.Create(ctx, &transactions[i]); err != nil {
			return err
		}
	}
	log.Printf("   Created %d demo transactions", len(transactions))

	return nil
}
