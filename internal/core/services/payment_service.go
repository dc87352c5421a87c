package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/config"
	"bells-pay/internal/core/domain"
	"bells-pay/internal/pkg/reference"
)

// WizardStep names a payment wizard state
type WizardStep string

const (
	StepSelectFee     WizardStep = "select-fee"
	StepPaymentMethod WizardStep = "payment-method"
	StepConfirm       WizardStep = "confirm"
	StepProcessing    WizardStep = "processing"
	StepSuccess       WizardStep = "success"
)

// PaymentService drives the fee-payment wizard and writes the ledger
type PaymentService struct {
	feeRepo  repositories.FeeTypeRepository
	txRepo   repositories.TransactionRepository
	userRepo repositories.UserRepository
	cfg      *config.Config
	sleep    Sleeper

	// rng feeds the outcome draw and reference codes. rand.Rand is not
	// goroutine safe, hence the mutex. Seedable so tests can force branches.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPaymentService creates a new payment service. A nil rng falls back to a
// time-seeded source; a nil sleep falls back to real timers.
func NewPaymentService(
	feeRepo repositories.FeeTypeRepository,
	txRepo repositories.TransactionRepository,
	userRepo repositories.UserRepository,
	cfg *config.Config,
	rng *rand.Rand,
	sleep Sleeper,
) *PaymentService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sleep == nil {
		sleep = DefaultSleeper
	}
	return &PaymentService{
		feeRepo:  feeRepo,
		txRepo:   txRepo,
		userRepo: userRepo,
		cfg:      cfg,
		sleep:    sleep,
		rng:      rng,
	}
}

// Wizard is one student's walk through the payment flow:
// select-fee → payment-method → confirm → processing → success, with a
// declined payment looping processing back to confirm. The wizard itself is
// transient; only the transactions it records survive.
type Wizard struct {
	svc      *PaymentService
	userID   uint
	session  string
	semester string

	step   WizardStep
	fee    *models.FeeType
	amount int64
	method string
	last   *models.Transaction
}

// NewWizard starts a wizard at the fee-selection step
func (s *PaymentService) NewWizard(userID uint) *Wizard {
	return &Wizard{
		svc:      s,
		userID:   userID,
		session:  s.cfg.Payment.Session,
		semester: s.cfg.Payment.Semester,
		step:     StepSelectFee,
	}
}

// Step returns the wizard's current state
func (w *Wizard) Step() WizardStep {
	return w.step
}

// Amount returns the amount that will be charged
func (w *Wizard) Amount() int64 {
	return w.amount
}

// Transaction returns the most recently recorded attempt, if any
func (w *Wizard) Transaction() *models.Transaction {
	return w.last
}

// SelectFee records the chosen fee category and advances to payment-method.
// Catalog fees carry their own amount; the "other" category requires a
// strictly positive custom amount. A failed guard leaves the step unchanged.
func (w *Wizard) SelectFee(ctx context.Context, code string, customAmount int64) error {
	if w.step != StepSelectFee {
		return domain.ErrWrongStep
	}
	if code == "" {
		return fmt.Errorf("%w: please select a fee type", domain.ErrValidationFailed)
	}

	fee, err := w.svc.feeRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return domain.ErrFeeTypeNotFound
		}
		return err
	}

	amount := fee.Amount
	if !fee.HasFixedAmount() {
		if customAmount <= 0 {
			return fmt.Errorf("%w: please enter a valid amount", domain.ErrValidationFailed)
		}
		amount = customAmount
	}

	w.fee = fee
	w.amount = amount
	w.step = StepPaymentMethod
	return nil
}

// SelectMethod records the payment channel and advances to confirm
func (w *Wizard) SelectMethod(method string) error {
	if w.step != StepPaymentMethod {
		return domain.ErrWrongStep
	}
	if method == "" {
		return fmt.Errorf("%w: please select a payment method", domain.ErrValidationFailed)
	}
	if !models.ValidPaymentMethod(method) {
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrValidationFailed, method)
	}

	w.method = method
	w.step = StepConfirm
	return nil
}

// Back steps the wizard back one screen from payment-method or confirm
func (w *Wizard) Back() error {
	switch w.step {
	case StepPaymentMethod:
		w.step = StepSelectFee
	case StepConfirm:
		w.step = StepPaymentMethod
	default:
		return domain.ErrWrongStep
	}
	return nil
}

// Confirm is the point of no return. It moves to processing, waits out the
// simulated processor delay, draws the outcome, and records a transaction
// either way. Success debits the balance (no floor: it may go negative) and
// lands on the success step. A decline returns to confirm with
// ErrPaymentDeclined so the student can retry; each retry records its own
// transaction with its own reference.
func (w *Wizard) Confirm(ctx context.Context) (*models.Transaction, error) {
	if w.step != StepConfirm {
		return nil, domain.ErrWrongStep
	}

	w.step = StepProcessing
	if err := w.svc.sleep(ctx, w.svc.cfg.Payment.ProcessingDelay); err != nil {
		w.step = StepConfirm
		return nil, err
	}

	succeeded, ref := w.svc.draw()

	status := models.TxStatusFailed
	if succeeded {
		status = models.TxStatusSuccessful
	}

	tx := &models.Transaction{
		UserID:        w.userID,
		FeeCode:       w.fee.Code,
		Amount:        w.amount,
		Status:        status,
		Reference:     ref,
		Description:   fmt.Sprintf("%s - %s %s", w.fee.Name, w.session, w.semester),
		PaymentMethod: w.method,
		Session:       w.session,
		Semester:      w.semester,
		CreatedAt:     time.Now(),
	}

	if err := w.svc.txRepo.Create(ctx, tx); err != nil {
		w.step = StepConfirm
		return nil, err
	}
	w.last = tx

	if !succeeded {
		w.step = StepConfirm
		log.Printf("⚠️ Payment declined: user=%d ref=%s amount=%d", w.userID, ref, w.amount)
		return tx, domain.ErrPaymentDeclined
	}

	if err := w.svc.debit(ctx, w.userID, w.amount); err != nil {
		return nil, err
	}

	w.step = StepSuccess
	log.Printf("✅ Payment successful: user=%d ref=%s amount=%d", w.userID, ref, w.amount)
	return tx, nil
}

// PayInput is a one-shot request covering the whole wizard
type PayInput struct {
	FeeCode       string `json:"fee_code" validate:"required"`
	Amount        int64  `json:"amount" validate:"gte=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=bank_transfer card ussd"`
}

// Pay drives a fresh wizard through all steps for a single attempt
func (s *PaymentService) Pay(ctx context.Context, userID uint, input *PayInput) (*models.Transaction, error) {
	w := s.NewWizard(userID)
	if err := w.SelectFee(ctx, input.FeeCode, input.Amount); err != nil {
		return nil, err
	}
	if err := w.SelectMethod(input.PaymentMethod); err != nil {
		return nil, err
	}
	return w.Confirm(ctx)
}

// ListFees returns the active fee catalog
func (s *PaymentService) ListFees(ctx context.Context) ([]*models.FeeType, error) {
	return s.feeRepo.ListActive(ctx)
}

// draw rolls the simulated processor outcome and a reference code under one
// lock so concurrent wizards never interleave rng reads
func (s *PaymentService) draw() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	succeeded := s.rng.Float64() < s.cfg.Payment.SuccessRate
	ref := reference.Generate(s.rng, time.Now())
	return succeeded, ref
}

// debit subtracts amount from the user's balance. No floor is enforced.
func (s *PaymentService) debit(ctx context.Context, userID uint, amount int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Balance -= amount
	return s.userRepo.Update(ctx, user)
}
