package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & Student Tables
// ============================================================

// User represents users table
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FullName     string         `gorm:"size:100;not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	MatricNumber string         `gorm:"uniqueIndex;size:20;not null" json:"matric_number"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	Department   string         `gorm:"size:100" json:"department"`
	Level        string         `gorm:"size:20" json:"level"`
	Balance      int64          `gorm:"not null;default:0" json:"balance"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID           uint      `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MatricNumber string    `json:"matric_number"`
	Department   string    `json:"department"`
	Level        string    `json:"level"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		MatricNumber: u.MatricNumber,
		Department:   u.Department,
		Level:        u.Level,
		Balance:      u.Balance,
		CreatedAt:    u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Fee Master Table
// ============================================================

// Fee Categories
const (
	FeeTuition = "tuition"
	FeeSiwes   = "siwes"
	FeeSwep    = "swep"
	FeeHostel  = "hostel"
	FeeOther   = "other"
)

// FeeType represents the fee catalog (Master)
// Amount 0 means the amount is entered by the student (the "other" category).
type FeeType struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Amount      int64          `gorm:"not null" json:"amount"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FeeType) TableName() string {
	return "fee_types"
}

// HasFixedAmount reports whether the catalog dictates the amount
func (f *FeeType) HasFixedAmount() bool {
	return f.Amount > 0
}

// ============================================================
// Ledger Table
// ============================================================

// Transaction Statuses (assigned once at creation, never mutated)
const (
	TxStatusSuccessful = "successful"
	TxStatusPending    = "pending"
	TxStatusFailed     = "failed"
)

// Payment Channels
const (
	ChannelBankTransfer = "bank_transfer"
	ChannelCard         = "card"
	ChannelUSSD         = "ussd"
)

// Transaction represents one fee-payment attempt in the ledger
type Transaction struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	FeeCode       string    `gorm:"size:20;not null" json:"fee_code"`
	Amount        int64     `gorm:"not null" json:"amount"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	Reference     string    `gorm:"size:30;not null;index" json:"reference"`
	Description   string    `gorm:"type:text" json:"description"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	Session       string    `gorm:"size:20" json:"session"`
	Semester      string    `gorm:"size:30" json:"semester"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionResponse DTO
type TransactionResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	FeeCode       string    `json:"fee_code"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Reference     string    `json:"reference"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"payment_method"`
	Session       string    `json:"session"`
	Semester      string    `json:"semester"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t *Transaction) ToResponse() *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		UserID:        t.UserID,
		FeeCode:       t.FeeCode,
		Amount:        t.Amount,
		Status:        t.Status,
		Reference:     t.Reference,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		Session:       t.Session,
		Semester:      t.Semester,
		CreatedAt:     t.CreatedAt,
	}
}

// ValidFeeCode reports whether code names a known fee category
func ValidFeeCode(code string) bool {
	switch code {
	case FeeTuition, FeeSiwes, FeeSwep, FeeHostel, FeeOther:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether method names a known channel
func ValidPaymentMethod(method string) bool {
	switch method {
	case ChannelBankTransfer, ChannelCard, ChannelUSSD:
		return true
	}
	return false
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration (mysql driver only)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&FeeType{},
		&Transaction{},
	)
}
