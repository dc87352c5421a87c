package format

import (
	"testing"
	"time"

	"bells-pay/internal/adapters/persistence/models"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{45000, "₦45,000"},
		{350000, "₦350,000"},
		{1234567, "₦1,234,567"},
		{-305000, "-₦305,000"},
	}
	for _, tt := range tests {
		if got := Currency(tt.amount); got != tt.want {
			t.Errorf("Currency(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestDates(t *testing.T) {
	ts := time.Date(2024, time.January, 15, 14, 5, 0, 0, time.UTC)

	if got := Date(ts); got != "15 January 2024" {
		t.Errorf("Date = %q", got)
	}
	if got := DateTime(ts); got != "15 Jan 2024, 14:05" {
		t.Errorf("DateTime = %q", got)
	}
	if got := ShortDate(ts); got != "15 Jan" {
		t.Errorf("ShortDate = %q", got)
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}
	for _, tt := range tests {
		ts := time.Date(2024, time.June, 1, tt.hour, 0, 0, 0, time.UTC)
		if got := Greeting(ts); got != tt.want {
			t.Errorf("Greeting(hour=%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if got := FeeLabel(models.FeeSiwes); got != "SIWES Fees" {
		t.Errorf("FeeLabel = %q", got)
	}
	if got := FeeLabel("mystery"); got != "Unknown" {
		t.Errorf("FeeLabel fallback = %q", got)
	}
	if got := PaymentMethodLabel(models.ChannelBankTransfer); got != "Bank Transfer" {
		t.Errorf("PaymentMethodLabel = %q", got)
	}
	if got := StatusLabel(models.TxStatusPending); got != "Pending" {
		t.Errorf("StatusLabel = %q", got)
	}
}
