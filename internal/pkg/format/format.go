// Package format renders amounts, dates and enum labels for receipts and
// dashboard payloads.
package format

import (
	"fmt"
	"strings"
	"time"

	"bells-pay/internal/adapters/persistence/models"
)

// NairaSign is the currency symbol used across the portal
const NairaSign = "₦"

// Currency renders an amount in naira with thousands separators and no
// decimals, e.g. -45000 -> "-₦45,000".
func Currency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + NairaSign + group(amount)
}

// group inserts comma separators into a non-negative integer
func group(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Date renders a long-form date, e.g. "15 January 2024"
func Date(t time.Time) string {
	return t.Format("2 January 2006")
}

// DateTime renders a short date with time, e.g. "15 Jan 2024, 14:05"
func DateTime(t time.Time) string {
	return t.Format("2 Jan 2006, 15:04")
}

// ShortDate renders a compact date, e.g. "15 Jan"
func ShortDate(t time.Time) string {
	return t.Format("2 Jan")
}

// Greeting returns a time-of-day greeting for the dashboard header
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// FeeLabel returns the display name of a fee category code
func FeeLabel(code string) string {
	switch code {
	case models.FeeTuition:
		return "Tuition Fees"
	case models.FeeSiwes:
		return "SIWES Fees"
	case models.FeeSwep:
		return "SWEP Fees"
	case models.FeeHostel:
		return "Hostel Fees"
	case models.FeeOther:
		return "Other Fees"
	}
	return "Unknown"
}

// PaymentMethodLabel returns the display name of a payment channel
func PaymentMethodLabel(method string) string {
	switch method {
	case models.ChannelBankTransfer:
		return "Bank Transfer"
	case models.ChannelCard:
		return "Card Payment"
	case models.ChannelUSSD:
		return "USSD"
	}
	return "Unknown"
}

// StatusLabel returns the display name of a transaction status
func StatusLabel(status string) string {
	switch status {
	case models.TxStatusSuccessful:
		return "Successful"
	case models.TxStatusPending:
		return "Pending"
	case models.TxStatusFailed:
		return "Failed"
	}
	return "Unknown"
}
