package models

import "time"

// BookingStep identifies a step in the booking wizard.
type BookingStep int

const (
	StepSchedule BookingStep = 1
	StepAddress  BookingStep = 2
	StepPayment  BookingStep = 3
)

// PaymentMethod is the customer's chosen payment option.
type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "upi"
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// BookingStatus tracks the draft through the OTP handshake.
// Draft -> AwaitingCustomerOtp -> AwaitingProviderOtp -> Confirmed.
type BookingStatus string

const (
	StatusDraft               BookingStatus = "draft"
	StatusAwaitingCustomerOtp BookingStatus = "awaiting_customer_otp"
	StatusAwaitingProviderOtp BookingStatus = "awaiting_provider_otp"
	StatusConfirmed           BookingStatus = "confirmed"
)

// OtpRole tags which party an OTP challenge belongs to.
type OtpRole string

const (
	OtpRoleCustomer OtpRole = "customer"
	OtpRoleProvider OtpRole = "provider"
)

// OtpChallenge is a generated one-time code awaiting submission.
type OtpChallenge struct {
	Code      string  `json:"code"`
	Role      OtpRole `json:"role"`
	Submitted string  `json:"submitted"`
	Verified  bool    `json:"verified"`
}

// Schedule holds the selected service date and time slot.
type Schedule struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // one of the fixed slot labels
}

// Address is the service delivery address. Landmark is optional and never
// gates step completion.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"` // exactly 6 digits once complete
	Landmark string `json:"landmark,omitempty"`
}

// CardDetails carries card payment fields, stored already formatted.
type CardDetails struct {
	Number string `json:"number"` // 16 digits grouped by 4
	Name   string `json:"name"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`    // 3-4 digits
}

// BookingDraft is an in-progress, unpersisted booking under construction.
// It is discarded on cancel and not persisted on confirmation either; only
// a notification and the completion callback mark the outcome.
type BookingDraft struct {
	SessionID     string        `json:"sessionId"`
	UserID        string        `json:"userId,omitempty"`
	Service       Service       `json:"service"`
	CurrentStep   BookingStep   `json:"currentStep"`
	Status        BookingStatus `json:"status"`
	Schedule      Schedule      `json:"schedule"`
	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CardDetails   CardDetails   `json:"cardDetails"`
	CustomerOTP   *OtpChallenge `json:"customerOtp,omitempty"`
	ProviderOTP   *OtpChallenge `json:"providerOtp,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// HistoryEntry is a past booking shown on the history page. The app keeps
// no real booking records, so these are static display data.
type HistoryEntry struct {
	ID          string `json:"id"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Price       string `json:"price"`
	Status      string `json:"status"`
}
