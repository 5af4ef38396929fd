package models

import (
	"time"
)

// Виды писем, они же значения метки kind в метриках
const (
	KindPaymentInstructions = "payment_instructions"
	KindPOPReceived         = "pop_received"
	KindBookingConfirmed    = "booking_confirmed"
	KindBookingRejected     = "booking_rejected"
)

// Результаты отправки для метрик
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// BookingEmail данные заявки, которые попадают в письмо клиенту
type BookingEmail struct {
	BookingID    string
	CustomerName string
	Email        string
	ServiceName  string
	StartTime    time.Time
	AmountDue    float64
	Reference    string
}

// BankingDetails реквизиты студии для оплаты
type BankingDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	BranchCode    string
	AccountType   string
}

// Settings настройки писем
type Settings struct {
	StudioName string
	AppURL     string
	Banking    BankingDetails
	Location   *time.Location
	Timeout    time.Duration
}
