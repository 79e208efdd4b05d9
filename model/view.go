package model

import (
	"github.com/shopspring/decimal"
)

// Status is the state of a view after its last action.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ViewState carries the outcome of the last action of a view.
type ViewState struct {
	Status  Status
	Message string
}

func Idle() ViewState { return ViewState{Status: StatusIdle} }

func Success(msg string) ViewState { return ViewState{Status: StatusSuccess, Message: msg} }

func Failure(msg string) ViewState { return ViewState{Status: StatusError, Message: msg} }

// Loading marks a form whose previous submission is still running.
func Loading(msg string) ViewState { return ViewState{Status: StatusLoading, Message: msg} }

func (s ViewState) IsError() bool { return s.Status == StatusError }

func (s ViewState) IsSuccess() bool { return s.Status == StatusSuccess }

func (s ViewState) IsLoading() bool { return s.Status == StatusLoading }

// Direction classifies a transaction relative to a queried account.
type Direction string

const (
	Inbound  Direction = "INGRESO"
	Outbound Direction = "EGRESO"
	Unknown  Direction = "DESCONOCIDO"
)

// Classify compares the transaction's parties against account. A transfer
// to the account itself counts as inbound.
func Classify(tx Transaction, account string) Direction {
	if tx.ReceiverAccountNumber == account {
		return Inbound
	}
	if tx.SenderAccountNumber == account {
		return Outbound
	}
	return Unknown
}

// Color is the display color of the direction.
func (d Direction) Color() string {
	switch d {
	case Inbound:
		return "green"
	case Outbound:
		return "red"
	default:
		return "gray"
	}
}

// Sign is the prefix of a signed amount for the direction.
func (d Direction) Sign() string {
	if d == Outbound {
		return "-"
	}
	return "+"
}

// FormatMoney renders an amount as $ followed by two decimals.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatSigned renders an amount with the sign of the direction, e.g. +$50.00.
func FormatSigned(d Direction, amount decimal.Decimal) string {
	return d.Sign() + FormatMoney(amount)
}

// DateLayout is how transaction dates are displayed.
const DateLayout = "2006-01-02 15:04:05"

// FormatDate renders an optional backend timestamp, N/A when missing.
func FormatDate(ts *Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "N/A"
	}
	return ts.Format(DateLayout)
}
