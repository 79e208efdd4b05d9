package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded transfer between two accounts. It is read-only
// for the console.
type Transaction struct {
	ID                    int64           `json:"id"`
	SenderAccountNumber   string          `json:"senderAccountNumber"`
	ReceiverAccountNumber string          `json:"receiverAccountNumber"`
	Amount                decimal.Decimal `json:"amount"`
	TransactionDate       *Timestamp      `json:"transactionDate,omitempty"`
}

// TransferRequest is the transient input of a transfer.
type TransferRequest struct {
	SenderAccountNumber   string          `json:"senderAccountNumber" validate:"required"`
	ReceiverAccountNumber string          `json:"receiverAccountNumber" validate:"required,nefield=SenderAccountNumber"`
	Amount                decimal.Decimal `json:"amount" validate:"gt=0"`
}

// The backend serializes a zone-less local date-time; zoned forms are
// accepted as well.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Timestamp is an ISO-8601 date-time assigned by the backend.
type Timestamp struct {
	time.Time
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}
