package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		tx   Transaction
		want Direction
	}{
		"receiver is the queried account": {
			tx:   Transaction{SenderAccountNumber: "ACC-2", ReceiverAccountNumber: "ACC-1"},
			want: Inbound,
		},
		"sender is the queried account": {
			tx:   Transaction{SenderAccountNumber: "ACC-1", ReceiverAccountNumber: "ACC-2"},
			want: Outbound,
		},
		"neither party matches": {
			tx:   Transaction{SenderAccountNumber: "ACC-3", ReceiverAccountNumber: "ACC-2"},
			want: Unknown,
		},
		"self transfer counts as inbound": {
			tx:   Transaction{SenderAccountNumber: "ACC-1", ReceiverAccountNumber: "ACC-1"},
			want: Inbound,
		},
	}
	for description, tc := range cases {
		t.Run(description, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.tx, "ACC-1"))
		})
	}
}

func TestDirectionPresentation(t *testing.T) {
	assert.Equal(t, "green", Inbound.Color())
	assert.Equal(t, "red", Outbound.Color())
	assert.Equal(t, "gray", Unknown.Color())

	fifty := decimal.NewFromInt(50)
	assert.Equal(t, "+$50.00", FormatSigned(Inbound, fifty))
	assert.Equal(t, "-$50.00", FormatSigned(Outbound, fifty))
	assert.Equal(t, "+$50.00", FormatSigned(Unknown, fifty))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$0.00", FormatMoney(decimal.Zero))
	assert.Equal(t, "$-20.00", FormatMoney(decimal.NewFromInt(-20)))
	assert.Equal(t, "$10.13", FormatMoney(decimal.RequireFromString("10.125")))
}

func TestTimestamp(t *testing.T) {
	t.Run("zone-less local date-time", func(t *testing.T) {
		var tx Transaction
		err := json.Unmarshal([]byte(`{"id":1,"amount":5,"transactionDate":"2024-05-01T10:20:30.123456"}`), &tx)
		require.NoError(t, err)
		require.NotNil(t, tx.TransactionDate)
		assert.Equal(t, "2024-05-01 10:20:30", FormatDate(tx.TransactionDate))
	})

	t.Run("zoned date-time", func(t *testing.T) {
		ts, err := ParseTimestamp("2024-05-01T10:20:30Z")
		require.NoError(t, err)
		assert.Equal(t, time.May, ts.Month())
	})

	t.Run("missing date", func(t *testing.T) {
		var tx Transaction
		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"amount":5}`), &tx))
		assert.Equal(t, "N/A", FormatDate(tx.TransactionDate))
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseTimestamp("yesterday")
		assert.Error(t, err)
	})
}

func TestViewState(t *testing.T) {
	assert.Equal(t, StatusIdle, Idle().Status)
	assert.True(t, Success("ok").IsSuccess())
	assert.True(t, Failure("boom").IsError())
	assert.False(t, Success("ok").IsError())
}
