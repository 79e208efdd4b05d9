package service

import (
	"context"
	"fmt"

	"go-bank-console/bankapi"
	"go-bank-console/common"
	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/sirupsen/logrus"
)

const (
	MsgTransferInvalid = "Verifica el monto y las cuentas (no pueden ser iguales)."
	MsgTransferFailed  = "Error desconocido al realizar la transferencia."
	MsgHistoryFailed   = "No se pudo cargar el historial. Verifica el número de cuenta y la conexión."
)

type Transferer interface {
	Transfer(ctx context.Context, req model.TransferRequest) (*model.Transaction, error)
}

type HistoryReader interface {
	GetHistory(ctx context.Context, accountNumber string) ([]model.Transaction, error)
}

// TransferPage is the state of the transfer form.
type TransferPage struct {
	State model.ViewState
	Form  model.TransferRequest
}

type TransferService struct {
	api Transferer
}

func NewTransferService(api Transferer) *TransferService {
	return &TransferService{api: api}
}

// Transfer rejects non-positive amounts and identical or missing accounts
// before calling the backend. A 400 from the backend is shown verbatim.
func (s *TransferService) Transfer(ctx context.Context, req model.TransferRequest) TransferPage {
	if err := common.Validate(req); err != nil {
		return TransferPage{State: model.Failure(MsgTransferInvalid), Form: req}
	}

	log := logger.Log.WithFields(logrus.Fields{
		"view":     "transfer",
		"sender":   req.SenderAccountNumber,
		"receiver": req.ReceiverAccountNumber,
		"amount":   req.Amount.String(),
	})
	log.Info("Submitting transfer")

	tx, err := s.api.Transfer(ctx, req)
	if err != nil {
		log.WithError(err).Error("Transfer failed")
		if detail, ok := bankapi.Detail(err); ok && bankapi.IsBadRequest(err) {
			return TransferPage{State: model.Failure(detail), Form: req}
		}
		return TransferPage{State: model.Failure(MsgTransferFailed), Form: req}
	}

	log.WithField("transaction_id", tx.ID).Info("Transfer completed")
	msg := fmt.Sprintf("Transferencia exitosa. ID: %d por %s.", tx.ID, model.FormatMoney(tx.Amount))
	return TransferPage{State: model.Success(msg)}
}

// HistoryEntry is a transaction classified against the queried account.
type HistoryEntry struct {
	model.Transaction
	Direction model.Direction
}

func (e HistoryEntry) Date() string   { return model.FormatDate(e.TransactionDate) }
func (e HistoryEntry) Signed() string { return model.FormatSigned(e.Direction, e.Amount) }
func (e HistoryEntry) Color() string  { return e.Direction.Color() }

// HistoryPage is the state of the history view.
type HistoryPage struct {
	State   model.ViewState
	Account string
	Entries []HistoryEntry
}

// EmptyMessage is shown when a query succeeded with no transactions.
func (p HistoryPage) EmptyMessage() string {
	if p.Account == "" || p.State.IsError() || len(p.Entries) > 0 {
		return ""
	}
	return fmt.Sprintf("No se encontraron transacciones para la cuenta %s.", p.Account)
}

type HistoryService struct {
	api HistoryReader
}

func NewHistoryService(api HistoryReader) *HistoryService {
	return &HistoryService{api: api}
}

// Query fetches the history of account. An empty account leaves the view
// idle without calling the backend.
func (s *HistoryService) Query(ctx context.Context, account string) HistoryPage {
	if account == "" {
		return HistoryPage{State: model.Idle()}
	}

	txs, err := s.api.GetHistory(ctx, account)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"view":    "history",
			"account": account,
		}).WithError(err).Error("Could not load history")
		return HistoryPage{State: model.Failure(MsgHistoryFailed), Account: account}
	}

	entries := make([]HistoryEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, HistoryEntry{Transaction: tx, Direction: model.Classify(tx, account)})
	}
	return HistoryPage{State: model.Success(""), Account: account, Entries: entries}
}
