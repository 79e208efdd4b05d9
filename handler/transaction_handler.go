package handler

import (
	"net/http"
	"strings"

	"go-bank-console/common"
	"go-bank-console/model"
	"go-bank-console/service"
	"go-bank-console/web"
)

// TransactionHandler serves the transfer form and the history view.
type TransactionHandler struct {
	transfers *service.TransferService
	history   *service.HistoryService
	inflight  *service.Inflight
	renderer  Renderer
}

func NewTransactionHandler(transfers *service.TransferService, history *service.HistoryService, inflight *service.Inflight, renderer Renderer) *TransactionHandler {
	return &TransactionHandler{
		transfers: transfers,
		history:   history,
		inflight:  inflight,
		renderer:  renderer,
	}
}

// TransferForm renders an empty transfer form.
func (h *TransactionHandler) TransferForm(w http.ResponseWriter, r *http.Request) *common.AppError {
	page := service.TransferPage{State: formState(h.inflight, r, web.ViewTransfer)}
	return render(h.renderer, w, web.ViewTransfer, "Realizar Transferencia", "/transferir", page)
}

// CreateTransfer submits the transfer form.
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := r.ParseForm(); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid form body", err)
	}

	amount, ok := parseAmount(r.PostForm.Get("amount"))
	req := model.TransferRequest{
		SenderAccountNumber:   strings.TrimSpace(r.PostForm.Get("senderAccountNumber")),
		ReceiverAccountNumber: strings.TrimSpace(r.PostForm.Get("receiverAccountNumber")),
		Amount:                amount,
	}
	if !ok {
		page := service.TransferPage{State: model.Failure(service.MsgTransferInvalid), Form: req}
		return render(h.renderer, w, web.ViewTransfer, "Realizar Transferencia", "/transferir", page)
	}
	input := strings.Join([]string{req.SenderAccountNumber, req.ReceiverAccountNumber, req.Amount.String()}, "|")

	page, _, err := service.Run(h.inflight, SessionID(r.Context()), web.ViewTransfer, input, func() service.TransferPage {
		return h.transfers.Transfer(r.Context(), req)
	})
	if err != nil {
		page = service.TransferPage{State: model.Failure(service.MsgBusy), Form: req}
	}

	return render(h.renderer, w, web.ViewTransfer, "Realizar Transferencia", "/transferir", page)
}

// History renders the history form and, when ?account= is set, the account's
// transactions.
func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.renderHistory(w, r, strings.TrimSpace(r.URL.Query().Get("account")))
}

// HistoryForAccount renders the history of the account in the URL path.
func (h *TransactionHandler) HistoryForAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.renderHistory(w, r, strings.TrimSpace(r.PathValue("accountNumber")))
}

func (h *TransactionHandler) renderHistory(w http.ResponseWriter, r *http.Request, account string) *common.AppError {
	page, _, err := service.Run(h.inflight, SessionID(r.Context()), web.ViewHistory, account, func() service.HistoryPage {
		return h.history.Query(r.Context(), account)
	})
	if err != nil {
		page = service.HistoryPage{State: model.Failure(service.MsgBusy), Account: account}
	}

	return render(h.renderer, w, web.ViewHistory, "Histórico de Transacciones", "/historial", page)
}
