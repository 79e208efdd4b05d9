package router

import (
	"go-bank-console/handler"
	"go-bank-console/web"
	"net/http"
)

func NewRouter(customerHandler *handler.CustomerHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /static/", web.Static())

	if customerHandler != nil {
		mux.Handle("GET /{$}", handler.ErrorHandlingMiddleware(customerHandler.ListCustomers))
		mux.Handle("GET /clientes", handler.ErrorHandlingMiddleware(customerHandler.ListCustomers))
		mux.Handle("GET /crear-cliente", handler.ErrorHandlingMiddleware(customerHandler.NewCustomerForm))
		mux.Handle("POST /crear-cliente", handler.ErrorHandlingMiddleware(customerHandler.CreateCustomer))
	}

	if transactionHandler != nil {
		mux.Handle("GET /transferir", handler.ErrorHandlingMiddleware(transactionHandler.TransferForm))
		mux.Handle("POST /transferir", handler.ErrorHandlingMiddleware(transactionHandler.CreateTransfer))
		mux.Handle("GET /historial", handler.ErrorHandlingMiddleware(transactionHandler.History))
		mux.Handle("GET /historial/{accountNumber}", handler.ErrorHandlingMiddleware(transactionHandler.HistoryForAccount))
	}

	var h http.Handler = mux
	h = handler.LoggingMiddleware(h)
	h = handler.SessionMiddleware(h)
	h = handler.RequestIDMiddleware(h)
	h = handler.RecoverMiddleware(h)
	return h
}
