package handler

import (
	"net/http"
	"strings"

	"go-bank-console/common"
	"go-bank-console/model"
	"go-bank-console/service"
	"go-bank-console/web"

	"github.com/shopspring/decimal"
)

// CustomerHandler serves the customers list and the create-customer form.
type CustomerHandler struct {
	customers *service.CustomerService
	creator   *service.CreateCustomerService
	inflight  *service.Inflight
	renderer  Renderer
}

func NewCustomerHandler(customers *service.CustomerService, creator *service.CreateCustomerService, inflight *service.Inflight, renderer Renderer) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		creator:   creator,
		inflight:  inflight,
		renderer:  renderer,
	}
}

// ListCustomers renders every customer, or the one matching ?id=.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) *common.AppError {
	term := strings.TrimSpace(r.URL.Query().Get("id"))

	page, _, err := service.Run(h.inflight, SessionID(r.Context()), web.ViewCustomers, term, func() service.CustomersPage {
		return h.customers.Search(r.Context(), term)
	})
	if err != nil {
		page = service.CustomersPage{State: model.Failure(service.MsgBusy), SearchTerm: term}
	}

	return render(h.renderer, w, web.ViewCustomers, "Consultar Clientes y Saldos", "/clientes", page)
}

// NewCustomerForm renders an empty create-customer form.
func (h *CustomerHandler) NewCustomerForm(w http.ResponseWriter, r *http.Request) *common.AppError {
	page := service.CreateCustomerPage{State: formState(h.inflight, r, web.ViewCreateCustomer)}
	return render(h.renderer, w, web.ViewCreateCustomer, "Crear Nuevo Cliente", "/crear-cliente", page)
}

// CreateCustomer submits the create-customer form.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := r.ParseForm(); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid form body", err)
	}

	balance, ok := parseAmount(r.PostForm.Get("balance"))
	form := model.NewCustomer{
		FirstName:     strings.TrimSpace(r.PostForm.Get("firstName")),
		LastName:      strings.TrimSpace(r.PostForm.Get("lastName")),
		AccountNumber: strings.TrimSpace(r.PostForm.Get("accountNumber")),
		Balance:       balance,
	}
	if !ok {
		page := service.CreateCustomerPage{State: model.Failure(service.MsgCreateCustomerInvalid), Form: form}
		return render(h.renderer, w, web.ViewCreateCustomer, "Crear Nuevo Cliente", "/crear-cliente", page)
	}
	input := strings.Join([]string{form.FirstName, form.LastName, form.AccountNumber, form.Balance.String()}, "|")

	page, _, err := service.Run(h.inflight, SessionID(r.Context()), web.ViewCreateCustomer, input, func() service.CreateCustomerPage {
		return h.creator.Create(r.Context(), form)
	})
	if err != nil {
		page = service.CreateCustomerPage{State: model.Failure(service.MsgBusy), Form: form}
	}

	return render(h.renderer, w, web.ViewCreateCustomer, "Crear Nuevo Cliente", "/crear-cliente", page)
}

// parseAmount reads a numeric form field. ok is false for an empty or
// unparsable value.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
