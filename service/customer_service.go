// file: service/customer_service.go

package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go-bank-console/bankapi"
	"go-bank-console/logger"
	"go-bank-console/model"

	"github.com/sirupsen/logrus"
)

const (
	MsgInvalidSearchID   = "El ID de búsqueda debe ser un número entero positivo."
	MsgCustomersFailed   = "Error al cargar la lista de clientes. Asegúrate de que el backend esté corriendo."
	MsgNoCustomerWithID  = "No se encontraron clientes con el ID especificado."
	MsgNoCustomersInBank = "No hay clientes registrados en el sistema."
)

// CustomerReader is the part of the backend API the customers view reads.
type CustomerReader interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
}

// CustomersPage is the state of the customers view.
type CustomersPage struct {
	State      model.ViewState
	SearchTerm string
	Customers  []model.Customer
}

// EmptyMessage is shown when a successful load returned no customers.
func (p CustomersPage) EmptyMessage() string {
	if p.State.IsError() || len(p.Customers) > 0 {
		return ""
	}
	if p.SearchTerm != "" {
		return MsgNoCustomerWithID
	}
	return MsgNoCustomersInBank
}

type CustomerService struct {
	api CustomerReader
}

func NewCustomerService(api CustomerReader) *CustomerService {
	return &CustomerService{api: api}
}

// Load fetches every customer.
func (s *CustomerService) Load(ctx context.Context) CustomersPage {
	customers, err := s.api.ListCustomers(ctx)
	if err != nil {
		return CustomersPage{State: customersFailure(err)}
	}
	return CustomersPage{State: model.Success(""), Customers: customers}
}

// Search looks a customer up by id. An empty term reloads the full list; a
// term that is not a positive integer is rejected without calling the API.
func (s *CustomerService) Search(ctx context.Context, term string) CustomersPage {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.Load(ctx)
	}

	id, err := strconv.ParseInt(term, 10, 64)
	if err != nil || id <= 0 {
		return CustomersPage{State: model.Failure(MsgInvalidSearchID), SearchTerm: term}
	}

	customer, err := s.api.GetCustomer(ctx, id)
	if err != nil {
		return CustomersPage{State: customersFailure(err), SearchTerm: term}
	}
	return CustomersPage{
		State:      model.Success(""),
		SearchTerm: term,
		Customers:  []model.Customer{*customer},
	}
}

func customersFailure(err error) model.ViewState {
	if bankapi.IsNotFound(err) {
		var notFound *bankapi.CustomerNotFoundError
		if errors.As(err, &notFound) {
			return model.Failure(notFound.Error())
		}
		return model.Failure(MsgNoCustomerWithID)
	}
	logger.Log.WithFields(logrus.Fields{"view": "customers"}).WithError(err).Error("Could not load customers")
	return model.Failure(MsgCustomersFailed)
}
