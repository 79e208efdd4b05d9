// file: service/create_customer_service.go

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
	MsgCreateCustomerFailed  = "Error al crear el cliente. Verifica los datos."
	MsgCreateCustomerInvalid = "Completa nombre, apellido y número de cuenta; el saldo inicial debe ser un número no negativo."
)

type CustomerCreator interface {
	CreateCustomer(ctx context.Context, data model.NewCustomer) (*model.Customer, error)
}

// CreateCustomerPage is the state of the create-customer form.
type CreateCustomerPage struct {
	State model.ViewState
	Form  model.NewCustomer
}

type CreateCustomerService struct {
	api CustomerCreator
}

func NewCreateCustomerService(api CustomerCreator) *CreateCustomerService {
	return &CreateCustomerService{api: api}
}

// Create submits the form. On success the returned page carries an empty
// form; on failure it keeps what the user typed.
func (s *CreateCustomerService) Create(ctx context.Context, form model.NewCustomer) CreateCustomerPage {
	if err := common.Validate(form); err != nil {
		return CreateCustomerPage{State: model.Failure(MsgCreateCustomerInvalid), Form: form}
	}

	log := logger.Log.WithFields(logrus.Fields{
		"view":           "create_customer",
		"account_number": form.AccountNumber,
	})

	created, err := s.api.CreateCustomer(ctx, form)
	if err != nil {
		log.WithError(err).Error("Could not create customer")
		if detail, ok := bankapi.Detail(err); ok {
			return CreateCustomerPage{State: model.Failure(detail), Form: form}
		}
		return CreateCustomerPage{State: model.Failure(MsgCreateCustomerFailed), Form: form}
	}

	log.WithField("customer_id", created.ID).Info("Customer created")
	msg := fmt.Sprintf("Cliente %s creado con éxito. Cuenta N°: %s", created.FirstName, created.AccountNumber)
	return CreateCustomerPage{State: model.Success(msg)}
}
