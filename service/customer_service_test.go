// file: service/customer_service_test.go

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-bank-console/bankapi"
	"go-bank-console/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleCustomers() []model.Customer {
	return []model.Customer{
		{ID: 1, FirstName: "Ana", LastName: "Gómez", AccountNumber: "ACC-1", Balance: decimal.RequireFromString("1500.5")},
		{ID: 2, FirstName: "Luis", LastName: "Pérez", AccountNumber: "ACC-2", Balance: decimal.NewFromInt(-20)},
	}
}

func TestCustomerService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := new(mockBankAPI)
		api.On("ListCustomers", ctx).Return(sampleCustomers(), nil).Once()

		page := NewCustomerService(api).Load(ctx)

		assert.True(t, page.State.IsSuccess())
		assert.Len(t, page.Customers, 2)
		assert.Empty(t, page.EmptyMessage())
		api.AssertExpectations(t)
	})

	t.Run("empty bank", func(t *testing.T) {
		api := new(mockBankAPI)
		api.On("ListCustomers", ctx).Return([]model.Customer{}, nil).Once()

		page := NewCustomerService(api).Load(ctx)

		assert.True(t, page.State.IsSuccess())
		assert.Equal(t, MsgNoCustomersInBank, page.EmptyMessage())
	})

	t.Run("backend down", func(t *testing.T) {
		api := new(mockBankAPI)
		api.On("ListCustomers", ctx).Return(nil, bankapi.ErrUnavailable).Once()

		page := NewCustomerService(api).Load(ctx)

		assert.True(t, page.State.IsError())
		assert.Equal(t, MsgCustomersFailed, page.State.Message)
		assert.Empty(t, page.EmptyMessage())
	})
}

func TestCustomerService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid ids never reach the backend", func(t *testing.T) {
		for _, term := range []string{"abc", "0", "-3", "1.5", "12abc"} {
			api := new(mockBankAPI)

			page := NewCustomerService(api).Search(ctx, term)

			assert.True(t, page.State.IsError(), term)
			assert.Equal(t, MsgInvalidSearchID, page.State.Message, term)
			assert.Empty(t, page.Customers, term)
			api.AssertNotCalled(t, "GetCustomer", mock.Anything, mock.Anything)
			api.AssertNotCalled(t, "ListCustomers", mock.Anything)
		}
	})

	t.Run("empty term reloads everything", func(t *testing.T) {
		api := new(mockBankAPI)
		api.On("ListCustomers", ctx).Return(sampleCustomers(), nil).Once()

		page := NewCustomerService(api).Search(ctx, "   ")

		assert.Len(t, page.Customers, 2)
		assert.Empty(t, page.SearchTerm)
		api.AssertExpectations(t)
	})

	t.Run("found customer is wrapped in a list", func(t *testing.T) {
		api := new(mockBankAPI)
		customer := sampleCustomers()[0]
		api.On("GetCustomer", ctx, int64(1)).Return(&customer, nil).Once()

		page := NewCustomerService(api).Search(ctx, " 1 ")

		assert.True(t, page.State.IsSuccess())
		assert.Equal(t, []model.Customer{customer}, page.Customers)
		assert.Equal(t, "1", page.SearchTerm)
		api.AssertExpectations(t)
	})

	t.Run("missing customer shows the domain message", func(t *testing.T) {
		api := new(mockBankAPI)
		notFound := &bankapi.CustomerNotFoundError{ID: 99}
		api.On("GetCustomer", ctx, int64(99)).Return(nil, notFound).Once()

		page := NewCustomerService(api).Search(ctx, "99")

		assert.True(t, page.State.IsError())
		assert.Equal(t, notFound.Error(), page.State.Message)
		assert.Contains(t, page.State.Message, "99")
	})

	t.Run("bare 404 shows the no-match message", func(t *testing.T) {
		api := new(mockBankAPI)
		api.On("GetCustomer", ctx, int64(7)).Return(nil, &bankapi.APIError{StatusCode: http.StatusNotFound}).Once()

		page := NewCustomerService(api).Search(ctx, "7")

		assert.True(t, page.State.IsError())
		assert.Equal(t, MsgNoCustomerWithID, page.State.Message)
	})

	t.Run("other failures show the generic message", func(t *testing.T) {
		api := new(mockBankAPI)
		api.On("GetCustomer", ctx, int64(5)).Return(nil, errors.New("boom")).Once()

		page := NewCustomerService(api).Search(ctx, "5")

		assert.Equal(t, MsgCustomersFailed, page.State.Message)
	})
}

func TestCustomersPage_EmptyMessage(t *testing.T) {
	withTerm := CustomersPage{State: model.Success(""), SearchTerm: "4"}
	assert.Equal(t, MsgNoCustomerWithID, withTerm.EmptyMessage())

	failed := CustomersPage{State: model.Failure("x"), SearchTerm: "4"}
	assert.Empty(t, failed.EmptyMessage())
}
