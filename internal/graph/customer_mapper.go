package graph

import (
	"fmt"

	"crm-be/internal/customer"
	"crm-be/internal/graph/model"
	"crm-be/internal/utils"
)

func MapCustomerInput(input model.CustomerInput) customer.NewCustomer {
	return customer.NewCustomer{
		Name:  input.Name,
		Email: input.Email,
		Phone: utils.PtrString(input.Phone),
	}
}

func MapCustomerToGraphQL(c *customer.Customer) *model.Customer {
	var phone *string
	if c.Phone != "" {
		phone = utils.StrPtr(c.Phone)
	}

	return &model.Customer{
		ID:        fmt.Sprint(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func MapCustomersToGraphQL(customers []*customer.Customer) []*model.Customer {
	result := make([]*model.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, MapCustomerToGraphQL(c))
	}
	return result
}
