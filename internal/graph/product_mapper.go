package graph

import (
	"fmt"

	"crm-be/internal/graph/model"
	"crm-be/internal/product"
	"crm-be/internal/utils"

	"github.com/shopspring/decimal"
)

func MapProductInput(input model.ProductInput) product.NewProduct {
	return product.NewProduct{
		Name:        input.Name,
		Description: utils.PtrString(input.Description),
		Price:       decimal.NewFromFloat(input.Price),
		Stock:       int(utils.PtrInt32(input.Stock)),
	}
}

func MapProductToGraphQL(p *product.Product) *model.Product {
	var description *string
	if p.Description != "" {
		description = utils.StrPtr(p.Description)
	}

	return &model.Product{
		ID:          fmt.Sprint(p.ID),
		Name:        p.Name,
		Description: description,
		Price:       p.Price.InexactFloat64(),
		Stock:       int32(p.Stock),
		LowStock:    p.LowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func MapProductsToGraphQL(products []*product.Product) []*model.Product {
	result := make([]*model.Product, 0, len(products))
	for _, p := range products {
		result = append(result, MapProductToGraphQL(p))
	}
	return result
}
