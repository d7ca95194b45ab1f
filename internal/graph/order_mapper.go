package graph

import (
	"fmt"

	"crm-be/internal/graph/model"
	"crm-be/internal/order"
)

func MapOrderItemToGraphQL(it order.OrderItem) *model.OrderItem {
	return &model.OrderItem{
		ID:          fmt.Sprint(it.ID),
		ProductID:   fmt.Sprint(it.ProductID),
		ProductName: it.ProductName,
		Quantity:    int32(it.Quantity),
		UnitPrice:   it.UnitPrice.InexactFloat64(),
	}
}

func MapOrderToGraphQL(o *order.Order) *model.Order {
	items := make([]*model.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, MapOrderItemToGraphQL(it))
	}

	return &model.Order{
		ID:          fmt.Sprint(o.ID),
		CustomerID:  fmt.Sprint(o.CustomerID),
		TotalAmount: o.TotalAmount.InexactFloat64(),
		OrderDate:   o.OrderDate,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func MapOrdersToGraphQL(orders []*order.Order) []*model.Order {
	result := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, MapOrderToGraphQL(o))
	}
	return result
}
