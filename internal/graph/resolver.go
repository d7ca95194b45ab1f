package graph

import (
	"database/sql"

	"crm-be/internal/customer"
	"crm-be/internal/order"
	"crm-be/internal/product"
	"crm-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
)

type Resolver struct {
	DB          *sql.DB
	CustomerSvc customer.Service
	ProductSvc  product.Service
	OrderSvc    order.Service
	UserSvc     user.Service
}

func NewSchema(r *Resolver) graphql.ExecutableSchema {
	return NewExecutableSchema(Config{
		Resolvers: r,
		Directives: DirectiveRoot{
			Auth: AuthDirective,
		},
	})
}

// Mutation returns the mutation root.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns the query root.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
