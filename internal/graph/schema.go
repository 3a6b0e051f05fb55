package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema is the full SDL served at /graphql. Monetary fields are strings so
// amounts survive JSON transport without float loss.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	scalar Time

	type Query {
		customers: [Customer!]!
		products: [Product!]!
		orders: [Order!]!
		customer(id: ID!): Customer
		product(id: ID!): Product
		order(id: ID!): Order
	}

	type Mutation {
		createCustomer(input: CustomerInput!): CreateCustomerPayload!
		bulkCreateCustomers(input: [CustomerInput!]!): BulkCreateCustomersPayload!
		createProduct(input: ProductInput!): CreateProductPayload!
		createOrder(input: OrderInput!): CreateOrderPayload!
	}

	type Customer {
		id: ID!
		name: String!
		email: String!
		phone: String
		createdAt: Time!
		orders: [Order!]!
	}

	type Product {
		id: ID!
		name: String!
		price: String!
		stock: Int!
		createdAt: Time!
		orders: [Order!]!
	}

	type Order {
		id: ID!
		customer: Customer!
		products: [Product!]!
		totalAmount: String!
		orderDate: Time!
		createdAt: Time!
	}

	input CustomerInput {
		name: String!
		email: String!
		phone: String
	}

	input ProductInput {
		name: String!
		price: Float!
		stock: Int
	}

	input OrderInput {
		customerId: ID!
		productIds: [ID!]!
		orderDate: Time
	}

	type CreateCustomerPayload {
		customer: Customer!
		message: String!
	}

	type BulkCreateCustomersPayload {
		customers: [Customer!]!
		errors: [String!]!
	}

	type CreateProductPayload {
		product: Product!
		message: String!
	}

	type CreateOrderPayload {
		order: Order!
		message: String!
	}
`

func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, resolver)
}
