// Package models defines the persistent entities of the API:
// users, products, orders, and the order-product association.
package models

import "time"

// User owns a collection of orders. Deleting a user cascades to its orders.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// Product participates in a many-to-many relation with orders.
type Product struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

// Order belongs to a user and holds products through the order_product
// association. OrderDate is assigned by the database at creation time, in UTC.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	OrderDate time.Time `json:"order_date"`
	Products  []Product `json:"products"`
}

// OrderProduct is one row of the association table. The (OrderID, ProductID)
// pair is unique: an order cannot contain the same product twice.
type OrderProduct struct {
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
}
