package catalog

import "github.com/erazemk/blagajna/internal/model"

// Sample records shown when the backend cannot be reached.

func fixtureProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Laptop", Price: 999, Stock: 5, Category: "Electronics", Description: "High-performance laptop"},
		{ID: "2", Name: "Mouse", Price: 29, Stock: 50, Category: "Electronics", Description: "Wireless mouse"},
		{ID: "3", Name: "Keyboard", Price: 79, Stock: 0, Category: "Electronics", Description: "Mechanical keyboard"},
		{ID: "4", Name: "Coffee Beans", Price: 12.99, Stock: 40, Category: "Beverages"},
		{ID: "5", Name: "Espresso Cup", Price: 8.49, Stock: 8, Category: "Accessories"},
		{ID: "6", Name: "Tea Leaves", Price: 6.99, Stock: 25, Category: "Beverages"},
		{ID: "7", Name: "Milk Frother", Price: 34.99, Stock: 3, Category: "Equipment"},
		{ID: "8", Name: "Sugar Cubes", Price: 3.99, Stock: 60, Category: "Supplies"},
		{ID: "9", Name: "Coffee Filters", Price: 4.49, Stock: 0, Category: "Supplies"},
	}
}

func fixtureCustomers() []model.Customer {
	return []model.Customer{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Phone: "555-0001", Address: "123 Main St", TotalPurchases: 5},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Phone: "555-0002", Address: "456 Oak Ave", TotalPurchases: 10},
		{ID: "3", Name: "Bob Johnson", Email: "bob@example.com", Phone: "555-0003", Address: "789 Pine Rd", TotalPurchases: 3},
	}
}

func fixtureOrders() []model.Order {
	return []model.Order{
		{ID: "ORD-001", Date: "2024-01-15", CustomerID: "1", Customer: "John Doe", Total: 125.5, PaymentMethod: model.MethodCard, Status: model.OrderCompleted},
		{ID: "ORD-002", Date: "2024-01-14", CustomerID: "2", Customer: "Jane Smith", Total: 89.99, PaymentMethod: model.MethodCash, Status: model.OrderCompleted},
		{ID: "ORD-003", Date: "2024-01-14", CustomerID: "3", Customer: "Bob Johnson", Total: 156.3, PaymentMethod: model.MethodMobile, Status: model.OrderPending},
	}
}
