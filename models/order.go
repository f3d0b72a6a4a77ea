package models

// Order is a single delivery performed by a driver with one of their cars.
type Order struct {
	ID       int64   `json:"id"`
	DriverID int64   `json:"driver_id"`
	CarID    int64   `json:"car_id"`
	Date     string  `json:"date"`
	Mileage  float64 `json:"mileage"`
	Load     float64 `json:"load"`
	Cost     float64 `json:"cost"`
}

// OrderFilter narrows ListOrders results. Empty fields are not applied.
type OrderFilter struct {
	DriverID int64
	From     string
	To       string
}

// Earnings is the driver's share of the orders completed within a period.
type Earnings struct {
	DriverID int64   `json:"driver_id"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Orders   int     `json:"orders"`
	Total    float64 `json:"total"`
	Share    float64 `json:"share"`
}
