package models

// Car is a vehicle owned by exactly one driver.
type Car struct {
	ID       int64  `json:"id"`
	License  string `json:"license"`
	Brand    string `json:"brand"`
	DriverID int64  `json:"driver_id"`

	// LoadCapacity is the maximum cargo load the car can carry.
	LoadCapacity float64 `json:"load_capacity"`

	// MileageBuy is the odometer value at the moment the car was purchased.
	MileageBuy float64 `json:"mileage_buy"`
}
