package models

// Dispatcher is an operator who registers drivers, cars and orders.
// Like Driver, its credentials are kept in the users table under the same ID.
type Dispatcher struct {
	ID       int64  `json:"id"`
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
	PassHash string `json:"-"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Address  string `json:"address"`
	City     string `json:"city"`
}
