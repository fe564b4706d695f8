package admin

import "time"

// Admin is the operator-account record kept in the application store.
// It is created alongside a user row in the identity layer; the two are
// deliberately loosely coupled and can diverge if one write fails.
type Admin struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
