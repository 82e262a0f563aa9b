package domain

// User is the identity anchor for accounts, debts and transactions.
// The deployment is single-user: user ID 1 exists by convention and users
// are immutable after creation.
type User struct {
	ID int `json:"userId"`
}

// SingleUserID is the well-known ID of the only user in the deployment.
const SingleUserID = 1

type UserRepository interface {
	Save(user *User) error
	FindByID(userID int) (*User, error)
	Count() (int, error)
}
