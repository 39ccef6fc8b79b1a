package accounts

import "time"

// Kind is the marketplace role an account signed up with. The role decides
// which profile collection holds the account's document.
type Kind string

const (
	KindCustomer   Kind = "customer"
	KindFreelancer Kind = "freelancer"
)

func (k Kind) Valid() bool {
	return k == KindCustomer || k == KindFreelancer
}

type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
