package models

import "github.com/Guru-25/FreeFusion/internal/client/gateway"

// AccountKind classifies an authenticated subject.
type AccountKind string

const (
	KindCustomer   AccountKind = "customer"
	KindFreelancer AccountKind = "freelancer"
)

// AccountRecord is a customer or freelancer profile as stored in the
// corresponding gateway collection.
type AccountRecord struct {
	Email    string
	Username string
	Kind     AccountKind
}

// AccountFromDocument maps a gateway document into an AccountRecord of the
// given kind. Both username and email are required.
func AccountFromDocument(doc gateway.Document, kind AccountKind) (*AccountRecord, error) {
	username, err := stringField(doc, "username")
	if err != nil {
		return nil, err
	}
	email, err := stringField(doc, "email")
	if err != nil {
		return nil, err
	}
	return &AccountRecord{Email: email, Username: username, Kind: kind}, nil
}
