// Package common contains constants and small helpers shared by the
// FreeFusion client and gateway.
package common

// Names of the gateway document collections.
const (
	CollectionCustomers        = "customers"
	CollectionFreelancers      = "freelancers"
	CollectionCustomerRequests = "customer_requests"
)

// KnownCollection reports whether name is one of the collections the gateway
// serves. The API rejects everything else.
func KnownCollection(name string) bool {
	switch name {
	case CollectionCustomers, CollectionFreelancers, CollectionCustomerRequests:
		return true
	}
	return false
}
