package models

import "github.com/Guru-25/FreeFusion/internal/client/gateway"

// ProjectRequest is one posted project from the customer_requests collection.
// The snapshot fetched by the feed is immutable; nothing mutates these
// records locally.
type ProjectRequest struct {
	ID           string
	ProjectTitle string
	Description  string
	CompanyName  string
	Salary       string
	Duration     string
	ContactInfo  string
}

// ProjectRequestFromDocument maps a gateway document into a ProjectRequest,
// merging the gateway-assigned identifier with the field payload. The title
// and contact email are required; the descriptive fields default to empty
// strings when absent.
func ProjectRequestFromDocument(doc gateway.Document) (*ProjectRequest, error) {
	title, err := stringField(doc, "projectTitle")
	if err != nil {
		return nil, err
	}
	contact, err := stringField(doc, "contactInfo")
	if err != nil {
		return nil, err
	}

	return &ProjectRequest{
		ID:           doc.ID,
		ProjectTitle: title,
		Description:  optionalStringField(doc, "description"),
		CompanyName:  optionalStringField(doc, "companyName"),
		Salary:       optionalStringField(doc, "salary"),
		Duration:     optionalStringField(doc, "duration"),
		ContactInfo:  contact,
	}, nil
}
