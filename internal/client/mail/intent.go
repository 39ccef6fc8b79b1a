// Package mail derives mail-compose intents from a selected project and
// serializes them as mailto links for the platform's URL opener.
package mail

import (
	"net/url"

	"github.com/Guru-25/FreeFusion/internal/client/models"
)

// Intent is a mail-compose request: who to write to and the prefilled
// subject and body. Derived on demand, never persisted.
type Intent struct {
	Recipient string
	Subject   string
	Body      string
}

// BuildIntent derives the contact intent for the given selection. Returns
// false when nothing is selected.
func BuildIntent(selected *models.ProjectRequest) (*Intent, bool) {
	if selected == nil {
		return nil, false
	}
	return &Intent{
		Recipient: selected.ContactInfo,
		Subject:   "Inquiry about " + selected.ProjectTitle,
		Body: "Hello,\n\nI am interested in the project \"" + selected.ProjectTitle +
			"\".\n\nThank you!",
	}, true
}

// MailtoURL serializes the intent as a mailto link with the subject and body
// URL-encoded.
func (i *Intent) MailtoURL() string {
	return "mailto:" + i.Recipient +
		"?subject=" + url.QueryEscape(i.Subject) +
		"&body=" + url.QueryEscape(i.Body)
}
