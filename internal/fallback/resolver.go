// Package fallback derives the manual-contact channel used when automated
// notification cannot be confirmed.
package fallback

import (
	"fmt"
	"net/url"
	"strings"

	"interest-capture/internal/catalog"
	"interest-capture/internal/common/config"
	"interest-capture/internal/interest"
)

// ManualContactAction is a pre-filled mail-compose action addressed to the
// administrative contact.
type ManualContactAction struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailto encodes the action as a mailto URL for the platform's default
// mail handler.
func (a ManualContactAction) Mailto() string {
	values := url.Values{}
	values.Set("subject", a.Subject)
	values.Set("body", a.Body)
	// url.Values encodes spaces as '+', mailto expects %20.
	query := strings.ReplaceAll(values.Encode(), "+", "%20")
	return fmt.Sprintf("mailto:%s?%s", a.To, query)
}

// Resolver produces ManualContactActions from static configuration and the
// immutable catalog. It performs no I/O.
type Resolver struct {
	cfg     config.FallbackConfig
	catalog *catalog.Catalog
}

func NewResolver(cfg config.FallbackConfig, cat *catalog.Catalog) *Resolver {
	return &Resolver{cfg: cfg, catalog: cat}
}

// Resolve maps a record to its manual-contact action. Identical input
// yields an identical action; failure detail from the notification attempt
// is deliberately not an input.
func (r *Resolver) Resolve(record *interest.Record) ManualContactAction {
	if record.IsGeneralContact() {
		body := r.cfg.ContactBody
		if record.Message != "" {
			body += record.Message + "\n"
		}
		return ManualContactAction{
			To:      r.cfg.AdminEmail,
			Subject: r.cfg.ContactSubject,
			Body:    body,
		}
	}

	name := record.ProductID
	if p, ok := r.catalog.Get(record.ProductID); ok {
		name = p.Name
	}
	return ManualContactAction{
		To:      r.cfg.AdminEmail,
		Subject: fmt.Sprintf(r.cfg.ProductSubject, name),
		Body:    fmt.Sprintf(r.cfg.ProductBody, name),
	}
}
