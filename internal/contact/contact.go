// Package contact validates and sanitizes "cannot find a dataset" enquiries.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const (
	maxNameLen    = 200
	maxMessageLen = 5000
	previewLen    = 160
)

var ErrInvalidRequest = errors.New("invalid contact request")

// Request is the form a visitor submits.
type Request struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessNeed string `json:"business_need"`
}

// Enquiry is a validated request ready for storage.
type Enquiry struct {
	Name         string
	Email        string
	BusinessNeed string // sanitized HTML
	Preview      string // plain text, truncated
}

// Prepare validates req and returns the sanitized enquiry.
func Prepare(req Request) (*Enquiry, error) {
	name := normalizeSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if len(name) > maxNameLen {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidRequest)
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("%w: email is not valid", ErrInvalidRequest)
	}

	need := sanitizeHTML(req.BusinessNeed)
	text := HTMLToText(need)
	if text == "" {
		return nil, fmt.Errorf("%w: business need is required", ErrInvalidRequest)
	}
	if len(need) > maxMessageLen {
		return nil, fmt.Errorf("%w: business need is too long", ErrInvalidRequest)
	}

	return &Enquiry{
		Name:         bluemonday.StrictPolicy().Sanitize(name),
		Email:        addr.Address,
		BusinessNeed: need,
		Preview:      TruncateText(text, previewLen),
	}, nil
}

// sanitizeHTML uses bluemonday to strip unsafe tags and attributes from HTML.
func sanitizeHTML(html string) string {
	p := bluemonday.UGCPolicy()
	return strings.TrimSpace(p.Sanitize(html))
}

// HTMLToText converts HTML to plain text, collapsing whitespace.
func HTMLToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalizeSpace(html)
	}
	return normalizeSpace(doc.Text())
}

// TruncateText cuts a string to maxLen runes, appending an ellipsis if truncated.
func TruncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes[:maxLen])
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
