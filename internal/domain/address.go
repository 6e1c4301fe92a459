package domain

import "strings"

// PostalAddress is the structured address a postal code resolves to.
// Produced by the postal lookup provider and consumed within one
// locator invocation only.
type PostalAddress struct {
	Street       string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}

// FreeText builds the single-line address string handed to the geocoder.
// Empty components are omitted so partial directory records still geocode.
func (a PostalAddress) FreeText() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.Neighborhood, a.City, a.State} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
