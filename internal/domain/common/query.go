package common

import (
	"fmt"
	"strings"
)

// MaxPageSize bounds every list query
const MaxPageSize = 100

// Sort orders
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Page carries pagination and sorting shared by list queries
type Page struct {
	Limit     int    `validate:"gte=0,lte=100"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewPage returns the default page: first 50 rows, newest first
func NewPage() Page {
	return Page{Limit: 50, SortBy: "created_at", SortOrder: SortDesc}
}

// Validate checks the page bounds and that SortBy is one of the allowed columns
func (p *Page) Validate(sortable ...string) error {
	p.SortOrder = strings.ToLower(p.SortOrder)
	if err := ValidateStruct(p); err != nil {
		return err
	}
	if p.SortBy == "" {
		return nil
	}
	for _, column := range sortable {
		if p.SortBy == column {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot sort by %q", ErrValidation, p.SortBy)
}

// OrderClause renders the page's sort as SQL. Validate must have run first.
func (p *Page) OrderClause() string {
	if p.SortBy == "" {
		return ""
	}
	order := p.SortOrder
	if order == "" {
		order = SortAsc
	}
	return fmt.Sprintf("%s %s", p.SortBy, order)
}
