package core

import (
	"context"

	"salescore/pkg/domain"
)

// ExpandedHolding pairs a holding with its resolved customer records.
type ExpandedHolding struct {
	Holding
	Customers []Customer `json:"customers"`
}

// ExpansionFailure reports one customer reference that could not be resolved
// while expanding a holding.
type ExpansionFailure struct {
	HoldingID  int64
	CustomerID int64
	Err        error
}

// ExpandHoldings resolves the customer records of each holding. Unresolvable
// references are reported per item rather than silently dropped; the holding
// is still returned with the customers that did resolve.
func (s *Service) ExpandHoldings(ctx context.Context, page PageSpec) ([]ExpandedHolding, []ExpansionFailure) {
	holdings := listRecords[Holding](s, EntityHolding, page)
	out := make([]ExpandedHolding, 0, len(holdings))
	var failures []ExpansionFailure
	for _, holding := range holdings {
		expanded := ExpandedHolding{Holding: holding}
		for _, customerID := range holding.CustomerIDs {
			customer, ok := getRecord[Customer](s, EntityCustomer, customerID)
			if !ok {
				failures = append(failures, ExpansionFailure{
					HoldingID:  holding.ID,
					CustomerID: customerID,
					Err:        domain.NotFoundError{Entity: EntityCustomer, ID: customerID},
				})
				continue
			}
			expanded.Customers = append(expanded.Customers, customer)
		}
		out = append(out, expanded)
	}
	return out, failures
}
