package board

import "github.com/spec-kit/ticket-board/internal/domain"

// Partition splits tickets into the service and ad groups.
//
// A type containing "service" puts a ticket in the service group. The ad
// group takes any type containing "ad" and every type without "service",
// so "Service Ad" lands in both and "Printing" only in ad.
func Partition(tickets []domain.Ticket) (service, ad []domain.Ticket) {
	service = make([]domain.Ticket, 0, len(tickets))
	ad = make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		isService := t.TypeContains("service")
		if isService {
			service = append(service, t)
		}
		if t.TypeContains("ad") || !isService {
			ad = append(ad, t)
		}
	}
	return service, ad
}
