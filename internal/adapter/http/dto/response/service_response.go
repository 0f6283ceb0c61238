package response

import "atelie_crm/internal/domain/entities"

// Money is rendered as a fixed two-decimal string; internal values keep full
// precision.
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	UnitPrice   string `json:"unit_price"`
	Description string `json:"description"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		UnitPrice:   s.UnitPrice.StringFixed(2),
		Description: s.Description,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
