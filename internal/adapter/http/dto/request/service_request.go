package request

import (
	"atelie_crm/internal/usecase"

	"github.com/shopspring/decimal"
)

type ServiceCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
}

func (r ServiceCreateRequest) ToInput() usecase.NewService {
	return usecase.NewService{
		Name:        r.Name,
		Category:    r.Category,
		UnitPrice:   r.UnitPrice,
		Description: r.Description,
	}
}

type ServiceUpdateRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Description *string          `json:"description"`
}

func (r ServiceUpdateRequest) ToPatch() usecase.ServicePatch {
	return usecase.ServicePatch{
		Name:        r.Name,
		Category:    r.Category,
		UnitPrice:   r.UnitPrice,
		Description: r.Description,
	}
}
