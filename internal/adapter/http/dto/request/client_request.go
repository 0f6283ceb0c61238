package request

import "atelie_crm/internal/usecase"

type ClientCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (r ClientCreateRequest) ToInput() usecase.NewClient {
	return usecase.NewClient{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// ClientUpdateRequest is a partial update: absent fields stay unchanged.
type ClientUpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (r ClientUpdateRequest) ToPatch() usecase.ClientPatch {
	return usecase.ClientPatch{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}
