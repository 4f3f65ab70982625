package dto

import (
	"github.com/google/uuid"

	"westwood/internal/domains/customer/model"
	"westwood/shared"
	gDto "westwood/shared/dto"
	gModel "westwood/shared/model"
	"westwood/shared/timezone"
)

type CreateCustomerRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,max=20"`
	Email         string `json:"email"          validate:"omitempty,email,max=100"`
	Remarks       string `json:"remarks"        validate:"omitempty"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:            uuid.NewString(),
		Name:          c.Name,
		ContactNumber: c.ContactNumber,
		Email:         c.Email,
		Remarks:       c.Remarks,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=100"`
	ContactNumber string `db:"contact_number" json:"contact_number" validate:"omitempty,max=20"`
	Email         string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Remarks       string `db:"remarks"        json:"remarks"        validate:"omitempty"`
}

type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Remarks       string `json:"remarks"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.ContactNumber = model.ContactNumber
	r.Email = model.Email
	r.Remarks = model.Remarks
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
