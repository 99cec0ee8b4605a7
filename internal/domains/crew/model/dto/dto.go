package dto

import (
	"github.com/google/uuid"

	"studioops/internal/domains/crew/model"
	"studioops/shared"
	gDto "studioops/shared/dto"
	gModel "studioops/shared/model"
	"studioops/shared/timezone"
)

type CreateCrewRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Role  string `json:"role"  validate:"required,max=50"`
}

func (c *CreateCrewRequest) ToModel(user string) model.Crew {
	return model.Crew{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Role:     c.Role,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCrewRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Role  string `db:"role"  json:"role"  validate:"omitempty,max=50"`
}

type CrewResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *CrewResponse) FromModel(model model.Crew) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetCrewResponse struct {
	Crew      []CrewResponse `json:"crew"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetCrewResponse) FromModels(models []model.Crew, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Crew = make([]CrewResponse, len(models))
	for i, mod := range models {
		r.Crew[i].FromModel(mod)
	}
}
