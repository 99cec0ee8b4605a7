package dto

import (
	"studioops/internal/domains/inquiry/model"
	"studioops/shared"
	gDto "studioops/shared/dto"
)

type InquiryResponse struct {
	ID      string `json:"id"`
	CaseID  string `json:"case_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `json:"status"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.CaseID = model.CaseID
	r.Name = model.Name
	r.Email = model.Email
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
