package dto

type AddCrewRequest struct {
	CrewID string `json:"crew_id" validate:"required"`
}

type UpdateAssignmentRequest struct {
	Salary        string `json:"salary"         validate:"omitempty,max=50"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending completed"`
}

type DraftResponse struct {
	ID string `json:"id"`
}
