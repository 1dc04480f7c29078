package paycode

type CreatePayCodeRequest struct {
	Code         string `json:"code" binding:"required,max=40"`
	Name         string `json:"name" binding:"required,max=150"`
	Class        string `json:"class" binding:"required,oneof=EARNING DEDUCTION INFO"`
	Category     string `json:"category" binding:"required,oneof=REGULAR OVERTIME TIPS THIRTEENTH OTHER"`
	OvertimeKind string `json:"overtime_kind" binding:"omitempty,oneof=NONE DAYTIME NIGHT REST_HOLIDAY PROLONGED_NIGHT"`
}

type UpdatePayCodeRequest struct {
	Name         string `json:"name" binding:"required,max=150"`
	Class        string `json:"class" binding:"required,oneof=EARNING DEDUCTION INFO"`
	Category     string `json:"category" binding:"required,oneof=REGULAR OVERTIME TIPS THIRTEENTH OTHER"`
	OvertimeKind string `json:"overtime_kind" binding:"omitempty,oneof=NONE DAYTIME NIGHT REST_HOLIDAY PROLONGED_NIGHT"`
}

type PayCodeResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Class        string `json:"class"`
	Category     string `json:"category"`
	OvertimeKind string `json:"overtime_kind"`
}
