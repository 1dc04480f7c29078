package deduction

type CreateDeductionRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	Kind        string `json:"kind" binding:"required,oneof=LOAN ADVANCE GARNISHMENT OTHER"`
	TotalAmount string `json:"total_amount" binding:"required"`
	Installment string `json:"installment" binding:"required"`
	Priority    int    `json:"priority" binding:"required,min=1"`
}

type DeductionResponse struct {
	ID          string `json:"id"`
	BranchID    string `json:"branch_id"`
	EmployeeID  string `json:"employee_id"`
	Kind        string `json:"kind"`
	TotalAmount string `json:"total_amount"`
	Balance     string `json:"balance"`
	Installment string `json:"installment"`
	Priority    int    `json:"priority"`
	Active      bool   `json:"active"`
}
