package payroll

type CalculateResponse struct {
	Success            bool   `json:"success"`
	Message            string `json:"message"`
	EmployeesProcessed int    `json:"employees_processed"`
	TotalGross         string `json:"total_gross"`
	TotalNet           string `json:"total_net"`
}

type ResultResponse struct {
	EmployeeID        string            `json:"employee_id"`
	EmployeeName      string            `json:"employee_name,omitempty"`
	Gross             string            `json:"gross"`
	LegalTotal        string            `json:"legal_deductions_total"`
	ContractualTotal  string            `json:"contractual_deductions_total"`
	Net               string            `json:"net"`
	Detail            map[string]string `json:"detail"`
	EmployerPension   string            `json:"employer_pension"`
	EmployerEducation string            `json:"employer_education"`
	TotalLaborCost    string            `json:"total_labor_cost"`
}

type TotalsResponse struct {
	PeriodID           string            `json:"period_id"`
	EmployeesProcessed int               `json:"employees_processed"`
	Gross              string            `json:"gross"`
	LegalTotal         string            `json:"legal_deductions_total"`
	ContractualTotal   string            `json:"contractual_deductions_total"`
	Net                string            `json:"net"`
	EmployerPension    string            `json:"employer_pension"`
	EmployerEducation  string            `json:"employer_education"`
	TotalLaborCost     string            `json:"total_labor_cost"`
	Detail             map[string]string `json:"detail"`
}

func mapDetail(detail DetailMap) map[string]string {
	out := make(map[string]string, len(detail))
	for code, amount := range detail {
		out[code] = amount.StringFixed(2)
	}
	return out
}

func mapResultResponse(r Result, name string) ResultResponse {
	return ResultResponse{
		EmployeeID:        r.EmployeeID.String(),
		EmployeeName:      name,
		Gross:             r.Gross.StringFixed(2),
		LegalTotal:        r.LegalTotal.StringFixed(2),
		ContractualTotal:  r.ContractualTotal.StringFixed(2),
		Net:               r.Net.StringFixed(2),
		Detail:            mapDetail(r.Detail),
		EmployerPension:   r.EmployerPension.StringFixed(2),
		EmployerEducation: r.EmployerEducation.StringFixed(2),
		TotalLaborCost:    r.TotalLaborCost.StringFixed(2),
	}
}

func mapTotalsResponse(t *PeriodTotals) TotalsResponse {
	return TotalsResponse{
		PeriodID:           t.PeriodID.String(),
		EmployeesProcessed: t.EmployeesProcessed,
		Gross:              t.Gross.StringFixed(2),
		LegalTotal:         t.LegalTotal.StringFixed(2),
		ContractualTotal:   t.ContractualTotal.StringFixed(2),
		Net:                t.Net.StringFixed(2),
		EmployerPension:    t.EmployerPension.StringFixed(2),
		EmployerEducation:  t.EmployerEducation.StringFixed(2),
		TotalLaborCost:     t.TotalLaborCost.StringFixed(2),
		Detail:             mapDetail(t.Detail),
	}
}

func mapCalculateResponse(s RunSummary) CalculateResponse {
	return CalculateResponse{
		Success:            s.Success,
		Message:            s.Message,
		EmployeesProcessed: s.EmployeesProcessed,
		TotalGross:         s.TotalGross.StringFixed(2),
		TotalNet:           s.TotalNet.StringFixed(2),
	}
}
