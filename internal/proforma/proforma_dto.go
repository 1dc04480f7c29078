package proforma

type CreateMappingRequest struct {
	Code        string `json:"code" binding:"required,max=40"`
	Account     string `json:"account" binding:"required,max=20"`
	AccountName string `json:"account_name" binding:"required,max=100"`
	Side        string `json:"side" binding:"required"`
}

type MappingResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Account     string `json:"account"`
	AccountName string `json:"account_name"`
	Side        string `json:"side"`
}

type LineResponse struct {
	Code        string `json:"code"`
	Account     string `json:"account"`
	AccountName string `json:"account_name"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
}

type GenerateResponse struct {
	PeriodID    string         `json:"period_id"`
	BranchID    string         `json:"branch_id"`
	Sequence    int64          `json:"sequence"`
	Lines       []LineResponse `json:"lines"`
	TotalDebit  string         `json:"total_debit"`
	TotalCredit string         `json:"total_credit"`
	Path        string         `json:"path,omitempty"`
}

func mapMappingResponse(m AccountMapping) MappingResponse {
	return MappingResponse{
		ID:          m.ID.String(),
		Code:        m.Code,
		Account:     m.Account,
		AccountName: m.AccountName,
		Side:        m.Side,
	}
}

func mapGenerateResponse(p *Proforma, path string) GenerateResponse {
	lines := make([]LineResponse, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = LineResponse{
			Code:        l.Code,
			Account:     l.Account,
			AccountName: l.AccountName,
			Debit:       l.Debit.StringFixed(2),
			Credit:      l.Credit.StringFixed(2),
		}
	}
	return GenerateResponse{
		PeriodID:    p.PeriodID,
		BranchID:    p.BranchID,
		Sequence:    p.Sequence,
		Lines:       lines,
		TotalDebit:  p.TotalDebit.StringFixed(2),
		TotalCredit: p.TotalCredit.StringFixed(2),
		Path:        path,
	}
}
