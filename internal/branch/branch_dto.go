package branch

type UpdateConfigRequest struct {
	IncludeTipsInSocialSecurity *bool `json:"include_tips_in_social_security" binding:"required"`
	IncludeTipsInIncomeTax      *bool `json:"include_tips_in_income_tax" binding:"required"`
}

type ConfigResponse struct {
	BranchID                    string `json:"branch_id"`
	IncludeTipsInSocialSecurity bool   `json:"include_tips_in_social_security"`
	IncludeTipsInIncomeTax      bool   `json:"include_tips_in_income_tax"`
}
