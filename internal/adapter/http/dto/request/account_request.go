package request

type RegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	CNPJ  string `json:"cnpj" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// ReviewRequest carries an admin decision: verificar, aprovar, rejeitar,
// suspender or reativar. Rank (bronze, prata, ouro) is only read for condo
// approvals.
type ReviewRequest struct {
	Action string `json:"action" binding:"required"`
	Rank   string `json:"rank"`
}

type BuyCoinsRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

type SubscribePlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}
