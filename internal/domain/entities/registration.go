package entities

// ApprovalStatus tracks the admin-mediated registration workflow.
type ApprovalStatus string

const (
	ApprovalStatusPendente   ApprovalStatus = "pendente"
	ApprovalStatusVerificado ApprovalStatus = "verificado"
	ApprovalStatusAprovado   ApprovalStatus = "aprovado"
	ApprovalStatusRejeitado  ApprovalStatus = "rejeitado"
)

var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalStatusPendente:   {ApprovalStatusVerificado, ApprovalStatusAprovado, ApprovalStatusRejeitado},
	ApprovalStatusVerificado: {ApprovalStatusAprovado, ApprovalStatusRejeitado},
	ApprovalStatusAprovado:   {ApprovalStatusRejeitado},
	ApprovalStatusRejeitado:  {ApprovalStatusAprovado},
}

func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	return allowed(approvalTransitions, s, next)
}

func allowed[T comparable](table map[T][]T, from, to T) bool {
	for _, candidate := range table[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
