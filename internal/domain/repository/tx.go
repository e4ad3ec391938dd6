package repository

import "context"

// Repositories repositórios atados à mesma transação.
type Repositories struct {
	Companies  CompanyRepository
	Users      UserRepository
	Budgets    BudgetRepository
	Plans      TreasuryPlanRepository
	Executions ExecutionRepository
}

// TxRunner executa fn numa transação de BD; erro de fn faz rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}
