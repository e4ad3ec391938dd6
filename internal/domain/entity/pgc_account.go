package entity

import "time"

// PGCAccount (Conta PGC) conta do plano de contas PGC-AO de uma empresa.
// As linhas de orçamento e tesouraria referem-na pelo código, sem chave estrangeira.
type PGCAccount struct {
	ID           string
	CompanyID    string
	Codigo       string
	Nome         string
	Classe       int
	Conformidade int    // 0..100
	Status       string // validada, pendente, erro, revisao
	Observacoes  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
