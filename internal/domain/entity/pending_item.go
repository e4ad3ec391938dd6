package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingTipo discriminante de um item da fila de aprovação.
type PendingTipo string

const (
	TipoOrcamento          PendingTipo = "orcamento"
	TipoPlanoTesouraria    PendingTipo = "plano_tesouraria"
	TipoExecucaoOrcamental PendingTipo = ExecutionKindOrcamental
	TipoPlanoExecucao      PendingTipo = ExecutionKindPlano
)

// PendingTipos todos os tipos em ordem estável.
var PendingTipos = []PendingTipo{TipoOrcamento, TipoPlanoTesouraria, TipoExecucaoOrcamental, TipoPlanoExecucao}

// Valid informa se o tipo é conhecido.
func (t PendingTipo) Valid() bool {
	for _, k := range PendingTipos {
		if k == t {
			return true
		}
	}
	return false
}

// PendingItem projeção comum de orçamentos, planos e execuções na fila de aprovação.
// Tipo indica qual entidade está por trás de ID.
type PendingItem struct {
	ID           string
	Tipo         PendingTipo
	Nome         string
	Descricao    string
	Status       string
	Valor        decimal.Decimal
	Prioridade   string
	Solicitante  string
	Departamento string
	DataEnvio    *time.Time
	Tags         []string
	Anexos       []string
}
