package dto

import (
	"time"

	"github.com/jhoicas/FinancePro-api/internal/domain/workflow"
)

// WorkflowFields campos de estado e auditoria comuns às respostas.
type WorkflowFields struct {
	Status         string     `json:"status"`
	Observacoes    string     `json:"observacoes,omitempty"`
	MotivoRejeicao string     `json:"motivo_rejeicao,omitempty"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	DecidedBy      string     `json:"decided_by,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	CreatedBy      string     `json:"created_by"`
	UpdatedBy      string     `json:"updated_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Version        int        `json:"version"`
	Transicoes     []string   `json:"transicoes"` // destinos permitidos a partir do estado atual
}

// NewWorkflowFields copia o estado de workflow para a resposta.
func NewWorkflowFields(st workflow.State) WorkflowFields {
	return WorkflowFields{
		Status:         string(st.Status),
		Observacoes:    st.Observacoes,
		MotivoRejeicao: st.MotivoRejeicao,
		SubmittedAt:    st.SubmittedAt,
		DecidedBy:      st.DecidedBy,
		DecidedAt:      st.DecidedAt,
		CreatedBy:      st.CreatedBy,
		UpdatedBy:      st.UpdatedBy,
		CreatedAt:      st.CreatedAt,
		UpdatedAt:      st.UpdatedAt,
		Version:        st.Version,
		Transicoes:     transitionsFrom(st.Status),
	}
}

func transitionsFrom(s workflow.Status) []string {
	targets := workflow.AllowedTargets(s)
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, string(t))
	}
	return out
}
