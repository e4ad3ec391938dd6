// Package workflow define a máquina de estados partilhada por orçamentos, planos de tesouraria e execuções.
//
//	rascunho   → em_analise
//	em_analise → aprovado | rejeitado | rascunho
//	rejeitado  → rascunho | em_analise
//	aprovado   → arquivado
//
// Rejeitado não volta sozinho a rascunho: o autor reabre ou volta a submeter.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/FinancePro-api/internal/domain"
)

// Status estado do ciclo de vida de um registo sujeito a aprovação.
type Status string

const (
	StatusRascunho  Status = "rascunho"
	StatusEmAnalise Status = "em_analise"
	StatusAprovado  Status = "aprovado"
	StatusRejeitado Status = "rejeitado"
	StatusArquivado Status = "arquivado"
)

var transitions = map[Status]map[Status]bool{
	StatusRascunho:  {StatusEmAnalise: true},
	StatusEmAnalise: {StatusAprovado: true, StatusRejeitado: true, StatusRascunho: true},
	StatusRejeitado: {StatusRascunho: true, StatusEmAnalise: true},
	StatusAprovado:  {StatusArquivado: true},
	StatusArquivado: {},
}

// Valid informa se o estado existe.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Editable informa se os campos de negócio podem ser alterados neste estado.
func (s Status) Editable() bool {
	return s != StatusAprovado && s != StatusArquivado
}

// ParseStatus converte texto num Status conhecido.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", domain.NewValidationError("status", fmt.Sprintf("estado desconhecido %q", s))
	}
	return st, nil
}

// CanTransition informa se a tabela permite passar de from para to.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// AllowedTargets devolve os destinos possíveis a partir de um estado, em ordem estável.
func AllowedTargets(from Status) []Status {
	var out []Status
	for _, to := range []Status{StatusRascunho, StatusEmAnalise, StatusAprovado, StatusRejeitado, StatusArquivado} {
		if transitions[from][to] {
			out = append(out, to)
		}
	}
	return out
}

// EnsureEditable falha com ErrImmutableState quando o registo está aprovado ou arquivado.
func EnsureEditable(s Status) error {
	if !s.Editable() {
		return fmt.Errorf("%w (estado %s)", domain.ErrImmutableState, s)
	}
	return nil
}

// State campos de ciclo de vida e auditoria embebidos em cada entidade com aprovação.
type State struct {
	Status         Status
	Observacoes    string
	MotivoRejeicao string
	SubmittedAt    *time.Time
	DecidedBy      string
	DecidedAt      *time.Time
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int
}

// Transition é o único ponto de entrada para mudar de estado.
// Rejeitar exige motivo; aprovar aceita uma observação opcional. Carimba sempre UpdatedBy/UpdatedAt.
// Version não é incrementada aqui: o repositório faz o compare-and-swap e avança a versão.
func Transition(st *State, target Status, actor, note string, now time.Time) error {
	if st == nil {
		return fmt.Errorf("%w: estado nulo", domain.ErrInvalidInput)
	}
	if !target.Valid() {
		return domain.NewValidationError("status", fmt.Sprintf("estado desconhecido %q", target))
	}
	if strings.TrimSpace(actor) == "" {
		return domain.NewValidationError("actor", "utilizador obrigatório")
	}
	note = strings.TrimSpace(note)
	if target == StatusRejeitado && note == "" {
		return domain.NewValidationError("motivo", "o motivo da rejeição é obrigatório")
	}
	if !CanTransition(st.Status, target) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, st.Status, target)
	}

	from := st.Status
	st.Status = target
	st.UpdatedBy = actor
	st.UpdatedAt = now

	if from == StatusRejeitado {
		st.MotivoRejeicao = ""
	}
	switch target {
	case StatusEmAnalise:
		st.SubmittedAt = &now
		st.DecidedBy = ""
		st.DecidedAt = nil
	case StatusAprovado:
		st.DecidedBy = actor
		st.DecidedAt = &now
		if note != "" {
			st.Observacoes = note
		}
	case StatusRejeitado:
		st.DecidedBy = actor
		st.DecidedAt = &now
		st.MotivoRejeicao = note
	case StatusRascunho:
		st.SubmittedAt = nil
	}
	return nil
}

// Touch carimba uma edição de campos de negócio (sem mudança de estado).
func (st *State) Touch(actor string, now time.Time) {
	st.UpdatedBy = actor
	st.UpdatedAt = now
}

// ExpectVersion falha com ErrConflict quando o cliente enviou uma versão diferente da gravada.
// Sem versão (nil) não há verificação do lado do cliente; o repositório continua a fazer compare-and-swap.
func (st *State) ExpectVersion(v *int) error {
	if v != nil && *v != st.Version {
		return fmt.Errorf("%w: versão %d, atual %d", domain.ErrConflict, *v, st.Version)
	}
	return nil
}
