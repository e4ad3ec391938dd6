package treasury

import (
	"fmt"
	"strings"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/finance"
	"github.com/jhoicas/FinancePro-api/pkg/pgc"
)

// applyRequest valida a entrada e copia o cabeçalho e os financiamentos para p.
// As entradas e saídas manuais são convertidas à parte (manualInflows/manualOutflows).
func applyRequest(p *entity.TreasuryPlan, in dto.TreasuryPlanRequest) error {
	verr := &domain.ValidationError{}
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		verr.Add("nome", "obrigatório")
	}
	if in.Mes < 1 || in.Mes > 12 {
		verr.Add("mes", "deve estar entre 1 e 12")
	}
	if in.Ano < 1900 || in.Ano > 9999 {
		verr.Add("ano", "ano inválido")
	}
	if in.Prioridade != "" && !entity.ValidPriorities[in.Prioridade] {
		verr.Add("prioridade", "deve ser alta, media ou baixa")
	}
	for i, l := range in.Entradas {
		field := fmt.Sprintf("entradas[%d]", i)
		validateAmountLine(verr, field, l.Descricao, l.ContaPGC, l.Valor.IsNegative())
		if l.Probabilidade < 0 || l.Probabilidade > 100 {
			verr.Add(field+".probabilidade", "deve estar entre 0 e 100")
		}
	}
	for i, l := range in.Saidas {
		field := fmt.Sprintf("saidas[%d]", i)
		validateAmountLine(verr, field, l.Descricao, l.ContaPGC, l.Valor.IsNegative())
		if l.Prioridade != 0 && (l.Prioridade < entity.OutflowPriorityCritical || l.Prioridade > entity.OutflowPriorityLow) {
			verr.Add(field+".prioridade", "deve estar entre 1 e 4")
		}
	}
	financings := make([]entity.Financing, 0, len(in.Financiamentos))
	for i, f := range in.Financiamentos {
		field := fmt.Sprintf("financiamentos[%d]", i)
		if strings.TrimSpace(f.Fonte) == "" {
			verr.Add(field+".fonte", "obrigatória")
		}
		if f.Valor.IsNegative() {
			verr.Add(field+".valor", "não pode ser negativo")
		}
		if f.TaxaJuro.IsNegative() {
			verr.Add(field+".taxa_juro", "não pode ser negativa")
		}
		financings = append(financings, entity.Financing{
			ID:           f.ID,
			Descricao:    strings.TrimSpace(f.Descricao),
			Fonte:        strings.TrimSpace(f.Fonte),
			Valor:        f.Valor,
			TaxaJuro:     f.TaxaJuro,
			DataPrevista: f.DataPrevista,
		})
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	p.Nome = nome
	p.Mes = in.Mes
	p.Ano = in.Ano
	p.SaldoInicial = in.SaldoInicial
	if id := strings.TrimSpace(in.OrcamentoID); id != "" {
		p.OrcamentoID = id
	}
	p.Departamento = strings.TrimSpace(in.Departamento)
	p.Prioridade = in.Prioridade
	if p.Prioridade == "" {
		p.Prioridade = entity.PriorityMedia
	}
	p.Tags = in.Tags
	p.Anexos = in.Anexos
	p.Financings = financings
	return nil
}

func validateAmountLine(verr *domain.ValidationError, field, descricao, conta string, negative bool) {
	if strings.TrimSpace(descricao) == "" {
		verr.Add(field+".descricao", "obrigatória")
	}
	if strings.TrimSpace(conta) != "" {
		if err := pgc.ValidateCode(conta); err != nil {
			verr.Add(field+".conta_pgc", err.Error())
		}
	}
	if negative {
		verr.Add(field+".valor", "não pode ser negativo")
	}
}

// manualInflows converte as entradas recebidas; from_budget enviado pelo cliente é ignorado.
func manualInflows(lines []dto.InflowLine) []entity.Inflow {
	out := make([]entity.Inflow, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.Inflow{
			Descricao:     strings.TrimSpace(l.Descricao),
			ContaPGC:      strings.TrimSpace(l.ContaPGC),
			Valor:         l.Valor,
			DataPrevista:  l.DataPrevista,
			Probabilidade: l.Probabilidade,
		})
	}
	return out
}

func manualOutflows(lines []dto.OutflowLine) []entity.Outflow {
	out := make([]entity.Outflow, 0, len(lines))
	for _, l := range lines {
		prio := l.Prioridade
		if prio == 0 {
			prio = entity.OutflowPriorityNormal
		}
		out = append(out, entity.Outflow{
			Descricao:      strings.TrimSpace(l.Descricao),
			ContaPGC:       strings.TrimSpace(l.ContaPGC),
			Valor:          l.Valor,
			DataProgramada: l.DataProgramada,
			Prioridade:     prio,
		})
	}
	return out
}

func toResponse(p *entity.TreasuryPlan) *dto.TreasuryPlanResponse {
	if p == nil {
		return nil
	}
	totals := finance.TreasuryTotalsFrom(p.SaldoInicial, p.TotalEntradas, p.TotalSaidas, p.TotalFinanciamento)
	if len(p.Inflows)+len(p.Outflows)+len(p.Financings) > 0 {
		totals = finance.ComputeTreasuryTotals(p.SaldoInicial, p.Inflows, p.Outflows, p.Financings)
	}
	resp := &dto.TreasuryPlanResponse{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		Nome:           p.Nome,
		Mes:            p.Mes,
		Ano:            p.Ano,
		SaldoInicial:   p.SaldoInicial,
		OrcamentoID:    p.OrcamentoID,
		Departamento:   p.Departamento,
		Prioridade:     p.Prioridade,
		Tags:           nonNil(p.Tags),
		Anexos:         nonNil(p.Anexos),
		WorkflowFields: dto.NewWorkflowFields(p.State),
		Entradas:       make([]dto.InflowLine, 0, len(p.Inflows)),
		Saidas:         make([]dto.OutflowLine, 0, len(p.Outflows)),
		Financiamentos: make([]dto.FinancingLine, 0, len(p.Financings)),
		Totais: dto.TreasuryTotalsResponse{
			SaldoInicial:             totals.SaldoInicial,
			TotalEntradas:            totals.TotalInflows,
			TotalSaidas:              totals.TotalOutflows,
			TotalFinanciamento:       totals.TotalFinancing,
			FluxoLiquido:             totals.NetFlow,
			SaldoFinal:               totals.FinalBalance,
			NecessidadeFinanciamento: totals.NecessidadeFinanciamento,
		},
	}
	for _, l := range p.Inflows {
		resp.Entradas = append(resp.Entradas, dto.InflowLine{
			ID: l.ID, Descricao: l.Descricao, ContaPGC: l.ContaPGC, Valor: l.Valor,
			DataPrevista: l.DataPrevista, Probabilidade: l.Probabilidade, FromBudget: l.FromBudget,
		})
	}
	for _, l := range p.Outflows {
		resp.Saidas = append(resp.Saidas, dto.OutflowLine{
			ID: l.ID, Descricao: l.Descricao, ContaPGC: l.ContaPGC, Valor: l.Valor,
			DataProgramada: l.DataProgramada, Prioridade: l.Prioridade, FromBudget: l.FromBudget,
		})
	}
	for _, f := range p.Financings {
		resp.Financiamentos = append(resp.Financiamentos, dto.FinancingLine{
			ID: f.ID, Descricao: f.Descricao, Fonte: f.Fonte, Valor: f.Valor,
			TaxaJuro: f.TaxaJuro, DataPrevista: f.DataPrevista,
		})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
