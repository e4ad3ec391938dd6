package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/application/dto"
	"github.com/jhoicas/FinancePro-api/internal/domain"
	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
	"github.com/jhoicas/FinancePro-api/internal/domain/finance"
	"github.com/jhoicas/FinancePro-api/pkg/pgc"
)

// applyRequest valida a entrada e copia-a para b (campos de negócio e linhas).
// Linhas sem periodicidade ficam anuais.
func applyRequest(b *entity.Budget, in dto.BudgetRequest) error {
	verr := &domain.ValidationError{}
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		verr.Add("nome", "obrigatório")
	}
	if in.Ano < 1900 || in.Ano > 9999 {
		verr.Add("ano", "ano inválido")
	}
	if in.Prioridade != "" && !entity.ValidPriorities[in.Prioridade] {
		verr.Add("prioridade", "deve ser alta, media ou baixa")
	}

	revenues := make([]entity.Revenue, 0, len(in.Receitas))
	for i, r := range in.Receitas {
		field := fmt.Sprintf("receitas[%d]", i)
		per := periodicidadeOrDefault(r.Periodicidade)
		validateLine(verr, field, r.Descricao, r.ContaPGC, per, r.Sazonalidade, r.Quantidade, r.PrecoUnitario)
		rev := entity.Revenue{
			Descricao:     strings.TrimSpace(r.Descricao),
			ContaPGC:      strings.TrimSpace(r.ContaPGC),
			Quantidade:    r.Quantidade,
			PrecoUnitario: r.PrecoUnitario,
			Periodicidade: per,
			Sazonalidade:  r.Sazonalidade,
		}
		rev.ComputeTotal()
		revenues = append(revenues, rev)
	}

	costs := make([]entity.Cost, 0, len(in.Custos))
	for i, c := range in.Custos {
		field := fmt.Sprintf("custos[%d]", i)
		per := periodicidadeOrDefault(c.Periodicidade)
		validateLine(verr, field, c.Descricao, c.ContaPGC, per, c.Sazonalidade, c.Quantidade, c.ValorUnitario)
		if c.Tipo != "" && !entity.ValidCostTypes[c.Tipo] {
			verr.Add(field+".tipo", "deve ser materiais, servicos, pessoal ou fixos")
		}
		cost := entity.Cost{
			Descricao:     strings.TrimSpace(c.Descricao),
			ContaPGC:      strings.TrimSpace(c.ContaPGC),
			Tipo:          c.Tipo,
			Quantidade:    c.Quantidade,
			ValorUnitario: c.ValorUnitario,
			Periodicidade: per,
			Sazonalidade:  c.Sazonalidade,
		}
		cost.ComputeTotal()
		costs = append(costs, cost)
	}

	assets := make([]entity.Asset, 0, len(in.Ativos))
	for i, a := range in.Ativos {
		field := fmt.Sprintf("ativos[%d]", i)
		validateLine(verr, field, a.Descricao, a.ContaPGC, entity.PeriodicidadeAnual, nil, a.Quantidade, a.Valor)
		if a.VidaUtilAnos < 0 {
			verr.Add(field+".vida_util_anos", "não pode ser negativa")
		}
		asset := entity.Asset{
			Descricao:    strings.TrimSpace(a.Descricao),
			ContaPGC:     strings.TrimSpace(a.ContaPGC),
			Quantidade:   a.Quantidade,
			Valor:        a.Valor,
			VidaUtilAnos: a.VidaUtilAnos,
		}
		asset.ComputeTotal()
		assets = append(assets, asset)
	}

	if err := verr.OrNil(); err != nil {
		return err
	}

	b.Nome = nome
	b.Descricao = strings.TrimSpace(in.Descricao)
	b.Ano = in.Ano
	b.Departamento = strings.TrimSpace(in.Departamento)
	b.Prioridade = in.Prioridade
	if b.Prioridade == "" {
		b.Prioridade = entity.PriorityMedia
	}
	b.Tags = in.Tags
	b.Anexos = in.Anexos
	b.Revenues = revenues
	b.Costs = costs
	b.Assets = assets
	return nil
}

func periodicidadeOrDefault(p string) string {
	if p == "" {
		return entity.PeriodicidadeAnual
	}
	return p
}

func validateLine(verr *domain.ValidationError, field, descricao, conta, per string, saz []decimal.Decimal, qty, unit decimal.Decimal) {
	if strings.TrimSpace(descricao) == "" {
		verr.Add(field+".descricao", "obrigatória")
	}
	if strings.TrimSpace(conta) != "" {
		if err := pgc.ValidateCode(conta); err != nil {
			verr.Add(field+".conta_pgc", err.Error())
		}
	}
	if !entity.ValidPeriodicidades[per] {
		verr.Add(field+".periodicidade", "deve ser mensal, trimestral ou anual")
	}
	if len(saz) > 0 {
		if err := finance.ValidateSeasonality(saz); err != nil {
			verr.Add(field+".sazonalidade", "12 percentagens não negativas com soma 100")
		}
	}
	if qty.IsNegative() {
		verr.Add(field+".quantidade", "não pode ser negativa")
	}
	if unit.IsNegative() {
		verr.Add(field+".valor", "não pode ser negativo")
	}
}

func toResponse(b *entity.Budget) *dto.BudgetResponse {
	if b == nil {
		return nil
	}
	totals := finance.BudgetTotalsFrom(b.TotalReceita, b.TotalCusto, b.TotalAtivos)
	if len(b.Revenues)+len(b.Costs)+len(b.Assets) > 0 {
		totals = finance.ComputeBudgetTotals(b.Revenues, b.Costs, b.Assets)
	}
	resp := &dto.BudgetResponse{
		ID:             b.ID,
		CompanyID:      b.CompanyID,
		Nome:           b.Nome,
		Descricao:      b.Descricao,
		Ano:            b.Ano,
		Departamento:   b.Departamento,
		Prioridade:     b.Prioridade,
		Tags:           nonNil(b.Tags),
		Anexos:         nonNil(b.Anexos),
		WorkflowFields: dto.NewWorkflowFields(b.State),
		Receitas:       make([]dto.RevenueLine, 0, len(b.Revenues)),
		Custos:         make([]dto.CostLine, 0, len(b.Costs)),
		Ativos:         make([]dto.AssetLine, 0, len(b.Assets)),
		Totais: dto.BudgetTotalsResponse{
			TotalReceita:     totals.TotalReceita,
			TotalCusto:       totals.TotalCusto,
			TotalAtivos:      totals.TotalAtivos,
			ResultadoLiquido: totals.ResultadoLiquido,
			Margem:           totals.Margem,
		},
	}
	for _, r := range b.Revenues {
		resp.Receitas = append(resp.Receitas, dto.RevenueLine{
			ID: r.ID, Descricao: r.Descricao, ContaPGC: r.ContaPGC,
			Quantidade: r.Quantidade, PrecoUnitario: r.PrecoUnitario, Total: r.Total,
			Periodicidade: r.Periodicidade, Sazonalidade: r.Sazonalidade,
		})
	}
	for _, c := range b.Costs {
		resp.Custos = append(resp.Custos, dto.CostLine{
			ID: c.ID, Descricao: c.Descricao, ContaPGC: c.ContaPGC, Tipo: c.Tipo,
			Quantidade: c.Quantidade, ValorUnitario: c.ValorUnitario, Total: c.Total,
			Periodicidade: c.Periodicidade, Sazonalidade: c.Sazonalidade,
		})
	}
	for _, a := range b.Assets {
		resp.Ativos = append(resp.Ativos, dto.AssetLine{
			ID: a.ID, Descricao: a.Descricao, ContaPGC: a.ContaPGC,
			Quantidade: a.Quantidade, Valor: a.Valor, Total: a.Total, VidaUtilAnos: a.VidaUtilAnos,
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
