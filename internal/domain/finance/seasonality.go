package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/FinancePro-api/internal/domain"
)

// SeasonalityTolerance desvio máximo admitido entre a soma das percentagens e 100.
var SeasonalityTolerance = decimal.RequireFromString("0.1")

// ComputeSeasonalAllocation reparte o total anual pelos 12 meses: mes[i] = total × pct[i] / 100.
// Não valida a soma das percentagens; quem chama usa ValidateSeasonality antes.
func ComputeSeasonalAllocation(annualTotal decimal.Decimal, pct [12]decimal.Decimal) [12]decimal.Decimal {
	var out [12]decimal.Decimal
	for i, p := range pct {
		out[i] = annualTotal.Mul(p).Div(hundred)
	}
	return out
}

// ValidateSeasonality exige 12 percentagens não negativas cuja soma seja 100 ± 0.1.
func ValidateSeasonality(pct []decimal.Decimal) error {
	if len(pct) != 12 {
		return domain.NewValidationError("sazonalidade", fmt.Sprintf("são necessárias 12 percentagens, recebidas %d", len(pct)))
	}
	sum := decimal.Zero
	for i, p := range pct {
		if p.IsNegative() {
			return domain.NewValidationError("sazonalidade", fmt.Sprintf("percentagem do mês %d é negativa", i+1))
		}
		sum = sum.Add(p)
	}
	if sum.Sub(hundred).Abs().GreaterThan(SeasonalityTolerance) {
		return domain.NewValidationError("sazonalidade", fmt.Sprintf("a soma das percentagens é %s, deve ser 100", sum.String()))
	}
	return nil
}

// ToMonths converte uma sazonalidade validada em array de 12.
func ToMonths(pct []decimal.Decimal) ([12]decimal.Decimal, error) {
	var out [12]decimal.Decimal
	if err := ValidateSeasonality(pct); err != nil {
		return out, err
	}
	copy(out[:], pct)
	return out, nil
}
