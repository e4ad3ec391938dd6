package repository

import (
	"time"

	"github.com/jhoicas/FinancePro-api/internal/domain/entity"
)

// PendingFilter filtros da fila de aprovação. Status vazio equivale a em_analise.
// Busca chega já normalizada (sem acentos, minúsculas). DataFim é exclusiva.
type PendingFilter struct {
	Tipo         entity.PendingTipo
	Status       string
	Departamento string
	DataInicio   *time.Time
	DataFim      *time.Time
	Busca        string
	Limit        int
	Offset       int
}
