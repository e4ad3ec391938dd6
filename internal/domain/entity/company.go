package entity

import "time"

// Estados de uma empresa.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa uma empresa agro-industrial (tenant do sistema).
// Nunca é apagada fisicamente: Excluido/Ativo marcam a remoção lógica.
type Company struct {
	ID        string
	Name      string
	NIF       string // Número de Identificação Fiscal (Angola)
	Address   string
	Phone     string
	Email     string
	Sector    string // ex.: agricultura, pecuária, agro-indústria
	Status    string
	Ativo     bool
	Excluido  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
