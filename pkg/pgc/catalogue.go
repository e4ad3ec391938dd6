// Package pgc contém o catálogo de classes e as regras de validação de códigos
// do Plano Geral de Contabilidade (PGC-AO) usadas pela aplicação.
package pgc

// Classes do plano de contas (1 a 8).
const (
	ClassMeiosFixos      = 1 // Meios fixos e investimentos
	ClassExistencias     = 2 // Existências
	ClassTerceiros       = 3 // Terceiros
	ClassMeiosMonetarios = 4 // Meios monetários
	ClassCapital         = 5 // Capital e reservas
	ClassCustos          = 6 // Custos e perdas
	ClassProveitos       = 7 // Proveitos e ganhos
	ClassResultados      = 8 // Resultados
)

// ClassNames nome legível de cada classe.
var ClassNames = map[int]string{
	ClassMeiosFixos:      "Meios fixos e investimentos",
	ClassExistencias:     "Existências",
	ClassTerceiros:       "Terceiros",
	ClassMeiosMonetarios: "Meios monetários",
	ClassCapital:         "Capital e reservas",
	ClassCustos:          "Custos e perdas",
	ClassProveitos:       "Proveitos e ganhos",
	ClassResultados:      "Resultados",
}

// Prefixos de conta usados para priorizar saídas de tesouraria.
const (
	PrefixPessoal          = "63" // custos com pessoal
	PrefixServicosExternos = "62" // fornecimentos e serviços externos
)

// Estados de conformidade de uma conta.
const (
	StatusValidada = "validada"
	StatusPendente = "pendente"
	StatusErro     = "erro"
	StatusRevisao  = "revisao"
)

// ValidStatuses estados aceites para uma conta PGC.
var ValidStatuses = map[string]bool{
	StatusValidada: true,
	StatusPendente: true,
	StatusErro:     true,
	StatusRevisao:  true,
}

const (
	MinCodeLength = 2
	MaxCodeLength = 8
)
