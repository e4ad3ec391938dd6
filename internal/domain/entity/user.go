package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"    // gere empresa e utilizadores, aprova
	RoleGestor   = "gestor"   // aprova e rejeita
	RoleAnalista = "analista" // cria e submete orçamentos e planos
)

// ValidRoles papéis aceites no registo.
var ValidRoles = map[string]bool{RoleAdmin: true, RoleGestor: true, RoleAnalista: true}

// User representa um utilizador (pertence a exatamente uma Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // hash bcrypt
	Name         string
	Role         string
	Department   string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
