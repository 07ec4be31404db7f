package entity

import "time"

// Company representa una empresa/tenant del sistema (multi-tenant, Venezuela).
type Company struct {
	ID        string
	Name      string
	RIF       string // Registro de Información Fiscal (J-12345678-9)
	Address   string
	Phone     string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
