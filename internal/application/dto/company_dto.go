package dto

import "time"

// CompanyResponse datos de la empresa del usuario autenticado.
type CompanyResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	RIF       string          `json:"rif"`
	Address   string          `json:"address,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Status    string          `json:"status"`
	Modulos   map[string]bool `json:"modulos"`
	CreatedAt time.Time       `json:"created_at"`
}
