package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}

// ModuleRepository consulta los módulos contratados por empresa (company_modules).
type ModuleRepository interface {
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
}
