// Package empresa perfil de la empresa autenticada y módulos contratados.
package empresa

import (
	"context"
	"fmt"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// Módulos contratables; cada grupo de rutas exige el suyo.
const (
	ModuloCuentasPorPagar = "cuentas_por_pagar"
	ModuloCreditos        = "creditos"
	ModuloCaja            = "caja"
	ModuloPrecios         = "precios"
)

// Modulos todos los módulos conocidos.
var Modulos = []string{ModuloCuentasPorPagar, ModuloCreditos, ModuloCaja, ModuloPrecios}

// ModuleService verifica qué módulos tiene activos una empresa.
type ModuleService struct {
	repo repository.ModuleRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(repo repository.ModuleRepository) *ModuleService {
	return &ModuleService{repo: repo}
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
// Devuelve false (sin error) si la empresa no tiene el módulo contratado;
// error solo ante fallos de infraestructura.
func (s *ModuleService) HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error) {
	if companyID == "" || moduleName == "" {
		return false, fmt.Errorf("module: companyID y moduleName son obligatorios")
	}
	return s.repo.HasActiveModule(ctx, companyID, moduleName)
}

// CompanyUseCase consulta de la empresa propia.
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	modules *ModuleService
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, modules *ModuleService) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, modules: modules}
}

// GetCompany devuelve la empresa y el estado de cada módulo.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	out := &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		RIF:       c.RIF,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		Modulos:   make(map[string]bool, len(Modulos)),
		CreatedAt: c.CreatedAt,
	}
	for _, m := range Modulos {
		active, err := uc.modules.HasActiveModule(ctx, companyID, m)
		if err != nil {
			return nil, err
		}
		out.Modulos[m] = active
	}
	return out, nil
}
