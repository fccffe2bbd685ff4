package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
)

// VCSProviderFactory define la interfaz para crear clientes VCS
type VCSProviderFactory interface {
	// CreateClient crea un cliente VCS con las credenciales proporcionadas
	CreateClient(ctx context.Context, owner, repo, token string, trans *i18n.Translations) (ports.VCSClient, error)

	// Name retorna el nombre del proveedor
	Name() string
}

// VCSProviderRegistry gestiona el registro de proveedores VCS
type VCSProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]VCSProviderFactory
}

// NewVCSProviderRegistry crea un nuevo registro de proveedores VCS
func NewVCSProviderRegistry() *VCSProviderRegistry {
	return &VCSProviderRegistry{
		factories: make(map[string]VCSProviderFactory),
	}
}

// Register registra un nuevo proveedor VCS
func (r *VCSProviderRegistry) Register(name string, factory VCSProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("proveedor VCS '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *VCSProviderRegistry) Get(name string) (VCSProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errors.NewVCSProviderNotSupportedError(name)
	}

	return factory, nil
}

// List retorna la lista de proveedores registrados
func (r *VCSProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// IsRegistered verifica si un proveedor está registrado
func (r *VCSProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}
