package module

import (
	"tirefit/internal/services/api/fitment/domain"
)

// Ports is what fitment exposes to other modules
type Ports struct {
	Service  domain.ServicePort
	Defaults domain.DefaultsPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
