// Package modkit provides module wiring and core deps
package modkit

import (
	"tirefit/internal/platform/config"
	"tirefit/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// the calculator needs no stores so this stays small
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log or the root logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
