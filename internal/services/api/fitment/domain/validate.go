package domain

import (
	"sync"

	"tirefit/internal/core/tiresize"
	"tirefit/internal/platform/net/http/bind"
)

var registerOnce sync.Once

// RegisterValidators installs the tire_size and speed_index tags on the shared validator
func RegisterValidators() {
	registerOnce.Do(func() {
		must(bind.RegisterTag("tire_size", func(fl bind.FieldLevel) bool {
			_, err := tiresize.Parse(fl.Field().String())
			return err == nil
		}, "{0} is not a tire size label"))
		must(bind.RegisterTag("speed_index", func(fl bind.FieldLevel) bool {
			_, ok := tiresize.ParseSpeedIndex(fl.Field().String())
			return ok
		}, "{0} is not a known speed rating"))
	})
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
