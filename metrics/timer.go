package metrics

import (
	"time"

	"code.cloudfoundry.org/lager"
)

//go:generate counterfeiter . Timer

type Timer interface {
	Time(lager.Logger, func())
}

type timer struct {
	name string
}

func (t *timer) Time(logger lager.Logger, fn func()) {
	startTime := time.Now()

	fn()
	duration := time.Since(startTime)

	logger.Debug("stopping-timer", lager.Data{
		"name":     t.name,
		"duration": duration.String(),
	})
}
