package metrics

import "code.cloudfoundry.org/lager"

//go:generate counterfeiter . Counter

type Counter interface {
	Inc(lager.Logger)
	IncN(lager.Logger, int)
}

type counter struct {
	name  string
	tally *Tally
}

func (c *counter) Inc(logger lager.Logger) {
	c.IncN(logger, 1)
}

func (c *counter) IncN(logger lager.Logger, count int) {
	logger = logger.Session("emit-count", lager.Data{
		"name":      c.name,
		"increment": count,
	})

	if count <= 0 {
		return
	}

	total := c.tally.add(c.name, count)

	logger.Debug("emitted", lager.Data{
		"total": total,
	})
}
