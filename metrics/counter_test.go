package metrics_test

import (
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/smartguard/metrics"
)

var _ = Describe("Counter", func() {
	var (
		tally  *metrics.Tally
		logger *lagertest.TestLogger
	)

	BeforeEach(func() {
		tally = metrics.NewTally()
		logger = lagertest.NewTestLogger("counter")
	})

	It("increments the count by one", func() {
		counter := tally.Counter("audits.WEAK")
		counter.Inc(logger)
		counter.Inc(logger)

		Expect(tally.Count("audits.WEAK")).To(Equal(2))
	})

	It("increments the count by n", func() {
		tally.Counter("audits.STRONG").IncN(logger, 5)

		Expect(tally.Count("audits.STRONG")).To(Equal(5))
		Expect(logger.LogMessages()).To(HaveLen(1))
		Expect(logger.LogMessages()[0]).To(Equal("counter.emit-count.emitted"))
	})

	It("ignores non-positive increments", func() {
		tally.Counter("audits.STRONG").IncN(logger, 0)

		Expect(tally.Count("audits.STRONG")).To(BeZero())
		Expect(logger.LogMessages()).To(BeEmpty())
	})

	It("shares counts between counters with the same name", func() {
		tally.Counter("audits").Inc(logger)
		tally.Counter("audits").Inc(logger)
		tally.Counter("other").Inc(logger)

		Expect(tally.Count("audits")).To(Equal(2))
		Expect(tally.Count("other")).To(Equal(1))
	})
})
