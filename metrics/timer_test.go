package metrics_test

import (
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/smartguard/metrics"
)

var _ = Describe("Timer", func() {
	var (
		timer  metrics.Timer
		logger *lagertest.TestLogger
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("timer")
		timer = metrics.NewTally().Timer("audit")
	})

	It("handles a closure", func() {
		hasBeenCalled := false
		timer.Time(logger, func() {
			hasBeenCalled = true
		})

		Expect(hasBeenCalled).To(BeTrue())
		Expect(logger.LogMessages()).To(HaveLen(1))
		Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("name", "audit"))
	})
})
