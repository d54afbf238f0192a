package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/papercomputeco/streamcast/pkg/config"
	"github.com/papercomputeco/streamcast/pkg/logger"
)

var _ = Describe("NewLoggerTo", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("writes info lines with fields", func() {
		log := logger.NewLoggerTo(buf, false)
		log.Info("stream started", zap.Int("fragments", 148))
		Expect(log.Sync()).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("stream started"))
		Expect(buf.String()).To(ContainSubstring(`"fragments": 148`))
	})

	It("drops debug lines unless asked", func() {
		logger.NewLoggerTo(buf, false).Debug("fragment sent")
		Expect(buf.String()).To(BeEmpty())

		logger.NewLoggerTo(buf, true).Debug("fragment sent")
		Expect(buf.String()).To(ContainSubstring("fragment sent"))
	})

	It("never prints a secret", func() {
		log := logger.NewLoggerTo(buf, false)
		log.Info("config", zap.Stringer("api_key", config.SecretString("ctv_live_key")))

		Expect(buf.String()).NotTo(ContainSubstring("ctv_live_key"))
		Expect(buf.String()).To(ContainSubstring(config.SecretStringValue))
	})
})
