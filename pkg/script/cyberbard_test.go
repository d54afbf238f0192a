package script_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/streamcast/pkg/script"
	"github.com/papercomputeco/streamcast/pkg/stream"
)

var _ = Describe("CyberBard", func() {
	var fragments []stream.Fragment

	BeforeEach(func() {
		fragments = stream.Collect(script.CyberBard())
	})

	count := func(match func(stream.Fragment) bool) int {
		n := 0
		for _, f := range fragments {
			if match(f) {
				n++
			}
		}
		return n
	}

	It("has 148 fragments", func() {
		Expect(fragments).To(HaveLen(148))
	})

	It("opens with the banner", func() {
		first := fragments[0]
		Expect(first.Data).To(HavePrefix("\x1b[1m\x1b[36m╔"))
		Expect(first.Data).To(ContainSubstring("██"))
		Expect(first.Delay).To(Equal(time.Second))
	})

	It("ends with the finale and no trailing delay", func() {
		last := fragments[len(fragments)-1]
		Expect(last.Data).To(ContainSubstring("Keep on coding!"))
		Expect(last.Data).To(HaveSuffix("\x1b[0m"))
		Expect(last.Delay).To(BeZero())
	})

	It("keeps every line of the finale art on its own line", func() {
		last := fragments[len(fragments)-1]
		Expect(last.Data).To(ContainSubstring("|  _ \\\n   | |   | |_| |"))
		Expect(strings.Count(last.Data, "\n")).To(Equal(17))
	})

	It("sends progress dots one at a time", func() {
		Expect(count(func(f stream.Fragment) bool { return f.Data == "." })).To(Equal(35))
		Expect(count(func(f stream.Fragment) bool {
			return f.Data == "." && f.Delay == 150*time.Millisecond
		})).To(Equal(15))
		Expect(count(func(f stream.Fragment) bool {
			return f.Data == "." && f.Delay == 120*time.Millisecond
		})).To(Equal(20))
	})

	It("animates particle frames in place", func() {
		frame := func(f stream.Fragment) bool {
			return strings.HasPrefix(f.Data, "\r") && !strings.HasPrefix(f.Data, "\r\n") &&
				strings.Contains(f.Data, "⚛")
		}
		Expect(count(frame)).To(Equal(20))
		Expect(count(func(f stream.Fragment) bool {
			return frame(f) && f.Delay == 250*time.Millisecond
		})).To(Equal(20))

		Expect(count(func(f stream.Fragment) bool { return f.Data == "\x1b[5A" })).To(Equal(4))
		Expect(count(func(f stream.Fragment) bool {
			return f.Data == "\x1b[5B" && f.Delay == 500*time.Millisecond
		})).To(Equal(1))
	})

	It("draws six benchmark bars", func() {
		bar := func(f stream.Fragment) bool {
			return strings.Contains(f.Data, "█") && strings.HasSuffix(f.Data, "%\r\n")
		}
		Expect(count(bar)).To(Equal(6))

		for i, f := range fragments {
			if !bar(f) {
				continue
			}
			Expect(f.Delay).To(Equal(600 * time.Millisecond))
			// the label goes out just before its bar, without a pause
			Expect(fragments[i-1].Data).To(HavePrefix("\x1b[33m  "))
			Expect(fragments[i-1].Delay).To(BeZero())
		}
	})

	It("scales bars to half the percentage", func() {
		for _, f := range fragments {
			if strings.HasSuffix(f.Data, " 98%\r\n") {
				Expect(strings.Count(f.Data, "█")).To(Equal(49))
				return
			}
		}
		Fail("no 98% bar")
	})

	It("pauses longer after the last typed header line", func() {
		Expect(count(func(f stream.Fragment) bool { return f.Delay == 1400*time.Millisecond })).To(Equal(1))
	})

	It("carries raw escape sequences", func() {
		for _, f := range fragments {
			Expect(f.Data).NotTo(BeEmpty())
		}
		Expect(fragments[1].Data).To(Equal("\x1b[32m[CyberBard]$\x1b[0m whoami\r\n"))
	})

	It("is restartable", func() {
		s := script.CyberBard()
		Expect(stream.Measure(s)).To(Equal(stream.Measure(s)))
	})

	It("stops when the consumer breaks early", func() {
		n := 0
		for range script.CyberBard() {
			n++
			if n == 10 {
				break
			}
		}
		Expect(n).To(Equal(10))
	})

	It("takes a little over a minute to play", func() {
		stats := stream.Measure(script.CyberBard())
		Expect(stats.TotalDelay).To(Equal(76450 * time.Millisecond))
	})
})
