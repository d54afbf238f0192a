package scriptcmder

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Script Command", func() {
	var stdout *bytes.Buffer

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
	})

	execute := func(args ...string) error {
		cmd := NewScriptCmd()
		cmd.SetOut(stdout)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		return cmd.ExecuteContext(context.Background())
	}

	writeScript := func(contents string) string {
		path := filepath.Join(GinkgoT().TempDir(), "demo.toml")
		Expect(os.WriteFile(path, []byte(contents), 0o600)).To(Succeed())
		return path
	}

	It("lists the built-in scripts", func() {
		Expect(execute("--list")).To(Succeed())
		Expect(stdout.String()).To(Equal("cyberbard\n"))
	})

	It("summarises the default script", func() {
		Expect(execute()).To(Succeed())

		out := stdout.String()
		Expect(out).To(MatchRegexp(`Script\s+cyberbard`))
		Expect(out).To(MatchRegexp(`Fragments\s+148`))
		Expect(out).To(MatchRegexp(`Duration\s+1m16\.45s`))
	})

	It("dumps one JSON line per fragment", func() {
		Expect(execute("--dump")).To(Succeed())

		var lines []dumpLine
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			var line dumpLine
			Expect(json.Unmarshal(scanner.Bytes(), &line)).To(Succeed())
			lines = append(lines, line)
		}
		Expect(scanner.Err()).NotTo(HaveOccurred())

		Expect(lines).To(HaveLen(148))
		Expect(lines[0].Index).To(Equal(0))
		Expect(lines[0].DelayMS).To(Equal(int64(1000)))
		Expect(lines[147].Index).To(Equal(147))
		Expect(lines[147].DelayMS).To(BeZero())
	})

	It("dumps a script file", func() {
		path := writeScript("[[fragment]]\ndata = \"<b>\"\ndelay = \"250ms\"\n")

		Expect(execute("--dump", path)).To(Succeed())
		Expect(stdout.String()).To(Equal(`{"index":0,"delay_ms":250,"data":"<b>"}` + "\n"))
	})

	It("previews a script into the terminal", func() {
		path := writeScript(`
[[fragment]]
data = "\u001b[32mhello\u001b[0m"
delay = "1s"

[[fragment]]
data = " world\r\n"
`)

		Expect(execute("--preview", "--speed", "0", path)).To(Succeed())
		Expect(stdout.String()).To(Equal("\x1b[32mhello\x1b[0m world\r\n"))
	})

	It("refuses to combine modes", func() {
		err := execute("--dump", "--preview")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("none of the others can be"))
	})

	It("reports unknown scripts", func() {
		err := execute("missing.toml")
		Expect(err).To(MatchError(ContainSubstring(`unknown script "missing.toml"`)))
	})
})
