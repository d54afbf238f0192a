package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/streamcast/pkg/config"
)

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

func writeConfig(contents string) string {
	path := filepath.Join(GinkgoT().TempDir(), "streamcast.toml")
	Expect(os.WriteFile(path, []byte(contents), 0o600)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("returns defaults without a file", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("reads a TOML file", func() {
		path := writeConfig(`
endpoint = "http://localhost:6070"
api_key = "ctv_file"
timeout = "5s"
speed = 2.5

[lifecycle]
enabled = true
title = "Late Night Hacking"
`)

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Endpoint).To(Equal("http://localhost:6070"))
		Expect(cfg.APIKey.Reveal()).To(Equal("ctv_file"))
		Expect(cfg.Timeout).To(Equal(5 * time.Second))
		Expect(cfg.Speed).To(Equal(2.5))
		Expect(cfg.Lifecycle.Enabled).To(BeTrue())
		Expect(cfg.Lifecycle.Title).To(Equal("Late Night Hacking"))
		Expect(cfg.Lifecycle.Cols).To(Equal(120))
	})

	It("lets the environment override the file", func() {
		path := writeConfig(`endpoint = "http://localhost:6070"` + "\n" + `api_key = "ctv_file"` + "\n")
		setenv("STREAMCAST_API_KEY", "ctv_env")
		setenv("STREAMCAST_LIFECYCLE_ROWS", "40")

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Endpoint).To(Equal("http://localhost:6070"))
		Expect(cfg.APIKey.Reveal()).To(Equal("ctv_env"))
		Expect(cfg.Lifecycle.Rows).To(Equal(40))
	})

	It("rejects unknown keys", func() {
		path := writeConfig(`endpont = "http://typo"` + "\n")

		_, err := config.Load(path)
		Expect(err).To(MatchError(ContainSubstring("unknown keys in config file")))
		Expect(err).To(MatchError(ContainSubstring("endpont")))
	})

	It("rejects malformed files", func() {
		path := writeConfig(`endpoint = `)

		_, err := config.Load(path)
		Expect(err).To(MatchError(ContainSubstring("could not parse config file")))
	})

	It("rejects malformed environment values", func() {
		setenv("STREAMCAST_TIMEOUT", "soon")

		_, err := config.Load("")
		Expect(err).To(MatchError(ContainSubstring("could not read environment")))
	})
})

var _ = Describe("Validate", func() {
	var cfg config.Config

	BeforeEach(func() {
		cfg = config.Default()
		cfg.APIKey = "ctv_key"
	})

	It("accepts the defaults with a key", func() {
		Expect(cfg.Validate()).To(Succeed())
	})

	It("requires an API key", func() {
		cfg.APIKey = ""
		err := cfg.Validate()
		Expect(config.IsValidationError(err)).To(BeTrue())
		Expect(err).To(MatchError(ContainSubstring("api key is required")))
	})

	DescribeTable("endpoint",
		func(endpoint, problem string) {
			cfg.Endpoint = endpoint
			Expect(cfg.Validate()).To(MatchError(ContainSubstring(problem)))
		},
		Entry("missing", "", "endpoint is required"),
		Entry("wrong scheme", "ftp://example.com", "endpoint must use http or https"),
		Entry("no host", "http://", "endpoint must include a host"),
	)

	It("lists every problem at once", func() {
		cfg.APIKey = ""
		cfg.Timeout = 0
		cfg.Speed = -1

		var verr *config.ValidationError
		Expect(cfg.Validate()).To(BeAssignableToTypeOf(verr))
		Expect(cfg.Validate().(*config.ValidationError).Problems).To(ConsistOf(
			"api key is required",
			"timeout must be positive",
			"speed must not be negative",
		))
	})

	It("accepts a zero speed", func() {
		cfg.Speed = 0
		Expect(cfg.Validate()).To(Succeed())
	})

	It("requires a title when the lifecycle is enabled", func() {
		cfg.Lifecycle.Enabled = true
		cfg.Lifecycle.Title = ""
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("lifecycle title is required")))
	})
})

var _ = Describe("BaseURL", func() {
	It("drops trailing slashes", func() {
		cfg := config.Config{Endpoint: "https://claude-tv.onrender.com//"}
		Expect(cfg.BaseURL()).To(Equal("https://claude-tv.onrender.com"))
	})
})
