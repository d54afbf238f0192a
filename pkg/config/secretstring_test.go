package config_test

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/streamcast/pkg/config"
)

var _ = Describe("SecretString", func() {
	It("hides the value when printed", func() {
		s := config.SecretString("ctv_live_key")
		Expect(s.String()).To(Equal(config.SecretStringValue))
		Expect(fmt.Sprintf("%v", s)).To(Equal(config.SecretStringValue))
		Expect(s.Reveal()).To(Equal("ctv_live_key"))
	})

	It("hides the value in JSON", func() {
		b, err := json.Marshal(struct {
			Key config.SecretString `json:"key"`
		}{Key: "ctv_live_key"})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal(`{"key":"<secret>"}`))
	})

	It("prints nothing for an empty value", func() {
		var s config.SecretString
		Expect(s.String()).To(BeEmpty())

		b, err := json.Marshal(s)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(Equal("null"))
	})
})
