//go:build e2e

package e2e_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Fixed Resource Smoke", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)

	ginkgo.BeforeEach(func() {
		ctx, cancel = context.WithCancel(suiteCtx)
	})

	ginkgo.AfterEach(func() {
		cancel()
	})

	ginkgo.It("returns the file byte to byte", func() {
		// Arrange.
		expected, err := os.ReadFile(filepath.Join(staticRoot, "PointFileProjected.geojson"))
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		// Action.
		resp, err := client.Get(ctx, resourcePath)

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Header().Get("Content-Type")).Should(gomega.Equal("application/geo+json"))
		gomega.Expect(resp.Body()).Should(gomega.Equal(expected))
	})

	ginkgo.It("is a feature collection", func() {
		fc, err := client.GetFeatureCollection(ctx, resourcePath)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(fc.Type).Should(gomega.Equal("FeatureCollection"))
	})

	ginkgo.It("is idempotent", func() {
		first, err := client.Get(ctx, resourcePath)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		second, err := client.Get(ctx, resourcePath)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		gomega.Expect(second.StatusCode()).Should(gomega.Equal(first.StatusCode()))
		gomega.Expect(second.Body()).Should(gomega.Equal(first.Body()))
	})

	ginkgo.It("answers HEAD without body", func() {
		resp, err := client.Head(ctx, resourcePath)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.Body()).Should(gomega.BeEmpty())
	})
})
