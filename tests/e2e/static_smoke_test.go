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

var _ = ginkgo.Describe("Static Files Smoke", func() {
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

	ginkgo.DescribeTable("existing files are served as is",
		func(requestPath, file, contentType string) {
			// Arrange.
			expected, err := os.ReadFile(filepath.Join(staticRoot, file))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			// Action.
			resp, err := client.Get(ctx, requestPath)

			// Assert.
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusOK))
			gomega.Expect(resp.Header().Get("Content-Type")).Should(gomega.HavePrefix(contentType))
			gomega.Expect(resp.Body()).Should(gomega.Equal(expected))
		},
		ginkgo.Entry("index page", "/index.html", "index.html", "text/html"),
		ginkgo.Entry("directory index", "/", "index.html", "text/html"),
		ginkgo.Entry("geojson by its own name", "/PointFileProjected.geojson", "PointFileProjected.geojson", "application/geo+json"),
	)
})
