//go:build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Error Responses", func() {
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

	ginkgo.It("404 not found, unknown file", func() {
		// Action.
		resp, err := client.Get(ctx, "/does-not-exist.txt")

		// Assert.
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusNotFound))
		expectErrorCode(resp.Body(), http.StatusNotFound)
	})

	ginkgo.It("404 not found, path outside of static root", func() {
		resp, err := client.Get(ctx, "/../../etc/passwd")
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusNotFound))
	})

	ginkgo.It("405 method not allowed on fixed resource", func() {
		resp, err := client.Execute(ctx, http.MethodPost, resourcePath)
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		gomega.Expect(resp.StatusCode()).Should(gomega.Equal(http.StatusMethodNotAllowed))
	})
})

func expectErrorCode(body []byte, code int) {
	var resp struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	gomega.Expect(json.Unmarshal(body, &resp)).Should(gomega.Succeed())
	gomega.Expect(resp.Error.Code).Should(gomega.Equal(code))
	gomega.Expect(resp.Error.Message).ShouldNot(gomega.BeEmpty())
}
