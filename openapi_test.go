package main_test

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The served contract in api/openapi.yml must stay loadable and internally
// consistent, and must keep describing the routes the router registers.
var _ = Describe("OpenAPI contract", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should validate against the OpenAPI 3 schema", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should describe every versioned route", func() {
		for _, path := range []string{
			"/auth",
			"/user",
			"/file",
			"/department",
			"/department/{departmentId}",
			"/employee",
			"/employee/{identityNumber}",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should require bearer auth on everything except /auth", func() {
		for path, item := range doc.Paths.Map() {
			if path == "/auth" {
				continue
			}
			for _, op := range item.Operations() {
				Expect(op.Security).NotTo(BeNil(), "unsecured operation on %s", path)
			}
		}
	})
})
