package validation_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/core/common/validation"
)

func TestValidation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Validation Suite")
}

func fieldErrors(err *apperrors.AppError) []apperrors.ValidationError {
	details, ok := err.Details.(apperrors.ValidationErrors)
	Expect(ok).To(BeTrue())
	return details.Errors
}

var _ = Describe("ValidationBuilder", func() {
	Describe("Required", func() {
		It("should fail on empty string", func() {
			v := validation.NewValidator()
			v.Field("name", "").Required()
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(err.Type).To(Equal(apperrors.ErrorTypeValidation))
		})

		It("should fail on nil pointer", func() {
			v := validation.NewValidator()
			var name *string
			v.Field("name", name).Required()
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should pass on non-empty string", func() {
			v := validation.NewValidator()
			v.Field("name", "Jane Doe").Required()
			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("length checks", func() {
		It("should enforce minimum length", func() {
			v := validation.NewValidator()
			v.Field("name", "abc").MinLength(4)
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(fieldErrors(err)[0].Field).To(Equal("name"))
		})

		It("should enforce maximum length", func() {
			v := validation.NewValidator()
			v.Field("name", "aaaaaa").MaxLength(5)
			Expect(v.Validate()).NotTo(BeNil())
		})

		It("should skip length checks for nil optional fields", func() {
			v := validation.NewValidator()
			var name *string
			v.Field("name", name).MinLength(4).MaxLength(52)
			Expect(v.Validate()).To(BeNil())
		})

		It("should check length of non-nil pointers", func() {
			v := validation.NewValidator()
			short := "ab"
			v.Field("name", &short).MinLength(4)
			Expect(v.Validate()).NotTo(BeNil())
		})
	})

	Describe("Email", func() {
		It("should accept a valid address", func() {
			v := validation.NewValidator()
			v.Field("email", "jane@example.com").Required().Email()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject a malformed address", func() {
			v := validation.NewValidator()
			v.Field("email", "not-an-email").Required().Email()
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(fieldErrors(err)[0].Code).To(Equal(string(apperrors.ErrCodeInvalidEmail)))
		})
	})

	Describe("URL", func() {
		It("should accept an absolute URL", func() {
			v := validation.NewValidator()
			v.Field("uri", "https://example.com/image.png").URL()
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject a URL without scheme", func() {
			v := validation.NewValidator()
			v.Field("uri", "example.com/image.png").URL()
			Expect(v.Validate()).NotTo(BeNil())
		})
	})

	Describe("OneOf", func() {
		It("should accept listed values", func() {
			v := validation.NewValidator()
			v.Field("gender", "female").OneOf(apperrors.ErrCodeInvalidGender, "male", "female")
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject unlisted values", func() {
			v := validation.NewValidator()
			v.Field("gender", "other").OneOf(apperrors.ErrCodeInvalidGender, "male", "female")
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			Expect(fieldErrors(err)[0].Code).To(Equal(string(apperrors.ErrCodeInvalidGender)))
		})

		It("should leave empty values to Required", func() {
			v := validation.NewValidator()
			v.Field("gender", "").OneOf(apperrors.ErrCodeInvalidGender, "male", "female")
			Expect(v.Validate()).To(BeNil())
		})
	})

	Describe("UUID", func() {
		It("should accept a canonical UUID", func() {
			v := validation.NewValidator()
			v.Field("department_id", "b3f1c9a0-5a7e-4a7a-9a3e-1c2d3e4f5a6b").UUID(apperrors.ErrCodeValidationFailed)
			Expect(v.Validate()).To(BeNil())
		})

		It("should reject garbage", func() {
			v := validation.NewValidator()
			v.Field("department_id", "not-a-uuid").UUID(apperrors.ErrCodeValidationFailed)
			Expect(v.Validate()).NotTo(BeNil())
		})
	})

	Describe("error collection", func() {
		It("should collect every failing field, not just the first", func() {
			v := validation.NewValidator()
			v.Field("email", "bad").Required().Email()
			v.Field("password", "short").MinLength(8)
			err := v.Validate()
			Expect(err).NotTo(BeNil())
			errs := fieldErrors(err)
			Expect(len(errs)).To(Equal(2))
			Expect(errs[0].Field).To(Equal("email"))
			Expect(errs[1].Field).To(Equal("password"))
		})
	})
})

var _ = Describe("domain rules", func() {
	checkGender := func(value string) *apperrors.AppError {
		v := validation.NewValidator()
		v.Field("gender", value).Required().Gender()
		return v.Validate()
	}

	checkIdentityNumber := func(value string) *apperrors.AppError {
		v := validation.NewValidator()
		v.Field("identityNumber", value).Required().IdentityNumber()
		return v.Validate()
	}

	It("should validate gender values", func() {
		Expect(checkGender("male")).To(BeNil())
		Expect(checkGender("female")).To(BeNil())
		Expect(checkGender("unknown")).NotTo(BeNil())
		Expect(checkGender("")).NotTo(BeNil())
	})

	It("should validate identity numbers", func() {
		Expect(checkIdentityNumber("EMP001")).To(BeNil())
		Expect(checkIdentityNumber("1234")).NotTo(BeNil())
		Expect(checkIdentityNumber("has space")).NotTo(BeNil())
	})

	It("should validate department names", func() {
		Expect(validation.ValidateDepartmentName("Engineering")).To(BeNil())
		Expect(validation.ValidateDepartmentName("abc")).NotTo(BeNil())
	})
})
