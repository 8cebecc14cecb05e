package auth_test

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/people-management/internal"
	"github.com/frahmantamala/people-management/internal/auth"
	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockRepository implements auth.RepositoryAPI backed by a map keyed on email.
type MockRepository struct {
	users map[string]*userDatamodel.User
}

func NewMockRepository() *MockRepository {
	return &MockRepository{users: make(map[string]*userDatamodel.User)}
}

func (m *MockRepository) CreateUser(user *userDatamodel.User) error {
	if _, exists := m.users[user.Email]; exists {
		return apperrors.ErrEmailExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *MockRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	user, exists := m.users[strings.ToLower(email)]
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		service  *auth.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		tokenGen := auth.NewJWTTokenGenerator("test-secret-at-least-32-characters!", time.Hour)
		service = auth.NewService(mockRepo, tokenGen, 4, logger)
	})

	Describe("Authenticate with action=create", func() {
		It("should register a new user and return 201 with a token", func() {
			resp, status, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "password123",
				Action:   "create",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusCreated))
			Expect(resp.Email).To(Equal("jane@example.com"))
			Expect(resp.Token).NotTo(BeEmpty())
		})

		It("should lowercase the email before storing", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "Jane@Example.COM",
				Password: "password123",
				Action:   "create",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.users).To(HaveKey("jane@example.com"))
		})

		It("should not store the plaintext password", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "password123",
				Action:   "create",
			})
			Expect(err).NotTo(HaveOccurred())
			stored := mockRepo.users["jane@example.com"]
			Expect(stored.PasswordHash).NotTo(Equal("password123"))
			Expect(auth.VerifyPassword(stored.PasswordHash, "password123")).To(Succeed())
		})

		It("should surface a conflict for a duplicate email", func() {
			dto := auth.AuthDTO{Email: "jane@example.com", Password: "password123", Action: "create"}
			_, _, err := service.Authenticate(dto)
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.Authenticate(dto)
			Expect(err).To(Equal(apperrors.ErrEmailExists))
		})
	})

	Describe("Authenticate with action=login", func() {
		BeforeEach(func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "password123",
				Action:   "create",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return 200 with a token for valid credentials", func() {
			resp, status, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "password123",
				Action:   "login",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(http.StatusOK))
			Expect(resp.Token).NotTo(BeEmpty())
		})

		It("should reject a wrong password", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "wrongpassword",
				Action:   "login",
			})
			Expect(err).To(Equal(apperrors.ErrInvalidCredentials))
		})

		It("should reject an unknown email", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "nobody@example.com",
				Password: "password123",
				Action:   "login",
			})
			Expect(err).To(Equal(apperrors.ErrUserNotFound))
		})
	})

	Describe("validation", func() {
		It("should reject a malformed email", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "not-an-email",
				Password: "password123",
				Action:   "create",
			})
			Expect(err).To(HaveOccurred())
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(apperrors.ErrorTypeValidation))
		})

		It("should reject a password shorter than 8 characters", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "short",
				Action:   "create",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject a password longer than 32 characters", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: strings.Repeat("a", 33),
				Action:   "create",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown action", func() {
			_, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "password123",
				Action:   "delete",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("token lifecycle", func() {
		It("should validate a freshly issued token", func() {
			resp, _, err := service.Authenticate(auth.AuthDTO{
				Email:    "jane@example.com",
				Password: "password123",
				Action:   "create",
			})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(resp.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Email).To(Equal("jane@example.com"))
			Expect(claims.Subject).NotTo(BeEmpty())
		})

		It("should reject a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-also-32-characters!!", time.Hour)
			token, err := other.GenerateToken("user-1", "jane@example.com")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(Equal(apperrors.ErrInvalidToken))
		})

		It("should reject an expired token", func() {
			expired := &auth.JWTTokenGenerator{
				Secret:   []byte("test-secret-at-least-32-characters!"),
				TokenTTL: -time.Hour,
			}
			token, err := expired.GenerateToken("user-1", "jane@example.com")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(Equal(apperrors.ErrTokenExpired))
		})

		It("should reject garbage tokens", func() {
			_, err := service.ValidateAccessToken("not.a.token")
			Expect(err).To(Equal(apperrors.ErrInvalidToken))
		})
	})
})
