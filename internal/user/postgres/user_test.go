package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	apperrors "github.com/frahmantamala/people-management/internal"
	userDatamodel "github.com/frahmantamala/people-management/internal/core/datamodel/user"
	"github.com/frahmantamala/people-management/internal/user"
	userPostgres "github.com/frahmantamala/people-management/internal/user/postgres"
)

func TestUserPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Postgres Suite")
}

func openTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	Expect(err).NotTo(HaveOccurred())

	// In-memory sqlite gives every pool connection its own database, so pin
	// the pool to a single connection.
	sqlDB, err := db.DB()
	Expect(err).NotTo(HaveOccurred())
	sqlDB.SetMaxOpenConns(1)

	Expect(db.Exec(`CREATE TABLE users (
		user_id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT,
		user_image_uri TEXT,
		company_name TEXT,
		company_image_uri TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`).Error).NotTo(HaveOccurred())

	return db
}

func seedUser(db *gorm.DB, userID, email string) {
	now := time.Now().UTC()
	err := db.Create(&userDatamodel.User{
		UserID:       userID,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("User Repository", func() {
	var (
		db   *gorm.DB
		repo user.RepositoryAPI
	)

	BeforeEach(func() {
		db = openTestDB()
		repo = userPostgres.NewUserRepository(db)
		seedUser(db, "user-1", "jane@example.com")
		seedUser(db, "user-2", "john@example.com")
	})

	Describe("GetByID", func() {
		It("should return a known user", func() {
			dm, err := repo.GetByID("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(dm.Email).To(Equal("jane@example.com"))
		})

		It("should return not found for an unknown id", func() {
			_, err := repo.GetByID("missing")
			Expect(err).To(Equal(apperrors.ErrUserNotFound))
		})
	})

	Describe("UpdateProfile", func() {
		It("should update only the caller's row", func() {
			dm, err := repo.UpdateProfile("user-1", map[string]interface{}{
				"company_name": "Acme Corp",
				"updated_at":   time.Now().UTC(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(*dm.CompanyName).To(Equal("Acme Corp"))

			other, err := repo.GetByID("user-2")
			Expect(err).NotTo(HaveOccurred())
			Expect(other.CompanyName).To(BeNil())
		})

		It("should return not found when the user does not exist", func() {
			_, err := repo.UpdateProfile("missing", map[string]interface{}{
				"company_name": "Acme Corp",
			})
			Expect(err).To(Equal(apperrors.ErrUserNotFound))
		})
	})
})
