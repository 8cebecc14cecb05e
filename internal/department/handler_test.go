package department_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/people-management/internal/department"
	departmentPostgres "github.com/frahmantamala/people-management/internal/department/postgres"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		// In-memory sqlite gives every pool connection its own database, so
		// pin the pool to a single connection.
		sqlDB, dbErr := db.DB()
		Expect(dbErr).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(db.Exec("PRAGMA foreign_keys = ON").Error).NotTo(HaveOccurred())
		Expect(db.Exec(`CREATE TABLE departments (
			department_id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`).Error).NotTo(HaveOccurred())
		Expect(db.Exec(`CREATE TABLE employees (
			employee_id TEXT PRIMARY KEY,
			identity_number TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			employee_image_uri TEXT,
			gender TEXT NOT NULL,
			department_id TEXT NOT NULL REFERENCES departments (department_id) ON DELETE RESTRICT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`).Error).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := department.NewService(departmentPostgres.NewDepartmentRepository(db), slogger)
		handler := department.NewHandler(service, 10, 100)

		router = chi.NewRouter()
		router.Post("/department", handler.Create)
		router.Get("/department", handler.List)
		router.Patch("/department/{departmentId}", handler.Update)
		router.Delete("/department/{departmentId}", handler.Delete)
	})

	createDepartment := func(name string) department.DepartmentResponse {
		req := httptest.NewRequest(http.MethodPost, "/department", strings.NewReader(`{"name":"`+name+`"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var resp department.DepartmentResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	It("should create a department and return 201 with its id", func() {
		resp := createDepartment("Engineering")
		Expect(resp.DepartmentID).NotTo(BeEmpty())
		Expect(resp.Name).To(Equal("Engineering"))
	})

	It("should return 409 for a duplicate name", func() {
		createDepartment("Engineering")

		req := httptest.NewRequest(http.MethodPost, "/department", strings.NewReader(`{"name":"Engineering"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("should return 400 with field details for a short name", func() {
		req := httptest.NewRequest(http.MethodPost, "/department", strings.NewReader(`{"name":"ab"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("name"))
	})

	It("should rename through PATCH with the id in the path", func() {
		created := createDepartment("Engineering")

		req := httptest.NewRequest(http.MethodPatch, "/department/"+created.DepartmentID, strings.NewReader(`{"name":"Platform"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp department.DepartmentResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Name).To(Equal("Platform"))
	})

	It("should return 404 when updating an unknown id", func() {
		req := httptest.NewRequest(http.MethodPatch, "/department/missing", strings.NewReader(`{"name":"Platform"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should return 409 when deleting a department with employees", func() {
		created := createDepartment("Engineering")

		err := db.Exec(`INSERT INTO employees
			(employee_id, identity_number, name, gender, department_id, created_at, updated_at)
			VALUES ('emp-1', 'EMP001', 'Jane Doe', 'female', ?, ?, ?)`,
			created.DepartmentID, time.Now().UTC(), time.Now().UTC()).Error
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodDelete, "/department/"+created.DepartmentID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("should delete an empty department", func() {
		created := createDepartment("Engineering")

		req := httptest.NewRequest(http.MethodDelete, "/department/"+created.DepartmentID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("should clamp pageSize on listings", func() {
		for _, name := range []string{"Engineering", "Finance", "Operations"} {
			createDepartment(name)
		}

		req := httptest.NewRequest(http.MethodGet, "/department?page=1&pageSize=5000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp department.ListResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.PageSize).To(Equal(100))
		Expect(resp.Departments).To(HaveLen(3))
	})
})
