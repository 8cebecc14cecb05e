package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/people-management/internal/database"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, _, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			// Order matters: employees reference departments.
			for _, table := range []string{"employees", "departments", "files", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password123"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		demoEmail := "demo@mail.com"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", demoEmail).Row()
		if err := row.Scan(&exists); err != nil {
			userID := uuid.NewString()
			err := db.Exec(
				"INSERT INTO users (user_id, email, password_hash, name, company_name, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				userID, demoEmail, string(hash), "Demo User", "Demo Company",
			).Error
			if err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", demoEmail)
		} else {
			fmt.Println("demo user already exists")
		}

		departments := []string{"Engineering", "Finance", "Human Resources", "Operations"}
		departmentIDs := make(map[string]string, len(departments))

		for _, name := range departments {
			var departmentID string
			row := db.Raw("SELECT department_id FROM departments WHERE name = ?", name).Row()
			if err := row.Scan(&departmentID); err != nil {
				departmentID = uuid.NewString()
				err := db.Exec(
					"INSERT INTO departments (department_id, name, created_at, updated_at) VALUES (?, ?, now(), now())",
					departmentID, name,
				).Error
				if err != nil {
					log.Fatalf("failed to insert department %s: %v", name, err)
				}
				fmt.Printf("Seeded department: %s\n", name)
			}
			departmentIDs[name] = departmentID
		}

		employees := []struct {
			IdentityNumber string
			Name           string
			Gender         string
			Department     string
		}{
			{"EMP001", "Andi Wijaya", "male", "Engineering"},
			{"EMP002", "Siti Rahma", "female", "Finance"},
			{"EMP003", "Budi Santoso", "male", "Operations"},
		}

		for _, e := range employees {
			var exists int
			row := db.Raw("SELECT 1 FROM employees WHERE identity_number = ?", e.IdentityNumber).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}

			err := db.Exec(
				"INSERT INTO employees (employee_id, identity_number, name, gender, department_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				uuid.NewString(), e.IdentityNumber, e.Name, e.Gender, departmentIDs[e.Department],
			).Error
			if err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.IdentityNumber, err)
			}
			fmt.Printf("Seeded employee: %s (%s)\n", e.Name, e.Department)
		}

		fmt.Println("Seeding completed")
	},
}
