package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/taskhive/taskhive/config"
	"github.com/taskhive/taskhive/pkg/helpers"
)

// Seeds one account per role plus a demo project with a couple of tasks.
// Re-running replaces the demo accounts so the data stays predictable.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Demo project goes first; tasks cascade with it and the user rows are
	// then free of references.
	if _, err := db.Exec(`DELETE FROM projects WHERE name = 'Website Redesign'`); err != nil {
		log.Fatalf("failed to clear demo project: %v", err)
	}
	if _, err := db.Exec(`
		UPDATE tasks SET assigned_to_id = NULL
		WHERE assigned_to_id IN (SELECT id FROM users WHERE username IN ('admin', 'mod', 'user'))
	`); err != nil {
		log.Fatalf("failed to unassign demo users: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM users WHERE username IN ('admin', 'mod', 'user')`); err != nil {
		log.Fatalf("failed to clear demo users: %v", err)
	}

	hash, err := helpers.HashPassword("password")
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	seedUser := func(username, fullName, role string) string {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (username, password_hash, full_name, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, username, hash, fullName, role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", username, err)
		}
		fmt.Printf("seeded user: username=%s role=%s password=password\n", username, role)
		return id
	}

	seedUser("admin", "System Admin", "admin")
	modID := seedUser("mod", "Project Manager", "moderator")
	userID := seedUser("user", "Developer One", "user")

	var projectID string
	err = db.QueryRow(`
		INSERT INTO projects (name, description, manager_id, is_active)
		VALUES ($1, $2, $3, true)
		RETURNING id
	`, "Website Redesign", "Overhaul the main marketing site", modID).Scan(&projectID)
	if err != nil {
		log.Fatalf("failed to seed project: %v", err)
	}
	fmt.Printf("seeded project: id=%s name=Website Redesign\n", projectID)

	tasks := []struct {
		title, description string
		assignee           *string
	}{
		{"Draft new landing page", "Wireframes and copy for the hero section", &userID},
		{"Audit legacy pages", "List pages to keep, merge or drop", nil},
	}
	for _, t := range tasks {
		if _, err := db.Exec(`
			INSERT INTO tasks (project_id, title, description, status, assigned_to_id)
			VALUES ($1, $2, $3, 'open', $4)
		`, projectID, t.title, t.description, t.assignee); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.title, err)
		}
		fmt.Printf("seeded task: %s\n", t.title)
	}

	fmt.Println("seed data created successfully")
}
