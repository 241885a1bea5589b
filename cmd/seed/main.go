package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/charley4805/project-pretzel/internal/model"
	"github.com/charley4805/project-pretzel/pkg/assistant/access"
	"github.com/charley4805/project-pretzel/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("🌱 Seeding project data")

	roles := seedRoles(db)
	users := seedUsers(db)
	project := seedProject(db, users["pm@example.com"])
	seedMembers(db, project, roles, users)
	seedDocuments(db, project, users["pm@example.com"])

	color.Green("✅ Seeding complete")
}

func seedRoles(db *gorm.DB) map[string]model.Role {
	color.Yellow("\n[1/4] Roles")

	defs := []model.Role{
		{Key: string(access.RoleProjectManager), Name: "Project Manager"},
		{Key: string(access.RoleArchitect), Name: "Architect"},
		{Key: string(access.RoleEngineer), Name: "Engineer"},
		{Key: string(access.RoleForeman), Name: "Foreman"},
		{Key: string(access.RoleEstimator), Name: "Estimator"},
		{Key: string(access.RoleSurveyor), Name: "Surveyor"},
		{Key: string(access.RoleTradePartner), Name: "Trade Partner"},
		{Key: string(access.RoleHomeowner), Name: "Homeowner"},
	}

	out := make(map[string]model.Role, len(defs))
	for _, def := range defs {
		var role model.Role
		if err := db.Where("key = ?", def.Key).FirstOrCreate(&role, def).Error; err != nil {
			color.Red("Failed to seed role %s: %v", def.Key, err)
			os.Exit(1)
		}
		out[def.Key] = role
	}
	color.Green("Seeded %d roles", len(defs))
	return out
}

func seedUsers(db *gorm.DB) map[string]model.User {
	color.Yellow("\n[2/4] Users")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash password: %v", err)
		os.Exit(1)
	}

	defs := []model.User{
		{Email: "pm@example.com", Name: "Paula Mercer", PasswordHash: string(hash)},
		{Email: "estimator@example.com", Name: "Evan Stone", PasswordHash: string(hash)},
		{Email: "foreman@example.com", Name: "Frank Ortiz", PasswordHash: string(hash)},
		{Email: "homeowner@example.com", Name: "Hana Oduya", PasswordHash: string(hash)},
	}

	out := make(map[string]model.User, len(defs))
	for _, def := range defs {
		var user model.User
		if err := db.Where("email = ?", def.Email).FirstOrCreate(&user, def).Error; err != nil {
			color.Red("Failed to seed user %s: %v", def.Email, err)
			os.Exit(1)
		}
		out[def.Email] = user
	}
	color.Green("Seeded %d users (password: password123)", len(defs))
	return out
}

func seedProject(db *gorm.DB, owner model.User) model.Project {
	color.Yellow("\n[3/4] Project")

	def := model.Project{
		Name:        "Maple Street Renovation",
		Description: "Two-story addition with roof replacement and kitchen remodel.",
		Status:      "active",
		CreatedBy:   owner.Id,
	}

	var project model.Project
	if err := db.Where("name = ?", def.Name).FirstOrCreate(&project, def).Error; err != nil {
		color.Red("Failed to seed project: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded project %s (%s)", project.Name, project.Id)
	return project
}

func seedMembers(db *gorm.DB, project model.Project, roles map[string]model.Role, users map[string]model.User) {
	assignments := map[string]string{
		"pm@example.com":        string(access.RoleProjectManager),
		"estimator@example.com": string(access.RoleEstimator),
		"foreman@example.com":   string(access.RoleForeman),
		"homeowner@example.com": string(access.RoleHomeowner),
	}

	for email, roleKey := range assignments {
		def := model.ProjectMember{
			ProjectId: project.Id,
			UserId:    users[email].Id,
			RoleId:    roles[roleKey].Id,
		}
		var member model.ProjectMember
		if err := db.Where("project_id = ? AND user_id = ?", def.ProjectId, def.UserId).
			FirstOrCreate(&member, def).Error; err != nil {
			color.Red("Failed to seed member %s: %v", email, err)
			os.Exit(1)
		}
	}
	color.Green("Seeded %d memberships", len(assignments))
}

func seedDocuments(db *gorm.DB, project model.Project, uploader model.User) {
	color.Yellow("\n[4/4] Documents")

	defs := []model.ProjectDocument{
		{
			Title:   "Roof inspection report",
			Content: "The roof deck shows water damage near the chimney flashing. Skylight curb needs new sealant before shingle installation.",
		},
		{
			Title:   "Kitchen remodel scope",
			Content: "Demolition of existing cabinets, new plumbing rough-in for the island sink, and electrical for under-cabinet lighting.",
		},
		{
			Title:   "Framing lumber takeoff",
			Content: "Second floor walls require 240 studs of 2x6x8 and headers from 2x10x16 stock. Sheathing estimated at 84 sheets of 4x8 OSB.",
		},
	}

	for _, def := range defs {
		def.ProjectId = project.Id
		def.UploadedBy = uploader.Id
		var doc model.ProjectDocument
		if err := db.Where("project_id = ? AND title = ?", def.ProjectId, def.Title).
			FirstOrCreate(&doc, def).Error; err != nil {
			color.Red("Failed to seed document %q: %v", def.Title, err)
			os.Exit(1)
		}
	}
	color.Green("Seeded %d documents", len(defs))
}
