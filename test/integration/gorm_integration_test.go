package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charley4805/project-pretzel/internal/entity"
	"github.com/charley4805/project-pretzel/internal/repository/specification"
	"github.com/charley4805/project-pretzel/internal/repository/unitofwork"
	"github.com/charley4805/project-pretzel/pkg/database"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.MessageRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Message Repository", func(t *testing.T) {
		count, err := uow.MessageRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("Message count: %d", count)
	})

	t.Run("Transactional Project Setup", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		user := &entity.User{
			Id:           uuid.New(),
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			Name:         "Integration Test User",
			PasswordHash: "not-a-real-hash",
		}
		require.NoError(t, txUow.UserRepository().Create(ctx, user))

		role, err := txUow.RoleRepository().FindOne(ctx, specification.ByRoleKey{Key: "PROJECT_MANAGER"})
		require.NoError(t, err)
		if role == nil {
			role = &entity.Role{Id: uuid.New(), Key: "PROJECT_MANAGER", Name: "Project Manager"}
			require.NoError(t, txUow.RoleRepository().Create(ctx, role))
		}

		project := &entity.Project{
			Id:        uuid.New(),
			Name:      "Integration Test Project",
			Status:    "active",
			CreatedBy: user.Id,
		}
		require.NoError(t, txUow.ProjectRepository().Create(ctx, project))

		member := &entity.ProjectMember{
			Id:        uuid.New(),
			ProjectId: project.Id,
			UserId:    user.Id,
			RoleId:    role.Id,
		}
		require.NoError(t, txUow.ProjectMemberRepository().Create(ctx, member))

		found, err := txUow.ProjectMemberRepository().FindByProjectAndUser(ctx, project.Id, user.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "PROJECT_MANAGER", found.RoleKey)

		msg := &entity.Message{
			Id:          uuid.New(),
			ProjectId:   project.Id,
			UserId:      user.Id,
			MessageType: entity.MessageTypeUser,
			Content:     "how many board feet in 16 boards of 2x10x16?",
			Intent:      "board_foot_calc",
		}
		require.NoError(t, txUow.MessageRepository().Create(ctx, msg))

		messages, err := txUow.MessageRepository().FindAll(ctx, specification.ByProjectId{ProjectId: project.Id})
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})
}
