package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		user_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS plans (
		plan_id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		start_time TIMESTAMPTZ NOT NULL,
		camera JSONB NOT NULL,
		tileset_url VARCHAR(512) NOT NULL,
		user_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	err := repo.Save(ctx, userID, "alice", "alice@example.com", "hash1")
	assert.NoError(t, err)

	var user struct {
		UserName     string `db:"user_name"`
		Email        string `db:"email"`
		PasswordHash string `db:"password_hash"`
	}
	err = db.Get(&user, "SELECT user_name, email, password_hash FROM users WHERE user_id=$1", userID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash1", user.PasswordHash)
}

func TestUserWriteRepository_SaveUpsertsByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	userID := uuid.New()
	assert.NoError(t, repo.Save(ctx, userID, "alice", "alice@example.com", "hash1"))
	assert.NoError(t, repo.Save(ctx, userID, "alice2", "alice2@example.com", "hash2"))

	var count int
	assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 1, count)

	var email string
	assert.NoError(t, db.Get(&email, "SELECT email FROM users WHERE user_id=$1", userID))
	assert.Equal(t, "alice2@example.com", email)
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	charlieID := uuid.New()
	daveID := uuid.New()
	writeRepo.Save(ctx, charlieID, "charlie", "charlie@example.com", "hash1")
	writeRepo.Save(ctx, daveID, "dave", "dave@example.com", "hash2")

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, charlieID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.UserName)
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "dave@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, daveID, user.UserID)
	})

	t.Run("MissingIDIsNil", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("MissingEmailIsNil", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
