package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskify-app/taskify-api/internal/auth"
	"github.com/taskify-app/taskify-api/internal/config"
	"github.com/taskify-app/taskify-api/internal/logger"
	"github.com/taskify-app/taskify-api/internal/models"
	"github.com/taskify-app/taskify-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	tokens := auth.NewTokenManager(config.JWT{
		Secret:            "test-secret",
		Issuer:            "TaskifyAPI",
		Audience:          "TaskifyClient",
		ExpirationMinutes: 60,
	})

	return NewAuthService(repository.NewUserRepository(db), tokens, logger.New(8)), db
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := setupAuthService(t)

	result, err := svc.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret1!",
	})
	require.NoError(t, err)
	require.NotZero(t, result.User.ID)
	require.Equal(t, "alice", result.User.Username)
	require.Equal(t, "User", result.User.Role)
	require.True(t, result.User.IsActive)
	require.NotEqual(t, "Secret1!", result.User.PasswordHash)
	require.NotEmpty(t, result.Token)
	require.True(t, svc.ValidateToken(result.Token))

	id, ok := svc.ExtractUserID(result.Token)
	require.True(t, ok)
	require.Equal(t, result.User.ID, id)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret1!"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "alice", Email: "other@example.com", Password: "Secret1!"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret1!"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Username: "bob", Email: "alice@example.com", Password: "Secret1!"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret1!"})
	require.NoError(t, err)

	byUsername, err := svc.Login("alice", "Secret1!")
	require.NoError(t, err)
	require.Equal(t, "alice", byUsername.User.Username)
	require.True(t, svc.ValidateToken(byUsername.Token))

	byEmail, err := svc.Login("alice@example.com", "Secret1!")
	require.NoError(t, err)
	require.Equal(t, byUsername.User.ID, byEmail.User.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret1!"})
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login("nobody", "Secret1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	svc, db := setupAuthService(t)

	result, err := svc.Register(RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Secret1!"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", result.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login("alice", "Secret1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc, _ := setupAuthService(t)

	require.False(t, svc.ValidateToken("not-a-token"))
	require.False(t, svc.ValidateToken(""))
}
