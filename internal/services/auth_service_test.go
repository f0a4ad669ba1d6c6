package services_test

import (
	"fmt"
	"testing"

	"freshtrade/internal/apperrors"
	"freshtrade/internal/models"
	"freshtrade/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func notFoundErr(email string) error {
	return fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
}

func TestAuthService_Signup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByEmail", "new@example.com").Return(nil, notFoundErr("new@example.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		user.ID = "user-1"
		// The stored password must be a bcrypt hash, never the clear text.
		assert.NotEqual(t, "password123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	}).Return(nil).Once()

	token, user, err := service.Signup("New User", "new@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	existing := &models.User{ID: "user-1", Name: "Existing", Email: "taken@example.com", Password: "stored-hash", Role: models.RoleUser}
	mockRepo.On("GetByEmail", "taken@example.com").Return(existing, nil).Once()

	token, user, err := service.Signup("Someone Else", "taken@example.com", "password123")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, token)
	assert.Nil(t, user)
	// The existing user entity is never altered: no write is issued and the
	// in-hand entity keeps its name and password hash.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	assert.Equal(t, "Existing", existing.Name)
	assert.Equal(t, "stored-hash", existing.Password)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{ID: "user-1", Name: "Test", Email: "test@example.com", Password: string(hash), Role: models.RoleAdmin}

	mockRepo.On("GetByEmail", "test@example.com").Return(stored, nil).Once()

	token, user, err := service.Login("test@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// The token carries the user identifier and role claims.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, notFoundErr("nobody@example.com")).Once()

	token, user, err := service.Login("nobody@example.com", "password123")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, token)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{ID: "user-1", Email: "test@example.com", Password: string(hash)}

	mockRepo.On("GetByEmail", "test@example.com").Return(stored, nil).Once()

	token, user, err := service.Login("test@example.com", "wrong-password")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_RejectsTampering(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	// A token signed with a different secret must be rejected.
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "user-1"})
	forged, err := other.SignedString([]byte("some-other-secret"))
	assert.NoError(t, err)

	claims, err := service.ValidateToken(forged)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Garbage is rejected too.
	claims, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_GetAllUsers_StripsCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, testJWTSecret)

	stored := []models.User{
		{ID: "user-1", Name: "A", Email: "a@example.com", Password: "hash-a", Role: models.RoleUser},
		{ID: "user-2", Name: "B", Email: "b@example.com", Password: "hash-b", Role: models.RoleAdmin},
	}
	mockRepo.On("GetAll").Return(stored, nil).Once()

	users, err := service.GetAllUsers()

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, models.PublicUser{ID: "user-1", Name: "A", Email: "a@example.com", Role: models.RoleUser}, users[0])
	mockRepo.AssertExpectations(t)
}
