package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/Ham47Mani/sp-ecommerce-api/internal/models"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/repositories"
	"github.com/Ham47Mani/sp-ecommerce-api/internal/services"

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

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Mobile:    "0555000111",
		Password:  "password123",
	}

	// Successful registration
	mockRepo.On("GetByEmail", user.Email).Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	// Password must be stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:        "user-123",
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Password:  string(hashedPassword),
		Role:      models.RoleUser,
	}

	// Successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, loggedIn, err := authService.LoginUser(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.LoginUser(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown email yields the same generic error
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.LoginUser("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Blocked account is rejected
	blocked := *user
	blocked.IsBlocked = true
	mockRepo.On("GetByEmail", user.Email).Return(&blocked, nil).Once()
	_, _, err = authService.LoginUser(user.Email, "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Regular user on the admin path is rejected
	user := &models.User{ID: "u-1", Email: "user@example.com", Password: string(hashedPassword), Role: models.RoleUser}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err := authService.LoginAdmin(user.Email, "password123")
	assert.ErrorIs(t, err, services.ErrNotAdmin)
	mockRepo.AssertExpectations(t)

	// Admin succeeds
	admin := &models.User{ID: "a-1", Email: "admin@example.com", Password: string(hashedPassword), Role: models.RoleAdmin}
	mockRepo.On("GetByEmail", admin.Email).Return(admin, nil).Once()
	token, _, err := authService.LoginAdmin(admin.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "test@example.com",
		"role":    models.RoleUser,
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, models.RoleUser, claims["role"])

	// Garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
}
