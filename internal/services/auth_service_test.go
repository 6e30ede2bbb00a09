package services

import (
	"context"
	"testing"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	cache    *MockCacheService
	service  AuthService
	ctx      context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.cache = new(MockCacheService)
	suite.service = NewAuthService(suite.userRepo, suite.cache, "test-secret", 900, 86400)
	suite.ctx = context.Background()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) TestSignup_IssuesValidTokens() {
	suite.userRepo.On("GetByUsername", suite.ctx, "jordan").Return(nil, nil)
	suite.userRepo.On("GetByEmail", suite.ctx, "jordan@example.com").Return(nil, nil)
	suite.userRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.User")).Return(nil)
	suite.cache.On("SetString", suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	pair, err := suite.service.Signup(suite.ctx, "jordan", "jordan@example.com", "supersecret", "")
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), pair.AccessToken)
	assert.NotEmpty(suite.T(), pair.RefreshToken)
	assert.Equal(suite.T(), "Bearer", pair.TokenType)
	assert.Equal(suite.T(), models.RoleUser, pair.User.Role)

	claims, err := suite.service.ValidateToken(pair.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), pair.User.ID.String(), claims.UserID)
	assert.Equal(suite.T(), models.RoleUser, claims.Role)
}

func (suite *AuthServiceTestSuite) TestSignup_DuplicateUsername() {
	suite.userRepo.On("GetByUsername", suite.ctx, "jordan").Return(&models.User{ID: uuid.New()}, nil)

	_, err := suite.service.Signup(suite.ctx, "jordan", "jordan@example.com", "supersecret", "")
	assert.ErrorIs(suite.T(), err, ErrUserExists)
	suite.userRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestSignup_RejectsShortPassword() {
	_, err := suite.service.Signup(suite.ctx, "jordan", "jordan@example.com", "short", "")
	assert.Error(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := hashPassword("correct-horse")
	assert.NoError(suite.T(), err)
	user := &models.User{ID: uuid.New(), Username: "jordan", PasswordHash: hash, Role: models.RoleUser}
	suite.userRepo.On("GetByUsername", suite.ctx, "jordan").Return(user, nil)

	_, err = suite.service.Login(suite.ctx, "jordan", "wrong-horse")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	hash, err := hashPassword("correct-horse")
	assert.NoError(suite.T(), err)
	user := &models.User{ID: uuid.New(), Username: "jordan", PasswordHash: hash, Role: models.RoleDealer}
	suite.userRepo.On("GetByUsername", suite.ctx, "jordan").Return(user, nil)
	suite.cache.On("SetString", suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	pair, err := suite.service.Login(suite.ctx, "jordan", "correct-horse")
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateToken(pair.AccessToken)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleDealer, claims.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	suite.userRepo.On("GetByUsername", suite.ctx, "ghost").Return(nil, nil)

	_, err := suite.service.Login(suite.ctx, "ghost", "whatever")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestRefresh_UnknownTokenRejected() {
	suite.cache.On("GetString", suite.ctx, mock.Anything).Return("", nil)

	_, err := suite.service.Refresh(suite.ctx, "not-a-real-token")
	assert.ErrorIs(suite.T(), err, ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestRefresh_RotatesToken() {
	userID := uuid.New()
	user := &models.User{ID: userID, Username: "jordan", Role: models.RoleUser}

	suite.cache.On("GetString", suite.ctx, refreshTokenKey(hashToken("old-token"))).Return(userID.String(), nil)
	suite.userRepo.On("GetByID", suite.ctx, userID).Return(user, nil)
	suite.cache.On("Delete", suite.ctx, refreshTokenKey(hashToken("old-token"))).Return(nil)
	suite.cache.On("SetString", suite.ctx, mock.Anything, userID.String(), mock.Anything).Return(nil)

	pair, err := suite.service.Refresh(suite.ctx, "old-token")
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), "old-token", pair.RefreshToken)
	suite.cache.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestValidateToken_RejectsGarbage() {
	_, err := suite.service.ValidateToken("garbage.token.value")
	assert.ErrorIs(suite.T(), err, ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestValidateToken_RejectsWrongSecret() {
	other := NewAuthService(suite.userRepo, suite.cache, "other-secret", 900, 86400)
	suite.userRepo.On("GetByUsername", suite.ctx, "jordan").Return(nil, nil)
	suite.userRepo.On("GetByEmail", suite.ctx, "jordan@example.com").Return(nil, nil)
	suite.userRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.User")).Return(nil)
	suite.cache.On("SetString", suite.ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	pair, err := other.Signup(suite.ctx, "jordan", "jordan@example.com", "supersecret", "")
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateToken(pair.AccessToken)
	assert.ErrorIs(suite.T(), err, ErrInvalidToken)
}
