package repositories

import (
	"context"
	"testing"
	"time"

	"carmart/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReviewRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     ReviewRepository
	dealerID uuid.UUID
	ctx      context.Context
}

func (suite *ReviewRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewReviewRepo(mock)
	suite.dealerID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *ReviewRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestReviewRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepoTestSuite))
}

var reviewTestColumns = []string{
	"id", "user_id", "dealer_id", "vehicle_id", "rating", "comment", "created_at",
}

func (suite *ReviewRepoTestSuite) TestCreate_Success() {
	userID := uuid.New()
	comment := "Great dealership"
	review := &models.Review{
		ID:       uuid.New(),
		UserID:   &userID,
		DealerID: &suite.dealerID,
		Rating:   5,
		Comment:  &comment,
	}

	suite.mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(review.ID, review.UserID, review.DealerID, review.VehicleID, review.Rating, review.Comment).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, review)
	assert.NoError(suite.T(), err)
}

func (suite *ReviewRepoTestSuite) TestCreate_WithoutUser() {
	review := &models.Review{
		ID:       uuid.New(),
		DealerID: &suite.dealerID,
		Rating:   4,
	}

	suite.mock.ExpectExec(`INSERT INTO reviews`).
		WithArgs(review.ID, (*uuid.UUID)(nil), review.DealerID, (*uuid.UUID)(nil), review.Rating, (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, review)
	assert.NoError(suite.T(), err)
}

func (suite *ReviewRepoTestSuite) TestListByDealer_NewestFirst() {
	comment := "Great dealership"
	suite.mock.ExpectQuery(`FROM reviews WHERE dealer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(suite.dealerID).
		WillReturnRows(pgxmock.NewRows(reviewTestColumns).
			AddRow(uuid.New(), nil, &suite.dealerID, nil, 5, &comment, time.Now()).
			AddRow(uuid.New(), nil, &suite.dealerID, nil, 3, nil, time.Now().Add(-time.Hour)))

	result, err := suite.repo.ListByDealer(suite.ctx, suite.dealerID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Nil(suite.T(), result[0].UserID)
	assert.Equal(suite.T(), 5, result[0].Rating)
}

func (suite *ReviewRepoTestSuite) TestListByVehicle_ScopedToVehicle() {
	vehicleID := uuid.New()
	suite.mock.ExpectQuery(`FROM reviews WHERE vehicle_id = \$1 ORDER BY created_at DESC`).
		WithArgs(vehicleID).
		WillReturnRows(pgxmock.NewRows(reviewTestColumns).
			AddRow(uuid.New(), nil, nil, &vehicleID, 4, nil, time.Now()))

	result, err := suite.repo.ListByVehicle(suite.ctx, vehicleID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
	assert.Equal(suite.T(), vehicleID, *result[0].VehicleID)
}
