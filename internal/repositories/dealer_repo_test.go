package repositories

import (
	"context"
	"testing"
	"time"

	"carmart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DealerRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     DealerRepository
	dealerID uuid.UUID
	ctx      context.Context
}

func (suite *DealerRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewDealerRepo(mock)
	suite.dealerID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *DealerRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestDealerRepoTestSuite(t *testing.T) {
	suite.Run(t, new(DealerRepoTestSuite))
}

var dealerTestColumns = []string{
	"id", "name", "location", "description", "image_url", "phone", "email", "address",
	"rating", "review_count", "verified", "business_hours", "services", "user_id", "created_at",
}

func (suite *DealerRepoTestSuite) TestCreate_Success() {
	dealer := &models.Dealer{
		ID:            uuid.New(),
		Name:          "Sunrise Motors",
		Location:      "Austin, TX",
		Rating:        0,
		ReviewCount:   0,
		Verified:      true,
		BusinessHours: map[string]string{"mon": "9-6"},
		Services:      []string{"financing", "trade-in"},
	}

	suite.mock.ExpectExec(`INSERT INTO dealers`).
		WithArgs(dealer.ID, dealer.Name, dealer.Location, dealer.Description, dealer.ImageURL,
			dealer.Phone, dealer.Email, dealer.Address, dealer.Rating, dealer.ReviewCount,
			dealer.Verified, jsonbArg(dealer.BusinessHours), jsonbArg(dealer.Services), dealer.UserID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.ctx, dealer)
	assert.NoError(suite.T(), err)
}

func (suite *DealerRepoTestSuite) TestGetByID_Success() {
	suite.mock.ExpectQuery(`FROM dealers WHERE id = \$1`).
		WithArgs(suite.dealerID).
		WillReturnRows(pgxmock.NewRows(dealerTestColumns).
			AddRow(suite.dealerID, "Sunrise Motors", "Austin, TX", nil, nil, nil, nil, nil,
				4.5, 12, true, map[string]string{"mon": "9-6"}, []string{"financing"}, nil, time.Now()))

	result, err := suite.repo.GetByID(suite.ctx, suite.dealerID)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
	assert.Equal(suite.T(), "Sunrise Motors", result.Name)
	assert.Equal(suite.T(), 4.5, result.Rating)
	assert.Equal(suite.T(), 12, result.ReviewCount)
}

func (suite *DealerRepoTestSuite) TestGetByID_NotFoundReturnsNil() {
	suite.mock.ExpectQuery(`FROM dealers WHERE id = \$1`).
		WithArgs(suite.dealerID).
		WillReturnError(pgx.ErrNoRows)

	result, err := suite.repo.GetByID(suite.ctx, suite.dealerID)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), result)
}

func (suite *DealerRepoTestSuite) TestListByLocation_UsesWildcardMatch() {
	suite.mock.ExpectQuery(`FROM dealers WHERE location ILIKE \$1 ORDER BY created_at DESC`).
		WithArgs("%Austin%").
		WillReturnRows(pgxmock.NewRows(dealerTestColumns).
			AddRow(suite.dealerID, "Sunrise Motors", "Austin, TX", nil, nil, nil, nil, nil,
				4.5, 12, true, map[string]string{}, []string{}, nil, time.Now()))

	result, err := suite.repo.ListByLocation(suite.ctx, "Austin")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 1)
}

func (suite *DealerRepoTestSuite) TestRefreshRating_SingleStatement() {
	suite.mock.ExpectExec(`UPDATE dealers d SET rating = s.avg_rating, review_count = s.review_count FROM \( SELECT COALESCE\(AVG\(rating\), 0\) AS avg_rating, COUNT\(\*\) AS review_count FROM reviews WHERE dealer_id = \$1 \) s WHERE d.id = \$1`).
		WithArgs(suite.dealerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.RefreshRating(suite.ctx, suite.dealerID)
	assert.NoError(suite.T(), err)
}
