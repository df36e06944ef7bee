package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/IliyanIlievPH/partner-management/mocks"
	"github.com/IliyanIlievPH/partner-management/models"
	"github.com/IliyanIlievPH/partner-management/pure_utils"
	"github.com/IliyanIlievPH/partner-management/usecases/executor_factory"
)

type PartnerUsecaseTestSuite struct {
	suite.Suite
	executorFactory           executor_factory.ExecutorFactoryStub
	partnerRepository         *mocks.PartnerRepository
	locationRepository        *mocks.LocationRepository
	customerProfileRepository *mocks.CustomerProfileRepository
	geocodingRepository       *mocks.GeocodingRepository

	partner         models.Partner
	location        models.Location
	repositoryError error
}

func (suite *PartnerUsecaseTestSuite) SetupTest() {
	suite.executorFactory = executor_factory.NewExecutorFactoryStub()
	suite.partnerRepository = new(mocks.PartnerRepository)
	suite.locationRepository = new(mocks.LocationRepository)
	suite.customerProfileRepository = new(mocks.CustomerProfileRepository)
	suite.geocodingRepository = new(mocks.GeocodingRepository)

	suite.partner = models.Partner{
		Id:               "7d5ff4cb-71d5-4d15-b1db-8fbd3de58bc0",
		Name:             "Hotel California",
		BusinessVertical: models.BusinessVerticalHospitality,
		ClientId:         pure_utils.Ptr("client-42"),
		AmountInTokens:   "100",
		CreatedBy:        "3e3cd0f4-7f05-4482-9e29-a421b3f57bca",
		CreatedAt:        time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	suite.location = models.Location{
		Id:         "ef3b1b52-0bd7-4c49-a27c-4a3d42474333",
		PartnerId:  suite.partner.Id,
		ExternalId: "shop-001",
		Name:       "Main street shop",
		CreatedBy:  suite.partner.CreatedBy,
		CreatedAt:  suite.partner.CreatedAt,
	}
	suite.repositoryError = errors.New("some repository error")
}

func (suite *PartnerUsecaseTestSuite) makeUsecase() *PartnerUsecase {
	return &PartnerUsecase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.executorFactory,
		partnerRepository:  suite.partnerRepository,
		locationRepository: suite.locationRepository,
		locationUsecase: &LocationUsecase{
			executorFactory:           suite.executorFactory,
			locationRepository:        suite.locationRepository,
			customerProfileRepository: suite.customerProfileRepository,
			geocodingRepository:       suite.geocodingRepository,
		},
	}
}

func (suite *PartnerUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.partnerRepository.AssertExpectations(t)
	suite.locationRepository.AssertExpectations(t)
	suite.customerProfileRepository.AssertExpectations(t)
	suite.geocodingRepository.AssertExpectations(t)
}

func (suite *PartnerUsecaseTestSuite) ctx() context.Context {
	return context.Background()
}

func (suite *PartnerUsecaseTestSuite) Test_GetPartnerById_nominal() {
	t := suite.T()

	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, suite.partner.Id).
		Return(suite.partner, nil)
	suite.locationRepository.On("ListLocationsOfPartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return([]models.Location{suite.location}, nil)

	partner, err := suite.makeUsecase().GetPartnerById(suite.ctx(), suite.partner.Id)

	assert.NoError(t, err)
	assert.Equal(t, suite.partner.Id, partner.Id)
	assert.Len(t, partner.Locations, 1)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_GetPartnerById_not_found() {
	t := suite.T()

	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, "unknown").
		Return(models.Partner{}, models.ErrPartnerNotFound)

	_, err := suite.makeUsecase().GetPartnerById(suite.ctx(), "unknown")

	assert.ErrorIs(t, err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_GetPartnerByLocationId_nominal() {
	t := suite.T()

	suite.locationRepository.On("GetLocationById", mock.Anything, mock.Anything, suite.location.Id).
		Return(suite.location, nil)
	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, suite.partner.Id).
		Return(suite.partner, nil)
	suite.locationRepository.On("ListLocationsOfPartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return([]models.Location{suite.location}, nil)

	partner, err := suite.makeUsecase().GetPartnerByLocationId(suite.ctx(), suite.location.Id)

	assert.NoError(t, err)
	assert.Equal(t, suite.partner.Id, partner.Id)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_CreatePartner_nominal() {
	t := suite.T()

	newPartner := suite.partner
	newPartner.Id = ""
	newPartner.Locations = []models.Location{{
		ExternalId:    "shop-001",
		Name:          "Main street shop",
		ContactPerson: models.ContactPerson{Email: "jane.smith@example.com"},
	}}

	suite.partnerRepository.On("GetPartnerByClientId", mock.Anything, mock.Anything, "client-42").
		Return(models.Partner{}, models.ErrPartnerNotFound)
	suite.locationRepository.On("AreExternalIdsNotUnique", mock.Anything, mock.Anything,
		mock.Anything, []string{"shop-001"}).Return(false, nil)
	suite.customerProfileRepository.On("CreateContactIfNotExists", mock.Anything, mock.Anything).
		Return(models.PartnerContactErrorCodeNone, nil)
	suite.partnerRepository.On("CreatePartner", mock.Anything, mock.Anything,
		mock.MatchedBy(func(p models.Partner) bool { return p.Id != "" })).Return(nil)
	suite.locationRepository.On("CreateLocation", mock.Anything, mock.Anything,
		mock.MatchedBy(func(l models.Location) bool { return l.Id != "" })).Return(nil)

	created, err := suite.makeUsecase().CreatePartner(suite.ctx(), newPartner)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Len(t, created.Locations, 1)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_CreatePartner_client_id_taken() {
	t := suite.T()

	holder := suite.partner
	holder.Id = "another partner id"

	suite.partnerRepository.On("GetPartnerByClientId", mock.Anything, mock.Anything, "client-42").
		Return(holder, nil)

	_, err := suite.makeUsecase().CreatePartner(suite.ctx(), suite.partner)

	assert.ErrorIs(t, err, models.ErrPartnerClientIdAlreadyExists)
	suite.partnerRepository.AssertNotCalled(t, "CreatePartner",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_CreatePartner_nothing_persisted_on_sync_failure() {
	t := suite.T()

	newPartner := suite.partner
	newPartner.Locations = []models.Location{{ExternalId: "shop-001"}}

	suite.partnerRepository.On("GetPartnerByClientId", mock.Anything, mock.Anything, "client-42").
		Return(models.Partner{}, models.ErrPartnerNotFound)
	suite.locationRepository.On("AreExternalIdsNotUnique", mock.Anything, mock.Anything,
		mock.Anything, []string{"shop-001"}).Return(false, nil)
	suite.customerProfileRepository.On("CreateContactIfNotExists", mock.Anything, mock.Anything).
		Return(models.PartnerContactErrorCodeInvalidPhoneNumber, nil)

	_, err := suite.makeUsecase().CreatePartner(suite.ctx(), newPartner)

	assert.ErrorIs(t, err, models.ErrContactRegistrationFailed)
	suite.partnerRepository.AssertNotCalled(t, "CreatePartner",
		mock.Anything, mock.Anything, mock.Anything)
	suite.locationRepository.AssertNotCalled(t, "CreateLocation",
		mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_UpdatePartner_nominal() {
	t := suite.T()

	update := suite.partner
	update.Name = "Renamed partner"
	update.CreatedBy = ""
	removed := suite.location
	removed.Id = "5f7c3e43-92df-4761-bd76-cf8a4c06ff61"
	removed.ExternalId = "shop-002"
	update.Locations = []models.Location{suite.location}

	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, suite.partner.Id).
		Return(suite.partner, nil)
	suite.partnerRepository.On("GetPartnerByClientId", mock.Anything, mock.Anything, "client-42").
		Return(suite.partner, nil)
	suite.locationRepository.On("ListLocationsOfPartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return([]models.Location{suite.location, removed}, nil)
	suite.locationRepository.On("AreExternalIdsNotUnique", mock.Anything, mock.Anything,
		suite.partner.Id, []string{"shop-001"}).Return(false, nil)
	suite.customerProfileRepository.On("UpdateContact", mock.Anything, mock.Anything).
		Return(models.PartnerContactErrorCodeNone, nil)
	suite.customerProfileRepository.On("DeleteContact", mock.Anything, removed.Id).
		Return(models.PartnerContactErrorCodeNone, nil)
	suite.partnerRepository.On("UpdatePartner", mock.Anything, mock.Anything,
		mock.MatchedBy(func(p models.Partner) bool {
			return p.Name == "Renamed partner" && p.CreatedBy == suite.partner.CreatedBy
		})).Return(nil)
	suite.locationRepository.On("UpdateLocation", mock.Anything, mock.Anything,
		mock.MatchedBy(func(l models.Location) bool { return l.Id == suite.location.Id })).
		Return(nil)
	suite.locationRepository.On("DeleteLocation", mock.Anything, mock.Anything, removed.Id).
		Return(nil)

	updated, err := suite.makeUsecase().UpdatePartner(suite.ctx(), update)

	assert.NoError(t, err)
	assert.Equal(t, suite.partner.CreatedBy, updated.CreatedBy)
	assert.Equal(t, suite.partner.CreatedAt, updated.CreatedAt)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_UpdatePartner_not_found() {
	t := suite.T()

	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, suite.partner.Id).
		Return(models.Partner{}, models.ErrPartnerNotFound)

	_, err := suite.makeUsecase().UpdatePartner(suite.ctx(), suite.partner)

	assert.ErrorIs(t, err, models.ErrPartnerNotFound)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_DeletePartner_nominal() {
	t := suite.T()

	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, suite.partner.Id).
		Return(suite.partner, nil)
	suite.locationRepository.On("ListLocationsOfPartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return([]models.Location{suite.location}, nil)
	suite.partnerRepository.On("DeletePartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return(nil)
	suite.customerProfileRepository.On("DeleteContact", mock.Anything, suite.location.Id).
		Return(models.PartnerContactErrorCodeNone, nil)

	err := suite.makeUsecase().DeletePartner(suite.ctx(), suite.partner.Id)

	assert.NoError(t, err)
	suite.AssertExpectations()
}

func (suite *PartnerUsecaseTestSuite) Test_DeletePartner_contact_cleanup_failure_is_not_fatal() {
	t := suite.T()

	suite.partnerRepository.On("GetPartnerById", mock.Anything, mock.Anything, suite.partner.Id).
		Return(suite.partner, nil)
	suite.locationRepository.On("ListLocationsOfPartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return([]models.Location{suite.location}, nil)
	suite.partnerRepository.On("DeletePartner", mock.Anything, mock.Anything, suite.partner.Id).
		Return(nil)
	suite.customerProfileRepository.On("DeleteContact", mock.Anything, suite.location.Id).
		Return(models.PartnerContactErrorCodeNone, suite.repositoryError)

	err := suite.makeUsecase().DeletePartner(suite.ctx(), suite.partner.Id)

	assert.NoError(t, err)
	suite.AssertExpectations()
}

func TestPartnerUsecase(t *testing.T) {
	suite.Run(t, new(PartnerUsecaseTestSuite))
}
