//go:build integration
// +build integration

package repository

import (
	"testing"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	users         *UserRepository
	memberships   *MembershipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.memberships = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) createOrg(owner *models.User) *models.Organization {
	org := suite.factories.Organization.Create()
	membership := suite.factories.Membership.Create(uuid.Nil, owner.ID, models.RoleOwner)
	sub := suite.factories.Subscription.Create(uuid.Nil, models.PlanFree, "0")
	suite.Require().NoError(suite.repo.CreateWithOwner(org, membership, sub))
	return org
}

func (suite *OrganizationRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.users.Create(user))
	return user
}

// TestCreateWithOwner tests that the organization, owner and subscription are stored together
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwner() {
	owner := suite.createUser()

	org := suite.createOrg(owner)

	found, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal(org.Slug, found.Slug)
	suite.Require().NotNil(found.Subscription)
	suite.Equal(models.PlanFree, found.Subscription.Plan)

	membership, err := suite.memberships.Get(org.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.RoleOwner, membership.Role)
}

// TestCreateWithOwnerRollsBack tests that a failed owner insert leaves no organization behind
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwnerRollsBack() {
	org := suite.factories.Organization.Create()
	// user does not exist, so the membership foreign key fails
	membership := suite.factories.Membership.Create(uuid.Nil, uuid.New(), models.RoleOwner)
	sub := suite.factories.Subscription.Create(uuid.Nil, models.PlanFree, "0")

	err := suite.repo.CreateWithOwner(org, membership, sub)
	suite.Error(err)

	_, err = suite.repo.GetBySlug(org.Slug)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDuplicateSlug tests the unique slug constraint
func (suite *OrganizationRepositoryTestSuite) TestDuplicateSlug() {
	owner := suite.createUser()
	first := suite.createOrg(owner)

	dup := suite.factories.Organization.WithSlug(first.Slug)
	err := suite.repo.CreateWithOwner(dup,
		suite.factories.Membership.Create(uuid.Nil, owner.ID, models.RoleOwner),
		suite.factories.Subscription.Create(uuid.Nil, models.PlanFree, "0"))

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByUserID tests listing only the organizations a user belongs to
func (suite *OrganizationRepositoryTestSuite) TestGetByUserID() {
	alice := suite.createUser()
	bob := suite.createUser()
	suite.createOrg(alice)
	suite.createOrg(alice)
	suite.createOrg(bob)

	orgs, total, err := suite.repo.GetByUserID(alice.ID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(orgs, 2)

	all, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 3)
}

// TestUpdatePlan tests that the organization plan and subscription change together
func (suite *OrganizationRepositoryTestSuite) TestUpdatePlan() {
	org := suite.createOrg(suite.createUser())
	found, err := suite.repo.GetByID(org.ID)
	suite.Require().NoError(err)

	found.Plan = models.PlanPro
	found.Subscription.Plan = models.PlanPro
	suite.NoError(suite.repo.UpdatePlan(found, found.Subscription))

	updated, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal(models.PlanPro, updated.Plan)
	suite.Equal(models.PlanPro, updated.Subscription.Plan)
}

// TestDeleteCascades tests that deleting an organization removes its memberships
func (suite *OrganizationRepositoryTestSuite) TestDeleteCascades() {
	owner := suite.createUser()
	org := suite.createOrg(owner)

	suite.NoError(suite.repo.Delete(org.ID))

	_, err := suite.repo.GetByID(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.memberships.Get(org.ID, owner.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
