//go:build integration
// +build integration

package repository

import (
	"sync"
	"testing"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	users         *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.users = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MembershipRepositoryTestSuite) addMember(org *models.Organization, role models.Role, email string) *models.User {
	user := suite.factories.User.WithEmail(email)
	suite.Require().NoError(suite.users.Create(user))
	suite.Require().NoError(suite.repo.Create(suite.factories.Membership.Create(org.ID, user.ID, role)))
	return user
}

// TestCreateDuplicate tests that a user can only join an organization once
func (suite *MembershipRepositoryTestSuite) TestCreateDuplicate() {
	org, owner := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)

	err := suite.repo.Create(suite.factories.Membership.Create(org.ID, owner.ID, models.RoleMember))

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByOrganizationID tests listing with the email/name filter
func (suite *MembershipRepositoryTestSuite) TestGetByOrganizationID() {
	org, _ := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
	suite.addMember(org, models.RoleAdmin, "zoe@acme.test")
	suite.addMember(org, models.RoleMember, "adam@acme.test")

	members, total, err := suite.repo.GetByOrganizationID(org.ID, "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(members, 3)
	suite.Equal("adam@acme.test", members[0].User.Email)

	filtered, total, err := suite.repo.GetByOrganizationID(org.ID, "ZOE", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(models.RoleAdmin, filtered[0].Role)
}

// TestChangeRoleLastOwner tests that the only owner cannot be demoted
func (suite *MembershipRepositoryTestSuite) TestChangeRoleLastOwner() {
	org, owner := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)

	_, err := suite.repo.ChangeRole(org.ID, owner.ID, models.RoleAdmin)

	suite.ErrorIs(err, apperrors.ErrLastOwner)
	m, err := suite.repo.Get(org.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.RoleOwner, m.Role)
}

// TestChangeRoleWithSecondOwner tests demotion once another owner exists
func (suite *MembershipRepositoryTestSuite) TestChangeRoleWithSecondOwner() {
	org, owner := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
	suite.addMember(org, models.RoleOwner, "second-owner@acme.test")

	m, err := suite.repo.ChangeRole(org.ID, owner.ID, models.RoleMember)

	suite.NoError(err)
	suite.Equal(models.RoleMember, m.Role)
	count, err := suite.repo.CountOwners(org.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestRemove tests removing members and the last-owner guard
func (suite *MembershipRepositoryTestSuite) TestRemove() {
	org, owner := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
	member := suite.addMember(org, models.RoleMember, "leaver@acme.test")

	removed, err := suite.repo.Remove(org.ID, member.ID)
	suite.NoError(err)
	suite.Equal(member.ID, removed.UserID)

	_, err = suite.repo.Get(org.ID, member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.Remove(org.ID, owner.ID)
	suite.ErrorIs(err, apperrors.ErrLastOwner)
}

// TestConcurrentOwnerDemotion tests that two owners demoting each other leave one owner behind
func (suite *MembershipRepositoryTestSuite) TestConcurrentOwnerDemotion() {
	org, first := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
	second := suite.addMember(org, models.RoleOwner, "co-owner@acme.test")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, user := range []*models.User{first, second} {
		wg.Add(1)
		go func(i int, user *models.User) {
			defer wg.Done()
			_, errs[i] = suite.repo.ChangeRole(org.ID, user.ID, models.RoleMember)
		}(i, user)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			suite.ErrorIs(err, apperrors.ErrLastOwner)
			failed++
		}
	}
	suite.Equal(1, failed)

	count, err := suite.repo.CountOwners(org.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
