package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/mailer"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/service"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockInvitations *mocks.MockInvitationRepositoryInterface
	mockOrgs        *mocks.MockOrganizationRepositoryInterface
	mockUsers       *mocks.MockUserRepositoryInterface
	mockMembers     *mocks.MockMembershipRepositoryInterface
	mockMailer      *mocks.MockMailer
	mockAudit       *mocks.MockAuditRecorder
	mockEvents      *mocks.MockEventPublisher
	service         *service.InvitationService
	org             *models.Organization
	owner           service.Actor
}

// SetupTest sets up the test suite
func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvitations = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockOrgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditRecorder(suite.ctrl)
	suite.mockEvents = mocks.NewMockEventPublisher(suite.ctrl)

	suite.service = service.NewInvitationService(
		suite.mockInvitations, suite.mockOrgs, suite.mockUsers, suite.mockMembers,
		suite.mockMailer, suite.mockAudit, suite.mockEvents, validator.New(),
		service.InvitationConfig{PublicBaseURL: "https://admin.example.com/"},
	)
	suite.service.SetClock(func() time.Time { return fixedNow })

	suite.org = &models.Organization{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Acme", Slug: "acme"}
	suite.owner = service.Actor{UserID: uuid.New(), Email: "owner@acme.io"}
}

// TearDownTest cleans up after each test
func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) expectOwner() {
	suite.mockMembers.EXPECT().Get(suite.org.ID, suite.owner.UserID).
		Return(&models.Membership{OrganizationID: suite.org.ID, UserID: suite.owner.UserID, Role: models.RoleOwner}, nil)
}

// TestCreateInvitation tests the happy path: token hashing, expiry and the mailed link
func (suite *InvitationServiceTestSuite) TestCreateInvitation() {
	var stored *models.Invitation
	var sent mailer.Message

	suite.expectOwner()
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockUsers.EXPECT().GetByEmail("new@acme.io").Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitations.EXPECT().GetPendingByEmail(suite.org.ID, "new@acme.io", fixedNow).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitations.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.Invitation) error {
		inv.ID = uuid.New()
		stored = inv
		return nil
	})
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		sent = msg
		return nil
	})
	suite.mockAudit.EXPECT().Record(suite.owner, gomock.Any(), "invitation.create", "invitation", gomock.Any(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(suite.org.ID, webhook.EventMemberInvited, gomock.Any())

	resp, err := suite.service.Create(context.Background(), suite.owner, suite.org.ID, &service.CreateInvitationRequest{Email: "New@Acme.io"})

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), models.RoleMember, stored.Role)
	assert.Equal(suite.T(), models.InvitationStatusPending, stored.Status)
	assert.Equal(suite.T(), fixedNow.Add(service.DefaultInvitationTTL), stored.ExpiresAt)
	assert.Equal(suite.T(), service.HashToken(resp.Token), stored.TokenHash)
	assert.NotEqual(suite.T(), resp.Token, stored.TokenHash)
	require.NotNil(suite.T(), stored.InvitedBy)
	assert.Equal(suite.T(), suite.owner.UserID, *stored.InvitedBy)

	assert.True(suite.T(), strings.HasPrefix(resp.AcceptURL, "https://admin.example.com/invitations/accept?token="))
	parsed, err := url.Parse(resp.AcceptURL)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), resp.Token, parsed.Query().Get("token"))

	assert.Equal(suite.T(), "new@acme.io", sent.To)
	assert.Contains(suite.T(), sent.Body, resp.AcceptURL)
	assert.Equal(suite.T(), "pending", resp.Invitation.Status)
}

// TestCreateInvitationMailFailureTolerated tests that a mail error does not fail the invite
func (suite *InvitationServiceTestSuite) TestCreateInvitationMailFailureTolerated() {
	suite.expectOwner()
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockUsers.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitations.EXPECT().GetPendingByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitations.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp: connection refused"))
	suite.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.service.Create(context.Background(), suite.owner, suite.org.ID, &service.CreateInvitationRequest{Email: "x@acme.io", Role: "admin"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin", resp.Invitation.Role)
	assert.NotEmpty(suite.T(), resp.Token)
}

// TestCreateInvitationExistingMember tests inviting someone already in the organization
func (suite *InvitationServiceTestSuite) TestCreateInvitationExistingMember() {
	existing := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "dev@acme.io"}

	suite.expectOwner()
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockUsers.EXPECT().GetByEmail("dev@acme.io").Return(existing, nil)
	suite.mockMembers.EXPECT().Get(suite.org.ID, existing.ID).Return(&models.Membership{Role: models.RoleMember}, nil)

	_, err := suite.service.Create(context.Background(), suite.owner, suite.org.ID, &service.CreateInvitationRequest{Email: "dev@acme.io"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestCreateInvitationPendingExists tests the duplicate pending invitation guard
func (suite *InvitationServiceTestSuite) TestCreateInvitationPendingExists() {
	suite.expectOwner()
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockUsers.EXPECT().GetByEmail("dev@acme.io").Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitations.EXPECT().GetPendingByEmail(suite.org.ID, "dev@acme.io", fixedNow).Return(&models.Invitation{}, nil)

	_, err := suite.service.Create(context.Background(), suite.owner, suite.org.ID, &service.CreateInvitationRequest{Email: "dev@acme.io"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExists)
}

// TestCreateInvitationAdminCannotInviteOwner tests the owner-only ownership grant
func (suite *InvitationServiceTestSuite) TestCreateInvitationAdminCannotInviteOwner() {
	admin := service.Actor{UserID: uuid.New()}
	suite.mockMembers.EXPECT().Get(suite.org.ID, admin.UserID).Return(&models.Membership{Role: models.RoleAdmin}, nil)

	_, err := suite.service.Create(context.Background(), admin, suite.org.ID, &service.CreateInvitationRequest{Email: "boss@acme.io", Role: "owner"})
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestCreateInvitationValidation tests request validation
func (suite *InvitationServiceTestSuite) TestCreateInvitationValidation() {
	_, err := suite.service.Create(context.Background(), suite.owner, suite.org.ID, &service.CreateInvitationRequest{Email: "not-an-email"})
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestListInvalidStatus tests the status filter
func (suite *InvitationServiceTestSuite) TestListInvalidStatus() {
	_, err := suite.service.List(suite.org.ID, "archived", 1, 20)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRevokeNotPending tests revoking an already accepted invitation
func (suite *InvitationServiceTestSuite) TestRevokeNotPending() {
	inv := &models.Invitation{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: suite.org.ID, Status: models.InvitationStatusAccepted}
	suite.mockInvitations.EXPECT().GetByID(inv.ID).Return(inv, nil)

	_, err := suite.service.Revoke(suite.owner, suite.org.ID, inv.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotPending)
}

// TestRevokeOtherOrganization tests that invitations are scoped to their organization
func (suite *InvitationServiceTestSuite) TestRevokeOtherOrganization() {
	inv := &models.Invitation{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New(), Status: models.InvitationStatusPending}
	suite.mockInvitations.EXPECT().GetByID(inv.ID).Return(inv, nil)

	_, err := suite.service.Revoke(suite.owner, suite.org.ID, inv.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestResendExpiredRotatesToken tests that resending restarts an expired invitation
func (suite *InvitationServiceTestSuite) TestResendExpiredRotatesToken() {
	inv := &models.Invitation{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.org.ID,
		Email:          "late@acme.io",
		Role:           models.RoleMember,
		Status:         models.InvitationStatusExpired,
		TokenHash:      "old",
		ExpiresAt:      fixedNow.Add(-time.Hour),
	}
	suite.mockInvitations.EXPECT().GetByID(inv.ID).Return(inv, nil)
	suite.mockOrgs.EXPECT().GetByID(suite.org.ID).Return(suite.org, nil)
	suite.mockInvitations.EXPECT().Update(inv).Return(nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockAudit.EXPECT().Record(suite.owner, gomock.Any(), "invitation.resend", "invitation", inv.ID.String(), gomock.Any())

	resp, err := suite.service.Resend(context.Background(), suite.owner, suite.org.ID, inv.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.InvitationStatusPending, inv.Status)
	assert.Equal(suite.T(), service.HashToken(resp.Token), inv.TokenHash)
	assert.Equal(suite.T(), fixedNow.Add(service.DefaultInvitationTTL), inv.ExpiresAt)
}

// TestAcceptExpiredMarksInvitation tests that a late accept flips the row to expired
func (suite *InvitationServiceTestSuite) TestAcceptExpiredMarksInvitation() {
	token := "expired-token"
	inv := &models.Invitation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Status:    models.InvitationStatusPending,
		ExpiresAt: fixedNow.Add(-time.Minute),
	}
	suite.mockInvitations.EXPECT().GetByTokenHash(service.HashToken(token)).Return(inv, nil)
	suite.mockInvitations.EXPECT().Update(gomock.Any()).DoAndReturn(func(i *models.Invitation) error {
		assert.Equal(suite.T(), models.InvitationStatusExpired, i.Status)
		return nil
	})

	_, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: token}, "", "")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExpired)
	assert.True(suite.T(), apperrors.IsGone(err))
}

// TestAcceptAlreadyUsed tests redeeming a token twice
func (suite *InvitationServiceTestSuite) TestAcceptAlreadyUsed() {
	suite.mockInvitations.EXPECT().GetByTokenHash(gomock.Any()).Return(&models.Invitation{Status: models.InvitationStatusAccepted}, nil)

	_, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "t"}, "", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationAlreadyUsed)
}

// TestAcceptUnknownToken tests a token that matches nothing
func (suite *InvitationServiceTestSuite) TestAcceptUnknownToken() {
	suite.mockInvitations.EXPECT().GetByTokenHash(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "nope"}, "", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestAcceptNewUserRequiresPassword tests that first-time users must pick a password
func (suite *InvitationServiceTestSuite) TestAcceptNewUserRequiresPassword() {
	inv := &models.Invitation{Email: "new@acme.io", Status: models.InvitationStatusPending, ExpiresAt: fixedNow.Add(time.Hour)}
	suite.mockInvitations.EXPECT().GetByTokenHash(gomock.Any()).Return(inv, nil).Times(2)
	suite.mockUsers.EXPECT().GetByEmail("new@acme.io").Return(nil, gorm.ErrRecordNotFound).Times(2)

	_, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "t"}, "", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrPasswordRequired)

	_, err = suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "t", Password: "short"}, "", "")
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestAcceptCreatesUser tests accepting as a brand-new user
func (suite *InvitationServiceTestSuite) TestAcceptCreatesUser() {
	inv := &models.Invitation{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: suite.org.ID,
		Email:          "jane.doe@acme.io",
		Role:           models.RoleAdmin,
		Status:         models.InvitationStatusPending,
		ExpiresAt:      fixedNow.Add(time.Hour),
	}
	suite.mockInvitations.EXPECT().GetByTokenHash(gomock.Any()).Return(inv, nil)
	suite.mockUsers.EXPECT().GetByEmail(inv.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.mockInvitations.EXPECT().Accept(inv, gomock.Any(), gomock.Any(), fixedNow).
		DoAndReturn(func(_ *models.Invitation, user *models.User, m *models.Membership, _ time.Time) error {
			assert.Equal(suite.T(), "jane.doe", user.FullName)
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
			assert.Equal(suite.T(), models.RoleAdmin, m.Role)
			user.ID = uuid.New()
			return nil
		})
	suite.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), "invitation.accept", "invitation", inv.ID.String(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(suite.org.ID, webhook.EventMemberJoined, gomock.Any())

	resp, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "t", Password: "correct horse"}, "10.0.0.1", "curl")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.NewUser)
	assert.Equal(suite.T(), "admin", resp.Role)
	assert.NotEqual(suite.T(), uuid.Nil, resp.UserID)
}

// TestAcceptExistingUser tests accepting as a user who already has an account
func (suite *InvitationServiceTestSuite) TestAcceptExistingUser() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "dev@acme.io"}
	inv := &models.Invitation{
		OrganizationID: suite.org.ID,
		Email:          user.Email,
		Role:           models.RoleMember,
		Status:         models.InvitationStatusPending,
		ExpiresAt:      fixedNow.Add(time.Hour),
	}
	suite.mockInvitations.EXPECT().GetByTokenHash(gomock.Any()).Return(inv, nil)
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)
	suite.mockInvitations.EXPECT().Accept(inv, user, gomock.Any(), fixedNow).Return(nil)
	suite.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	suite.mockEvents.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "t"}, "", "")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), resp.NewUser)
	assert.Equal(suite.T(), user.ID, resp.UserID)
}

// TestAcceptRaceReturnsConflict tests that a concurrent accept surfaces as a conflict
func (suite *InvitationServiceTestSuite) TestAcceptRaceReturnsConflict() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "dev@acme.io"}
	inv := &models.Invitation{Email: user.Email, Status: models.InvitationStatusPending, ExpiresAt: fixedNow.Add(time.Hour)}
	suite.mockInvitations.EXPECT().GetByTokenHash(gomock.Any()).Return(inv, nil)
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)
	suite.mockInvitations.EXPECT().Accept(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(apperrors.ErrInvitationAlreadyUsed)

	_, err := suite.service.Accept(context.Background(), &service.AcceptInvitationRequest{Token: "t"}, "", "")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationAlreadyUsed)
}

// TestExpireStale tests the sweep and its system audit entry
func (suite *InvitationServiceTestSuite) TestExpireStale() {
	suite.mockInvitations.EXPECT().ExpirePending(fixedNow).Return(int64(3), nil)
	suite.mockAudit.EXPECT().Record(service.SystemActor, nil, "invitation.expire_sweep", "invitation", "", gomock.Any())

	n, err := suite.service.ExpireStale()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), n)
}

// TestExpireStaleNothingToDo tests that an empty sweep is not audited
func (suite *InvitationServiceTestSuite) TestExpireStaleNothingToDo() {
	suite.mockInvitations.EXPECT().ExpirePending(fixedNow).Return(int64(0), nil)

	n, err := suite.service.ExpireStale()

	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), n)
}

// TestInvitationServiceTestSuite runs the test suite
func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
