package service_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/mocks"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// AuditServiceTestSuite defines the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockAuditLogRepositoryInterface
	service  *service.AuditService
}

// SetupTest sets up the test suite
func (suite *AuditServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAuditLogRepositoryInterface(suite.ctrl)
	suite.service = service.NewAuditService(suite.mockRepo)
	suite.service.SetClock(func() time.Time { return fixedNow })
}

// TearDownTest cleans up after each test
func (suite *AuditServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRecord tests the stored entry
func (suite *AuditServiceTestSuite) TestRecord() {
	actor := service.Actor{UserID: uuid.New(), Email: "ann@acme.io", IP: "10.0.0.7", UserAgent: "Mozilla/5.0"}
	orgID := uuid.New()

	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.AuditLog) error {
		require.NotNil(suite.T(), e.ActorID)
		assert.Equal(suite.T(), actor.UserID, *e.ActorID)
		assert.Equal(suite.T(), &orgID, e.OrganizationID)
		assert.Equal(suite.T(), "widget.create", e.Action)
		assert.Equal(suite.T(), "10.0.0.7", e.IPAddress)
		assert.Equal(suite.T(), fixedNow, e.CreatedAt)
		assert.JSONEq(suite.T(), `{"name":"Support"}`, string(e.Metadata))
		return nil
	})

	suite.service.Record(actor, &orgID, "widget.create", "widget", "w-1", map[string]string{"name": "Support"})
}

// TestRecordSystemActor tests that system entries carry no actor id
func (suite *AuditServiceTestSuite) TestRecordSystemActor() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.AuditLog) error {
		assert.Nil(suite.T(), e.ActorID)
		assert.Equal(suite.T(), "system", e.ActorEmail)
		assert.Nil(suite.T(), e.Metadata)
		return nil
	})

	suite.service.Record(service.SystemActor, nil, "invitation.expire_sweep", "invitation", "", nil)
}

// TestRecordSwallowsErrors tests that storage failures never reach the caller
func (suite *AuditServiceTestSuite) TestRecordSwallowsErrors() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full"))

	assert.NotPanics(suite.T(), func() {
		suite.service.Record(service.Actor{Email: "x@acme.io"}, nil, "member.remove", "membership", "1", nil)
	})
}

// TestListPassesFilter tests query translation and pagination
func (suite *AuditServiceTestSuite) TestListPassesFilter() {
	orgID := uuid.New()
	from := fixedNow.Add(-24 * time.Hour)
	query := &service.AuditQuery{OrganizationID: &orgID, Action: "member.remove", From: &from}

	suite.mockRepo.EXPECT().List(repository.AuditLogFilter{OrganizationID: &orgID, Action: "member.remove", From: &from}, 50, 50).
		Return([]models.AuditLog{{ID: uuid.New(), Action: "member.remove", CreatedAt: fixedNow}}, int64(51), nil)

	resp, err := suite.service.List(query, 2, 50)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(51), resp.Total)
	require.Len(suite.T(), resp.Entries, 1)
	assert.Equal(suite.T(), fixedNow.Format(time.RFC3339), resp.Entries[0].CreatedAt)
}

// TestExport tests the XLSX workbook layout
func (suite *AuditServiceTestSuite) TestExport() {
	orgID := uuid.New()
	entries := []models.AuditLog{
		{ID: uuid.New(), OrganizationID: &orgID, ActorEmail: "ann@acme.io", Action: "widget.create", ResourceType: "widget", ResourceID: "w-1", IPAddress: "10.0.0.7", Metadata: json.RawMessage(`{"name":"Support"}`), CreatedAt: fixedNow},
		{ID: uuid.New(), ActorEmail: "system", Action: "invitation.expire_sweep", ResourceType: "invitation", CreatedAt: fixedNow.Add(-time.Hour)},
	}
	suite.mockRepo.EXPECT().List(repository.AuditLogFilter{}, 1000, 0).Return(entries, int64(2), nil)

	var buf bytes.Buffer
	n, err := suite.service.Export(nil, &buf)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(suite.T(), err)
	defer f.Close()

	rows, err := f.GetRows("Audit log")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 3)
	assert.Equal(suite.T(), "Action", rows[0][3])
	assert.Equal(suite.T(), orgID.String(), rows[1][1])
	assert.Equal(suite.T(), "widget.create", rows[1][3])
	assert.Equal(suite.T(), `{"name":"Support"}`, rows[1][7])
	assert.Equal(suite.T(), "", rows[2][1])
	assert.Equal(suite.T(), "system", rows[2][2])
}

// TestExportPagesThroughBatches tests that large exports read in batches
func (suite *AuditServiceTestSuite) TestExportPagesThroughBatches() {
	batch := make([]models.AuditLog, 1000)
	for i := range batch {
		batch[i] = models.AuditLog{ID: uuid.New(), Action: "widget.update", CreatedAt: fixedNow}
	}
	gomock.InOrder(
		suite.mockRepo.EXPECT().List(gomock.Any(), 1000, 0).Return(batch, int64(1500), nil),
		suite.mockRepo.EXPECT().List(gomock.Any(), 1000, 1000).Return(batch[:500], int64(1500), nil),
	)

	var buf bytes.Buffer
	n, err := suite.service.Export(&service.AuditQuery{Action: "widget.update"}, &buf)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1500, n)
}

// TestExportRepositoryError tests error propagation
func (suite *AuditServiceTestSuite) TestExportRepositoryError() {
	suite.mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("timeout"))

	var buf bytes.Buffer
	_, err := suite.service.Export(nil, &buf)
	assert.Error(suite.T(), err)
	assert.Zero(suite.T(), buf.Len())
}

// TestAuditServiceTestSuite runs the test suite
func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
