//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// KnowledgeRepositoryTestSuite tests the KnowledgeRepository
type KnowledgeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *KnowledgeRepository
	factories     *testutils.FactorySet
	org           *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *KnowledgeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewKnowledgeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// SetupTest runs before each test
func (suite *KnowledgeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org, _ = seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
}

// TearDownTest runs after each test
func (suite *KnowledgeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *KnowledgeRepositoryTestSuite) chunks(contents ...string) []models.KnowledgeChunk {
	out := make([]models.KnowledgeChunk, len(contents))
	for i, c := range contents {
		out[i] = models.KnowledgeChunk{OrganizationID: suite.org.ID, Position: i, Heading: "Shipping", Content: c}
	}
	return out
}

// TestReplaceChunks tests that re-ingesting swaps the whole chunk set
func (suite *KnowledgeRepositoryTestSuite) TestReplaceChunks() {
	source := suite.factories.KnowledgeSource.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.CreateSource(source))

	suite.NoError(suite.repo.ReplaceChunks(source.ID, suite.chunks("one", "two", "three")))
	suite.NoError(suite.repo.ReplaceChunks(source.ID, suite.chunks("fresh")))

	chunks, err := suite.repo.GetChunksBySourceID(source.ID)
	suite.NoError(err)
	suite.Require().Len(chunks, 1)
	suite.Equal("fresh", chunks[0].Content)
	suite.Equal(source.ID, chunks[0].SourceID)
}

// TestSearchChunks tests case-insensitive search scoped to one organization
func (suite *KnowledgeRepositoryTestSuite) TestSearchChunks() {
	source := suite.factories.KnowledgeSource.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.CreateSource(source))
	suite.Require().NoError(suite.repo.ReplaceChunks(source.ID, suite.chunks("We ship WORLDWIDE", "Returns take 30 days")))

	other, _ := seedOrganization(suite.T(), suite.baseTestSuite.DB, suite.factories)
	otherSource := suite.factories.KnowledgeSource.Create(other.ID)
	suite.Require().NoError(suite.repo.CreateSource(otherSource))
	suite.Require().NoError(suite.repo.ReplaceChunks(otherSource.ID, []models.KnowledgeChunk{
		{OrganizationID: other.ID, Content: "worldwide too"},
	}))

	found, err := suite.repo.SearchChunks(suite.org.ID, "worldwide", 10)
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("We ship WORLDWIDE", found[0].Content)

	found, err = suite.repo.SearchChunks(suite.org.ID, "100%", 10)
	suite.NoError(err)
	suite.Empty(found)
}

// TestDeleteSourceCascades tests that chunks are removed with their source
func (suite *KnowledgeRepositoryTestSuite) TestDeleteSourceCascades() {
	source := suite.factories.KnowledgeSource.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.CreateSource(source))
	suite.Require().NoError(suite.repo.ReplaceChunks(source.ID, suite.chunks("a", "b")))

	suite.NoError(suite.repo.DeleteSource(source.ID))

	chunks, err := suite.repo.GetChunksBySourceID(source.ID)
	suite.NoError(err)
	suite.Empty(chunks)
}

// TestGetStaleSources tests the status and age filters of the recovery sweep
func (suite *KnowledgeRepositoryTestSuite) TestGetStaleSources() {
	old := suite.factories.KnowledgeSource.Create(suite.org.ID)
	fresh := suite.factories.KnowledgeSource.Create(suite.org.ID)
	ready := suite.factories.KnowledgeSource.Create(suite.org.ID)
	ready.Status = models.SourceStatusReady
	for _, src := range []*models.KnowledgeSource{old, fresh, ready} {
		suite.Require().NoError(suite.repo.CreateSource(src))
	}
	twoHoursAgo := time.Now().Add(-2 * time.Hour)
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.KnowledgeSource{}).
		Where("id IN ?", []interface{}{old.ID, ready.ID}).
		UpdateColumn("updated_at", twoHoursAgo).Error)

	stale, err := suite.repo.GetStaleSources(models.SourceStatusPending, time.Now().Add(-time.Hour), 10)
	suite.NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(old.ID, stale[0].ID)

	stale, err = suite.repo.GetStaleSources(models.SourceStatusFailed, time.Now(), 10)
	suite.NoError(err)
	suite.Empty(stale)
}

// TestKnowledgeRepositoryTestSuite runs the test suite
func TestKnowledgeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KnowledgeRepositoryTestSuite))
}
