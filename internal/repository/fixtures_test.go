//go:build integration
// +build integration

package repository

import (
	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedOrganization stores a user and an organization owned by that user
func seedOrganization(t require.TestingT, db *gorm.DB, f *testutils.FactorySet) (*models.Organization, *models.User) {
	owner := f.User.Create()
	require.NoError(t, NewUserRepository(db).Create(owner))

	org := f.Organization.Create()
	require.NoError(t, NewOrganizationRepository(db).CreateWithOwner(org,
		f.Membership.Create(uuid.Nil, owner.ID, models.RoleOwner),
		f.Subscription.Create(uuid.Nil, models.PlanFree, "0")))
	return org, owner
}
