package repository

import (
	"org-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByUserAndOrganization retrieves the membership for a user/organization pair
func (r *MembershipRepository) GetByUserAndOrganization(userID, orgID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND organization_id = ?", userID, orgID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// HaveSharedOrganization reports whether two users belong to at least one
// common organization.
func (r *MembershipRepository) HaveSharedOrganization(userID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Table("memberships AS m1").
		Joins("JOIN memberships m2 ON m1.organization_id = m2.organization_id").
		Where("m1.user_id = ? AND m2.user_id = ?", userID, otherID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "id = ?", id).Error
}
