package services

import (
	"context"
	"errors"

	"go-shop-backend/models"

	"gorm.io/gorm"
)

// SellerService runs the seller approval workflow:
// apply (none or rejected -> pending), approve (pending -> approved,
// assigns the seller role) and reject (pending -> rejected).
type SellerService struct {
	db *gorm.DB
}

func NewSellerService(db *gorm.DB) *SellerService {
	return &SellerService{db: db}
}

// Apply files or re-files a seller application for the user. An existing
// pending or approved profile is a conflict; a rejected profile is
// overwritten and moved back to pending.
func (s *SellerService) Apply(ctx context.Context, userID uint, shopName, description string) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.SellerProfile{
			UserID:      userID,
			ShopName:    shopName,
			Description: description,
			Status:      models.SellerPending,
		}
		if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	if !profile.Status.CanTransitionTo(models.SellerPending) {
		return nil, ErrSellerExists
	}
	profile.ShopName = shopName
	profile.Description = description
	profile.Status = models.SellerPending
	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Approve moves a pending profile to approved and grants the user the
// seller role, both inside one transaction.
func (s *SellerService) Approve(ctx context.Context, profileID uint) error {
	return s.transition(ctx, profileID, models.SellerApproved, true)
}

// Reject moves a pending profile to rejected. The user may re-apply.
func (s *SellerService) Reject(ctx context.Context, profileID uint) error {
	return s.transition(ctx, profileID, models.SellerRejected, false)
}

func (s *SellerService) transition(ctx context.Context, profileID uint, next models.SellerStatus, grantRole bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.SellerProfile
		err := tx.Preload("User").First(&profile, profileID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		if err != nil {
			return err
		}

		if !profile.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		if err := tx.Model(&profile).Update("status", next).Error; err != nil {
			return err
		}

		if !grantRole {
			return nil
		}
		var role models.Role
		if err := tx.Where("name = ?", models.RoleSeller).First(&role).Error; err != nil {
			return err
		}
		return tx.Model(&profile.User).Association("Roles").Append(&role)
	})
}

// Pending returns all profiles awaiting review, with their users loaded.
func (s *SellerService) Pending(ctx context.Context) ([]models.SellerProfile, error) {
	var profiles []models.SellerProfile
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", models.SellerPending).
		Find(&profiles).Error
	return profiles, err
}

// ApprovedProfile returns the user's seller profile when it is approved.
// It distinguishes a user who never applied (ErrNotSeller) from one whose
// application is still pending or was rejected (ErrSellerNotApproved).
func (s *SellerService) ApprovedProfile(ctx context.Context, userID uint) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotSeller
	}
	if err != nil {
		return nil, err
	}
	if profile.Status != models.SellerApproved {
		return nil, ErrSellerNotApproved
	}
	return &profile, nil
}
