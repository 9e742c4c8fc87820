package repository

import (
	"context"

	"github.com/strakotou/travel-backend/internal/models"
	"gorm.io/gorm"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *models.TravelPackage) error
	Update(ctx context.Context, pkg *models.TravelPackage) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.TravelPackage, error)
	FindByStatus(ctx context.Context, status models.CatalogStatus) ([]models.TravelPackage, error)
	FindAll(ctx context.Context) ([]models.TravelPackage, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *models.TravelPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) Update(ctx context.Context, pkg *models.TravelPackage) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TravelPackage{}, id).Error
}

func (r *packageRepository) FindByID(ctx context.Context, id uint) (*models.TravelPackage, error) {
	var pkg models.TravelPackage
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// FindByStatus returns packages newest first, matching the public site's
// ordering.
func (r *packageRepository) FindByStatus(ctx context.Context, status models.CatalogStatus) ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]models.TravelPackage, error) {
	var pkgs []models.TravelPackage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&pkgs).Error; err != nil {
		return nil, err
	}
	return pkgs, nil
}
