package repository

import (
	"context"

	"github.com/strakotou/travel-backend/internal/models"
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(ctx context.Context, item *models.NewsItem) error
	Update(ctx context.Context, item *models.NewsItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.NewsItem, error)
	FindByStatus(ctx context.Context, status models.CatalogStatus) ([]models.NewsItem, error)
	FindAll(ctx context.Context) ([]models.NewsItem, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, item *models.NewsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *newsRepository) Update(ctx context.Context, item *models.NewsItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.NewsItem{}, id).Error
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*models.NewsItem, error) {
	var item models.NewsItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *newsRepository) FindByStatus(ctx context.Context, status models.CatalogStatus) ([]models.NewsItem, error) {
	var items []models.NewsItem
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepository) FindAll(ctx context.Context) ([]models.NewsItem, error) {
	var items []models.NewsItem
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
