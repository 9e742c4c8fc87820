package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/strakotou/travel-backend/internal/models"
	"github.com/strakotou/travel-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("catalog item not found")

// CatalogService owns the content the public site displays and the admin
// console manages.
type CatalogService interface {
	ListActivePackages(ctx context.Context) ([]models.TravelPackage, error)
	ListAllPackages(ctx context.Context) ([]models.TravelPackage, error)
	GetPackage(ctx context.Context, id uint) (*models.TravelPackage, error)
	CreatePackage(ctx context.Context, pkg *models.TravelPackage) error
	UpdatePackage(ctx context.Context, pkg *models.TravelPackage) error
	DeletePackage(ctx context.Context, id uint) error

	ListActiveTickets(ctx context.Context) ([]models.Ticket, error)
	ListAllTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicket(ctx context.Context, id uint) (*models.Ticket, error)
	CreateTicket(ctx context.Context, ticket *models.Ticket) error
	UpdateTicket(ctx context.Context, ticket *models.Ticket) error
	DeleteTicket(ctx context.Context, id uint) error

	ListPublishedNews(ctx context.Context) ([]models.NewsItem, error)
	ListAllNews(ctx context.Context) ([]models.NewsItem, error)
	GetNews(ctx context.Context, id uint) (*models.NewsItem, error)
	CreateNews(ctx context.Context, item *models.NewsItem) error
	UpdateNews(ctx context.Context, item *models.NewsItem) error
	DeleteNews(ctx context.Context, id uint) error
}

type catalogService struct {
	packages repository.PackageRepository
	tickets  repository.TicketRepository
	news     repository.NewsRepository
}

func NewCatalogService(packages repository.PackageRepository, tickets repository.TicketRepository, news repository.NewsRepository) CatalogService {
	return &catalogService{packages: packages, tickets: tickets, news: news}
}

func (s *catalogService) ListActivePackages(ctx context.Context) ([]models.TravelPackage, error) {
	return s.packages.FindByStatus(ctx, models.StatusActive)
}

func (s *catalogService) ListAllPackages(ctx context.Context) ([]models.TravelPackage, error) {
	return s.packages.FindAll(ctx)
}

func (s *catalogService) GetPackage(ctx context.Context, id uint) (*models.TravelPackage, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *catalogService) CreatePackage(ctx context.Context, pkg *models.TravelPackage) error {
	if err := s.packages.Create(ctx, pkg); err != nil {
		return fmt.Errorf("create package: %w", err)
	}
	return nil
}

func (s *catalogService) UpdatePackage(ctx context.Context, pkg *models.TravelPackage) error {
	if _, err := s.GetPackage(ctx, pkg.ID); err != nil {
		return err
	}
	if err := s.packages.Update(ctx, pkg); err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}

func (s *catalogService) DeletePackage(ctx context.Context, id uint) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.packages.Delete(ctx, id)
}

func (s *catalogService) ListActiveTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.tickets.FindByStatus(ctx, models.StatusActive)
}

func (s *catalogService) ListAllTickets(ctx context.Context) ([]models.Ticket, error) {
	return s.tickets.FindAll(ctx)
}

func (s *catalogService) GetTicket(ctx context.Context, id uint) (*models.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *catalogService) CreateTicket(ctx context.Context, ticket *models.Ticket) error {
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateTicket(ctx context.Context, ticket *models.Ticket) error {
	if _, err := s.GetTicket(ctx, ticket.ID); err != nil {
		return err
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

func (s *catalogService) DeleteTicket(ctx context.Context, id uint) error {
	if _, err := s.GetTicket(ctx, id); err != nil {
		return err
	}
	return s.tickets.Delete(ctx, id)
}

func (s *catalogService) ListPublishedNews(ctx context.Context) ([]models.NewsItem, error) {
	return s.news.FindByStatus(ctx, models.StatusPublished)
}

func (s *catalogService) ListAllNews(ctx context.Context) ([]models.NewsItem, error) {
	return s.news.FindAll(ctx)
}

func (s *catalogService) GetNews(ctx context.Context, id uint) (*models.NewsItem, error) {
	item, err := s.news.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) CreateNews(ctx context.Context, item *models.NewsItem) error {
	if err := s.news.Create(ctx, item); err != nil {
		return fmt.Errorf("create news item: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateNews(ctx context.Context, item *models.NewsItem) error {
	if _, err := s.GetNews(ctx, item.ID); err != nil {
		return err
	}
	if err := s.news.Update(ctx, item); err != nil {
		return fmt.Errorf("update news item: %w", err)
	}
	return nil
}

func (s *catalogService) DeleteNews(ctx context.Context, id uint) error {
	if _, err := s.GetNews(ctx, id); err != nil {
		return err
	}
	return s.news.Delete(ctx, id)
}
