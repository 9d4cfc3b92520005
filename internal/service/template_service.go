package service

import (
	"context"
	"errors"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/recommend"
	"dmarins/fittrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNoTemplates = errors.New("template catalog is empty")

// TemplateService exposes the read-only template catalog and the
// recommendation on top of it.
type TemplateService interface {
	List(ctx context.Context) ([]domain.TemplateWorkout, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TemplateWorkout, error)
	Recommended(ctx context.Context, userID primitive.ObjectID) (*domain.TemplateWorkout, error)
}

type templateService struct {
	templateRepo repository.TemplateRepository
	profileRepo  repository.ProfileRepository
}

// NewTemplateService creates a new instance of templateService.
func NewTemplateService(templateRepo repository.TemplateRepository, profileRepo repository.ProfileRepository) TemplateService {
	return &templateService{templateRepo: templateRepo, profileRepo: profileRepo}
}

func (s *templateService) List(ctx context.Context) ([]domain.TemplateWorkout, error) {
	return s.templateRepo.GetAll(ctx)
}

func (s *templateService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TemplateWorkout, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

// Recommended scores the catalog against the user's profile and returns the
// single best match. A user without a profile still gets a recommendation;
// the scorer falls back to its defaults for every missing field.
func (s *templateService) Recommended(ctx context.Context, userID primitive.ObjectID) (*domain.TemplateWorkout, error) {
	catalog, err := s.templateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		profile = &domain.Profile{UserID: userID}
	}

	best := recommend.Recommend(profile, catalog)
	if best == nil {
		return nil, ErrNoTemplates
	}
	return best, nil
}
