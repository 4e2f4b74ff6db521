package artist

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/core/reference"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds an artist [Service]. A nil clock defaults to [time.Now].
func NewService(repo Repository, logger *slog.Logger, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    clock,
	}
}

func (service *Service) List(ctx context.Context, limit, offset int) ([]*Summary, int, error) {
	return service.repo.ListArtists(ctx, limit, offset, service.now())
}

// Search returns artists whose name contains term, ignoring case.
func (service *Service) Search(ctx context.Context, term string) (*SearchResult, error) {
	summaries, err := service.repo.SearchArtists(ctx, term, service.now())
	if err != nil {
		return nil, err
	}
	return &SearchResult{Count: len(summaries), Data: summaries}, nil
}

func (service *Service) Detail(ctx context.Context, id int) (*Detail, error) {
	now := service.now()

	a, err := service.repo.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := service.repo.ListArtistShows(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := show.Partition(refs, func(ref *ShowRef) time.Time { return ref.StartTime }, now)

	return &Detail{
		Artist:             a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (service *Service) Create(ctx context.Context, input Input) (*Artist, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	a := &Artist{}
	input.apply(a)

	if err := service.repo.CreateArtist(ctx, a); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created", slog.Int("artist_id", a.ID), slog.String("name", a.Name))
	return a, nil
}

func (service *Service) Update(ctx context.Context, id int, input Input) (*Artist, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	a := &Artist{ID: id}
	input.apply(a)

	if err := service.repo.UpdateArtist(ctx, a); err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", a.ID))
	return a, nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.DeleteArtist(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("artist_deleted", slog.Int("artist_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldCity, input.City).MaxLen(FieldCity, input.City, 120)
	validator.Required(FieldState, input.State).
		Custom(FieldState, input.State != "" && !reference.IsState(input.State), "Unknown state code")
	validator.Required(FieldPhone, input.Phone)
	if input.Phone != "" {
		validator.Phone(FieldPhone, input.Phone)
	}
	validator.EachOneOf(FieldGenres, input.Genres, reference.IsGenre)

	links := []struct {
		field string
		value *string
		max   int
	}{
		{FieldImageLink, input.ImageLink, 500},
		{FieldFacebookLink, input.FacebookLink, 120},
		{FieldWebsiteLink, input.WebsiteLink, 250},
	}
	for _, link := range links {
		value := pointer.Fallback(link.value, "")
		validator.URL(link.field, value).MaxLen(link.field, value, link.max)
	}
	validator.MaxLen(FieldSeekingDescription, pointer.Fallback(input.SeekingDescription, ""), 250)

	return validator.Err()
}
