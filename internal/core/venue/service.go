package venue

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/core/reference"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

// Column limits mirrored from data/migrations.
const (
	maxName        = 200
	maxShort       = 120
	maxAddress     = 240
	maxImageLink   = 500
	maxWebsiteLink = 250
	maxDescription = 250
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds a venue [Service]. A nil clock defaults to [time.Now].
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

// # Queries

// ListByLocation returns every venue grouped by (city, state) with its
// upcoming show count.
func (service *Service) ListByLocation(ctx context.Context) ([]*Location, error) {
	summaries, err := service.repo.ListVenueSummaries(ctx, service.now())
	if err != nil {
		return nil, err
	}
	return GroupByLocation(summaries), nil
}

// Search returns venues whose name contains term, ignoring case.
// The empty term matches every venue.
func (service *Service) Search(ctx context.Context, term string) (*SearchResult, error) {
	summaries, err := service.repo.SearchVenues(ctx, term, service.now())
	if err != nil {
		return nil, err
	}
	return &SearchResult{Count: len(summaries), Data: summaries}, nil
}

// Detail returns a venue with its shows partitioned around a single "now".
func (service *Service) Detail(ctx context.Context, id int) (*Detail, error) {
	now := service.now()

	v, err := service.repo.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	refs, err := service.repo.ListVenueShows(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := show.Partition(refs, func(ref *ShowRef) time.Time { return ref.StartTime }, now)

	return &Detail{
		Venue:              v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// # Mutations

func (service *Service) Create(ctx context.Context, input Input) (*Venue, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	v := &Venue{}
	input.apply(v)

	if err := service.repo.CreateVenue(ctx, v); err != nil {
		return nil, err
	}

	service.logger.Info("venue_created", slog.Int("venue_id", v.ID), slog.String("name", v.Name))
	return v, nil
}

// Update replaces every editable field of the venue.
func (service *Service) Update(ctx context.Context, id int, input Input) (*Venue, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	v := &Venue{ID: id}
	input.apply(v)

	if err := service.repo.UpdateVenue(ctx, v); err != nil {
		return nil, err
	}

	service.logger.Info("venue_updated", slog.Int("venue_id", v.ID))
	return v, nil
}

// Delete removes the venue and every show it hosts.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.DeleteVenue(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("venue_deleted", slog.Int("venue_id", id))
	return nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, maxName)
	validator.Required(FieldCity, input.City).MaxLen(FieldCity, input.City, maxShort)
	validator.Required(FieldState, input.State).
		Custom(FieldState, input.State != "" && !reference.IsState(input.State), "Unknown state code")
	validator.Required(FieldAddress, input.Address).MaxLen(FieldAddress, input.Address, maxAddress)
	validator.Required(FieldPhone, input.Phone)
	if input.Phone != "" {
		validator.Phone(FieldPhone, input.Phone)
	}
	validator.EachOneOf(FieldGenres, input.Genres, reference.IsGenre)

	imageLink := pointer.Fallback(input.ImageLink, "")
	facebookLink := pointer.Fallback(input.FacebookLink, "")
	websiteLink := pointer.Fallback(input.WebsiteLink, "")

	validator.URL(FieldImageLink, imageLink).MaxLen(FieldImageLink, imageLink, maxImageLink)
	validator.URL(FieldFacebookLink, facebookLink).MaxLen(FieldFacebookLink, facebookLink, maxShort)
	validator.URL(FieldWebsiteLink, websiteLink).MaxLen(FieldWebsiteLink, websiteLink, maxWebsiteLink)
	validator.MaxLen(FieldSeekingDescription, pointer.Fallback(input.SeekingDescription, ""), maxDescription)

	return validator.Err()
}
