package show

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every show with venue and artist names, ordered by start time.
func (service *Service) List(ctx context.Context) ([]*Listing, error) {
	return service.repo.ListShows(ctx)
}

func (service *Service) Get(ctx context.Context, id int) (*Listing, error) {
	return service.repo.GetShow(ctx, id)
}

// Create books a show. Missing references surface as CONSTRAINT_VIOLATION
// from the repository and nothing is written.
func (service *Service) Create(ctx context.Context, input Input) (*Show, error) {
	validator := &validate.Validator{}

	validator.Positive(FieldArtistID, input.ArtistID).
		Positive(FieldVenueID, input.VenueID).
		RequiredTime(FieldStartTime, input.StartTime)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	s := &Show{
		ArtistID:  input.ArtistID,
		VenueID:   input.VenueID,
		StartTime: input.StartTime.UTC().Truncate(time.Microsecond),
	}

	if err := service.repo.CreateShow(ctx, s); err != nil {
		return nil, err
	}

	service.logger.Info("show_created",
		slog.Int("show_id", s.ID),
		slog.Int("artist_id", s.ArtistID),
		slog.Int("venue_id", s.VenueID),
		slog.Time("start_time", s.StartTime),
	)
	return s, nil
}
