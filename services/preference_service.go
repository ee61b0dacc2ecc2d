package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/NomadCrew/tripboard/errors"
	"github.com/NomadCrew/tripboard/internal/kvstore"
	"github.com/NomadCrew/tripboard/logger"
	"github.com/NomadCrew/tripboard/models/trip/source"
	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var viewIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// PreferenceService persists the last filter/sort selection per board view.
type PreferenceService struct {
	store kvstore.Store
	log   *zap.SugaredLogger
}

func NewPreferenceService(store kvstore.Store) *PreferenceService {
	return &PreferenceService{
		store: store,
		log:   logger.GetLogger(),
	}
}

// Get returns the saved selection for viewID. found is false when nothing
// has been saved yet.
func (s *PreferenceService) Get(ctx context.Context, viewID string) (types.TripFilters, bool, error) {
	if err := validateViewID(viewID); err != nil {
		return types.TripFilters{}, false, err
	}

	raw, err := s.store.Get(ctx, viewID)
	if errors.Is(err, kvstore.ErrNotFound) {
		return types.TripFilters{}, false, nil
	}
	if err != nil {
		return types.TripFilters{}, false, apperrors.NewStorageError(err)
	}

	var filters types.TripFilters
	if err := json.Unmarshal(raw, &filters); err != nil {
		// A corrupt entry behaves like no entry; the next Save overwrites it.
		s.log.Warnw("Discarding unreadable view preferences", "viewID", viewID, "error", err)
		return types.TripFilters{}, false, nil
	}
	return filters, true, nil
}

// Save validates and stores filters for viewID.
func (s *PreferenceService) Save(ctx context.Context, viewID string, filters types.TripFilters) error {
	if err := validateViewID(viewID); err != nil {
		return err
	}
	if err := ValidateFilters(filters); err != nil {
		return err
	}

	raw, err := json.Marshal(filters)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ServerError, "Failed to encode view preferences")
	}
	if err := s.store.Set(ctx, viewID, raw); err != nil {
		return apperrors.NewStorageError(err)
	}
	s.log.Debugw("Saved view preferences", "viewID", viewID, "sortBy", filters.SortBy)
	return nil
}

func (s *PreferenceService) Delete(ctx context.Context, viewID string) error {
	if err := validateViewID(viewID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, viewID); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Reset removes the saved selection of every view.
func (s *PreferenceService) Reset(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return apperrors.NewStorageError(err)
	}
	s.log.Infow("Cleared all view preferences")
	return nil
}

// Merge fills every field the query leaves empty from the saved selection.
func Merge(saved, query types.TripFilters) types.TripFilters {
	return query.WithDefaults(saved)
}

// ValidateFilters rejects selections that cannot be parsed. The pipeline
// itself tolerates them; stored and explicitly submitted selections do not.
func ValidateFilters(f types.TripFilters) error {
	if f.SortBy != "" && !f.SortBy.IsValid() {
		return apperrors.ValidationFailed("Invalid sort key", fmt.Sprintf("unknown key: %s", f.SortBy))
	}
	if f.Status != "" && f.Status != types.StatusAll && !types.TripStatus(f.Status).IsValid() {
		return apperrors.ValidationFailed("Invalid status", fmt.Sprintf("unknown status: %s", f.Status))
	}
	for _, field := range [][2]string{{"dateFrom", f.DateFrom}, {"dateTo", f.DateTo}} {
		if strings.TrimSpace(field[1]) == "" {
			continue
		}
		if _, ok := source.ParseDate(field[1]); !ok {
			return apperrors.ValidationFailed("Invalid date", fmt.Sprintf("%s: %q is not a date", field[0], field[1]))
		}
	}
	for _, field := range [][2]string{{"budgetMin", f.BudgetMin}, {"budgetMax", f.BudgetMax}} {
		if strings.TrimSpace(field[1]) == "" {
			continue
		}
		if _, err := decimal.NewFromString(strings.TrimSpace(field[1])); err != nil {
			return apperrors.ValidationFailed("Invalid budget", fmt.Sprintf("%s: %q is not a number", field[0], field[1]))
		}
	}
	return nil
}

func validateViewID(viewID string) error {
	if !viewIDPattern.MatchString(viewID) {
		return apperrors.ValidationFailed("Invalid view id", "view ids are 1-64 letters, digits, '-' or '_'")
	}
	return nil
}
