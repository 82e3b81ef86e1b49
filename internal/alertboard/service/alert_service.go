package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/infofatec/alertboard/internal/alertboard/cache"
	"github.com/infofatec/alertboard/internal/alertboard/media"
	"github.com/infofatec/alertboard/internal/alertboard/model"
	"github.com/infofatec/alertboard/internal/alertboard/store"
)

// ImageUpload is an optional image attached to a create or update request.
type ImageUpload struct {
	Data        []byte
	ContentType string
}

// AlertService coordinates the record store and the media store so that the
// image lifecycle always matches the record lifecycle. The sequencing rules:
// a record is never persisted pointing at an asset that was not stored first,
// and asset deletions are best-effort (an orphaned asset is preferable to a
// user-visible failure or a record with a dangling reference).
type AlertService interface {
	Create(ctx context.Context, text string, image *ImageUpload) (*model.Alert, error)
	Get(ctx context.Context, id string) (*model.Alert, error)
	List(ctx context.Context) ([]*model.Alert, error)
	Update(ctx context.Context, id, text string, image *ImageUpload) (*model.Alert, error)
	Delete(ctx context.Context, id string) error
}

type alertService struct {
	store store.Store
	media media.Store
	cache cache.Cache
}

func New(st store.Store, ms media.Store, c cache.Cache) AlertService {
	if c == nil {
		c = cache.NoopCache{}
	}
	return &alertService{store: st, media: ms, cache: c}
}

func (s *alertService) Create(ctx context.Context, text string, image *ImageUpload) (*model.Alert, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &model.ValidationError{Field: "text", Message: "must not be empty"}
	}
	if err := validateImage(image); err != nil {
		return nil, err
	}

	a := &model.Alert{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	// Upload before insert: an upload that fails must leave no trace.
	if image != nil {
		asset, err := s.media.Upload(ctx, image.Data, image.ContentType)
		if err != nil {
			return nil, &model.UploadError{Err: err}
		}
		a.SetImage(asset.URL, asset.Key)
	}

	if err := s.store.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("persist alert: %w", err)
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("alert_id", a.ID).Bool("has_image", a.HasImage()).Msg("alert created")
	return a, nil
}

// validateImage rejects a supplied-but-empty image part before any media
// store call; an empty file is a client mistake, not a remote failure.
func validateImage(image *ImageUpload) error {
	if image != nil && len(image.Data) == 0 {
		return &model.ValidationError{Field: "image", Message: "must not be empty"}
	}
	return nil
}

func (s *alertService) Get(ctx context.Context, id string) (*model.Alert, error) {
	return s.store.Get(ctx, id)
}

func (s *alertService) List(ctx context.Context) ([]*model.Alert, error) {
	if alerts, ok := s.cache.GetList(ctx); ok {
		return alerts, nil
	}
	alerts, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, alerts)
	return alerts, nil
}

func (s *alertService) Update(ctx context.Context, id, text string, image *ImageUpload) (*model.Alert, error) {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &model.ValidationError{Field: "text", Message: "must not be empty"}
	}
	if err := validateImage(image); err != nil {
		return nil, err
	}
	a.Text = text

	if image != nil {
		// Upload the replacement first; only once it is confirmed stored is
		// the old asset deleted. A failed delete leaves an orphan, which is
		// tolerated and logged.
		asset, err := s.media.Upload(ctx, image.Data, image.ContentType)
		if err != nil {
			return nil, &model.UploadError{Err: err}
		}
		if a.HasImage() {
			if err := s.media.Delete(ctx, a.ImageKey); err != nil {
				log.Error().Err(err).Str("alert_id", a.ID).Str("asset_key", a.ImageKey).
					Msg("failed to delete replaced asset, orphan left in media store")
			}
		}
		a.SetImage(asset.URL, asset.Key)
	}

	if err := s.store.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("persist alert update: %w", err)
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("alert_id", a.ID).Bool("image_replaced", image != nil).Msg("alert updated")
	return a, nil
}

func (s *alertService) Delete(ctx context.Context, id string) error {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort asset cleanup; the record must go away even when the media
	// store is briefly unavailable.
	if a.HasImage() {
		if err := s.media.Delete(ctx, a.ImageKey); err != nil {
			log.Error().Err(err).Str("alert_id", a.ID).Str("asset_key", a.ImageKey).
				Msg("failed to delete asset, orphan left in media store")
		}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)

	log.Info().Str("alert_id", id).Msg("alert deleted")
	return nil
}
