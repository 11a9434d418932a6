package service

import (
	"context"
	"log"
	"time"

	"marketcal/internal/marketcal/authz"
	"marketcal/internal/marketcal/model"

	"github.com/google/uuid"
)

func (s *Service) CreateCalendar(ctx context.Context, p model.Principal, req model.CreateCalendarRequest) (*model.Calendar, error) {
	if p.ID == "" {
		return nil, ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	now := time.Now()
	cal := &model.Calendar{
		ID:         uuid.NewString(),
		OwnerID:    p.ID, // creator becomes owner, permanently
		Name:       req.Name,
		IsTemplate: req.IsTemplate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.CreateCalendar(ctx, cal); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Calendar Created. Caller=%s, Calendar=%s", p.ID, cal.ID)
	return cal, nil
}

func (s *Service) GetCalendar(ctx context.Context, p model.Principal, id string) (*model.Calendar, error) {
	if err := s.authorize(ctx, p, model.ActionView, model.KindCalendar, id); err != nil {
		return nil, err
	}
	cal, err := s.Store.GetCalendar(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return cal, nil
}

// ListAccessibleCalendars returns every calendar the caller can at least view,
// with the resolved level attached. Elevated roles see everything.
func (s *Service) ListAccessibleCalendars(ctx context.Context, p model.Principal) ([]*model.CalendarAccess, error) {
	if p.ID == "" {
		return nil, ErrUnauthorized
	}

	if p.Elevated() {
		cals, err := s.Store.ListCalendars(ctx)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		out := make([]*model.CalendarAccess, 0, len(cals))
		for _, cal := range cals {
			out = append(out, &model.CalendarAccess{Calendar: *cal, Level: model.LevelOwner.String()})
		}
		return out, nil
	}

	owned, err := s.Store.ListCalendarsByOwner(ctx, p.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	out := make([]*model.CalendarAccess, 0, len(owned))
	seen := make(map[string]bool, len(owned))
	for _, cal := range owned {
		out = append(out, &model.CalendarAccess{Calendar: *cal, Level: model.LevelOwner.String()})
		seen[cal.ID] = true
	}

	grants, err := s.Store.ListCalendarPermissionsByUser(ctx, p.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	levelByCalendar := make(map[string]model.Level, len(grants))
	ids := make([]string, 0, len(grants))
	for _, g := range grants {
		if seen[g.CalendarID] {
			continue
		}
		levelByCalendar[g.CalendarID] = authz.MapAccessType(g.AccessType)
		ids = append(ids, g.CalendarID)
	}

	shared, err := s.Store.ListCalendarsByIDs(ctx, ids)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	for _, cal := range shared {
		out = append(out, &model.CalendarAccess{Calendar: *cal, Level: levelByCalendar[cal.ID].String()})
	}
	return out, nil
}

func (s *Service) UpdateCalendar(ctx context.Context, p model.Principal, id string, req model.UpdateCalendarRequest) (*model.Calendar, error) {
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindCalendar, id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	cal, err := s.Store.GetCalendar(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if req.Name != nil {
		cal.Name = *req.Name
	}
	if req.IsTemplate != nil {
		cal.IsTemplate = *req.IsTemplate
	}
	cal.UpdatedAt = time.Now()

	if err := s.Store.UpdateCalendar(ctx, cal); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Calendar Updated. Caller=%s, Calendar=%s", p.ID, cal.ID)
	return cal, nil
}

// DeleteCalendar requires owner level: an invited editor can change the
// calendar but never remove it.
func (s *Service) DeleteCalendar(ctx context.Context, p model.Principal, id string) error {
	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCalendar, id); err != nil {
		return err
	}

	if err := s.Store.DeleteCalendarCascade(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	log.Printf("Audit: Calendar Deleted. Caller=%s, Calendar=%s", p.ID, id)
	return nil
}
