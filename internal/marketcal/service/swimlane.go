package service

import (
	"context"
	"log"
	"time"

	"marketcal/internal/marketcal/model"

	"github.com/google/uuid"
)

func (s *Service) CreateSwimlane(ctx context.Context, p model.Principal, calendarID string, req model.CreateSwimlaneRequest) (*model.Swimlane, error) {
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	now := time.Now()
	lane := &model.Swimlane{
		ID:         uuid.NewString(),
		CalendarID: calendarID,
		Name:       req.Name,
		Budget:     req.Budget,
		SortOrder:  req.SortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.CreateSwimlane(ctx, lane); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Swimlane Created. Caller=%s, Calendar=%s, Swimlane=%s", p.ID, calendarID, lane.ID)
	return lane, nil
}

func (s *Service) ListSwimlanes(ctx context.Context, p model.Principal, calendarID string) ([]*model.Swimlane, error) {
	if err := s.authorize(ctx, p, model.ActionView, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	lanes, err := s.Store.ListSwimlanes(ctx, calendarID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return lanes, nil
}

func (s *Service) UpdateSwimlane(ctx context.Context, p model.Principal, id string, req model.UpdateSwimlaneRequest) (*model.Swimlane, error) {
	// Swimlanes carry no grants; the gate resolves against the root calendar.
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindSwimlane, id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	lane, err := s.Store.GetSwimlane(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	if req.Name != nil {
		lane.Name = *req.Name
	}
	if req.Budget != nil {
		lane.Budget = *req.Budget
	}
	if req.SortOrder != nil {
		lane.SortOrder = *req.SortOrder
	}
	lane.UpdatedAt = time.Now()

	if err := s.Store.UpdateSwimlane(ctx, lane); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Swimlane Updated. Caller=%s, Swimlane=%s", p.ID, lane.ID)
	return lane, nil
}

// DeleteSwimlane needs calendar edit, not owner: lanes are workaday structure,
// unlike the calendar itself.
func (s *Service) DeleteSwimlane(ctx context.Context, p model.Principal, id string) error {
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindSwimlane, id); err != nil {
		return err
	}

	if err := s.Store.DeleteSwimlaneCascade(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	log.Printf("Audit: Swimlane Deleted. Caller=%s, Swimlane=%s", p.ID, id)
	return nil
}
