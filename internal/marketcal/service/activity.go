package service

import (
	"context"
	"log"
	"time"

	"marketcal/internal/marketcal/model"

	"github.com/google/uuid"
)

func (s *Service) CreateActivity(ctx context.Context, p model.Principal, calendarID string, req model.CreateActivityRequest) (*model.Activity, error) {
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	status := req.Status
	if status == "" {
		status = model.StatusConsidering
	}

	// The swimlane (and campaign, when given) must belong to this calendar.
	lane, err := s.Store.GetSwimlane(ctx, req.SwimlaneID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if lane.CalendarID != calendarID {
		return nil, ErrBadRequest
	}
	if req.CampaignID != "" {
		camp, err := s.Store.GetCampaign(ctx, req.CampaignID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		if camp.CalendarID != calendarID {
			return nil, ErrBadRequest
		}
	}

	now := time.Now()
	act := &model.Activity{
		ID:           uuid.NewString(),
		CalendarID:   calendarID,
		SwimlaneID:   req.SwimlaneID,
		CampaignID:   req.CampaignID,
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       status,
		Cost:         req.Cost,
		ExpectedSAOs: req.ExpectedSAOs,
		ActualSAOs:   req.ActualSAOs,
		CreatedBy:    p.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// First history record of the activity: no prior state to roll back to.
	entry := &model.ActivityHistory{
		ID:         uuid.NewString(),
		ActivityID: act.ID,
		UserID:     p.ID,
		Action:     model.HistoryCreated,
		CreatedAt:  now,
	}

	if err := s.Store.CreateActivityWithHistory(ctx, act, entry); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Activity Created. Caller=%s, Calendar=%s, Activity=%s", p.ID, calendarID, act.ID)
	return act, nil
}

func (s *Service) GetActivity(ctx context.Context, p model.Principal, id string) (*model.Activity, error) {
	if err := s.authorize(ctx, p, model.ActionView, model.KindActivity, id); err != nil {
		return nil, err
	}
	act, err := s.Store.GetActivity(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return act, nil
}

func (s *Service) ListActivities(ctx context.Context, p model.Principal, calendarID string) ([]*model.Activity, error) {
	if err := s.authorize(ctx, p, model.ActionView, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	acts, err := s.Store.ListActivities(ctx, calendarID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return acts, nil
}

// UpdateActivity snapshots the row before applying any field, then writes the
// update and its history record in one transaction. PreviousState is the full
// pre-image; the diff is advisory.
func (s *Service) UpdateActivity(ctx context.Context, p model.Principal, id string, req model.UpdateActivityRequest) (*model.Activity, error) {
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindActivity, id); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	current, err := s.Store.GetActivity(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	previous := *current

	if req.SwimlaneID != nil {
		lane, err := s.Store.GetSwimlane(ctx, *req.SwimlaneID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		if lane.CalendarID != current.CalendarID {
			return nil, ErrBadRequest
		}
		current.SwimlaneID = *req.SwimlaneID
	}
	if req.CampaignID != nil {
		if *req.CampaignID != "" {
			camp, err := s.Store.GetCampaign(ctx, *req.CampaignID)
			if err != nil {
				return nil, mapStoreErr(err)
			}
			if camp.CalendarID != current.CalendarID {
				return nil, ErrBadRequest
			}
		}
		current.CampaignID = *req.CampaignID
	}
	if req.Title != nil {
		current.Title = *req.Title
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.StartDate != nil {
		current.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		current.EndDate = *req.EndDate
	}
	if current.EndDate.Before(current.StartDate) {
		return nil, ErrBadRequest
	}
	if req.Status != nil {
		current.Status = *req.Status
	}
	if req.Cost != nil {
		current.Cost = *req.Cost
	}
	if req.ExpectedSAOs != nil {
		current.ExpectedSAOs = *req.ExpectedSAOs
	}
	if req.ActualSAOs != nil {
		current.ActualSAOs = *req.ActualSAOs
	}
	current.UpdatedAt = time.Now()

	entry := &model.ActivityHistory{
		ID:            uuid.NewString(),
		ActivityID:    current.ID,
		UserID:        p.ID,
		Action:        model.HistoryUpdated,
		Changes:       model.DiffActivities(&previous, current),
		PreviousState: &previous,
		CreatedAt:     current.UpdatedAt,
	}

	if err := s.Store.UpdateActivityWithHistory(ctx, current, entry); err != nil {
		return nil, mapStoreErr(err)
	}

	log.Printf("Audit: Activity Updated. Caller=%s, Activity=%s", p.ID, current.ID)
	return current, nil
}

// DeleteActivity captures the full row before removal; the snapshot is what a
// later undo re-inserts.
func (s *Service) DeleteActivity(ctx context.Context, p model.Principal, id string) error {
	if err := s.authorize(ctx, p, model.ActionEdit, model.KindActivity, id); err != nil {
		return err
	}

	current, err := s.Store.GetActivity(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}

	entry := &model.ActivityHistory{
		ID:            uuid.NewString(),
		ActivityID:    id,
		UserID:        p.ID,
		Action:        model.HistoryDeleted,
		PreviousState: current,
		CreatedAt:     time.Now(),
	}

	if err := s.Store.DeleteActivityWithHistory(ctx, id, entry); err != nil {
		return mapStoreErr(err)
	}

	log.Printf("Audit: Activity Deleted. Caller=%s, Activity=%s", p.ID, id)
	return nil
}

func (s *Service) ListActivityHistory(ctx context.Context, p model.Principal, activityID string, limit, offset int64) ([]*model.ActivityHistory, int64, error) {
	if err := s.authorize(ctx, p, model.ActionView, model.KindActivity, activityID); err != nil {
		return nil, 0, err
	}
	entries, total, err := s.History.ListActivityHistory(ctx, activityID, limit, offset)
	if err != nil {
		return nil, 0, mapStoreErr(err)
	}
	return entries, total, nil
}
