package service

import (
	"context"
	"errors"

	"marketcal/internal/marketcal/authz"
	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/notify"
	"marketcal/internal/marketcal/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict: duplicate record")
	ErrForeignKey   = errors.New("foreign key violation: parent no longer exists")
	ErrInvalid      = errors.New("invalid: nothing to undo")
	ErrBadRequest   = errors.New("bad request")
)

// CalendarService is the inbound contract the HTTP layer consumes.
type CalendarService interface {
	CreateCalendar(ctx context.Context, p model.Principal, req model.CreateCalendarRequest) (*model.Calendar, error)
	GetCalendar(ctx context.Context, p model.Principal, id string) (*model.Calendar, error)
	ListAccessibleCalendars(ctx context.Context, p model.Principal) ([]*model.CalendarAccess, error)
	UpdateCalendar(ctx context.Context, p model.Principal, id string, req model.UpdateCalendarRequest) (*model.Calendar, error)
	DeleteCalendar(ctx context.Context, p model.Principal, id string) error

	CreateSwimlane(ctx context.Context, p model.Principal, calendarID string, req model.CreateSwimlaneRequest) (*model.Swimlane, error)
	ListSwimlanes(ctx context.Context, p model.Principal, calendarID string) ([]*model.Swimlane, error)
	UpdateSwimlane(ctx context.Context, p model.Principal, id string, req model.UpdateSwimlaneRequest) (*model.Swimlane, error)
	DeleteSwimlane(ctx context.Context, p model.Principal, id string) error

	CreateCampaign(ctx context.Context, p model.Principal, calendarID string, req model.CreateCampaignRequest) (*model.Campaign, error)
	GetCampaign(ctx context.Context, p model.Principal, id string) (*model.Campaign, error)
	ListCampaigns(ctx context.Context, p model.Principal, calendarID string) ([]*model.Campaign, error)
	UpdateCampaign(ctx context.Context, p model.Principal, id string, req model.UpdateCampaignRequest) (*model.Campaign, error)
	DeleteCampaign(ctx context.Context, p model.Principal, id string) error

	CreateActivity(ctx context.Context, p model.Principal, calendarID string, req model.CreateActivityRequest) (*model.Activity, error)
	GetActivity(ctx context.Context, p model.Principal, id string) (*model.Activity, error)
	ListActivities(ctx context.Context, p model.Principal, calendarID string) ([]*model.Activity, error)
	UpdateActivity(ctx context.Context, p model.Principal, id string, req model.UpdateActivityRequest) (*model.Activity, error)
	DeleteActivity(ctx context.Context, p model.Principal, id string) error

	ListCalendarPermissions(ctx context.Context, p model.Principal, calendarID string) ([]*model.CalendarPermission, error)
	GrantCalendarPermission(ctx context.Context, p model.Principal, calendarID string, req model.GrantPermissionRequest) (*model.CalendarPermission, error)
	ChangeCalendarPermission(ctx context.Context, p model.Principal, calendarID, userID string, req model.ChangePermissionRequest) (*model.CalendarPermission, error)
	RevokeCalendarPermission(ctx context.Context, p model.Principal, calendarID, userID string) error
	ListCampaignPermissions(ctx context.Context, p model.Principal, campaignID string) ([]*model.CampaignPermission, error)
	GrantCampaignPermission(ctx context.Context, p model.Principal, campaignID string, req model.GrantPermissionRequest) (*model.CampaignPermission, error)
	ChangeCampaignPermission(ctx context.Context, p model.Principal, campaignID, userID string, req model.ChangePermissionRequest) (*model.CampaignPermission, error)
	RevokeCampaignPermission(ctx context.Context, p model.Principal, campaignID, userID string) error

	ListActivityHistory(ctx context.Context, p model.Principal, activityID string, limit, offset int64) ([]*model.ActivityHistory, int64, error)
	Undo(ctx context.Context, p model.Principal, historyID string) (*model.Activity, error)

	ListNotifications(ctx context.Context, p model.Principal) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, p model.Principal, id string) error

	ResolveAccess(ctx context.Context, p model.Principal, kind, id string) (model.Level, error)
}

type Service struct {
	Store    repository.Store
	History  repository.HistoryRepository
	Notifs   repository.NotificationRepository
	Resolver *authz.Resolver
	Gate     *authz.Gate
	Notifier notify.Notifier
}

func NewService(store repository.Store, history repository.HistoryRepository, notifs repository.NotificationRepository, resolver *authz.Resolver, notifier notify.Notifier) *Service {
	return &Service{
		Store:    store,
		History:  history,
		Notifs:   notifs,
		Resolver: resolver,
		Gate:     authz.NewGate(resolver),
		Notifier: notifier,
	}
}

// ResolveAccess exposes the raw level for callers that need more than a
// boolean, e.g. the accessible-calendars listing.
func (s *Service) ResolveAccess(ctx context.Context, p model.Principal, kind, id string) (model.Level, error) {
	if p.ID == "" {
		return model.LevelNone, ErrUnauthorized
	}
	level, err := s.Resolver.ResolveAccess(ctx, p, kind, id)
	if err != nil {
		return model.LevelNone, mapStoreErr(err)
	}
	return level, nil
}

// authorize runs the single gate check for an operation and folds the outcome
// into the service error taxonomy.
func (s *Service) authorize(ctx context.Context, p model.Principal, action, kind, id string) error {
	if p.ID == "" {
		return ErrUnauthorized
	}
	decision, err := s.Gate.Authorize(ctx, p, action, kind, id)
	if err != nil {
		return mapStoreErr(err)
	}
	if !decision.Allowed {
		return ErrForbidden
	}
	return nil
}

// mapStoreErr classifies storage errors so they never escape raw.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	case errors.Is(err, repository.ErrForeignKey):
		return ErrForeignKey
	default:
		return err
	}
}
