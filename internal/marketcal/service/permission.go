package service

import (
	"context"
	"log"
	"strings"
	"time"

	"marketcal/internal/marketcal/model"

	"github.com/google/uuid"
)

// Permission management requires owner level on the target resource: only the
// owner (or an elevated role) decides who else gets in.

func (s *Service) GrantCalendarPermission(ctx context.Context, p model.Principal, calendarID string, req model.GrantPermissionRequest) (*model.CalendarPermission, error) {
	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	cal, err := s.Store.GetCalendar(ctx, calendarID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	// The owner needs no grant; a self-grant would only mask ownership.
	if req.UserID == cal.OwnerID {
		return nil, ErrBadRequest
	}

	perm := &model.CalendarPermission{
		ID:         uuid.NewString(),
		CalendarID: calendarID,
		UserID:     req.UserID,
		AccessType: req.AccessType,
		CreatedAt:  time.Now(),
	}

	if err := s.Store.CreateCalendarPermission(ctx, perm); err != nil {
		return nil, mapStoreErr(err)
	}

	s.notify(ctx, &model.Notification{
		UserID:      req.UserID,
		Type:        model.NotifyPermissionGranted,
		Title:       "Calendar shared with you",
		Message:     "You were given " + req.AccessType + " access to calendar \"" + cal.Name + "\"",
		RelatedType: model.KindCalendar,
		RelatedID:   calendarID,
	})

	log.Printf("Audit: Calendar Permission Granted. Caller=%s, Target=%s, Calendar=%s, Access=%s", p.ID, req.UserID, calendarID, req.AccessType)
	return perm, nil
}

func (s *Service) ChangeCalendarPermission(ctx context.Context, p model.Principal, calendarID, userID string, req model.ChangePermissionRequest) (*model.CalendarPermission, error) {
	userID = strings.TrimSpace(userID)

	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	perm, err := s.Store.UpdateCalendarPermission(ctx, calendarID, userID, req.AccessType)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.notify(ctx, &model.Notification{
		UserID:      userID,
		Type:        model.NotifyPermissionChanged,
		Title:       "Calendar access changed",
		Message:     "Your calendar access level is now " + req.AccessType,
		RelatedType: model.KindCalendar,
		RelatedID:   calendarID,
	})

	log.Printf("Audit: Calendar Permission Changed. Caller=%s, Target=%s, Calendar=%s, Access=%s", p.ID, userID, calendarID, req.AccessType)
	return perm, nil
}

func (s *Service) RevokeCalendarPermission(ctx context.Context, p model.Principal, calendarID, userID string) error {
	userID = strings.TrimSpace(userID)

	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCalendar, calendarID); err != nil {
		return err
	}
	if userID == "" {
		return ErrBadRequest
	}

	if _, err := s.Store.DeleteCalendarPermission(ctx, calendarID, userID); err != nil {
		return mapStoreErr(err)
	}

	s.notify(ctx, &model.Notification{
		UserID:      userID,
		Type:        model.NotifyPermissionRevoked,
		Title:       "Calendar access removed",
		Message:     "Your access to a shared calendar was revoked",
		RelatedType: model.KindCalendar,
		RelatedID:   calendarID,
	})

	log.Printf("Audit: Calendar Permission Revoked. Caller=%s, Target=%s, Calendar=%s", p.ID, userID, calendarID)
	return nil
}

func (s *Service) GrantCampaignPermission(ctx context.Context, p model.Principal, campaignID string, req model.GrantPermissionRequest) (*model.CampaignPermission, error) {
	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCampaign, campaignID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	camp, err := s.Store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	perm := &model.CampaignPermission{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		UserID:     req.UserID,
		AccessType: req.AccessType,
		InvitedBy:  p.ID,
		CreatedAt:  time.Now(),
	}

	if err := s.Store.CreateCampaignPermission(ctx, perm); err != nil {
		return nil, mapStoreErr(err)
	}

	s.notify(ctx, &model.Notification{
		UserID:      req.UserID,
		Type:        model.NotifyPermissionGranted,
		Title:       "Campaign shared with you",
		Message:     "You were given " + req.AccessType + " access to campaign \"" + camp.Name + "\"",
		RelatedType: model.KindCampaign,
		RelatedID:   campaignID,
	})

	log.Printf("Audit: Campaign Permission Granted. Caller=%s, Target=%s, Campaign=%s, Access=%s", p.ID, req.UserID, campaignID, req.AccessType)
	return perm, nil
}

func (s *Service) ChangeCampaignPermission(ctx context.Context, p model.Principal, campaignID, userID string, req model.ChangePermissionRequest) (*model.CampaignPermission, error) {
	userID = strings.TrimSpace(userID)

	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCampaign, campaignID); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, ErrBadRequest
	}
	if err := req.Validate(); err != nil {
		return nil, ErrBadRequest
	}

	perm, err := s.Store.UpdateCampaignPermission(ctx, campaignID, userID, req.AccessType)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	s.notify(ctx, &model.Notification{
		UserID:      userID,
		Type:        model.NotifyPermissionChanged,
		Title:       "Campaign access changed",
		Message:     "Your campaign access level is now " + req.AccessType,
		RelatedType: model.KindCampaign,
		RelatedID:   campaignID,
	})

	log.Printf("Audit: Campaign Permission Changed. Caller=%s, Target=%s, Campaign=%s, Access=%s", p.ID, userID, campaignID, req.AccessType)
	return perm, nil
}

func (s *Service) RevokeCampaignPermission(ctx context.Context, p model.Principal, campaignID, userID string) error {
	userID = strings.TrimSpace(userID)

	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCampaign, campaignID); err != nil {
		return err
	}
	if userID == "" {
		return ErrBadRequest
	}

	if _, err := s.Store.DeleteCampaignPermission(ctx, campaignID, userID); err != nil {
		return mapStoreErr(err)
	}

	s.notify(ctx, &model.Notification{
		UserID:      userID,
		Type:        model.NotifyPermissionRevoked,
		Title:       "Campaign access removed",
		Message:     "Your access to a shared campaign was revoked",
		RelatedType: model.KindCampaign,
		RelatedID:   campaignID,
	})

	log.Printf("Audit: Campaign Permission Revoked. Caller=%s, Target=%s, Campaign=%s", p.ID, userID, campaignID)
	return nil
}

// ListCalendarPermissions returns every grant on the calendar. Reading the
// grant list is owner-level, like the rest of permission management.
func (s *Service) ListCalendarPermissions(ctx context.Context, p model.Principal, calendarID string) ([]*model.CalendarPermission, error) {
	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCalendar, calendarID); err != nil {
		return nil, err
	}
	perms, err := s.Store.ListCalendarPermissions(ctx, calendarID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return perms, nil
}

func (s *Service) ListCampaignPermissions(ctx context.Context, p model.Principal, campaignID string) ([]*model.CampaignPermission, error) {
	if err := s.authorize(ctx, p, model.ActionDelete, model.KindCampaign, campaignID); err != nil {
		return nil, err
	}
	perms, err := s.Store.ListCampaignPermissions(ctx, campaignID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return perms, nil
}

// notify is fire-and-forget: a dead notification sink must never fail the
// permission change that produced the event.
func (s *Service) notify(ctx context.Context, n *model.Notification) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, n); err != nil {
		log.Printf("Warn: notification delivery failed. Target=%s, Type=%s, Err=%v", n.UserID, n.Type, err)
	}
}

func (s *Service) ListNotifications(ctx context.Context, p model.Principal) ([]*model.Notification, error) {
	if p.ID == "" {
		return nil, ErrUnauthorized
	}
	notifs, err := s.Notifs.ListNotificationsByUser(ctx, p.ID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return notifs, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, p model.Principal, id string) error {
	if p.ID == "" {
		return ErrUnauthorized
	}
	if err := s.Notifs.MarkNotificationRead(ctx, id, p.ID); err != nil {
		return mapStoreErr(err)
	}
	return nil
}
