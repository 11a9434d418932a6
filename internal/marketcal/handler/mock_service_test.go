package handler

import (
	"context"

	"marketcal/internal/marketcal/model"

	"github.com/stretchr/testify/mock"
)

type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) GetCalendar(ctx context.Context, p model.Principal, id string) (*model.Calendar, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Calendar), args.Error(1)
}

func (m *MockCalendarService) DeleteCalendar(ctx context.Context, p model.Principal, id string) error {
	return m.Called(ctx, p, id).Error(0)
}

func (m *MockCalendarService) GetActivity(ctx context.Context, p model.Principal, id string) (*model.Activity, error) {
	args := m.Called(ctx, p, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockCalendarService) UpdateActivity(ctx context.Context, p model.Principal, id string, req model.UpdateActivityRequest) (*model.Activity, error) {
	args := m.Called(ctx, p, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockCalendarService) ListActivityHistory(ctx context.Context, p model.Principal, activityID string, limit, offset int64) ([]*model.ActivityHistory, int64, error) {
	args := m.Called(ctx, p, activityID, limit, offset)
	if args.Get(0) == nil {
		return nil, int64(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]*model.ActivityHistory), int64(args.Int(1)), args.Error(2)
}

func (m *MockCalendarService) Undo(ctx context.Context, p model.Principal, historyID string) (*model.Activity, error) {
	args := m.Called(ctx, p, historyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockCalendarService) GrantCalendarPermission(ctx context.Context, p model.Principal, calendarID string, req model.GrantPermissionRequest) (*model.CalendarPermission, error) {
	args := m.Called(ctx, p, calendarID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarPermission), args.Error(1)
}

func (m *MockCalendarService) ListCalendarPermissions(ctx context.Context, p model.Principal, calendarID string) ([]*model.CalendarPermission, error) {
	args := m.Called(ctx, p, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CalendarPermission), args.Error(1)
}

func (m *MockCalendarService) ListCampaignPermissions(ctx context.Context, p model.Principal, campaignID string) ([]*model.CampaignPermission, error) {
	args := m.Called(ctx, p, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CampaignPermission), args.Error(1)
}

func (m *MockCalendarService) ListNotifications(ctx context.Context, p model.Principal) ([]*model.Notification, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Notification), args.Error(1)
}

// Unused stubs
func (m *MockCalendarService) CreateCalendar(ctx context.Context, p model.Principal, req model.CreateCalendarRequest) (*model.Calendar, error) {
	return nil, nil
}
func (m *MockCalendarService) ListAccessibleCalendars(ctx context.Context, p model.Principal) ([]*model.CalendarAccess, error) {
	return nil, nil
}
func (m *MockCalendarService) UpdateCalendar(ctx context.Context, p model.Principal, id string, req model.UpdateCalendarRequest) (*model.Calendar, error) {
	return nil, nil
}
func (m *MockCalendarService) CreateSwimlane(ctx context.Context, p model.Principal, calendarID string, req model.CreateSwimlaneRequest) (*model.Swimlane, error) {
	return nil, nil
}
func (m *MockCalendarService) ListSwimlanes(ctx context.Context, p model.Principal, calendarID string) ([]*model.Swimlane, error) {
	return nil, nil
}
func (m *MockCalendarService) UpdateSwimlane(ctx context.Context, p model.Principal, id string, req model.UpdateSwimlaneRequest) (*model.Swimlane, error) {
	return nil, nil
}
func (m *MockCalendarService) DeleteSwimlane(ctx context.Context, p model.Principal, id string) error {
	return nil
}
func (m *MockCalendarService) CreateCampaign(ctx context.Context, p model.Principal, calendarID string, req model.CreateCampaignRequest) (*model.Campaign, error) {
	return nil, nil
}
func (m *MockCalendarService) GetCampaign(ctx context.Context, p model.Principal, id string) (*model.Campaign, error) {
	return nil, nil
}
func (m *MockCalendarService) ListCampaigns(ctx context.Context, p model.Principal, calendarID string) ([]*model.Campaign, error) {
	return nil, nil
}
func (m *MockCalendarService) UpdateCampaign(ctx context.Context, p model.Principal, id string, req model.UpdateCampaignRequest) (*model.Campaign, error) {
	return nil, nil
}
func (m *MockCalendarService) DeleteCampaign(ctx context.Context, p model.Principal, id string) error {
	return nil
}
func (m *MockCalendarService) CreateActivity(ctx context.Context, p model.Principal, calendarID string, req model.CreateActivityRequest) (*model.Activity, error) {
	return nil, nil
}
func (m *MockCalendarService) ListActivities(ctx context.Context, p model.Principal, calendarID string) ([]*model.Activity, error) {
	return nil, nil
}
func (m *MockCalendarService) DeleteActivity(ctx context.Context, p model.Principal, id string) error {
	return nil
}
func (m *MockCalendarService) ChangeCalendarPermission(ctx context.Context, p model.Principal, calendarID, userID string, req model.ChangePermissionRequest) (*model.CalendarPermission, error) {
	return nil, nil
}
func (m *MockCalendarService) RevokeCalendarPermission(ctx context.Context, p model.Principal, calendarID, userID string) error {
	return nil
}
func (m *MockCalendarService) GrantCampaignPermission(ctx context.Context, p model.Principal, campaignID string, req model.GrantPermissionRequest) (*model.CampaignPermission, error) {
	return nil, nil
}
func (m *MockCalendarService) ChangeCampaignPermission(ctx context.Context, p model.Principal, campaignID, userID string, req model.ChangePermissionRequest) (*model.CampaignPermission, error) {
	return nil, nil
}
func (m *MockCalendarService) RevokeCampaignPermission(ctx context.Context, p model.Principal, campaignID, userID string) error {
	return nil
}
func (m *MockCalendarService) MarkNotificationRead(ctx context.Context, p model.Principal, id string) error {
	return nil
}
func (m *MockCalendarService) ResolveAccess(ctx context.Context, p model.Principal, kind, id string) (model.Level, error) {
	return model.LevelNone, nil
}
