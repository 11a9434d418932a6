package service

import (
	"context"

	"marketcal/internal/marketcal/model"

	"github.com/stretchr/testify/mock"
)

// MockStore implements repository.Store plus the history and notification
// repositories for service tests. Methods the tests never hit are plain
// stubs, same as the resolver-side mocks.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetCalendar(ctx context.Context, id string) (*model.Calendar, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Calendar), args.Error(1)
}

func (m *MockStore) GetSwimlane(ctx context.Context, id string) (*model.Swimlane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Swimlane), args.Error(1)
}

func (m *MockStore) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockStore) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockStore) GetCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error) {
	args := m.Called(ctx, calendarID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarPermission), args.Error(1)
}

func (m *MockStore) GetCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error) {
	args := m.Called(ctx, campaignID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CampaignPermission), args.Error(1)
}

func (m *MockStore) CreateActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	return m.Called(ctx, act, entry).Error(0)
}

func (m *MockStore) UpdateActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	return m.Called(ctx, act, entry).Error(0)
}

func (m *MockStore) DeleteActivityWithHistory(ctx context.Context, id string, entry *model.ActivityHistory) error {
	return m.Called(ctx, id, entry).Error(0)
}

func (m *MockStore) RestoreActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	return m.Called(ctx, act, entry).Error(0)
}

func (m *MockStore) OverwriteActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	return m.Called(ctx, act, entry).Error(0)
}

func (m *MockStore) CreateCalendarPermission(ctx context.Context, perm *model.CalendarPermission) error {
	return m.Called(ctx, perm).Error(0)
}

func (m *MockStore) UpdateCalendarPermission(ctx context.Context, calendarID, userID, accessType string) (*model.CalendarPermission, error) {
	args := m.Called(ctx, calendarID, userID, accessType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarPermission), args.Error(1)
}

func (m *MockStore) DeleteCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error) {
	args := m.Called(ctx, calendarID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CalendarPermission), args.Error(1)
}

func (m *MockStore) CreateCampaignPermission(ctx context.Context, perm *model.CampaignPermission) error {
	return m.Called(ctx, perm).Error(0)
}

func (m *MockStore) ListCalendarsByOwner(ctx context.Context, ownerID string) ([]*model.Calendar, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Calendar), args.Error(1)
}

func (m *MockStore) ListCalendarPermissionsByUser(ctx context.Context, userID string) ([]*model.CalendarPermission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CalendarPermission), args.Error(1)
}

func (m *MockStore) ListCalendarsByIDs(ctx context.Context, ids []string) ([]*model.Calendar, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Calendar), args.Error(1)
}

func (m *MockStore) ListCalendarPermissions(ctx context.Context, calendarID string) ([]*model.CalendarPermission, error) {
	args := m.Called(ctx, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CalendarPermission), args.Error(1)
}

func (m *MockStore) ListCampaignPermissions(ctx context.Context, campaignID string) ([]*model.CampaignPermission, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CampaignPermission), args.Error(1)
}

func (m *MockStore) GetHistoryEntry(ctx context.Context, id string) (*model.ActivityHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActivityHistory), args.Error(1)
}

func (m *MockStore) ListActivityHistory(ctx context.Context, activityID string, limit, offset int64) ([]*model.ActivityHistory, int64, error) {
	args := m.Called(ctx, activityID, limit, offset)
	if args.Get(0) == nil {
		return nil, int64(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]*model.ActivityHistory), int64(args.Int(1)), args.Error(2)
}

// Unused stubs
func (m *MockStore) CreateCalendar(ctx context.Context, cal *model.Calendar) error { return nil }
func (m *MockStore) ListCalendars(ctx context.Context) ([]*model.Calendar, error)  { return nil, nil }
func (m *MockStore) UpdateCalendar(ctx context.Context, cal *model.Calendar) error { return nil }
func (m *MockStore) DeleteCalendarCascade(ctx context.Context, id string) error    { return nil }
func (m *MockStore) CreateSwimlane(ctx context.Context, lane *model.Swimlane) error {
	return nil
}
func (m *MockStore) ListSwimlanes(ctx context.Context, calendarID string) ([]*model.Swimlane, error) {
	return nil, nil
}
func (m *MockStore) UpdateSwimlane(ctx context.Context, lane *model.Swimlane) error { return nil }
func (m *MockStore) DeleteSwimlaneCascade(ctx context.Context, id string) error     { return nil }
func (m *MockStore) CreateCampaign(ctx context.Context, camp *model.Campaign) error { return nil }
func (m *MockStore) ListCampaigns(ctx context.Context, calendarID string) ([]*model.Campaign, error) {
	return nil, nil
}
func (m *MockStore) UpdateCampaign(ctx context.Context, camp *model.Campaign) error { return nil }
func (m *MockStore) DeleteCampaign(ctx context.Context, id string) error            { return nil }
func (m *MockStore) ListActivities(ctx context.Context, calendarID string) ([]*model.Activity, error) {
	return nil, nil
}
func (m *MockStore) UpdateCampaignPermission(ctx context.Context, campaignID, userID, accessType string) (*model.CampaignPermission, error) {
	return nil, nil
}
func (m *MockStore) DeleteCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error) {
	return nil, nil
}
func (m *MockStore) EnsureIndexes(ctx context.Context) error        { return nil }
func (m *MockStore) EnsureHistoryIndexes(ctx context.Context) error { return nil }
func (m *MockStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	return nil
}
func (m *MockStore) ListNotificationsByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return nil, nil
}
func (m *MockStore) MarkNotificationRead(ctx context.Context, id, userID string) error { return nil }

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n *model.Notification) error {
	return m.Called(ctx, n).Error(0)
}
