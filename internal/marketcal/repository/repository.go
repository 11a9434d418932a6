package repository

import (
	"context"
	"errors"

	"marketcal/internal/marketcal/model"
)

var (
	ErrDuplicate  = errors.New("duplicate record")
	ErrNotFound   = errors.New("record not found")
	ErrForeignKey = errors.New("foreign key violation")
)

// Store is the row-level storage collaborator. Resource getters return
// ErrNotFound when the row is absent; permission getters return (nil, nil)
// instead, since a missing grant is the normal case, not a failure.
type Store interface {
	// Calendars
	CreateCalendar(ctx context.Context, cal *model.Calendar) error
	GetCalendar(ctx context.Context, id string) (*model.Calendar, error)
	ListCalendars(ctx context.Context) ([]*model.Calendar, error)
	ListCalendarsByOwner(ctx context.Context, ownerID string) ([]*model.Calendar, error)
	ListCalendarsByIDs(ctx context.Context, ids []string) ([]*model.Calendar, error)
	UpdateCalendar(ctx context.Context, cal *model.Calendar) error
	// Cascades to swimlanes, campaigns, activities and both permission collections.
	DeleteCalendarCascade(ctx context.Context, id string) error

	// Swimlanes
	CreateSwimlane(ctx context.Context, lane *model.Swimlane) error
	GetSwimlane(ctx context.Context, id string) (*model.Swimlane, error)
	ListSwimlanes(ctx context.Context, calendarID string) ([]*model.Swimlane, error)
	UpdateSwimlane(ctx context.Context, lane *model.Swimlane) error
	// Cascades to the lane's activities.
	DeleteSwimlaneCascade(ctx context.Context, id string) error

	// Campaigns
	CreateCampaign(ctx context.Context, camp *model.Campaign) error
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	ListCampaigns(ctx context.Context, calendarID string) ([]*model.Campaign, error)
	UpdateCampaign(ctx context.Context, camp *model.Campaign) error
	DeleteCampaign(ctx context.Context, id string) error

	// Activities. Mutations write the activity and its history record in one
	// transaction: both land or neither does.
	GetActivity(ctx context.Context, id string) (*model.Activity, error)
	ListActivities(ctx context.Context, calendarID string) ([]*model.Activity, error)
	CreateActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error
	UpdateActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error
	DeleteActivityWithHistory(ctx context.Context, id string, entry *model.ActivityHistory) error
	// RestoreActivityWithHistory re-inserts a previously deleted activity under
	// its original id. Parents are verified inside the transaction; a missing
	// swimlane/calendar/campaign yields ErrForeignKey.
	RestoreActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error
	OverwriteActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error

	// Calendar permissions
	CreateCalendarPermission(ctx context.Context, perm *model.CalendarPermission) error
	GetCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error)
	ListCalendarPermissions(ctx context.Context, calendarID string) ([]*model.CalendarPermission, error)
	ListCalendarPermissionsByUser(ctx context.Context, userID string) ([]*model.CalendarPermission, error)
	UpdateCalendarPermission(ctx context.Context, calendarID, userID, accessType string) (*model.CalendarPermission, error)
	DeleteCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error)

	// Campaign permissions
	CreateCampaignPermission(ctx context.Context, perm *model.CampaignPermission) error
	GetCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error)
	ListCampaignPermissions(ctx context.Context, campaignID string) ([]*model.CampaignPermission, error)
	UpdateCampaignPermission(ctx context.Context, campaignID, userID, accessType string) (*model.CampaignPermission, error)
	DeleteCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error)

	// Initialize Indexes
	EnsureIndexes(ctx context.Context) error
}

// HistoryRepository reads the append-only activity history log. Writes only
// happen through the Store's *WithHistory transaction methods; nothing ever
// mutates or deletes an existing record.
type HistoryRepository interface {
	GetHistoryEntry(ctx context.Context, id string) (*model.ActivityHistory, error)
	// ListActivityHistory returns entries newest first with total count.
	ListActivityHistory(ctx context.Context, activityID string, limit, offset int64) ([]*model.ActivityHistory, int64, error)
	EnsureHistoryIndexes(ctx context.Context) error
}

// NotificationRepository persists the observable side effects of permission
// transitions.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotificationsByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error
}
