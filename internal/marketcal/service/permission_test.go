package service

import (
	"context"
	"errors"
	"testing"

	"marketcal/internal/marketcal/model"
	"marketcal/internal/marketcal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGrantCalendarPermissionNotifiesGrantee(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	svc := newTestService(store, notifier)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("CreateCalendarPermission", mock.Anything, mock.Anything).Return(nil)

	var sent *model.Notification
	notifier.On("Notify", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*model.Notification)
		}).Return(nil)

	perm, err := svc.GrantCalendarPermission(context.Background(), owner, "cal-1", model.GrantPermissionRequest{
		UserID:     "colleague-1",
		AccessType: model.AccessEdit,
	})

	assert.NoError(t, err)
	assert.Equal(t, "colleague-1", perm.UserID)
	assert.Equal(t, model.AccessEdit, perm.AccessType)

	assert.Equal(t, "colleague-1", sent.UserID)
	assert.Equal(t, model.NotifyPermissionGranted, sent.Type)
	assert.Equal(t, "cal-1", sent.RelatedID)
}

func TestGrantCalendarPermissionDuplicateConflict(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	svc := newTestService(store, notifier)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("CreateCalendarPermission", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := svc.GrantCalendarPermission(context.Background(), owner, "cal-1", model.GrantPermissionRequest{
		UserID:     "colleague-1",
		AccessType: model.AccessView,
	})

	assert.ErrorIs(t, err, ErrConflict)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestGrantCalendarPermissionByEditorForbidden(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	editor := model.Principal{ID: "editor-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("GetCalendarPermission", mock.Anything, "cal-1", "editor-1").
		Return(&model.CalendarPermission{CalendarID: "cal-1", UserID: "editor-1", AccessType: model.AccessEdit}, nil)

	_, err := svc.GrantCalendarPermission(context.Background(), editor, "cal-1", model.GrantPermissionRequest{
		UserID:     "colleague-1",
		AccessType: model.AccessView,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "CreateCalendarPermission", mock.Anything, mock.Anything)
}

func TestGrantToCalendarOwnerRejected(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)

	_, err := svc.GrantCalendarPermission(context.Background(), owner, "cal-1", model.GrantPermissionRequest{
		UserID:     "owner-1",
		AccessType: model.AccessView,
	})

	assert.ErrorIs(t, err, ErrBadRequest)
	store.AssertNotCalled(t, "CreateCalendarPermission", mock.Anything, mock.Anything)
}

func TestNotifierFailureDoesNotFailGrant(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	svc := newTestService(store, notifier)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("CreateCalendarPermission", mock.Anything, mock.Anything).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	perm, err := svc.GrantCalendarPermission(context.Background(), owner, "cal-1", model.GrantPermissionRequest{
		UserID:     "colleague-1",
		AccessType: model.AccessCopy,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.AccessCopy, perm.AccessType)
}

func TestChangeCalendarPermissionMissingGrant(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	admin := model.Principal{ID: "adm-1", Role: model.RoleAdmin}

	store.On("UpdateCalendarPermission", mock.Anything, "cal-1", "colleague-1", model.AccessEdit).
		Return(nil, repository.ErrNotFound)

	_, err := svc.ChangeCalendarPermission(context.Background(), admin, "cal-1", "colleague-1", model.ChangePermissionRequest{
		AccessType: model.AccessEdit,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevokeCalendarPermissionNotifies(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	svc := newTestService(store, notifier)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("DeleteCalendarPermission", mock.Anything, "cal-1", "colleague-1").
		Return(&model.CalendarPermission{CalendarID: "cal-1", UserID: "colleague-1", AccessType: model.AccessView}, nil)

	var sent *model.Notification
	notifier.On("Notify", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*model.Notification)
		}).Return(nil)

	err := svc.RevokeCalendarPermission(context.Background(), owner, "cal-1", "colleague-1")

	assert.NoError(t, err)
	assert.Equal(t, model.NotifyPermissionRevoked, sent.Type)
	assert.Equal(t, "colleague-1", sent.UserID)
}

func TestGrantCampaignPermissionRequiresCampaignOwnerLevel(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	collaborator := model.Principal{ID: "collab-1", Role: model.RoleUser}

	// An edit grant on the campaign is not enough to manage its permissions.
	store.On("GetCampaign", mock.Anything, "camp-1").
		Return(&model.Campaign{ID: "camp-1", CalendarID: "cal-1", Name: "Spring push"}, nil)
	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("GetCampaignPermission", mock.Anything, "camp-1", "collab-1").
		Return(&model.CampaignPermission{CampaignID: "camp-1", UserID: "collab-1", AccessType: model.AccessEdit}, nil)
	store.On("GetCalendarPermission", mock.Anything, "cal-1", "collab-1").Return(nil, nil)

	_, err := svc.GrantCampaignPermission(context.Background(), collaborator, "camp-1", model.GrantPermissionRequest{
		UserID:     "colleague-1",
		AccessType: model.AccessView,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "CreateCampaignPermission", mock.Anything, mock.Anything)
}

func TestGrantCampaignPermissionByCalendarOwner(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	svc := newTestService(store, notifier)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCampaign", mock.Anything, "camp-1").
		Return(&model.Campaign{ID: "camp-1", CalendarID: "cal-1", Name: "Spring push"}, nil)
	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)

	var created *model.CampaignPermission
	store.On("CreateCampaignPermission", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.CampaignPermission)
		}).Return(nil)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

	perm, err := svc.GrantCampaignPermission(context.Background(), owner, "camp-1", model.GrantPermissionRequest{
		UserID:     "colleague-1",
		AccessType: model.AccessView,
	})

	assert.NoError(t, err)
	assert.Equal(t, "owner-1", perm.InvitedBy)
	assert.Equal(t, created, perm)
}

func TestListCalendarPermissionsByOwner(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("ListCalendarPermissions", mock.Anything, "cal-1").
		Return([]*model.CalendarPermission{
			{CalendarID: "cal-1", UserID: "colleague-1", AccessType: model.AccessEdit},
			{CalendarID: "cal-1", UserID: "colleague-2", AccessType: model.AccessView},
		}, nil)

	perms, err := svc.ListCalendarPermissions(context.Background(), owner, "cal-1")

	assert.NoError(t, err)
	assert.Len(t, perms, 2)
	assert.Equal(t, "colleague-1", perms[0].UserID)
}

func TestListCalendarPermissionsByEditorForbidden(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	editor := model.Principal{ID: "editor-1", Role: model.RoleUser}

	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("GetCalendarPermission", mock.Anything, "cal-1", "editor-1").
		Return(&model.CalendarPermission{CalendarID: "cal-1", UserID: "editor-1", AccessType: model.AccessEdit}, nil)

	_, err := svc.ListCalendarPermissions(context.Background(), editor, "cal-1")

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "ListCalendarPermissions", mock.Anything, mock.Anything)
}

func TestListCampaignPermissionsByCalendarOwner(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)
	owner := model.Principal{ID: "owner-1", Role: model.RoleUser}

	store.On("GetCampaign", mock.Anything, "camp-1").
		Return(&model.Campaign{ID: "camp-1", CalendarID: "cal-1", Name: "Spring push"}, nil)
	store.On("GetCalendar", mock.Anything, "cal-1").Return(ownedCalendar("cal-1", "owner-1"), nil)
	store.On("ListCampaignPermissions", mock.Anything, "camp-1").
		Return([]*model.CampaignPermission{
			{CampaignID: "camp-1", UserID: "collab-1", AccessType: model.AccessCopy},
		}, nil)

	perms, err := svc.ListCampaignPermissions(context.Background(), owner, "camp-1")

	assert.NoError(t, err)
	assert.Len(t, perms, 1)
	assert.Equal(t, model.AccessCopy, perms[0].AccessType)
}

func TestListNotificationsRequiresPrincipal(t *testing.T) {
	store := new(MockStore)
	svc := newTestService(store, nil)

	_, err := svc.ListNotifications(context.Background(), model.Principal{})

	assert.ErrorIs(t, err, ErrUnauthorized)
}
