package authz

import (
	"context"
	"fmt"

	"marketcal/internal/marketcal/model"
)

// Store is the narrow storage surface the resolver reads. Resource getters
// return an error when the row is absent; permission getters return (nil, nil)
// for a missing grant.
type Store interface {
	GetCalendar(ctx context.Context, id string) (*model.Calendar, error)
	GetSwimlane(ctx context.Context, id string) (*model.Swimlane, error)
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	GetActivity(ctx context.Context, id string) (*model.Activity, error)
	GetCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error)
	GetCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error)
}

// Resolver computes the effective access level of a principal on a resource.
// It is the single owner of the role-escalation and grant-lookup rules; no
// other package repeats them.
type Resolver struct {
	Store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{Store: store}
}

// ResolveAccess combines role escalation, ownership and explicit grants.
// Manager/Admin short-circuit to owner level with no store lookup. Swimlanes
// and activities carry no grants of their own and resolve against the root
// calendar; campaigns additionally honor a campaign-scoped grant.
func (r *Resolver) ResolveAccess(ctx context.Context, p model.Principal, kind, id string) (model.Level, error) {
	if p.Elevated() {
		return model.LevelOwner, nil
	}

	switch kind {
	case model.KindCalendar:
		cal, err := r.Store.GetCalendar(ctx, id)
		if err != nil {
			return model.LevelNone, err
		}
		return r.calendarLevel(ctx, p, cal)

	case model.KindSwimlane:
		lane, err := r.Store.GetSwimlane(ctx, id)
		if err != nil {
			return model.LevelNone, err
		}
		return r.rootCalendarLevel(ctx, p, lane.CalendarID)

	case model.KindActivity:
		act, err := r.Store.GetActivity(ctx, id)
		if err != nil {
			return model.LevelNone, err
		}
		return r.rootCalendarLevel(ctx, p, act.CalendarID)

	case model.KindCampaign:
		return r.campaignLevel(ctx, p, id)

	default:
		return model.LevelNone, fmt.Errorf("unknown resource kind: %s", kind)
	}
}

func (r *Resolver) rootCalendarLevel(ctx context.Context, p model.Principal, calendarID string) (model.Level, error) {
	cal, err := r.Store.GetCalendar(ctx, calendarID)
	if err != nil {
		return model.LevelNone, err
	}
	return r.calendarLevel(ctx, p, cal)
}

func (r *Resolver) calendarLevel(ctx context.Context, p model.Principal, cal *model.Calendar) (model.Level, error) {
	if cal.OwnerID == p.ID {
		return model.LevelOwner, nil
	}

	perm, err := r.Store.GetCalendarPermission(ctx, cal.ID, p.ID)
	if err != nil {
		return model.LevelNone, err
	}
	if perm != nil {
		return MapAccessType(perm.AccessType), nil
	}
	return model.LevelNone, nil
}

// campaignLevel checks ownership of the root calendar first (a grant can never
// restrict the owner), then the campaign-scoped grant, then falls back to the
// calendar-level grant.
func (r *Resolver) campaignLevel(ctx context.Context, p model.Principal, campaignID string) (model.Level, error) {
	camp, err := r.Store.GetCampaign(ctx, campaignID)
	if err != nil {
		return model.LevelNone, err
	}
	cal, err := r.Store.GetCalendar(ctx, camp.CalendarID)
	if err != nil {
		return model.LevelNone, err
	}
	if cal.OwnerID == p.ID {
		return model.LevelOwner, nil
	}

	perm, err := r.Store.GetCampaignPermission(ctx, campaignID, p.ID)
	if err != nil {
		return model.LevelNone, err
	}
	if perm != nil {
		return MapAccessType(perm.AccessType), nil
	}

	calPerm, err := r.Store.GetCalendarPermission(ctx, cal.ID, p.ID)
	if err != nil {
		return model.LevelNone, err
	}
	if calPerm != nil {
		return MapAccessType(calPerm.AccessType), nil
	}
	return model.LevelNone, nil
}

// MapAccessType maps a grant access type to a resolved level. Copy reads like
// view: it allows duplicating content but never mutating the source.
func MapAccessType(accessType string) model.Level {
	switch accessType {
	case model.AccessEdit:
		return model.LevelEdit
	case model.AccessView, model.AccessCopy:
		return model.LevelView
	default:
		return model.LevelNone
	}
}
