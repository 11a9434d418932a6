package model

// Roles
const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// AllowedRoles defines which roles a session token may carry
var AllowedRoles = map[string]bool{
	RoleUser:    true,
	RoleManager: true,
	RoleAdmin:   true,
}

// Access types carried by a permission grant
const (
	AccessView = "view"
	AccessEdit = "edit"
	AccessCopy = "copy"
)

// AllowedAccessTypes for grant creation/update
var AllowedAccessTypes = map[string]bool{
	AccessView: true,
	AccessEdit: true,
	AccessCopy: true,
}

// Resolved access levels, ordered. Owner subsumes edit subsumes view.
type Level int

const (
	LevelNone Level = iota
	LevelView
	LevelEdit
	LevelOwner
)

func (l Level) String() string {
	switch l {
	case LevelView:
		return "view"
	case LevelEdit:
		return "edit"
	case LevelOwner:
		return "owner"
	default:
		return "none"
	}
}

// Actions a caller can be authorized for
const (
	ActionView   = "view"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Resource kinds
const (
	KindCalendar = "calendar"
	KindCampaign = "campaign"
	KindSwimlane = "swimlane"
	KindActivity = "activity"
)

// History actions
const (
	HistoryCreated = "created"
	HistoryUpdated = "updated"
	HistoryDeleted = "deleted"
)

// Activity statuses
const (
	StatusConsidering = "considering"
	StatusPlanned     = "planned"
	StatusCommitted   = "committed"
	StatusInProgress  = "in_progress"
	StatusCompleted   = "completed"
	StatusCancelled   = "cancelled"
)

// AllowedStatuses for activity create/update
var AllowedStatuses = map[string]bool{
	StatusConsidering: true,
	StatusPlanned:     true,
	StatusCommitted:   true,
	StatusInProgress:  true,
	StatusCompleted:   true,
	StatusCancelled:   true,
}

// Notification types emitted on permission transitions
const (
	NotifyPermissionGranted = "permission_granted"
	NotifyPermissionChanged = "permission_changed"
	NotifyPermissionRevoked = "permission_revoked"
)
