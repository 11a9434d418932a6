package model

import "time"

// Principal is the authenticated caller. Supplied by the auth middleware;
// the core never loads or stores sessions itself.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Elevated reports whether the role bypasses per-resource grants entirely.
func (p Principal) Elevated() bool {
	return p.Role == RoleManager || p.Role == RoleAdmin
}

type Calendar struct {
	ID         string    `json:"id" bson:"_id"`
	OwnerID    string    `json:"owner_id" bson:"owner_id"`
	Name       string    `json:"name" bson:"name"`
	IsTemplate bool      `json:"is_template" bson:"is_template"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// CalendarPermission grants one non-owner user access to one calendar.
// Unique per (calendar_id, user_id); duplicates are rejected at the index.
type CalendarPermission struct {
	ID         string    `json:"id" bson:"_id"`
	CalendarID string    `json:"calendar_id" bson:"calendar_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	AccessType string    `json:"access_type" bson:"access_type"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

type Campaign struct {
	ID         string    `json:"id" bson:"_id"`
	CalendarID string    `json:"calendar_id" bson:"calendar_id"`
	Name       string    `json:"name" bson:"name"`
	Color      string    `json:"color,omitempty" bson:"color,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// CampaignPermission is the narrower grant path: it exposes one campaign to a
// collaborator without exposing the whole calendar.
type CampaignPermission struct {
	ID         string    `json:"id" bson:"_id"`
	CampaignID string    `json:"campaign_id" bson:"campaign_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	AccessType string    `json:"access_type" bson:"access_type"`
	InvitedBy  string    `json:"invited_by" bson:"invited_by"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

type Swimlane struct {
	ID         string    `json:"id" bson:"_id"`
	CalendarID string    `json:"calendar_id" bson:"calendar_id"`
	Name       string    `json:"name" bson:"name"`
	Budget     float64   `json:"budget" bson:"budget"`
	SortOrder  int       `json:"sort_order" bson:"sort_order"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

type Activity struct {
	ID           string    `json:"id" bson:"_id"`
	CalendarID   string    `json:"calendar_id" bson:"calendar_id"`
	SwimlaneID   string    `json:"swimlane_id" bson:"swimlane_id"`
	CampaignID   string    `json:"campaign_id,omitempty" bson:"campaign_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	StartDate    time.Time `json:"start_date" bson:"start_date"`
	EndDate      time.Time `json:"end_date" bson:"end_date"`
	Status       string    `json:"status" bson:"status"`
	Cost         float64   `json:"cost" bson:"cost"`
	ExpectedSAOs int       `json:"expected_saos" bson:"expected_saos"`
	ActualSAOs   int       `json:"actual_saos" bson:"actual_saos"`
	CreatedBy    string    `json:"created_by" bson:"created_by"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// FieldChange is one entry of the advisory diff attached to a history record.
type FieldChange struct {
	Old interface{} `json:"old" bson:"old"`
	New interface{} `json:"new" bson:"new"`
}

// ActivityHistory is append-only: one record per activity mutation. The
// authoritative rollback datum is PreviousState; Changes is advisory.
// PreviousState is nil only for the very first created record.
type ActivityHistory struct {
	ID            string                 `json:"id" bson:"_id"`
	ActivityID    string                 `json:"activity_id" bson:"activity_id"`
	UserID        string                 `json:"user_id" bson:"user_id"`
	Action        string                 `json:"action" bson:"action"`
	Changes       map[string]FieldChange `json:"changes,omitempty" bson:"changes,omitempty"`
	PreviousState *Activity              `json:"previous_state,omitempty" bson:"previous_state,omitempty"`
	Seq           int64                  `json:"seq" bson:"seq"`
	CreatedAt     time.Time              `json:"created_at" bson:"created_at"`
}

type Notification struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Message     string    `json:"message" bson:"message"`
	RelatedType string    `json:"related_type,omitempty" bson:"related_type,omitempty"`
	RelatedID   string    `json:"related_id,omitempty" bson:"related_id,omitempty"`
	Read        bool      `json:"read" bson:"read"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CalendarAccess pairs a calendar with the caller's resolved level, for the
// accessible-calendars listing.
type CalendarAccess struct {
	Calendar Calendar `json:"calendar"`
	Level    string   `json:"level"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error lets Validate() methods return *ErrorDetail directly.
func (d *ErrorDetail) Error() string {
	return d.Message
}
