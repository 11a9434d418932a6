package repository

import (
	"context"

	"marketcal/internal/marketcal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Calendars           *mongo.Collection
	Swimlanes           *mongo.Collection
	Campaigns           *mongo.Collection
	Activities          *mongo.Collection
	CalendarPermissions *mongo.Collection
	CampaignPermissions *mongo.Collection
	History             *mongo.Collection
	Notifications       *mongo.Collection
	Client              *mongo.Client // for transactions
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Calendars:           db.Collection("calendars"),
		Swimlanes:           db.Collection("swimlanes"),
		Campaigns:           db.Collection("campaigns"),
		Activities:          db.Collection("activities"),
		CalendarPermissions: db.Collection("calendar_permissions"),
		CampaignPermissions: db.Collection("campaign_permissions"),
		History:             db.Collection("activity_history"),
		Notifications:       db.Collection("notifications"),
		Client:              db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	// 1. One grant per (calendar, user). Duplicate inserts surface as
	// ErrDuplicate and become a Conflict at the service layer.
	idxCalPerm := mongo.IndexModel{
		Keys: bson.D{
			{Key: "calendar_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_grant_per_calendar_user"),
	}
	if _, err := r.CalendarPermissions.Indexes().CreateOne(ctx, idxCalPerm); err != nil {
		return err
	}

	// 2. One grant per (campaign, user).
	idxCampPerm := mongo.IndexModel{
		Keys: bson.D{
			{Key: "campaign_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_grant_per_campaign_user"),
	}
	if _, err := r.CampaignPermissions.Indexes().CreateOne(ctx, idxCampPerm); err != nil {
		return err
	}

	// 3. Child lookups by calendar.
	byCalendar := bson.D{{Key: "calendar_id", Value: 1}}
	for _, coll := range []*mongo.Collection{r.Swimlanes, r.Campaigns, r.Activities} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: byCalendar}); err != nil {
			return err
		}
	}

	// 4. Notifications by recipient.
	idxNotif := mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
		Options: options.Index().SetName("idx_notifications_by_user"),
	}
	_, err := r.Notifications.Indexes().CreateOne(ctx, idxNotif)
	return err
}

// --- Calendars ---

func (r *MongoRepository) CreateCalendar(ctx context.Context, cal *model.Calendar) error {
	_, err := r.Calendars.InsertOne(ctx, cal)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) GetCalendar(ctx context.Context, id string) (*model.Calendar, error) {
	var cal model.Calendar
	err := r.Calendars.FindOne(ctx, bson.M{"_id": id}).Decode(&cal)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

func (r *MongoRepository) ListCalendars(ctx context.Context) ([]*model.Calendar, error) {
	return r.findCalendars(ctx, bson.M{})
}

func (r *MongoRepository) ListCalendarsByOwner(ctx context.Context, ownerID string) ([]*model.Calendar, error) {
	return r.findCalendars(ctx, bson.M{"owner_id": ownerID})
}

func (r *MongoRepository) ListCalendarsByIDs(ctx context.Context, ids []string) ([]*model.Calendar, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findCalendars(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoRepository) findCalendars(ctx context.Context, filter bson.M) ([]*model.Calendar, error) {
	cursor, err := r.Calendars.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cals []*model.Calendar
	if err := cursor.All(ctx, &cals); err != nil {
		return nil, err
	}
	return cals, nil
}

func (r *MongoRepository) UpdateCalendar(ctx context.Context, cal *model.Calendar) error {
	res, err := r.Calendars.ReplaceOne(ctx, bson.M{"_id": cal.ID}, cal)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCalendarCascade removes the calendar and everything scoped to it in
// one transaction. Activity history is deliberately left in place: the log is
// append-only and survives its subject.
func (r *MongoRepository) DeleteCalendarCascade(ctx context.Context, id string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.Calendars.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}

		byCalendar := bson.M{"calendar_id": id}
		for _, coll := range []*mongo.Collection{r.Swimlanes, r.Activities, r.CalendarPermissions} {
			if _, err := coll.DeleteMany(sessCtx, byCalendar); err != nil {
				return nil, err
			}
		}

		// Campaign permissions hang off campaigns, not the calendar directly.
		cursor, err := r.Campaigns.Find(sessCtx, byCalendar)
		if err != nil {
			return nil, err
		}
		var camps []*model.Campaign
		if err := cursor.All(sessCtx, &camps); err != nil {
			return nil, err
		}
		if len(camps) > 0 {
			ids := make([]string, 0, len(camps))
			for _, c := range camps {
				ids = append(ids, c.ID)
			}
			if _, err := r.CampaignPermissions.DeleteMany(sessCtx, bson.M{"campaign_id": bson.M{"$in": ids}}); err != nil {
				return nil, err
			}
			if _, err := r.Campaigns.DeleteMany(sessCtx, byCalendar); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

// --- Swimlanes ---

func (r *MongoRepository) CreateSwimlane(ctx context.Context, lane *model.Swimlane) error {
	_, err := r.Swimlanes.InsertOne(ctx, lane)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) GetSwimlane(ctx context.Context, id string) (*model.Swimlane, error) {
	var lane model.Swimlane
	err := r.Swimlanes.FindOne(ctx, bson.M{"_id": id}).Decode(&lane)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lane, nil
}

func (r *MongoRepository) ListSwimlanes(ctx context.Context, calendarID string) ([]*model.Swimlane, error) {
	cursor, err := r.Swimlanes.Find(ctx, bson.M{"calendar_id": calendarID},
		options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lanes []*model.Swimlane
	if err := cursor.All(ctx, &lanes); err != nil {
		return nil, err
	}
	return lanes, nil
}

func (r *MongoRepository) UpdateSwimlane(ctx context.Context, lane *model.Swimlane) error {
	res, err := r.Swimlanes.ReplaceOne(ctx, bson.M{"_id": lane.ID}, lane)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteSwimlaneCascade(ctx context.Context, id string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.Swimlanes.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		if _, err := r.Activities.DeleteMany(sessCtx, bson.M{"swimlane_id": id}); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

// --- Campaigns ---

func (r *MongoRepository) CreateCampaign(ctx context.Context, camp *model.Campaign) error {
	_, err := r.Campaigns.InsertOne(ctx, camp)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	var camp model.Campaign
	err := r.Campaigns.FindOne(ctx, bson.M{"_id": id}).Decode(&camp)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

func (r *MongoRepository) ListCampaigns(ctx context.Context, calendarID string) ([]*model.Campaign, error) {
	cursor, err := r.Campaigns.Find(ctx, bson.M{"calendar_id": calendarID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var camps []*model.Campaign
	if err := cursor.All(ctx, &camps); err != nil {
		return nil, err
	}
	return camps, nil
}

func (r *MongoRepository) UpdateCampaign(ctx context.Context, camp *model.Campaign) error {
	res, err := r.Campaigns.ReplaceOne(ctx, bson.M{"_id": camp.ID}, camp)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteCampaign(ctx context.Context, id string) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.Campaigns.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		if _, err := r.CampaignPermissions.DeleteMany(sessCtx, bson.M{"campaign_id": id}); err != nil {
			return nil, err
		}
		// Activities keep their rows; they only lose the campaign reference.
		if _, err := r.Activities.UpdateMany(sessCtx,
			bson.M{"campaign_id": id},
			bson.M{"$unset": bson.M{"campaign_id": ""}}); err != nil {
			return nil, err
		}
		return nil, nil
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}
