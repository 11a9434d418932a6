package repository

import (
	"context"
	"time"

	"marketcal/internal/marketcal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	var act model.Activity
	err := r.Activities.FindOne(ctx, bson.M{"_id": id}).Decode(&act)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &act, nil
}

func (r *MongoRepository) ListActivities(ctx context.Context, calendarID string) ([]*model.Activity, error) {
	cursor, err := r.Activities.Find(ctx, bson.M{"calendar_id": calendarID},
		options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var acts []*model.Activity
	if err := cursor.All(ctx, &acts); err != nil {
		return nil, err
	}
	return acts, nil
}

// nextSeq assigns the insertion-order tiebreaker for one activity's log.
// Concurrent transactions can compute the same value; the unique index on
// (activity_id, seq) rejects the second insert.
func (r *MongoRepository) nextSeq(sessCtx mongo.SessionContext, activityID string) (int64, error) {
	count, err := r.History.CountDocuments(sessCtx, bson.M{"activity_id": activityID})
	if err != nil {
		return 0, err
	}
	return count + 1, nil
}

func (r *MongoRepository) insertHistory(sessCtx mongo.SessionContext, entry *model.ActivityHistory) error {
	seq, err := r.nextSeq(sessCtx, entry.ActivityID)
	if err != nil {
		return err
	}
	entry.Seq = seq
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if _, err := r.History.InsertOne(sessCtx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// CreateActivityWithHistory inserts the activity and its first history record
// atomically.
func (r *MongoRepository) CreateActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := r.Activities.InsertOne(sessCtx, act); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
		return nil, r.insertHistory(sessCtx, entry)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) UpdateActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.Activities.ReplaceOne(sessCtx, bson.M{"_id": act.ID}, act)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, r.insertHistory(sessCtx, entry)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) DeleteActivityWithHistory(ctx context.Context, id string, entry *model.ActivityHistory) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		res, err := r.Activities.DeleteOne(sessCtx, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, r.insertHistory(sessCtx, entry)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

// RestoreActivityWithHistory re-inserts a deleted activity under its original
// id. The parent swimlane and calendar (and campaign, when referenced) must
// still exist; Mongo has no referential integrity, so the checks run inside
// the same transaction as the insert.
func (r *MongoRepository) RestoreActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	session, err := r.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		if err := r.parentExists(sessCtx, r.Calendars, act.CalendarID); err != nil {
			return nil, err
		}
		if err := r.parentExists(sessCtx, r.Swimlanes, act.SwimlaneID); err != nil {
			return nil, err
		}
		if act.CampaignID != "" {
			if err := r.parentExists(sessCtx, r.Campaigns, act.CampaignID); err != nil {
				return nil, err
			}
		}

		if _, err := r.Activities.InsertOne(sessCtx, act); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicate
			}
			return nil, err
		}
		return nil, r.insertHistory(sessCtx, entry)
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (r *MongoRepository) parentExists(sessCtx mongo.SessionContext, coll *mongo.Collection, id string) error {
	count, err := coll.CountDocuments(sessCtx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrForeignKey
	}
	return nil
}

// OverwriteActivityWithHistory replaces the current row with a restored
// snapshot. Used by undo of created/updated entries.
func (r *MongoRepository) OverwriteActivityWithHistory(ctx context.Context, act *model.Activity, entry *model.ActivityHistory) error {
	return r.UpdateActivityWithHistory(ctx, act, entry)
}
