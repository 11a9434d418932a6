package repository

import (
	"context"

	"marketcal/internal/marketcal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoRepository) EnsureHistoryIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		// Per-activity log in insertion order: created_at desc, seq as tiebreaker
		{
			Keys: bson.D{
				{Key: "activity_id", Value: 1},
				{Key: "created_at", Value: -1},
				{Key: "seq", Value: -1},
			},
			Options: options.Index().SetName("idx_history_by_activity"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_history_created_at"),
		},
		// Two concurrent writers can compute the same next seq; the unique
		// index makes the loser's transaction fail instead of silently
		// recording a duplicate position.
		{
			Keys: bson.D{
				{Key: "activity_id", Value: 1},
				{Key: "seq", Value: 1},
			},
			Options: options.Index().SetName("uniq_history_activity_seq").SetUnique(true),
		},
	}

	_, err := r.History.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRepository) GetHistoryEntry(ctx context.Context, id string) (*model.ActivityHistory, error) {
	var entry model.ActivityHistory
	err := r.History.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListActivityHistory returns one activity's entries newest first.
func (r *MongoRepository) ListActivityHistory(ctx context.Context, activityID string, limit, offset int64) ([]*model.ActivityHistory, int64, error) {
	filter := bson.M{"activity_id": activityID}

	total, err := r.History.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: -1}}).
		SetSkip(offset)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.History.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var entries []*model.ActivityHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
