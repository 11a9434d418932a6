package repository

import (
	"context"

	"marketcal/internal/marketcal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Calendar permissions ---

func (r *MongoRepository) CreateCalendarPermission(ctx context.Context, perm *model.CalendarPermission) error {
	_, err := r.CalendarPermissions.InsertOne(ctx, perm)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) GetCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error) {
	var perm model.CalendarPermission
	err := r.CalendarPermissions.FindOne(ctx, bson.M{
		"calendar_id": calendarID,
		"user_id":     userID,
	}).Decode(&perm)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *MongoRepository) ListCalendarPermissions(ctx context.Context, calendarID string) ([]*model.CalendarPermission, error) {
	cursor, err := r.CalendarPermissions.Find(ctx, bson.M{"calendar_id": calendarID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var perms []*model.CalendarPermission
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *MongoRepository) ListCalendarPermissionsByUser(ctx context.Context, userID string) ([]*model.CalendarPermission, error) {
	cursor, err := r.CalendarPermissions.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var perms []*model.CalendarPermission
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *MongoRepository) UpdateCalendarPermission(ctx context.Context, calendarID, userID, accessType string) (*model.CalendarPermission, error) {
	var perm model.CalendarPermission
	err := r.CalendarPermissions.FindOneAndUpdate(ctx,
		bson.M{"calendar_id": calendarID, "user_id": userID},
		bson.M{"$set": bson.M{"access_type": accessType}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&perm)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *MongoRepository) DeleteCalendarPermission(ctx context.Context, calendarID, userID string) (*model.CalendarPermission, error) {
	var perm model.CalendarPermission
	err := r.CalendarPermissions.FindOneAndDelete(ctx,
		bson.M{"calendar_id": calendarID, "user_id": userID},
	).Decode(&perm)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

// --- Campaign permissions ---

func (r *MongoRepository) CreateCampaignPermission(ctx context.Context, perm *model.CampaignPermission) error {
	_, err := r.CampaignPermissions.InsertOne(ctx, perm)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository) GetCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error) {
	var perm model.CampaignPermission
	err := r.CampaignPermissions.FindOne(ctx, bson.M{
		"campaign_id": campaignID,
		"user_id":     userID,
	}).Decode(&perm)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *MongoRepository) ListCampaignPermissions(ctx context.Context, campaignID string) ([]*model.CampaignPermission, error) {
	cursor, err := r.CampaignPermissions.Find(ctx, bson.M{"campaign_id": campaignID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var perms []*model.CampaignPermission
	if err := cursor.All(ctx, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (r *MongoRepository) UpdateCampaignPermission(ctx context.Context, campaignID, userID, accessType string) (*model.CampaignPermission, error) {
	var perm model.CampaignPermission
	err := r.CampaignPermissions.FindOneAndUpdate(ctx,
		bson.M{"campaign_id": campaignID, "user_id": userID},
		bson.M{"$set": bson.M{"access_type": accessType}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&perm)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *MongoRepository) DeleteCampaignPermission(ctx context.Context, campaignID, userID string) (*model.CampaignPermission, error) {
	var perm model.CampaignPermission
	err := r.CampaignPermissions.FindOneAndDelete(ctx,
		bson.M{"campaign_id": campaignID, "user_id": userID},
	).Decode(&perm)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &perm, nil
}
