package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LevelRepo handles the persistence of completed levels, one document per
// session holding its latest level.
type LevelRepo struct {
	collection *mongo.Collection
}

// NewLevelRepo creates a new LevelRepo with the given MongoDB client, database name, and collection name.
func NewLevelRepo(client *mongo.Client, dbName, collectionName string) *LevelRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &LevelRepo{
		collection: collection,
	}
}

// Record inserts or updates the session's level record.
func (l *LevelRepo) Record(ctx context.Context, r i.LevelRecord) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": r.SessionID}
	update := bson.M{
		"$set": bson.M{
			"level":     r.Level,
			"width":     r.Width,
			"height":    r.Height,
			"seed":      r.Seed,
			"moves":     r.Moves,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := l.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// BySession retrieves the latest level record of a session.
func (l *LevelRepo) BySession(ctx context.Context, sessionID string) (*i.LevelRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var record i.LevelRecord
	if err := l.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrLevelNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}
