package repository

import (
	"context"
	"errors"

	"registry7/internal/registry/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository persists one entity type in one collection. Records are
// keyed by their UUID string in _id; the name field carries a unique index
// so a duplicate slipping past the service pre-check still fails the save.
type MongoRepository[E any] struct {
	coll *mongo.Collection
}

func NewMongoRepository[E any](db *mongo.Database, collectionName string) *MongoRepository[E] {
	return &MongoRepository[E]{coll: db.Collection(collectionName)}
}

func (r *MongoRepository[E]) EnsureIndexes(ctx context.Context) error {
	idxUniqueName := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_name"),
	}

	_, err := r.coll.Indexes().CreateOne(ctx, idxUniqueName)
	return err
}

func (r *MongoRepository[E]) FindByID(ctx context.Context, id string) (*E, error) {
	var entity E
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *MongoRepository[E]) FindFirstByName(ctx context.Context, name string) (*E, error) {
	var entity E
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *MongoRepository[E]) FindAll(ctx context.Context, page, size int) ([]E, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(page) * int64(size)).
		SetLimit(int64(size))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var entities []E
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *MongoRepository[E]) Save(ctx context.Context, entity *E) error {
	meta, ok := any(entity).(interface{ Meta() *model.Metadata })
	if !ok {
		return errors.New("entity carries no metadata")
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": meta.Meta().ID}, entity, opts)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *MongoRepository[E]) DeleteByID(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoRepository[E]) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (r *MongoRepository[E]) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
