package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nysp/correction-notices/internal/core/domain"
)

// sequence hands out increasing integer IDs per collection from the counters
// collection.
type sequence struct {
	coll *mongo.Collection
}

func newSequence(coll *mongo.Collection) *sequence {
	return &sequence{coll: coll}
}

func (s *sequence) next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, domain.StorageError("next id for "+name, err)
	}
	return doc.Seq, nil
}

// collection implements the key-based operations shared by every record
// repository. T is stored as-is; its bson "_id" is the integer record ID.
type collection[T any] struct {
	coll      *mongo.Collection
	seq       *sequence
	notFound  error
	duplicate error
}

func newCollection[T any](db *mongo.Database, seq *sequence, name string, notFound, duplicate error) collection[T] {
	return collection[T]{coll: db.Collection(name), seq: seq, notFound: notFound, duplicate: duplicate}
}

func (c collection[T]) findOne(ctx context.Context, filter any) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc T
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, c.notFound
		}
		return nil, domain.StorageError("find "+c.coll.Name(), err)
	}
	return &doc, nil
}

func (c collection[T]) findByID(ctx context.Context, id int64) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

func (c collection[T]) findMany(ctx context.Context, filter any) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, domain.StorageError("list "+c.coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := []*T{}
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, domain.StorageError("decode "+c.coll.Name(), err)
		}
		out = append(out, &doc)
	}
	if err := cur.Err(); err != nil {
		return nil, domain.StorageError("iterate "+c.coll.Name(), err)
	}
	return out, nil
}

// insert assigns the next ID through setID and inserts doc.
func (c collection[T]) insert(ctx context.Context, doc *T, setID func(int64)) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := c.seq.next(ctx, c.coll.Name())
	if err != nil {
		return err
	}
	setID(id)

	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		return c.writeError("insert", err)
	}
	return nil
}

func (c collection[T]) replace(ctx context.Context, id int64, doc *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return c.writeError("replace", err)
	}
	if res.MatchedCount == 0 {
		return c.notFound
	}
	return nil
}

func (c collection[T]) deleteByID(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domain.StorageError("delete "+c.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return c.notFound
	}
	return nil
}

func (c collection[T]) count(ctx context.Context, filter any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, domain.StorageError("count "+c.coll.Name(), err)
	}
	return n, nil
}

func (c collection[T]) writeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) && c.duplicate != nil {
		return c.duplicate
	}
	return domain.StorageError(op+" "+c.coll.Name(), err)
}
