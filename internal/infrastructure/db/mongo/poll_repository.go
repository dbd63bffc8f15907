package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pollhub/polling-api/internal/core/domain"
)

const pollsCollection = "polls"

type PollRepository struct {
	coll *mongo.Collection
}

func NewPollRepository(db *mongo.Database) *PollRepository {
	return &PollRepository{coll: db.Collection(pollsCollection)}
}

type mongoPoll struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Question      string              `bson:"question"`
	Options       []domain.PollOption `bson:"options"`
	CreatorID     string              `bson:"creator_id"`
	CreatorHandle string              `bson:"creator_handle"`
	CreatedAt     time.Time           `bson:"created_at"`
}

func (mp *mongoPoll) toDomain() *domain.Poll {
	return &domain.Poll{
		ID:            mp.ID.Hex(),
		Question:      mp.Question,
		Options:       mp.Options,
		CreatorID:     mp.CreatorID,
		CreatorHandle: mp.CreatorHandle,
		CreatedAt:     mp.CreatedAt,
	}
}

func (r *PollRepository) Create(ctx context.Context, poll *domain.Poll) (*domain.Poll, error) {
	doc := mongoPoll{
		Question:      poll.Question,
		Options:       poll.Options,
		CreatorID:     poll.CreatorID,
		CreatorHandle: poll.CreatorHandle,
		CreatedAt:     poll.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert poll: %w", err)
	}

	created := *poll
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PollRepository) FindByID(ctx context.Context, id string) (*domain.Poll, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPollNotFound
	}

	var mp mongoPoll
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("find poll: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PollRepository) List(ctx context.Context) ([]*domain.Poll, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list polls: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoPoll
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode polls: %w", err)
	}

	polls := make([]*domain.Poll, 0, len(docs))
	for i := range docs {
		polls = append(polls, docs[i].toDomain())
	}
	return polls, nil
}

// IncrementVote adds one vote to the option at optionIndex. The $exists
// filter guards against an index past the end of the array; the service has
// already bounds-checked, so a miss here means the poll vanished.
func (r *PollRepository) IncrementVote(ctx context.Context, id string, optionIndex int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPollNotFound
	}

	filter := bson.M{
		"_id": oid,
		fmt.Sprintf("options.%d", optionIndex): bson.M{"$exists": true},
	}
	update := bson.M{"$inc": bson.M{fmt.Sprintf("options.%d.votes", optionIndex): 1}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("increment vote: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func (r *PollRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPollNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}
