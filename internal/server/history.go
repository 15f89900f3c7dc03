package server

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/wordspin/pkg/errors"
	"github.com/matzehuels/wordspin/pkg/pipeline"
)

// RunRecord is the persisted summary of one generate request. The
// input text itself is not stored, only its hash; history is an audit
// trail, not a cache.
type RunRecord struct {
	ID          string    `bson:"_id" json:"id"`
	TextHash    string    `bson:"text_hash" json:"text_hash"`
	Theme       string    `bson:"theme" json:"theme"`
	Seed        uint64    `bson:"seed" json:"seed"`
	Width       float64   `bson:"width" json:"width"`
	Height      float64   `bson:"height" json:"height"`
	Formats     []string  `bson:"formats" json:"formats"`
	UniqueWords int       `bson:"unique_words" json:"unique_words"`
	PlacedWords int       `bson:"placed_words" json:"placed_words"`
	Cached      bool      `bson:"cached" json:"cached"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// NewRunRecord builds a history record from a completed run.
func NewRunRecord(id string, opts pipeline.Options, result *pipeline.Result) RunRecord {
	return RunRecord{
		ID:          id,
		TextHash:    result.TextHash,
		Theme:       opts.Theme,
		Seed:        opts.Seed,
		Width:       opts.Width,
		Height:      opts.Height,
		Formats:     opts.Formats,
		UniqueWords: result.Report.UniqueWords,
		PlacedWords: result.Report.PlacedWords,
		Cached:      result.CacheInfo.ArtifactHit,
		CreatedAt:   time.Now().UTC(),
	}
}

// History stores run records in MongoDB.
type History struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewHistory connects to MongoDB at uri and verifies the connection
// with a ping. Records go into the "runs" collection of the given
// database.
func NewHistory(ctx context.Context, uri, database string) (*History, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}
	return &History{
		client:     client,
		collection: client.Database(database).Collection("runs"),
	}, nil
}

// Insert stores a run record.
func (h *History) Insert(ctx context.Context, rec RunRecord) error {
	if _, err := h.collection.InsertOne(ctx, rec); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "insert run record")
	}
	return nil
}

// Get fetches one run record by ID.
func (h *History) Get(ctx context.Context, id string) (RunRecord, error) {
	var rec RunRecord
	err := h.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return RunRecord{}, errors.New(errors.ErrCodeNotFound, "run %q not found", id)
	}
	if err != nil {
		return RunRecord{}, errors.Wrap(errors.ErrCodeInternal, err, "find run record")
	}
	return rec, nil
}

// List returns the most recent run records, newest first.
func (h *History) List(ctx context.Context, limit int64) ([]RunRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := h.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list run records")
	}
	defer cursor.Close(ctx)

	records := make([]RunRecord, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode run records")
	}
	return records, nil
}

// Close disconnects from MongoDB.
func (h *History) Close(ctx context.Context) error {
	return h.client.Disconnect(ctx)
}
