package recorder

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/OssiLV/uit-ecommerce/internal/domain"
)

// MongoSink persists interaction events for offline recommendation
// training. Delivery is best-effort, the collection is append-only.
type MongoSink struct {
	collection *mongo.Collection
}

func NewMongoSink(database *mongo.Database, collection string) *MongoSink {
	return &MongoSink{
		collection: database.Collection(collection),
	}
}

type interactionDocument struct {
	UserID    string  `bson:"user_id"`
	ProductID string  `bson:"product_id"`
	Type      string  `bson:"interaction_type"`
	Rating    float64 `bson:"rating_value"`
	Timestamp int64   `bson:"timestamp"`
}

func (s *MongoSink) Save(ctx context.Context, interaction domain.Interaction) error {
	doc := interactionDocument{
		UserID:    interaction.UserID,
		ProductID: interaction.ProductID.String(),
		Type:      string(interaction.Type),
		Rating:    interaction.Rating,
		Timestamp: interaction.Timestamp.UnixMilli(),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("collection.InsertOne: %w", err)
	}

	return nil
}
