package chat

import "go.mongodb.org/mongo-driver/bson/primitive"

// Exchange is one recorded user/AI message pair. Exchanges are append-only:
// written once after a successful upstream call, never updated or deleted.
type Exchange struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserMessage string             `bson:"user_message"`
	AIResponse  string             `bson:"ai_response"`
	Timestamp   string             `bson:"timestamp"`
}
