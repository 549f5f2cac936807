package messages

import (
	"context"
	"newconsult-service/internal/app/contracts"
	"newconsult-service/internal/app/models"
	"newconsult-service/internal/pkg/constvars"
	"newconsult-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) contracts.MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) CreateMessage(ctx context.Context, message *models.Message) (*models.Message, error) {
	result, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	message.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return message, nil
}

func (r *MessageMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Message, error) {
	filter := bson.M{"appointmentId": appointmentID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	messages := make([]models.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *MessageMongoRepository) MarkAllRead(ctx context.Context, appointmentID, receiverID string) (int64, error) {
	filter := bson.M{
		"appointmentId": appointmentID,
		"receiverId":    receiverID,
		"isRead":        false,
	}
	update := bson.M{"$set": bson.M{"isRead": true}}

	result, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *MessageMongoRepository) CountUnreadByReceiver(ctx context.Context, receiverID string) (int64, error) {
	filter := bson.M{
		"receiverId": receiverID,
		"isRead":     false,
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
