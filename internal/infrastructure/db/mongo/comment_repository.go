package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openboard/board-service/internal/core/domain"
)

const commentCollection = "comments"

type MongoCommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(commentCollection)}
}

type mongoComment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BoardID       string             `bson:"board_id"`
	OwnerUsername string             `bson:"owner_username"`
	Content       string             `bson:"content"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	doc := mongoComment{
		BoardID:       comment.BoardID,
		OwnerUsername: comment.OwnerUsername,
		Content:       comment.Content,
		CreatedAt:     comment.CreatedAt.Unix(),
		UpdatedAt:     comment.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var mc mongoComment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}

	return commentFromMongo(&mc), nil
}

func (r *MongoCommentRepository) FindByBoard(ctx context.Context, boardID string) ([]*domain.Comment, error) {
	cur, err := r.coll.Find(ctx, bson.M{"board_id": boardID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []*domain.Comment
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, commentFromMongo(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *MongoCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	oid, err := primitive.ObjectIDFromHex(comment.ID)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"content":    comment.Content,
		"updated_at": comment.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *MongoCommentRepository) DeleteByBoard(ctx context.Context, boardID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"board_id": boardID}); err != nil {
		return fmt.Errorf("delete board comments: %w", err)
	}
	return nil
}

func commentFromMongo(mc *mongoComment) *domain.Comment {
	return &domain.Comment{
		ID:            mc.ID.Hex(),
		BoardID:       mc.BoardID,
		OwnerUsername: mc.OwnerUsername,
		Content:       mc.Content,
		CreatedAt:     unixToTime(mc.CreatedAt),
		UpdatedAt:     unixToTime(mc.UpdatedAt),
	}
}
