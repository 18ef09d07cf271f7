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

const boardCollection = "boards"

type MongoBoardRepository struct {
	coll *mongo.Collection
}

func NewBoardRepository(db *mongo.Database) *MongoBoardRepository {
	return &MongoBoardRepository{coll: db.Collection(boardCollection)}
}

type mongoBoard struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       string             `bson:"content"`
	OwnerUsername string             `bson:"owner_username"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (r *MongoBoardRepository) Create(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	doc := mongoBoard{
		Title:         board.Title,
		Content:       board.Content,
		OwnerUsername: board.OwnerUsername,
		CreatedAt:     board.CreatedAt.Unix(),
		UpdatedAt:     board.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert board: %w", err)
	}

	created := *board
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoBoardRepository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBoardNotFound
	}

	var mb mongoBoard
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBoardNotFound
		}
		return nil, fmt.Errorf("find board: %w", err)
	}

	return boardFromMongo(&mb), nil
}

func (r *MongoBoardRepository) List(ctx context.Context) ([]*domain.Board, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer cur.Close(ctx)

	var boards []*domain.Board
	for cur.Next(ctx) {
		var mb mongoBoard
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode board: %w", err)
		}
		boards = append(boards, boardFromMongo(&mb))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return boards, nil
}

func (r *MongoBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	oid, err := primitive.ObjectIDFromHex(board.ID)
	if err != nil {
		return domain.ErrBoardNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":      board.Title,
		"content":    board.Content,
		"updated_at": board.UpdatedAt.Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update board: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func (r *MongoBoardRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBoardNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func boardFromMongo(mb *mongoBoard) *domain.Board {
	return &domain.Board{
		ID:            mb.ID.Hex(),
		Title:         mb.Title,
		Content:       mb.Content,
		OwnerUsername: mb.OwnerUsername,
		CreatedAt:     unixToTime(mb.CreatedAt),
		UpdatedAt:     unixToTime(mb.UpdatedAt),
	}
}
