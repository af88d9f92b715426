package databases

// go generate: mockery --name CourtDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lawdesk/legal-practice-api/models"
)

const courtName = "courts"

// CourtDatabase contains the methods to use with the court database
type CourtDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Court, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Court, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type courtDatabase struct {
	db DatabaseHelper
}

// NewCourtDatabase initializes a new instance of court database with the provided db connection
func NewCourtDatabase(db DatabaseHelper) CourtDatabase {
	return &courtDatabase{
		db: db,
	}
}

func (c *courtDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Court, error) {
	court := &models.Court{}
	err := c.db.Collection(courtName).FindOne(ctx, filter).Decode(&court)
	if err != nil {
		return nil, err
	}
	return court, nil
}

func (c *courtDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Court, error) {
	var courts []models.Court
	curr, err := c.db.Collection(courtName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &courts)
	if err != nil {
		return nil, err
	}
	return courts, nil
}

func (c *courtDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(courtName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *courtDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(courtName).DeleteOne(ctx, filter, opts...)
}

func (c *courtDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return c.db.Collection(courtName).UpdateOne(ctx, filter, update, opts...)
}

func (c *courtDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(courtName).CountDocuments(ctx, filter, opts...)
}
