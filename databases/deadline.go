package databases

// go generate: mockery --name DeadlineDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lawdesk/legal-practice-api/models"
)

const deadlineName = "deadlines"

// DeadlineDatabase contains the methods to use with the deadline database
type DeadlineDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Deadline, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Deadline, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) error
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	UpdateMany(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type deadlineDatabase struct {
	db DatabaseHelper
}

// NewDeadlineDatabase initializes a new instance of deadline database with the provided db connection
func NewDeadlineDatabase(db DatabaseHelper) DeadlineDatabase {
	return &deadlineDatabase{
		db: db,
	}
}

func (c *deadlineDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Deadline, error) {
	deadline := &models.Deadline{}
	err := c.db.Collection(deadlineName).FindOne(ctx, filter).Decode(&deadline)
	if err != nil {
		return nil, err
	}
	return deadline, nil
}

func (c *deadlineDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Deadline, error) {
	var deadlines []models.Deadline
	curr, err := c.db.Collection(deadlineName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &deadlines)
	if err != nil {
		return nil, err
	}
	return deadlines, nil
}

func (c *deadlineDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(deadlineName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *deadlineDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(deadlineName).DeleteOne(ctx, filter, opts...)
}

func (c *deadlineDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return c.db.Collection(deadlineName).UpdateOne(ctx, filter, update, opts...)
}

func (c *deadlineDatabase) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return c.db.Collection(deadlineName).UpdateMany(ctx, filter, update, opts...)
}

func (c *deadlineDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(deadlineName).CountDocuments(ctx, filter, opts...)
}
