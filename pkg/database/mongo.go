package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/artspires-api/pkg/config"
)

// Collection names inside the application database.
const (
	CollectionUsers         = "users"
	CollectionClasses       = "classes"
	CollectionApprovedClass = "approveclasses"
	CollectionEnrollments   = "selectClass"
	CollectionPayments      = "payments"
	CollectionFeedbacks     = "feedbacks"
)

// NewMongo connects to MongoDB using the stable server API and verifies the deployment with a ping.
// monitor may be nil.
func NewMongo(ctx context.Context, cfg config.MongoConfig, monitor *event.CommandMonitor) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI)
	if monitor != nil {
		opts.SetMonitor(monitor)
	}
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
		opts.SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Ping runs the admin ping command against the deployment.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
