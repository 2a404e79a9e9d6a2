package schema

import (
	"context"
	"fmt"
	"github.com/RAprogramm/notes-api/persistence/v1/schema"
	"github.com/RAprogramm/notes-api/platform/env"
	"github.com/RAprogramm/notes-api/sys"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Schema Commands")
	println("\tcreate\t\t\t- Creates the collection indexes")
	println("\tdelete\t\t\t- Drops the note collection")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()

	client, coll, err := initVars(log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			println("could not close db conn gracefully:", err.Error())
		}
	}()

	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background(), coll); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background(), coll); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) (*mongo.Client, *mongo.Collection, error) {
	_ = godotenv.Load()

	var cfg sys.Config
	cfg.Database.ConnectionURL = env.OrDefault(log, "DATABASE_URL", "mongodb://localhost:27017")
	cfg.Database.Name = env.OrDefault(log, "MONGO_INITDB_DATABASE", "notes")
	cfg.Database.NoteCollection = env.OrDefault(log, "MONGODB_NOTE_COLLECTION", "notes")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")

	opts := options.Client().ApplyURI(cfg.Database.ConnectionURL).SetAppName(cfg.Database.Name)
	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("error to connecto to database: %w", err)
	}
	dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
	defer dbCancel()
	if err := client.Ping(dbCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return client, client.Database(cfg.Database.Name).Collection(cfg.Database.NoteCollection), nil
}
