package schema

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/mongo"
)

func Drop(ctx context.Context, coll *mongo.Collection) error {
	if err := coll.Drop(ctx); err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
