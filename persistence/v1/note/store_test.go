package note

import (
	"context"
	"errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"strings"
	"testing"
	"time"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func storedDoc(oid primitive.ObjectID, title, content string) bson.D {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "title", Value: title},
		{Key: "content", Value: content},
		{Key: "category", Value: ""},
		{Key: "published", Value: false},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
}

func startedCommands(mt *mtest.T, name string) int {
	count := 0
	for _, evt := range mt.GetAllStartedEvents() {
		if evt.CommandName == name {
			count++
		}
	}
	return count
}

func TestInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, storedDoc(oid, "my note", "my note text")),
		)

		s := NewStore(mt.Coll)
		inserted, err := s.Insert(context.Background(), NewNote{Title: "my note", Content: "my note text"})
		if err != nil {
			mt.Fatalf("Insert: %s", err)
		}

		if inserted == nil {
			mt.Fatal("Insert should return the re-read note")
		}
		if inserted.Title != "my note" || inserted.Content != "my note text" {
			mt.Fatalf("Insert returned the wrong note: %+v", inserted)
		}
		if inserted.Category == nil || *inserted.Category != "" {
			mt.Errorf("category should decode to the empty string: %v", inserted.Category)
		}
		if inserted.Published == nil || *inserted.Published {
			mt.Errorf("published should decode to false: %v", inserted.Published)
		}
	})

	mt.Run("indexes once per store", func(mt *mtest.T) {
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, storedDoc(first, "first", "first text")),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, storedDoc(second, "second", "second text")),
		)

		s := NewStore(mt.Coll)
		if _, err := s.Insert(context.Background(), NewNote{Title: "first", Content: "first text"}); err != nil {
			mt.Fatalf("first Insert: %s", err)
		}
		if _, err := s.Insert(context.Background(), NewNote{Title: "second", Content: "second text"}); err != nil {
			mt.Fatalf("second Insert: %s", err)
		}

		if got := startedCommands(mt, "createIndexes"); got != 1 {
			mt.Fatalf("createIndexes ran %d times, want 1", got)
		}
	})

	mt.Run("index failure retried", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "createIndexes failed", Name: "UnknownError"}),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, storedDoc(oid, "my note", "my note text")),
		)

		s := NewStore(mt.Coll)

		_, err := s.Insert(context.Background(), NewNote{Title: "my note", Content: "my note text"})
		var query QueryError
		if !errors.As(err, &query) {
			mt.Fatalf("Insert should fail with a query error when the index cannot be created: %v", err)
		}
		if query.Op != "create index" {
			mt.Errorf("query error op = %q, want %q", query.Op, "create index")
		}

		if _, err := s.Insert(context.Background(), NewNote{Title: "my note", Content: "my note text"}); err != nil {
			mt.Fatalf("Insert should retry the index creation: %s", err)
		}
		if got := startedCommands(mt, "createIndexes"); got != 2 {
			mt.Fatalf("createIndexes ran %d times, want 2", got)
		}
	})

	mt.Run("duplicate title", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error",
			}),
		)

		s := NewStore(mt.Coll)
		_, err := s.Insert(context.Background(), NewNote{Title: "my note", Content: "my note text"})

		var duplicate DuplicateKeyError
		if !errors.As(err, &duplicate) {
			mt.Fatalf("Insert should fail with a duplicate key error: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "duplicate key error occurred: ") {
			mt.Errorf("error = %q", err.Error())
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "insert failed", Name: "UnknownError"}),
		)

		s := NewStore(mt.Coll)
		_, err := s.Insert(context.Background(), NewNote{Title: "my note", Content: "my note text"})

		var query QueryError
		if !errors.As(err, &query) {
			mt.Fatalf("Insert should fail with a query error: %v", err)
		}
		if query.Op != "insert" {
			mt.Errorf("query error op = %q, want %q", query.Op, "insert")
		}
	})
}

func TestFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, storedDoc(oid, "my note", "my note text")),
		)

		s := NewStore(mt.Coll)
		found, err := s.FindByID(context.Background(), oid)
		if err != nil {
			mt.Fatalf("FindByID: %s", err)
		}

		if found == nil {
			mt.Fatal("FindByID should return the note")
		}
		if found.ID != oid {
			mt.Errorf("id = %s, want %s", found.ID.Hex(), oid.Hex())
		}
		if found.Title != "my note" {
			mt.Errorf("title = %q, want %q", found.Title, "my note")
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
		)

		s := NewStore(mt.Coll)
		found, err := s.FindByID(context.Background(), primitive.NewObjectID())
		if err != nil {
			mt.Fatalf("FindByID: %s", err)
		}
		if found != nil {
			mt.Fatalf("a miss should come back as a nil note: %+v", found)
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "find failed", Name: "UnknownError"}),
		)

		s := NewStore(mt.Coll)
		_, err := s.FindByID(context.Background(), primitive.NewObjectID())

		var query QueryError
		if !errors.As(err, &query) {
			mt.Fatalf("FindByID should fail with a query error: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "error during mongodb query: find: ") {
			mt.Errorf("error = %q", err.Error())
		}
	})
}

func TestFindPage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("page", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
				storedDoc(primitive.NewObjectID(), "first", "first text"),
				storedDoc(primitive.NewObjectID(), "second", "second text"),
			),
		)

		s := NewStore(mt.Coll)
		notes, err := s.FindPage(context.Background(), 1, 10)
		if err != nil {
			mt.Fatalf("FindPage: %s", err)
		}

		if len(notes) != 2 {
			mt.Fatalf("FindPage returned %d notes, want 2", len(notes))
		}
		if notes[0].Title != "first" || notes[1].Title != "second" {
			mt.Fatalf("FindPage should keep the cursor order: %+v", notes)
		}
	})

	mt.Run("empty page", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
		)

		s := NewStore(mt.Coll)
		notes, err := s.FindPage(context.Background(), 99, 10)
		if err != nil {
			mt.Fatalf("FindPage: %s", err)
		}

		if notes == nil {
			mt.Fatal("a page past the data should be an empty slice, not nil")
		}
		if len(notes) != 0 {
			mt.Fatalf("FindPage returned %d notes, want 0", len(notes))
		}
	})

	mt.Run("invalid window", func(mt *mtest.T) {
		s := NewStore(mt.Coll)
		_, err := s.FindPage(context.Background(), 0, 10)

		var pagination PaginationError
		if !errors.As(err, &pagination) {
			mt.Fatalf("FindPage should reject page 0: %v", err)
		}
		if got, want := err.Error(), "invalid pagination: page 0 limit 10"; got != want {
			mt.Errorf("error = %q, want %q", got, want)
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "find failed", Name: "UnknownError"}),
		)

		s := NewStore(mt.Coll)
		_, err := s.FindPage(context.Background(), 1, 10)

		var query QueryError
		if !errors.As(err, &query) {
			mt.Fatalf("FindPage should fail with a query error: %v", err)
		}
	})
}

func TestUpdateByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("updated", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: storedDoc(oid, "new title", "my note text")}),
		)

		title := "new title"
		s := NewStore(mt.Coll)
		updated, err := s.UpdateByID(context.Background(), oid, NoteUpdate{Title: &title})
		if err != nil {
			mt.Fatalf("UpdateByID: %s", err)
		}

		if updated == nil {
			mt.Fatal("UpdateByID should return the post-update note")
		}
		if updated.Title != "new title" {
			mt.Errorf("title = %q, want %q", updated.Title, "new title")
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "findAndModify" {
			mt.Fatalf("expected a findAndModify command: %+v", evt)
		}
		if evt.Command.Lookup("update", "$set", "updatedAt").Type != bsontype.DateTime {
			mt.Error("the update should always set updatedAt")
		}
		if isNew, _ := evt.Command.Lookup("new").BooleanOK(); !isNew {
			mt.Error("the update should ask for the post-update document")
		}
	})

	mt.Run("empty update still moves updatedAt", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: storedDoc(oid, "my note", "my note text")}),
		)

		s := NewStore(mt.Coll)
		if _, err := s.UpdateByID(context.Background(), oid, NoteUpdate{}); err != nil {
			mt.Fatalf("UpdateByID: %s", err)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "findAndModify" {
			mt.Fatalf("expected a findAndModify command: %+v", evt)
		}
		set, ok := evt.Command.Lookup("update", "$set").DocumentOK()
		if !ok {
			mt.Fatal("the update should be a $set merge")
		}
		elements, err := set.Elements()
		if err != nil {
			mt.Fatalf("reading $set: %s", err)
		}
		if len(elements) != 1 || elements[0].Key() != "updatedAt" {
			mt.Fatalf("an empty update should set only updatedAt: %v", set)
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
		)

		s := NewStore(mt.Coll)
		updated, err := s.UpdateByID(context.Background(), primitive.NewObjectID(), NoteUpdate{})
		if err != nil {
			mt.Fatalf("UpdateByID: %s", err)
		}
		if updated != nil {
			mt.Fatalf("a miss should come back as a nil note: %+v", updated)
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "findAndModify failed", Name: "UnknownError"}),
		)

		s := NewStore(mt.Coll)
		_, err := s.UpdateByID(context.Background(), primitive.NewObjectID(), NoteUpdate{})

		var query QueryError
		if !errors.As(err, &query) {
			mt.Fatalf("UpdateByID should fail with a query error: %v", err)
		}
		if query.Op != "update" {
			mt.Errorf("query error op = %q, want %q", query.Op, "update")
		}
	})
}

func TestDeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		s := NewStore(mt.Coll)
		deleted, err := s.DeleteByID(context.Background(), primitive.NewObjectID())
		if err != nil {
			mt.Fatalf("DeleteByID: %s", err)
		}
		if !deleted {
			mt.Fatal("DeleteByID should report the deletion")
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		s := NewStore(mt.Coll)
		deleted, err := s.DeleteByID(context.Background(), primitive.NewObjectID())
		if err != nil {
			mt.Fatalf("DeleteByID: %s", err)
		}
		if deleted {
			mt.Fatal("DeleteByID should report a miss as false")
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 8, Message: "delete failed", Name: "UnknownError"}),
		)

		s := NewStore(mt.Coll)
		_, err := s.DeleteByID(context.Background(), primitive.NewObjectID())

		var query QueryError
		if !errors.As(err, &query) {
			mt.Fatalf("DeleteByID should fail with a query error: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "error during mongodb query: delete: ") {
			mt.Errorf("error = %q", err.Error())
		}
	})
}
