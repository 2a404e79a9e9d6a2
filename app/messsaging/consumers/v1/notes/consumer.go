package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/RAprogramm/notes-api/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume receives note events from the subscription until ctx is
// canceled, handling up to maxWorkers messages at a time.
func Consume(ctx context.Context, log *zap.SugaredLogger, svc *note.Service, sub *pubsub.Subscription, maxWorkers int) error {
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			log.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				log.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				var c note.NewNote
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &c)

				if _, err := svc.Create(ctx, c); err != nil {
					log.Errorf("failed to create event %+v: err: %s", e.Data, err)
				}
			case "delete":
				var d struct {
					ID string `json:"id"`
				}
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &d)

				if _, err := svc.Delete(ctx, d.ID); err != nil {
					log.Errorf("failed to delete event %+v: err: %s", e.Data, err)
				}
			default:
				log.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
