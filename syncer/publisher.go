package syncer

import (
	"github.com/google/uuid"

	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/types"
)

// PublishChange emits a change notification on the owner's realtime
// channel after a confirmed write. Publish failures are logged and
// swallowed: the write already succeeded and the snapshot will converge
// on the next event or manual refresh.
func PublishChange(userID uint64, table string, event types.ChangeKind) {
	payload := types.ChangeEvent{
		ID:     uuid.NewString(),
		Event:  event,
		Table:  table,
		UserID: userID,
	}

	if err := config.Redis.Publish(ChannelFor(userID), payload); err != nil {
		config.Logger.Errorf("syncer: publish %s %s: %v", event, table, err)
	}
}
