package syncer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/store"
	"github.com/granaflow/granaflow/types"
)

// ChannelFor names the per-user realtime channel.
func ChannelFor(userID uint64) string {
	return fmt.Sprintf("granaflow:events:%d", userID)
}

// Adapter owns the single realtime subscription for one session. On any
// change notification for the owned user it refetches the whole affected
// collection and replaces it in the store; it never applies diffs.
type Adapter struct {
	mu sync.Mutex

	db     *gorm.DB
	member *models.Member
	store  *store.Store

	pubsub *redis.PubSub
	done   chan struct{}
}

func NewAdapter(db *gorm.DB, member *models.Member, st *store.Store) *Adapter {
	return &Adapter{
		db:     db,
		member: member,
		store:  st,
	}
}

// Start opens the subscription. Any previous subscription is torn down
// first so a re-subscribe can never double-deliver.
func (a *Adapter) Start() error {
	if a.member == nil {
		return &types.AuthError{Reason: "no session"}
	}

	a.Stop()

	a.mu.Lock()
	defer a.mu.Unlock()

	pubsub := config.Redis.Subscribe(ChannelFor(a.member.ID))
	if _, err := pubsub.Receive(config.Redis.Ctx); err != nil {
		pubsub.Close()
		return &types.RemoteError{Op: "subscribe", Err: err}
	}

	a.pubsub = pubsub
	a.done = make(chan struct{})

	go a.consume(pubsub.Channel(), a.done)

	return nil
}

// Stop tears the subscription down. In-flight refetches are not aborted;
// their late results simply land on the store.
func (a *Adapter) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pubsub != nil {
		close(a.done)
		a.pubsub.Close()
		a.pubsub = nil
	}
}

func (a *Adapter) consume(messages <-chan *redis.Message, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case message, ok := <-messages:
			if !ok {
				return
			}

			var event types.ChangeEvent
			if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
				config.Logger.Errorf("syncer: bad change event: %v", err)
				continue
			}

			if event.UserID != a.member.ID {
				continue
			}

			a.refetch(event.Table)
		}
	}
}

// refetch replaces one collection from the authoritative store. A failed
// refetch is logged and leaves the snapshot stale until the next event or
// a manual Refresh; there is no automatic retry.
func (a *Adapter) refetch(table string) {
	switch table {
	case types.TableTransactions:
		transactions, err := models.LoadTransactions(a.db, a.member.ID)
		if err != nil {
			config.Logger.Errorf("syncer: refetch transactions: %v", err)
			return
		}
		a.store.Apply(store.Action{Type: store.ActionLoadTransactions, Transactions: transactions})
	case types.TableCategories:
		categories, err := models.LoadCategories(a.db, a.member.ID)
		if err != nil {
			config.Logger.Errorf("syncer: refetch categories: %v", err)
			return
		}
		a.store.Apply(store.Action{Type: store.ActionLoadCategories, Categories: categories})
	case types.TableGoals:
		goals, err := models.LoadGoals(a.db, a.member.ID)
		if err != nil {
			config.Logger.Errorf("syncer: refetch goals: %v", err)
			return
		}
		a.store.Apply(store.Action{Type: store.ActionLoadGoals, Goals: goals})
	case types.TableScheduledTransactions:
		scheduled, err := models.LoadScheduledTransactions(a.db, a.member.ID)
		if err != nil {
			config.Logger.Errorf("syncer: refetch scheduled transactions: %v", err)
			return
		}
		a.store.Apply(store.Action{Type: store.ActionLoadScheduled, Scheduled: scheduled})
	default:
		config.Logger.Warnf("syncer: change event for unwatched table %q", table)
	}
}

// Refresh reloads every collection. Used for the initial load on login
// and for explicit manual refreshes.
func (a *Adapter) Refresh() error {
	if a.member == nil {
		return &types.AuthError{Reason: "no session"}
	}

	transactions, err := models.LoadTransactions(a.db, a.member.ID)
	if err != nil {
		a.store.Apply(store.Action{Type: store.ActionSetError, Error: err.Error()})
		return err
	}

	categories, err := models.LoadCategories(a.db, a.member.ID)
	if err != nil {
		a.store.Apply(store.Action{Type: store.ActionSetError, Error: err.Error()})
		return err
	}

	goals, err := models.LoadGoals(a.db, a.member.ID)
	if err != nil {
		a.store.Apply(store.Action{Type: store.ActionSetError, Error: err.Error()})
		return err
	}

	scheduled, err := models.LoadScheduledTransactions(a.db, a.member.ID)
	if err != nil {
		a.store.Apply(store.Action{Type: store.ActionSetError, Error: err.Error()})
		return err
	}

	a.store.Apply(store.Action{Type: store.ActionLoadTransactions, Transactions: transactions})
	a.store.Apply(store.Action{Type: store.ActionLoadCategories, Categories: categories})
	a.store.Apply(store.Action{Type: store.ActionLoadGoals, Goals: goals})
	a.store.Apply(store.Action{Type: store.ActionLoadScheduled, Scheduled: scheduled})

	return nil
}
