package gateway

import (
	"time"

	"gorm.io/gorm"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/store"
	"github.com/granaflow/granaflow/syncer"
	"github.com/granaflow/granaflow/types"
)

// Gateway issues validated writes to the remote ledger store for one
// session. The snapshot only changes after the remote operation confirms
// success; there is no optimistic local update.
type Gateway struct {
	DB     *gorm.DB
	Member *models.Member
	Store  *store.Store
}

func New(db *gorm.DB, member *models.Member, st *store.Store) *Gateway {
	return &Gateway{
		DB:     db,
		Member: member,
		Store:  st,
	}
}

func (g *Gateway) requireSession() error {
	if g.Member == nil || g.Member.ID == 0 {
		return &types.AuthError{Reason: "no active session"}
	}

	return nil
}

// ResolvePhone looks up the phone number associated with a creator
// display name, consulting the redis cache first. Used to tag records
// for downstream notification delivery.
func (g *Gateway) ResolvePhone(creatorName string) string {
	if creatorName == "" {
		return ""
	}

	cacheKey := "granaflow:phone:" + creatorName

	var phone string
	if err := config.Redis.GetKey(cacheKey, &phone); err == nil && phone != "" {
		return phone
	}

	var member models.Member
	err := g.DB.Where("name = ?", creatorName).First(&member).Error
	if err != nil || !member.Phone.Valid {
		return ""
	}

	config.Redis.SetKey(cacheKey, member.Phone.String, 10*time.Minute)

	return member.Phone.String
}

// RecomputeGoals refetches goals and transactions and rewrites every
// goal's cached current_amount from scratch. Best-effort after a write:
// failures are logged, never surfaced to the originating mutation.
func (g *Gateway) RecomputeGoals() {
	goals, err := models.LoadGoals(g.DB, g.Member.ID)
	if err != nil {
		config.Logger.Errorf("gateway: goal recompute: %v", err)
		return
	}

	transactions, err := models.LoadTransactions(g.DB, g.Member.ID)
	if err != nil {
		config.Logger.Errorf("gateway: goal recompute: %v", err)
		return
	}

	categories, err := models.LoadCategories(g.DB, g.Member.ID)
	if err != nil {
		config.Logger.Errorf("gateway: goal recompute: %v", err)
		return
	}

	loc := g.Store.Location()

	for i := range goals {
		progress := aggregation.ComputeGoalProgress(goals[i], transactions, categories, loc)

		if goals[i].CurrentAmount.Equal(progress.ActualAmount) {
			continue
		}

		goals[i].CurrentAmount = progress.ActualAmount
		err := g.DB.Model(&models.Goal{}).
			Where("id = ? AND user_id = ?", goals[i].ID, g.Member.ID).
			Update("current_amount", progress.ActualAmount).Error
		if err != nil {
			config.Logger.Errorf("gateway: goal %d recompute write: %v", goals[i].ID, err)
		}
	}

	g.Store.Apply(store.Action{Type: store.ActionLoadGoals, Goals: goals})
	syncer.PublishChange(g.Member.ID, types.TableGoals, types.EventUpdate)
}
