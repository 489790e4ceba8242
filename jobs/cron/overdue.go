package cron

import (
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/syncer"
	"github.com/granaflow/granaflow/types"
)

// OverdueJob sweeps scheduled transactions once a day: entries that came
// due are moved from upcoming to pending, entries past due from pending
// to overdue. Affected users get a change event so live sessions refetch.
type OverdueJob struct {
}

func (j *OverdueJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:05").Do(sweepOverdue)
	<-s.Start()
}

func sweepOverdue() {
	today := time.Now().Format("2006-01-02")

	var affected []uint64
	config.DataBase.
		Model(&models.ScheduledTransaction{}).
		Distinct().
		Where("(status = ? AND scheduled_date <= ?) OR (status = ? AND scheduled_date < ?)",
			types.StatusUpcoming, today, types.StatusPending, today).
		Pluck("user_id", &affected)

	err := config.DataBase.
		Model(&models.ScheduledTransaction{}).
		Where("status = ? AND scheduled_date < ?", types.StatusPending, today).
		Update("status", types.StatusOverdue).Error
	if err != nil {
		config.Logger.Errorf("cron: overdue sweep: %v", err)
		return
	}

	err = config.DataBase.
		Model(&models.ScheduledTransaction{}).
		Where("status = ? AND scheduled_date <= ?", types.StatusUpcoming, today).
		Update("status", types.StatusPending).Error
	if err != nil {
		config.Logger.Errorf("cron: pending sweep: %v", err)
		return
	}

	for _, userID := range affected {
		syncer.PublishChange(userID, types.TableScheduledTransactions, types.EventUpdate)
	}

	config.Logger.Infof("cron: overdue sweep done, %d users affected", len(affected))
}
