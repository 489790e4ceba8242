package cron

import (
	"encoding/json"
	"time"

	"github.com/jasonlvhit/gocron"

	"github.com/granaflow/granaflow/aggregation"
	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/mq_client"
)

// RollupJob writes each member's current-month rollup to influx once a
// day, building a history of income/expense/balance points.
type RollupJob struct {
}

func (j *RollupJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Day().At("00:30").Do(writeRollups)
	<-s.Start()
}

func writeRollups() {
	var members []models.Member
	config.DataBase.Find(&members)

	now := time.Now()

	for _, member := range members {
		loc := member.Location()

		transactions, err := models.LoadTransactions(config.DataBase, member.ID)
		if err != nil {
			config.Logger.Errorf("cron: rollup for %s: %v", member.UID, err)
			continue
		}

		financials := aggregation.ComputeMonthlyFinancials(transactions, now, loc)

		income, _ := financials.Income.Float64()
		expenses, _ := financials.Expenses.Float64()
		balance, _ := financials.AccumulatedBalance.Float64()

		config.InfluxDB.NewPoint(
			"monthly_financials",
			map[string]string{
				"uid":   member.UID,
				"month": now.In(loc).Format("2006-01"),
			},
			map[string]interface{}{
				"income":              income,
				"expenses":            expenses,
				"accumulated_balance": balance,
			},
		)

		payload, _ := json.Marshal(map[string]interface{}{
			"uid":                 member.UID,
			"month":               now.In(loc).Format("2006-01"),
			"income":              income,
			"expenses":            expenses,
			"accumulated_balance": balance,
		})
		mq_client.Enqueue("rollup_writer", payload)
	}

	config.Logger.Infof("cron: rollup written for %d members", len(members))
}
