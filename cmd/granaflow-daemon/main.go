package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/mq_client"
	"github.com/granaflow/granaflow/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	default:
		return nil
	}
}

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start granaflow-daemon: " + id)
		worker := CreateWorker(id)

		worker.Start()
	}
}
