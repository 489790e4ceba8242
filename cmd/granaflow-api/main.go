package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/granaflow/granaflow/config"
	"github.com/granaflow/granaflow/controllers"
	"github.com/granaflow/granaflow/mq_client"
	"github.com/granaflow/granaflow/routes"
	engine "github.com/granaflow/granaflow/server"
)

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

	controllers.InitializeRegistry(engine.NewSessionRegistry(config.DataBase))

	r := routes.SetupRouter()
	r.Listen(":3000")
}
