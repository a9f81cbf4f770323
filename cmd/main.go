package main

import (
	"log"
	"os"

	"github.com/JaiyeofGod/Dualforce/config"
	"github.com/JaiyeofGod/Dualforce/routes"
	"github.com/JaiyeofGod/Dualforce/utils"
)

func main() {
	config.InitDB()

	mailer, err := utils.NewSESMailer()
	if err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}

	r := routes.SetupRouter(config.DB, mailer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
