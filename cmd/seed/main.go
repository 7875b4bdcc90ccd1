package main

import (
	"log"

	"github.com/sahilchouksey/college-compass/config"
	"github.com/sahilchouksey/college-compass/database"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	var store database.Storage
	if getEnv.DB_DRIVER == "pq" {
		store, err = database.Start()
	} else {
		store, err = database.StartGORM()
	}
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	if err := database.Seed(store); err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	log.Println("Seeding complete")
}
