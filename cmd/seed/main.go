package main

import (
	"log"
	"os"
	"time"

	"mentorhub_backend/internals/configs"
	"mentorhub_backend/internals/seeds"
)

func main() {
	os.Exit(run())
}

func run() int {
	configs.LoadEnv()

	log.Println("🌱 Seeding demo data...")
	db := configs.InitSeederDB()
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := seeds.Run(db, time.Now()); err != nil {
		log.Printf("❌ Seeding failed: %v", err)
		return 1
	}
	return 0
}
