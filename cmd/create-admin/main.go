package main

import (
	"log"
	"os"

	"mentorhub_backend/internals/bootstrap"
	"mentorhub_backend/internals/configs"
)

func main() {
	os.Exit(run())
}

func run() int {
	configs.LoadEnv()

	log.Println("👑 Ensuring admin account...")
	db := configs.InitSeederDB()
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := bootstrap.EnsureAdmin(db, bootstrap.AdminOptionsFromEnv()); err != nil {
		log.Printf("❌ Admin bootstrap failed: %v", err)
		return 1
	}
	return 0
}
