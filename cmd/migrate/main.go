package main

import (
	"context"
	"fmt"
	"log"
	"time"

	mongoMigration "cabanas/internal/migrations/mongo"
	"cabanas/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()
	cfg := config.Load(JobName)
	cfg.SetMongo()
	cfg.Log.Info("Starting Mongo migration job")
	defer cfg.GracefulShutdown()
	migrateMongo(ctx, cfg)
	fmt.Println("Migration completed successfully.")
}

func migrateMongo(ctx context.Context, cfg *config.Config) {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := mongoMigration.SeedCabins(ctx, db, cfg.SeedFile); err != nil {
		log.Fatalf("Cabin seed failed: %v", err)
	}
}
