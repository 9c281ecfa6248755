package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/wevote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/wevote/internal/config"
)

func main() {
	all := flag.Bool("all", false, "Apply every up migration")
	flag.Parse()

	if !*all && flag.NArg() < 1 {
		log.Fatal("a migration name is required.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	if *all {
		if err := postgres.ApplyMigrations(ctx, db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All migrations executed successfully.")
		return
	}

	name, fileContent, err := postgres.MigrationFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.ExecContext(ctx, string(fileContent)); err != nil {
		log.Fatalf("Failed to execute SQL file %s: %v", name, err)
	}

	fmt.Printf("Migration file %s executed successfully.\n", name)
}
