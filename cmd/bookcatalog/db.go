package main

import (
	"fmt"
	"log"

	"bookcatalog/internal/simulation"
	"bookcatalog/internal/store"

	"github.com/urfave/cli/v2"
)

func runMigrate(cctx *cli.Context) error {
	dir := cctx.String("dir")
	command := cctx.String("command")
	if command == "create" {
		if err := store.CreateMigration(dir, cctx.String("name")); err != nil {
			return err
		}
		fmt.Fprintf(cctx.App.Writer, "Migration created: %s\n", cctx.String("name"))
		return nil
	}

	pool, err := openDB(cctx.Context, cctx.String("db-dsn"))
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := store.Migrate(pool, dir, command); err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	log.Printf("migrate %s finished", command)
	return nil
}

func runSeedDB(cctx *cli.Context) error {
	pool, err := openDB(cctx.Context, cctx.String("db-dsn"))
	if err != nil {
		return err
	}
	defer pool.Close()

	count := cctx.Int("count")
	log.Printf("Generating %d books...", count)
	n, err := store.NewBookPG(pool).InsertMany(cctx.Context, simulation.Generate(count, seedFlag(cctx)))
	if err != nil {
		return err
	}
	log.Printf("Successfully inserted %d books!", n)
	return nil
}
