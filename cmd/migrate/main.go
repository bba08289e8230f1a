package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"cmcreport/internal/config"
)

const usage = "Usage: migrate [up|down|steps N|force V|version]"

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Store.Backend != config.StoreBackendPostgres {
		log.Printf("store backend is %q; migrations only apply to postgres", cfg.Store.Backend)
	}

	m, err := migrate.New("file://"+cfg.DB.MigrationsDir, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("failed to create migrate instance: %v", err)
	}
	defer m.Close()

	switch cmd := os.Args[1]; cmd {
	case "up":
		check("up", m.Up())
		log.Println("migrations applied successfully")

	case "down":
		check("down", m.Down())
		log.Println("migrations reverted successfully")

	case "steps":
		n := intArg("steps")
		check("steps", m.Steps(n))
		log.Printf("applied %d migration steps", n)

	case "force":
		// Clears the dirty flag after a failed migration was fixed by hand.
		v := intArg("force")
		check("force", m.Force(v))
		log.Printf("forced version %d", v)

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			return
		}
		if err != nil {
			log.Fatalf("failed to get version: %v", err)
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)

	default:
		fmt.Printf("unknown command: %s\n", cmd)
		fmt.Println(usage)
		os.Exit(1)
	}
}

func check(op string, err error) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("migration %s failed: %v", op, err)
	}
}

func intArg(op string) int {
	if len(os.Args) < 3 {
		log.Fatalf("%s requires a number argument", op)
	}
	n, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("invalid %s argument: %v", op, err)
	}
	return n
}
