package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

func main() {
	var dropFlag bool
	flag.BoolVar(&dropFlag, "drop", false, "drop all tables before applying the schema")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("connect database: %w", err))
	}
	defer pool.Close()

	if dropFlag {
		if _, err := pool.Exec(ctx, sqlinline.DropDDL); err != nil {
			exitWithError(fmt.Errorf("drop schema: %w", err))
		}
		fmt.Println("schema dropped")
	}

	if _, err := pool.Exec(ctx, sqlinline.SchemaDDL); err != nil {
		exitWithError(fmt.Errorf("apply schema: %w", err))
	}
	fmt.Println("schema applied")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
