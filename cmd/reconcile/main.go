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

	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// reconcile audits the invariants the request path cannot guarantee alone:
// funds_raised must equal the sum of the project's donations, and the ledger
// should hold one donation entry per donation row. Ledger appends are
// best-effort on the request path, so entry gaps are possible and worth
// surfacing.
func main() {
	var verboseFlag bool
	flag.BoolVar(&verboseFlag, "v", false, "print every project, not only drifted ones")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger(os.Getenv("APP_ENV"))
	runner := infra.NewSQLRunner(pool, logger)

	rows, err := runner.Query(ctx, sqlinline.QReconcileProjects)
	if err != nil {
		exitWithError(fmt.Errorf("load projects: %w", err))
	}
	defer rows.Close()

	type projectRow struct {
		id            string
		title         string
		fundsRaised   int64
		donationSum   int64
		donationCount int64
	}
	var projects []projectRow
	for rows.Next() {
		var p projectRow
		if err := rows.Scan(&p.id, &p.title, &p.fundsRaised, &p.donationSum, &p.donationCount); err != nil {
			exitWithError(fmt.Errorf("scan project: %w", err))
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		exitWithError(fmt.Errorf("iterate projects: %w", err))
	}

	drifted := 0
	for _, p := range projects {
		var ledgerEntries int64
		row := runner.QueryRow(ctx, sqlinline.QCountDonationLedgerEntries, p.id)
		if err := row.Scan(&ledgerEntries); err != nil {
			exitWithError(fmt.Errorf("count ledger entries for %s: %w", p.id, err))
		}

		counterDrift := p.fundsRaised != p.donationSum
		ledgerGap := ledgerEntries != p.donationCount
		if counterDrift || ledgerGap {
			drifted++
			fmt.Printf("DRIFT %s (%s): funds_raised=%d donations_sum=%d donations=%d ledger_entries=%d\n",
				p.id, p.title, p.fundsRaised, p.donationSum, p.donationCount, ledgerEntries)
			continue
		}
		if verboseFlag {
			fmt.Printf("ok    %s (%s): funds_raised=%d donations=%d\n", p.id, p.title, p.fundsRaised, p.donationCount)
		}
	}

	fmt.Printf("%d projects checked, %d drifted\n", len(projects), drifted)
	if drifted > 0 {
		os.Exit(1)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
