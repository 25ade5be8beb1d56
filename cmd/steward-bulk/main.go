package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/xyzruben/steward/constants"
	"github.com/xyzruben/steward/internal/bulkops"
	"github.com/xyzruben/steward/internal/export"
	repo "github.com/xyzruben/steward/internal/repository"
)

// steward-bulk runs filter, stats, and export operations from the command
// line. It reads a filter document from a JSON file, validates it against
// the filter schema, and executes against either Postgres (DB_URL) or a
// local SQLite database (-sqlite).
func main() {
	var (
		userFlag   = flag.String("user", "", "owner user id (uuid, required)")
		filterFlag = flag.String("filter", "", "path to a filter JSON file (empty means no constraints)")
		opFlag     = flag.String("op", "filter", "operation: filter | ids | options | stats | export")
		formatFlag = flag.String("format", "csv", "export format: csv | json | pdf | xlsx")
		outFlag    = flag.String("out", "", "output file for -op export (default: export filename in cwd)")
		sqliteFlag = flag.String("sqlite", "", "sqlite DSN (e.g. file:steward.db or :memory:) instead of DB_URL")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fatalf("invalid -user: %v", err)
	}

	var filter bulkops.Filter
	if *filterFlag != "" {
		data, err := os.ReadFile(*filterFlag)
		if err != nil {
			fatalf("reading filter file: %v", err)
		}
		filter, err = bulkops.ParseFilterJSON(data)
		if err != nil {
			fatalf("invalid filter: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, cleanup, err := openStore(ctx, *sqliteFlag, logger)
	if err != nil {
		fatalf("opening database: %v", err)
	}
	defer cleanup()

	queries := bulkops.NewQueryService(store, nil, 0, logger)
	mutations := bulkops.NewMutationService(store, nil, logger)

	switch *opFlag {
	case "filter":
		res, err := queries.FilterReceipts(ctx, userID, filter)
		if err != nil {
			fatalf("filter: %v", err)
		}
		printJSON(res)
	case "ids":
		ids, err := queries.FilterReceiptIDs(ctx, userID, filter)
		if err != nil {
			fatalf("filter ids: %v", err)
		}
		printJSON(ids)
	case "options":
		opts, err := queries.FilterOptions(ctx, userID)
		if err != nil {
			fatalf("filter options: %v", err)
		}
		printJSON(opts)
	case "stats":
		stats, err := queries.ReceiptStats(ctx, userID, &filter)
		if err != nil {
			fatalf("stats: %v", err)
		}
		printJSON(stats)
	case "export":
		if err := runExport(ctx, queries, mutations, userID, filter, *formatFlag, *outFlag, logger); err != nil {
			fatalf("export: %v", err)
		}
	default:
		fatalf("unknown -op %q (want filter, ids, options, stats, or export)", *opFlag)
	}
}

// runExport filters to IDs, prepares the export set through the same
// ownership preflight the bulk RPCs use, and writes the formatted payload.
func runExport(ctx context.Context, queries *bulkops.QueryService, mutations *bulkops.MutationService, userID uuid.UUID, filter bulkops.Filter, format, out string, logger *slog.Logger) error {
	ef, ok := constants.ParseExportFormat(format)
	if !ok {
		return fmt.Errorf("unsupported export format %q", format)
	}
	ids, err := queries.FilterReceiptIDs(ctx, userID, filter)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no receipts match the filter")
	}
	res, err := mutations.PrepareExport(ctx, userID, ids)
	if err != nil {
		return err
	}

	payload, err := export.NewFormatter(logger).Format(res.Receipts, ef, bulkops.SummarizeReceipts(res.Receipts))
	if err != nil {
		return err
	}
	if out == "" {
		out = payload.Filename
	}
	if err := os.WriteFile(out, payload.Bytes, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %d receipts to %s (%d bytes, %s)\n",
		len(res.Receipts), out, payload.Size, payload.ContentType)
	return nil
}

// openStore picks SQLite when -sqlite is set, otherwise Postgres via DB_URL.
// The SQLite path has no pgx pool; monthly stats bucket in-process there.
func openStore(ctx context.Context, sqliteDSN string, logger *slog.Logger) (bulkops.Store, func(), error) {
	if sqliteDSN != "" {
		client, err := repo.OpenSQLite(ctx, sqliteDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() { _ = client.Close() }
		return repo.NewReceiptRepository(client, nil, logger), cleanup, nil
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return nil, nil, fmt.Errorf("DB_URL is required when -sqlite is not set")
	}
	client, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dsn,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { repo.Close(client, pool, logger) }
	return repo.NewReceiptRepository(client, pool, logger), cleanup, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatalf("encoding output: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "steward-bulk: "+format+"\n", args...)
	os.Exit(1)
}
