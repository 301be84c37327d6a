package probe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type DatabaseChecker struct {
	kv KV
}

func NewDatabaseChecker(kv KV) *DatabaseChecker {
	return &DatabaseChecker{kv: kv}
}

// Check opens a single postgres connection with parameters from the KV
// store and proves liveness with one trivial metadata query.
func (d *DatabaseChecker) Check(ctx context.Context, prefix, key string) Result {
	params, err := d.kv.Get(ctx, prefix+"/"+key, map[string]string{})
	if err != nil {
		return fail(err)
	}

	host := param(params, "DB_HOST", "DATABASE_HOST")
	port := param(params, "DB_PORT", "DATABASE_PORT")
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s connect_timeout=10",
		host, port,
		param(params, "DB_USER", "DATABASE_USER"),
		param(params, "DB_PASS", "DATABASE_PASS"),
		param(params, "DB_NAME", "DATABASE_NAME"),
	)

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fail(err)
	}
	defer conn.Close(ctx)

	var datname string
	if err := conn.QueryRow(ctx, "SELECT datname FROM pg_database").Scan(&datname); err != nil {
		return fail(err)
	}

	return Result{Success: true, Message: fmt.Sprintf("host: %s on port: %s", host, port)}
}
