package importer

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner performs a single per-file import attempt. Implementations must be
// safe to call sequentially for many files on one connection/profile.
type Runner interface {
	Run(ctx context.Context, file string) error
}

// GetRunner returns the Runner implementation for the configured client
// kind: "driver" executes files over a database/sql connection, "mysql"
// pipes them into the external mysql client binary.
func GetRunner(client, dsn string, clientArgs []string) (Runner, error) {
	switch client {
	case "", "driver":
		return NewDriverRunner(dsn)
	case "mysql", "client":
		return NewClientRunner("mysql", clientArgs)
	default:
		return nil, fmt.Errorf("unknown import client %q (use \"driver\" or \"mysql\")", client)
	}
}

// DriverRunner imports files through the MySQL driver. The DSN is forced to
// multiStatements so a whole segment file can go through a single Exec.
type DriverRunner struct {
	db *sql.DB
}

func NewDriverRunner(dsn string) (*DriverRunner, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database.dsn is required (via flag or config)")
	}
	db, err := sql.Open("mysql", forceMultiStatements(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return &DriverRunner{db: db}, nil
}

func (r *DriverRunner) Run(ctx context.Context, file string) error {
	body, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, string(body)); err != nil {
		return fmt.Errorf("exec failed: %w", err)
	}
	return nil
}

func (r *DriverRunner) Close() error {
	return r.db.Close()
}

func forceMultiStatements(dsn string) string {
	if strings.Contains(dsn, "multiStatements") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&multiStatements=true"
	}
	return dsn + "?multiStatements=true"
}

// ClientRunner imports files by feeding them to an external client binary
// on stdin, one invocation per file.
type ClientRunner struct {
	bin  string
	args []string
}

func NewClientRunner(bin string, args []string) (*ClientRunner, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("import client %q not found in PATH: %w", bin, err)
	}
	return &ClientRunner{bin: path, args: args}, nil
}

func (r *ClientRunner) Run(ctx context.Context, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	cmd := exec.CommandContext(ctx, r.bin, r.args...)
	cmd.Stdin = f
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}
