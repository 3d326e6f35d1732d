package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ananyaa0518/resQAI/internal/domain"
	"github.com/ananyaa0518/resQAI/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) Create(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.Create"

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO reports (text, latitude, longitude, category, status, origin_address, created_at, verified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := p.pool.QueryRow(ctx, query,
		report.Text,
		report.Latitude,
		report.Longitude,
		report.Category,
		report.Status,
		report.OriginAddress,
		report.CreatedAt,
		report.VerifiedAt,
	).Scan(&report.ID)
	if err != nil {
		p.logger.Error("db insert failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const reportColumns = `id, text, latitude, longitude, category, status, origin_address, created_at, verified_at`

func (p *ReportRepo) List(ctx context.Context) ([]*domain.Report, error) {
	const op = "postgres.Report.List"

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		ORDER BY created_at DESC, id DESC
	`, reportColumns)

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}

func (p *ReportRepo) Get(ctx context.Context, id int64) (*domain.Report, error) {
	const op = "postgres.Report.Get"

	query := fmt.Sprintf(`
		SELECT %s
		FROM reports
		WHERE id = $1
	`, reportColumns)

	report, err := scanReport(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}

	return report, nil
}

func (p *ReportRepo) UpdateStatus(ctx context.Context, report *domain.Report) error {
	const op = "postgres.Report.UpdateStatus"

	const query = `
		UPDATE reports
		SET status      = $2,
			verified_at = $3
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, report.ID, report.Status, report.VerifiedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", report.ID))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// CountRecentByOrigin counts reports from origin created strictly after
// since.
func (p *ReportRepo) CountRecentByOrigin(ctx context.Context, origin string, since time.Time) (int64, error) {
	const op = "postgres.Report.CountRecentByOrigin"

	const query = `
		SELECT COUNT(*)
		FROM reports
		WHERE origin_address = $1 AND created_at > $2
	`

	var cnt int64
	if err := p.pool.QueryRow(ctx, query, origin, since).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("origin", origin),
		)
		return 0, e.WrapError(ctx, op, err)
	}

	return cnt, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*domain.Report, error) {
	var report domain.Report
	err := row.Scan(
		&report.ID,
		&report.Text,
		&report.Latitude,
		&report.Longitude,
		&report.Category,
		&report.Status,
		&report.OriginAddress,
		&report.CreatedAt,
		&report.VerifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &report, nil
}
