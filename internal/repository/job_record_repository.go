package repository

import (
	"context"
	"fmt"
	"time"

	"techcareer/internal/database"
	"techcareer/internal/domain/job"
)

// JobRecordRepository is the read-only query surface over the job-posting
// store. Every analytics computation goes through it; nothing in this
// service writes records outside of seeding.
type JobRecordRepository interface {
	// ListWithSkills scans every record that carries at least one required
	// skill.
	ListWithSkills(ctx context.Context) ([]job.Record, error)
	// ListByRole returns up to limit records whose title contains role,
	// case-insensitively.
	ListByRole(ctx context.Context, role string, limit int) ([]job.Record, error)
	CountByRole(ctx context.Context, role string) (int, error)
	CountByRoleWithSkill(ctx context.Context, role, skill string) (int, error)
	CountByRoleExperienceBetween(ctx context.Context, role string, minYears, maxYears float64) (int, error)
	// ListSalariesByRole returns the non-null salaries under a role title,
	// optionally narrowed by location. An empty location means no filter.
	ListSalariesByRole(ctx context.Context, role, location string) ([]float64, error)
	// ListPostedSince returns records posted at or after since, with optional
	// role/location substring filters.
	ListPostedSince(ctx context.Context, since time.Time, role, location string) ([]job.Record, error)
	// CountWithSkillPostedBetween counts records containing skill posted in
	// [from, to), with optional role/location filters.
	CountWithSkillPostedBetween(ctx context.Context, skill string, from, to time.Time, role, location string) (int, error)
	// ListSalaryPointsSince returns (posted_at, salary) pairs for
	// salary-bearing records under a role, ordered by posting date.
	ListSalaryPointsSince(ctx context.Context, role string, since time.Time, location string) ([]job.SalaryPoint, error)
}

type PostgresJobRecordRepository struct {
	db database.DB
}

func NewPostgresJobRecordRepository(db database.DB) *PostgresJobRecordRepository {
	return &PostgresJobRecordRepository{db: db}
}

const recordColumns = `id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(description, ''), COALESCE(required_skills, '{}'), COALESCE(experience_required, 0),
	salary, COALESCE(posted_at, NOW()), COALESCE(source, '')`

func (r *PostgresJobRecordRepository) ListWithSkills(ctx context.Context) ([]job.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM jobs
		 WHERE cardinality(required_skills) > 0
		 ORDER BY posted_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *PostgresJobRecordRepository) ListByRole(ctx context.Context, role string, limit int) ([]job.Record, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM jobs
		 WHERE title ILIKE '%' || $1 || '%'
		 ORDER BY posted_at ASC, id ASC
		 LIMIT $2`,
		role, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *PostgresJobRecordRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var c int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM jobs WHERE title ILIKE '%' || $1 || '%'`,
		role,
	)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRecordRepository) CountByRoleWithSkill(ctx context.Context, role, skill string) (int, error) {
	var c int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1)
		 FROM jobs
		 WHERE title ILIKE '%' || $1 || '%'
		   AND $2 = ANY(required_skills)`,
		role, skill,
	)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRecordRepository) CountByRoleExperienceBetween(ctx context.Context, role string, minYears, maxYears float64) (int, error) {
	var c int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(1)
		 FROM jobs
		 WHERE title ILIKE '%' || $1 || '%'
		   AND experience_required BETWEEN $2 AND $3`,
		role, minYears, maxYears,
	)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRecordRepository) ListSalariesByRole(ctx context.Context, role, location string) ([]float64, error) {
	q := `SELECT salary
	      FROM jobs
	      WHERE title ILIKE '%' || $1 || '%'
	        AND salary IS NOT NULL`
	args := []any{role}
	if location != "" {
		q += ` AND location ILIKE '%' || $2 || '%'`
		args = append(args, location)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]float64, 0)
	for rows.Next() {
		var s float64
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRecordRepository) ListPostedSince(ctx context.Context, since time.Time, role, location string) ([]job.Record, error) {
	q := `SELECT ` + recordColumns + `
	      FROM jobs
	      WHERE posted_at >= $1`
	args := []any{since}
	if role != "" {
		args = append(args, role)
		q += fmt.Sprintf(` AND title ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if location != "" {
		args = append(args, location)
		q += fmt.Sprintf(` AND location ILIKE '%%' || $%d || '%%'`, len(args))
	}
	q += ` ORDER BY posted_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *PostgresJobRecordRepository) CountWithSkillPostedBetween(ctx context.Context, skill string, from, to time.Time, role, location string) (int, error) {
	q := `SELECT COUNT(1)
	      FROM jobs
	      WHERE $1 = ANY(required_skills)
	        AND posted_at >= $2 AND posted_at < $3`
	args := []any{skill, from, to}
	if role != "" {
		args = append(args, role)
		q += fmt.Sprintf(` AND title ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if location != "" {
		args = append(args, location)
		q += fmt.Sprintf(` AND location ILIKE '%%' || $%d || '%%'`, len(args))
	}

	var c int
	row := r.db.QueryRow(ctx, q, args...)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRecordRepository) ListSalaryPointsSince(ctx context.Context, role string, since time.Time, location string) ([]job.SalaryPoint, error) {
	q := `SELECT posted_at, salary
	      FROM jobs
	      WHERE title ILIKE '%' || $1 || '%'
	        AND posted_at >= $2
	        AND salary IS NOT NULL
	        AND posted_at IS NOT NULL`
	args := []any{role, since}
	if location != "" {
		args = append(args, location)
		q += fmt.Sprintf(` AND location ILIKE '%%' || $%d || '%%'`, len(args))
	}
	q += ` ORDER BY posted_at ASC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.SalaryPoint, 0)
	for rows.Next() {
		var p job.SalaryPoint
		if err := rows.Scan(&p.PostedAt, &p.Salary); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRecords(rows database.Rows) ([]job.Record, error) {
	out := make([]job.Record, 0)
	for rows.Next() {
		var rec job.Record
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Company, &rec.Location,
			&rec.Description, &rec.RequiredSkills, &rec.ExperienceRequired,
			&rec.Salary, &rec.PostedAt, &rec.Source,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
