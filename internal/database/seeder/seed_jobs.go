package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"techcareer/internal/database"
)

// JobRecordsSeeder generates synthetic postings for local development so the
// analytics endpoints have something to chew on before a real collector runs.
type JobRecordsSeeder struct {
	Count int
}

func (JobRecordsSeeder) Name() string { return "job_records" }

var sampleSkills = []string{
	"Python", "JavaScript", "React", "Node.js", "AWS",
	"Docker", "Kubernetes", "PostgreSQL", "MongoDB", "Machine Learning",
}

var sampleRoles = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Data Scientist",
	"DevOps Engineer",
}

var sampleCompanies = []string{
	"Tech Corp", "Innovation Labs", "Cloud Solutions", "Data Systems",
}

var sampleLocations = []string{
	"Seattle, WA", "San Francisco, CA", "New York, NY", "Remote",
}

func (s JobRecordsSeeder) Run(ctx context.Context, db database.DB) error {
	count := s.Count
	if count <= 0 {
		count = 50
	}

	var existing int
	if err := db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE source = 'sample_data'`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		role := sampleRoles[rng.Intn(len(sampleRoles))]
		skills := pickSkills(rng, 5+rng.Intn(6))
		salary := 80000 + rng.Float64()*100000
		posted := now.AddDate(0, 0, -rng.Intn(91))

		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (title, company, location, description, required_skills, experience_required, salary, posted_at, source)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'sample_data')`,
			role,
			sampleCompanies[rng.Intn(len(sampleCompanies))],
			sampleLocations[rng.Intn(len(sampleLocations))],
			fmt.Sprintf("Sample posting for %s", role),
			skills,
			rng.Float64()*10,
			salary,
			posted,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func pickSkills(rng *rand.Rand, n int) []string {
	if n > len(sampleSkills) {
		n = len(sampleSkills)
	}
	idx := rng.Perm(len(sampleSkills))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, sampleSkills[i])
	}
	return out
}
