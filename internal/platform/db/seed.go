package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"pms/internal/domain/auth"
	"pms/internal/platform/config"
)

var seedCategories = map[string]string{
	"Efficiency":  "Process and delivery improvements",
	"Quality":     "Quality of work and defect reduction",
	"Development": "Skills and professional growth",
	"Leadership":  "Mentoring and team contributions",
}

var seedPredefinedGoals = map[string][]string{
	"Efficiency": {
		"Reduce average task turnaround time by a measurable percentage",
		"Automate at least one recurring manual process in the team",
	},
	"Quality": {
		"Reduce production defects through unit testing and code review",
		"Keep regression escape rate below the agreed threshold",
	},
	"Development": {
		"Master a new technology to the level of independent delivery",
		"Complete a certification relevant to the current role",
	},
	"Leadership": {
		"Mentor a junior colleague through a full delivery cycle",
	},
}

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	categoryIDs, err := ensureCategories(ctx, pool)
	if err != nil {
		return err
	}

	if err := ensurePredefinedGoals(ctx, pool, categoryIDs); err != nil {
		return err
	}

	if cfg.SeedAdminEmail != "" {
		if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}

	return nil
}

func ensureCategories(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	ids := map[string]string{}
	for name, description := range seedCategories {
		var id string
		err := pool.QueryRow(ctx, "SELECT id FROM goal_categories WHERE name = $1", name).Scan(&id)
		if err == nil {
			ids[name] = id
			continue
		}

		err = pool.QueryRow(ctx, "INSERT INTO goal_categories (name, description) VALUES ($1, $2) RETURNING id", name, description).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, nil
}

func ensurePredefinedGoals(ctx context.Context, pool *pgxpool.Pool, categoryIDs map[string]string) error {
	for category, descriptions := range seedPredefinedGoals {
		categoryID, ok := categoryIDs[category]
		if !ok {
			continue
		}
		for _, description := range descriptions {
			_, err := pool.Exec(ctx, `
        INSERT INTO predefined_goals (category_id, description)
        SELECT $1, $2
        WHERE NOT EXISTS (SELECT 1 FROM predefined_goals WHERE description = $2)
      `, categoryID, description)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, name, password_hash, is_admin)
    VALUES ($1, $2, $3, TRUE)
  `, email, "Administrator", hash)
	return err
}
