// Package main seeds the database with sample authors and papers. It goes
// through the service layer so seeded data passes the same validation and
// duplicate handling as API traffic, which makes the tool safe to re-run.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/scholarly/paper-catalog/internal/config"
	"github.com/scholarly/paper-catalog/internal/database"
	"github.com/scholarly/paper-catalog/internal/domain"
	"github.com/scholarly/paper-catalog/internal/observability"
	"github.com/scholarly/paper-catalog/internal/repository"
	"github.com/scholarly/paper-catalog/internal/service"
)

type seedPaper struct {
	title       string
	abstract    string
	doi         string
	authorEmail string
}

var seedAuthors = []service.CreateAuthorInput{
	{Name: "Ada Lovelace", Bio: "Mathematician and writer.", Email: "ada@example.org"},
	{Name: "Alan Turing", Bio: "Computer scientist and cryptanalyst.", Email: "alan@example.org"},
	{Name: "Grace Hopper", Bio: "Computer scientist and rear admiral.", Email: "grace@example.org"},
}

var seedPapers = []seedPaper{
	{
		title:       "Notes on the Analytical Engine",
		abstract:    "Observations on a proposed general-purpose computing machine.",
		doi:         "10.1000/seed.0001",
		authorEmail: "ada@example.org",
	},
	{
		title:       "On Computable Numbers",
		abstract:    "An investigation of computable numbers and the decision problem.",
		doi:         "10.1000/seed.0002",
		authorEmail: "alan@example.org",
	},
	{
		title:       "The Education of a Computer",
		abstract:    "Early ideas on compilers and automatic programming.",
		doi:         "10.1000/seed.0003",
		authorEmail: "grace@example.org",
	},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	logger = logger.With().Str("component", "seed").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	validator := service.NewValidator()
	authorRepo := repository.NewPgAuthorRepository(db)
	paperRepo := repository.NewPgPaperRepository(db)
	authorService := service.NewAuthorService(authorRepo, validator, metrics, logger)
	paperService := service.NewPaperService(paperRepo, authorRepo, validator, metrics, logger)

	// Seed authors. Existing emails are fine on re-runs.
	authorIDs := make(map[string]int64, len(seedAuthors))
	for _, input := range seedAuthors {
		rec, err := authorService.CreateAuthor(ctx, input)
		if err != nil {
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return fmt.Errorf("seed author %s: %w", input.Email, err)
			}
			existing, err := authorRepo.GetByEmail(ctx, input.Email)
			if err != nil {
				return fmt.Errorf("look up existing author %s: %w", input.Email, err)
			}
			authorIDs[input.Email] = existing.ID
			logger.Info().Str("email", input.Email).Msg("author already seeded")
			continue
		}
		authorIDs[input.Email] = rec.ID
		logger.Info().Int64("author_id", rec.ID).Str("email", rec.Email).Msg("author seeded")
	}

	// Seed papers. Duplicate DOIs resolve to the existing record.
	for _, p := range seedPapers {
		authorID, ok := authorIDs[p.authorEmail]
		if !ok {
			return fmt.Errorf("no seeded author for email %s", p.authorEmail)
		}

		result, err := paperService.CreatePaper(ctx, service.CreatePaperInput{
			Title:    p.title,
			Abstract: p.abstract,
			DOI:      p.doi,
			AuthorID: authorID,
		})
		if err != nil {
			return fmt.Errorf("seed paper %s: %w", p.doi, err)
		}

		if result.Created {
			logger.Info().Int64("paper_id", result.Paper.ID).Str("doi", p.doi).Msg("paper seeded")
		} else {
			logger.Info().Int64("paper_id", result.Paper.ID).Str("doi", p.doi).Msg("paper already seeded")
		}
	}

	logger.Info().Msg("seeding complete")
	return nil
}
