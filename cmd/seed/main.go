package main

import (
	"context"

	"prism/config"
	"prism/infras/otel"
	"prism/infras/postgres"
	"prism/internal/fixtures"
	"prism/shared/logger"

	accessRepository "prism/internal/domains/access/repository"
	bookingRepository "prism/internal/domains/booking/repository"
	chalanRepository "prism/internal/domains/chalan/repository"
	companyRepository "prism/internal/domains/company/repository"
	customerRepository "prism/internal/domains/customer/repository"
	editorRepository "prism/internal/domains/editor/repository"
	leaveRepository "prism/internal/domains/leave/repository"
	projectRepository "prism/internal/domains/project/repository"
	roomRepository "prism/internal/domains/room/repository"
	userRepository "prism/internal/domains/user/repository"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	data, err := fixtures.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded fixtures")
	}

	db := postgres.New(cfg)
	ot := otel.New(cfg)

	loader := fixtures.NewLoader(
		companyRepository.New(db, ot),
		userRepository.New(db, ot),
		accessRepository.New(db, ot),
		roomRepository.New(db, ot),
		editorRepository.New(db, ot),
		leaveRepository.New(db, ot),
		customerRepository.New(db, ot),
		projectRepository.New(db, ot),
		bookingRepository.New(db, ot),
		chalanRepository.New(db, ot),
	)

	if err := loader.Load(context.Background(), data); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fixtures")
	}

	log.Info().Msg("Fixtures loaded successfully")
}
