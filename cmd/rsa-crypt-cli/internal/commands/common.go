package commands

import (
	"fmt"

	"rsa_crypt_service/internal/domain/keys"
	"rsa_crypt_service/internal/infrastructure/persistence"
	"rsa_crypt_service/internal/pkg/config"
	"rsa_crypt_service/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupKeyPairRepository connects to the metadata database selected by the
// db-type/db-dsn flags and returns a repository over it.
func setupKeyPairRepository(dbType, dbDSN string, loggerInstance logger.Logger) (keys.KeyPairRepository, error) {
	settings := config.DatabaseSettings{
		Type: dbType,
		DSN:  dbDSN,
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to metadata database: %w", err)
	}

	repo, err := persistence.NewGormKeyPairRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair repository: %w", err)
	}

	return repo, nil
}
