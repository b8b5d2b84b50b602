package main

import (
	"os"
	"time"

	"finalform-service/internal/app/config"
	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/drivers/database"
	"finalform-service/internal/app/drivers/logger"
	"finalform-service/internal/app/services/forminput"
	"finalform-service/internal/pkg/constvars"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *zap.Logger
)

func main() {
	driverConfig = config.NewDriverConfig()
	internalConfig = config.NewInternalConfig()
	log = logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	root := &cobra.Command{
		Use:           "finalform",
		Short:         "Deterministic semantic processing for clinical questionnaire submissions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newMappingCommand())

	if err := root.Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(constvars.ExitStartupFailure)
	}
}

// newItemMapStore builds the configured form-input store backend.
func newItemMapStore() (contracts.ItemMapStore, error) {
	switch internalConfig.Mapping.Backend {
	case constvars.MappingStoreRedis:
		client, err := database.NewRedisClient(driverConfig)
		if err != nil {
			return nil, err
		}
		ttl := time.Duration(internalConfig.Mapping.RedisTTL) * time.Hour
		return forminput.NewRedisItemMapStore(client, ttl, log), nil
	default:
		return forminput.NewFileItemMapStore(internalConfig.Mapping.StorePath, log), nil
	}
}
