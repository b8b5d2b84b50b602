package config

import (
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "finalform.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "finalform_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:     utils.GetEnvString("APP_ENV", "development"),
			Version: constvars.ProcessorVersion,
		},
		Registry: Registry{
			MeasurePath: utils.GetEnvString("FINALFORM_MEASURE_REGISTRY", "measure-registry"),
			BindingPath: utils.GetEnvString("FINALFORM_BINDING_REGISTRY", "form-binding-registry"),
		},
		Mapping: Mapping{
			Backend:   utils.GetEnvString("FINALFORM_MAPPING_STORE", constvars.MappingStoreFile),
			StorePath: utils.GetEnvString("FINALFORM_MAPPING_PATH", "form-mappings"),
			RedisTTL:  utils.GetEnvInt("FINALFORM_MAPPING_REDIS_TTL_IN_HOUR", 0),
		},
		Pipeline: Pipeline{
			Strict:           utils.GetEnvBool("FINALFORM_STRICT", false),
			DeterministicIDs: utils.GetEnvBool("FINALFORM_DETERMINISTIC_IDS", false),
			Workers:          utils.GetEnvInt("FINALFORM_WORKERS", 4),
		},
	}
}
