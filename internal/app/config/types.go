package config

type (
	// DriverConfig holds settings for infrastructure drivers.
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	// InternalConfig holds application-level settings.
	InternalConfig struct {
		App      App
		Registry Registry
		Mapping  Mapping
		Pipeline Pipeline
	}

	App struct {
		Env     string
		Version string
	}

	Registry struct {
		MeasurePath string
		BindingPath string
	}

	// Mapping configures the form-input item-map store.
	Mapping struct {
		Backend   string
		StorePath string
		RedisTTL  int
	}

	Pipeline struct {
		Strict           bool
		DeterministicIDs bool
		Workers          int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
