package config

type (
	InternalConfig struct {
		App      App
		Upstream Upstream
		JWT      JWT
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
		Minio  Minio
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		DefaultLanguage            string
		DefaultTheme               string
		UploadMaxSizeInMB          int64
	}

	// Upstream points at the OGEC REST backend. TimeoutInSeconds is the
	// single fixed ceiling every adapter call gets; there is no retry.
	Upstream struct {
		BaseURL          string
		TimeoutInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
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

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		PublicURL  string
		UseSSL     bool
	}
)
