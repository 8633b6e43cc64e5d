package config

// AppConfig holds runtime startup configuration loaded from YAML and the environment.
type AppConfig struct {
	Port           int       `yaml:"port"`
	DSN            string    `yaml:"dsn"` // MySQL DSN
	RedisURL       string    `yaml:"redis_url"`
	Env            string    `yaml:"env"` // "development" | "production"
	AdminPassword  string    `yaml:"admin_password"`
	JWTSecret      string    `yaml:"jwt_secret"`
	ViewSalt       string    `yaml:"view_salt"`
	AllowedOrigins []string  `yaml:"allowed_origins"`
	S3             S3Options `yaml:"s3"`
}

// S3Options configures the blob store uploads land in.
type S3Options struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// IsProd reports whether the app runs in production mode.
func (c *AppConfig) IsProd() bool { return c.Env == "production" }
