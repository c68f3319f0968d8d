package initializers

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBHost     string `mapstructure:"POSTGRES_HOST"`
	DBUser     string `mapstructure:"POSTGRES_USER"`
	DBPassword string `mapstructure:"POSTGRES_PASSWORD"`
	DBName     string `mapstructure:"POSTGRES_DB"`
	DBPort     string `mapstructure:"POSTGRES_PORT"`

	ServerPort string `mapstructure:"PORT"`

	JwtSecret    string        `mapstructure:"JWT_SECRET"`
	JwtExpiresIn time.Duration `mapstructure:"JWT_EXPIRED_IN"`

	AuditLogPath string `mapstructure:"AUDIT_LOG"`
	AmqpURL      string `mapstructure:"AMQP_URL"`
	AmqpExchange string `mapstructure:"AMQP_EXCHANGE"`

	SeedDemoData bool `mapstructure:"SEED_DEMO_DATA"`
}

// LoadConfig reads app.env from path, letting real environment variables
// override. A missing file is fine; the environment alone can carry the
// config.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigType("env")
	viper.SetConfigName("app")

	viper.SetDefault("PORT", "4000")
	viper.SetDefault("JWT_EXPIRED_IN", "24h")
	viper.SetDefault("AUDIT_LOG", "log.txt")
	viper.SetDefault("AMQP_EXCHANGE", "snapgram.audit")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
