package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo data settings.
type Config struct {
	Email            string  `yaml:"email"              env:"SEED_EMAIL"              env-default:"demo@quitsmoke.local"`
	Password         string  `yaml:"password"           env:"SEED_PASSWORD"           env-default:"demo-password"`
	FirstName        string  `yaml:"first_name"         env:"SEED_FIRST_NAME"         env-default:"Demo"`
	QuitDaysAgo      int     `yaml:"quit_days_ago"      env:"SEED_QUIT_DAYS_AGO"      env-default:"10"`
	CigarettesPerDay int     `yaml:"cigarettes_per_day" env:"SEED_CIGARETTES_PER_DAY" env-default:"20"`
	CostPerPack      float64 `yaml:"cost_per_pack"      env:"SEED_COST_PER_PACK"      env-default:"10"`
	Cravings         int     `yaml:"cravings"           env:"SEED_CRAVINGS"           env-default:"24"`
	DryRun           bool    `yaml:"dry_run"            env:"SEED_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Email == "":
		return fmt.Errorf("email is required")
	case c.QuitDaysAgo < 0:
		return fmt.Errorf("quit_days_ago must be >= 0, got %d", c.QuitDaysAgo)
	case c.Cravings < 0:
		return fmt.Errorf("cravings must be >= 0, got %d", c.Cravings)
	}
	return nil
}
