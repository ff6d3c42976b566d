package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default locations of the single run this tool performs. The template
// ships with the host's LibreOffice installation; the output lands next
// to the thesis document.
const (
	defaultTemplatePath = "/Applications/LibreOffice.app/Contents/Resources/template/common/presnt/Midnightblue.otp"
	defaultOutputPath   = "Thesis Doc/thesis_presentation_styled.odp"
	defaultProjectRoot  = "."
)

type Config struct {
	Build BuildConfig `mapstructure:"build"`
}

type BuildConfig struct {
	TemplatePath string `mapstructure:"template_path"`
	OutputPath   string `mapstructure:"output_path"`
	ProjectRoot  string `mapstructure:"project_root"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not found, using system environment variables")
	}

	viper.SetConfigFile("config.yaml") // Support optional config.yaml
	viper.AutomaticEnv()

	mappings := []struct {
		key, env string
	}{
		{"build.template_path", "TEMPLATE_PATH"},
		{"build.output_path", "OUTPUT_PATH"},
		{"build.project_root", "PROJECT_ROOT"},
	}
	for _, m := range mappings {
		viper.BindEnv(m.key, m.env)
	}

	viper.SetDefault("build.template_path", defaultTemplatePath)
	viper.SetDefault("build.output_path", defaultOutputPath)
	viper.SetDefault("build.project_root", defaultProjectRoot)

	if err := viper.ReadInConfig(); err != nil {
		// Ignore if config.yaml is missing
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
