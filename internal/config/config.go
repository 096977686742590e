// Package config loads the scheduler's configuration surface (spec §6)
// from environment variables and an optional .env file, producing a
// scheduler.Config value with typed defaults.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	scheduler "github.com/deptsched/coursesched"
)

// Load reads the recognized configuration options of spec §6 and returns
// a populated scheduler.Config. Missing values take DefaultConfig's values
// (TARGET_SEASON defaults to 2 and ACADEMIC_YEAR to the current year). An
// unparseable EVAL_TIMEOUT falls back to its default; other unparseable
// numeric values read as zero. A missing .env file is not an error.
func Load() (scheduler.Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := scheduler.DefaultConfig()
	setDefaults(v, defaults)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return scheduler.Config{}, err
		}
	}

	cfg := scheduler.Config{
		PopulationSize:  v.GetInt("POPULATION_SIZE"),
		Alpha:           v.GetFloat64("ALPHA"),
		MutationCount:   v.GetInt("MUTATION_COUNT"),
		GenerationCap:   v.GetInt("GENERATION_CAP"),
		StagnationLimit: v.GetInt("STAGNATION_LIMIT"),
		RatioThreshold:  v.GetFloat64("RATIO_THRESHOLD"),
		NumOffspring:    v.GetInt("NUM_OFFSPRING"),
		TargetSeason:    v.GetInt("TARGET_SEASON"),
		AcademicYear:    v.GetInt("ACADEMIC_YEAR"),
		EvalTimeout:     parseDuration(v.GetString("EVAL_TIMEOUT"), defaults.EvalTimeout),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d scheduler.Config) {
	v.SetDefault("POPULATION_SIZE", d.PopulationSize)
	v.SetDefault("ALPHA", d.Alpha)
	v.SetDefault("MUTATION_COUNT", d.MutationCount)
	v.SetDefault("GENERATION_CAP", d.GenerationCap)
	v.SetDefault("STAGNATION_LIMIT", d.StagnationLimit)
	v.SetDefault("RATIO_THRESHOLD", d.RatioThreshold)
	v.SetDefault("NUM_OFFSPRING", d.NumOffspring)
	v.SetDefault("TARGET_SEASON", 2)
	v.SetDefault("ACADEMIC_YEAR", time.Now().Year())
	v.SetDefault("EVAL_TIMEOUT", d.EvalTimeout.String())
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
