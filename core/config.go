package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Debug    bool
	TestMode bool
	Env      string
	Build    string
	AppName  string
	WorkDir  string

	Server struct {
		Host string
		Addr string
	}

	DefaultFromEmail mail.Address
	ManagerEmail     mail.Address
	SendgridAPIKey   string
	RollbarToken     string

	// payroll conventions
	WorkingDaysPerMonth int
	DeficitPaidScope    string // "lifetime" | "month"
	CountWeekendMarks   bool
	WeekendDays         []time.Weekday
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Markaz")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("managerEmail", "manager@localhost")
	v.SetDefault("workingDaysPerMonth", 22)
	v.SetDefault("deficitPaidScope", "lifetime")
	v.SetDefault("countWeekendMarks", true)
	v.SetDefault("build", "dev")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Debug:               v.GetBool("debug"),
		TestMode:            v.GetBool("testMode"),
		Env:                 env,
		Build:               v.GetString("build"),
		AppName:             v.GetString("appName"),
		WorkDir:             wd,
		DefaultFromEmail:    mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		ManagerEmail:        mail.Address{Address: v.GetString("managerEmail")},
		SendgridAPIKey:      v.GetString("sendgridApiKey"),
		RollbarToken:        v.GetString("rollbarToken"),
		WorkingDaysPerMonth: v.GetInt("workingDaysPerMonth"),
		DeficitPaidScope:    v.GetString("deficitPaidScope"),
		CountWeekendMarks:   v.GetBool("countWeekendMarks"),
		WeekendDays:         []time.Weekday{time.Friday, time.Saturday},
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Addr = v.GetString("serverAddr")
	return conf
}
