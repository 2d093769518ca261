// Package bootstrap loads an application's options from a .env file,
// environment variables, command line flags and an optional toml file (-c).
package bootstrap

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/hydronica/go-config"
	"github.com/hydronica/toml"
	"github.com/joho/godotenv"
)

// Validator provides a standard
// method for running underlying validation
// for underlying object values.
type Validator interface {
	Validate() error
}

type Utility struct {
	name        string
	description string
	version     string
	envFile     string
	options     Validator
}

func NewUtility(name string, options Validator) *Utility {
	return &Utility{
		name:    name,
		envFile: ".env",
		options: options,
	}
}

// Initialize loads and validates the options. It exits the
// process on invalid options or after handling -g and -show.
func (u *Utility) Initialize() *Utility {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// .env values are visible to the env loader below but never
	// replace variables already set in the environment
	if err := LoadEnv(u.envFile); err != nil {
		log.Fatal(err)
	}

	var genConf bool
	var showConf bool
	flag.BoolVar(&genConf, "g", false, "generate options file")
	flag.BoolVar(&showConf, "show", false, "show current options values")
	config.New(u.options).
		Version(u.version).Disable(config.OptGenConf | config.OptShow).
		Description(u.description).
		LoadOrDie()

	if genConf {
		enc := toml.NewEncoder(os.Stdout)
		if err := enc.Encode(u.options); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}
	if showConf {
		spew.Dump(u.options)
		os.Exit(0)
	}

	if err := u.options.Validate(); err != nil {
		log.SetFlags(0)
		log.SetPrefix(u.name + ": ")
		log.Fatal(err)
	}
	return u
}

// LoadEnv sets environment variables from pth. A missing file is not an error.
func LoadEnv(pth string) error {
	if pth == "" {
		return nil
	}
	err := godotenv.Load(pth)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (u *Utility) Version(version string) *Utility {
	u.version = version
	return u
}

func (u *Utility) Description(description string) *Utility {
	u.description = description
	return u
}

// EnvFile overrides the default .env path. An empty path disables it.
func (u *Utility) EnvFile(pth string) *Utility {
	u.envFile = pth
	return u
}

func (u *Utility) Name() string {
	return u.name
}
