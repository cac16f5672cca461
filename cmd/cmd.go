/*package cmd contains code for running ldsgen in its various command line
modes.*/
package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/luk036/lds-gen/logging"
	"github.com/luk036/lds-gen/parse"
	"github.com/luk036/lds-gen/version"
)

var ModeNames map[string]Mode = map[string]Mode{
	"vdc":     &VdcConfig{},
	"halton":  &HaltonConfig{},
	"haltonn": &HaltonNConfig{},
	"circle":  &CircleConfig{},
	"disk":    &DiskConfig{},
	"sphere":  &SphereConfig{},
	"hopf":    &HopfConfig{},
	"spheren": &SphereNConfig{},
	"primes":  &PrimesConfig{},
}

// Mode represents the interface used by the main binary when interacting
// with a given command line mode.
type Mode interface {
	// ReadConfig reads a mode-specific config file and the command line
	// flags and stores their contents within the Mode. fname may be empty,
	// in which case only flags and defaults apply.
	ReadConfig(fname string, flags []string) error
	// ExampleConfig returns the text of an example config file of this
	// mode.
	ExampleConfig() string
	// Run executes the mode. It returns a slice of lines that should be
	// written to stdout along with an error if one occurs.
	Run() ([]string, error)
}

// readVars applies a config file (when one was given) and then the command
// line flags, so flags override file variables.
func readVars(vars *parse.ConfigVars, fname string, flags []string) error {
	if fname != "" {
		if err := parse.ReadConfig(fname, vars); err != nil { return err }
	}
	return parse.ReadFlags(flags, vars)
}

// checkVersion rejects config files written for a newer ldsgen than this
// one.
func checkVersion(v string) error {
	if _, _, _, err := version.Parse(v); err != nil {
		return fmt.Errorf("I couldn't parse the 'Version' variable: %s",
			err.Error())
	}
	newer, err := version.Later(v, version.SourceVersion)
	if err != nil { return err }
	if newer {
		return fmt.Errorf("The config file asks for version %s of "+
			"ldsgen, but this is version %s.", v, version.SourceVersion)
	}
	return nil
}

// logStart prints the mode banner and returns the start time for logEnd.
func logStart(mode string) time.Time {
	if logging.Mode != logging.Nil {
		log.Printf("## ldsgen %s ##", mode)
	}
	var t time.Time
	if logging.Mode == logging.Performance { t = time.Now() }
	return t
}

func logEnd(t time.Time) {
	if logging.Mode == logging.Performance {
		log.Printf("Time: %s", time.Since(t))
		log.Printf("Memory: %s", logging.MemString())
	}
}
