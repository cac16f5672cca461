package cmd

import (
	"fmt"
	"strings"

	"github.com/luk036/lds-gen/lds"
	"github.com/luk036/lds-gen/parse"
	"github.com/luk036/lds-gen/version"
)

// PrimesConfig prints primes from the table used to pick sequence bases.
type PrimesConfig struct {
	version     string
	count, skip int64
}

var _ Mode = &PrimesConfig{}

func (config *PrimesConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("primes.config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Int(&config.count, "Count", 20)
	vars.Int(&config.skip, "Skip", 0)
	return vars
}

func (config *PrimesConfig) ReadConfig(fname string, flags []string) error {
	if err := readVars(config.vars(), fname, flags); err != nil {
		return err
	}
	return config.validate()
}

func (config *PrimesConfig) validate() error {
	if err := checkVersion(config.version); err != nil { return err }
	n := int64(len(lds.PrimeTable))
	if config.count < 0 || config.skip < 0 {
		return fmt.Errorf("The 'Count' and 'Skip' variables cannot be " +
			"negative.")
	}
	if config.skip+config.count > n {
		return fmt.Errorf("'Skip' + 'Count' is %d, but the prime table "+
			"only holds %d primes.", config.skip+config.count, n)
	}
	return nil
}

func (config *PrimesConfig) ExampleConfig() string {
	return fmt.Sprintf(`[primes.config]

# Target version of ldsgen.
Version = %s

# Number of primes to print.
Count = 20

# Number of leading primes to skip over.
Skip = 0
`, version.SourceVersion)
}

func (config *PrimesConfig) Run() ([]string, error) {
	t := logStart("primes")

	primes := lds.PrimeTable[config.skip : config.skip+config.count]
	lines := []string{fmt.Sprintf("# primes: Skip = %d, Count = %d",
		config.skip, config.count)}
	// Ten primes per line keeps long listings readable.
	for i := 0; i < len(primes); i += 10 {
		end := i + 10
		if end > len(primes) { end = len(primes) }
		toks := make([]string, end-i)
		for j, p := range primes[i:end] {
			toks[j] = fmt.Sprintf("%d", p)
		}
		lines = append(lines, strings.Join(toks, " "))
	}

	logEnd(t)
	return lines, nil
}
