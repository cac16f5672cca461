/*package main contains the command line frontend for generating
low-discrepancy sequences.*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/luk036/lds-gen/cmd"
	"github.com/luk036/lds-gen/logging"
	"github.com/luk036/lds-gen/version"
)

var helpStrings = map[string]string{
	"vdc":     `The vdc mode prints terms of an integer Van der Corput sequence.`,
	"halton":  `The halton mode prints points of an integer 2D Halton sequence.`,
	"haltonn": `The haltonn mode prints points of an integer Halton sequence in arbitrary dimension.`,
	"circle":  `The circle mode prints evenly spread points on the unit circle.`,
	"disk":    `The disk mode prints evenly spread points inside the unit disk.`,
	"sphere":  `The sphere mode prints evenly spread points on the unit sphere.`,
	"hopf":    `The hopf mode prints points on the 3-sphere through Hopf coordinates.`,
	"spheren": `The spheren mode prints points on the unit sphere in arbitrary dimension.`,
	"primes":  `The primes mode prints primes that can be used as sequence bases.`,

	"vdc.config":     cmd.ModeNames["vdc"].ExampleConfig(),
	"halton.config":  cmd.ModeNames["halton"].ExampleConfig(),
	"haltonn.config": cmd.ModeNames["haltonn"].ExampleConfig(),
	"circle.config":  cmd.ModeNames["circle"].ExampleConfig(),
	"disk.config":    cmd.ModeNames["disk"].ExampleConfig(),
	"sphere.config":  cmd.ModeNames["sphere"].ExampleConfig(),
	"hopf.config":    cmd.ModeNames["hopf"].ExampleConfig(),
	"spheren.config": cmd.ModeNames["spheren"].ExampleConfig(),
	"primes.config":  cmd.ModeNames["primes"].ExampleConfig(),
}

var modeDescriptions = `My help modes are:
ldsgen help
ldsgen help [ vdc | halton | haltonn | circle | disk | sphere | hopf | spheren | primes ]
ldsgen help [ vdc.config | halton.config | haltonn.config | circle.config | disk.config | sphere.config | hopf.config | spheren.config | primes.config ]

My generator modes are:
ldsgen vdc     [flags] [____.vdc.config]
ldsgen halton  [flags] [____.halton.config]
ldsgen haltonn [flags] [____.haltonn.config]
ldsgen circle  [flags] [____.circle.config]
ldsgen disk    [flags] [____.disk.config]
ldsgen sphere  [flags] [____.sphere.config]
ldsgen hopf    [flags] [____.hopf.config]
ldsgen spheren [flags] [____.spheren.config]
ldsgen primes  [flags] [____.primes.config]

Flags look like '--Count=100' and override config file variables.
The '-log=[ nil | performance | debug ]' flag controls logging.`

func main() {
	args := os.Args
	if len(args) <= 1 {
		fmt.Fprintf(
			os.Stderr, "I was not supplied with a mode.\nFor help, type "+
				"'./ldsgen help'.\n",
		)
		os.Exit(1)
	}

	if args[1] == "help" {
		switch len(args) - 2 {
		case 0:
			fmt.Println(modeDescriptions)
		case 1:
			text, ok := helpStrings[args[2]]
			if !ok {
				fmt.Printf("I don't recognize the help target '%s'\n", args[2])
			} else {
				fmt.Println(text)
			}
		default:
			fmt.Println("The help mode can only take a single argument.")
		}
		os.Exit(0)
	} else if args[1] == "version" {
		fmt.Printf("ldsgen version %s\n", version.SourceVersion)
		os.Exit(0)
	}

	mode, ok := cmd.ModeNames[args[1]]
	if !ok {
		fmt.Fprintf(
			os.Stderr, "You passed me the mode '%s', which I don't "+
				"recognize.\nFor help, type './ldsgen help'\n", args[1],
		)
		os.Exit(1)
	}

	flags, config, err := splitArgs(args[2:])
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	if err = mode.ReadConfig(config, flags); err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	out, err := mode.Run()
	if err != nil {
		log.Fatalf("Error running mode %s:\n%s\n", args[1], err.Error())
	}

	for i := range out { fmt.Println(out[i]) }
}

// splitArgs separates the mode arguments into flag tokens and an optional
// trailing config file name. The '-log=' flag is consumed here since every
// mode shares it.
func splitArgs(args []string) (flags []string, config string, err error) {
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-log="):
			if err := logging.Set(arg[len("-log="):]); err != nil {
				return nil, "", err
			}
		case strings.HasSuffix(arg, ".config"):
			if config != "" {
				return nil, "", fmt.Errorf("You passed me both the config "+
					"files '%s' and '%s', but I can only read one.",
					config, arg)
			}
			config = arg
		default:
			flags = append(flags, arg)
		}
	}
	return flags, config, nil
}
