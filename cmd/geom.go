package cmd

import (
	"fmt"

	"github.com/luk036/lds-gen/lds"
	"github.com/luk036/lds-gen/parse"
	"github.com/luk036/lds-gen/sphere"
	"github.com/luk036/lds-gen/version"
)

// geomConfig holds the variables shared by every geometric sampling mode.
// The modes differ only in how many bases they need and which generator
// they hand the bases to.
type geomConfig struct {
	version     string
	bases       []int64
	count, seed int64
}

func (config *geomConfig) vars(name string, bases []int64) *parse.ConfigVars {
	vars := parse.NewConfigVars(name)
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Ints(&config.bases, "Bases", bases)
	vars.Int(&config.count, "Count", 10)
	vars.Int(&config.seed, "Seed", 0)
	return vars
}

func (config *geomConfig) validate(dim int) error {
	if err := checkVersion(config.version); err != nil { return err }
	if dim > 0 && len(config.bases) != dim {
		return fmt.Errorf("The 'Bases' variable has %d elements, but it "+
			"must have exactly %d.", len(config.bases), dim)
	}
	if dim == 0 && len(config.bases) < 3 {
		return fmt.Errorf("The 'Bases' variable has %d elements, but it "+
			"must have at least 3.", len(config.bases))
	}
	for i, b := range config.bases {
		if b < 2 || b > maxBase {
			return fmt.Errorf("Element %d of the 'Bases' variable is %d, "+
				"but it must be in the range [2, %d].", i+1, b, maxBase)
		}
	}
	if config.count < 0 {
		return fmt.Errorf("The 'Count' variable is set to %d, but it "+
			"cannot be negative.", config.count)
	}
	if config.seed < 0 {
		return fmt.Errorf("The 'Seed' variable is set to %d, but it "+
			"cannot be negative.", config.seed)
	}
	return nil
}

func (config *geomConfig) exampleConfig(name, bases, comment string) string {
	return fmt.Sprintf(`[%s]

# Target version of ldsgen.
Version = %s

# %s
Bases = %s

# Number of points to generate.
Count = 10

# Starting position within the sequence.
Seed = 0
`, name, version.SourceVersion, comment, bases)
}

// run drives a generator for Count points and formats one line per point.
func (config *geomConfig) run(mode string, gen lds.Gen) []string {
	gen.Reseed(int(config.seed))
	lines := make([]string, 0, config.count+1)
	lines = append(lines, fmt.Sprintf("# %s: Bases = %v, Seed = %d",
		mode, config.bases, config.seed))
	for i := int64(0); i < config.count; i++ {
		line := fmt.Sprintf("%d:", i+1)
		for _, x := range gen.Pop() {
			line += fmt.Sprintf(" %.6f", x)
		}
		lines = append(lines, line)
	}
	return lines
}

// CircleConfig samples evenly spread points on the unit circle.
type CircleConfig struct{ geomConfig }

var _ Mode = &CircleConfig{}

func (config *CircleConfig) ReadConfig(fname string, flags []string) error {
	vars := config.vars("circle.config", []int64{2})
	if err := readVars(vars, fname, flags); err != nil { return err }
	return config.validate(1)
}

func (config *CircleConfig) ExampleConfig() string {
	return config.exampleConfig("circle.config", "2",
		"Base of the underlying Van der Corput sequence.")
}

func (config *CircleConfig) Run() ([]string, error) {
	t := logStart("circle")
	gen := lds.NewCircle(int(config.bases[0]))
	lines := config.run("circle", gen)
	logEnd(t)
	return lines, nil
}

// DiskConfig samples evenly spread points inside the unit disk.
type DiskConfig struct{ geomConfig }

var _ Mode = &DiskConfig{}

func (config *DiskConfig) ReadConfig(fname string, flags []string) error {
	vars := config.vars("disk.config", []int64{2, 3})
	if err := readVars(vars, fname, flags); err != nil { return err }
	return config.validate(2)
}

func (config *DiskConfig) ExampleConfig() string {
	return config.exampleConfig("disk.config", "2, 3",
		"Bases of the angle and radius sequences.")
}

func (config *DiskConfig) Run() ([]string, error) {
	t := logStart("disk")
	gen := lds.NewDisk([2]int{int(config.bases[0]), int(config.bases[1])})
	lines := config.run("disk", gen)
	logEnd(t)
	return lines, nil
}

// SphereConfig samples evenly spread points on the unit 2-sphere.
type SphereConfig struct{ geomConfig }

var _ Mode = &SphereConfig{}

func (config *SphereConfig) ReadConfig(fname string, flags []string) error {
	vars := config.vars("sphere.config", []int64{2, 3})
	if err := readVars(vars, fname, flags); err != nil { return err }
	return config.validate(2)
}

func (config *SphereConfig) ExampleConfig() string {
	return config.exampleConfig("sphere.config", "2, 3",
		"Bases of the longitude and latitude sequences.")
}

func (config *SphereConfig) Run() ([]string, error) {
	t := logStart("sphere")
	gen := lds.NewSphere([2]int{int(config.bases[0]), int(config.bases[1])})
	lines := config.run("sphere", gen)
	logEnd(t)
	return lines, nil
}

// HopfConfig samples the unit 3-sphere through Hopf coordinates.
type HopfConfig struct{ geomConfig }

var _ Mode = &HopfConfig{}

func (config *HopfConfig) ReadConfig(fname string, flags []string) error {
	vars := config.vars("hopf.config", []int64{2, 3, 5})
	if err := readVars(vars, fname, flags); err != nil { return err }
	return config.validate(3)
}

func (config *HopfConfig) ExampleConfig() string {
	return config.exampleConfig("hopf.config", "2, 3, 5",
		"Bases of the three Hopf coordinate sequences.")
}

func (config *HopfConfig) Run() ([]string, error) {
	t := logStart("hopf")
	gen := lds.NewSphere3Hopf([3]int{
		int(config.bases[0]), int(config.bases[1]), int(config.bases[2]),
	})
	lines := config.run("hopf", gen)
	logEnd(t)
	return lines, nil
}

// SphereNConfig samples the unit sphere in arbitrary dimension.
type SphereNConfig struct{ geomConfig }

var _ Mode = &SphereNConfig{}

func (config *SphereNConfig) ReadConfig(fname string, flags []string) error {
	vars := config.vars("spheren.config", []int64{2, 3, 5})
	if err := readVars(vars, fname, flags); err != nil { return err }
	return config.validate(0)
}

func (config *SphereNConfig) ExampleConfig() string {
	return config.exampleConfig("spheren.config", "2, 3, 5",
		"Bases of the component sequences. n bases sample the "+
			"(n-1)-sphere in R^n.")
}

func (config *SphereNConfig) Run() ([]string, error) {
	t := logStart("spheren")
	base := make([]int, len(config.bases))
	for i, b := range config.bases {
		base[i] = int(b)
	}
	gen := sphere.NewSphereN(base)
	lines := config.run("spheren", gen)
	logEnd(t)
	return lines, nil
}
