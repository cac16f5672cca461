package cmd

import (
	"fmt"

	"github.com/luk036/lds-gen/ilds"
	"github.com/luk036/lds-gen/parse"
	"github.com/luk036/lds-gen/version"
)

// VdcConfig runs the integer Van der Corput generator.
type VdcConfig struct {
	version     string
	base, scale int64
	count, seed int64
}

var _ Mode = &VdcConfig{}

func (config *VdcConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("vdc.config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Int(&config.base, "Base", 2)
	vars.Int(&config.scale, "Scale", 10)
	vars.Int(&config.count, "Count", 10)
	vars.Int(&config.seed, "Seed", 0)
	return vars
}

func (config *VdcConfig) ReadConfig(fname string, flags []string) error {
	if err := readVars(config.vars(), fname, flags); err != nil {
		return err
	}
	return config.validate()
}

func (config *VdcConfig) validate() error {
	if err := checkVersion(config.version); err != nil { return err }
	if config.base < 2 || config.base > maxBase {
		return fmt.Errorf("The 'Base' variable is set to %d, but it must "+
			"be in the range [2, %d].", config.base, maxBase)
	}
	if config.scale < 0 || config.scale > maxScale {
		return fmt.Errorf("The 'Scale' variable is set to %d, but it must "+
			"be in the range [0, %d].", config.scale, maxScale)
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

func (config *VdcConfig) ExampleConfig() string {
	return fmt.Sprintf(`[vdc.config]

# Target version of ldsgen.
Version = %s

# Base of the sequence. Must be at least 2.
Base = 2

# Number of base-Base digits folded into each term.
Scale = 10

# Number of terms to generate.
Count = 10

# Starting position within the sequence.
Seed = 0
`, version.SourceVersion)
}

func (config *VdcConfig) Run() ([]string, error) {
	t := logStart("vdc")

	gen, err := ilds.NewVdCorput(uint32(config.base), uint32(config.scale))
	if err != nil { return nil, err }
	gen.Reseed(uint64(config.seed))

	lines := make([]string, 0, config.count+1)
	lines = append(lines, fmt.Sprintf("# vdc: Base = %d, Scale = %d, "+
		"Seed = %d", config.base, config.scale, config.seed))
	for i := int64(0); i < config.count; i++ {
		lines = append(lines, fmt.Sprintf("%d: %d", i+1, gen.Pop()))
	}

	logEnd(t)
	return lines, nil
}

// HaltonConfig runs the integer two dimensional Halton generator.
type HaltonConfig struct {
	version       string
	bases, scales []int64
	count, seed   int64
}

var _ Mode = &HaltonConfig{}

func (config *HaltonConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("halton.config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Ints(&config.bases, "Bases", []int64{2, 3})
	vars.Ints(&config.scales, "Scales", []int64{11, 7})
	vars.Int(&config.count, "Count", 10)
	vars.Int(&config.seed, "Seed", 0)
	return vars
}

func (config *HaltonConfig) ReadConfig(fname string, flags []string) error {
	if err := readVars(config.vars(), fname, flags); err != nil {
		return err
	}
	return config.validate()
}

func (config *HaltonConfig) validate() error {
	if err := checkVersion(config.version); err != nil { return err }
	if len(config.bases) != 2 {
		return fmt.Errorf("The 'Bases' variable has %d elements, but it "+
			"must have exactly 2.", len(config.bases))
	}
	if len(config.scales) != 2 {
		return fmt.Errorf("The 'Scales' variable has %d elements, but it "+
			"must have exactly 2.", len(config.scales))
	}
	return checkDims(config.bases, config.scales, config.count, config.seed)
}

func (config *HaltonConfig) ExampleConfig() string {
	return fmt.Sprintf(`[halton.config]

# Target version of ldsgen.
Version = %s

# Bases of the two component sequences.
Bases = 2, 3

# Digit counts of the two component sequences.
Scales = 11, 7

# Number of points to generate.
Count = 10

# Starting position within the sequence.
Seed = 0
`, version.SourceVersion)
}

func (config *HaltonConfig) Run() ([]string, error) {
	t := logStart("halton")

	gen, err := ilds.NewHalton(
		[2]uint32{uint32(config.bases[0]), uint32(config.bases[1])},
		[2]uint32{uint32(config.scales[0]), uint32(config.scales[1])},
	)
	if err != nil { return nil, err }
	gen.Reseed(uint64(config.seed))

	lines := make([]string, 0, config.count+1)
	lines = append(lines, fmt.Sprintf("# halton: Bases = %v, Scales = %v, "+
		"Seed = %d", config.bases, config.scales, config.seed))
	for i := int64(0); i < config.count; i++ {
		p := gen.Pop()
		lines = append(lines, fmt.Sprintf("%d: %d %d", i+1, p[0], p[1]))
	}

	logEnd(t)
	return lines, nil
}

// HaltonNConfig runs the integer Halton generator in arbitrary dimension.
type HaltonNConfig struct {
	version       string
	bases, scales []int64
	count, seed   int64
}

var _ Mode = &HaltonNConfig{}

func (config *HaltonNConfig) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("haltonn.config")
	vars.String(&config.version, "Version", version.SourceVersion)
	vars.Ints(&config.bases, "Bases", []int64{2, 3, 5})
	vars.Ints(&config.scales, "Scales", []int64{11, 7, 5})
	vars.Int(&config.count, "Count", 10)
	vars.Int(&config.seed, "Seed", 0)
	return vars
}

func (config *HaltonNConfig) ReadConfig(fname string, flags []string) error {
	if err := readVars(config.vars(), fname, flags); err != nil {
		return err
	}
	return config.validate()
}

func (config *HaltonNConfig) validate() error {
	if err := checkVersion(config.version); err != nil { return err }
	if len(config.bases) == 0 {
		return fmt.Errorf("The 'Bases' variable must have at least one " +
			"element.")
	}
	if len(config.bases) != len(config.scales) {
		return fmt.Errorf("The 'Bases' variable has %d elements, but the "+
			"'Scales' variable has %d.",
			len(config.bases), len(config.scales))
	}
	return checkDims(config.bases, config.scales, config.count, config.seed)
}

func (config *HaltonNConfig) ExampleConfig() string {
	return fmt.Sprintf(`[haltonn.config]

# Target version of ldsgen.
Version = %s

# Bases of the component sequences, one per dimension.
Bases = 2, 3, 5

# Digit counts of the component sequences, one per dimension.
Scales = 11, 7, 5

# Number of points to generate.
Count = 10

# Starting position within the sequence.
Seed = 0
`, version.SourceVersion)
}

func (config *HaltonNConfig) Run() ([]string, error) {
	t := logStart("haltonn")

	base := make([]uint32, len(config.bases))
	scale := make([]uint32, len(config.scales))
	for i := range base {
		base[i] = uint32(config.bases[i])
		scale[i] = uint32(config.scales[i])
	}
	gen, err := ilds.NewHaltonN(base, scale)
	if err != nil { return nil, err }
	gen.Reseed(uint64(config.seed))

	lines := make([]string, 0, config.count+1)
	lines = append(lines, fmt.Sprintf("# haltonn: Bases = %v, Scales = %v, "+
		"Seed = %d", config.bases, config.scales, config.seed))
	p := make([]uint64, gen.Dim())
	for i := int64(0); i < config.count; i++ {
		gen.PopAt(p)
		line := fmt.Sprintf("%d:", i+1)
		for _, x := range p {
			line += fmt.Sprintf(" %d", x)
		}
		lines = append(lines, line)
	}

	logEnd(t)
	return lines, nil
}

const (
	maxBase  = 1 << 31
	maxScale = 64
)

// checkDims applies the range checks shared by the integer modes.
func checkDims(bases, scales []int64, count, seed int64) error {
	for i, b := range bases {
		if b < 2 || b > maxBase {
			return fmt.Errorf("Element %d of the 'Bases' variable is %d, "+
				"but it must be in the range [2, %d].", i+1, b, maxBase)
		}
	}
	for i, s := range scales {
		if s < 0 || s > maxScale {
			return fmt.Errorf("Element %d of the 'Scales' variable is %d, "+
				"but it must be in the range [0, %d].", i+1, s, maxScale)
		}
	}
	if count < 0 {
		return fmt.Errorf("The 'Count' variable is set to %d, but it "+
			"cannot be negative.", count)
	}
	if seed < 0 {
		return fmt.Errorf("The 'Seed' variable is set to %d, but it "+
			"cannot be negative.", seed)
	}
	return nil
}
