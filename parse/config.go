/*package parse reads the config files and command line flags used by the
ldsgen tool.

Config files take the form

	[vdc.config]
	# Comments run to the end of the line.
	Base = 3
	Count = 20

and flags take the form --Base=3. Variable names are case-insensitive, and
every mode rejects unknown names, duplicate assignments, and values that
can't be converted to the variable's type.*/
package parse

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type varType int

const (
	intVar varType = iota
	intsVar
	floatVar
	stringVar
	boolVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case intsVar:
		return "int list"
	case floatVar:
		return "float"
	case stringVar:
		return "string"
	case boolVar:
		return "bool"
	}
	panic("Impossible")
}

// A conversionFunc writes a string to some typed variable and reports
// whether the string could be converted at all.
type conversionFunc func(string) bool

// ConfigVars is a set of typed variables that a config file or flag list
// can assign to.
type ConfigVars struct {
	name     string
	varNames []string
	varTypes []varType
	convs    []conversionFunc
}

// NewConfigVars creates an empty variable set for config files with the
// header [name].
func NewConfigVars(name string) *ConfigVars {
	return &ConfigVars{name: name}
}

func (vars *ConfigVars) register(name string, t varType, conv conversionFunc) {
	vars.varNames = append(vars.varNames, name)
	vars.varTypes = append(vars.varTypes, t)
	vars.convs = append(vars.convs, conv)
}

// Int registers an integer variable with a default value. The other
// registration methods work the same way for their types.
func (vars *ConfigVars) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vars.register(name, intVar, func(s string) bool {
		i, err := strconv.Atoi(s)
		if err != nil { return false }
		*ptr = int64(i)
		return true
	})
}

func (vars *ConfigVars) Ints(ptr *[]int64, name string, value []int64) {
	*ptr = value
	vars.register(name, intsVar, func(s string) bool {
		out := []int64{}
		for _, tok := range strToList(s) {
			i, err := strconv.Atoi(tok)
			if err != nil { return false }
			out = append(out, int64(i))
		}
		*ptr = out
		return true
	})
}

func (vars *ConfigVars) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vars.register(name, floatVar, func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil { return false }
		*ptr = f
		return true
	})
}

func (vars *ConfigVars) String(ptr *string, name string, value string) {
	*ptr = value
	vars.register(name, stringVar, func(s string) bool {
		*ptr = strings.Trim(s, " ")
		return true
	})
}

func (vars *ConfigVars) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vars.register(name, boolVar, func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil { return false }
		*ptr = b
		return true
	})
}

func strToList(a string) []string {
	strs := strings.Split(a, ",")
	for i := range strs {
		strs[i] = strings.Trim(strs[i], " ")
	}
	return strs
}

// ReadConfig reads the config file fname and assigns its variables into
// vars. Unknown names, duplicate assignments, malformed lines, and
// unconvertible values are all errors.
func ReadConfig(fname string, vars *ConfigVars) error {
	for i := range vars.varNames {
		vars.varNames[i] = strings.ToLower(vars.varNames[i])
	}

	bs, err := os.ReadFile(fname)
	if err != nil { return err }

	lines, lineNums := removeComments(strings.Split(string(bs), "\n"))
	for i := range lineNums { lineNums[i]++ }

	if len(lines) == 0 || lines[0] != fmt.Sprintf("[%s]", vars.name) {
		return fmt.Errorf(
			"I expected the config file %s to have the header [%s] at "+
				"the top, but didn't find it.", fname, vars.name,
		)
	}
	lines = lines[1:]

	names, vals, errLine := associationList(lines)
	if errLine != -1 {
		return fmt.Errorf(
			"I could not parse line %d of the config file %s because it "+
				"did not take the form of a variable assignment.",
			lineNums[errLine+1], fname,
		)
	}

	if errLine = checkValidNames(names, vars); errLine != -1 {
		return fmt.Errorf(
			"Line %d of the config file %s assigns a value to the "+
				"variable '%s', but config files of type %s don't have "+
				"that variable.",
			lineNums[errLine+1], fname, names[errLine], vars.name,
		)
	}

	if errLine1, errLine2 := checkDuplicateNames(names); errLine1 != -1 {
		return fmt.Errorf(
			"Lines %d and %d of the config file %s both assign a value "+
				"to the variable '%s'.",
			lineNums[errLine1+1], lineNums[errLine2+1],
			fname, names[errLine1],
		)
	}

	if errLine = convertAssoc(names, vals, vars); errLine != -1 {
		j := vars.index(names[errLine])
		return fmt.Errorf(
			"I could not parse line %d of the config file %s because "+
				"'%s' expects values of type %s and '%s' cannot be "+
				"converted to one.",
			lineNums[errLine+1], fname, vars.varNames[j],
			vars.varTypes[j].String(), vals[errLine],
		)
	}

	return nil
}

// ReadFlags assigns command line tokens of the form --Name=value into
// vars. It follows the same rules as ReadConfig, so flags can override
// anything a config file sets.
func ReadFlags(flags []string, vars *ConfigVars) error {
	for i := range vars.varNames {
		vars.varNames[i] = strings.ToLower(vars.varNames[i])
	}

	names, vals := []string{}, []string{}
	for _, flag := range flags {
		if !strings.HasPrefix(flag, "--") {
			return fmt.Errorf(
				"The argument '%s' doesn't take the form --Name=value.",
				flag,
			)
		}
		eq := strings.Index(flag, "=")
		if eq == -1 || eq == 2 {
			return fmt.Errorf(
				"The flag '%s' doesn't take the form --Name=value.", flag,
			)
		}
		names = append(names, strings.ToLower(flag[2:eq]))
		vals = append(vals, strings.Trim(flag[eq+1:], " "))
	}

	if errIdx := checkValidNames(names, vars); errIdx != -1 {
		return fmt.Errorf(
			"The flag '--%s' doesn't correspond to a variable of %s.",
			names[errIdx], vars.name,
		)
	}
	if errIdx1, _ := checkDuplicateNames(names); errIdx1 != -1 {
		return fmt.Errorf(
			"The flag '--%s' was given more than once.", names[errIdx1],
		)
	}
	if errIdx := convertAssoc(names, vals, vars); errIdx != -1 {
		j := vars.index(names[errIdx])
		return fmt.Errorf(
			"The flag '--%s' expects values of type %s and '%s' cannot "+
				"be converted to one.",
			vars.varNames[j], vars.varTypes[j].String(), vals[errIdx],
		)
	}

	return nil
}

// index returns the position of a registered (lowercased) variable name.
// The caller guarantees the name is registered.
func (vars *ConfigVars) index(name string) int {
	for j := range vars.varNames {
		if vars.varNames[j] == name { return j }
	}
	panic("Impossible")
}

func removeComments(lines []string) ([]string, []int) {
	out, lineNums := []string{}, []int{}
	for i := range lines {
		line := lines[i]
		if comment := strings.Index(line, "#"); comment != -1 {
			line = line[:comment]
		}
		line = strings.Trim(line, " \t")
		if len(line) == 0 { continue }
		out = append(out, line)
		lineNums = append(lineNums, i)
	}
	return out, lineNums
}

func associationList(lines []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := range lines {
		eq := strings.Index(lines[i], "=")
		if eq == -1 { return nil, nil, i }

		name := strings.ToLower(strings.Trim(lines[i][:eq], " "))
		if len(name) == 0 { return nil, nil, i }

		val := ""
		if len(lines[i])-1 > eq { val = lines[i][eq+1:] }

		names = append(names, name)
		vals = append(vals, strings.Trim(val, " "))
	}
	return names, vals, -1
}

func checkValidNames(names []string, vars *ConfigVars) int {
	for i := range names {
		found := false
		for j := range vars.varNames {
			if vars.varNames[j] == names[i] {
				found = true
				break
			}
		}
		if !found { return i }
	}
	return -1
}

func checkDuplicateNames(names []string) (int, int) {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] { return i, j }
		}
	}
	return -1, -1
}

func convertAssoc(names, vals []string, vars *ConfigVars) int {
	for i := range names {
		if ok := vars.convs[vars.index(names[i])](vals[i]); !ok {
			return i
		}
	}
	return -1
}
