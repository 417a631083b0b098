package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	palerrors "github.com/termstack/palette/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseCommands loads a command definition file from disk, validates it,
// and returns the resulting model.
func ParseCommands(path string) (*Commands, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, palerrors.NewParseError(path, 0, err)
	}

	var cmds Commands
	if err := yaml.Unmarshal(data, &cmds); err != nil {
		return nil, palerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateCommands(&cmds); err != nil {
		return nil, err
	}

	return &cmds, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
