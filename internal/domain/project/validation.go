package project

import (
	"errors"
	"fmt"
	"strings"
)

const maxNameLength = 255

func validateProjectInput(name string, status Status) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("project name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project name exceeds %d characters", maxNameLength)
	}
	if status != "" && !status.Valid() {
		return fmt.Errorf("unknown project status %q", status)
	}
	return nil
}
