package main

import (
	"fmt"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	for _, category := range deps.Extractors.List() {
		fmt.Fprintln(deps.Stdout, string(category))
	}
	return nil
}
