// Package greet builds greeting messages.
package greet

import "fmt"

// DefaultName is greeted when no name is given.
const DefaultName = "World"

// Greet returns "Hello, <name>!". The name is used verbatim, even when empty.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}
