package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/builtinsheet/internal/greet"
)

// GreetParams holds parameters for the Greet function
type GreetParams struct {
	Name   string
	Stdout io.Writer
}

// Greet prints a greeting for params.Name
func Greet(params GreetParams) error {
	out := params.Stdout
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintln(out, greet.Greet(params.Name))
	return err
}
