package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qri-io/jsondiff"
	"github.com/qri-io/jsondiff/internal/config"
)

func (c *CLI) validateCommand() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a file is well-formed JSON",
		Long: `Check that a file parses, reporting the line and column of the first syntax error.

JSON is checked by default. Files ending in .yaml, .yml or .toml are parsed
as those formats instead. Use - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd, args[0], color)
		},
	}

	cmd.Flags().StringVar(&color, "color", config.ColorAuto, "color output: auto, always or never")

	return cmd
}

func (c *CLI) runValidate(cmd *cobra.Command, path, colorMode string) error {
	switch colorMode {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
	default:
		return fmt.Errorf("%w: color must be one of auto, always or never, got %q", config.ErrInvalidConfig, colorMode)
	}

	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor(colorMode, out)
	name := displayName(path)

	var v jsondiff.Validation
	if format := inputFormat(path); format == jsondiff.FormatJSON {
		v = jsondiff.ValidateText(string(data))
	} else {
		v = validateFormat(format, data)
	}
	loggerFromContext(cmd.Context()).Debug("validated", "path", name, "valid", v.IsValid)

	if v.IsValid {
		fmt.Fprintf(out, "%s %s\n", paint(color, styleIconSuccess, iconSuccess), name)
		return nil
	}

	location := name
	if v.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d", name, v.Line, v.Column)
	}
	fmt.Fprintf(out, "%s %s %s\n", paint(color, styleIconError, iconError), location, paint(color, styleDetail, v.Error))
	return &ExitError{Code: ExitRuntimeError}
}

// validateFormat parses YAML or TOML input into the same shape ValidateText
// reports for JSON
func validateFormat(format jsondiff.Format, data []byte) jsondiff.Validation {
	parsed, err := jsondiff.ParseFormat(format, data)
	if err == nil {
		return jsondiff.Validation{IsValid: true, Parsed: parsed}
	}
	return jsondiff.Validation{Error: err.Error()}
}
