package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qri-io/jsondiff"
	"github.com/qri-io/jsondiff/internal/config"
)

type diffFlags struct {
	configPath  string
	ignoreOrder bool
	keys        []string
	ignoreCase  bool
	tolerance   float64
	maxDepth    int
	output      string
	color       string
	exitCode    bool
}

func (c *CLI) diffCommand() *cobra.Command {
	var flags diffFlags

	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Compare two documents structurally",
		Long: `Compare two documents and report every added, removed, changed and retyped value by path.

Documents are parsed by file extension: .json, .yaml, .yml or .toml. Other
extensions are read as JSON. Use - to read one document from stdin.

Flags override settings from --config.`,
		Example: `  jsondiff diff old.json new.json
  jsondiff diff --ignore-order --key id before.yaml after.yaml
  cat new.json | jsondiff diff old.json - --output summary --exit-code`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDiff(cmd, args, &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML, TOML or JSON config file")
	cmd.Flags().BoolVar(&flags.ignoreOrder, "ignore-order", false, "match array elements regardless of position")
	cmd.Flags().StringSliceVarP(&flags.keys, "key", "k", nil, "object field identifying array elements (repeatable)")
	cmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "compare strings case-insensitively")
	cmd.Flags().Float64Var(&flags.tolerance, "tolerance", 0, "treat numbers within this distance as equal")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "compare containers at this depth as whole values")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.OutputText, "output format: text, json, summary or stats")
	cmd.Flags().StringVar(&flags.color, "color", config.ColorAuto, "color text output: auto, always or never")
	cmd.Flags().BoolVar(&flags.exitCode, "exit-code", false, "exit with status 1 when differences are found")

	return cmd
}

func (c *CLI) runDiff(cmd *cobra.Command, args []string, flags *diffFlags) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadDiffConfig(cmd, flags)
	if err != nil {
		return err
	}

	if args[0] == stdinPath && args[1] == stdinPath {
		return fmt.Errorf("only one document can be read from stdin")
	}
	a, err := readDocument(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	b, err := readDocument(args[1], cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("comparing documents", "a", displayName(args[0]), "b", displayName(args[1]))

	res, err := jsondiff.Compare(a, b, cfg.Options(logger)...)
	if err != nil {
		return err
	}
	logger.Debug("comparison complete", "changes", res.Stats.TotalChanges, "leaves", res.Stats.Leaves())

	if err := writeResult(cmd, cfg, res); err != nil {
		return err
	}

	if flags.exitCode && res.HasChanges {
		return errDifferences
	}
	return nil
}

// loadDiffConfig reads --config when given, then applies any flags set on
// the command line over it
func loadDiffConfig(cmd *cobra.Command, flags *diffFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(flags.configPath); err != nil {
			return nil, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", flags.configPath)
	}

	fs := cmd.Flags()
	if fs.Changed("ignore-order") {
		cfg.IgnoreArrayOrder = flags.ignoreOrder
	}
	if fs.Changed("key") {
		cfg.KeyFields = flags.keys
	}
	if fs.Changed("ignore-case") {
		cfg.IgnoreCase = flags.ignoreCase
	}
	if fs.Changed("tolerance") {
		cfg.NumericTolerance = flags.tolerance
	}
	if fs.Changed("max-depth") {
		depth := flags.maxDepth
		cfg.MaxDepth = &depth
	}
	if fs.Changed("output") {
		cfg.Output = flags.output
	}
	if fs.Changed("color") {
		cfg.Color = flags.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeResult(cmd *cobra.Command, cfg *config.Config, res *jsondiff.Result) error {
	out := cmd.OutOrStdout()

	switch cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.OutputSummary:
		_, err := fmt.Fprintln(out, jsondiff.Summarize(res))
		return err
	case config.OutputStats:
		_, err := fmt.Fprintln(out, jsondiff.FormatStats(res.Stats))
		return err
	default:
		return jsondiff.FormatReport(out, res, useColor(cfg.Color, out))
	}
}
