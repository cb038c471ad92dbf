package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/tokscan/internal/cli"
	"github.com/cybertec-postgresql/tokscan/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "tokscan",
		Usage:   "Regex-driven source tokenizer for many languages",
		Version: version,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug output",
			},
			&urfavecli.StringFlag{
				Name:  "profiles",
				Usage: "Directory of *.profile files to register",
			},
		},
		Commands: []*urfavecli.Command{
			{
				Name:      "scan",
				Usage:     "Tokenize every recognized file under a path",
				ArgsUsage: "[path]",
				Action:    scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   "Scan every file with this profile instead of choosing by extension",
					},
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent scans (1 = sequential)",
					},
					&urfavecli.StringFlag{
						Name:  "result-file",
						Usage: "Scan result output path",
					},
					&urfavecli.BoolFlag{
						Name:  "tolerant",
						Usage: "Emit unknown tokens instead of failing on unrecognized input",
					},
					&urfavecli.BoolFlag{
						Name:  "print",
						Usage: "Print the tokens in --format after scanning",
					},
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format for --print (json, text, html or ansi)",
					},
					&urfavecli.StringFlag{
						Name:  "color",
						Usage: "Color mode for ansi output (auto, always or never)",
					},
					&urfavecli.StringFlag{
						Name:    "database",
						Aliases: []string{"d"},
						Usage:   "Also store tokens in PostgreSQL (URI or key=value connection string)",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Render a saved scan result",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, text, html or ansi)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.StringFlag{
						Name:  "result-file",
						Usage: "Scan result input path",
						Value: cli.DefaultConfig.ResultFile,
					},
					&urfavecli.StringFlag{
						Name:  "color",
						Usage: "Color mode for ansi output (auto, always or never)",
						Value: "auto",
					},
					&urfavecli.BoolFlag{
						Name:  "tokens",
						Usage: "Include every token (json and text formats); otherwise only counts",
					},
				},
			},
			{
				Name:   "languages",
				Usage:  "List available language profiles",
				Action: languagesCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.BoolFlag{
						Name:  "rules",
						Usage: "Show each profile's rules in matching order",
					},
				},
			},
			{
				Name:      "tokenize",
				Usage:     "Tokenize a single file or stdin",
				ArgsUsage: "[file|-]",
				Action:    tokenizeCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   "Profile name (required for stdin)",
					},
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, text, html or ansi)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:  "color",
						Usage: "Color mode for ansi output (auto, always or never)",
					},
					&urfavecli.BoolFlag{
						Name:  "tolerant",
						Usage: "Emit unknown tokens instead of failing on unrecognized input",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers environment, global flags and command flags, then validates
func loadConfig(cmd *urfavecli.Command, flags cli.Flags) *cli.Config {
	config := cli.LoadConfig()

	flags.Verbose = cmd.Bool("verbose")
	flags.ProfileDir = cmd.String("profiles")
	cli.ApplyFlagsToConfig(config, flags)
	logger.SetVerbose(config.Verbose)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return config
}

func scanCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd, cli.Flags{
		Language:    cmd.String("language"),
		Parallel:    cmd.Int("parallel"),
		ResultFile:  cmd.String("result-file"),
		Format:      cmd.String("format"),
		Color:       cmd.String("color"),
		DatabaseURL: cmd.String("database"),
		Tolerant:    cmd.Bool("tolerant"),
	})

	searchPath := cmd.Args().First()
	if searchPath == "" {
		searchPath = "."
	}

	exitCode, err := cli.Scan(ctx, config, searchPath, cmd.Bool("print"), os.Stdout)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func reportCommand(ctx context.Context, cmd *urfavecli.Command) error {
	logger.SetVerbose(cmd.Bool("verbose"))
	return cli.Report(cmd.String("result-file"), cmd.String("format"), cmd.String("output"),
		cmd.String("color"), cmd.Bool("tokens"))
}

func languagesCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd, cli.Flags{})
	return cli.Languages(config, cmd.Bool("rules"), os.Stdout)
}

func tokenizeCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := loadConfig(cmd, cli.Flags{
		Language: cmd.String("language"),
		Format:   cmd.String("format"),
		Color:    cmd.String("color"),
		Tolerant: cmd.Bool("tolerant"),
	})
	return cli.Tokenize(config, cmd.Args().First(), os.Stdin, os.Stdout)
}
