// Command formtrace builds control trees from scenario files and prints the
// notifications they raise.
//
// Usage:
//
//	formtrace run [--theme FILE] SCENARIO   Apply a scenario and print its event trace
//	formtrace variants [--theme FILE]       List the variant catalogue
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/debug"
	"github.com/grindlemire/go-forms/internal/scenario"
	"github.com/grindlemire/go-forms/theme"
)

const version = "0.1.0"

type envKey struct{}

// env is the state shared by all commands.
type env struct {
	log *zap.Logger
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := &env{log: newLogger(cmd.Bool("verbose"))}
	if path := cmd.String("debug-log"); path != "" {
		if err := debug.Init(path); err != nil {
			return ctx, fmt.Errorf("unable to open debug log: %w", err)
		}
		e.log.Debug("Writing engine debug log", zap.String("path", path))
	}
	return context.WithValue(ctx, envKey{}, e), nil
}

func after(ctx context.Context, _ *cli.Command) (err error) {
	e := envFromContext(ctx)
	if er := debug.Close(); er != nil {
		err = multierr.Append(err, fmt.Errorf("unable to close debug log: %w", er))
	}
	// Sync fails on terminals for some platforms; there is nothing to flush
	// that matters then.
	_ = e.log.Sync()
	return err
}

func newApp() *cli.Command {
	themeFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "theme", Aliases: []string{"t"}, Usage: "load variants from `FILE` (YAML or TOML)"}
	}
	return &cli.Command{
		Name:            "formtrace",
		Usage:           "trace the notifications of a control tree",
		Version:         version,
		HideHelpCommand: true,
		Before:          before,
		After:           after,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every step"},
			&cli.StringFlag{Name: "debug-log", Usage: "write the engine debug log to `FILE`"},
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Applies a scenario and prints its event trace",
				ArgsUsage: "SCENARIO",
				Flags:     []cli.Flag{themeFlag()},
				Action:    runScenario,
			},
			{
				Name:  "variants",
				Usage: "Lists the variant catalogue",
				Flags: []cli.Flag{
					themeFlag(),
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: defaultVariantFormat,
						Usage: "print each variant with Go `TEMPLATE` (sprig functions available)"},
				},
				Action: listVariants,
			},
		},
	}
}

func loadCatalogue(path string) (*theme.Catalogue, error) {
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

func runScenario(ctx context.Context, cmd *cli.Command) (err error) {
	log := envFromContext(ctx).log
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one scenario file, got %d arguments", cmd.NArg())
	}
	path := cmd.Args().First()

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	themePath := cmd.String("theme")
	if themePath == "" && s.Theme != "" {
		themePath = s.Theme
		if !filepath.IsAbs(themePath) {
			themePath = filepath.Join(filepath.Dir(path), themePath)
		}
	}
	cat, err := loadCatalogue(themePath)
	if err != nil {
		return err
	}

	r := scenario.NewRunner(cat, log)
	defer func() {
		if er := r.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("teardown: %w", er))
		}
	}()

	log.Info("Running scenario", zap.String("file", path), zap.Int("steps", len(s.Steps)))
	lines, err := r.Run(s)
	out := cmd.Root().Writer
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return err
}

// variantRow is the data a --format template sees for each variant.
type variantRow struct {
	Name         string
	Width        int
	Height       int
	BorderWidth  int
	BorderHeight int
	TopLevel     bool
	Styles       []string
	BackColor    string
	ForeColor    string
	Font         string
}

const defaultVariantFormat = `{{ printf "%-10s" .Name }} size={{ .Width }}x{{ .Height }} border={{ .BorderWidth }}x{{ .BorderHeight }} top-level={{ .TopLevel }}`

func listVariants(_ context.Context, cmd *cli.Command) error {
	cat, err := loadCatalogue(cmd.String("theme"))
	if err != nil {
		return err
	}
	tmpl, err := template.New("variant").Funcs(sprig.FuncMap()).Parse(cmd.String("format"))
	if err != nil {
		return fmt.Errorf("unable to parse format template: %w", err)
	}

	out := cmd.Root().Writer
	for _, name := range cat.Names() {
		v, _ := cat.Lookup(name)
		row := variantRow{
			Name:         v.Name,
			Width:        v.DefaultSize.Width,
			Height:       v.DefaultSize.Height,
			BorderWidth:  v.BorderDelta.Width,
			BorderHeight: v.BorderDelta.Height,
			TopLevel:     v.TopLevel,
			Styles:       forms.StyleNames(v.Styles),
		}
		if !v.DefaultBackColor.IsEmpty() {
			row.BackColor = v.DefaultBackColor.String()
		}
		if !v.DefaultForeColor.IsEmpty() {
			row.ForeColor = v.DefaultForeColor.String()
		}
		if !v.DefaultFont.IsZero() {
			row.Font = v.DefaultFont.String()
		}
		if err := tmpl.Execute(out, row); err != nil {
			return fmt.Errorf("variant %s: %w", name, err)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "formtrace: %v\n", err)
		os.Exit(1)
	}
}
