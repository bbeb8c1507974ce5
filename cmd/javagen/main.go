// Command javagen generates Java source files from Go type definitions.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/javagen-io/javagen"
	"github.com/javagen-io/javagen/sink"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate Java source files."`
	Check   CheckCmd   `cmd:"" help:"Validate types without generating files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out         string   `arg:"" help:"Output directory for generated files."`
	Packages    []string `arg:"" help:"Go package patterns to analyze."`
	JavaPackage string   `help:"Java package for generated files." short:"j"`
	Roots       []string `help:"Restrict extraction to these type names." short:"r"`
	NoComments  bool     `help:"Drop Go doc comments from the output."`
	Modifier    string   `help:"Field access modifier." default:"public"`
}

func (c *GenCmd) Run() error {
	cfg := &javagen.Config{
		OutDir:        c.Out,
		Provider:      "source",
		Packages:      c.Packages,
		RootTypes:     c.Roots,
		JavaPackage:   c.JavaPackage,
		FieldModifier: c.Modifier,
	}
	if c.NoComments {
		cfg.PreserveComments = "none"
	}

	result, err := javagen.Generate(context.Background(), nil, cfg, sink.NewFilesystemSink(c.Out))
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.Code, w.Message)
	}
	fmt.Printf("generated %d files\n", len(result.Files))
	return nil
}

type CheckCmd struct {
	Packages []string `arg:"" help:"Go package patterns to analyze."`
	Roots    []string `help:"Restrict extraction to these type names." short:"r"`
}

func (c *CheckCmd) Run() error {
	cfg := &javagen.Config{
		Provider:  "source",
		Packages:  c.Packages,
		RootTypes: c.Roots,
	}

	result, err := javagen.Generate(context.Background(), nil, cfg, sink.NewMemorySink())
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", w.Code, w.Message)
	}
	fmt.Printf("checked %d declarations\n", result.DeclsGenerated)
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("javagen"),
		kong.Description("Generate Java source files from Go type definitions."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
