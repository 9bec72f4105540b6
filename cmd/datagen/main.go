// Command datagen is a demonstration front-end for the datagen toolkit:
// it registers every generator variant in a registry and prints sample
// artifacts, mirroring how an algorithm test suite would consume them.
//
// Configuration comes from flags or DATAGEN_* environment variables
// (DATAGEN_SEED, DATAGEN_ALPHABET); a seed of 0 means "seed from the
// clock", any other value pins the run for reproducible output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/datagen/graphgen"
	"github.com/katalvlaran/datagen/registry"
	"github.com/katalvlaran/datagen/seqgen"
	"github.com/katalvlaran/datagen/stringgen"
)

const (
	envPrefix = "datagen"

	flagSeed     = "seed"
	flagAlphabet = "alphabet"

	defaultAlphabet = "ACGT"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datagen:", err)
		os.Exit(1)
	}
}

// newRootCommand wires the subcommands and binds flags to viper so
// DATAGEN_SEED / DATAGEN_ALPHABET env vars work interchangeably.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "datagen",
		Short:         "Generate synthetic test data: sequences, strings, string pairs, graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Int64(flagSeed, 0, "entropy seed; 0 seeds from the clock")
	root.PersistentFlags().String(flagAlphabet, defaultAlphabet, "alphabet for string artifacts")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	_ = viper.BindPFlag(flagSeed, root.PersistentFlags().Lookup(flagSeed))
	_ = viper.BindPFlag(flagAlphabet, root.PersistentFlags().Lookup(flagAlphabet))

	root.AddCommand(newDemoCommand())
	root.AddCommand(newGraphCommand())
	root.AddCommand(newStringCommand())
	root.AddCommand(newPairCommand())
	root.AddCommand(newSequenceCommand())

	return root
}

// graphOptions translates the CLI settings into graphgen options;
// a zero seed leaves the generator clock-seeded.
func graphOptions(directed, weighted bool) []graphgen.Option {
	var opts []graphgen.Option
	if directed {
		opts = append(opts, graphgen.WithDirected())
	}
	if !weighted {
		opts = append(opts, graphgen.WithUnweighted())
	}
	if seed := viper.GetInt64(flagSeed); seed != 0 {
		opts = append(opts, graphgen.WithSeed(seed))
	}

	return opts
}

func stringOptions() []stringgen.Option {
	opts := []stringgen.Option{stringgen.WithAlphabetString(viper.GetString(flagAlphabet))}
	if seed := viper.GetInt64(flagSeed); seed != 0 {
		opts = append(opts, stringgen.WithSeed(seed))
	}

	return opts
}

func seqOptions() []seqgen.Option {
	var opts []seqgen.Option
	if seed := viper.GetInt64(flagSeed); seed != 0 {
		opts = append(opts, seqgen.WithSeed(seed))
	}

	return opts
}

// newDemoCommand reproduces the classic walkthrough: build a registry
// with every variant, then draw a number, a graph, a string, and a
// similar pair.
func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Register every generator and print one artifact of each kind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := registry.New()

			linear := seqgen.NewLinear()
			random, err := seqgen.NewRandomInt(0, 50, seqOptions()...)
			if err != nil {
				return err
			}
			gaussian, err := seqgen.NewGaussian(0, 1, seqOptions()...)
			if err != nil {
				return err
			}
			number, err := seqgen.NewNumber(1, 100, seqOptions()...)
			if err != nil {
				return err
			}
			graphGen := graphgen.New(graphOptions(true, true)...)
			stringGen, err := stringgen.New(stringOptions()...)
			if err != nil {
				return err
			}

			for name, g := range map[string]registry.Generator{
				"linear":   registry.GeneratorFunc(func(size int) (any, error) { return linear.Generate(size) }),
				"random":   registry.GeneratorFunc(func(size int) (any, error) { return random.Generate(size) }),
				"gaussian": registry.GeneratorFunc(func(size int) (any, error) { return gaussian.Generate(size) }),
				"number":   registry.GeneratorFunc(func(size int) (any, error) { return number.Generate(size) }),
				"graph":    registry.GeneratorFunc(func(size int) (any, error) { return graphGen.Generate(size) }),
				"string":   registry.GeneratorFunc(func(size int) (any, error) { return stringGen.Generate(size) }),
			} {
				if err = reg.Register(name, g); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "registered:", reg.Names())

			numberGen, err := reg.Get("number")
			if err != nil {
				return err
			}
			n, err := numberGen.Generate(1)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "number:", n)

			graphLookup, err := reg.Get("graph")
			if err != nil {
				return err
			}
			artifact, err := graphLookup.Generate(5)
			if err != nil {
				return err
			}
			g := artifact.(*graphgen.Graph)
			fmt.Fprintf(out, "graph: %d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())
			for _, e := range g.Edges() {
				fmt.Fprintf(out, "  %d -> %d (weight=%d)\n", e.U, e.V, e.Weight)
			}

			stringLookup, err := reg.Get("string")
			if err != nil {
				return err
			}
			s, err := stringLookup.Generate(10)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "string:", s)

			str1, str2, err := stringGen.GeneratePair(10, 12, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "pair: %s %s\n", str1, str2)

			return nil
		},
	}
}

func newGraphCommand() *cobra.Command {
	var (
		size     int
		directed bool
		weighted bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a random sparse graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := graphgen.New(graphOptions(directed, weighted)...).Generate(size)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes: %d\nedges: %d\n", g.NodeCount(), g.EdgeCount())
			arrow := "--"
			if g.Directed() {
				arrow = "->"
			}
			for _, e := range g.Edges() {
				fmt.Fprintf(out, "%d %s %d (weight=%d)\n", e.U, arrow, e.V, e.Weight)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 10, "number of nodes")
	cmd.Flags().BoolVar(&directed, "directed", false, "orient edges low→high (output is a DAG)")
	cmd.Flags().BoolVar(&weighted, "weighted", true, "draw weights uniformly from [1,10]")

	return cmd
}

func newStringCommand() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "string",
		Short: "Generate a random string over the alphabet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := stringgen.New(stringOptions()...)
			if err != nil {
				return err
			}
			s, err := g.Generate(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 10, "string length")

	return cmd
}

func newPairCommand() *cobra.Command {
	var (
		len1, len2 int
		similar    bool
	)
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Generate a string pair, optionally similarity-constrained",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := stringgen.New(stringOptions()...)
			if err != nil {
				return err
			}
			str1, str2, err := g.GeneratePair(len1, len2, similar)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), str1)
			fmt.Fprintln(cmd.OutOrStdout(), str2)

			return nil
		},
	}
	cmd.Flags().IntVar(&len1, "len1", 10, "length of the first string")
	cmd.Flags().IntVar(&len2, "len2", 10, "length of the second string (ignored when --similar)")
	cmd.Flags().BoolVar(&similar, "similar", false, "derive the second string by bounded mutation")

	return cmd
}

func newSequenceCommand() *cobra.Command {
	var (
		kind string
		size int
	)
	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Generate a scalar sequence: linear, random, or gaussian",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				artifact any
				err      error
			)
			switch kind {
			case "linear":
				artifact, err = seqgen.NewLinear().Generate(size)
			case "random":
				var g *seqgen.RandomInt
				if g, err = seqgen.NewRandomInt(0, 100, seqOptions()...); err == nil {
					artifact, err = g.Generate(size)
				}
			case "gaussian":
				var g *seqgen.Gaussian
				if g, err = seqgen.NewGaussian(0, 1, seqOptions()...); err == nil {
					artifact, err = g.Generate(size)
				}
			default:
				return fmt.Errorf("unknown sequence kind %q (want linear, random, or gaussian)", kind)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), artifact)

			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "random", "sequence kind: linear, random, gaussian")
	cmd.Flags().IntVar(&size, "size", 10, "sequence length")

	return cmd
}
