package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	hostelui "github.com/goliatone/go-hostelui"
	"github.com/goliatone/go-hostelui/internal/prompt"
	"github.com/goliatone/go-hostelui/pkg/card"
	"github.com/goliatone/go-hostelui/pkg/detail"
	"github.com/goliatone/go-hostelui/pkg/dom/htmldoc"
	"github.com/goliatone/go-hostelui/pkg/filter"
	"github.com/goliatone/go-hostelui/pkg/validation"
	"github.com/goliatone/go-hostelui/pkg/variant"
)

type rootOptions struct {
	configPath  string
	variantName string
	verbose     bool

	logger *zap.Logger
	store  *variant.Store
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hostelui",
		Short:         "Apply hostel page behaviour to saved pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML file with additional page variants")
	flags.StringVar(&opts.variantName, "variant", variant.DefaultName, "page variant to apply")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newFilterCmd(opts),
		newDetailsCmd(opts),
		newValidateCmd(opts),
		newVariantsCmd(opts),
	)
	return root
}

func (o *rootOptions) setup() error {
	config := zap.NewProductionConfig()
	if o.verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	o.logger = logger

	o.store = variant.Default()
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		extra, err := variant.Load(data, o.configPath)
		if err != nil {
			return err
		}
		o.store.Merge(extra)
		o.logger.Debug("variants loaded", zap.String("config", o.configPath), zap.Strings("names", extra.Names()))
	}
	return nil
}

func (o *rootOptions) selectedVariant() (variant.Variant, error) {
	v, ok := o.store.Get(o.variantName)
	if !ok {
		return variant.Variant{}, fmt.Errorf("unknown variant %q (have %s)", o.variantName, strings.Join(o.store.Names(), ", "))
	}
	return v, nil
}

func loadPage(path string) (*htmldoc.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("--page is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return htmldoc.Parse(f)
}

func newFilterCmd(root *rootOptions) *cobra.Command {
	var (
		page        string
		output      string
		minScore    int
		maxRent     int
		roomType    string
		hostelType  string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter the recommendation cards of a page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := root.selectedVariant()
			if err != nil {
				return err
			}
			if v.Filter == nil {
				return fmt.Errorf("variant %q has no card filter", v.Name)
			}
			doc, err := loadPage(page)
			if err != nil {
				return err
			}
			pg, err := hostelui.Wire(doc, v, hostelui.WithLogger(root.logger))
			if err != nil {
				return err
			}

			criteria := filter.Criteria{MinScore: float64(minScore), RoomType: roomType, HostelType: hostelType}
			if maxRent > 0 {
				criteria = criteria.WithMaxRent(float64(maxRent))
			}
			if interactive {
				choices := prompt.ChoicesFromCards(card.Query(doc, v.Filter.CardClass))
				criteria, err = prompt.AskCriteria(cmd.Context(), prompt.NewSurveyDriver(), choices)
				if err != nil {
					return err
				}
			}

			res := pg.Filter(criteria)
			root.logger.Info("filter applied",
				zap.Float64("min_score", criteria.MinScore),
				zap.Float64("max_rent", criteria.RentLimit()),
				zap.String("room_type", criteria.RoomType),
				zap.String("hostel_type", criteria.HostelType),
				zap.Int("visible", len(res.Visible)))

			printFilterResult(cmd.OutOrStdout(), doc, v, res)

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				if err := doc.Render(f); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&page, "page", "", "rendered recommendations page (HTML)")
	f.StringVarP(&output, "output", "o", "", "write the filtered page here")
	f.IntVar(&minScore, "min-score", 0, "minimum match score")
	f.IntVar(&maxRent, "max-rent", 0, "maximum monthly rent (0 for no limit)")
	f.StringVar(&roomType, "room-type", filter.Any, "room type")
	f.StringVar(&hostelType, "hostel-type", filter.Any, "hostel type")
	f.BoolVarP(&interactive, "interactive", "i", false, "prompt for the criteria")
	return cmd
}

func printFilterResult(w io.Writer, doc *htmldoc.Document, v variant.Variant, res filter.Result) {
	if !res.AnyVisible {
		fmt.Fprintln(w, "No hostels match these filters.")
		return
	}
	visible := make(map[string]struct{}, len(res.Visible))
	for _, id := range res.Visible {
		visible[id] = struct{}{}
	}
	symbol := "₹"
	if v.Budget != nil {
		symbol = v.Budget.Format("")
	}
	for _, c := range card.Query(doc, v.Filter.CardClass) {
		if _, ok := visible[c.Record.ID]; !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s%%\t%s%s\n", c.Record.ID, c.Record.Name, c.Record.ScoreText, symbol, c.Record.Rent.Text)
	}
}

func newDetailsCmd(root *rootOptions) *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "details <id>",
		Short: "Render the detail panel of one card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := root.selectedVariant()
			if err != nil {
				return err
			}
			if v.Detail == nil {
				return fmt.Errorf("variant %q has no detail panel", v.Name)
			}
			doc, err := loadPage(page)
			if err != nil {
				return err
			}
			found, ok := card.Find(doc, v.Detail.CardClass, args[0])
			if !ok {
				return fmt.Errorf("no card with id %q", args[0])
			}
			renderer, err := detail.New()
			if err != nil {
				return err
			}
			body, err := renderer.Render(*v.Detail, found.Record)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}
	cmd.Flags().StringVar(&page, "page", "", "rendered recommendations page (HTML)")
	return cmd
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [field=value ...]",
		Short: "Check a preference form submission against the variant rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := root.selectedVariant()
			if err != nil {
				return err
			}
			values := url.Values{}
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected field=value, got %q", arg)
				}
				values.Add(key, value)
			}
			report := validation.Validate(validation.FromValues(values), v.Rules)
			w := cmd.OutOrStdout()
			if report.Valid() {
				fmt.Fprintln(w, "ok")
				return nil
			}
			for _, field := range report.Invalid() {
				fmt.Fprintf(w, "%s: %s\n", field.FieldID, field.Message)
			}
			return fmt.Errorf("%d field(s) invalid", len(report.Invalid()))
		},
	}
}

func newVariantsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List configured page variants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, name := range root.store.Names() {
				v, _ := root.store.Get(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", name, v.Feedback, describe(v))
			}
			return nil
		},
	}
}

func describe(v variant.Variant) string {
	var parts []string
	if len(v.Rules) > 0 {
		parts = append(parts, fmt.Sprintf("form(%d rules)", len(v.Rules)))
	}
	if v.Budget != nil {
		parts = append(parts, "budget")
	}
	if v.Filter != nil {
		parts = append(parts, "filter/"+string(v.Filter.Visibility.Mode))
	}
	if v.Detail != nil {
		parts = append(parts, "detail/"+string(v.Detail.SecondaryRating))
	}
	return strings.Join(parts, " ")
}
