package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	app "ring-inspector/internal/application"
	"ring-inspector/internal/infrastructure/storage"
	"ring-inspector/internal/infrastructure/vision"
)

func runCmd() *cobra.Command {
	var (
		outputDir string
		threshold float64
		blur      int
		maxSide   int
		workers   int
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "run [files or dirs...]",
		Short: "Inspect images and write result_<file name>.jpg for each one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if flags.Changed("threshold") {
				cfg.JumpThreshold = threshold
			}
			if flags.Changed("blur") {
				cfg.BlurKernel = blur
			}
			if flags.Changed("max-side") {
				cfg.MaxImageSide = maxSide
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			detector := vision.NewDetector(vision.Options{
				JumpThreshold: cfg.JumpThreshold,
				BlurKernel:    cfg.BlurKernel,
				MaxSide:       cfg.MaxImageSide,
				Logger:        logger.With("vision"),
			})
			store := storage.NewFileImageStore(cfg.OutputDir, dryRun)
			batch := app.NewBatchService(detector, store, cfg.Workers, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// при прерывании Run возвращает частичный итог вместе с ошибкой
			summary, err := batch.Run(ctx, args)
			if summary != nil {
				printSummary(cmd.OutOrStdout(), summary)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&outputDir, "output-dir", "output", "directory for annotated images")
	f.Float64Var(&threshold, "threshold", 2.5, "radius jump threshold, px")
	f.IntVar(&blur, "blur", 5, "Gaussian kernel size (odd, 1 disables)")
	f.IntVar(&maxSide, "max-side", 0, "downscale the longer side to this many px (0 disables)")
	f.IntVarP(&workers, "workers", "w", 4, "number of parallel workers")
	f.BoolVar(&dryRun, "dry-run", false, "inspect without writing result images")

	return cmd
}

func printSummary(w io.Writer, s *app.BatchSummary) {
	for _, r := range s.Reports {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%s: failed: %v\n", r.Source, r.Err)
		case r.Output != "":
			fmt.Fprintf(w, "%s: %s -> %s\n", r.Source, verdict(r), r.Output)
		default:
			fmt.Fprintf(w, "%s: %s\n", r.Source, verdict(r))
		}
	}
	fmt.Fprintf(w, "\nTotal: %d  Good: %d  Defective: %d  Error: %d  Failed: %d\n",
		s.Total, s.Good, s.Defective, s.Errors, s.Failed)
}

func verdict(r app.BatchReport) string {
	if r.Result == nil {
		return "-"
	}
	if text := r.Result.Text(); text != "" {
		return fmt.Sprintf("%s (%s)", r.Result.Status, text)
	}
	return string(r.Result.Status)
}
