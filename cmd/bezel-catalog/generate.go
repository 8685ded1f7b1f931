package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/menta2k/bezel-catalog/internal/config"
	"github.com/menta2k/bezel-catalog/internal/utils"
	"github.com/menta2k/bezel-catalog/pkg/catalog"
	"github.com/menta2k/bezel-catalog/pkg/viewport"
)

func newGenerateCmd() *cobra.Command {
	var (
		devicesRoot string
		repoRoot    string
		output      string
		format      string
		pretty      bool
		workers     int
		configFile  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the metadata catalog for a devices tree",
		Long: `Generate walks the devices tree (category/device/asset), detects the
screen viewport of every bezel image and writes the sorted asset catalog.`,
		Example: `  # Generate bezels/catalog.json from bezels/devices
  bezel-catalog generate

  # Pretty-printed YAML to a custom location, 8 workers
  bezel-catalog generate --format yaml --output catalog.yaml --pretty --workers 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configFile != "" {
				loaded, err := config.LoadFromFile(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Output.Pretty = pretty
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Path = output
			}
			if cmd.Flags().Changed("workers") {
				cfg.Catalog.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			absRepo, err := filepath.Abs(repoRoot)
			if err != nil {
				return fmt.Errorf("resolving repo root: %w", err)
			}
			if !filepath.IsAbs(devicesRoot) {
				devicesRoot = filepath.Join(absRepo, devicesRoot)
			}
			outPath := cfg.Output.Path
			if !filepath.IsAbs(outPath) {
				outPath = filepath.Join(absRepo, outPath)
			}

			builder := catalog.NewBuilderWithConfig(catalog.BuilderConfig{
				Detector: viewport.Config{
					TransparentMax: cfg.Detector.TransparentMax,
					SolidMin:       cfg.Detector.SolidMin,
					MaxMaskDim:     cfg.Detector.MaxMaskDim,
				},
				ShadowDirNames: cfg.Catalog.ShadowDirNames,
				Extensions:     cfg.Catalog.Extensions,
				Workers:        cfg.Catalog.Workers,
			})

			slog.Info("Building catalog", "devices_root", devicesRoot)
			cat, err := builder.Build(cmd.Context(), devicesRoot, absRepo)
			if err != nil {
				return err
			}

			if err := utils.EnsureDir(filepath.Dir(outPath)); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			switch cfg.Output.Format {
			case "yaml":
				err = cat.WriteYAML(f)
			default:
				err = cat.WriteJSON(f, cfg.Output.Pretty)
			}
			if err != nil {
				return err
			}

			var total int64
			for _, r := range cat.Files {
				total += r.SizeBytes
			}
			slog.Info("Catalog written",
				"path", utils.RelativePath(outPath, absRepo),
				"files", cat.FilesCount,
				"assets_size", utils.FormatFileSize(total))
			return nil
		},
	}

	cmd.Flags().StringVar(&devicesRoot, "devices-root", "bezels/devices", "Directory containing the device categories")
	cmd.Flags().StringVar(&repoRoot, "repo-root", ".", "Repository root used to build relative paths")
	cmd.Flags().StringVar(&output, "output", "bezels/catalog.json", "Where to write the generated catalog")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty print JSON output")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (0 = one per CPU)")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a JSON config file")

	return cmd
}
