package cmd

import (
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/export"
	"github.com/slidecraft/slidecraft/internal/extract"
	"github.com/slidecraft/slidecraft/internal/models"
)

func newGenerateCmd() *cobra.Command {
	var (
		topic      string
		file       string
		slides     int
		style      string
		language   string
		complexity string
		outDir     string
		configPath string
		pngs       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a presentation from the command line",
		Long: `Runs the full generation pipeline once and writes the exported
deck to disk, without starting the API server.

The source material comes from --topic, --file, or both. Supported files
are plain text, .docx, and .pdf.`,
		Example: `  # Generate from a topic
  slidecraft generate --topic "History of the Silk Road" --out ./decks

  # Generate from an article file with a custom style
  slidecraft generate --file article.docx --style minimalist --slides 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			input := models.SourceInput{Text: topic}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("unable to read %s: %w", file, err)
				}
				name := filepath.Base(file)
				result, err := extract.Normalize(name, mimeTypeFor(name), data)
				if err != nil {
					return fmt.Errorf("unable to process %s: %w", file, err)
				}
				if result.Attachment != nil {
					input.Attachment = result.Attachment
				} else if input.Text == "" {
					input.Text = result.Text
				} else {
					input.Text += "\n\n" + result.Text
				}
			}

			params := models.GenerationParams{
				Complexity: complexity,
				Style:      style,
				Language:   language,
				SlideCount: slides,
			}

			svc, _ := newPipeline(cfg)
			presentation, err := svc.Generate(cmd.Context(), input, params)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("unable to create %s: %w", outDir, err)
			}

			pdfBytes, pdfName, err := export.PDF(presentation)
			if err != nil {
				return fmt.Errorf("PDF export failed: %w", err)
			}
			if err := writeExport(outDir, pdfName, pdfBytes); err != nil {
				return err
			}

			pptxBytes, pptxName, err := export.PPTX(presentation)
			if err != nil {
				return fmt.Errorf("PPTX export failed: %w", err)
			}
			if err := writeExport(outDir, pptxName, pptxBytes); err != nil {
				return err
			}

			if pngs {
				for i := range presentation.Slides {
					pngBytes, pngName, err := export.SlidePNG(presentation, i)
					if err != nil {
						return fmt.Errorf("PNG export failed for slide %d: %w", i+1, err)
					}
					if err := writeExport(outDir, pngName, pngBytes); err != nil {
						return err
					}
				}
			}

			slog.Info("Deck generated",
				"topic", presentation.Topic,
				"slides", len(presentation.Slides),
				"citations", len(presentation.Citations),
				"out", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Topic or instructions to generate from")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Source document (.txt, .docx, .pdf)")
	cmd.Flags().IntVarP(&slides, "slides", "n", 0, "Number of slides (3-12)")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Visual style (photorealistic, minimalist, illustrated, corporate, creative)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Output language (default English)")
	cmd.Flags().StringVar(&complexity, "complexity", "", "Audience tier (general, professional, academic, executive)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write exports into")
	cmd.Flags().StringVarP(&configPath, "config", "c", "slidecraft.yaml", "Path to config file")
	cmd.Flags().BoolVar(&pngs, "pngs", false, "Also write each slide as a standalone PNG")

	return cmd
}

func writeExport(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	slog.Info("Wrote export", "path", path, "bytes", len(data))
	return nil
}

func mimeTypeFor(name string) string {
	switch ext := filepath.Ext(name); ext {
	case ".txt", ".md":
		return "text/plain"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".pdf":
		return "application/pdf"
	default:
		return mime.TypeByExtension(ext)
	}
}
