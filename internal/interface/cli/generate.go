package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
	"github.com/yanqian/ai-sitegen/pkg/logger"
)

func newGenerateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a website and write it to disk",
		Long: `generate classifies the prompt, picks a name, hero and features for it,
applies the template's colour theme and writes <slug>.html and styles.css.`,
		Example: `  sitegen generate --prompt "Create a modern restaurant website with menu and reservations"
  sitegen generate -p "travel blog" -t blog --format html -o ./site
  sitegen generate -p "coffee shop" --stdout > index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts.v)
		},
	}
	cmd.Flags().StringP("prompt", "p", "", "describe the website you want")
	cmd.Flags().StringP("template", "t", string(sitegen.TemplateBusiness), "template id, see `sitegen templates`")
	cmd.Flags().StringP("out", "o", ".", "output directory")
	cmd.Flags().String("format", formatBoth, "files to write: html, css or both")
	cmd.Flags().Bool("stdout", false, "print the HTML document instead of writing files")
	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	format := strings.ToLower(strings.TrimSpace(v.GetString("format")))
	switch format {
	case formatHTML, formatCSS, formatBoth:
	default:
		return fmt.Errorf("unsupported format %q: want html, css or both", format)
	}

	template := sitegen.TemplateID(v.GetString("template"))
	log := logger.NewWithWriter(cmd.ErrOrStderr())
	if !template.Known() {
		log.Warn("unknown template, using the business theme", "template", template)
	}

	svc := sitegen.NewService(sitegen.Config{DefaultTemplate: template}, nil, log)
	resp, err := svc.Generate(cmd.Context(), sitegen.GenerateRequest{
		Prompt:   v.GetString("prompt"),
		Template: template,
	})
	if err != nil {
		return err
	}

	if v.GetBool("stdout") {
		_, err := io.WriteString(cmd.OutOrStdout(), resp.HTML)
		return err
	}

	dir := v.GetString("out")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	files := make([][2]string, 0, 2)
	if format != formatCSS {
		files = append(files, [2]string{resp.Files.HTML, resp.HTML})
	}
	if format != formatHTML {
		files = append(files, [2]string{resp.Files.CSS, resp.CSS})
	}
	for _, file := range files {
		path := filepath.Join(dir, file[0])
		if err := os.WriteFile(path, []byte(file[1]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
