package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
)

const (
	formatHTML = "html"
	formatCSS  = "css"
	formatBoth = "both"
)

type options struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCommand builds the sitegen command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}
	root := &cobra.Command{
		Use:   "sitegen",
		Short: "Generate a single-page website from a one-line description",
		Long: `sitegen turns a short natural-language description into a complete
single-page website: an HTML document with its stylesheet inlined, plus the
same stylesheet as a standalone file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initializeConfig(cmd)
		},
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./sitegen.yaml)")
	root.AddCommand(newGenerateCommand(opts), newTemplatesCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// initializeConfig layers flags over SITEGEN_* env vars over the config file over defaults.
func (o *options) initializeConfig(cmd *cobra.Command) error {
	v := o.v
	v.SetDefault("template", string(sitegen.TemplateBusiness))
	v.SetDefault("out", ".")
	v.SetDefault("format", formatBoth)

	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sitegen")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return v.BindPFlags(cmd.Flags())
}
