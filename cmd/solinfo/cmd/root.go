package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/torresjeff/sharedobject"
	"github.com/torresjeff/sharedobject/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solinfo",
	Short: "Inspect Flash/AIR shared object (.sol) files",
	Long: `solinfo decodes a local shared object file and prints its records.

The file is either given with --file or located from an AIR application id
with --app and --name, using the Android local store layout.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "", "path of the shared object file")
	rootCmd.PersistentFlags().String("app", "", "AIR application id, used to locate the file when --file is not set")
	rootCmd.PersistentFlags().String("name", config.DefaultName, "shared object name, used with --app")
	rootCmd.PersistentFlags().BoolP("verbose", "v", config.Debug, "log every decoded field")
}

// newLogger returns a development logger writing to w, or a no-op logger when verbose is off.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

// documentPath resolves the file the command should read from its flags.
func documentPath(cmd *cobra.Command) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		return file, nil
	}
	app, _ := cmd.Flags().GetString("app")
	if app == "" {
		return "", fmt.Errorf("either --file or --app is required")
	}
	name, _ := cmd.Flags().GetString("name")
	return config.LocalStorePath(app, name), nil
}

func loadDocument(cmd *cobra.Command) (*sharedobject.Document, error) {
	path, err := documentPath(cmd)
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)
	defer logger.Sync()

	decoder := &sharedobject.Decoder{Logger: logger}
	return decoder.ParseFile(path, nil)
}
