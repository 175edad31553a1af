package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/torresjeff/sharedobject"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every record of a shared object",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			return writeYAML(cmd.OutOrStdout(), doc)
		case "text":
			return writeText(cmd.OutOrStdout(), doc)
		default:
			return fmt.Errorf("unknown format %q, expected text or yaml", format)
		}
	},
}

func init() {
	dumpCmd.Flags().String("format", "text", "output format: text or yaml")
	rootCmd.AddCommand(dumpCmd)
}

type yamlRecord struct {
	Key   string      `yaml:"key"`
	Kind  string      `yaml:"kind"`
	Value interface{} `yaml:"value"`
}

type yamlDocument struct {
	Name    string       `yaml:"name"`
	Version string       `yaml:"version"`
	Length  uint32       `yaml:"length"`
	Records []yamlRecord `yaml:"records"`
}

// writeYAML keeps records as a sequence so their order and duplicate keys survive.
func writeYAML(w io.Writer, doc *sharedobject.Document) error {
	out := yamlDocument{
		Name:    doc.Name,
		Version: doc.Version(),
		Length:  doc.Header.Length,
		Records: make([]yamlRecord, 0, doc.Len()),
	}
	for _, r := range doc.Records {
		out.Records = append(out.Records, yamlRecord{
			Key:   r.Key,
			Kind:  r.Value.Kind().String(),
			Value: r.Value.Interface(),
		})
	}
	b, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func writeText(w io.Writer, doc *sharedobject.Document) error {
	fmt.Fprintf(w, "name: %s (%s, %d bytes)\n", doc.Name, doc.Version(), doc.Header.Length)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range doc.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, r.Value.Kind(), r.Value)
	}
	return tw.Flush()
}
