package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	xmlrecord "github.com/whyarkadas/optimized-xml-writer"
	"github.com/whyarkadas/optimized-xml-writer/internal/logger"
	"github.com/whyarkadas/optimized-xml-writer/recordio"
)

// NewConvertCommand returns the command that streams a JSONL or CSV input
// into an XML document.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input-file]",
		Short: "Convert a JSONL or CSV record stream into an XML document",
		Long: `Convert a JSONL or CSV record stream into an XML document.

Reads records from the input file, or from stdin when no file is given,
and writes one XML element per record. Each record is flushed as it is
written, so arbitrarily large inputs convert in constant memory.`,
		Args: cobra.MaximumNArgs(1),
		// Binding at PreRun time keeps this command's flags authoritative
		// in viper even when sibling commands register the same names.
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlags(cmd.Flags(),
				"format", "output", "root", "element", "batch-size",
				"array-policy", "indent", "log-format", "log-level")
		},
		RunE: runConvert,
	}

	flags := cmd.Flags()
	flags.String("format", "jsonl", `input format: "jsonl" or "csv"`)
	flags.StringP("output", "o", "", "output file (default stdout)")
	flags.String("root", "records", "root element name")
	flags.String("element", "record", "element name for each record")
	flags.Int("batch-size", 0, "queue records and write them in groups of this size; 0 writes each record immediately")
	flags.String("array-policy", "repeat", `array encoding: "repeat" or "indexed"`)
	flags.String("indent", "  ", "indent string per nesting level")
	flags.String("log-format", "text", `log format: "text" or "json"`)
	flags.String("log-level", "info", "log level")

	return cmd
}

// recordWriter is the write surface shared by Session and BatchWriter.
type recordWriter interface {
	WriteRecord(rec any, element string) error
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	log, err := logger.New(viper.GetString("log-format"), viper.GetString("log-level"))
	if err != nil {
		return err
	}
	defer log.Sync()

	var in io.Reader = os.Stdin
	inputName := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		inputName = args[0]
	}

	var sc recordio.Scanner
	switch format := viper.GetString("format"); format {
	case "jsonl":
		sc = recordio.NewJSONLScanner(in)
	case "csv":
		sc = recordio.NewCSVScanner(in)
	default:
		return fmt.Errorf("unknown input format %q", format)
	}

	var policy xmlrecord.ArrayPolicy
	switch p := viper.GetString("array-policy"); p {
	case "repeat":
		policy = xmlrecord.ArrayRepeat
	case "indexed":
		policy = xmlrecord.ArrayIndexedChild
	default:
		return fmt.Errorf("unknown array policy %q", p)
	}

	opts := []xmlrecord.Option{
		xmlrecord.WithIndentString(viper.GetString("indent")),
		xmlrecord.WithArrayPolicy(policy),
	}
	root := viper.GetString("root")
	element := viper.GetString("element")

	var session *xmlrecord.Session
	if out := viper.GetString("output"); out != "" {
		session = xmlrecord.New(out, root, opts...)
	} else {
		session = xmlrecord.NewWriter(os.Stdout, root, opts...)
	}

	begin := time.Now()
	if err := session.Start(); err != nil {
		return err
	}

	var sink recordWriter = session
	finish := session.Finish
	if size := viper.GetInt("batch-size"); size > 0 {
		bw := xmlrecord.NewBatchWriter(session, size)
		sink = bw
		finish = bw.Finish
	}

	// Finishing twice is harmless; the guard covers error returns so the
	// document gets its root end tag even when a record fails mid-stream.
	defer func() {
		if ferr := finish(); err == nil {
			err = ferr
		}
	}()

	count := 0
	for sc.Scan() {
		if err := sink.WriteRecord(sc.Record(), element); err != nil {
			return err
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if err := finish(); err != nil {
		return err
	}

	log.Info("document written",
		zap.String("input", inputName),
		zap.Int("records", count),
		zap.Duration("elapsed", time.Since(begin)),
	)
	return nil
}
