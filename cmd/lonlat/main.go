package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/lonlat/internal/angle"
	"github.com/woozymasta/lonlat/internal/config"
	"github.com/woozymasta/lonlat/internal/logger"
	"github.com/woozymasta/lonlat/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string `short:"i" long:"in"           description:"Input file path, one coordinate per line. Reads from stdin if empty and no coordinates are given"`
	Output     string `short:"o" long:"out"          description:"Output file path. Writes to stdout if empty"`
	ConfigFile string `short:"c" long:"config"       env:"CONFIG_FILE"     description:"Path to configuration file with defaults and named places"`
	Format     string `short:"f" long:"format"       env:"LONLAT_FORMAT"   description:"Output format" choice:"geo-uri" choice:"dms" choice:"dms-nwse" choice:"json" choice:"yaml" choice:"geojson"`
	Notation   string `short:"n" long:"notation"     env:"LONLAT_NOTATION" description:"Input and DMS output notation" choice:"iso" choice:"ja-JP"`
	Separator  string `short:"s" long:"separator"    description:"DMS pair separator: comma, space or any text"`
	Altitude   bool   `short:"a" long:"altitude"     description:"Every line carries a third, altitude field in meters"`
	Angle      bool   `short:"A" long:"angle"        description:"Read single angles and list each in every notation"`
	Skip       bool   `long:"skip-invalid"           description:"Log and skip lines that cannot be converted"`

	Args struct {
		Coordinates []string `positional-arg-name:"coordinate" description:"Coordinates or place names to convert instead of reading input"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	// flags override the config file
	if opts.Notation != "" {
		cfg.Notation = opts.Notation
	}
	if opts.Separator != "" {
		cfg.Separator = opts.Separator
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if err := cfg.Prepare(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	format, err := processor.ParseFormat(cfg.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid output format")
	}

	in, closeIn := openInput(opts)
	defer closeIn()

	out, closeOut := openOutput(opts.Output)
	defer closeOut()

	if opts.Angle {
		if err := describeAngles(in, out, cfg.NotationTable(), format); err != nil {
			log.Error().Err(err).Msg("Angle conversion failed")
			closeOut()
			os.Exit(1)
		}
		return
	}

	err = processor.Process(in, out, processor.Options{
		Lookup:      cfg.Lookup,
		Notation:    cfg.NotationTable(),
		Separator:   cfg.SeparatorValue(),
		Format:      format,
		Altitude:    opts.Altitude,
		SkipInvalid: opts.Skip,
	})
	if err != nil {
		log.Error().Err(err).Msg("Conversion failed")
		closeOut()
		os.Exit(1)
	}
}

func openInput(opts Options) (io.Reader, func()) {
	if len(opts.Args.Coordinates) > 0 {
		return strings.NewReader(strings.Join(opts.Args.Coordinates, "\n")), func() {}
	}
	if opts.Input == "" {
		return os.Stdin, func() {}
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Error reading input file")
	}
	return f, func() { _ = f.Close() }
}

func openOutput(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Error creating output file")
	}

	closed := false
	return f, func() {
		if closed {
			return
		}
		closed = true
		// We care about write errors on close
		if err := f.Close(); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Failed to close file")
		}
	}
}

// describeAngles lists every input line as an angle report, in YAML when
// asked for and JSON otherwise.
func describeAngles(in io.Reader, out io.Writer, n *angle.Notation, format processor.Format) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	var reports []processor.AngleReport
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		report, err := processor.DescribeAngle(n, line)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	log.Debug().Int("angles", len(reports)).Msg("Angles converted")

	if format == processor.FormatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
