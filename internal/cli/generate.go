package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"designarena/internal/domain"
	"designarena/internal/pipeline"
	"designarena/internal/storage"
	"designarena/internal/validation"
)

var (
	briefPath  string
	outDir     string
	seed       uint64
	motionIdea int
	noMotion   bool
	localeFlag string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a package from a YAML brief",
	Example: `  arenactl generate --brief brief.yaml --seed 42
  cat brief.yaml | arenactl generate --brief - --out ./dist`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&briefPath, "brief", "b", "", "brief file (YAML), - for stdin")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default OUTPUT_DIR)")
	generateCmd.Flags().Uint64Var(&seed, "seed", 1, "seed for style and keyword picks")
	generateCmd.Flags().IntVar(&motionIdea, "motion-idea", 0, "index of the idea to animate")
	generateCmd.Flags().BoolVar(&noMotion, "no-motion", false, "skip the Lottie animation")
	generateCmd.Flags().StringVar(&localeFlag, "locale", "", "manifest locale (default DEFAULT_LOCALE)")
	_ = generateCmd.MarkFlagRequired("brief")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	brief, err := readBrief(cmd.InOrStdin(), briefPath)
	if err != nil {
		return err
	}
	if err := validation.New().Struct(brief); err != nil {
		var lines []string
		for _, is := range validation.Issues(err) {
			lines = append(lines, fmt.Sprintf("%s: %s", is.Path, is.Rule))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(lines, "; "))
	}

	dir := outDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	loc := localeFlag
	if loc == "" {
		loc = cfg.DefaultLocale
	}

	res, err := pipeline.Run(brief, pipeline.Options{
		Seed:       seed,
		MotionIdea: motionIdea,
		SkipMotion: noMotion,
		Locale:     loc,
	})
	if err != nil {
		return err
	}

	store, err := storage.NewFileStore(dir)
	if err != nil {
		return err
	}
	key, err := store.WriteArchive(cmd.Context(), res.Folder, res.Archive)
	if err != nil {
		return err
	}
	path, _ := store.Path(key)

	logger.Info().
		Str("niche", brief.Niche).
		Uint64("seed", seed).
		Int("visuals", len(res.Visuals)).
		Bool("motion", res.Motion != nil).
		Int("bytes", len(res.Archive)).
		Msg("package written")
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func readBrief(stdin io.Reader, path string) (domain.Brief, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Brief{}, fmt.Errorf("read brief: %w", err)
	}

	var brief domain.Brief
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&brief); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Brief{}, fmt.Errorf("%w: brief is empty", domain.ErrInvalidInput)
		}
		return domain.Brief{}, fmt.Errorf("parse brief: %w", err)
	}
	return brief, nil
}
