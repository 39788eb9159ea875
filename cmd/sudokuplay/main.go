package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokuplay/internal/adapters/http"
	"svw.info/sudokuplay/internal/config"
	"svw.info/sudokuplay/internal/domain"
	"svw.info/sudokuplay/internal/generator"
	"svw.info/sudokuplay/internal/hint"
	"svw.info/sudokuplay/internal/usecase"
	"svw.info/sudokuplay/internal/validator"
)

var (
	cfgPath  string
	addr     string
	logLevel string

	genCount      int
	genDifficulty string
	genSeed       int64
	genSize       int
)

func main() {
	root := &cobra.Command{
		Use:   "sudokuplay",
		Short: "Generate and play 9x9 Sudoku puzzles",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game API server",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&cfgPath, "config", "", "JSON config file (optional)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	root.AddCommand(serveCmd)

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles to stdout",
		Long: `Generate one or more Sudoku puzzles at a difficulty.

Examples:
  sudokuplay gen --difficulty hard
  sudokuplay gen -n 3 --seed 42`,
		RunE: runGen,
	}
	genCmd.Flags().IntVarP(&genCount, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "medium", "easy|medium|hard")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 = from clock)")
	genCmd.Flags().IntVar(&genSize, "size", 9, "Board size (perfect square)")
	root.AddCommand(genCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// requestLogger logs method, path, status, and duration for every request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("dur", time.Since(start).Round(time.Millisecond)).
			Msg("http")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfgPath).Msg("load config")
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	zerolog.SetGlobalLevel(parseLevel(cfg.LogLevel))
	logger := log.With().Str("component", "server").Logger()

	// Wire providers -> use cases -> HTTP adapter.
	g := generator.NewBacktracking(cfg.BoardSize)
	v := validator.New()
	hin := hint.NewSingles()
	uc := usecase.NewService(g, v, hin, cfg)
	h := httpadapter.New(uc, logger)

	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(requestLogger(logger), gin.Recovery())
	h.Register(e)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr).Int("boardSize", cfg.BoardSize).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server error")
		return err
	}
	return nil
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	removed := cfg.RemovedFor(domain.ParseDifficulty(genDifficulty))
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for i := 0; i < genCount; i++ {
		g, err := generator.New(genSize, removed, rand.New(rand.NewSource(seed+int64(i))))
		if err != nil {
			return err
		}
		if err := g.FillValues(); err != nil {
			return err
		}
		if err := g.RemoveCells(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Println()
		}
		printGrid(g.Board())
	}
	return nil
}

func printGrid(g [][]int) {
	for _, row := range g {
		parts := make([]string, len(row))
		for i, v := range row {
			if v == 0 {
				parts[i] = "."
			} else {
				parts[i] = fmt.Sprintf("%d", v)
			}
		}
		fmt.Println(strings.Join(parts, " "))
	}
}
