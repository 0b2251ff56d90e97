// Copyright 2025 The WordSolve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wsolve crossword and word game helper.

wsolve looks up dictionary entries that fit a letter pattern, solves jumbles
and anagrams, and covers a few daily word games. It can also run as a
MessagePack IPC server so editors and other tools can ask it questions.

# Usage

Look up words and phrases that fit a pattern, '_' or '.' for unknown letters
and '/' or a space between words:

	wsolve c_mp_t_r
	wsolve l_k_/m_g_c
	wsolve 4/5

Digits expand to runs of unknown letters and a trailing '%' matches any ending:

	wsolve 3f3
	wsolve arch%

Only show entries related to a word in the thesaurus:

	wsolve -t feline ___

Solve a jumble, with the letters placed so far:

	wsolve -j -f c_m tmpcreou

Without a mode flag, input with unknown letters or several words is looked up
and anything else is jumbled.

# Games

	wsolve -w -i t -x n c____     Wordle: green pattern, yellow and grey letters
	wsolve -s acert               Spelling Bee: first letter is required
	wsolve -p cratesmpo           Panagram: nine letters, first is required

# Configuration

Settings live in a TOML file in the user config dir, created with defaults on
first run. A .yaml or .yml file can be passed with -config instead:

	[dict]
	dir = "data"
	obscurity = 3
	include_phrases = true
	thesaurus_file = "thesaurus.txt"
	definitions_file = "definitions.txt"

	[lookup]
	parallel_workers = 0
	narrow = false

WSOLVE_* environment variables override the file, e.g. WSOLVE_OBSCURITY=1.

# IPC Protocol

With -serve the solver reads MessagePack requests from stdin and writes one
response per request to stdout:

	{"id": "req1", "m": "lookup", "p": "c_mp_t_r"}
	{"id": "req1", "r": ["computer"], "c": 1, "t": 145}

See package server for every mode.

# Data

The data directory holds plain text lists: words_1.txt to words_3.txt from
common to obscure, phrases.txt, thesaurus.txt with "word,related,..." lines
and definitions.txt with "word|definition" lines.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bastiangx/wordsolve/internal/cli"
	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/definitions"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/match"
	"github.com/bastiangx/wordsolve/pkg/server"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/bastiangx/wordsolve/pkg/thesaurus"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wsolve"
	gh      = "https://github.com/bastiangx/wordsolve"
)

// action is the puzzle mode picked from the flags.
type action int

const (
	actionNone action = iota
	actionLookup
	actionJumble
	actionAnagram
	actionRegex
	actionThesaurus
	actionWordle
	actionSpellingBee
	actionPanagram
)

var actionNames = map[action]string{
	actionLookup:      "lookup",
	actionJumble:      "jumble",
	actionAnagram:     "anagram",
	actionRegex:       "regex",
	actionThesaurus:   "thesaurus",
	actionWordle:      "wordle",
	actionSpellingBee: "spelling bee",
	actionPanagram:    "panagram",
}

func (a action) String() string {
	return actionNames[a]
}

type options struct {
	lookup      *bool
	jumble      *bool
	anagram     *bool
	regex       *bool
	wordle      *bool
	spellingBee *bool
	panagram    *bool
	reverse     *bool
	regular     *bool
	remove      *bool
	serve       *bool

	target   *string
	include  *string
	exclude  *string
	found    *string
	letters  *string
	define   *string
	size     *int
	subset   *bool
	noPhrase *bool
	narrow   *bool
	level    *int

	dataDir     *string
	configFile  *string
	resetConfig *bool
	debug       *bool
	version     *bool
}

func parseFlags() *options {
	o := &options{
		lookup:      flag.Bool("l", false, "Look up entries that fit a pattern, e.g. c_mp_t_r or 4/5"),
		jumble:      flag.Bool("j", false, "Jumble the letters in a circle and list the entries they spell"),
		anagram:     flag.Bool("a", false, "List exact anagrams of the letters"),
		regex:       flag.Bool("R", false, "Treat the input as a regular expression"),
		wordle:      flag.Bool("w", false, "Wordle: input is the green pattern, see -i and -x"),
		spellingBee: flag.Bool("s", false, "Spelling Bee: words of 4+ letters from the letters, first letter required"),
		panagram:    flag.Bool("p", false, "Panagram: words from nine letters, first letter required"),
		reverse:     flag.Bool("v", false, "Print the input reversed"),
		regular:     flag.Bool("g", false, "Print the even and odd letters of the input"),
		remove:      flag.Bool("r", false, "Cross letters out of the input interactively"),
		serve:       flag.Bool("serve", false, "Run the MessagePack IPC server on stdin/stdout"),

		target:   flag.String("t", "", "Only show entries related to this word in the thesaurus"),
		include:  flag.String("i", "", "Wordle letters in the word but not on a green slot"),
		exclude:  flag.String("x", "", "Wordle letters not in the word"),
		found:    flag.String("f", "", "Letters found so far, e.g. C_M_P_T_R or N_/M_NS"),
		letters:  flag.String("letters", "", "Letters the unknown slots of a lookup must come from"),
		define:   flag.String("d", "", "Show the definitions of a word"),
		size:     flag.Int("z", 0, "Only show entries with this many letters"),
		subset:   flag.Bool("subset", false, "Jumble answers may leave letters unused"),
		noPhrase: flag.Bool("e", false, "Exclude phrases from the results"),
		narrow:   flag.Bool("n", false, "Print one result per line"),
		level:    flag.Int("o", 0, "Word obscurity level 1-3 (default from config)"),

		dataDir:     flag.String("data", "", "Directory containing the word lists (default from config)"),
		configFile:  flag.String("config", "", "Path to a custom config file"),
		resetConfig: flag.Bool("reset-config", false, "Write a fresh default config file and exit"),
		debug:       flag.Bool("D", false, "Toggle debug mode"),
		version:     flag.Bool("version", false, "Show current version"),
	}
	flag.Parse()
	return o
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; every mode lives in pkg/solver.
func main() {
	sigHandler()
	opts := parseFlags()

	if *opts.version {
		showVersion()
		os.Exit(0)
	}

	logger.Setup(*opts.debug)

	if *opts.resetConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config file: %v", err)
		}
		path, err := config.GetDefaultConfigPath()
		if err != nil {
			log.Warnf("Failed to resolve config path: %v", err)
		}
		log.Printf("Wrote default config to %s", config.GetActiveConfigPath(path))
		return
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*opts.configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(cfgPath))
	applyFlags(opts, cfg)

	input := strings.ToLower(strings.Join(flag.Args(), " "))
	printer := cli.NewPrinter(os.Stdout, cfg.Lookup.Narrow)

	// modes that need no word lists
	switch {
	case *opts.remove:
		if !utils.IsValidLetters(input) {
			log.Fatalf("Nothing to remove letters from in '%s'", input)
		}
		if err := cli.NewRemoveHandler(input, os.Stdin, os.Stdout).Start(); err != nil {
			log.Fatalf("Remove error: %v", err)
		}
		return
	case *opts.reverse && *opts.regular:
		printer.Lines(solver.RegularPatterns(input, true))
		return
	case *opts.reverse:
		printer.Lines(solver.Reverse(input))
		return
	case *opts.regular:
		printer.Lines(solver.RegularPatterns(input, false))
		return
	}

	dataDir := resolveDataDir(cfg)

	if *opts.define != "" {
		defs := loadDefinitions(cfg)
		if defs == nil {
			log.Fatalf("No definitions found in %s", dataDir)
		}
		s := solver.New(dictionary.New(nil), nil, defs, solver.Settings{})
		lines, err := s.Define(*opts.define)
		if err != nil {
			log.Fatalf("%v", err)
		}
		printer.Lines(lines)
		return
	}

	if *opts.serve {
		s := newSolver(cfg, loadDictionary(cfg), loadThesaurus(cfg, true), loadDefinitions(cfg))
		showStartupInfo(dataDir)
		if err := server.NewServer(s, cfg).Start(context.Background()); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	act := pickAction(opts, input)
	if act == actionNone {
		flag.Usage()
		os.Exit(1)
	}

	var thes *thesaurus.Thesaurus
	if *opts.target != "" {
		thes = loadThesaurus(cfg, false)
	}
	s := newSolver(cfg, loadDictionary(cfg), thes, nil)

	start := time.Now()
	count, err := run(context.Background(), act, s, opts, input, printer)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Debugf("Found %s results in %v", cli.FormatWithCommas(count), time.Since(start))
	if count == 0 {
		log.Warnf("No results found for '%s'", input)
	}
}

// applyFlags lets command line flags override the loaded config.
func applyFlags(opts *options, cfg *config.Config) {
	if *opts.dataDir != "" {
		cfg.Dict.Dir = *opts.dataDir
	}
	if *opts.level != 0 {
		if *opts.level < dictionary.MinLevel || *opts.level > dictionary.MaxLevel {
			log.Fatalf("Invalid word obscurity level %d (want %d-%d)", *opts.level, dictionary.MinLevel, dictionary.MaxLevel)
		}
		cfg.Dict.Obscurity = *opts.level
	}
	if *opts.narrow {
		cfg.Lookup.Narrow = true
	}
	if *opts.noPhrase {
		cfg.Lookup.ExcludePhrases = true
	}
}

// pickAction returns the mode set by flags, or infers lookup or jumble
// from the input.
func pickAction(opts *options, input string) action {
	flags := []struct {
		set bool
		act action
	}{
		{*opts.panagram, actionPanagram},
		{*opts.spellingBee, actionSpellingBee},
		{*opts.wordle, actionWordle},
		{*opts.lookup, actionLookup},
		{*opts.jumble, actionJumble},
		{*opts.regex, actionRegex},
		{*opts.anagram, actionAnagram},
	}
	picked := actionNone
	for _, f := range flags {
		if !f.set {
			continue
		}
		if picked != actionNone {
			log.Warnf("Several modes given, using %s", picked)
			break
		}
		picked = f.act
	}
	if picked != actionNone {
		return picked
	}

	switch {
	case input == "" && *opts.target != "":
		return actionThesaurus
	case input == "":
		return actionNone
	case utils.LooksLikePattern(input):
		log.Warnf("No mode given, looking up '%s'", input)
		return actionLookup
	default:
		log.Warnf("No mode given, jumbling '%s'", input)
		return actionJumble
	}
}

// run answers one query and prints the results. It returns the number of
// entries printed.
func run(ctx context.Context, act action, s *solver.Solver, opts *options, input string, printer *cli.Printer) (int, error) {
	var hits []solver.Hit

	switch act {
	case actionLookup:
		q, err := solver.NewLookupQuery(input, *opts.letters, *opts.target)
		if err != nil {
			return 0, err
		}
		results, err := s.Lookup(ctx, q)
		if err != nil {
			return 0, err
		}
		hits = solver.Hits(match.Entries(results))

	case actionJumble:
		q, err := solver.NewJumbleQuery(input, *opts.found, *opts.subset)
		if err != nil {
			return 0, err
		}
		res, err := s.Jumble(ctx, q)
		if err != nil {
			return 0, err
		}
		printer.Grid(res)
		entries, err := postFilter(match.Entries(res.Results), opts, false)
		if err != nil {
			return 0, err
		}
		if len(entries) > 0 {
			fmt.Println()
		}
		printer.Entries(entries)
		return len(entries), nil

	case actionAnagram:
		entries, err := s.Anagram(input)
		if err != nil {
			return 0, err
		}
		hits = solver.Hits(entries)

	case actionRegex:
		entries, err := s.Regex(input, *opts.target)
		if err != nil {
			return 0, err
		}
		hits = solver.Hits(entries)

	case actionThesaurus:
		entries, err := s.Synonyms(*opts.target)
		if err != nil {
			return 0, err
		}
		hits = solver.Hits(entries)

	case actionWordle:
		entries, err := s.Wordle(ctx, input, *opts.include, *opts.exclude)
		if err != nil {
			return 0, err
		}
		hits = solver.Hits(entries)

	case actionSpellingBee:
		var err error
		if hits, err = s.SpellingBee(input); err != nil {
			return 0, err
		}

	case actionPanagram:
		var err error
		if hits, err = s.Panagram(input); err != nil {
			return 0, err
		}
	}

	hits, err := filterHits(hits, opts)
	if err != nil {
		return 0, err
	}
	printer.Hits(hits)
	return len(hits), nil
}

// postFilter applies the size, phrase and found letter filters. The found
// filter is skipped for jumbles, where the found letters shape the query.
func postFilter(entries []string, opts *options, useFound bool) ([]string, error) {
	if *opts.size > 0 {
		entries = solver.FilterSize(entries, *opts.size)
	}
	if *opts.noPhrase {
		entries = solver.ExcludePhrases(entries)
	}
	if useFound && *opts.found != "" {
		return solver.FilterFound(entries, *opts.found)
	}
	return entries, nil
}

func filterHits(hits []solver.Hit, opts *options) ([]solver.Hit, error) {
	keep, err := postFilter(solver.HitEntries(hits), opts, true)
	if err != nil {
		return nil, err
	}
	if len(keep) == len(hits) {
		return hits, nil
	}
	kept := make(map[string]struct{}, len(keep))
	for _, e := range keep {
		kept[e] = struct{}{}
	}
	out := make([]solver.Hit, 0, len(keep))
	for _, h := range hits {
		if _, ok := kept[h.Entry]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func resolveDataDir(cfg *config.Config) string {
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	dataDir, err := pathResolver.GetDataDir(cfg.Dict.Dir)
	if err != nil {
		log.Fatalf("No word lists found for data dir %s: %v", cfg.Dict.Dir, err)
	}
	log.Debugf("Using data dir at: %s", dataDir)
	cfg.Dict.Dir = dataDir
	return dataDir
}

func loadDictionary(cfg *config.Config) *dictionary.Dictionary {
	loader := dictionary.NewLoader(cfg.Dict.Dir, cfg.Dict.Obscurity, cfg.Dict.IncludePhrases && !cfg.Lookup.ExcludePhrases)
	if lists, err := loader.GetAvailable(); err == nil {
		for _, l := range lists {
			log.Debug("Word list", "level", l.Level, "file", l.Filename, "bytes", cli.FormatWithCommas(int(l.Size)))
		}
	}
	dict, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	return dict
}

// loadThesaurus loads the configured thesaurus. When optional is set a
// missing or unreadable file is only a warning.
func loadThesaurus(cfg *config.Config, optional bool) *thesaurus.Thesaurus {
	path := cfg.DataFile(cfg.Dict.ThesaurusFile)
	fail := log.Fatalf
	if optional {
		fail = log.Warnf
	}
	if path == "" || !utils.FileExists(path) {
		fail("No thesaurus file at %s", path)
		return nil
	}
	if err := dictionary.ValidateFileFormat(path, dictionary.FormatThesaurus); err != nil {
		fail("Invalid thesaurus file: %v", err)
		return nil
	}
	thes, err := thesaurus.Load(path)
	if err != nil {
		fail("Failed to load thesaurus: %v", err)
		return nil
	}
	return thes
}

// loadDefinitions loads whichever definition sources exist, or returns nil.
func loadDefinitions(cfg *config.Config) *definitions.Definitions {
	var paths []string
	for _, name := range []string{cfg.Dict.DefinitionsFile, cfg.Dict.WordsetFile} {
		path := cfg.DataFile(name)
		if path != "" && utils.FileExists(path) {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	defs, err := definitions.Load(paths...)
	if err != nil {
		log.Warnf("Failed to load definitions: %v", err)
		return nil
	}
	log.Debugf("Loaded definitions for %d words from %v", defs.Len(), paths)
	return defs
}

func newSolver(cfg *config.Config, dict *dictionary.Dictionary, thes *thesaurus.Thesaurus, defs *definitions.Definitions) *solver.Solver {
	return solver.New(dict, thes, defs, solver.Settings{
		Workers:      cfg.Lookup.ParallelWorkers,
		SingleRowMax: cfg.Jumble.SingleRowMax,
	})
}

func showVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wsolve ] Crossword and word game helper")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
