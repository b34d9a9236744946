// Package main has the entry point for the spellkit CLI and service.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lexigraph/spellkit/internal/cli"
	"github.com/lexigraph/spellkit/pkg/config"
	"github.com/lexigraph/spellkit/pkg/dictionary"
	"github.com/lexigraph/spellkit/pkg/service"
	"github.com/lexigraph/spellkit/pkg/spellchecker"
)

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

// main calls other packages to initialize the dictionary and then
// either the debug CLI shell or the msgpack service. main() does not
// implement checking logic itself and only manages the flow.
func main() {
	sigHandler()

	dictPath := flag.String("dict", "", "Path to the dictionary word list or .dic file")
	affPath := flag.String("aff", "", "Path to the .aff affix file (backend=hunspell only)")
	backend := flag.String("backend", "flat", "Dictionary backend: flat|custom|hunspell|trie")
	lang := flag.String("lang", "en-US", "Dictionary language code")
	caseSensitive := flag.Bool("case-sensitive", false, "Treat the dictionary as case-sensitive")
	configPath := flag.String("config", "spellkit.toml", "Path to the TOML config file")
	serve := flag.Bool("serve", false, "Run the msgpack service instead of the debug CLI")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	listFormats := flag.Bool("list-formats", false, "List supported dictionary file formats and exit")

	flag.Parse()

	if *listFormats {
		printSupportedFormats()
		return
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *dictPath == "" {
		log.Fatal("missing required -dict flag")
		os.Exit(1)
	}

	appConfig, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
		os.Exit(1)
	}

	dict, err := loadDictionary(*backend, *dictPath, *affPath, *lang, *caseSensitive)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
		os.Exit(1)
	}
	log.Debugf("loaded %s dictionary with %d words from %s", *backend, dict.Size(), *dictPath)

	checker := spellchecker.NewSpellchecker(dict, appConfig)

	if *serve {
		showStartupInfo(*backend, dict.Size())
		svc := service.NewService(checker)
		if err := svc.Start(); err != nil {
			log.Fatalf("service error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.SetReportTimestamp(false)
	handler := cli.NewInputHandler(checker)
	if err := handler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
		os.Exit(1)
	}
}

// loadDictionary opens the configured backend's source file(s) and
// builds the matching Dictionary implementation. flat/trie/hunspell
// sources are validated against their expected FileFormat first; custom
// word lists accept any extension since they're assembled ad hoc.
func loadDictionary(backend, dictPath, affPath, lang string, caseSensitive bool) (dictionary.Dictionary, error) {
	switch backend {
	case "flat":
		if err := checkFormat(dictPath, dictionary.FormatWordList); err != nil {
			return nil, err
		}
		f, err := os.Open(dictPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return dictionary.LoadFlatWordList(f, lang, caseSensitive)

	case "trie":
		if err := checkFormat(dictPath, dictionary.FormatWordList); err != nil {
			return nil, err
		}
		f, err := os.Open(dictPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return dictionary.LoadTrieWordList(f, lang, caseSensitive)

	case "custom":
		f, err := os.Open(dictPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		words, err := readLines(f)
		if err != nil {
			return nil, err
		}
		return dictionary.NewCustomDictionary(words, lang, caseSensitive), nil

	case "hunspell":
		if affPath == "" {
			return nil, fmt.Errorf("backend=hunspell requires -aff")
		}
		if err := checkFormat(affPath, dictionary.FormatAffix); err != nil {
			return nil, err
		}
		if err := checkFormat(dictPath, dictionary.FormatWordList); err != nil {
			return nil, err
		}
		affFile, err := os.Open(affPath)
		if err != nil {
			return nil, err
		}
		defer affFile.Close()
		dicFile, err := os.Open(dictPath)
		if err != nil {
			return nil, err
		}
		defer dicFile.Close()
		return dictionary.LoadHunspellDictionary(affFile, affPath, dicFile, dictPath, lang, caseSensitive)

	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// checkFormat validates path against expected, enriching a failure with
// the format's description and accepted extensions.
func checkFormat(path string, expected dictionary.FileFormat) error {
	if err := dictionary.ValidateFileFormat(path, expected); err != nil {
		info, _ := dictionary.GetFormatInfo(expected)
		return fmt.Errorf("%s: expected %s (%v): %w", path, info.Description, info.Extensions, err)
	}
	return nil
}

// printSupportedFormats lists every recognized dictionary file format,
// driving the -list-formats flag.
func printSupportedFormats() {
	for _, info := range dictionary.ListSupportedFormats() {
		fmt.Printf("%-24s extensions: %-16v min size: %d bytes\n", info.Description, info.Extensions, info.MinSize)
	}
}

// readLines reads non-blank, non-comment lines, matching the word-list
// comment/blank-line policy the flat and trie backends already use.
func readLines(f *os.File) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(backend string, wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" SPELLKIT ")
	println("=========")
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("backend: ( %s ), words: ( %d )", backend, wordCount)
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
