package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	apppkg "github.com/kk-code-lab/linkview/internal/app"
	"github.com/kk-code-lab/linkview/internal/fsload"
	"github.com/kk-code-lab/linkview/internal/linkify"
	renderui "github.com/kk-code-lab/linkview/internal/ui/render"
	"github.com/kk-code-lab/linkview/internal/urldetect"
)

func printHelp() {
	fmt.Print(`linkview - view text with clickable links

USAGE:
    linkview [OPTIONS] [FILE]

Reads FILE (or stdin) and highlights detected links. In the interactive
viewer Tab cycles links, Enter opens the selected one, q quits.

OPTIONS:
    -h, --help          Show this help message and exit
    -p, --print         Print the text with terminal hyperlinks and exit
    -l, --label TEXT    Display TEXT instead of each link's matched text
`)
}

type options struct {
	printOnly bool
	label     string
	hasLabel  bool
	file      string
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-p" || arg == "--print":
			opts.printOnly = true
		case arg == "-l" || arg == "--label":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			opts.label = args[i]
			opts.hasLabel = true
		case len(arg) > 1 && arg[0] == '-':
			return opts, fmt.Errorf("unknown option %s", arg)
		default:
			if opts.file != "" {
				return opts, fmt.Errorf("unexpected argument %s", arg)
			}
			opts.file = arg
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	var text string
	if opts.file != "" {
		text, err = fsload.LoadFile(opts.file, fsload.DefaultLimit)
	} else {
		text, err = fsload.LoadReader(os.Stdin, fsload.DefaultLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	adapter := &linkify.Adapter{
		Detector: urldetect.New(),
		OnFailure: func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		},
	}
	var policy linkify.LabelPolicy
	if opts.hasLabel {
		policy = linkify.FixedLabel(opts.label)
	}

	doc := apppkg.BuildDocument(text, adapter, policy)

	interactive := !opts.printOnly &&
		opts.file != "" && // stdin input cannot share the terminal with the viewer
		term.IsTerminal(int(os.Stdout.Fd()))
	if !interactive {
		for _, line := range doc.Lines {
			fmt.Println(renderui.HyperlinkText(line))
		}
		return
	}

	// Set UTF-8 as fallback encoding so wide and non-Latin runes render on
	// terminals with incomplete locale setup.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing viewer: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
