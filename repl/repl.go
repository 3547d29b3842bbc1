/*
File    : go-monkey/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Monkey interpreter.
The REPL provides an interactive environment where users can:
- Enter Monkey code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
Bindings persist across lines: one evaluator (and therefore one global
scope) lives for the whole session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/go-monkey/eval"
	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: Decorative lines and separators
// - yellowColor: Expression results and version info
// - redColor: Error messages and warnings
// - greenColor: Banner and success messages
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "monkey >>> ")
}

// NewRepl creates and initializes a new REPL instance.
// This constructor sets up all the visual elements and configuration
// needed for the interactive session.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the interpreter
//	author  - Author contact information
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the REPL starts to provide users with:
// - The Monkey logo (ASCII art)
// - Version and author information
// - Basic usage instructions
// - Command history navigation tips
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the ASCII art banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print version, author, and license information in yellow
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print welcome message and usage instructions in cyan
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Monkey!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	// Print bottom separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// This is the core function that handles the interactive session:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates an evaluator instance shared by all lines
// 4. Enters the main read-eval-print loop
// 5. Processes user input until exit
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
//
// Parameters:
//
//	reader - Input source (typically os.Stdin, though not directly used due to readline)
//	writer - Output destination (typically os.Stdout)
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	// This provides features like command history, cursor movement, etc.
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// Create a new evaluator instance for executing Monkey code
	// Its global scope carries bindings from line to line
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer) // Route puts output to the REPL's writer

	// Main REPL loop - continues until user exits or error occurs
	for {
		// Read a line of input from the user
		// This blocks until the user presses Enter
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim whitespace from the input
		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Parse and evaluate the line
		r.execute(writer, line, evaluator)
	}
}

// execute handles parsing and evaluation of one input line.
// The flow mirrors the two error regimes of the language:
// 1. Parse errors are collected by the parser, printed in red, and
//    suppress evaluation entirely (a partial AST is never evaluated)
// 2. Runtime errors come back as ordinary Error values and are printed
//    in red using their display form ("ERROR: message")
//
// Unlike file execution mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again.
//
// Parameters:
//
//	writer    - Output destination for results and errors
//	line      - The user's input line to execute
//	evaluator - The evaluator instance (maintains state across REPL lines)
func (r *Repl) execute(writer io.Writer, line string, evaluator *eval.Evaluator) {
	// Parse the input line into an Abstract Syntax Tree (AST)
	par := parser.NewParser(line)
	rootNode := par.Parse()

	// Check for parser errors
	// The parser collects errors instead of panicking
	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", err)
		}
		return // Return to REPL prompt for user to try again
	}

	// Link the parser to the evaluator
	evaluator.SetParser(par)

	// Evaluate the AST and get the result
	result := evaluator.Eval(rootNode)

	// Display the result
	if result != nil {
		if result.GetType() == objects.ErrorType {
			// Evaluation produced an error - display in red
			redColor.Fprintf(writer, "%s\n", result.ToString())
		} else {
			// Successful evaluation - display result in yellow
			yellowColor.Fprintf(writer, "%s\n", result.ToString())
		}
	}
}
