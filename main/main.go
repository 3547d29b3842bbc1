/*
File    : go-monkey/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Monkey interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Monkey source files from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Monkey code.
*/
package main

import (
	"os"

	"github.com/akashmaji946/go-monkey/eval"
	"github.com/akashmaji946/go-monkey/objects"
	"github.com/akashmaji946/go-monkey/parser"
	"github.com/akashmaji946/go-monkey/repl"
	"github.com/fatih/color"
)

// VERSION represents the current version of the Monkey interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "Monkey >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
// It shows "Monkey" in stylized ASCII characters
var BANNER = `
 ███▄ ▄███▓ ▒█████   ███▄    █  ██ ▄█▀▓█████▓██   ██▓
▓██▒▀█▀ ██▒▒██▒  ██▒ ██ ▀█   █  ██▄█▒ ▓█   ▀ ▒██  ██▒
▓██    ▓██░▒██░  ██▒▓██  ▀█ ██▒▓███▄░ ▒███    ▒██ ██░
▒██    ▒██ ▒██   ██░▓██▒  ▐▌██▒▓██ █▄ ▒▓█  ▄  ░ ▐██▓░
▒██▒   ░██▒░ ████▓▒░▒██░   ▓██░▒██▒ █▄░▒████▒ ░ ██▒▓░
░ ▒░   ░  ░░ ▒░▒░▒░ ░ ▒░   ▒ ▒ ▒ ▒▒ ▓▒░░ ▒░ ░  ██▒▒▒
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output
// These colors are used to provide visual feedback during file execution:
// - redColor: Error messages and critical failures
// - yellowColor: Normal output and results
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Monkey interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-monkey              - Start in REPL (interactive) mode
//	go-monkey <filename>   - Execute the specified Monkey source file
//	go-monkey --help       - Display help information
//	go-monkey --version    - Display version information
//
// The function delegates to either runFile() for file execution
// or starts the REPL for interactive programming.
func main() {
	// Check if a flag argument is provided
	if len(os.Args) > 1 {
		arg := os.Args[1]

		// Handle --help flag
		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		// Handle --version flag
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// File mode: read and run a file
		fileName := arg
		runFile(fileName)
	} else {
		// REPL mode: Start interactive interpreter
		// Create a new REPL instance with banner, version info, and prompt
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		// Start the REPL loop, reading from stdin and writing to stdout
		repler.Start(os.Stdin, os.Stdout)
	}
}

// showHelp displays the help information for the Monkey interpreter
func showHelp() {
	cyanColor.Println("Monkey - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-monkey                 Start interactive REPL mode")
	yellowColor.Println("  go-monkey <path-to-file>  Execute a Monkey file (.mk)")
	yellowColor.Println("  go-monkey --help          Display this help message")
	yellowColor.Println("  go-monkey --version       Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  go-monkey                 # Start REPL")
	yellowColor.Println("  go-monkey samples/fibonacci.mk")
}

// showVersion displays the version information for the Monkey interpreter
func showVersion() {
	cyanColor.Println("Monkey - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Monkey source file.
// It handles the complete file execution pipeline:
// 1. Read the file from disk
// 2. Parse the whole file as one program
// 3. Evaluate the program against a fresh global scope
//
// Parameters:
//
//	fileName - Path to the Monkey source file to execute
//
// Exit codes:
//   - 0: the program parsed and ran to completion
//   - 1: the file could not be read, parsing failed, or evaluation
//     produced a runtime Error value
func runFile(fileName string) {
	// Read the file contents
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		// Display file read error in red and exit
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	// Convert file contents from []byte to string for parsing
	source := string(fileContent)

	// Parse the source code into an Abstract Syntax Tree (AST)
	par := parser.NewParser(source)
	rootNode := par.Parse()

	// A program that failed to parse is never evaluated:
	// report every collected error and exit non-zero
	if par.HasErrors() {
		for _, parseErr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", parseErr)
		}
		os.Exit(1)
	}

	// Evaluate the AST against a fresh global scope
	evaluator := eval.NewEvaluator()
	evaluator.SetParser(par)
	result := evaluator.Eval(rootNode)

	// A runtime Error value surfaces as ERROR output and a non-zero exit
	if result != nil && result.GetType() == objects.ErrorType {
		redColor.Fprintf(os.Stderr, "%s\n", result.ToString())
		os.Exit(1)
	}
}
