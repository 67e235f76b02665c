// Command calcrepl is a terminal calculator.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/JuanPerez-MrV/CalcBranch/internal/calc"
	"github.com/JuanPerez-MrV/CalcBranch/internal/config"
	"github.com/chzyer/readline"
)

func main() {
	var (
		configFile = flag.String("config", config.DefaultPath(), "configuration file")
		showTree   = flag.Bool("tree", false, "print the expression tree before evaluating")
	)
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(cfg, *showTree || cfg.REPL.ShowTree); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, showTree bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.REPL.Prompt,
		HistoryFile:     cfg.REPL.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	log := cfg.Logger(rl.Stderr())
	r := &repl{
		session:  calc.NewSession(calc.WithLogger(log)),
		out:      rl.Stdout(),
		log:      log,
		showTree: showTree,
	}

	// Show the value of the line being typed in the prompt.
	rl.Config.SetListener(func(line []rune, pos int, key rune) ([]rune, int, bool) {
		prompt := cfg.REPL.Prompt
		if p := r.preview(string(line)); p != "" {
			prompt = "[" + p + "] " + prompt
		}
		rl.SetPrompt(prompt)
		return nil, 0, false
	})

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		rl.SetPrompt(cfg.REPL.Prompt)
		if !r.handle(line) {
			return nil
		}
	}
}
