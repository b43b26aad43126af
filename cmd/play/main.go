package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"holdem-showdown/internal/config"
	"holdem-showdown/internal/rng"
	"holdem-showdown/pkg/round"
)

var rounds = flag.Int("rounds", 0, "play this many rounds without prompting")
var seed = flag.Int64("seed", 0, "shuffle with a reproducible seed")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	gen := cfg.NewGenerator()
	if *seed > 0 {
		gen = rng.NewSeeded(*seed)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	// only prompt a person sitting at a terminal
	interactive := *rounds == 0 && term.IsTerminal(int(os.Stdin.Fd()))
	n := *rounds
	if !interactive && n == 0 {
		n = 1
	}

	dealer := round.New(logrus.StandardLogger(), gen, round.Options{Audit: cfg.Audit})
	if err := play(os.Stdin, os.Stdout, dealer, interactive, n); err != nil {
		logrus.WithError(err).Fatal("could not play round")
	}
}

// play runs rounds until the player stops (interactive) or n rounds have been played
func play(in io.Reader, out io.Writer, dealer *round.Dealer, interactive bool, n int) error {
	reader := bufio.NewReader(in)
	_, _ = fmt.Fprintln(out, pterm.DefaultHeader.Sprint("Welcome to Simplified Poker!"))

	for i := 0; interactive || i < n; i++ {
		if interactive {
			if _, err := getInput(reader, out, "\nPress Enter to start a new round..."); err != nil {
				break
			}
		}

		result, err := dealer.Play()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out, render(result))

		if interactive {
			answer, err := getInput(reader, out, "\nPlay another round? (y/or any other key to end): ")
			if err != nil || strings.ToLower(answer) != "y" {
				break
			}
		}
	}

	_, _ = fmt.Fprintln(out, "Thanks for playing!")
	return nil
}

func render(r *round.Result) string {
	lines := r.Lines()
	last := len(lines) - 1
	lines[last] = pterm.LightGreen(lines[last])

	if r.Divergent && r.Reference != nil {
		lines = append(lines, pterm.LightYellow(fmt.Sprintf("Standard rules: %s", r.Reference)))
	}

	title := pterm.LightCyan(fmt.Sprintf("Round %s", r.ID.String()[:8]))
	return pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().Sprint(strings.Join(lines, "\n"))
}

func getInput(reader *bufio.Reader, out io.Writer, question string) (string, error) {
	_, _ = fmt.Fprintln(out, question)
	str, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && str != "") {
		return "", err
	}

	return strings.TrimRight(str, "\r\n"), nil
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
