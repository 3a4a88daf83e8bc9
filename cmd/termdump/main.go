// Package main implements termdump, a small diagnostic tool for the
// termio parsers. In keys mode it puts the terminal in raw mode and
// prints every decoded keypress; in ansi mode it reads styled text
// from stdin and prints the decoded fragments.
package main

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/dshills/termio/ansi"
	"github.com/dshills/termio/asyncgen"
	"github.com/dshills/termio/config"
	"github.com/dshills/termio/keys"
	"github.com/dshills/termio/vt100"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		mode       string
		configPath string
	)
	flag.StringVar(&mode, "mode", "keys", "What to decode: keys or ansi")
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	var err error
	switch mode {
	case "keys":
		err = dumpKeys(cfg)
	case "ansi":
		err = dumpANSI(os.Stdin, os.Stdout)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// dumpKeys reads raw terminal input and prints one line per decoded
// keypress until Ctrl-C is pressed. The escape sequence buffer is
// flushed when no input follows within the configured timeout, so a
// lone Escape key is reported without waiting forever.
func dumpKeys(cfg config.Config) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	quit := make(chan struct{})
	parser := vt100.NewParser(func(kp keys.KeyPress) {
		// Raw mode needs explicit carriage returns.
		fmt.Printf("%s  %#v\r\n", kp, kp)
		if kp.Key == keys.KeyRune && kp.Rune == 'c' && kp.Mods.HasCtrl() {
			select {
			case <-quit:
			default:
				close(quit)
			}
		}
	})

	reads := asyncgen.New(stdinChunks, asyncgen.WithBufferSize(cfg.Generator.BufferSize))

	fmt.Print("Press keys; Ctrl-C exits.\r\n")
	flushTimeout := cfg.Input.FlushTimeout.Std()
	for {
		select {
		case chunk, ok := <-reads.Items():
			if !ok {
				parser.Flush()
				return reads.Err()
			}
			parser.Feed(chunk)
		case <-time.After(flushTimeout):
			parser.Flush()
		}
		select {
		case <-quit:
			return nil
		default:
		}
	}
}

// stdinChunks yields stdin reads until EOF or a read error.
func stdinChunks() iter.Seq[string] {
	return func(yield func(string) bool) {
		buf := make([]byte, 1024)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 && !yield(string(buf[:n])) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// dumpANSI decodes styled text and prints one fragment per line with
// its style token string.
func dumpANSI(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	for _, f := range ansi.Decode(string(data)) {
		label := f.Style.String()
		if label == "" {
			label = "default"
		}
		if f.ZeroWidth {
			label = "zero-width"
		}
		fmt.Fprintf(w, "%-40s %q\n", label, f.Text)
	}
	return nil
}
