// This file is part of Laser310.
//
// Laser310 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Laser310 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Laser310.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/laser310/cassette"
	"github.com/jetsetilly/laser310/charset"
	"github.com/jetsetilly/laser310/curated"
	"github.com/jetsetilly/laser310/digest"
	"github.com/jetsetilly/laser310/logger"
	"github.com/jetsetilly/laser310/modalflag"
	"github.com/jetsetilly/laser310/prefs"
	"github.com/jetsetilly/laser310/program"
	"github.com/jetsetilly/laser310/session"
	"github.com/jetsetilly/laser310/tokenizer"
	"github.com/jetsetilly/laser310/tokens"
	"github.com/jetsetilly/laser310/version"
	"github.com/jetsetilly/laser310/wavwriter"
)

// exit values.
const (
	exitOK    = 0
	exitError = 1
)

// the number of log entries printed with an error, unless the log is already
// being echoed.
const errorLogTail = 5

// diagnostics and the echoed log are written to stderr.
var stderr io.Writer = os.Stderr

// echoing is true if the log is being echoed to stderr.
var echoing bool

func setEcho(echo bool) {
	echoing = echo
	if echo {
		logger.SetEcho(stderr)
	} else {
		logger.SetEcho(nil)
	}
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	os.Exit(launch(md))
}

// launch selects the mode and runs it. returns the value to be used with
// os.Exit().
func launch(md *modalflag.Modes) int {
	logger.Clear()
	setEcho(false)

	md.NewMode()
	md.AddSubModes("CONVERT", "EXPORT", "IMPORT", "VERIFY", "TOKENS", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitError
	}

	switch md.Mode() {
	case "CONVERT":
		err = convert(md)

	case "EXPORT":
		err = export(md)

	case "IMPORT":
		err = importSource(md)

	case "VERIFY":
		err = verify(md)

	case "TOKENS":
		err = listTokens(md)

	case "PREFS":
		err = showPrefs(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		if !echoing {
			logger.Tail(stderr, errorLogTail)
		}
		return exitError
	}

	return exitOK
}

// flags shared by the modes that load preferences. the -log flag turns on
// echoing regardless of the logger.echo preference.
type common struct {
	log   *bool
	prefs *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		log:   md.AddBool("log", false, "echo log to stderr (default logger.echo preference)"),
		prefs: md.AddString("prefs", "", "preferences for this run (eg. \"tokenizer.rem::0x80\")"),
	}
}

// apply the common flags and load the preferences. should be called after
// md.Parse().
func (c *common) apply() (*preferences, error) {
	prefs.PushCommandLineStack(*c.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	pr, err := newPreferences()
	if err != nil {
		return nil, err
	}

	setEcho(*c.log || pr.logEcho.Get().(bool))

	return pr, nil
}

// the -digest flag turns on printing of the digest regardless of the
// digest.print preference.
func printDigest(pr *preferences, flag bool) bool {
	return flag || pr.printDigest.Get().(bool)
}

// the tokenizer as specified by the -rem flag or the preference if the flag
// is zero.
func newTokenizer(pr *preferences, rem int) (*tokenizer.Tokenizer, error) {
	if rem == 0 {
		return tokenizer.NewTokenizer(pr.remCode()), nil
	}
	r, err := tokenizer.NewRemCode(rem)
	if err != nil {
		return nil, err
	}
	return tokenizer.NewTokenizer(r), nil
}

// record the samples to a WAV file. the digest of the samples is written to
// output if required.
func record(output io.Writer, samples []uint8, wavFile string, withDigest bool) error {
	aw, err := wavwriter.New(wavFile)
	if err != nil {
		return err
	}

	if !withDigest {
		return cassette.Record(samples, aw)
	}

	dig := digest.NewAudio()
	if err := cassette.Record(samples, aw, dig); err != nil {
		return err
	}
	fmt.Fprintf(output, "%s\n", dig.Hash())

	return nil
}

func convert(md *modalflag.Modes) error {
	md.NewMode()

	cm := addCommon(md)
	rem := md.AddHex("rem", 0, "REM code: 93 or 80 (default tokenizer.rem preference)")
	bin := md.AddString("bin", "", "also write program image to file")
	withDigest := md.AddBool("digest", false, "print digest of audio (default digest.print preference)")

	md.AdditionalHelp("arguments: <source.txt> <NAME> <hex start address> <out.wav>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 4 {
		return curated.Errorf("source file, name, start address and wav file required for %s mode", md)
	}

	pr, err := cm.apply()
	if err != nil {
		return err
	}

	tk, err := newTokenizer(pr, *rem)
	if err != nil {
		return err
	}

	name := charset.ExpandEscapes(md.GetArg(1))
	if err := cassette.ValidateName(name, cassette.NameBatch); err != nil {
		return err
	}

	start, err := modalflag.ParseHex(md.GetArg(2))
	if err != nil {
		return curated.Errorf("convert: start address: %v", err)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("source: %v", err)
	}
	defer f.Close()

	lines, err := readSource(f)
	if err != nil {
		return err
	}

	img, err := program.Assemble(tk, lines, start)
	if err != nil {
		return err
	}

	return write(md.Output, name, img, md.GetArg(3), *bin, printDigest(pr, *withDigest))
}

// write the image to a WAV file and optionally to a binary file. either both
// files are written or neither is.
func write(output io.Writer, name string, img program.Image, wavFile string, binFile string, withDigest bool) error {
	samples, err := cassette.Encode(name, img)
	if err != nil {
		return err
	}

	// the binary file is removed if the WAV file cannot be written
	if binFile != "" {
		if err := os.WriteFile(binFile, img.Bytes(), 0644); err != nil {
			_ = os.Remove(binFile)
			return curated.Errorf("bin: %v", err)
		}
	}

	if err := record(output, samples, wavFile, withDigest); err != nil {
		if binFile != "" {
			_ = os.Remove(binFile)
		}
		return err
	}

	logger.Logf(logger.Allow, "convert", "%s: %s", name, img)

	return nil
}

func export(md *modalflag.Modes) error {
	md.NewMode()

	cm := addCommon(md)
	rem := md.AddHex("rem", 0, "REM code: 93 or 80 (default tokenizer.rem preference)")
	bin := md.AddString("bin", "", "also write program image to file")
	withDigest := md.AddBool("digest", false, "print digest of audio (default digest.print preference)")
	name := md.AddString("name", "", "program name (default project filename)")
	start := md.AddHex("start", 0, "start address (default convert.startaddress preference)")

	md.AdditionalHelp("arguments: <project.json> <out.wav>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf("project file and wav file required for %s mode", md)
	}

	pr, err := cm.apply()
	if err != nil {
		return err
	}

	tk, err := newTokenizer(pr, *rem)
	if err != nil {
		return err
	}

	n := charset.ExpandEscapes(*name)
	if n == "" {
		n = nameFromFilename(md.GetArg(0))
	}
	if err := cassette.ValidateName(n, cassette.NameInteractive); err != nil {
		return err
	}

	addr := *start
	if addr == 0 {
		addr = pr.startAddress.Get().(int)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("project: %v", err)
	}
	defer f.Close()

	sess, err := session.NewSession().Load(f)
	if err != nil {
		return err
	}

	img, err := program.Assemble(tk, sess.Lines, addr)
	if err != nil {
		return err
	}

	return write(md.Output, n, img, md.GetArg(1), *bin, printDigest(pr, *withDigest))
}

// nameFromFilename returns a program name based on the filename. the name may
// still be invalid.
func nameFromFilename(filename string) string {
	n := strings.ToUpper(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	for utf8.RuneCountInString(n) > cassette.MaxNameLength {
		_, sz := utf8.DecodeLastRuneInString(n)
		n = n[:len(n)-sz]
	}
	return n
}

func importSource(md *modalflag.Modes) error {
	md.NewMode()

	cm := addCommon(md)
	interval := md.AddInt("interval", 0, "line number interval (default session.interval preference)")

	md.AdditionalHelp("arguments: <source.txt> <project.json>\n\n" +
		"line numbers in the source must increase by the interval, starting\n" +
		"with the interval")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf("source file and project file required for %s mode", md)
	}

	pr, err := cm.apply()
	if err != nil {
		return err
	}

	iv := *interval
	if iv == 0 {
		iv = pr.interval.Get().(int)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("source: %v", err)
	}
	defer f.Close()

	lines, err := readSource(f)
	if err != nil {
		return err
	}

	sess, err := session.NewSession().SetInterval(iv)
	if err != nil {
		return err
	}

	sess, err = buildSession(sess, lines)
	if err != nil {
		return err
	}

	// the project file is not created until the session has been encoded
	var b bytes.Buffer
	if err := sess.Save(&b); err != nil {
		return err
	}
	if err := os.WriteFile(md.GetArg(1), b.Bytes(), 0644); err != nil {
		_ = os.Remove(md.GetArg(1))
		return curated.Errorf("project: %v", err)
	}

	return nil
}

// buildSession adds the lines to the session as if they had been entered
// block by block.
func buildSession(sess session.Session, lines []tokenizer.Line) (session.Session, error) {
	var err error

	for _, l := range lines {
		if l.Number != sess.Next() {
			return sess, curated.Errorf("import: line %d should be numbered %d", l.Number, sess.Next())
		}

		if l.IsRem() {
			var text string
			if len(l.Blocks) > 1 {
				text = strings.TrimPrefix(l.Blocks[1], " ")
			}
			sess, err = sess.InsertREM(text)
			if err != nil {
				return sess, err
			}
			continue
		}

		for _, b := range l.Blocks {
			if e, ok := tokens.Lookup(b); ok && e.Kind == tokens.Token {
				sess, err = sess.InsertToken(b)
			} else if b == " " {
				sess, err = sess.InsertSpace()
			} else if charset.Numeric.Check(b) == nil {
				sess, err = sess.InsertNumber(b)
			} else {
				sess, err = sess.InsertRaw(b)
			}
			if err != nil {
				return sess, err
			}
		}

		sess, err = sess.Enter()
		if err != nil {
			return sess, err
		}
	}

	return sess, nil
}

func verify(md *modalflag.Modes) error {
	md.NewMode()

	cm := addCommon(md)
	list := md.AddBool("list", false, "list the program")
	withDigest := md.AddBool("digest", false, "print digest of audio (default digest.print preference)")

	md.AdditionalHelp("arguments: <in.wav>")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("wav file required for %s mode", md)
	}

	pr, err := cm.apply()
	if err != nil {
		return err
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return curated.Errorf("verify: %v", err)
	}
	defer f.Close()

	samples, err := cassette.LoadWAV(f)
	if err != nil {
		return err
	}

	if printDigest(pr, *withDigest) {
		dig := digest.NewAudio()
		if err := cassette.Record(samples, dig); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "digest: %s\n", dig.Hash())
	}

	tp, err := cassette.Decode(samples)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "name: %s\n", tp.Name)
	fmt.Fprintf(md.Output, "start: %#04x\n", tp.Image.Start)
	fmt.Fprintf(md.Output, "end: %#04x\n", tp.Image.End)
	fmt.Fprintf(md.Output, "checksum: %#04x ok\n", tp.Image.Checksum)

	if *list {
		lines, err := program.List(tp.Image)
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(md.Output, l.String())
		}
	}

	return nil
}

func listTokens(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, err = io.WriteString(md.Output, tokens.List())
	return err
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()

	cm := addCommon(md)
	save := md.AddBool("save", false, "save preferences to disk")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pr, err := cm.apply()
	if err != nil {
		return err
	}

	if *save {
		if err := pr.save(); err != nil {
			return err
		}
	}

	_, err = io.WriteString(md.Output, pr.String())
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintln(md.Output, r)
		return nil
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}
