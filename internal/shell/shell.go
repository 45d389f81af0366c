// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell implements the interactive assay session: a numbered
// menu that prompts for measurements, invokes the formula library, and
// prints formatted results. It is a thin adapter over internal/assay and
// holds no calculation logic of its own.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/assay-engine/internal/assay"
)

// Options configures a session.
type Options struct {
	// Precision is the number of decimal places for printed results.
	Precision int

	// TPCUnit and TFCUnit are the default unit labels; a curve picked
	// from the library may override them.
	TPCUnit string
	TFCUnit string

	// Curves is the loaded calibration-curve library; nil or empty means
	// the session prompts for slope and intercept directly.
	Curves *assay.CurveFile
}

// Shell runs an interactive session against the injected reader and
// writer, so tests drive it with scripted input and no TTY.
type Shell struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

// New returns a Shell reading input lines from r and printing to w.
func New(r io.Reader, w io.Writer, opts Options) *Shell {
	return &Shell{
		in:   bufio.NewScanner(r),
		out:  w,
		opts: opts,
	}
}

const menu = `
 1) Extraction yield
 2) DPPH radical scavenging
 3) Total phenolic content (TPC)
 4) Total flavonoid content (TFC)
 q) Quit
`

// Run loops until the user quits or input reaches EOF. Domain errors
// from the formula library end the current calculation, not the session.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Phytochemistry assay calculator")

	for {
		fmt.Fprint(s.out, menu)
		choice, ok := s.readLine("Select an assay: ")
		if !ok {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "1":
			ok = s.runYield()
		case "2":
			ok = s.runDPPH()
		case "3":
			ok = s.runEquivalents("Total phenolic content", s.opts.TPCUnit, assay.TPC)
		case "4":
			ok = s.runEquivalents("Total flavonoid content", s.opts.TFCUnit, assay.TFC)
		case "q", "quit", "exit":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(s.out, "Unknown selection %q.\n", strings.TrimSpace(choice))
			continue
		}
		if !ok {
			return nil
		}
	}
}

func (s *Shell) runYield() bool {
	massExtract, ok := s.readFloat("Extract mass (g): ")
	if !ok {
		return false
	}
	massSample, ok := s.readFloat("Sample mass (g): ")
	if !ok {
		return false
	}

	result, err := assay.ExtractionYield(massExtract, massSample)
	if err != nil {
		s.reportError(err)
		return true
	}
	s.printResult(result, "%")
	return true
}

func (s *Shell) runDPPH() bool {
	aControl, ok := s.readFloat("Control absorbance: ")
	if !ok {
		return false
	}
	aSample, ok := s.readFloat("Sample absorbance: ")
	if !ok {
		return false
	}

	result, err := assay.DPPHScavenging(aControl, aSample)
	if err != nil {
		s.reportError(err)
		return true
	}
	s.printResult(result, "%")
	return true
}

// equivalentsFunc is the shared shape of assay.TPC and assay.TFC.
type equivalentsFunc func(absorbance float64, curve assay.Curve, dilutionFactor, extractConc float64) (float64, error)

func (s *Shell) runEquivalents(title, unit string, calc equivalentsFunc) bool {
	fmt.Fprintf(s.out, "%s\n", title)

	curve, unit, ok := s.readCurve(unit)
	if !ok {
		return false
	}

	absorbance, ok := s.readFloat("Sample absorbance: ")
	if !ok {
		return false
	}
	dilution, ok := s.readFloatDefault("Dilution factor [1]: ", 1)
	if !ok {
		return false
	}
	extractConc, ok := s.readFloat("Extract concentration (mg/mL, from 1 g sample): ")
	if !ok {
		return false
	}

	result, err := calc(absorbance, curve, dilution, extractConc)
	if err != nil {
		s.reportError(err)
		return true
	}
	s.printResult(result, unit)
	return true
}

// readCurve resolves the calibration curve for one calculation: a name
// from the library when one is loaded, otherwise slope and intercept
// typed directly. It returns the unit label to print with, which the
// library entry may override.
func (s *Shell) readCurve(unit string) (assay.Curve, string, bool) {
	if s.opts.Curves != nil && len(s.opts.Curves.Curves) > 0 {
		names := strings.Join(s.opts.Curves.Names(), ", ")
		prompt := fmt.Sprintf("Curve name (%s; empty to enter slope/intercept): ", names)
		name, ok := s.readLine(prompt)
		if !ok {
			return assay.Curve{}, unit, false
		}
		name = strings.TrimSpace(name)
		if name != "" {
			curve, entry, err := s.opts.Curves.Lookup(name)
			if err != nil {
				s.reportError(err)
				return s.readCurve(unit)
			}
			if entry.Unit != "" {
				unit = entry.Unit
			}
			return curve, unit, true
		}
	}

	slope, ok := s.readFloat("Calibration slope: ")
	if !ok {
		return assay.Curve{}, unit, false
	}
	intercept, ok := s.readFloat("Calibration intercept: ")
	if !ok {
		return assay.Curve{}, unit, false
	}
	return assay.Curve{Slope: slope, Intercept: intercept}, unit, true
}

// readLine prompts and reads one line. ok is false at EOF.
func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.in.Text(), true
}

// readFloat prompts until the user types a parseable number. ok is false
// at EOF.
func (s *Shell) readFloat(prompt string) (float64, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Fprintf(s.out, "Not a number: %q. Try again.\n", strings.TrimSpace(line))
			continue
		}
		return v, true
	}
}

// readFloatDefault is readFloat, but an empty answer accepts def.
func (s *Shell) readFloatDefault(prompt string, def float64) (float64, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def, true
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(s.out, "Not a number: %q. Try again.\n", line)
			continue
		}
		return v, true
	}
}

func (s *Shell) printResult(value float64, unit string) {
	fmt.Fprintf(s.out, "Result: %.*f %s\n", s.opts.Precision, value, unit)
}

func (s *Shell) reportError(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}
