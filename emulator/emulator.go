// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"io"
	"maps"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/x86sim/config"
	"github.com/ezrec/x86sim/cpu"
	"github.com/ezrec/x86sim/data"
	"github.com/ezrec/x86sim/translate"
)

// Emulator state. CPU + data segment + the source being run.
type Emulator struct {
	Log      logrus.FieldLogger // Destination of trace and error logs.
	Output   io.Writer          // Destination of diagnostic lines.
	*cpu.Cpu                    // Reference to the CPU simulation.
	Data     data.Store         // Data segment.
	Segment  Segment            // Current segment.
	MaxSteps int                // Maximum instruction lines executed per run; 0 is unlimited.
	Ip       int                // Index of the next line to execute.

	lines     []string
	label     map[string]int
	equate    map[string]string
	predefine map[string]string
	steps     int
	nextIp    int
	halted    bool
}

// NewEmulator creates a new emulator writing diagnostics to stdout.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Log:    logrus.StandardLogger(),
		Output: os.Stdout,
		Cpu:    cpu.NewCpu(cpu.STACK_LIMIT),
	}

	emu.Reset()

	return
}

// Predefine defines an equate visible to every subsequent run. Names are
// case insensitive.
func (emu *Emulator) Predefine(equ string, value string) {
	equ = strings.ToUpper(equ)
	if emu.predefine == nil {
		emu.predefine = map[string]string{equ: value}
	} else {
		emu.predefine[equ] = value
	}
}

// Configure applies a configuration.
func (emu *Emulator) Configure(cfg *config.Config) (err error) {
	emu.MaxSteps = cfg.MaxSteps
	emu.Cpu.Stack.Limit = cfg.StackLimit

	for equ, value := range cfg.Equates {
		emu.Predefine(equ, value)
	}

	err = translate.SetLanguage(cfg.Language)
	return
}

// Reset the machine state: registers, flags, stack, data segment, segment
// selection and equates.
func (emu *Emulator) Reset() {
	emu.Cpu.Reset()
	emu.Data.Reset()
	emu.Segment = SEGMENT_CODE
	emu.Ip = 0
	emu.steps = 0
	emu.halted = false

	emu.equate = map[string]string{"LINENO": "0"}
	for equ, value := range emu.predefine {
		emu.equate[equ] = value
	}
}

// Load resets the machine and builds the label table of source.
func (emu *Emulator) Load(source string) (err error) {
	emu.Reset()

	emu.lines = splitLines(source)
	emu.label, err = LabelPass(emu.lines)
	if err != nil {
		emu.halted = true
		return
	}

	return
}

// Labels returns a copy of the label table.
func (emu *Emulator) Labels() map[string]int {
	return maps.Clone(emu.label)
}

// LineNo returns the 1-based line number of the next line to execute.
func (emu *Emulator) LineNo() int {
	return emu.Ip + 1
}

// Tick executes a single source line.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halted || emu.Ip >= len(emu.lines) {
		done = true
		return
	}

	index := emu.Ip
	line := emu.lines[index]

	defer func() {
		if err != nil {
			emu.halted = true
			err = &ErrRuntime{Index: index, Line: line, Err: err}
		}
	}()

	// Blank, comment and label lines are not steps.
	if text := stripComment(line); len(text) != 0 {
		if _, isLabel := labelOf(text); !isLabel {
			if emu.MaxSteps > 0 && emu.steps >= emu.MaxSteps {
				err = ErrStepLimit
				return
			}
			emu.steps++
		}
	}

	emu.Log.WithFields(logrus.Fields{
		"line": index + 1,
		"text": line,
	}).Debug("execute")

	emu.nextIp = index + 1
	err = emu.Execute(line)
	if err != nil {
		return
	}

	emu.Ip = emu.nextIp
	done = emu.halted || emu.Ip >= len(emu.lines)

	return
}

// Run loads and executes source until it is exhausted, halted, or a line
// fails. The failing line is logged and returned as an *ErrRuntime.
func (emu *Emulator) Run(source string) (err error) {
	defer func() {
		if rt, ok := err.(*ErrRuntime); ok {
			emu.Log.WithFields(logrus.Fields{
				"line": rt.Index + 1,
				"text": rt.Line,
			}).Error(rt.Err)
		}
	}()

	err = emu.Load(source)
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
