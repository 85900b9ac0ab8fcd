// Package prompt implements the interactive question loop of the calc command.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/julianstephens/koffee/internal/constants"
	"github.com/julianstephens/koffee/internal/logger"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/validation"
)

const (
	WeightQuestion      = "Enter your weight in kg"
	WakeQuestion        = "Enter your wake-up time (HH:MM)"
	SleepQuestion       = "Enter your bedtime (HH:MM)"
	SensitivityQuestion = "Enter your caffeine sensitivity (low/medium/high)"

	WeightRetry      = "Please enter a valid weight."
	TimeRetry        = "Please enter a valid time in HH:MM format."
	SensitivityRetry = "Please enter 'low', 'medium', or 'high'."
)

// ErrInputClosed is returned when input ends before a valid answer was given.
var ErrInputClosed = errors.New("input closed before all answers were given")

// Prompter asks questions on out and reads answers from in, one per line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints question and re-asks until check accepts the answer. An empty
// answer selects def when def is not empty.
func (p *Prompter) Ask(question, def string, check func(string) error, retry string) (string, error) {
	label := question
	if def != "" {
		label = fmt.Sprintf("%s [%s]", question, def)
	}

	for {
		fmt.Fprintf(p.out, "%s: ", label)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		eof := err != nil

		answer := strings.TrimSpace(line)
		if answer == "" && def != "" && !(eof && line == "") {
			answer = def
		}
		if answer != "" {
			checkErr := check(answer)
			if checkErr == nil {
				return answer, nil
			}
			logger.Debug("Rejected answer", "question", question, "error", checkErr)
		}
		if eof {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
		fmt.Fprintln(p.out, retry)
	}
}

// Weight asks for a body weight in kilograms.
func (p *Prompter) Weight(def float64) (float64, error) {
	defStr := ""
	if def > 0 {
		defStr = strconv.FormatFloat(def, 'f', -1, 64)
	}
	answer, err := p.Ask(WeightQuestion, defStr, func(s string) error {
		_, err := validation.ParseWeight(s)
		return err
	}, WeightRetry)
	if err != nil {
		return 0, err
	}
	return validation.ParseWeight(answer)
}

// Time asks an HH:MM question.
func (p *Prompter) Time(question, def string) (string, error) {
	return p.Ask(question, def, validation.CheckTime, TimeRetry)
}

// Sensitivity asks for a sensitivity level.
func (p *Prompter) Sensitivity(def constants.SensitivityLevel) (constants.SensitivityLevel, error) {
	answer, err := p.Ask(SensitivityQuestion, string(def), func(s string) error {
		_, err := validation.ParseSensitivity(s)
		return err
	}, SensitivityRetry)
	if err != nil {
		return "", err
	}
	return validation.ParseSensitivity(answer)
}

// Fill asks for every field of profile that is still unset. Fields already
// present in defaults are offered as the bracketed default answer.
func (p *Prompter) Fill(profile, defaults models.Profile) (models.Profile, error) {
	var err error
	if profile.WeightKg <= 0 {
		if profile.WeightKg, err = p.Weight(defaults.WeightKg); err != nil {
			return profile, err
		}
	}
	if profile.WakeTime == "" {
		if profile.WakeTime, err = p.Time(WakeQuestion, defaults.WakeTime); err != nil {
			return profile, err
		}
	}
	if profile.SleepTime == "" {
		if profile.SleepTime, err = p.Time(SleepQuestion, defaults.SleepTime); err != nil {
			return profile, err
		}
	}
	if profile.Sensitivity == "" {
		if profile.Sensitivity, err = p.Sensitivity(defaults.Sensitivity); err != nil {
			return profile, err
		}
	}
	return profile, nil
}
