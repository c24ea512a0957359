package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kbukum/edukit/logger"
	"github.com/kbukum/edukit/reporting"
	"github.com/kbukum/edukit/security"
	"github.com/kbukum/edukit/util"
)

const (
	demoReporting = "reporting"
	demoSecurity  = "security"
	demoHelpers   = "helpers"
)

var demoSections = []string{demoReporting, demoSecurity, demoHelpers}

type reportingDemo struct {
	Grades []reporting.GradeResult `json:"grades" yaml:"grades"`
	Alerts []reporting.StockAlert  `json:"alerts" yaml:"alerts"`
	Common []int                   `json:"common" yaml:"common"`

	book      reporting.Gradebook
	inventory []reporting.Item
}

type securityDemo struct {
	Email    emailResult         `json:"email" yaml:"email"`
	Phones   phonesResult        `json:"phones" yaml:"phones"`
	Password passwordCheckResult `json:"password" yaml:"password"`
	Censored string              `json:"censored" yaml:"censored"`
}

type helpersDemo struct {
	TenIsEven      bool              `json:"ten_is_even" yaml:"ten_is_even"`
	Percentage     float64           `json:"percentage" yaml:"percentage"`
	Generated      generatedPassword `json:"generated" yaml:"generated"`
	SeventeenPrime bool              `json:"seventeen_is_prime" yaml:"seventeen_is_prime"`
}

type demoResult struct {
	Reporting *reportingDemo `json:"reporting,omitempty" yaml:"reporting,omitempty"`
	Security  *securityDemo  `json:"security,omitempty" yaml:"security,omitempty"`
	Helpers   *helpersDemo   `json:"helpers,omitempty" yaml:"helpers,omitempty"`
}

func sampleGradebook() reporting.Gradebook {
	return reporting.Gradebook{
		{Student: "Alice", Scores: []float64{85, 90, 88}},
		{Student: "Bob", Scores: []float64{70, 75, 72}},
		{Student: "Charlie", Scores: []float64{95, 92, 98}},
		{Student: "Diana", Scores: []float64{60, 65, 58}},
	}
}

func sampleInventory() []reporting.Item {
	item := func(name string, price float64, stock int) reporting.Item {
		return reporting.Item{Name: util.Ptr(name), Price: price, Stock: util.Ptr(stock)}
	}
	return []reporting.Item{
		item("Laptop", 1200, 5),
		item("Mouse", 20, 0),
		item("Keyboard", 50, 12),
		item("Monitor", 300, 2),
	}
}

func runReportingDemo() (*reportingDemo, error) {
	d := &reportingDemo{book: sampleGradebook(), inventory: sampleInventory()}
	var err error
	if d.Grades, err = reporting.GradeStudents(d.book); err != nil {
		return nil, err
	}
	if d.Alerts, err = reporting.InventoryAlerts(d.inventory); err != nil {
		return nil, err
	}
	d.Common = reporting.FindCommonElements([]int{1, 2, 3, 4, 5, 10}, []int{4, 5, 6, 7, 8, 10})
	return d, nil
}

func (d *reportingDemo) writeText(w io.Writer) error {
	if err := reporting.AnalyzeGrades(w, d.book); err != nil {
		return err
	}
	if err := reporting.FilterInventory(w, d.inventory); err != nil {
		return err
	}
	return commonResult{Common: d.Common}.writeText(w)
}

func runSecurityDemo() (*securityDemo, error) {
	var d securityDemo
	var err error
	if d.Email, err = checkEmail("martin.serafimov@example.com"); err != nil {
		return nil, err
	}
	d.Phones = phonesResult{Numbers: security.ExtractPhoneNumbers("Call me at 555-123-4567 or the office at 555-987-6543.")}
	if d.Password, err = checkPassword("SuperSecret1!"); err != nil {
		return nil, err
	}
	d.Censored = security.CensorSensitiveData("User payment processed with card 1234-5678-1234-5678 successfully.")
	return &d, nil
}

func (d *securityDemo) writeText(w io.Writer) error {
	if err := d.Email.writeText(w); err != nil {
		return err
	}
	if err := d.Phones.writeText(w); err != nil {
		return err
	}
	if err := d.Password.writeText(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Log: %s\n", d.Censored)
	return err
}

func runHelpersDemo() (*helpersDemo, error) {
	d := helpersDemo{TenIsEven: util.IsEven(10), SeventeenPrime: util.IsPrime(17)}
	var err error
	if d.Percentage, err = util.CalculatePercentage(20, 50); err != nil {
		return nil, err
	}
	if d.Generated, err = generatePassword(16); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *helpersDemo) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Is 10 even? %t\nPercentage: %s%%\nGenerated Password: %s\nIs 17 prime? %t\n",
		d.TenIsEven, strconv.FormatFloat(d.Percentage, 'f', -1, 64), d.Generated.Password, d.SeventeenPrime)
	return err
}

func (a *app) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [reporting|security|helpers]",
		Short: "Run the helpers on built-in sample data",
		Long: `Run the helpers on built-in sample data. Without an argument every
section runs in turn.`,
		Example: `  edukit demo
  edukit demo security -o yaml`,
		ValidArgs: demoSections,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := demoSections
			if len(args) == 1 {
				sections = args
			}
			res, err := runDemo(sections)
			if err != nil {
				return err
			}
			a.log.Debug("demo finished", logger.Fields("sections", sections))
			return a.render(cmd.OutOrStdout(), res, res.writeText)
		},
	}
}

func runDemo(sections []string) (*demoResult, error) {
	var res demoResult
	var err error
	for _, s := range sections {
		switch s {
		case demoReporting:
			res.Reporting, err = runReportingDemo()
		case demoSecurity:
			res.Security, err = runSecurityDemo()
		case demoHelpers:
			res.Helpers, err = runHelpersDemo()
		}
		if err != nil {
			return nil, err
		}
	}
	return &res, nil
}

func (r *demoResult) writeText(w io.Writer) error {
	writers := make([]func(io.Writer) error, 0, len(demoSections))
	if r.Reporting != nil {
		writers = append(writers, r.Reporting.writeText)
	}
	if r.Security != nil {
		writers = append(writers, r.Security.writeText)
	}
	if r.Helpers != nil {
		writers = append(writers, r.Helpers.writeText)
	}
	for i, write := range writers {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := write(w); err != nil {
			return err
		}
	}
	return nil
}
