package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/edukit/security"
)

type emailResult struct {
	Email string `json:"email" yaml:"email"`
	Valid bool   `json:"valid" yaml:"valid"`
}

func (r emailResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Is '%s' valid? %t\n", r.Email, r.Valid)
	return err
}

type phonesResult struct {
	Numbers []string `json:"numbers" yaml:"numbers"`
}

func (r phonesResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Found numbers: %s\n", formatList(r.Numbers))
	return err
}

type censorResult struct {
	Text string `json:"text" yaml:"text"`
}

type passwordCheckResult struct {
	Password string                  `json:"password" yaml:"password"`
	Report   security.PasswordReport `json:"report" yaml:"report"`
}

func (r passwordCheckResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Password Analysis for '%s': %s\n", r.Password, r.Report)
	return err
}

func checkEmail(addr string) (emailResult, error) {
	ok, err := security.ValidateEmail(addr)
	return emailResult{Email: addr, Valid: ok}, err
}

func checkPassword(pw string) (passwordCheckResult, error) {
	report, err := security.CheckPasswordComplexity(pw)
	return passwordCheckResult{Password: pw, Report: report}, err
}

func (a *app) emailCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "email ADDRESS",
		Short:   "Check whether an email address is well formed",
		Example: `  edukit email martin.serafimov@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := checkEmail(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res, res.writeText)
		},
	}
}

func (a *app) phonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "phones TEXT...",
		Short:   "Extract NNN-NNN-NNNN phone numbers from text",
		Example: `  edukit phones "Call me at 555-123-4567 or the office at 555-987-6543."`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := phonesResult{Numbers: security.ExtractPhoneNumbers(strings.Join(args, " "))}
			return a.render(cmd.OutOrStdout(), res, res.writeText)
		},
	}
}

func (a *app) censorCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "censor TEXT...",
		Short:   "Redact 16-digit card numbers from text",
		Example: `  edukit censor "paid with card 1234-5678-1234-5678"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := censorResult{Text: security.CensorSensitiveData(strings.Join(args, " "))}
			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Text)
				return err
			})
		},
	}
}
