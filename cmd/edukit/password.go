package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/edukit/util"
)

type generatedPassword struct {
	Password string `json:"password" yaml:"password"`
	Length   int    `json:"length" yaml:"length"`
}

func generatePassword(length int) (generatedPassword, error) {
	pw, err := util.GenerateStrongPassword(length)
	return generatedPassword{Password: pw, Length: length}, err
}

func (a *app) passwordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Score or generate passwords",
	}
	cmd.AddCommand(a.passwordCheckCommand(), a.passwordGenerateCommand())
	return cmd
}

func (a *app) passwordCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check PASSWORD",
		Short:   "Score a password against length, uppercase, digit and symbol rules",
		Example: `  edukit password check 'SuperSecret1!'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := checkPassword(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res, res.writeText)
		},
	}
}

func (a *app) passwordGenerateCommand() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Long: fmt.Sprintf(`Generate a random password from letters, digits and punctuation.

The length defaults to password.default_length from the config file
(%d when unset) and must be at least %d.`, util.DefaultPasswordLength, util.MinPasswordLength),
		Example: `  edukit password generate --length 16`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.Password.DefaultLength
			}
			res, err := generatePassword(length)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, res.Password)
				return err
			})
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", 0, "password length")
	return cmd
}
