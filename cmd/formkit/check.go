package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/auroraair/formkit/internal/web"
	"github.com/auroraair/formkit/pkg/validator"
)

var errInvalid = errors.New("invalid value")

var checks = map[string]func(string) validator.Result{
	"email":    validator.Email,
	"password": validator.Password,
	"mobile":   validator.Mobile,
	"name":     validator.Name,
	"number":   validator.Numeric,
}

func checkKinds() []string {
	kinds := make([]string, 0, len(checks))
	for k := range checks {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func checkCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:       "check <kind> <value>",
		Short:     "Validate one field value",
		Long:      "Validate one value with a portal field validator. Kinds: " + strings.Join(checkKinds(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: checkKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, ok := checks[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q: want one of %s", args[0], strings.Join(checkKinds(), ", "))
			}

			res := check(args[1])
			if res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}

			tr, err := web.NewTranslator("en")
			if err != nil {
				return err
			}
			verr := res.Err(args[0])
			verr.Message = web.Localizer(tr, lang)(res)
			fmt.Fprintln(cmd.OutOrStdout(), verr.Message)
			return errors.Join(errInvalid, validator.ValidationErrors{*verr})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "message language")
	return cmd
}
