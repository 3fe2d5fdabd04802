package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dilshat/sms-notify/model"
	"github.com/dilshat/sms-notify/service"
)

// GetSendCmd builds the root command. The message is taken from the
// -m/--message flag, any trailing tokens are joined with spaces.
func GetSendCmd(srv service.Service) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:           "sms-notify",
		Short:         "Send an sms message to your own phone and confirm its delivery",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(append([]string{message}, args...), " "))

			status, err := srv.Notify(cmd.Context(), text)
			if err != nil {
				switch err.(type) {
				case *service.InvalidPayloadErr:
					//keep usage output for bad input
					return err
				default:
					cmd.SilenceUsage = true
					return err
				}
			}

			cmd.SilenceUsage = true
			fmt.Fprintf(cmd.OutOrStdout(), "Message status: %s\n", status)

			if status != model.DELIVERED {
				return errors.New("message was not delivered, last status: " + status)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to send. Up to 1.6k characters is supported")

	return cmd
}
