package main

import (
	"fmt"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

const passwordEnv = "LABCTL_PASSWORD"

func (c *cli) loginCommand() *cobra.Command {
	request := &requests.Login{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the lab backend and keep the token in the token file",
		Example: `  labctl login --email tech@lab.test --password secret
  LABCTL_PASSWORD=secret labctl login --email tech@lab.test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if request.Password == "" {
				request.Password = utils.GetEnvString(passwordEnv, "")
			}

			loggedIn, err := c.sessions.Login(c.requestContext(cmd), request)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.out, renderSuccess(fmt.Sprintf("Logged in as %s (%s)", loggedIn.User.Name, loggedIn.User.Role)))
			fmt.Fprintf(c.out, "Session expires at %s\n", loggedIn.ExpiresAt.Local().Format(timeLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Email, "email", "", "account email")
	cmd.Flags().StringVar(&request.Password, "password", "", "account password (or LABCTL_PASSWORD)")
	return cmd
}

func (c *cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and remove the token file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.sessions.Logout(c.requestContext(cmd), "")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, renderSuccess("Logged out"))
			return nil
		},
	}
}

func (c *cli) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Check the stored session against the lab backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.sessions.CheckSession(c.requestContext(cmd), "")
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s <%s>\nrole: %s\n", current.User.Name, current.User.Email, current.User.Role)
			return nil
		},
	}
}
