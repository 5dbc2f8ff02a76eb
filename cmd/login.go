package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/obinna/prepcli/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the exam-practice platform",
	Long:  "Exchanges your platform email and password for an API token, then prints the environment variables to export.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		baseURL, _ := cmd.Flags().GetString("url")
		if baseURL == "" {
			baseURL = os.Getenv("PREPCLI_API_URL")
		}
		if baseURL == "" {
			return fmt.Errorf("platform URL required: pass --url or set PREPCLI_API_URL")
		}

		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Email: ")
		email, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(email)

		fmt.Print("Password: ")
		password, err := readPassword()
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		token, err := api.Login(ctx, baseURL, email, password)
		if err != nil {
			return err
		}

		client := api.New(api.Config{BaseURL: baseURL, Token: token})
		me, err := client.WhoAmI(ctx)
		if err != nil {
			return fmt.Errorf("verify token: %w", err)
		}

		fmt.Printf("\nLogged in as %s.\n", me.Email)
		fmt.Println("Export these to use prepcli:")
		fmt.Println()
		fmt.Printf("export PREPCLI_API_URL=%q\n", baseURL)
		fmt.Printf("export PREPCLI_API_TOKEN=%q\n", token)
		fmt.Printf("export PREPCLI_USER_ID=%q\n", fmt.Sprint(me.ID))
		return nil
	},
}

// readPassword reads without echo when stdin is a terminal, falling back
// to a plain line read when it is piped.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		return string(b), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line), err
}

func init() {
	loginCmd.Flags().String("url", "", "Platform base URL, e.g. https://app.example.ng")
}
