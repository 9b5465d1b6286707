package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fraudsight/riskgate"
)

var (
	identifier string
	secret     string
	name       string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the identity backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}

		fragment, err := gateway.Login(cmd.Context(), riskgate.Credentials{
			Identifier: identifier,
			Secret:     secret,
		}).Wait(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("logged in; token ends %s\n", tail(fragment.Token))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the identity backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}

		req := riskgate.RegisterRequest{Identifier: identifier, Secret: secret}
		if name != "" {
			req.Extra = map[string]any{"name": name}
		}

		if _, err := gateway.Register(cmd.Context(), req).Wait(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("account created and session established")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}
		if err := gateway.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}

		snap := gateway.Session()
		if !snap.IsAuthenticated {
			fmt.Println("not logged in")
			return nil
		}

		if len(snap.User) > 0 {
			var pretty json.RawMessage = snap.User
			out, _ := json.MarshalIndent(pretty, "", "  ")
			fmt.Printf("user: %s\n", out)
		}

		claims, err := gateway.TokenInfo()
		switch {
		case errors.Is(err, riskgate.ErrTokenOpaque):
			fmt.Println("token: opaque (no decodable claims)")
		case err != nil:
			return err
		default:
			fmt.Printf("subject: %s\n", claims.Subject)
			if !claims.ExpiresAt.IsZero() {
				fmt.Printf("expires: %s", claims.ExpiresAt.Format(time.RFC3339))
				if claims.Expired(time.Now()) {
					fmt.Print(" (expired)")
				}
				fmt.Println()
			}
		}
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe both backend domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := newGateway(cmd.Context())
		if err != nil {
			return err
		}

		if id, err := gateway.CheckIdentityHealth(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "identity: unreachable (%v)\n", err)
		} else {
			fmt.Printf("identity: %s\n", id.Status)
		}

		if an, err := gateway.CheckAnalyticalHealth(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "analytical: unreachable (%v)\n", err)
		} else {
			fmt.Printf("analytical: %s (models loaded: %d)\n", an.Status, len(an.ModelsLoaded))
		}
		return nil
	},
}

func tail(token string) string {
	if len(token) <= 6 {
		return token
	}
	return "…" + token[len(token)-6:]
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&identifier, "identifier", "", "account identifier (email)")
		cmd.Flags().StringVar(&secret, "secret", "", "account secret")
		_ = cmd.MarkFlagRequired("identifier")
		_ = cmd.MarkFlagRequired("secret")
	}
	registerCmd.Flags().StringVar(&name, "name", "", "display name")
}
