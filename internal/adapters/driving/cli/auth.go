package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/formery-dev/formery/internal/adapters/driven/auth"
	"github.com/formery-dev/formery/internal/adapters/driven/oauth"
	oauthflow "github.com/formery-dev/formery/internal/adapters/driving/oauth"
	"github.com/formery-dev/formery/internal/connectors/google"
	"github.com/formery-dev/formery/internal/core/domain"
)

// loginTimeout bounds the wait for the browser round trip.
const loginTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google authentication",
	Long: `Log in to Google, inspect the current session, or log out.

formery uses the OAuth authorization-code flow with a loopback redirect:
'formery auth login' opens your browser, you approve access, and the
tokens are stored locally. You need an OAuth client of type "Desktop app"
from the Google Cloud console with the Forms and Drive APIs enabled.

Examples:
  formery auth login
  formery auth status
  formery auth logout`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Google via the browser",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication status",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credentials",
	RunE:  runAuthLogout,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

//nolint:errcheck // CLI interactive flow
func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if configStore == nil || tokenFile == nil {
		return errors.New("auth not configured")
	}

	clientID, clientSecret, err := collectOAuthClient(cmd)
	if err != nil {
		return err
	}

	port, err := oauthflow.FindAvailablePort(8080, 8180)
	if err != nil {
		return fmt.Errorf("no port for the OAuth callback: %w", err)
	}

	state := uuid.New().String()
	verifier := oauthflow.GenerateCodeVerifier()
	challenge := oauthflow.GenerateCodeChallenge(verifier)

	server := oauthflow.NewCallbackServer(port, state)
	if err := server.Start(); err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer server.Stop()

	authURL := buildAuthURL(clientID, server.RedirectURI(), state, challenge)

	cmd.Println("Opening your browser for Google authorization...")
	if err := oauthflow.OpenBrowser(authURL); err != nil {
		cmd.Println("Could not open a browser. Visit this URL manually:")
		cmd.Println()
		cmd.Println("  " + authURL)
	}

	code, err := server.WaitForCode(loginTimeout)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	ctx := context.Background()
	tokens, err := oauth.ExchangeCodeForTokens(
		ctx, google.TokenURL, clientID, clientSecret, code, server.RedirectURI(), verifier)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}

	if err := tokenFile.Save(auth.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Expiry:       tokens.Expiry,
	}); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}

	if info, err := google.GetUserInfo(ctx, tokens.AccessToken); err == nil {
		cmd.Println(styleSuccess.Render(fmt.Sprintf("Logged in as %s", info.Email)))
	} else {
		cmd.Println(styleSuccess.Render("Logged in."))
	}
	return nil
}

// collectOAuthClient reads the OAuth client credentials from the config
// store, prompting and persisting them on first use. The secret prompt
// does not echo.
//
//nolint:errcheck // CLI interactive flow
func collectOAuthClient(cmd *cobra.Command) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	clientID := configStore.GetString("google.client_id")
	if clientID == "" {
		cmd.Print("Google OAuth client ID: ")
		input, _ := reader.ReadString('\n')
		clientID = strings.TrimSpace(input)
		if clientID == "" {
			return "", "", errors.New("client ID is required")
		}
		if err := configStore.Set("google.client_id", clientID); err != nil {
			return "", "", fmt.Errorf("save client ID: %w", err)
		}
	}

	clientSecret := configStore.GetString("google.client_secret")
	if clientSecret == "" {
		cmd.Print("Google OAuth client secret: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return "", "", fmt.Errorf("read client secret: %w", err)
		}
		clientSecret = strings.TrimSpace(string(secret))
		if clientSecret == "" {
			return "", "", errors.New("client secret is required")
		}
		if err := configStore.Set("google.client_secret", clientSecret); err != nil {
			return "", "", fmt.Errorf("save client secret: %w", err)
		}
	}

	return clientID, clientSecret, nil
}

// buildAuthURL assembles the authorization URL with PKCE and offline
// access so a refresh token is issued.
func buildAuthURL(clientID, redirectURI, state, challenge string) string {
	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(google.DefaultScopes(), " "))
	params.Set("state", state)
	params.Set("code_challenge", challenge)
	params.Set("code_challenge_method", "S256")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	return google.AuthURL + "?" + params.Encode()
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if tokenFile == nil {
		return errors.New("auth not configured")
	}

	creds, err := tokenFile.Load()
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			cmd.Println("Not logged in. Run: formery auth login")
			return nil
		}
		return fmt.Errorf("read credentials: %w", err)
	}

	cmd.Println("Logged in.")
	if !creds.Expiry.IsZero() {
		if time.Now().After(creds.Expiry) {
			cmd.Println(styleWarning.Render("Access token expired (will refresh on next use)"))
		} else {
			cmd.Printf("Access token valid until %s\n", creds.Expiry.Format(time.RFC3339))
		}
	}

	ctx := context.Background()
	token, err := tokenFile.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("refresh token: %w", err)
	}
	if info, err := google.GetUserInfo(ctx, token); err == nil {
		cmd.Printf("Account: %s\n", info.Email)
	}
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if tokenFile == nil {
		return errors.New("auth not configured")
	}

	if !tokenFile.Exists() {
		cmd.Println("Not logged in.")
		return nil
	}
	if err := tokenFile.Clear(); err != nil {
		return fmt.Errorf("remove credentials: %w", err)
	}
	cmd.Println("Logged out.")
	return nil
}
