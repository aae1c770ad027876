package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
)

const callbackPath = "/callback"

// callbackResult is what the local redirect handler hands back to Authorize
type callbackResult struct {
	code string
	err  error
}

// DiscordAuthorizer runs the Discord authorization-code flow with a local
// redirect listener.
type DiscordAuthorizer struct {
	cfg    config.OAuthConfig
	out    io.Writer
	log    *slog.Logger
	listen func(addr string) (net.Listener, error)
	// browse presents the authorization URL to the user
	browse func(authURL string) error
}

// NewDiscordAuthorizer creates a new DiscordAuthorizer
func NewDiscordAuthorizer(cfg *config.RuntimeConfig, out io.Writer, log *slog.Logger) *DiscordAuthorizer {
	a := &DiscordAuthorizer{
		cfg:    cfg.Discord,
		out:    out,
		log:    log.With("component", "DiscordAuthorizer"),
		listen: func(addr string) (net.Listener, error) { return net.Listen("tcp", addr) },
	}
	a.browse = a.printURL
	return a
}

func (a *DiscordAuthorizer) printURL(authURL string) error {
	_, err := fmt.Fprintf(a.out, "Open the following URL to authorize with Discord:\n\n  %s\n\n", authURL)
	return err
}

// Authorize blocks until the redirect arrives, the user denies access, or ctx ends.
func (a *DiscordAuthorizer) Authorize(ctx context.Context) (*usecase.OAuthToken, error) {
	if a.cfg.ClientID == "" {
		return nil, fmt.Errorf("discord client id is not configured (set NOVA_DISCORD_CLIENT_ID or [oauth.discord] client_id in nova.toml)")
	}

	ln, err := a.listen(fmt.Sprintf("127.0.0.1:%d", a.cfg.RedirectPort))
	if err != nil {
		return nil, fmt.Errorf("failed to start oauth callback listener: %w", err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     a.cfg.ClientID,
		ClientSecret: a.cfg.ClientSecret,
		Scopes:       a.cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  a.cfg.AuthURL,
			TokenURL: a.cfg.TokenURL,
		},
		RedirectURL: fmt.Sprintf("http://%s%s", ln.Addr().String(), callbackPath),
	}

	state := uuid.NewString()
	results := make(chan callbackResult, 1)

	router := mux.NewRouter()
	router.HandleFunc(callbackPath, a.callbackHandler(state, results)).Methods(http.MethodGet)

	srv := &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Warn("oauth callback server stopped", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := oauthCfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "consent"))
	a.log.Debug("waiting for oauth callback", "redirect", oauthCfg.RedirectURL)
	if err := a.browse(authURL); err != nil {
		return nil, fmt.Errorf("failed to present authorization url: %w", err)
	}

	var result callbackResult
	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, domain.ErrOAuthCancelled
		}
		return nil, fmt.Errorf("timed out waiting for discord authorization: %w", ctx.Err())
	case result = <-results:
	}
	if result.err != nil {
		return nil, result.err
	}

	token, err := oauthCfg.Exchange(ctx, result.code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange discord authorization code: %w", err)
	}

	return &usecase.OAuthToken{
		AccessToken: token.AccessToken,
		TokenType:   token.Type(),
		Expiry:      token.Expiry,
	}, nil
}

func (a *DiscordAuthorizer) callbackHandler(state string, results chan<- callbackResult) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var result callbackResult
		switch {
		case q.Get("state") != state:
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		case q.Get("error") == "access_denied":
			result.err = domain.ErrOAuthCancelled
		case q.Get("error") != "":
			result.err = fmt.Errorf("discord authorization failed: %s %s", q.Get("error"), q.Get("error_description"))
		case q.Get("code") == "":
			result.err = fmt.Errorf("discord authorization returned no code")
		default:
			result.code = q.Get("code")
		}

		if result.err != nil {
			fmt.Fprintln(w, "Authorization was not completed. You can close this window.")
		} else {
			fmt.Fprintln(w, "Authorization complete. You can close this window and return to the terminal.")
		}

		select {
		case results <- result:
		default:
		}
	}
}

var _ usecase.OAuthProvider = (*DiscordAuthorizer)(nil)
