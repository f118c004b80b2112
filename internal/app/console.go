package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/webue/webue-client/internal/config"
	"github.com/webue/webue-client/internal/export"
	"github.com/webue/webue-client/internal/logger"
	"github.com/webue/webue-client/internal/tokenstore"
	"github.com/webue/webue-client/pkg/httpclient"
	"github.com/webue/webue-client/pkg/webue"
)

// Console owns the token store and the single API client used by every command.
type Console struct {
	cfg   *config.Config
	store tokenstore.Store
	api   *webue.Client
	log   logger.Logger
}

// NewConsole builds the command runtime from config.
func NewConsole(cfg *config.Config, log logger.Logger) (*Console, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	store, err := tokenstore.NewStore(cfg.TokenStore, cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	log.DebugObj("token store ready", "token_store", cfg.TokenStore)

	httpClient := httpclient.NewAuthClient(httpclient.AuthConfig{
		BaseURL: cfg.APIURL,
		Timeout: cfg.RequestTimeout,
	}, store, log)

	return &Console{
		cfg:   cfg,
		store: store,
		api:   webue.New(httpClient, store, log),
		log:   log,
	}, nil
}

// Close releases the token store.
func (c *Console) Close() error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Close()
}

// Login reads the password from in (first line) and signs in.
func (c *Console) Login(ctx context.Context, username string, in io.Reader, out io.Writer) error {
	password, err := readPassword(in)
	if err != nil {
		return err
	}
	if _, err := c.api.Login(ctx, username, password); err != nil {
		return err
	}
	fmt.Fprintf(out, "signed in as %s\n", username)
	return nil
}

func readPassword(in io.Reader) (string, error) {
	if in == nil {
		return "", fmt.Errorf("no password input")
	}
	raw, err := io.ReadAll(io.LimitReader(in, 4096))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	line, _, _ := strings.Cut(string(raw), "\n")
	password := strings.TrimRight(line, "\r")
	if password == "" {
		return "", fmt.Errorf("empty password on stdin")
	}
	return password, nil
}

// Logout forgets the stored token.
func (c *Console) Logout(out io.Writer) error {
	if err := c.store.ClearToken(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	fmt.Fprintln(out, "signed out")
	return nil
}

// Whoami reports whether a token is stored. The token itself is never printed.
func (c *Console) Whoami(out io.Writer) error {
	token, err := c.store.Token()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token == "" {
		fmt.Fprintf(out, "not signed in (%s)\n", c.cfg.APIURL)
		return nil
	}
	fmt.Fprintf(out, "signed in (%s)\n", c.cfg.APIURL)
	return nil
}

// ListProfiles prints a table of stored profiles.
func (c *Console) ListProfiles(ctx context.Context, out io.Writer) error {
	profiles, err := c.api.ListProfiles(ctx)
	if err != nil {
		return explain(err)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUPI\tPLMN\tAMF\tSESSIONS")
	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s-%s\t%s\t%d\n", p.Supi, p.Mcc, p.Mnc, p.Amf, len(p.Sessions))
	}
	return tw.Flush()
}

// DeleteProfile removes one profile.
func (c *Console) DeleteProfile(ctx context.Context, supi string, out io.Writer) error {
	if err := c.api.DeleteProfile(ctx, supi); err != nil {
		return explain(err)
	}
	fmt.Fprintf(out, "deleted %s\n", supi)
	return nil
}

// UpdateProfile replaces a profile with the one described in a YAML file.
func (c *Console) UpdateProfile(ctx context.Context, supi, file string, out io.Writer) error {
	profile, err := export.LoadProfile(file)
	if err != nil {
		return err
	}
	if err := c.api.UpdateProfile(ctx, supi, profile); err != nil {
		return explain(err)
	}
	fmt.Fprintf(out, "updated %s\n", supi)
	return nil
}

// GenerateProfiles sends the generation request described in a YAML file.
func (c *Console) GenerateProfiles(ctx context.Context, file string, out io.Writer) error {
	req, err := export.LoadGenerateRequest(file)
	if err != nil {
		return err
	}
	res, err := c.api.GenerateProfiles(ctx, req)
	if err != nil {
		return explain(err)
	}
	fmt.Fprintf(out, "%s (%d profiles)\n", res.Message, len(res.Profiles))
	return nil
}

// ExportProfiles writes every stored profile to dir as YAML.
func (c *Console) ExportProfiles(ctx context.Context, dir string, out io.Writer) error {
	profiles, err := c.api.ListProfiles(ctx)
	if err != nil {
		return explain(err)
	}
	paths, err := export.Profiles(dir, profiles, c.log)
	if err != nil {
		return err
	}
	c.log.InfoObj("profiles exported", "export_meta", map[string]any{
		"dir":   dir,
		"count": len(paths),
	})
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}

// explain adds a next step to errors the user can act on.
func explain(err error) error {
	if webue.IsUnauthorized(err) {
		return fmt.Errorf("%w (run `webuectl login <username> --password-stdin`)", err)
	}
	return err
}
