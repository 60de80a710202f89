package cli

import (
	"bufio"
	"context"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"weather-app/internal/app"
	"weather-app/internal/models"
	"weather-app/internal/services/weather"
	"weather-app/pkg/logger"
)

// ErrLookupFailed is returned by Lookup when the request did not succeed.
var ErrLookupFailed = errors.New("weather lookup failed")

const prompt = "> "

// REPL reads commands line by line and renders the resulting state.
type REPL struct {
	app *app.App
	r   *Renderer
	in  io.Reader
	out io.Writer
	l   *logger.Logger
}

func NewREPL(a *app.App, r *Renderer, in io.Reader, out io.Writer, l *logger.Logger) *REPL {
	a.Subscribe(func(s app.State) {
		if s.Loading() {
			r.Loading(s.City)
		}
	})

	return &REPL{app: a, r: r, in: in, out: out, l: l}
}

// Run renders the initial state and processes input until EOF, /quit or
// ctx is done.
func (c *REPL) Run(ctx context.Context) error {
	c.r.State(c.app.State())

	scanner := bufio.NewScanner(c.in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		io.WriteString(c.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		if quit := c.handle(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

func (c *REPL) handle(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if !strings.HasPrefix(line, "/") {
		s, _ := c.app.Search(ctx, line)
		c.r.State(s)
		return false
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		c.r.Help()
	case "/list":
		c.r.Favorites(c.app.State().Favorites)
	case "/fav":
		c.addFavorite(ctx)
	case "/rm":
		c.removeFavorite(ctx, arg)
	case "/load":
		c.loadFavorite(ctx, arg)
	default:
		c.r.Problem("Unknown command %s. Type /help for the list of commands.", cmd)
	}

	return false
}

func (c *REPL) addFavorite(ctx context.Context) {
	before := c.app.State()
	if before.IsFavorite() {
		c.r.Notice("%s is already a favorite.", before.CurrentCity())
		return
	}

	s, err := c.app.AddCurrentToFavorites(ctx)
	if errors.Is(err, app.ErrNoSnapshot) {
		c.r.Problem("Search for a city first.")
		return
	}
	if err != nil {
		c.l.Error(err, map[string]any{"command": "/fav"})
		c.r.Problem("Could not save favorites.")
		return
	}

	c.r.Notice("Added %s to favorites.", s.CurrentCity())
}

func (c *REPL) removeFavorite(ctx context.Context, arg string) {
	city, ok := c.resolveFavorite(arg)
	if !ok {
		c.r.Problem("%q is not a favorite.", arg)
		return
	}

	if _, err := c.app.RemoveFavorite(ctx, city); err != nil {
		c.l.Error(err, map[string]any{"command": "/rm", "city": city})
		c.r.Problem("Could not save favorites.")
		return
	}

	c.r.Notice("Removed %s from favorites.", city)
}

func (c *REPL) loadFavorite(ctx context.Context, arg string) {
	city, ok := c.resolveFavorite(arg)
	if !ok {
		c.r.Problem("%q is not a favorite.", arg)
		return
	}

	s, err := c.app.LoadFavorite(ctx, city)
	if err != nil {
		c.r.Problem("%q is not a favorite.", arg)
		return
	}
	c.r.State(s)
}

// resolveFavorite accepts an exact favorite name or its 1-based position in
// the list.
func (c *REPL) resolveFavorite(arg string) (string, bool) {
	if arg == "" {
		return "", false
	}

	favorites := c.app.State().Favorites
	if slices.Contains(favorites, arg) {
		return arg, true
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(favorites) {
		return "", false
	}
	return favorites[n-1], true
}

// Lookup fetches city once and renders the outcome. It returns
// ErrLookupFailed when the request failed.
func Lookup(ctx context.Context, a *app.App, r *Renderer, city string) error {
	city, ok := weather.Normalize(city)
	if !ok {
		return errors.New("city cannot be empty")
	}

	r.Loading(city)
	s := a.Fetch(ctx, city)
	r.State(s)

	if s.Request.Status == models.StatusFailed {
		return errors.Wrap(ErrLookupFailed, string(s.Request.Reason))
	}
	return nil
}
