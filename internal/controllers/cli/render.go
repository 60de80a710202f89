package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"weather-app/internal/app"
	"weather-app/internal/models"
)

const clockLayout = "15:04"

type RendererOptions struct {
	// Location for sunrise, sunset and the clock. Defaults to time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now     func() time.Time
	NoColor bool
}

// Renderer writes the application state as text.
type Renderer struct {
	w   io.Writer
	loc *time.Location
	now func() time.Time

	title *color.Color
	temp  *color.Color
	muted *color.Color
	fail  *color.Color
	star  *color.Color
}

func NewRenderer(w io.Writer, opts RendererOptions) *Renderer {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := &Renderer{
		w:     w,
		loc:   opts.Location,
		now:   opts.Now,
		title: color.New(color.FgCyan, color.Bold),
		temp:  color.New(color.FgYellow, color.Bold),
		muted: color.New(color.Faint),
		fail:  color.New(color.FgRed),
		star:  color.New(color.FgYellow),
	}

	if opts.NoColor {
		for _, c := range []*color.Color{r.title, r.temp, r.muted, r.fail, r.star} {
			c.DisableColor()
		}
	}

	return r
}

func (r *Renderer) clock(t time.Time) string {
	return t.In(r.loc).Format(clockLayout)
}

// Loading prints the in-flight line for city.
func (r *Renderer) Loading(city string) {
	r.muted.Fprintf(r.w, "Loading weather for %s...\n", city)
}

// State prints the settled request: the weather card, the error message, or
// nothing while idle.
func (r *Renderer) State(s app.State) {
	switch s.Request.Status {
	case models.StatusLoading:
		r.Loading(s.City)
	case models.StatusFailed:
		r.fail.Fprintln(r.w, s.Request.Message())
	case models.StatusSucceeded:
		r.Snapshot(*s.Request.Snapshot)
		if s.IsFavorite() {
			r.star.Fprintln(r.w, "★ In favorites")
		} else if s.CanAddFavorite() {
			r.muted.Fprintln(r.w, "Type /fav to add to favorites")
		}
	}
}

func (r *Renderer) Snapshot(s models.WeatherSnapshot) {
	r.title.Fprintf(r.w, "%s %s, %s\n", s.Icon(), s.City, s.Country)
	r.temp.Fprintf(r.w, "%d°C", models.RoundCelsius(s.Temp))
	fmt.Fprintf(r.w, "  %s\n", s.Description)
	fmt.Fprintf(r.w, "Feels like %d°C  Min %d°C  Max %d°C\n",
		models.RoundCelsius(s.FeelsLike), models.RoundCelsius(s.TempMin), models.RoundCelsius(s.TempMax))
	fmt.Fprintf(r.w, "Humidity %d%%  Wind %.2f m/s  Visibility %.1f km  Pressure %d hPa\n",
		s.Humidity, s.WindSpeed, s.VisibilityKm(), s.Pressure)
	fmt.Fprintf(r.w, "Sunrise %s  Sunset %s\n", r.clock(s.Sunrise), r.clock(s.Sunset))
	r.muted.Fprintf(r.w, "Updated %s\n", r.clock(r.now()))
}

// Favorites prints the numbered list used by /load.
func (r *Renderer) Favorites(favorites []string) {
	if len(favorites) == 0 {
		r.muted.Fprintln(r.w, "No favorites yet.")
		return
	}

	r.title.Fprintln(r.w, "Favorites")
	for i, city := range favorites {
		fmt.Fprintf(r.w, "%2d. %s\n", i+1, city)
	}
}

func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *Renderer) Problem(format string, args ...any) {
	r.fail.Fprintf(r.w, format+"\n", args...)
}

func (r *Renderer) Help() {
	fmt.Fprint(r.w, strings.Join([]string{
		"Type a city name and press Enter to see its weather.",
		"  /fav            add the displayed city to favorites",
		"  /rm <city>      remove a favorite",
		"  /load <city|n>  show a favorite by name or number",
		"  /list           list favorites",
		"  /help           show this help",
		"  /quit           exit",
	}, "\n")+"\n")
}
