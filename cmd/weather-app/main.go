package main

import (
	"fmt"
	"os"
)

// @title Weather App API
// @version 1.0.0
// @description Current weather search with a persisted list of favorite cities.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Current weather lookups
// @tag.name Favorites
// @tag.description Favorite cities
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
