// Command collage builds, renders and replays collage layouts.
//
// Usage:
//
//	collage themes [-kind k] [-pieces n]            List the theme catalog
//	collage render [flags] [image...]               Render one theme to PNG
//	collage catalog [flags]                         Render every theme concurrently
//	collage recipe [flags] recipe.yaml [image...]   Replay a saved layout
//
// Examples:
//
//	collage themes -kind slant
//	collage render -kind straight -theme 3 -o out.png -recipe out.yaml a.jpg b.png c.webp
//	collage catalog -size 600x400 -o catalog -j 8
//	collage recipe -size 2400x1600 -o big.png out.yaml a.jpg b.png c.webp
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `collage - puzzle layout engine

Usage:
  collage <command> [options] [args...]

Commands:
  themes      List the theme catalog
  render      Render a theme with images to PNG
  catalog     Render every theme of the catalog to a directory
  recipe      Replay a saved recipe, optionally resized or converted
  version     Print version information
  help        Show this help message

Common options:
  -v          Verbose (debug) logging on stderr
  -config     YAML configuration file
  -lang       Language used for number formatting (default en)

Images may be PNG, JPEG, GIF, WebP, BMP or TIFF. Areas without an image
get a generated placeholder tile.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "themes":
		err = runThemes(args, os.Stdout)
	case "render":
		err = runRender(args, os.Stdout)
	case "catalog":
		err = runCatalog(args, os.Stdout)
	case "recipe":
		err = runRecipe(args, os.Stdout)
	case "version":
		fmt.Printf("collage version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
