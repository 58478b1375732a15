package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/makeescape/internal/placeholders"
)

func main() {
	dir := flag.String("out", "assets", "directory to write the atlas and sprite table into")
	flag.Parse()

	fmt.Println("Make Escape Placeholder Graphics Generator")
	fmt.Println("==========================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s and %s (%dx%d)\n",
		filepath.Join(*dir, placeholders.AtlasFile),
		filepath.Join(*dir, placeholders.SpritesFile),
		placeholders.AtlasWidth, placeholders.AtlasHeight)
	fmt.Println()
	fmt.Println("Done! Run 'makeescape play' to see your placeholders in action!")
}
