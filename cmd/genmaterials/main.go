package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/raycaster/internal/placeholders"
)

func main() {
	dir := flag.String("out", "pics", "Directory to write the textures to")
	flag.Parse()

	fmt.Println("Raycaster Material Texture Generator")
	fmt.Println("====================================")
	fmt.Println()

	paths, err := placeholders.GenerateAndSave(*dir)
	for _, p := range paths {
		fmt.Printf("  wrote %s\n", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Run the raycaster to see the textures on the walls.")
}
