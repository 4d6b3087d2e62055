// Command validate checks a playlist document: structure, song ordering
// and overlap rules, then prints a summary of every stream.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/louvel/streamradio/internal/playlist"
)

func main() {
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: validate <playlist.toml>")
		os.Exit(2)
	}

	pl, err := playlist.Load(path)
	if err != nil {
		log.Fatalf("invalid playlist: %v", err)
	}

	fmt.Printf("%s: %d streams\n", path, pl.Len())
	for i, s := range pl.Streams() {
		if !s.Segmented() {
			fmt.Printf("  [%d] %s (%s): whole-stream\n", i, s.Name, s.VideoID)
			continue
		}
		fmt.Printf("  [%d] %s (%s): %d songs\n", i, s.Name, s.VideoID, len(s.Songs))
		for j, song := range s.Songs {
			fmt.Printf("      %2d. %s [%.1f, %.1f)\n", j+1, song.Name, song.Start, song.End)
		}
	}
}
