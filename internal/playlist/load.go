package playlist

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// document mirrors the TOML playlist file:
//
//	[[streams]]
//	video_id = "dQw4w9WgXcQ"
//	name = "late night mix"
//	title = "Late Night Mix Vol. 3"
//
//	  [[streams.songs]]
//	  name = "Opener"
//	  start = 0.0
//	  end = 214.5
type document struct {
	Streams []streamDoc `koanf:"streams"`
}

type streamDoc struct {
	VideoID string    `koanf:"video_id"`
	Name    string    `koanf:"name"`
	Title   string    `koanf:"title"`
	Songs   []songDoc `koanf:"songs"`
}

type songDoc struct {
	Name  string  `koanf:"name"`
	Start float64 `koanf:"start"`
	End   float64 `koanf:"end"`
}

// Load reads and validates a playlist document from a TOML file.
func Load(path string) (*Playlist, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load playlist %s: %w", path, err)
	}

	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("parse playlist %s: %w", path, err)
	}

	streams := make([]Stream, len(doc.Streams))
	for i, sd := range doc.Streams {
		st := Stream{
			VideoID: sd.VideoID,
			Name:    sd.Name,
			Title:   sd.Title,
		}
		if st.Title == "" {
			st.Title = st.Name
		}
		for _, song := range sd.Songs {
			st.Songs = append(st.Songs, Song{Name: song.Name, Start: song.Start, End: song.End})
		}
		streams[i] = st
	}

	return New(streams)
}
